package state

import (
	"testing"

	"github.com/fanlia/luaz/api"
	"github.com/fanlia/luaz/binchunk"
	"github.com/fanlia/luaz/luaerr"
)

// TestArithPreferIntegerCoercion exercises a concrete coercion scenario:
// pushing
// integer 1, string "2.0", string "3.0", number 4.0, then ADD should
// combine the top two ("3.0" and 4.0) into float 7.0, because a string
// that only parses as a float is a float candidate even though its value
// happens to be integral. BNOT on that 7.0 then succeeds, because 7.0
// *is* exactly representable as an integer once it's a plain float value
// (the exactness rule governs convertToInteger, not arithOperand).
func TestArithPreferIntegerCoercion(t *testing.T) {
	s := New(16, &binchunk.Prototype{MaxStackSize: 10})
	if err := s.PushInteger(1); err != nil {
		t.Fatal(err)
	}
	if err := s.PushString("2.0"); err != nil {
		t.Fatal(err)
	}
	if err := s.PushString("3.0"); err != nil {
		t.Fatal(err)
	}
	if err := s.PushNumber(4.0); err != nil {
		t.Fatal(err)
	}

	if err := s.Arith(api.OpAdd); err != nil {
		t.Fatalf("Arith(Add): %v", err)
	}
	got, ok := s.ToNumberX(-1)
	if !ok || got != 7.0 {
		t.Fatalf("top after \"3.0\"+4.0 = (%v, %v), want (7.0, true)", got, ok)
	}
	if s.IsInteger(-1) {
		t.Fatalf("top should be a float, not an integer, since a float operand forces the float branch")
	}

	if err := s.Arith(api.OpBnot); err != nil {
		t.Fatalf("Arith(Bnot) on exactly-representable 7.0: %v", err)
	}
	if got := s.ToInteger(-1); got != ^int64(7) {
		t.Fatalf("~7.0 = %d, want %d", got, ^int64(7))
	}
}

func TestArithIncompatibleOperandsError(t *testing.T) {
	s := New(16, &binchunk.Prototype{MaxStackSize: 10})
	s.PushString("not a number")
	s.PushInteger(1)
	err := s.Arith(api.OpAdd)
	if !luaerr.Is(err, luaerr.ArithmeticError) {
		t.Fatalf("Arith(Add) on non-numeric string: err = %v, want ArithmeticError", err)
	}
}

func TestArithBitwiseFamilyAcceptsExactFloat(t *testing.T) {
	s := New(16, &binchunk.Prototype{MaxStackSize: 10})
	s.PushNumber(6.0)
	s.PushNumber(3.0)
	if err := s.Arith(api.OpBand); err != nil {
		t.Fatalf("Arith(Band) on exactly-representable floats: %v", err)
	}
	if got := s.ToInteger(-1); got != 2 {
		t.Errorf("6 & 3 = %d, want 2", got)
	}
}

func TestArithShiftDegradesOnNegativeCount(t *testing.T) {
	s := New(16, &binchunk.Prototype{MaxStackSize: 10})
	s.PushInteger(1)
	s.PushInteger(-1)
	if err := s.Arith(api.OpShl); err != nil {
		t.Fatal(err)
	}
	if got := s.ToInteger(-1); got != 0 {
		t.Errorf("1 << -1 should degrade to 1 >> 1 = 0, got %d", got)
	}
}

func TestArithFloorDivAndModSignOfDivisor(t *testing.T) {
	s := New(16, &binchunk.Prototype{MaxStackSize: 10})
	s.PushInteger(-7)
	s.PushInteger(3)
	if err := s.Arith(api.OpMod); err != nil {
		t.Fatal(err)
	}
	if got := s.ToInteger(-1); got != 2 {
		t.Errorf("-7 %% 3 = %d, want 2 (sign of divisor)", got)
	}
}
