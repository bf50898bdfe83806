package vm

import "testing"

func encodeABC(op, a, b, c int) uint32 {
	return uint32(op) | uint32(a)<<6 | uint32(c)<<14 | uint32(b)<<23
}

func encodeABx(op, a, bx int) uint32 {
	return uint32(op) | uint32(a)<<6 | uint32(bx)<<14
}

func encodeAsBx(op, a, sbx int) uint32 {
	return encodeABx(op, a, sbx+maxArgSBx)
}

// TestDecodeOpcodeAndA checks property 6: opcode(w) = w&0x3F and
// A(w) = (w>>6)&0xFF, for arbitrary operand values packed into an iABC
// word.
func TestDecodeOpcodeAndA(t *testing.T) {
	w := encodeABC(OP_MOVE, 0xAB, 0x1FF, 0x1FF)
	i := Instruction(w)
	if got := i.Opcode(); got != OP_MOVE {
		t.Errorf("Opcode() = %d, want %d", got, OP_MOVE)
	}
	a, _, _ := i.ABC()
	if a != 0xAB {
		t.Errorf("A = %d, want %d", a, 0xAB)
	}
}

func TestDecodeABC(t *testing.T) {
	w := encodeABC(OP_ADD, 1, 2, 3)
	a, b, c := Instruction(w).ABC()
	if a != 1 || b != 2 || c != 3 {
		t.Errorf("ABC() = (%d,%d,%d), want (1,2,3)", a, b, c)
	}
}

func TestDecodeABx(t *testing.T) {
	w := encodeABx(OP_LOADK, 5, 1000)
	a, bx := Instruction(w).ABx()
	if a != 5 || bx != 1000 {
		t.Errorf("ABx() = (%d,%d), want (5,1000)", a, bx)
	}
}

func TestDecodeAsBxNegativeOffset(t *testing.T) {
	w := encodeAsBx(OP_JMP, 0, -5)
	a, sbx := Instruction(w).AsBx()
	if a != 0 || sbx != -5 {
		t.Errorf("AsBx() = (%d,%d), want (0,-5)", a, sbx)
	}
}

func TestDecodeAx(t *testing.T) {
	w := uint32(OP_EXTRAARG) | uint32(12345)<<6
	if got := Instruction(w).Ax(); got != 12345 {
		t.Errorf("Ax() = %d, want 12345", got)
	}
}

func TestOpName(t *testing.T) {
	w := encodeABC(OP_RETURN, 0, 0, 0)
	if got := Instruction(w).OpName(); got != "RETURN" {
		t.Errorf("OpName() = %q, want %q", got, "RETURN")
	}
}

func TestRK(t *testing.T) {
	isConst, idx := RK(0x105)
	if !isConst || idx != 5 {
		t.Errorf("RK(0x105) = (%v, %d), want (true, 5)", isConst, idx)
	}
	isConst, idx = RK(7)
	if isConst || idx != 7 {
		t.Errorf("RK(7) = (%v, %d), want (false, 7)", isConst, idx)
	}
}
