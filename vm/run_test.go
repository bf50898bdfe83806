package vm

import (
	"testing"

	"github.com/fanlia/luaz/binchunk"
	"github.com/fanlia/luaz/state"
)

// TestForLoopAccumulatesThreeIterations assembles the exact sequence from
// the numeric-for scenario: init=1, limit=3, step=1, a one-instruction
// body (here an accumulator add rather than a no-op, so the test can
// observe how many times the body ran), and the FORPREP/FORLOOP pair.
func TestForLoopAccumulatesThreeIterations(t *testing.T) {
	proto := &binchunk.Prototype{
		Constants: []interface{}{int64(1), int64(3), int64(1), int64(0)},
		Code: []uint32{
			encodeABx(OP_LOADK, 0, 0),    // R0 = 1  (init)
			encodeABx(OP_LOADK, 1, 1),    // R1 = 3  (limit)
			encodeABx(OP_LOADK, 2, 2),    // R2 = 1  (step)
			encodeABx(OP_LOADK, 5, 3),    // R5 = 0  (accumulator)
			encodeAsBx(OP_FORPREP, 0, 1), // -> FORLOOP
			encodeABC(OP_ADD, 5, 5, 3),   // R5 += R3 (loop variable)
			encodeAsBx(OP_FORLOOP, 0, -2),
			encodeABC(OP_RETURN, 0, 0, 0),
		},
		MaxStackSize: 10,
	}
	s := state.New(32, proto)
	if err := Run(s, nil); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if got := s.ToInteger(1); got != 4 {
		t.Errorf("R0 after the loop = %d, want 4 (terminates once it exceeds the limit)", got)
	}
	if got := s.ToInteger(4); got != 3 {
		t.Errorf("R3 (loop variable) after the loop = %d, want 3 (last value copied out)", got)
	}
	if got := s.ToInteger(6); got != 6 {
		t.Errorf("R5 (accumulator) = %d, want 6 (sum of 1+2+3 across three iterations)", got)
	}
}

// TestSetListThenLen is the table-length scenario: NEWTABLE, load three
// values into registers, SETLIST them into the array part, then LEN.
func TestSetListThenLen(t *testing.T) {
	proto := &binchunk.Prototype{
		Constants: []interface{}{int64(10), int64(20), int64(30)},
		Code: []uint32{
			encodeABC(OP_NEWTABLE, 0, 0, 0),
			encodeABx(OP_LOADK, 1, 0), // R1 = 10
			encodeABx(OP_LOADK, 2, 1), // R2 = 20
			encodeABx(OP_LOADK, 3, 2), // R3 = 30
			encodeABC(OP_SETLIST, 0, 3, 1),
			encodeABC(OP_LEN, 4, 0, 0), // R4 = #R0
			encodeABC(OP_RETURN, 0, 0, 0),
		},
		MaxStackSize: 10,
	}
	s := state.New(32, proto)
	if err := Run(s, nil); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if got := s.ToInteger(5); got != 3 {
		t.Errorf("#table after SETLIST = %d, want 3", got)
	}
	if _, err := s.GetI(1, 2); err != nil {
		t.Fatal(err)
	}
	if got := s.ToInteger(-1); got != 20 {
		t.Errorf("table[2] = %d, want 20", got)
	}
}

// TestRunReportsUnknownInstruction exercises the explicit open-instruction
// list: CALL is out of scope, so executing it must surface
// UnknownInstruction rather than silently doing nothing.
func TestRunReportsUnknownInstruction(t *testing.T) {
	proto := &binchunk.Prototype{
		Code: []uint32{
			encodeABC(OP_CALL, 0, 1, 1),
			encodeABC(OP_RETURN, 0, 0, 0),
		},
		MaxStackSize: 4,
	}
	s := state.New(16, proto)
	if err := Run(s, nil); err == nil {
		t.Fatal("Run should fail on an unimplemented CALL instruction")
	}
}
