package binchunk

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestUndumpFullProtoStructure decodes a chunk with real code, constants,
// upvalues, a nested proto, and debug info, then diffs the whole tree
// against the expected structure in one shot rather than asserting each
// field by hand.
func TestUndumpFullProtoStructure(t *testing.T) {
	buf := bytes.NewBuffer(validHeader())

	buf.WriteByte(6)
	buf.WriteString("chunk")
	writeU32(buf, 0) // lineDefined
	writeU32(buf, 0) // lastLineDefined
	buf.WriteByte(0) // numParams
	buf.WriteByte(0) // isVararg
	buf.WriteByte(2) // maxStackSize

	writeU32(buf, 1) // code length
	writeU32(buf, 0x12345678)

	writeU32(buf, 1) // constants length
	buf.WriteByte(tagInteger)
	writeU64(buf, uint64(int64(42)))

	writeU32(buf, 1) // upvalues length
	buf.WriteByte(1) // instack
	buf.WriteByte(0) // idx

	writeU32(buf, 1) // one child proto
	writeEmptyProto(buf)

	writeU32(buf, 0) // lineInfo length

	writeU32(buf, 1) // locVars length
	buf.WriteByte(2) // size byte: len("x")+1
	buf.WriteString("x")
	writeU32(buf, 0)
	writeU32(buf, 1)

	writeU32(buf, 0) // upvalueNames length

	got, err := Undump(buf.Bytes())
	if err != nil {
		t.Fatalf("Undump: %v", err)
	}

	want := &Prototype{
		Source:          "chunk",
		LineDefined:     0,
		LastLineDefined: 0,
		NumParams:       0,
		IsVararg:        0,
		MaxStackSize:    2,
		Code:            []uint32{0x12345678},
		Constants:       []interface{}{int64(42)},
		Upvalues:        []Upvalue{{Instack: 1, Idx: 0}},
		Protos: []*Prototype{
			{
				Source:       "chunk",
				MaxStackSize: 2,
				Code:         []uint32{},
				Constants:    []interface{}{},
				Upvalues:     []Upvalue{},
				Protos:       []*Prototype{},
				LineInfo:     []uint32{},
				LocVars:      []LocVar{},
				UpvalueNames: []string{},
			},
		},
		LineInfo:     []uint32{},
		LocVars:      []LocVar{{VarName: "x", StartPC: 0, EndPC: 1}},
		UpvalueNames: []string{},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Undump() mismatch (-want +got):\n%s", diff)
	}
}
