// Package binchunk decodes the Lua 5.3 precompiled-chunk ("luac") binary
// format into an in-memory Prototype tree. It performs no execution; the vm
// package consumes the tree it produces.
package binchunk

import (
	"github.com/fanlia/luaz/luaerr"
)

// Header layout constants, byte-exact per the Lua 5.3 luac format for the
// 64-bit platform profile (8-byte size_t, 8-byte lua_Integer/lua_Number).
const (
	luaSignature    = "\x1bLua"
	luacVersion     = 0x53
	luacFormat      = 0x00
	luacData        = "\x19\x93\r\n\x1a\n"
	cintSize        = 4
	sizetSize       = 8
	instructionSize = 4
	luaIntegerSize  = 8
	luaNumberSize   = 8
	luacInt         = 0x5678
	luacNum         = 370.5
)

// Constant tags, as written by lundump.c.
const (
	tagNil      = 0x00
	tagBoolean  = 0x01
	tagNumber   = 0x03
	tagInteger  = 0x13
	tagShortStr = 0x04
	tagLongStr  = 0x14
)

// Upvalue describes how a child prototype captures a single upvalue. It is
// retained for structural fidelity with the binary format even though the
// VM in this module does not resolve upvalues at runtime (see vm package).
type Upvalue struct {
	Instack byte
	Idx     byte
}

// LocVar is one entry of a prototype's local-variable debug table.
type LocVar struct {
	VarName string
	StartPC uint32
	EndPC   uint32
}

// Prototype is an immutable, fully decoded Lua function. The main chunk
// function and every nested function literal each produce one Prototype;
// Protos owns the nested ones.
type Prototype struct {
	Source          string
	LineDefined     uint32
	LastLineDefined uint32
	NumParams       byte
	IsVararg        byte
	MaxStackSize    byte
	Code            []uint32
	Constants       []interface{}
	Upvalues        []Upvalue
	Protos          []*Prototype
	LineInfo        []uint32
	LocVars         []LocVar
	UpvalueNames    []string
}

// IsBinaryChunk reports whether data begins with the Lua signature, the
// cheap check a CLI adapter makes before choosing between Undump and a
// source compiler (out of scope here).
func IsBinaryChunk(data []byte) bool {
	return len(data) >= len(luaSignature) && string(data[:len(luaSignature)]) == luaSignature
}

// Undump parses data as a Lua 5.3 precompiled chunk and returns its main
// Prototype. It fails fast on any header mismatch or truncation; no partial
// Prototype is ever returned.
func Undump(data []byte) (*Prototype, error) {
	r := newReader(data)
	if err := r.checkHeader(); err != nil {
		return nil, err
	}
	if _, err := r.readByte(); err != nil { // size of upvalues of main function, unused here
		return nil, err
	}
	return r.readProto("")
}

func (r *reader) checkHeader() error {
	sig, err := r.readBytes(len(luaSignature))
	if err != nil {
		return err
	}
	if string(sig) != luaSignature {
		return luaerr.New(luaerr.NotAPrecompiledChunk, "bad signature %q", sig)
	}

	version, err := r.readByte()
	if err != nil {
		return err
	}
	if version != luacVersion {
		return luaerr.New(luaerr.VersionMismatch, "version byte 0x%02x", version)
	}

	format, err := r.readByte()
	if err != nil {
		return err
	}
	if format != luacFormat {
		return luaerr.New(luaerr.FormatMismatch, "format byte 0x%02x", format)
	}

	data, err := r.readBytes(len(luacData))
	if err != nil {
		return err
	}
	if string(data) != luacData {
		return luaerr.New(luaerr.Corrupted, "luac data check failed")
	}

	if err := r.checkByteSize(cintSize, luaerr.IntSizeMismatch); err != nil {
		return err
	}
	if err := r.checkByteSize(sizetSize, luaerr.SizetSizeMismatch); err != nil {
		return err
	}
	if err := r.checkByteSize(instructionSize, luaerr.InstructionSizeMismatch); err != nil {
		return err
	}
	if err := r.checkByteSize(luaIntegerSize, luaerr.LuaIntegerSizeMismatch); err != nil {
		return err
	}
	if err := r.checkByteSize(luaNumberSize, luaerr.LuaNumberSizeMismatch); err != nil {
		return err
	}

	luacIntCheck, err := r.readLuaInteger()
	if err != nil {
		return err
	}
	if luacIntCheck != luacInt {
		return luaerr.New(luaerr.EndiannessMismatch, "lua integer check = 0x%x, want 0x%x", luacIntCheck, luacInt)
	}

	luacNumCheck, err := r.readLuaNumber()
	if err != nil {
		return err
	}
	if luacNumCheck != luacNum {
		return luaerr.New(luaerr.FloatFormatMismatch, "lua number check = %v, want %v", luacNumCheck, luacNum)
	}

	return nil
}

func (r *reader) checkByteSize(want int, kind luaerr.Kind) error {
	got, err := r.readByte()
	if err != nil {
		return err
	}
	if int(got) != want {
		return luaerr.New(kind, "got %d, want %d", got, want)
	}
	return nil
}

func (r *reader) readProto(parentSource string) (*Prototype, error) {
	source, err := r.readString()
	if err != nil {
		return nil, err
	}
	if source == "" {
		source = parentSource
	}

	lineDefined, err := r.readU32()
	if err != nil {
		return nil, err
	}
	lastLineDefined, err := r.readU32()
	if err != nil {
		return nil, err
	}
	numParams, err := r.readByte()
	if err != nil {
		return nil, err
	}
	isVararg, err := r.readByte()
	if err != nil {
		return nil, err
	}
	maxStackSize, err := r.readByte()
	if err != nil {
		return nil, err
	}

	code, err := r.readCode()
	if err != nil {
		return nil, err
	}
	constants, err := r.readConstants()
	if err != nil {
		return nil, err
	}
	upvalues, err := r.readUpvalues()
	if err != nil {
		return nil, err
	}
	protos, err := r.readProtos(source)
	if err != nil {
		return nil, err
	}
	lineInfo, err := r.readLineInfo()
	if err != nil {
		return nil, err
	}
	locVars, err := r.readLocVars()
	if err != nil {
		return nil, err
	}
	upvalueNames, err := r.readUpvalueNames()
	if err != nil {
		return nil, err
	}

	return &Prototype{
		Source:          source,
		LineDefined:     lineDefined,
		LastLineDefined: lastLineDefined,
		NumParams:       numParams,
		IsVararg:        isVararg,
		MaxStackSize:    maxStackSize,
		Code:            code,
		Constants:       constants,
		Upvalues:        upvalues,
		Protos:          protos,
		LineInfo:        lineInfo,
		LocVars:         locVars,
		UpvalueNames:    upvalueNames,
	}, nil
}

func (r *reader) readCode() ([]uint32, error) {
	n, err := r.readU32()
	if err != nil {
		return nil, err
	}
	return r.readU32Slice(int(n))
}

func (r *reader) readConstants() ([]interface{}, error) {
	n, err := r.readU32()
	if err != nil {
		return nil, err
	}
	constants := make([]interface{}, n)
	for i := range constants {
		c, err := r.readConstant()
		if err != nil {
			return nil, err
		}
		constants[i] = c
	}
	return constants, nil
}

func (r *reader) readConstant() (interface{}, error) {
	tag, err := r.readByte()
	if err != nil {
		return nil, err
	}
	switch tag {
	case tagNil:
		return nil, nil
	case tagBoolean:
		b, err := r.readByte()
		if err != nil {
			return nil, err
		}
		return b != 0, nil
	case tagInteger:
		return r.readLuaInteger()
	case tagNumber:
		return r.readLuaNumber()
	case tagShortStr, tagLongStr:
		return r.readString()
	default:
		return nil, luaerr.New(luaerr.Corrupted, "unexpected constant tag 0x%02x", tag)
	}
}

func (r *reader) readUpvalues() ([]Upvalue, error) {
	n, err := r.readU32()
	if err != nil {
		return nil, err
	}
	upvalues := make([]Upvalue, n)
	for i := range upvalues {
		instack, err := r.readByte()
		if err != nil {
			return nil, err
		}
		idx, err := r.readByte()
		if err != nil {
			return nil, err
		}
		upvalues[i] = Upvalue{Instack: instack, Idx: idx}
	}
	return upvalues, nil
}

func (r *reader) readProtos(parentSource string) ([]*Prototype, error) {
	n, err := r.readU32()
	if err != nil {
		return nil, err
	}
	protos := make([]*Prototype, n)
	for i := range protos {
		p, err := r.readProto(parentSource)
		if err != nil {
			return nil, err
		}
		protos[i] = p
	}
	return protos, nil
}

func (r *reader) readLineInfo() ([]uint32, error) {
	n, err := r.readU32()
	if err != nil {
		return nil, err
	}
	return r.readU32Slice(int(n))
}

func (r *reader) readLocVars() ([]LocVar, error) {
	n, err := r.readU32()
	if err != nil {
		return nil, err
	}
	locVars := make([]LocVar, n)
	for i := range locVars {
		name, err := r.readString()
		if err != nil {
			return nil, err
		}
		startPC, err := r.readU32()
		if err != nil {
			return nil, err
		}
		endPC, err := r.readU32()
		if err != nil {
			return nil, err
		}
		locVars[i] = LocVar{VarName: name, StartPC: startPC, EndPC: endPC}
	}
	return locVars, nil
}

func (r *reader) readUpvalueNames() ([]string, error) {
	n, err := r.readU32()
	if err != nil {
		return nil, err
	}
	names := make([]string, n)
	for i := range names {
		name, err := r.readString()
		if err != nil {
			return nil, err
		}
		names[i] = name
	}
	return names, nil
}
