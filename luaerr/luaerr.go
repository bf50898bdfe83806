// Package luaerr defines the error taxonomy shared by the decoder, the
// value/table/stack model, and the instruction dispatcher. Every fallible
// operation in those packages returns one of these kinds rather than panicking,
// so embedders can branch on Kind instead of parsing messages.
package luaerr

import (
	"errors"
	"fmt"
)

// Kind identifies the category of failure. It does not identify the
// specific instance (see Error.Msg for that).
type Kind int

const (
	// Decoder kinds.
	NotAPrecompiledChunk Kind = iota
	VersionMismatch
	FormatMismatch
	Corrupted
	IntSizeMismatch
	SizetSizeMismatch
	InstructionSizeMismatch
	LuaIntegerSizeMismatch
	LuaNumberSizeMismatch
	EndiannessMismatch
	FloatFormatMismatch
	Truncated

	// Stack kinds.
	StackOverflow
	StackUnderflow
	InvalidIndex

	// Value kinds.
	ArithmeticError
	LengthError
	NotATable
	TableIndexIsNil
	TableIndexIsNan

	// VM kinds.
	UnknownInstruction
	UnsupportedJmpClose

	// Allocation kinds.
	OutOfMemory
)

var names = map[Kind]string{
	NotAPrecompiledChunk:    "not a precompiled chunk",
	VersionMismatch:         "version mismatch",
	FormatMismatch:          "format mismatch",
	Corrupted:               "corrupted chunk",
	IntSizeMismatch:         "cint size mismatch",
	SizetSizeMismatch:       "size_t size mismatch",
	InstructionSizeMismatch: "instruction size mismatch",
	LuaIntegerSizeMismatch:  "lua integer size mismatch",
	LuaNumberSizeMismatch:   "lua number size mismatch",
	EndiannessMismatch:      "endianness mismatch",
	FloatFormatMismatch:     "float format mismatch",
	Truncated:               "truncated chunk",
	StackOverflow:           "stack overflow",
	StackUnderflow:          "stack underflow",
	InvalidIndex:            "invalid index",
	ArithmeticError:         "arithmetic error",
	LengthError:             "length error",
	NotATable:               "not a table",
	TableIndexIsNil:         "table index is nil",
	TableIndexIsNan:         "table index is NaN",
	UnknownInstruction:      "unknown instruction",
	UnsupportedJmpClose:     "unsupported jmp close",
	OutOfMemory:             "out of memory",
}

func (k Kind) String() string {
	if s, ok := names[k]; ok {
		return s
	}
	return fmt.Sprintf("luaerr.Kind(%d)", int(k))
}

// Error is the concrete error type returned throughout this module. It
// carries a Kind for programmatic dispatch and an optional wrapped cause.
type Error struct {
	Kind  Kind
	Msg   string
	cause error
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// New builds an Error of the given kind with a formatted message.
func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap builds an Error of the given kind around an existing cause.
func Wrap(kind Kind, cause error) *Error {
	return &Error{Kind: kind, Msg: cause.Error(), cause: cause}
}

// Is reports whether err is a *Error of the given kind.
func Is(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
