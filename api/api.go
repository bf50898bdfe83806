// Package api defines the types shared between the state package (which
// implements them) and the vm package (whose opcode actions only depend on
// these interfaces, not on state's concrete types). Splitting them out this
// way keeps vm decoupled from state's internals, the same separation the
// teacher enforces via luago/api.
package api

// LuaType enumerates the dynamic types a Value can have. LUA_TNONE is
// returned for invalid stack indices, never for a value actually on the
// stack.
type LuaType int

const (
	LUA_TNONE LuaType = iota - 1
	LUA_TNIL
	LUA_TBOOLEAN
	LUA_TNUMBER
	LUA_TSTRING
	LUA_TTABLE
)

// ArithOp enumerates the operators accepted by LuaState.Arith. Unary
// operators (Unm, Bnot) pop a single operand; the rest pop two.
type ArithOp int

const (
	OpAdd ArithOp = iota
	OpSub
	OpMul
	OpMod
	OpPow
	OpDiv
	OpIDiv
	OpBand
	OpBor
	OpBxor
	OpShl
	OpShr
	OpUnm
	OpBnot
)

// CompareOp enumerates the operators accepted by LuaState.Compare.
type CompareOp int

const (
	OpEq CompareOp = iota
	OpLt
	OpLe
)

// LuaState is the embedding surface: stack shape, typed push/to, table
// access, arithmetic/comparison/length/concat. Every method that can fail
// per the error taxonomy in package luaerr returns an error instead of
// panicking.
type LuaState interface {
	GetTop() int
	AbsIndex(idx int) int
	CheckStack(n int)
	Pop(n int) error
	Copy(fromIdx, toIdx int) error
	PushValue(idx int) error
	Replace(idx int) error
	Insert(idx int) error
	Remove(idx int) error
	Rotate(idx, n int) error
	SetTop(idx int) error

	PushNil() error
	PushBoolean(b bool) error
	PushInteger(n int64) error
	PushNumber(n float64) error
	PushString(s string) error

	Type(idx int) LuaType
	TypeName(tp LuaType) string
	IsNone(idx int) bool
	IsNil(idx int) bool
	IsNoneOrNil(idx int) bool
	IsBoolean(idx int) bool
	IsString(idx int) bool
	IsNumber(idx int) bool
	IsInteger(idx int) bool
	IsTable(idx int) bool

	ToBoolean(idx int) bool
	ToNumber(idx int) float64
	ToNumberX(idx int) (float64, bool)
	ToInteger(idx int) int64
	ToIntegerX(idx int) (int64, bool)
	ToString(idx int) string
	ToStringX(idx int) (string, bool)

	Arith(op ArithOp) error
	Compare(idx1, idx2 int, op CompareOp) (bool, error)
	Len(idx int) error
	Concat(n int) error

	CreateTable(nArr, nRec int) error
	NewTable() error
	GetTable(idx int) (LuaType, error)
	GetField(idx int, k string) (LuaType, error)
	GetI(idx int, i int64) (LuaType, error)
	SetTable(idx int) error
	SetField(idx int, k string) error
	SetI(idx int, i int64) error
}

// LuaVM extends LuaState with the execution support the dispatcher needs:
// fetching instructions, resolving constants and RK operands against the
// current prototype, and adjusting the program counter.
type LuaVM interface {
	LuaState

	PC() int
	AddPC(n int)
	Fetch() (uint32, error)
	GetConst(idx int) error
	GetRK(rk int) error
	RegisterCount() int
}
