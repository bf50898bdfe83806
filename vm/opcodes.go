package vm

import "github.com/fanlia/luaz/api"

// Instruction modes.
const (
	IABC  = 0
	IABx  = 1
	IAsBx = 2
	IAx   = 3
)

// Operand-kind tags for B/C, describing how an opcode uses that operand.
const (
	OpArgN = 0 // argument is not used
	OpArgU = 1 // argument is used as a plain unsigned value
	OpArgR = 2 // argument is a register
	OpArgK = 3 // argument is a register or a constant (RK)
)

// Opcode numbers, fixed by the Lua 5.3 specification.
const (
	OP_MOVE = iota
	OP_LOADK
	OP_LOADKX
	OP_LOADBOOL
	OP_LOADNIL
	OP_GETUPVAL
	OP_GETTABUP
	OP_GETTABLE
	OP_SETTABUP
	OP_SETUPVAL
	OP_SETTABLE
	OP_NEWTABLE
	OP_SELF
	OP_ADD
	OP_SUB
	OP_MUL
	OP_MOD
	OP_POW
	OP_DIV
	OP_IDIV
	OP_BAND
	OP_BOR
	OP_BXOR
	OP_SHL
	OP_SHR
	OP_UNM
	OP_BNOT
	OP_NOT
	OP_LEN
	OP_CONCAT
	OP_JMP
	OP_EQ
	OP_LT
	OP_LE
	OP_TEST
	OP_TESTSET
	OP_CALL
	OP_TAILCALL
	OP_RETURN
	OP_FORLOOP
	OP_FORPREP
	OP_TFORCALL
	OP_TFORLOOP
	OP_SETLIST
	OP_CLOSURE
	OP_VARARG
	OP_EXTRAARG
)

type opcodeAction func(i Instruction, vm api.LuaVM) error

type opcodeInfo struct {
	testFlag byte // 1 if the instruction is a "test" (next instruction must be a jump)
	setAFlag byte // 1 if the instruction sets register A
	argBMode byte
	argCMode byte
	opMode   byte
	name     string
	action   opcodeAction
}

// opcodes is indexed by opcode number and must keep Lua 5.3's fixed order:
// 0=MOVE ... 46=EXTRAARG. Opcodes left as open instructions here
// (upvalues, closures, calls, varargs, generic-for) carry notImplemented.
var opcodes [47]opcodeInfo

func init() {
	opcodes = [...]opcodeInfo{
		OP_MOVE:     {0, 1, OpArgR, OpArgN, IABC, "MOVE", move},
		OP_LOADK:    {0, 1, OpArgK, OpArgN, IABx, "LOADK", loadK},
		OP_LOADKX:   {0, 1, OpArgN, OpArgN, IABx, "LOADKX", loadKX},
		OP_LOADBOOL: {0, 1, OpArgU, OpArgU, IABC, "LOADBOOL", loadBool},
		OP_LOADNIL:  {0, 1, OpArgU, OpArgN, IABC, "LOADNIL", loadNil},
		OP_GETUPVAL: {0, 1, OpArgU, OpArgN, IABC, "GETUPVAL", notImplemented},
		OP_GETTABUP: {0, 1, OpArgU, OpArgK, IABC, "GETTABUP", notImplemented},
		OP_GETTABLE: {0, 1, OpArgR, OpArgK, IABC, "GETTABLE", getTable},
		OP_SETTABUP: {0, 0, OpArgK, OpArgK, IABC, "SETTABUP", notImplemented},
		OP_SETUPVAL: {0, 0, OpArgU, OpArgN, IABC, "SETUPVAL", notImplemented},
		OP_SETTABLE: {0, 0, OpArgK, OpArgK, IABC, "SETTABLE", setTable},
		OP_NEWTABLE: {0, 1, OpArgU, OpArgU, IABC, "NEWTABLE", newTable},
		OP_SELF:     {0, 1, OpArgR, OpArgK, IABC, "SELF", notImplemented},
		OP_ADD:      {0, 1, OpArgK, OpArgK, IABC, "ADD", binArith(api.OpAdd)},
		OP_SUB:      {0, 1, OpArgK, OpArgK, IABC, "SUB", binArith(api.OpSub)},
		OP_MUL:      {0, 1, OpArgK, OpArgK, IABC, "MUL", binArith(api.OpMul)},
		OP_MOD:      {0, 1, OpArgK, OpArgK, IABC, "MOD", binArith(api.OpMod)},
		OP_POW:      {0, 1, OpArgK, OpArgK, IABC, "POW", binArith(api.OpPow)},
		OP_DIV:      {0, 1, OpArgK, OpArgK, IABC, "DIV", binArith(api.OpDiv)},
		OP_IDIV:     {0, 1, OpArgK, OpArgK, IABC, "IDIV", binArith(api.OpIDiv)},
		OP_BAND:     {0, 1, OpArgK, OpArgK, IABC, "BAND", binArith(api.OpBand)},
		OP_BOR:      {0, 1, OpArgK, OpArgK, IABC, "BOR", binArith(api.OpBor)},
		OP_BXOR:     {0, 1, OpArgK, OpArgK, IABC, "BXOR", binArith(api.OpBxor)},
		OP_SHL:      {0, 1, OpArgK, OpArgK, IABC, "SHL", binArith(api.OpShl)},
		OP_SHR:      {0, 1, OpArgK, OpArgK, IABC, "SHR", binArith(api.OpShr)},
		OP_UNM:      {0, 1, OpArgR, OpArgN, IABC, "UNM", unArith(api.OpUnm)},
		OP_BNOT:     {0, 1, OpArgR, OpArgN, IABC, "BNOT", unArith(api.OpBnot)},
		OP_NOT:      {0, 1, OpArgR, OpArgN, IABC, "NOT", not},
		OP_LEN:      {0, 1, OpArgR, OpArgN, IABC, "LEN", length},
		OP_CONCAT:   {0, 1, OpArgR, OpArgR, IABC, "CONCAT", concat},
		OP_JMP:      {0, 0, OpArgR, OpArgN, IAsBx, "JMP", jmp},
		OP_EQ:       {1, 0, OpArgK, OpArgK, IABC, "EQ", relational(api.OpEq)},
		OP_LT:       {1, 0, OpArgK, OpArgK, IABC, "LT", relational(api.OpLt)},
		OP_LE:       {1, 0, OpArgK, OpArgK, IABC, "LE", relational(api.OpLe)},
		OP_TEST:     {1, 0, OpArgN, OpArgU, IABC, "TEST", test},
		OP_TESTSET:  {1, 1, OpArgR, OpArgU, IABC, "TESTSET", testSet},
		OP_CALL:     {0, 1, OpArgU, OpArgU, IABC, "CALL", notImplemented},
		OP_TAILCALL: {0, 1, OpArgU, OpArgU, IABC, "TAILCALL", notImplemented},
		OP_RETURN:   {0, 0, OpArgU, OpArgN, IABC, "RETURN", returnOp},
		OP_FORLOOP:  {0, 1, OpArgR, OpArgN, IAsBx, "FORLOOP", forLoop},
		OP_FORPREP:  {0, 1, OpArgR, OpArgN, IAsBx, "FORPREP", forPrep},
		OP_TFORCALL: {0, 0, OpArgN, OpArgU, IABC, "TFORCALL", notImplemented},
		OP_TFORLOOP: {0, 1, OpArgR, OpArgN, IAsBx, "TFORLOOP", notImplemented},
		OP_SETLIST:  {0, 0, OpArgU, OpArgU, IABC, "SETLIST", setList},
		OP_CLOSURE:  {0, 1, OpArgU, OpArgN, IABx, "CLOSURE", notImplemented},
		OP_VARARG:   {0, 1, OpArgU, OpArgN, IABC, "VARARG", notImplemented},
		OP_EXTRAARG: {0, 0, OpArgU, OpArgU, IAx, "EXTRAARG", notImplemented},
	}
}
