/*
Package vm decodes and executes Lua 5.3 instructions. A 32-bit
instruction word is laid out as one of:

	 31       22       13       5    0
	  +-------+^------+-^-----+-^-----
	  |b=9bits |c=9bits |a=8bits|op=6|
	  +-------+^------+-^-----+-^-----
	  |    bx=18bits    |a=8bits|op=6|
	  +-------+^------+-^-----+-^-----
	  |   sbx=18bits    |a=8bits|op=6|
	  +-------+^------+-^-----+-^-----
	  |    ax=26bits            |op=6|
	  +-------+^------+-^-----+-^-----
	 31      23      15       7      0
*/
package vm

import (
	"github.com/fanlia/luaz/api"
	"github.com/fanlia/luaz/luaerr"
)

const maxArgBx = 1<<18 - 1
const maxArgSBx = maxArgBx >> 1

// Instruction is one 32-bit Lua bytecode word.
type Instruction uint32

func (i Instruction) Opcode() int {
	return int(i & 0x3F)
}

func (i Instruction) OpName() string {
	return opcodes[i.Opcode()].name
}

func (i Instruction) OpMode() byte {
	return opcodes[i.Opcode()].opMode
}

func (i Instruction) BMode() byte {
	return opcodes[i.Opcode()].argBMode
}

func (i Instruction) CMode() byte {
	return opcodes[i.Opcode()].argCMode
}

// ABC unpacks an iABC-mode instruction's three operands.
func (i Instruction) ABC() (a, b, c int) {
	a = int(i >> 6 & 0xFF)
	c = int(i >> 14 & 0x1FF)
	b = int(i >> 23 & 0x1FF)
	return
}

// ABx unpacks an iABx-mode instruction's two operands.
func (i Instruction) ABx() (a, bx int) {
	a = int(i >> 6 & 0xFF)
	bx = int(i >> 14)
	return
}

// AsBx unpacks an iAsBx-mode instruction, de-biasing Bx into a signed
// offset.
func (i Instruction) AsBx() (a, sbx int) {
	a, bx := i.ABx()
	return a, bx - maxArgSBx
}

// Ax unpacks an iAx-mode instruction's single 26-bit operand.
func (i Instruction) Ax() int {
	return int(i >> 6)
}

// Execute dispatches to the opcode's action, or returns UnknownInstruction
// if the opcode has no implemented action (the open instructions this
// core leaves out: upvalues, closures, calls, varargs, generic-for).
func (i Instruction) Execute(vm api.LuaVM) error {
	if i.Opcode() >= len(opcodes) {
		return luaerr.New(luaerr.UnknownInstruction, "opcode %d is out of range", i.Opcode())
	}
	return opcodes[i.Opcode()].action(i, vm)
}

// RK returns whether operand x addresses a constant (high bit set) and
// its index/register number with that bit masked off.
func RK(x int) (isConst bool, idx int) {
	return x&0x100 != 0, x & 0xFF
}
