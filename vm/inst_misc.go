package vm

import (
	"github.com/fanlia/luaz/api"
	"github.com/fanlia/luaz/luaerr"
)

// notImplemented backs every opcode left out of scope in this core:
// upvalues, closures, calls, varargs, and the generic-for pair.
func notImplemented(i Instruction, vm api.LuaVM) error {
	return luaerr.New(luaerr.UnknownInstruction, "opcode %s is not implemented", i.OpName())
}

// move: R(A) := R(B)
func move(i Instruction, vm api.LuaVM) error {
	a, b, _ := i.ABC()
	a++
	b++
	return vm.Copy(b, a)
}

// jmp: pc += sBx. This core carries no closures to close over, so a
// non-zero A (which in full Lua closes upvalues down to R(A-1)) has
// nothing meaningful to do and is reported rather than ignored.
func jmp(i Instruction, vm api.LuaVM) error {
	a, sbx := i.AsBx()
	vm.AddPC(sbx)
	if a != 0 {
		return luaerr.New(luaerr.UnsupportedJmpClose, "JMP with A=%d requires closing upvalues", a)
	}
	return nil
}

// not: R(A) := not R(B)
func not(i Instruction, vm api.LuaVM) error {
	a, b, _ := i.ABC()
	a++
	b++
	if err := vm.PushBoolean(!vm.ToBoolean(b)); err != nil {
		return err
	}
	return vm.Replace(a)
}

// len: R(A) := #R(B)
func length(i Instruction, vm api.LuaVM) error {
	a, b, _ := i.ABC()
	a++
	b++
	if err := vm.Len(b); err != nil {
		return err
	}
	return vm.Replace(a)
}

// concat: R(A) := R(B).. ... ..R(C)
func concat(i Instruction, vm api.LuaVM) error {
	a, b, c := i.ABC()
	a++
	b++
	c++
	n := c - b + 1
	vm.CheckStack(n)
	for idx := b; idx <= c; idx++ {
		if err := vm.PushValue(idx); err != nil {
			return err
		}
	}
	if err := vm.Concat(n); err != nil {
		return err
	}
	return vm.Replace(a)
}

// returnOp is a no-op: with no call frames there is nothing to unwind.
// The dispatcher loop recognizes OP_RETURN before reaching Execute and
// stops there.
func returnOp(i Instruction, vm api.LuaVM) error {
	return nil
}
