package vm

import "github.com/fanlia/luaz/api"

// binArith builds the action for any of the two-operand arithmetic or
// bitwise opcodes: R(A) := RK(B) op RK(C).
func binArith(op api.ArithOp) opcodeAction {
	return func(i Instruction, vm api.LuaVM) error {
		a, b, c := i.ABC()
		a++
		if err := vm.GetRK(b); err != nil {
			return err
		}
		if err := vm.GetRK(c); err != nil {
			return err
		}
		if err := vm.Arith(op); err != nil {
			return err
		}
		return vm.Replace(a)
	}
}

// unArith builds the action for the single-operand arithmetic opcodes
// (UNM, BNOT): R(A) := op R(B).
func unArith(op api.ArithOp) opcodeAction {
	return func(i Instruction, vm api.LuaVM) error {
		a, b, _ := i.ABC()
		a++
		b++
		if err := vm.PushValue(b); err != nil {
			return err
		}
		if err := vm.Arith(op); err != nil {
			return err
		}
		return vm.Replace(a)
	}
}
