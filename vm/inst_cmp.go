package vm

import "github.com/fanlia/luaz/api"

// relational builds the action for EQ/LT/LE. These are "test"
// instructions: they never write a register, they only decide whether
// the JMP immediately following them executes. If the comparison
// disagrees with A, the JMP is skipped by advancing pc past it.
func relational(op api.CompareOp) opcodeAction {
	return func(i Instruction, vm api.LuaVM) error {
		a, b, c := i.ABC()
		if err := vm.GetRK(b); err != nil {
			return err
		}
		if err := vm.GetRK(c); err != nil {
			return err
		}
		cmp, err := vm.Compare(-2, -1, op)
		if err != nil {
			return err
		}
		if err := vm.Pop(2); err != nil {
			return err
		}
		if cmp != (a != 0) {
			vm.AddPC(1)
		}
		return nil
	}
}

// test: if (bool)R(A) != C then pc++
func test(i Instruction, vm api.LuaVM) error {
	a, _, c := i.ABC()
	a++
	if vm.ToBoolean(a) != (c != 0) {
		vm.AddPC(1)
	}
	return nil
}

// testset: if (bool)R(B) == C then R(A) := R(B) else pc++
func testSet(i Instruction, vm api.LuaVM) error {
	a, b, c := i.ABC()
	a++
	b++
	if vm.ToBoolean(b) == (c != 0) {
		return vm.Copy(b, a)
	}
	vm.AddPC(1)
	return nil
}
