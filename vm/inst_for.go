package vm

import "github.com/fanlia/luaz/api"

// forprep: R(A) -= R(A+2); pc += sBx
//
// The loop's three control slots sit at A (index), A+1 (limit), A+2
// (step); FORPREP biases the index back by one step so the first
// FORLOOP can uniformly add the step before testing the limit.
func forPrep(i Instruction, vm api.LuaVM) error {
	a, sbx := i.AsBx()
	a++
	if err := vm.PushValue(a); err != nil {
		return err
	}
	if err := vm.PushValue(a + 2); err != nil {
		return err
	}
	if err := vm.Arith(api.OpSub); err != nil {
		return err
	}
	if err := vm.Replace(a); err != nil {
		return err
	}
	vm.AddPC(sbx)
	return nil
}

// forloop: R(A) += R(A+2);
// if R(A) <?= R(A+1) then { pc += sBx; R(A+3) := R(A) }
//
// The direction of the limit test follows the sign of the step, not a
// fixed <=, since Lua's numeric for runs backwards when the step is
// negative.
func forLoop(i Instruction, vm api.LuaVM) error {
	a, sbx := i.AsBx()
	a++
	if err := vm.PushValue(a); err != nil {
		return err
	}
	if err := vm.PushValue(a + 2); err != nil {
		return err
	}
	if err := vm.Arith(api.OpAdd); err != nil {
		return err
	}
	if err := vm.Replace(a); err != nil {
		return err
	}

	stepPositive, err := isStepPositive(vm, a+2)
	if err != nil {
		return err
	}

	var continues bool
	if stepPositive {
		continues, err = vm.Compare(a, a+1, api.OpLe)
	} else {
		continues, err = vm.Compare(a+1, a, api.OpLe)
	}
	if err != nil {
		return err
	}
	if !continues {
		return nil
	}
	vm.AddPC(sbx)
	return vm.Copy(a, a+3)
}

// isStepPositive decides the limit test's direction by comparing the step
// against zero with the same exact integer/float rules Compare uses
// elsewhere, rather than reading it out as a float64.
func isStepPositive(vm api.LuaVM, idx int) (bool, error) {
	if err := vm.PushInteger(0); err != nil {
		return false, err
	}
	zero := vm.GetTop()
	positive, err := vm.Compare(zero, idx, api.OpLt)
	if err != nil {
		return false, err
	}
	if err := vm.Pop(1); err != nil {
		return false, err
	}
	return positive, nil
}
