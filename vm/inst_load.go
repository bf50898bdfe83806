package vm

import "github.com/fanlia/luaz/api"

// loadk: R(A) := Kst(Bx)
func loadK(i Instruction, vm api.LuaVM) error {
	a, bx := i.ABx()
	a++
	if err := vm.GetConst(bx); err != nil {
		return err
	}
	return vm.Replace(a)
}

// loadkx: R(A) := Kst(extra arg), used when Bx would overflow 18 bits.
// The real constant index rides in the EXTRAARG instruction that
// immediately follows.
func loadKX(i Instruction, vm api.LuaVM) error {
	a, _ := i.ABx()
	a++
	ext, err := vm.Fetch()
	if err != nil {
		return err
	}
	if err := vm.GetConst(Instruction(ext).Ax()); err != nil {
		return err
	}
	return vm.Replace(a)
}

// loadbool: R(A) := (bool)B; if C then pc++
func loadBool(i Instruction, vm api.LuaVM) error {
	a, b, c := i.ABC()
	a++
	if err := vm.PushBoolean(b != 0); err != nil {
		return err
	}
	if err := vm.Replace(a); err != nil {
		return err
	}
	if c != 0 {
		vm.AddPC(1)
	}
	return nil
}

// loadnil: R(A), R(A+1), ..., R(A+B) := nil
func loadNil(i Instruction, vm api.LuaVM) error {
	a, b, _ := i.ABC()
	a++
	if err := vm.PushNil(); err != nil {
		return err
	}
	for ; b >= 0; b-- {
		if err := vm.Copy(-1, a); err != nil {
			return err
		}
		a++
	}
	return vm.Pop(1)
}
