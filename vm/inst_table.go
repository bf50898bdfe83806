package vm

import "github.com/fanlia/luaz/api"

// newtable: R(A) := {} (array hint from B, hash hint from C, both
// floating-byte encoded)
func newTable(i Instruction, vm api.LuaVM) error {
	a, b, c := i.ABC()
	a++
	if err := vm.CreateTable(Fb2int(b), Fb2int(c)); err != nil {
		return err
	}
	return vm.Replace(a)
}

// gettable: R(A) := R(B)[RK(C)]
func getTable(i Instruction, vm api.LuaVM) error {
	a, b, c := i.ABC()
	a++
	b++
	if err := vm.GetRK(c); err != nil {
		return err
	}
	if _, err := vm.GetTable(b); err != nil {
		return err
	}
	return vm.Replace(a)
}

// settable: R(A)[RK(B)] := RK(C)
func setTable(i Instruction, vm api.LuaVM) error {
	a, b, c := i.ABC()
	a++
	if err := vm.GetRK(b); err != nil {
		return err
	}
	if err := vm.GetRK(c); err != nil {
		return err
	}
	return vm.SetTable(a)
}

// setlist: R(A)[(C-1)*FPF+i] := R(A+i), 1<=i<=B
//
// B=0 means "use every value from A+1 to the current stack top" (the
// compiler emits that when the last expression in the list might have
// expanded to multiple values). C=0 means the real C rides in the
// following EXTRAARG, for tables large enough to overflow C's 9 bits.
func setList(i Instruction, vm api.LuaVM) error {
	a, b, c := i.ABC()
	a++
	if c > 0 {
		c--
	} else {
		ext, err := vm.Fetch()
		if err != nil {
			return err
		}
		c = Instruction(ext).Ax() - 1
	}
	flushToTop := b == 0
	if flushToTop {
		b = vm.GetTop() - a
	}
	vm.CheckStack(1)
	for j := 1; j <= b; j++ {
		if err := vm.PushValue(a + j); err != nil {
			return err
		}
		if err := vm.SetI(a, int64(c*LFIELDS_PER_FLUSH+j)); err != nil {
			return err
		}
	}
	if flushToTop {
		return vm.SetTop(a)
	}
	return nil
}
