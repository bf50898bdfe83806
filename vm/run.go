package vm

import "github.com/fanlia/luaz/api"

// Step fetches and executes a single instruction, reporting whether it
// was OP_RETURN so callers can stop their loop there (there is no call
// frame left to pop, so RETURN just ends execution).
func Step(vm api.LuaVM) (done bool, err error) {
	code, err := vm.Fetch()
	if err != nil {
		return false, err
	}
	inst := Instruction(code)
	if inst.Opcode() == OP_RETURN {
		return true, nil
	}
	if err := inst.Execute(vm); err != nil {
		return false, err
	}
	return false, nil
}

// Run drives vm to completion, calling trace (if non-nil) with the
// instruction about to execute and its program counter before each
// step — left to the caller rather than hardwired to stdout, so a CLI
// can route it through a real logger instead of printing directly.
// Before the first step Run grows the stack to the prototype's register
// count (padding with nils), so every register is an addressable slot.
func Run(vm api.LuaVM, trace func(pc int, inst Instruction)) error {
	if n := vm.RegisterCount(); vm.GetTop() < n {
		if err := vm.SetTop(n); err != nil {
			return err
		}
	}
	for {
		pc := vm.PC()
		code, err := vm.Fetch()
		if err != nil {
			return err
		}
		inst := Instruction(code)
		if trace != nil {
			trace(pc, inst)
		}
		if inst.Opcode() == OP_RETURN {
			return nil
		}
		if err := inst.Execute(vm); err != nil {
			return err
		}
	}
}
