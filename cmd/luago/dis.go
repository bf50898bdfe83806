package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fanlia/luaz/binchunk"
	"github.com/fanlia/luaz/vm"
)

func newDisCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dis <file>",
		Short: "Disassemble a precompiled Lua chunk",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return disFile(args[0])
		},
	}
	return cmd
}

func disFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if !binchunk.IsBinaryChunk(data) {
		return fmt.Errorf("%s: not a precompiled Lua chunk", path)
	}
	proto, err := binchunk.Undump(data)
	if err != nil {
		return err
	}
	disProto(proto, 0)
	return nil
}

func disProto(proto *binchunk.Prototype, depth int) {
	indent := ""
	for i := 0; i < depth; i++ {
		indent += "  "
	}
	fmt.Printf("%sfunction <%s:%d,%d> (%d instructions, %d params, %d upvalues, %d slots)\n",
		indent, proto.Source, proto.LineDefined, proto.LastLineDefined,
		len(proto.Code), proto.NumParams, len(proto.Upvalues), proto.MaxStackSize)

	for pc, code := range proto.Code {
		inst := vm.Instruction(code)
		line := ""
		if pc < len(proto.LineInfo) {
			line = fmt.Sprintf("%d", proto.LineInfo[pc])
		}
		fmt.Printf("%s  [%d] line %s: %s %s\n", indent, pc+1, line, inst.OpName(), disOperands(inst))
	}

	for _, child := range proto.Protos {
		disProto(child, depth+1)
	}
}

func disOperands(inst vm.Instruction) string {
	switch inst.OpMode() {
	case vm.IABC:
		a, b, c := inst.ABC()
		return fmt.Sprintf("%d %d %d", a, b, c)
	case vm.IABx:
		a, bx := inst.ABx()
		return fmt.Sprintf("%d %d", a, bx)
	case vm.IAsBx:
		a, sbx := inst.AsBx()
		return fmt.Sprintf("%d %d", a, sbx)
	case vm.IAx:
		return fmt.Sprintf("%d", inst.Ax())
	default:
		return ""
	}
}
