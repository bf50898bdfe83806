package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"zombiezen.com/go/log"

	"github.com/fanlia/luaz/binchunk"
	"github.com/fanlia/luaz/state"
	"github.com/fanlia/luaz/vm"
)

func newRunCommand() *cobra.Command {
	var stackSize int
	var trace bool

	cmd := &cobra.Command{
		Use:   "run <file>",
		Short: "Execute a precompiled Lua chunk",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			initLogging(trace)
			return runFile(args[0], stackSize, trace)
		},
	}
	cmd.Flags().IntVar(&stackSize, "stack-size", 0, "value stack capacity (raised to at least the chunk's MaxStackSize plus state.DefaultExtraStack)")
	cmd.Flags().BoolVar(&trace, "trace", false, "log each executed instruction at debug level")
	return cmd
}

func runFile(path string, stackSize int, trace bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if !binchunk.IsBinaryChunk(data) {
		return fmt.Errorf("%s: not a precompiled Lua chunk (source compilation is out of scope)", path)
	}
	proto, err := binchunk.Undump(data)
	if err != nil {
		return err
	}

	s := state.New(stackSize, proto)

	ctx := context.Background()
	var traceFn func(pc int, inst vm.Instruction)
	if trace {
		traceFn = func(pc int, inst vm.Instruction) {
			log.Debugf(ctx, "[%02d] %s", pc, inst.OpName())
		}
	}
	if err := vm.Run(s, traceFn); err != nil {
		return err
	}

	printStack(s)
	return nil
}
