// Command luago is a thin adapter around the binchunk/state/vm packages:
// it does no decoding or execution of its own, only file IO, flag
// parsing, and printing.
package main

import (
	"context"
	"os"
	"sync"

	"github.com/spf13/cobra"
	"zombiezen.com/go/log"

	"github.com/fanlia/luaz/luaerr"
)

var initLogOnce sync.Once

func initLogging(debug bool) {
	initLogOnce.Do(func() {
		minLevel := log.Info
		if debug {
			minLevel = log.Debug
		}
		log.SetDefault(&log.LevelFilter{
			Min:    minLevel,
			Output: log.New(os.Stderr, "luago: ", log.StdFlags, nil),
		})
	})
}

func main() {
	root := &cobra.Command{
		Use:           "luago",
		Short:         "Lua 5.3 bytecode loader and register VM",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.AddCommand(newRunCommand())
	root.AddCommand(newDisCommand())

	if err := root.Execute(); err != nil {
		log.Errorf(context.Background(), "%v", err)
		os.Exit(exitCodeFor(err))
	}
}

// exitCodeFor maps error categories to process exit codes: 1 for
// decoder-stage failures, 2 for VM-stage failures, 3 for anything this
// CLI raised itself (bad args, file IO).
func exitCodeFor(err error) int {
	switch {
	case isDecodeError(err):
		return 1
	case isVMError(err):
		return 2
	default:
		return 3
	}
}

func isDecodeError(err error) bool {
	for _, k := range []luaerr.Kind{
		luaerr.NotAPrecompiledChunk,
		luaerr.VersionMismatch,
		luaerr.FormatMismatch,
		luaerr.Corrupted,
		luaerr.IntSizeMismatch,
		luaerr.SizetSizeMismatch,
		luaerr.InstructionSizeMismatch,
		luaerr.LuaIntegerSizeMismatch,
		luaerr.LuaNumberSizeMismatch,
		luaerr.EndiannessMismatch,
		luaerr.FloatFormatMismatch,
		luaerr.Truncated,
	} {
		if luaerr.Is(err, k) {
			return true
		}
	}
	return false
}

func isVMError(err error) bool {
	for _, k := range []luaerr.Kind{
		luaerr.StackOverflow,
		luaerr.StackUnderflow,
		luaerr.InvalidIndex,
		luaerr.ArithmeticError,
		luaerr.LengthError,
		luaerr.NotATable,
		luaerr.TableIndexIsNil,
		luaerr.TableIndexIsNan,
		luaerr.UnknownInstruction,
		luaerr.UnsupportedJmpClose,
		luaerr.OutOfMemory,
	} {
		if luaerr.Is(err, k) {
			return true
		}
	}
	return false
}
