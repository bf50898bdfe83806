// Package state implements the Value model, the hybrid Table, the
// fixed-capacity value Stack, and the State embedding API the VM
// dispatcher drives. There are no closures, calls, or coroutines here —
// state.New binds one Prototype directly.
package state

import (
	"github.com/fanlia/luaz/api"
	"github.com/fanlia/luaz/binchunk"
	"github.com/fanlia/luaz/luaerr"
)

var _ api.LuaVM = (*State)(nil)

// DefaultExtraStack is the headroom added on top of a prototype's
// MaxStackSize for transient pushes the VM makes mid-instruction (e.g.
// GetRK's constant push before a Replace), playing the role of Lua's
// own LUA_MINSTACK spare capacity.
const DefaultExtraStack = 20

// State is the Lua execution state: one value stack bound to one
// Prototype, with a signed program counter. It is not safe for
// concurrent use.
type State struct {
	stack *stack
	proto *binchunk.Prototype
	pc    int
}

// New creates a State ready to execute proto from PC 0. stackSize is the
// total slot capacity; it is raised to at least proto.MaxStackSize plus
// DefaultExtraStack if the caller passes something smaller.
func New(stackSize int, proto *binchunk.Prototype) *State {
	min := int(proto.MaxStackSize) + DefaultExtraStack
	if stackSize < min {
		stackSize = min
	}
	return &State{
		stack: newStack(stackSize),
		proto: proto,
	}
}

// indexZero is the InvalidIndex error Rotate and SetTop return for an
// index that names no stack slot (index 0, or one outside the stack).
func indexZero() error {
	return luaerr.New(luaerr.InvalidIndex, "index names no stack slot")
}
