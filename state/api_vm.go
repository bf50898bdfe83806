package state

import "github.com/fanlia/luaz/luaerr"

func (s *State) PC() int {
	return s.pc
}

func (s *State) AddPC(n int) {
	s.pc += n
}

// Fetch returns code[pc] and advances pc by one.
func (s *State) Fetch() (uint32, error) {
	if s.pc < 0 || s.pc >= len(s.proto.Code) {
		return 0, luaerr.New(luaerr.Corrupted, "pc %d out of range [0,%d)", s.pc, len(s.proto.Code))
	}
	i := s.proto.Code[s.pc]
	s.pc++
	return i, nil
}

// GetConst pushes constant idx onto the stack.
func (s *State) GetConst(idx int) error {
	if idx < 0 || idx >= len(s.proto.Constants) {
		return luaerr.New(luaerr.Corrupted, "constant index %d out of range [0,%d)", idx, len(s.proto.Constants))
	}
	return s.stack.push(s.proto.Constants[idx])
}

// GetRK pushes either constant rk&0xFF (if rk's high bit is set) or
// register rk (translated to the 1-based stack index rk+1).
func (s *State) GetRK(rk int) error {
	if rk > 0xFF {
		return s.GetConst(rk & 0xFF)
	}
	return s.PushValue(rk + 1)
}

// RegisterCount returns the current prototype's register file size.
func (s *State) RegisterCount() int {
	return int(s.proto.MaxStackSize)
}
