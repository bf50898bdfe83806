package state

import "github.com/fanlia/luaz/luaerr"

// stack is the fixed-capacity indexed slot array backing a State's value
// stack. External indices are 1-based absolute, or negative relative to
// top (-1 is top); index 0 is never valid: get treats it as out of range
// and set rejects it with InvalidIndex.
type stack struct {
	slots []luaValue
	top   int
}

func newStack(capacity int) *stack {
	return &stack{slots: make([]luaValue, capacity)}
}

func (s *stack) capacity() int {
	return len(s.slots)
}

// check grows the nil-filled tail until capacity-top >= n.
func (s *stack) check(n int) {
	free := len(s.slots) - s.top
	for i := free; i < n; i++ {
		s.slots = append(s.slots, nil)
	}
}

func (s *stack) push(v luaValue) error {
	if s.top == len(s.slots) {
		return luaerr.New(luaerr.StackOverflow, "top=%d capacity=%d", s.top, len(s.slots))
	}
	s.slots[s.top] = v
	s.top++
	return nil
}

func (s *stack) pop() (luaValue, error) {
	if s.top < 1 {
		return nil, luaerr.New(luaerr.StackUnderflow, "top=%d", s.top)
	}
	s.top--
	v := s.slots[s.top]
	s.slots[s.top] = nil
	return v, nil
}

// absIndex converts a possibly-negative external index to an absolute
// 1-based index. It does not validate the result against top.
func (s *stack) absIndex(idx int) int {
	if idx >= 0 {
		return idx
	}
	return idx + s.top + 1
}

// get returns nil for any out-of-range index; it never errors.
func (s *stack) get(idx int) luaValue {
	abs := s.absIndex(idx)
	if abs > 0 && abs <= s.top {
		return s.slots[abs-1]
	}
	return nil
}

func (s *stack) set(idx int, v luaValue) error {
	abs := s.absIndex(idx)
	if abs > 0 && abs <= s.top {
		s.slots[abs-1] = v
		return nil
	}
	return luaerr.New(luaerr.InvalidIndex, "index %d (abs %d) out of [1,%d]", idx, abs, s.top)
}

// reverse in-place reverses the closed range [from, to] of absolute
// 0-based slot positions. Rotate implements rotation as three reversals
// over this primitive.
func (s *stack) reverse(from, to int) {
	for from < to {
		s.slots[from], s.slots[to] = s.slots[to], s.slots[from]
		from++
		to--
	}
}
