// Stack-shape operations: these only move values around within the Stack,
// they never inspect or convert value contents.

package state

func (s *State) GetTop() int {
	return s.stack.top
}

func (s *State) AbsIndex(idx int) int {
	return s.stack.absIndex(idx)
}

func (s *State) CheckStack(n int) {
	s.stack.check(n)
}

// Pop removes the top n values, via SetTop(-n-1).
func (s *State) Pop(n int) error {
	return s.SetTop(-n - 1)
}

func (s *State) Copy(fromIdx, toIdx int) error {
	v := s.stack.get(fromIdx)
	return s.stack.set(toIdx, v)
}

func (s *State) PushValue(idx int) error {
	v := s.stack.get(idx)
	return s.stack.push(v)
}

// Replace pops the top value and writes it into idx.
func (s *State) Replace(idx int) error {
	v, err := s.stack.pop()
	if err != nil {
		return err
	}
	return s.stack.set(idx, v)
}

// Insert moves the top value down to idx, shifting everything above it up
// by one slot.
func (s *State) Insert(idx int) error {
	return s.Rotate(idx, 1)
}

// Remove deletes the value at idx, shifting everything above it down by
// one slot.
func (s *State) Remove(idx int) error {
	if err := s.Rotate(idx, -1); err != nil {
		return err
	}
	return s.Pop(1)
}

// Rotate rotates the value range [idx, top] by n slots toward the top (or,
// if n is negative, toward the bottom), implemented as three in-place
// reversals: [p,m], [m+1,t], [p,t].
func (s *State) Rotate(idx, n int) error {
	t := s.stack.top - 1
	p := s.stack.absIndex(idx) - 1
	if p < 0 || p > t {
		return indexZero()
	}
	var m int
	if n >= 0 {
		m = t - n
	} else {
		m = p - n - 1
	}
	s.stack.reverse(p, m)
	s.stack.reverse(m+1, t)
	s.stack.reverse(p, t)
	return nil
}

// SetTop grows the stack with nils or shrinks it by popping, so that the
// stack's top ends at idx.
func (s *State) SetTop(idx int) error {
	newTop := s.stack.absIndex(idx)
	if newTop < 0 {
		return indexZero()
	}

	n := s.stack.top - newTop
	if n > 0 {
		for i := 0; i < n; i++ {
			if _, err := s.stack.pop(); err != nil {
				return err
			}
		}
	} else if n < 0 {
		s.stack.check(-n)
		for i := 0; i > n; i-- {
			if err := s.stack.push(nil); err != nil {
				return err
			}
		}
	}
	return nil
}
