// Push operations place a Go-typed literal on top of the stack.

package state

func (s *State) PushNil() error              { return s.stack.push(nil) }
func (s *State) PushBoolean(b bool) error    { return s.stack.push(b) }
func (s *State) PushInteger(n int64) error   { return s.stack.push(n) }
func (s *State) PushNumber(n float64) error  { return s.stack.push(n) }
func (s *State) PushString(str string) error { return s.stack.push(str) }
