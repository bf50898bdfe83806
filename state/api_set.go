package state

import "github.com/fanlia/luaz/luaerr"

func notATable() error {
	return luaerr.New(luaerr.NotATable, "receiver is not a table")
}

// SetTable pops value then key off the stack and writes t[k]=v into the
// table at idx.
func (s *State) SetTable(idx int) error {
	t := s.stack.get(idx)
	v, err := s.stack.pop()
	if err != nil {
		return err
	}
	k, err := s.stack.pop()
	if err != nil {
		return err
	}
	return s.setTable(t, k, v)
}

// SetField pops value off the stack and writes t[k]=v where k is the
// given field name.
func (s *State) SetField(idx int, k string) error {
	t := s.stack.get(idx)
	v, err := s.stack.pop()
	if err != nil {
		return err
	}
	return s.setTable(t, k, v)
}

// SetI pops value off the stack and writes t[i]=v.
func (s *State) SetI(idx int, i int64) error {
	t := s.stack.get(idx)
	v, err := s.stack.pop()
	if err != nil {
		return err
	}
	return s.setTable(t, i, v)
}

func (s *State) setTable(t, k, v luaValue) error {
	tbl, ok := t.(*Table)
	if !ok {
		return notATable()
	}
	return tbl.Put(k, v)
}
