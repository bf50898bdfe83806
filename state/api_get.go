package state

import "github.com/fanlia/luaz/api"

func (s *State) CreateTable(nArr, nRec int) error {
	return s.stack.push(newTable(nArr, nRec))
}

func (s *State) NewTable() error {
	return s.CreateTable(0, 0)
}

// GetTable pops a key off the top of the stack, looks it up in the table
// at idx, and pushes the result.
func (s *State) GetTable(idx int) (api.LuaType, error) {
	t := s.stack.get(idx)
	k, err := s.stack.pop()
	if err != nil {
		return api.LUA_TNONE, err
	}
	return s.getTable(t, k)
}

func (s *State) GetField(idx int, k string) (api.LuaType, error) {
	t := s.stack.get(idx)
	return s.getTable(t, k)
}

func (s *State) GetI(idx int, i int64) (api.LuaType, error) {
	t := s.stack.get(idx)
	return s.getTable(t, i)
}

func (s *State) getTable(t, k luaValue) (api.LuaType, error) {
	tbl, ok := t.(*Table)
	if !ok {
		return api.LUA_TNONE, notATable()
	}
	v := tbl.Get(k)
	if err := s.stack.push(v); err != nil {
		return api.LUA_TNONE, err
	}
	return typeOf(v), nil
}
