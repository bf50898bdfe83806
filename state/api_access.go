// Access operations read the value at an index without otherwise
// mutating the stack, except ToStringX's documented in-place numeric
// rendering.

package state

import (
	"fmt"

	"github.com/fanlia/luaz/api"
)

func (s *State) Type(idx int) api.LuaType {
	if idx == 0 {
		return api.LUA_TNONE
	}
	abs := s.stack.absIndex(idx)
	if abs <= 0 || abs > s.stack.top {
		return api.LUA_TNONE
	}
	return typeOf(s.stack.get(idx))
}

func (s *State) TypeName(tp api.LuaType) string {
	switch tp {
	case api.LUA_TNONE:
		return "no value"
	case api.LUA_TNIL:
		return "nil"
	case api.LUA_TBOOLEAN:
		return "boolean"
	case api.LUA_TNUMBER:
		return "number"
	case api.LUA_TSTRING:
		return "string"
	case api.LUA_TTABLE:
		return "table"
	default:
		return "unknown"
	}
}

func (s *State) IsNone(idx int) bool       { return s.Type(idx) == api.LUA_TNONE }
func (s *State) IsNil(idx int) bool        { return s.Type(idx) == api.LUA_TNIL }
func (s *State) IsNoneOrNil(idx int) bool  { return s.Type(idx) <= api.LUA_TNIL }
func (s *State) IsBoolean(idx int) bool    { return s.Type(idx) == api.LUA_TBOOLEAN }
func (s *State) IsTable(idx int) bool      { return s.Type(idx) == api.LUA_TTABLE }
func (s *State) IsString(idx int) bool {
	t := s.Type(idx)
	return t == api.LUA_TSTRING || t == api.LUA_TNUMBER
}
func (s *State) IsNumber(idx int) bool {
	_, ok := s.ToNumberX(idx)
	return ok
}
func (s *State) IsInteger(idx int) bool {
	_, ok := s.stack.get(idx).(int64)
	return ok
}

func (s *State) ToBoolean(idx int) bool {
	return convertToBoolean(s.stack.get(idx))
}

func (s *State) ToNumber(idx int) float64 {
	n, _ := s.ToNumberX(idx)
	return n
}

func (s *State) ToNumberX(idx int) (float64, bool) {
	return convertToFloat(s.stack.get(idx))
}

func (s *State) ToInteger(idx int) int64 {
	i, _ := s.ToIntegerX(idx)
	return i
}

func (s *State) ToIntegerX(idx int) (int64, bool) {
	return convertToInteger(s.stack.get(idx))
}

func (s *State) ToString(idx int) string {
	str, _ := s.ToStringX(idx)
	return str
}

// ToStringX renders an integer or float in-place to its default decimal
// form and writes the rendered string back into the slot, matching the
// teacher's documented (if surprising) side effect.
func (s *State) ToStringX(idx int) (string, bool) {
	v := s.stack.get(idx)
	switch x := v.(type) {
	case string:
		return x, true
	case int64, float64:
		str := fmt.Sprintf("%v", x)
		_ = s.stack.set(idx, str)
		return str, true
	default:
		return "", false
	}
}
