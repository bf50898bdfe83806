package state

import (
	"github.com/fanlia/luaz/api"
	"github.com/fanlia/luaz/number"
)

// luaValue is Lua's dynamic value as a tagged union. Go's dynamic typing
// already gives us the tag: nil, bool, int64, float64, string, or *Table
// are the only variants ever stored in a Stack slot or a Table.
type luaValue interface{}

func typeOf(v luaValue) api.LuaType {
	switch v.(type) {
	case nil:
		return api.LUA_TNIL
	case bool:
		return api.LUA_TBOOLEAN
	case int64, float64:
		return api.LUA_TNUMBER
	case string:
		return api.LUA_TSTRING
	case *Table:
		return api.LUA_TTABLE
	default:
		panic("unreachable: unexpected lua value type")
	}
}

func convertToBoolean(v luaValue) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	default:
		return true
	}
}

func convertToFloat(v luaValue) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case int64:
		return float64(x), true
	case string:
		return number.ParseFloat(x)
	default:
		return 0, false
	}
}

func convertToInteger(v luaValue) (int64, bool) {
	switch x := v.(type) {
	case int64:
		return x, true
	case float64:
		return number.FloatToInteger(x)
	case string:
		return stringToInteger(x)
	default:
		return 0, false
	}
}

func stringToInteger(s string) (int64, bool) {
	if i, ok := number.ParseInteger(s); ok {
		return i, true
	}
	if f, ok := number.ParseFloat(s); ok {
		return number.FloatToInteger(f)
	}
	return 0, false
}

// normalizeKey applies the table-key normalization rule: a float that
// exactly represents an integer is treated as that integer, so t[1.0] and
// t[1] name the same slot.
func normalizeKey(k luaValue) luaValue {
	if f, ok := k.(float64); ok {
		if i, ok := number.FloatToInteger(f); ok {
			return i
		}
	}
	return k
}

// valuesEqual implements Lua 5.3 equality: numeric cross-type comparison,
// bytewise string comparison, table comparison by identity, nil equals
// only nil.
func valuesEqual(a, b luaValue) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch x := a.(type) {
	case bool:
		y, ok := b.(bool)
		return ok && x == y
	case string:
		y, ok := b.(string)
		return ok && x == y
	case int64:
		switch y := b.(type) {
		case int64:
			return x == y
		case float64:
			return float64(x) == y
		default:
			return false
		}
	case float64:
		switch y := b.(type) {
		case int64:
			return x == float64(y)
		case float64:
			return x == y
		default:
			return false
		}
	case *Table:
		y, ok := b.(*Table)
		return ok && x == y
	default:
		return false
	}
}

// lessThan and lessOrEqual implement Lua's ordering: numeric cross-type
// comparison (integer promoted to float), bytewise lexicographic string
// comparison, and false for everything else (no metamethods in this core).
func lessThan(a, b luaValue) (bool, bool) {
	if ai, aok := a.(int64); aok {
		if bi, bok := b.(int64); bok {
			return ai < bi, true
		}
	}
	if af, aok := numericValue(a); aok {
		if bf, bok := numericValue(b); bok {
			return af < bf, true
		}
		return false, false
	}
	if as, aok := a.(string); aok {
		if bs, bok := b.(string); bok {
			return as < bs, true
		}
	}
	return false, false
}

func lessOrEqual(a, b luaValue) (bool, bool) {
	if ai, aok := a.(int64); aok {
		if bi, bok := b.(int64); bok {
			return ai <= bi, true
		}
	}
	if af, aok := numericValue(a); aok {
		if bf, bok := numericValue(b); bok {
			return af <= bf, true
		}
		return false, false
	}
	if as, aok := a.(string); aok {
		if bs, bok := b.(string); bok {
			return as <= bs, true
		}
	}
	return false, false
}

// numericValue returns a's numeric value as a float64 for ordering
// purposes only; it does not coerce strings (Lua does not order strings
// against numbers).
func numericValue(v luaValue) (float64, bool) {
	switch x := v.(type) {
	case int64:
		return float64(x), true
	case float64:
		return x, true
	default:
		return 0, false
	}
}
