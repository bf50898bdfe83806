package state

import (
	"fmt"

	"github.com/fanlia/luaz/api"
	"github.com/fanlia/luaz/luaerr"
)

// Compare is pure: it reads the two indices and answers op, without
// touching the stack.
func (s *State) Compare(idx1, idx2 int, op api.CompareOp) (bool, error) {
	a := s.stack.get(idx1)
	b := s.stack.get(idx2)

	switch op {
	case api.OpEq:
		return valuesEqual(a, b), nil
	case api.OpLt:
		r, ok := lessThan(a, b)
		if !ok {
			return false, luaerr.New(luaerr.ArithmeticError, "attempt to compare incompatible values")
		}
		return r, nil
	case api.OpLe:
		r, ok := lessOrEqual(a, b)
		if !ok {
			return false, luaerr.New(luaerr.ArithmeticError, "attempt to compare incompatible values")
		}
		return r, nil
	default:
		return false, luaerr.New(luaerr.ArithmeticError, "unknown compare operator")
	}
}

// Len implements #v: byte length for strings, array length for tables,
// LengthError for everything else.
func (s *State) Len(idx int) error {
	v := s.stack.get(idx)
	switch x := v.(type) {
	case string:
		return s.stack.push(int64(len(x)))
	case *Table:
		return s.stack.push(int64(x.Len()))
	default:
		return luaerr.New(luaerr.LengthError, "attempt to get length of a %s value", s.TypeName(typeOf(v)))
	}
}

// Concat concatenates the top n stack items in place, coercing numbers to
// their default decimal string form. n=0 pushes "". n=1 is a no-op.
func (s *State) Concat(n int) error {
	if n == 0 {
		return s.stack.push("")
	}
	for n > 1 {
		b, err := s.stack.pop()
		if err != nil {
			return err
		}
		a, err := s.stack.pop()
		if err != nil {
			return err
		}
		as, aok := concatOperand(a)
		bs, bok := concatOperand(b)
		if !aok || !bok {
			return luaerr.New(luaerr.ArithmeticError, "attempt to concatenate a non-string/non-number value")
		}
		if err := s.stack.push(as + bs); err != nil {
			return err
		}
		n--
	}
	return nil
}

func concatOperand(v luaValue) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case int64, float64:
		return fmt.Sprintf("%v", x), true
	default:
		return "", false
	}
}
