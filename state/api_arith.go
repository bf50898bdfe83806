package state

import (
	"math"

	"github.com/fanlia/luaz/api"
	"github.com/fanlia/luaz/luaerr"
	"github.com/fanlia/luaz/number"
)

// arithOperand classifies v for the "prefer integer" family of operators
// (+ - * % //): an int64 value or a string parsing as an integer literal
// is an integer candidate; a float64 value (even one that happens to be
// integral, e.g. 4.0) or a string parsing only as a float is a float
// candidate. This is deliberately stricter than convertToInteger, which
// additionally accepts exactly-representable floats — that laxer rule is
// reserved for the bitwise family, where Lua really does accept 2.0 as 2.
func arithOperand(v luaValue) (i int64, isInt bool, f float64, ok bool) {
	switch x := v.(type) {
	case int64:
		return x, true, 0, true
	case float64:
		return 0, false, x, true
	case string:
		if iv, ok := number.ParseInteger(x); ok {
			return iv, true, 0, true
		}
		if fv, ok := number.ParseFloat(x); ok {
			return 0, false, fv, true
		}
		return 0, false, 0, false
	default:
		return 0, false, 0, false
	}
}

func asFloat(i int64, isInt bool, f float64) float64 {
	if isInt {
		return float64(i)
	}
	return f
}

// Arith pops one operand (Unm, Bnot) or two (everything else), applies op
// following Lua 5.3's arithmetic coercion rules, and pushes the result.
func (s *State) Arith(op api.ArithOp) error {
	var a, b luaValue
	var err error

	unary := op == api.OpUnm || op == api.OpBnot
	if unary {
		a, err = s.stack.pop()
		if err != nil {
			return err
		}
		b = a
	} else {
		b, err = s.stack.pop()
		if err != nil {
			return err
		}
		a, err = s.stack.pop()
		if err != nil {
			return err
		}
	}

	result, ok := applyArith(op, a, b)
	if !ok {
		return luaerr.New(luaerr.ArithmeticError, "no valid numeric coercion for operator")
	}
	return s.stack.push(result)
}

func applyArith(op api.ArithOp, a, b luaValue) (luaValue, bool) {
	switch op {
	case api.OpAdd, api.OpSub, api.OpMul, api.OpMod, api.OpIDiv:
		return applyPreferIntArith(op, a, b)
	case api.OpPow, api.OpDiv:
		af, aok := convertToFloat(a)
		bf, bok := convertToFloat(b)
		if !aok || !bok {
			return nil, false
		}
		if op == api.OpPow {
			return math.Pow(af, bf), true
		}
		return af / bf, true
	case api.OpBand, api.OpBor, api.OpBxor, api.OpShl, api.OpShr:
		ai, aok := convertToInteger(a)
		bi, bok := convertToInteger(b)
		if !aok || !bok {
			return nil, false
		}
		return applyBitwise(op, ai, bi), true
	case api.OpUnm:
		ai, isInt, af, ok := arithOperand(a)
		if !ok {
			return nil, false
		}
		if isInt {
			return -ai, true
		}
		return -af, true
	case api.OpBnot:
		ai, ok := convertToInteger(a)
		if !ok {
			return nil, false
		}
		return ^ai, true
	default:
		return nil, false
	}
}

func applyPreferIntArith(op api.ArithOp, a, b luaValue) (luaValue, bool) {
	ai, aIsInt, af, aok := arithOperand(a)
	bi, bIsInt, bf, bok := arithOperand(b)
	if !aok || !bok {
		return nil, false
	}

	if aIsInt && bIsInt {
		switch op {
		case api.OpAdd:
			return ai + bi, true
		case api.OpSub:
			return ai - bi, true
		case api.OpMul:
			return ai * bi, true
		case api.OpMod:
			if bi == 0 {
				return nil, false
			}
			return number.IMod(ai, bi), true
		case api.OpIDiv:
			if bi == 0 {
				return nil, false
			}
			return number.IFloorDiv(ai, bi), true
		}
	}

	x, y := asFloat(ai, aIsInt, af), asFloat(bi, bIsInt, bf)
	switch op {
	case api.OpAdd:
		return x + y, true
	case api.OpSub:
		return x - y, true
	case api.OpMul:
		return x * y, true
	case api.OpMod:
		return number.FMod(x, y), true
	case api.OpIDiv:
		return number.FFloorDiv(x, y), true
	}
	return nil, false
}

func applyBitwise(op api.ArithOp, a, b int64) int64 {
	switch op {
	case api.OpBand:
		return a & b
	case api.OpBor:
		return a | b
	case api.OpBxor:
		return a ^ b
	case api.OpShl:
		return number.ShiftLeft(a, b)
	case api.OpShr:
		return number.ShiftRight(a, b)
	default:
		panic("unreachable: not a bitwise operator")
	}
}
