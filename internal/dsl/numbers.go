package dsl

import "github.com/gridmind/gridil/internal/object"

// binaryNum applies f to integers or pairwise to pairs, broadcasting an
// integer over a pair.
func binaryNum(a, b object.Value, f func(x, y int) int) object.Value {
	ai, aInt := numInt(a)
	bi, bInt := numInt(b)
	switch {
	case aInt && bInt:
		return object.Integer(f(ai, bi))
	case aInt:
		bp := asPair(b)
		return object.Pair{I: f(ai, bp.I), J: f(ai, bp.J)}
	case bInt:
		ap := asPair(a)
		return object.Pair{I: f(ap.I, bi), J: f(ap.J, bi)}
	default:
		ap, bp := asPair(a), asPair(b)
		return object.Pair{I: f(ap.I, bp.I), J: f(ap.J, bp.J)}
	}
}

func unaryNum(n object.Value, f func(x int) int) object.Value {
	if v, ok := numInt(n); ok {
		return object.Integer(f(v))
	}
	p := asPair(n)
	return object.Pair{I: f(p.I), J: f(p.J)}
}

func add(a Numerical, b Numerical) Numerical {
	return binaryNum(a, b, func(x, y int) int { return x + y })
}

func subtract(a Numerical, b Numerical) Numerical {
	return binaryNum(a, b, func(x, y int) int { return x - y })
}

func multiply(a Numerical, b Numerical) Numerical {
	return binaryNum(a, b, func(x, y int) int { return x * y })
}

// divide rounds toward negative infinity, like // does.
func divide(a Numerical, b Numerical) Numerical {
	return binaryNum(a, b, floorDiv)
}

func invert(n Numerical) Numerical {
	return unaryNum(n, func(x int) int { return -x })
}

func double(n Numerical) Numerical {
	return unaryNum(n, func(x int) int { return 2 * x })
}

func halve(n Numerical) Numerical {
	return unaryNum(n, func(x int) int { return floorDiv(x, 2) })
}

func increment(x Numerical) Numerical {
	return unaryNum(x, func(v int) int { return v + 1 })
}

func decrement(x Numerical) Numerical {
	return unaryNum(x, func(v int) int { return v - 1 })
}

func even(n Integer) Boolean { return n%2 == 0 }

func positive(x Integer) Boolean { return x > 0 }

func flip(b Boolean) Boolean { return !b }

func both(a Boolean, b Boolean) Boolean { return a && b }

func either(a Boolean, b Boolean) Boolean { return a || b }

func equality(a Any, b Any) Boolean { return Boolean(object.Equal(a, b)) }

func greater(a Integer, b Integer) Boolean { return a > b }

func astuple(a Integer, b Integer) IntegerTuple {
	return object.Pair{I: int(a), J: int(b)}
}

func toivec(i Integer) IntegerTuple { return object.Pair{I: int(i)} }

func tojvec(j Integer) IntegerTuple { return object.Pair{J: int(j)} }
