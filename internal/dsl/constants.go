package dsl

import (
	"github.com/gridmind/gridil/internal/catalog"
	"github.com/gridmind/gridil/internal/object"
)

// constantPool is the standard constant catalog. The declaration order is
// load-bearing: it fixes the order constants are offered as arguments.
var constantPool = []catalog.Constant{
	{Name: "T", Tag: "Boolean", Value: object.Boolean(true)},
	{Name: "F", Tag: "Boolean", Value: object.Boolean(false)},
	{Name: "ZERO", Tag: "Integer", Value: object.Integer(0)},
	{Name: "ONE", Tag: "Integer", Value: object.Integer(1)},
	{Name: "TWO", Tag: "Integer", Value: object.Integer(2)},
	{Name: "THREE", Tag: "Integer", Value: object.Integer(3)},
	{Name: "FOUR", Tag: "Integer", Value: object.Integer(4)},
	{Name: "FIVE", Tag: "Integer", Value: object.Integer(5)},
	{Name: "SIX", Tag: "Integer", Value: object.Integer(6)},
	{Name: "SEVEN", Tag: "Integer", Value: object.Integer(7)},
	{Name: "EIGHT", Tag: "Integer", Value: object.Integer(8)},
	{Name: "NINE", Tag: "Integer", Value: object.Integer(9)},
	{Name: "TEN", Tag: "Integer", Value: object.Integer(10)},
	{Name: "NEG_ONE", Tag: "Integer", Value: object.Integer(-1)},
	{Name: "NEG_TWO", Tag: "Integer", Value: object.Integer(-2)},
	{Name: "DOWN", Tag: "IntegerTuple", Value: object.Pair{I: 1, J: 0}},
	{Name: "RIGHT", Tag: "IntegerTuple", Value: object.Pair{I: 0, J: 1}},
	{Name: "UP", Tag: "IntegerTuple", Value: object.Pair{I: -1, J: 0}},
	{Name: "LEFT", Tag: "IntegerTuple", Value: object.Pair{I: 0, J: -1}},
	{Name: "ORIGIN", Tag: "IntegerTuple", Value: object.Pair{I: 0, J: 0}},
	{Name: "UNITY", Tag: "IntegerTuple", Value: object.Pair{I: 1, J: 1}},
	{Name: "NEG_UNITY", Tag: "IntegerTuple", Value: object.Pair{I: -1, J: -1}},
	{Name: "UP_RIGHT", Tag: "IntegerTuple", Value: object.Pair{I: -1, J: 1}},
	{Name: "DOWN_LEFT", Tag: "IntegerTuple", Value: object.Pair{I: 1, J: -1}},
	{Name: "ZERO_BY_TWO", Tag: "IntegerTuple", Value: object.Pair{I: 0, J: 2}},
	{Name: "TWO_BY_ZERO", Tag: "IntegerTuple", Value: object.Pair{I: 2, J: 0}},
	{Name: "TWO_BY_TWO", Tag: "IntegerTuple", Value: object.Pair{I: 2, J: 2}},
	{Name: "THREE_BY_THREE", Tag: "IntegerTuple", Value: object.Pair{I: 3, J: 3}},
}
