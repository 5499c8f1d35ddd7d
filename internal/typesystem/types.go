package typesystem

import (
	"fmt"
	"strings"
)

// Type is either a Base ground type or a Func. The vocabulary is closed:
// primitives declare their signatures in terms of these types only, and the
// generator never invents new ones.
type Type interface {
	String() string
	isType()
}

// Base is one of the ground types primitives operate on. The set mirrors the
// value kinds of the grid DSL plus three structural supertypes (Container,
// ContainerContainer, AnySet) and the Any wildcard.
type Base int

const (
	Any Base = iota
	Boolean
	Integer
	IntPair
	Grid
	Cell
	Object
	Objects
	Indices
	IndicesSet
	IntSet
	Tuple
	TupleTuple
	Container
	ContainerContainer
	AnySet
)

var baseNames = [...]string{
	Any:                "Any",
	Boolean:            "Boolean",
	Integer:            "Integer",
	IntPair:            "IntPair",
	Grid:               "Grid",
	Cell:               "Cell",
	Object:             "Object",
	Objects:            "Objects",
	Indices:            "Indices",
	IndicesSet:         "IndicesSet",
	IntSet:             "IntSet",
	Tuple:              "Tuple",
	TupleTuple:         "TupleTuple",
	Container:          "Container",
	ContainerContainer: "ContainerContainer",
	AnySet:             "AnySet",
}

func (b Base) String() string {
	if int(b) < len(baseNames) {
		return baseNames[b]
	}
	return fmt.Sprintf("Base(%d)", int(b))
}

func (Base) isType() {}

// Func is a function type. Params may be empty for nullary callables.
type Func struct {
	Params []Type
	Return Type
}

func (f Func) String() string {
	params := make([]string, len(f.Params))
	for i, p := range f.Params {
		params[i] = p.String()
	}
	ret := "Any"
	if f.Return != nil {
		ret = f.Return.String()
	}
	return fmt.Sprintf("(%s) -> %s", strings.Join(params, ", "), ret)
}

func (Func) isType() {}

// NewFunc builds a Func type from parameter types and a return type.
func NewFunc(ret Type, params ...Type) Func {
	return Func{Params: params, Return: ret}
}

// Equal reports structural equality of two types. Func types compare
// parameter-wise and by return type; a nil return slot equals Any.
func Equal(a, b Type) bool {
	switch at := a.(type) {
	case Base:
		bt, ok := b.(Base)
		return ok && at == bt
	case Func:
		bf, ok := b.(Func)
		if !ok || len(at.Params) != len(bf.Params) {
			return false
		}
		for i := range at.Params {
			if !Equal(at.Params[i], bf.Params[i]) {
				return false
			}
		}
		return Equal(orAny(at.Return), orAny(bf.Return))
	case nil:
		return b == nil
	}
	return false
}

// IsFunc reports whether t is a function type.
func IsFunc(t Type) bool {
	_, ok := t.(Func)
	return ok
}

func orAny(t Type) Type {
	if t == nil {
		return Any
	}
	return t
}
