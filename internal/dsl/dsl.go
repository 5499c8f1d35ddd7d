// Package dsl is the standard grid library: primitives over grids, objects
// and index sets, the combinators that compose them, and the constant pool
// the search draws arguments from. Primitives are ordinary unexported
// functions; the published signature table and the untyped adapters in
// signatures_gen.go are produced from their declarations by siggen.
package dsl

import (
	"github.com/gridmind/gridil/internal/catalog"
	"github.com/gridmind/gridil/internal/object"
)

//go:generate go run github.com/gridmind/gridil/cmd/siggen

// Type tags. A primitive's parameter and result types double as its
// published signature, so the names here form the tag vocabulary the
// catalog resolves. The union tags stay untyped on the Go side; each
// primitive narrows its own arguments.
type (
	Boolean      = object.Boolean
	Integer      = object.Integer
	IntegerTuple = object.Pair
	Grid         = *object.Grid
	Object       = *object.Object
	Objects      = *object.Objects
	Indices      = *object.Indices
	Tuple        = *object.Tuple
	Callable     = *object.Callable

	Numerical          = object.Value
	Patch              = object.Value
	Element            = object.Value
	Piece              = object.Value
	Container          = object.Value
	ContainerContainer = object.Value
	FrozenSet          = object.Value
	IntegerSet         = object.Value
	Any                = object.Value
)

// Library publishes the grid primitives behind the catalog interfaces.
type Library struct{}

// New returns the standard library.
func New() *Library { return &Library{} }

// Signatures returns the published signature table.
func (*Library) Signatures() []catalog.Signature { return signatures }

// Callable returns the executable form of a primitive.
func (*Library) Callable(name string) (*object.Callable, bool) {
	c, ok := adapters[name]
	return c, ok
}

// Constants returns the standard constant pool.
func (*Library) Constants() []catalog.Constant { return constantPool }
