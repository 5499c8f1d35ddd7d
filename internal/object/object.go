// Package object defines the runtime values primitives operate on: grids,
// cells, patches, containers and first-class callables. Set-like values are
// stored in a canonical order so deep equality and rendering never depend on
// construction order.
package object

// Kind identifies the runtime shape of a Value.
type Kind string

const (
	KindBoolean    Kind = "BOOLEAN"
	KindInteger    Kind = "INTEGER"
	KindPair       Kind = "PAIR"
	KindCell       Kind = "CELL"
	KindGrid       Kind = "GRID"
	KindObject     Kind = "OBJECT"
	KindObjects    Kind = "OBJECTS"
	KindIndices    Kind = "INDICES"
	KindIndicesSet Kind = "INDICES_SET"
	KindIntSet     Kind = "INTEGER_SET"
	KindTuple      Kind = "TUPLE"
	KindCallable   Kind = "CALLABLE"
)

// Value is a runtime value.
type Value interface {
	Kind() Kind
	Inspect() string
}

// Patch is a value addressable as a set of grid locations: an Object
// (cells with colors) or an Indices (bare locations).
type Patch interface {
	Value
	patch()
}

// Element is a value with per-location colors: a Grid or an Object.
type Element interface {
	Value
	element()
}

// Piece is any grid fragment: a Grid, an Object or an Indices.
type Piece interface {
	Value
	piece()
}

// Numerical is an Integer or a Pair; arithmetic primitives accept either
// and broadcast integers over pairs.
type Numerical interface {
	Value
	numerical()
}
