package object

import (
	"sort"
	"strconv"
	"strings"
)

// Grid is a rectangular field of colors, indexed grid[i][j] with i the row.
// Grids are immutable: constructors copy their input and accessors must not
// be used to modify the returned slices.
type Grid struct {
	rows [][]int
}

// NewGrid copies rows into a new grid.
func NewGrid(rows [][]int) *Grid {
	copied := make([][]int, len(rows))
	for i, row := range rows {
		copied[i] = append([]int(nil), row...)
	}
	return &Grid{rows: copied}
}

func (g *Grid) Kind() Kind { return KindGrid }

func (g *Grid) Inspect() string {
	parts := make([]string, len(g.rows))
	for i, row := range g.rows {
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = strconv.Itoa(v)
		}
		parts[i] = "(" + strings.Join(cells, ", ") + ")"
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func (g *Grid) Height() int { return len(g.rows) }

func (g *Grid) Width() int {
	if len(g.rows) == 0 {
		return 0
	}
	return len(g.rows[0])
}

// At returns the color at row i, column j. It panics when the location is
// out of bounds, which the evaluator reports as an execution failure.
func (g *Grid) At(i, j int) int { return g.rows[i][j] }

// Rows returns the underlying rows. Shared, read-only.
func (g *Grid) Rows() [][]int { return g.rows }

func (g *Grid) element() {}
func (g *Grid) piece()   {}

// Object is a set of colored cells, canonically ordered.
type Object struct {
	cells []Cell
}

// NewObject builds an object from cells, deduplicating and sorting them.
func NewObject(cells []Cell) *Object {
	out := append([]Cell(nil), cells...)
	sort.Slice(out, func(a, b int) bool { return cellLess(out[a], out[b]) })
	out = dedupeCells(out)
	return &Object{cells: out}
}

func (o *Object) Kind() Kind { return KindObject }

func (o *Object) Inspect() string {
	parts := make([]string, len(o.cells))
	for i, c := range o.cells {
		parts[i] = c.Inspect()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func (o *Object) Len() int { return len(o.cells) }

// Cells returns the cells in canonical order. Shared, read-only.
func (o *Object) Cells() []Cell { return o.cells }

// Has reports whether the exact cell (color and location) is present.
func (o *Object) Has(c Cell) bool {
	i := sort.Search(len(o.cells), func(i int) bool { return !cellLess(o.cells[i], c) })
	return i < len(o.cells) && o.cells[i] == c
}

func (o *Object) patch()   {}
func (o *Object) element() {}
func (o *Object) piece()   {}

// Objects is a set of objects, canonically ordered.
type Objects struct {
	items []*Object
}

// NewObjects builds a set of objects, deduplicating equal members.
func NewObjects(items []*Object) *Objects {
	out := append([]*Object(nil), items...)
	sort.Slice(out, func(a, b int) bool { return objectCompare(out[a], out[b]) < 0 })
	kept := out[:0]
	for i, o := range out {
		if i == 0 || objectCompare(out[i-1], o) != 0 {
			kept = append(kept, o)
		}
	}
	return &Objects{items: kept}
}

func (s *Objects) Kind() Kind { return KindObjects }

func (s *Objects) Inspect() string {
	parts := make([]string, len(s.items))
	for i, o := range s.items {
		parts[i] = o.Inspect()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func (s *Objects) Len() int { return len(s.items) }

// Items returns the members in canonical order. Shared, read-only.
func (s *Objects) Items() []*Object { return s.items }

// Indices is a set of grid locations, canonically ordered.
type Indices struct {
	locs []Pair
}

// NewIndices builds an index set from locations, deduplicating and sorting.
func NewIndices(locs []Pair) *Indices {
	out := append([]Pair(nil), locs...)
	sort.Slice(out, func(a, b int) bool { return pairLess(out[a], out[b]) })
	kept := out[:0]
	for i, p := range out {
		if i == 0 || out[i-1] != p {
			kept = append(kept, p)
		}
	}
	return &Indices{locs: kept}
}

func (x *Indices) Kind() Kind { return KindIndices }

func (x *Indices) Inspect() string {
	parts := make([]string, len(x.locs))
	for i, p := range x.locs {
		parts[i] = p.Inspect()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func (x *Indices) Len() int { return len(x.locs) }

// Locs returns the locations in canonical order. Shared, read-only.
func (x *Indices) Locs() []Pair { return x.locs }

// Has reports whether the location is present.
func (x *Indices) Has(p Pair) bool {
	i := sort.Search(len(x.locs), func(i int) bool { return !pairLess(x.locs[i], p) })
	return i < len(x.locs) && x.locs[i] == p
}

func (x *Indices) patch() {}
func (x *Indices) piece() {}

// IndicesSet is a set of index sets, canonically ordered.
type IndicesSet struct {
	items []*Indices
}

// NewIndicesSet builds a set of index sets, deduplicating equal members.
func NewIndicesSet(items []*Indices) *IndicesSet {
	out := append([]*Indices(nil), items...)
	sort.Slice(out, func(a, b int) bool { return indicesCompare(out[a], out[b]) < 0 })
	kept := out[:0]
	for i, x := range out {
		if i == 0 || indicesCompare(out[i-1], x) != 0 {
			kept = append(kept, x)
		}
	}
	return &IndicesSet{items: kept}
}

func (s *IndicesSet) Kind() Kind { return KindIndicesSet }

func (s *IndicesSet) Inspect() string {
	parts := make([]string, len(s.items))
	for i, x := range s.items {
		parts[i] = x.Inspect()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func (s *IndicesSet) Len() int { return len(s.items) }

// Items returns the members in canonical order. Shared, read-only.
func (s *IndicesSet) Items() []*Indices { return s.items }

// IntSet is a set of integers, canonically ordered.
type IntSet struct {
	values []int
}

// NewIntSet builds an integer set, deduplicating and sorting.
func NewIntSet(values []int) *IntSet {
	out := append([]int(nil), values...)
	sort.Ints(out)
	kept := out[:0]
	for i, v := range out {
		if i == 0 || out[i-1] != v {
			kept = append(kept, v)
		}
	}
	return &IntSet{values: kept}
}

func (s *IntSet) Kind() Kind { return KindIntSet }

func (s *IntSet) Inspect() string {
	parts := make([]string, len(s.values))
	for i, v := range s.values {
		parts[i] = strconv.Itoa(v)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func (s *IntSet) Len() int { return len(s.values) }

// Values returns the members in ascending order. Shared, read-only.
func (s *IntSet) Values() []int { return s.values }

// Has reports whether v is present.
func (s *IntSet) Has(v int) bool {
	i := sort.SearchInts(s.values, v)
	return i < len(s.values) && s.values[i] == v
}

// Tuple is an ordered sequence of values.
type Tuple struct {
	items []Value
}

// NewTuple builds a tuple from items, preserving order.
func NewTuple(items ...Value) *Tuple {
	return &Tuple{items: append([]Value(nil), items...)}
}

func (t *Tuple) Kind() Kind { return KindTuple }

func (t *Tuple) Inspect() string {
	parts := make([]string, len(t.items))
	for i, v := range t.items {
		parts[i] = v.Inspect()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func (t *Tuple) Len() int { return len(t.items) }

// Items returns the elements in order. Shared, read-only.
func (t *Tuple) Items() []Value { return t.items }

// At returns the element at position i. It panics when out of range.
func (t *Tuple) At(i int) Value { return t.items[i] }

// dedupeCells removes adjacent duplicates from a sorted cell slice.
func dedupeCells(cells []Cell) []Cell {
	kept := cells[:0]
	for i, c := range cells {
		if i == 0 || cells[i-1] != c {
			kept = append(kept, c)
		}
	}
	return kept
}
