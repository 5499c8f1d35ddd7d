package dsl

import (
	"fmt"

	"github.com/gridmind/gridil/internal/object"
)

// Conversion helpers panic on a kind mismatch. The evaluator recovers the
// panic and rejects the hypothesis, so a primitive fed an impossible value
// costs one failed candidate rather than an engine error.

func asBoolean(v object.Value) object.Boolean {
	if b, ok := v.(object.Boolean); ok {
		return b
	}
	panic(fmt.Sprintf("dsl: want %s, got %s", object.KindBoolean, v.Kind()))
}

// asInteger also admits booleans, which count as 0 and 1 wherever an
// integer is expected.
func asInteger(v object.Value) object.Integer {
	if n, ok := numInt(v); ok {
		return object.Integer(n)
	}
	panic(fmt.Sprintf("dsl: want %s, got %s", object.KindInteger, v.Kind()))
}

func asPair(v object.Value) object.Pair {
	if p, ok := v.(object.Pair); ok {
		return p
	}
	panic(fmt.Sprintf("dsl: want %s, got %s", object.KindPair, v.Kind()))
}

func asGrid(v object.Value) *object.Grid {
	if g, ok := v.(*object.Grid); ok {
		return g
	}
	panic(fmt.Sprintf("dsl: want %s, got %s", object.KindGrid, v.Kind()))
}

func asObject(v object.Value) *object.Object {
	if o, ok := v.(*object.Object); ok {
		return o
	}
	panic(fmt.Sprintf("dsl: want %s, got %s", object.KindObject, v.Kind()))
}

func asObjects(v object.Value) *object.Objects {
	if s, ok := v.(*object.Objects); ok {
		return s
	}
	panic(fmt.Sprintf("dsl: want %s, got %s", object.KindObjects, v.Kind()))
}

func asIndices(v object.Value) *object.Indices {
	if x, ok := v.(*object.Indices); ok {
		return x
	}
	panic(fmt.Sprintf("dsl: want %s, got %s", object.KindIndices, v.Kind()))
}

func asTuple(v object.Value) *object.Tuple {
	if t, ok := v.(*object.Tuple); ok {
		return t
	}
	panic(fmt.Sprintf("dsl: want %s, got %s", object.KindTuple, v.Kind()))
}

func asCallable(v object.Value) *object.Callable {
	if c, ok := v.(*object.Callable); ok {
		return c
	}
	panic(fmt.Sprintf("dsl: want %s, got %s", object.KindCallable, v.Kind()))
}

// numInt reads an integer out of an integer or boolean value.
func numInt(v object.Value) (int, bool) {
	switch n := v.(type) {
	case object.Integer:
		return int(n), true
	case object.Boolean:
		if n {
			return 1, true
		}
		return 0, true
	}
	return 0, false
}

// truthy is untyped truthiness: false booleans, zero integers and empty
// containers are false, everything else is true.
func truthy(v object.Value) bool {
	switch tv := v.(type) {
	case object.Boolean:
		return bool(tv)
	case object.Integer:
		return tv != 0
	}
	if items, ok := object.Elements(v); ok {
		return len(items) > 0
	}
	return true
}

// callValue invokes fn and panics on failure, leaving the report to the
// enclosing primitive call.
func callValue(fn *object.Callable, args ...object.Value) object.Value {
	out, err := fn.Call(args...)
	if err != nil {
		panic(err)
	}
	return out
}

// elems lists the members of a container value in canonical order. The
// returned slice is shared and must not be appended to.
func elems(v object.Value) []object.Value {
	items, ok := object.Elements(v)
	if !ok {
		panic(fmt.Sprintf("dsl: want a container, got %s", v.Kind()))
	}
	return items
}

func sizeOf(v object.Value) int { return len(elems(v)) }

func containsValue(container object.Value, v object.Value) bool {
	for _, item := range elems(container) {
		if object.Equal(item, v) {
			return true
		}
	}
	return false
}

// collect rebuilds a container shaped like the prototype from items. When
// the prototype cannot hold them, the items decide: a set is built from
// their common kind.
func collect(like object.Value, items []object.Value) object.Value {
	if out, err := object.Rebuild(like, items); err == nil {
		return out
	}
	return setOf(items)
}

// setOf builds the narrowest set holding items: an integer set, an index
// set, an object, or a set of objects or index sets. Mixed or unsettable
// element kinds degrade to a tuple.
func setOf(items []object.Value) object.Value {
	if len(items) == 0 {
		return object.NewTuple()
	}
	switch items[0].(type) {
	case object.Integer:
		values := make([]int, len(items))
		for i, item := range items {
			n, ok := item.(object.Integer)
			if !ok {
				return object.NewTuple(items...)
			}
			values[i] = int(n)
		}
		return object.NewIntSet(values)
	case object.Pair:
		locs := make([]object.Pair, len(items))
		for i, item := range items {
			p, ok := item.(object.Pair)
			if !ok {
				return object.NewTuple(items...)
			}
			locs[i] = p
		}
		return object.NewIndices(locs)
	case object.Cell:
		cells := make([]object.Cell, len(items))
		for i, item := range items {
			c, ok := item.(object.Cell)
			if !ok {
				return object.NewTuple(items...)
			}
			cells[i] = c
		}
		return object.NewObject(cells)
	case *object.Object:
		objs := make([]*object.Object, len(items))
		for i, item := range items {
			o, ok := item.(*object.Object)
			if !ok {
				return object.NewTuple(items...)
			}
			objs[i] = o
		}
		return object.NewObjects(objs)
	case *object.Indices:
		sets := make([]*object.Indices, len(items))
		for i, item := range items {
			x, ok := item.(*object.Indices)
			if !ok {
				return object.NewTuple(items...)
			}
			sets[i] = x
		}
		return object.NewIndicesSet(sets)
	}
	return object.NewTuple(items...)
}

// patchLocs returns the locations of a patch, object or indices alike.
func patchLocs(p object.Value) []object.Pair {
	switch v := p.(type) {
	case *object.Object:
		cells := v.Cells()
		locs := make([]object.Pair, len(cells))
		for i, c := range cells {
			locs[i] = c.Loc
		}
		return locs
	case *object.Indices:
		return v.Locs()
	}
	panic(fmt.Sprintf("dsl: want a patch, got %s", p.Kind()))
}

// mapPatch rewrites every location of a patch, preserving its kind.
func mapPatch(p object.Value, f func(object.Pair) object.Pair) object.Value {
	switch v := p.(type) {
	case *object.Object:
		cells := make([]object.Cell, v.Len())
		for i, c := range v.Cells() {
			cells[i] = object.Cell{Value: c.Value, Loc: f(c.Loc)}
		}
		return object.NewObject(cells)
	case *object.Indices:
		locs := make([]object.Pair, v.Len())
		for i, loc := range v.Locs() {
			locs[i] = f(loc)
		}
		return object.NewIndices(locs)
	}
	panic(fmt.Sprintf("dsl: want a patch, got %s", p.Kind()))
}

// bounds returns the upper-left and lower-right corners spanning locs.
func bounds(locs []object.Pair) (object.Pair, object.Pair) {
	if len(locs) == 0 {
		panic("dsl: empty patch")
	}
	ul, lr := locs[0], locs[0]
	for _, p := range locs[1:] {
		ul.I, ul.J = min(ul.I, p.I), min(ul.J, p.J)
		lr.I, lr.J = max(lr.I, p.I), max(lr.J, p.J)
	}
	return ul, lr
}

// mutableRows deep-copies the rows of a grid for in-place edits.
func mutableRows(g *object.Grid) [][]int {
	rows := make([][]int, g.Height())
	for i, row := range g.Rows() {
		rows[i] = append([]int(nil), row...)
	}
	return rows
}

// elementValues lists the colors of an element, cell by cell.
func elementValues(e object.Value) []int {
	switch v := e.(type) {
	case *object.Grid:
		out := make([]int, 0, v.Height()*v.Width())
		for _, row := range v.Rows() {
			out = append(out, row...)
		}
		return out
	case *object.Object:
		out := make([]int, v.Len())
		for i, c := range v.Cells() {
			out[i] = c.Value
		}
		return out
	}
	panic(fmt.Sprintf("dsl: want an element, got %s", e.Kind()))
}

// floorDiv is integer division rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
