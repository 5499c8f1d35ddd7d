package object

import "fmt"

// Elements lists the members of a container value: tuple items in order,
// set members in canonical order, grid rows as tuples of integers. The
// second result is false for non-container values.
func Elements(v Value) ([]Value, bool) {
	switch cv := v.(type) {
	case *Tuple:
		return cv.items, true
	case *Grid:
		rows := make([]Value, len(cv.rows))
		for i, row := range cv.rows {
			items := make([]Value, len(row))
			for j, cell := range row {
				items[j] = Integer(cell)
			}
			rows[i] = NewTuple(items...)
		}
		return rows, true
	case *Object:
		out := make([]Value, len(cv.cells))
		for i, c := range cv.cells {
			out[i] = c
		}
		return out, true
	case *Objects:
		out := make([]Value, len(cv.items))
		for i, o := range cv.items {
			out[i] = o
		}
		return out, true
	case *Indices:
		out := make([]Value, len(cv.locs))
		for i, p := range cv.locs {
			out[i] = p
		}
		return out, true
	case *IndicesSet:
		out := make([]Value, len(cv.items))
		for i, x := range cv.items {
			out[i] = x
		}
		return out, true
	case *IntSet:
		out := make([]Value, len(cv.values))
		for i, n := range cv.values {
			out[i] = Integer(n)
		}
		return out, true
	}
	return nil, false
}

// Rebuild assembles a new container of the same shape as like from items.
// A grid rebuilt from rows that are no longer uniform integer tuples
// degrades to a plain tuple. Element kinds that cannot belong to the
// container are reported as an error.
func Rebuild(like Value, items []Value) (Value, error) {
	switch like.(type) {
	case *Tuple:
		return NewTuple(items...), nil
	case *Grid:
		rows := make([][]int, 0, len(items))
		for _, item := range items {
			row, ok := intRow(item)
			if !ok {
				return NewTuple(items...), nil
			}
			rows = append(rows, row)
		}
		return NewGrid(rows), nil
	case *Object:
		cells := make([]Cell, 0, len(items))
		for _, item := range items {
			c, ok := item.(Cell)
			if !ok {
				return nil, rebuildError(like, item)
			}
			cells = append(cells, c)
		}
		return NewObject(cells), nil
	case *Objects:
		objs := make([]*Object, 0, len(items))
		for _, item := range items {
			o, ok := item.(*Object)
			if !ok {
				return nil, rebuildError(like, item)
			}
			objs = append(objs, o)
		}
		return NewObjects(objs), nil
	case *Indices:
		locs := make([]Pair, 0, len(items))
		for _, item := range items {
			p, ok := item.(Pair)
			if !ok {
				return nil, rebuildError(like, item)
			}
			locs = append(locs, p)
		}
		return NewIndices(locs), nil
	case *IndicesSet:
		sets := make([]*Indices, 0, len(items))
		for _, item := range items {
			x, ok := item.(*Indices)
			if !ok {
				return nil, rebuildError(like, item)
			}
			sets = append(sets, x)
		}
		return NewIndicesSet(sets), nil
	case *IntSet:
		values := make([]int, 0, len(items))
		for _, item := range items {
			n, ok := item.(Integer)
			if !ok {
				return nil, rebuildError(like, item)
			}
			values = append(values, int(n))
		}
		return NewIntSet(values), nil
	}
	return nil, fmt.Errorf("object: %s is not a container", like.Kind())
}

func intRow(v Value) ([]int, bool) {
	t, ok := v.(*Tuple)
	if !ok {
		return nil, false
	}
	row := make([]int, len(t.items))
	for i, item := range t.items {
		n, ok := item.(Integer)
		if !ok {
			return nil, false
		}
		row[i] = int(n)
	}
	return row, true
}

func rebuildError(like, item Value) error {
	return fmt.Errorf("object: cannot rebuild %s from %s element", like.Kind(), item.Kind())
}
