package remote

import (
	"fmt"

	"github.com/jhump/protoreflect/dynamic"

	"github.com/gridmind/gridil/internal/object"
)

// handle is the wire form of a callable reference.
type handle struct {
	id    string
	name  string
	arity int
}

// callableCodec translates between in-process callables and wire handles.
// The server mints handle ids for closures it must keep alive; the client
// turns handles back into stubs that invoke over the connection.
type callableCodec interface {
	encodeCallable(fn *object.Callable) (handle, error)
	decodeCallable(h handle) (*object.Callable, error)
}

func encodeValue(v object.Value, codec callableCodec) (*dynamic.Message, error) {
	msg := dynamic.NewMessage(schema.value)
	setField(msg, "kind", string(v.Kind()))

	switch val := v.(type) {
	case object.Boolean:
		setField(msg, "truth", bool(val))
	case object.Integer:
		setField(msg, "number", int64(val))
	case object.Pair:
		setField(msg, "ints", []interface{}{int64(val.I), int64(val.J)})
	case object.Cell:
		setField(msg, "ints", []interface{}{int64(val.Value), int64(val.Loc.I), int64(val.Loc.J)})
	case *object.Grid:
		rows := make([]interface{}, 0, val.Height())
		for _, r := range val.Rows() {
			row := dynamic.NewMessage(schema.row)
			cells := make([]interface{}, len(r))
			for j, c := range r {
				cells[j] = int64(c)
			}
			setField(row, "cells", cells)
			rows = append(rows, row)
		}
		setField(msg, "rows", rows)
	case *object.IntSet:
		vals := val.Values()
		ints := make([]interface{}, len(vals))
		for i, n := range vals {
			ints[i] = int64(n)
		}
		if len(ints) > 0 {
			setField(msg, "ints", ints)
		}
	case *object.Object:
		elems := make([]object.Value, val.Len())
		for i, c := range val.Cells() {
			elems[i] = c
		}
		if err := encodeElems(msg, elems, codec); err != nil {
			return nil, err
		}
	case *object.Objects:
		elems := make([]object.Value, val.Len())
		for i, o := range val.Items() {
			elems[i] = o
		}
		if err := encodeElems(msg, elems, codec); err != nil {
			return nil, err
		}
	case *object.Indices:
		elems := make([]object.Value, val.Len())
		for i, loc := range val.Locs() {
			elems[i] = loc
		}
		if err := encodeElems(msg, elems, codec); err != nil {
			return nil, err
		}
	case *object.IndicesSet:
		elems := make([]object.Value, val.Len())
		for i, x := range val.Items() {
			elems[i] = x
		}
		if err := encodeElems(msg, elems, codec); err != nil {
			return nil, err
		}
	case *object.Tuple:
		if err := encodeElems(msg, val.Items(), codec); err != nil {
			return nil, err
		}
	case *object.Callable:
		h, err := codec.encodeCallable(val)
		if err != nil {
			return nil, err
		}
		hm := dynamic.NewMessage(schema.handle)
		setField(hm, "id", h.id)
		setField(hm, "name", h.name)
		setField(hm, "arity", int64(h.arity))
		setField(msg, "fn", hm)
	default:
		return nil, fmt.Errorf("remote: cannot encode %s value", v.Kind())
	}
	return msg, nil
}

func encodeElems(msg *dynamic.Message, elems []object.Value, codec callableCodec) error {
	if len(elems) == 0 {
		return nil
	}
	wire := make([]interface{}, len(elems))
	for i, e := range elems {
		m, err := encodeValue(e, codec)
		if err != nil {
			return err
		}
		wire[i] = m
	}
	setField(msg, "elems", wire)
	return nil
}

func decodeValue(msg *dynamic.Message, codec callableCodec) (object.Value, error) {
	kind, _ := getField(msg, "kind").(string)
	switch object.Kind(kind) {
	case object.KindBoolean:
		truth, _ := getField(msg, "truth").(bool)
		return object.Boolean(truth), nil
	case object.KindInteger:
		n, _ := getField(msg, "number").(int64)
		return object.Integer(n), nil
	case object.KindPair:
		ints, err := decodeInts(msg, 2)
		if err != nil {
			return nil, err
		}
		return object.Pair{I: int(ints[0]), J: int(ints[1])}, nil
	case object.KindCell:
		ints, err := decodeInts(msg, 3)
		if err != nil {
			return nil, err
		}
		return object.Cell{Value: int(ints[0]), Loc: object.Pair{I: int(ints[1]), J: int(ints[2])}}, nil
	case object.KindGrid:
		raw, _ := getField(msg, "rows").([]interface{})
		rows := make([][]int, len(raw))
		for i, r := range raw {
			rm, ok := r.(*dynamic.Message)
			if !ok {
				return nil, fmt.Errorf("remote: grid row %d is not a row message", i)
			}
			cells, _ := getField(rm, "cells").([]interface{})
			rows[i] = make([]int, len(cells))
			for j, c := range cells {
				n, ok := c.(int64)
				if !ok {
					return nil, fmt.Errorf("remote: grid cell (%d, %d) is not an integer", i, j)
				}
				rows[i][j] = int(n)
			}
		}
		return object.NewGrid(rows), nil
	case object.KindIntSet:
		ints, err := decodeInts(msg, -1)
		if err != nil {
			return nil, err
		}
		vals := make([]int, len(ints))
		for i, n := range ints {
			vals[i] = int(n)
		}
		return object.NewIntSet(vals), nil
	case object.KindObject:
		elems, err := decodeElems(msg, codec)
		if err != nil {
			return nil, err
		}
		cells := make([]object.Cell, len(elems))
		for i, e := range elems {
			c, ok := e.(object.Cell)
			if !ok {
				return nil, fmt.Errorf("remote: object element %d is %s, want %s", i, e.Kind(), object.KindCell)
			}
			cells[i] = c
		}
		return object.NewObject(cells), nil
	case object.KindObjects:
		elems, err := decodeElems(msg, codec)
		if err != nil {
			return nil, err
		}
		items := make([]*object.Object, len(elems))
		for i, e := range elems {
			o, ok := e.(*object.Object)
			if !ok {
				return nil, fmt.Errorf("remote: objects element %d is %s, want %s", i, e.Kind(), object.KindObject)
			}
			items[i] = o
		}
		return object.NewObjects(items), nil
	case object.KindIndices:
		elems, err := decodeElems(msg, codec)
		if err != nil {
			return nil, err
		}
		locs := make([]object.Pair, len(elems))
		for i, e := range elems {
			p, ok := e.(object.Pair)
			if !ok {
				return nil, fmt.Errorf("remote: indices element %d is %s, want %s", i, e.Kind(), object.KindPair)
			}
			locs[i] = p
		}
		return object.NewIndices(locs), nil
	case object.KindIndicesSet:
		elems, err := decodeElems(msg, codec)
		if err != nil {
			return nil, err
		}
		items := make([]*object.Indices, len(elems))
		for i, e := range elems {
			x, ok := e.(*object.Indices)
			if !ok {
				return nil, fmt.Errorf("remote: indices set element %d is %s, want %s", i, e.Kind(), object.KindIndices)
			}
			items[i] = x
		}
		return object.NewIndicesSet(items), nil
	case object.KindTuple:
		elems, err := decodeElems(msg, codec)
		if err != nil {
			return nil, err
		}
		return object.NewTuple(elems...), nil
	case object.KindCallable:
		hm, _ := getField(msg, "fn").(*dynamic.Message)
		if hm == nil {
			return nil, fmt.Errorf("remote: callable value carries no handle")
		}
		id, _ := getField(hm, "id").(string)
		name, _ := getField(hm, "name").(string)
		arity, _ := getField(hm, "arity").(int64)
		return codec.decodeCallable(handle{id: id, name: name, arity: int(arity)})
	case "":
		return nil, fmt.Errorf("remote: value missing kind")
	default:
		return nil, fmt.Errorf("remote: unknown value kind %q", kind)
	}
}

// decodeInts reads the ints payload, checking length when want >= 0.
func decodeInts(msg *dynamic.Message, want int) ([]int64, error) {
	raw, _ := getField(msg, "ints").([]interface{})
	if want >= 0 && len(raw) != want {
		return nil, fmt.Errorf("remote: %s value carries %d ints, want %d",
			getField(msg, "kind"), len(raw), want)
	}
	ints := make([]int64, len(raw))
	for i, v := range raw {
		n, ok := v.(int64)
		if !ok {
			return nil, fmt.Errorf("remote: ints payload %d is not an integer", i)
		}
		ints[i] = n
	}
	return ints, nil
}

func decodeElems(msg *dynamic.Message, codec callableCodec) ([]object.Value, error) {
	raw, _ := getField(msg, "elems").([]interface{})
	elems := make([]object.Value, len(raw))
	for i, v := range raw {
		m, ok := v.(*dynamic.Message)
		if !ok {
			return nil, fmt.Errorf("remote: element %d is not a value message", i)
		}
		e, err := decodeValue(m, codec)
		if err != nil {
			return nil, err
		}
		elems[i] = e
	}
	return elems, nil
}
