package dsl

import (
	"sort"

	"github.com/gridmind/gridil/internal/object"
)

func size(container Container) Integer {
	return Integer(sizeOf(container))
}

// merge flattens a container of containers. The outer genus decides the
// result: tuples concatenate, sets collapse to the set of their members'
// common kind.
func merge(containers ContainerContainer) Container {
	var flat []object.Value
	for _, sub := range elems(containers) {
		flat = append(flat, elems(sub)...)
	}
	return collect(containers, flat)
}

func combine(a Container, b Container) Container {
	items := append([]object.Value(nil), elems(a)...)
	items = append(items, elems(b)...)
	return collect(a, items)
}

func difference(a FrozenSet, b FrozenSet) FrozenSet {
	var kept []object.Value
	for _, item := range elems(a) {
		if !containsValue(b, item) {
			kept = append(kept, item)
		}
	}
	return collect(a, kept)
}

func intersection(a FrozenSet, b FrozenSet) FrozenSet {
	var kept []object.Value
	for _, item := range elems(a) {
		if containsValue(b, item) {
			kept = append(kept, item)
		}
	}
	return collect(a, kept)
}

func first(container Container) Any {
	items := elems(container)
	if len(items) == 0 {
		panic("dsl: empty container")
	}
	return items[0]
}

func last(container Container) Any {
	items := elems(container)
	if len(items) == 0 {
		panic("dsl: empty container")
	}
	return items[len(items)-1]
}

func remove(value Any, container Container) Container {
	var kept []object.Value
	for _, item := range elems(container) {
		if !object.Equal(item, value) {
			kept = append(kept, item)
		}
	}
	return collect(container, kept)
}

func other(container Container, value Any) Any {
	return first(remove(value, container))
}

func contained(value Any, container Container) Boolean {
	return Boolean(containsValue(container, value))
}

func initset(value Any) FrozenSet {
	return setOf([]object.Value{value})
}

func totuple(container FrozenSet) Tuple {
	return object.NewTuple(elems(container)...)
}

func maximum(container IntegerSet) Integer {
	best := 0
	for i, item := range elems(container) {
		if n := int(asInteger(item)); i == 0 || n > best {
			best = n
		}
	}
	return Integer(best)
}

func minimum(container IntegerSet) Integer {
	best := 0
	for i, item := range elems(container) {
		if n := int(asInteger(item)); i == 0 || n < best {
			best = n
		}
	}
	return Integer(best)
}

func valmax(container Container, compfunc Callable) Integer {
	return asInteger(callValue(compfunc, bestBy(container, compfunc, true)))
}

func valmin(container Container, compfunc Callable) Integer {
	return asInteger(callValue(compfunc, bestBy(container, compfunc, false)))
}

func argmax(container Container, compfunc Callable) Any {
	if sizeOf(container) == 0 {
		panic("dsl: empty container")
	}
	return bestBy(container, compfunc, true)
}

func argmin(container Container, compfunc Callable) Any {
	if sizeOf(container) == 0 {
		panic("dsl: empty container")
	}
	return bestBy(container, compfunc, false)
}

// bestBy returns the element with the extreme mapped key, the first one
// when tied. An empty container falls back to integer zero.
func bestBy(container Container, compfunc Callable, wantMax bool) Any {
	var best object.Value = object.Integer(0)
	var bestKey object.Value
	for _, item := range elems(container) {
		key := callValue(compfunc, item)
		if bestKey == nil {
			best, bestKey = item, key
			continue
		}
		if c := object.Compare(key, bestKey); (wantMax && c > 0) || (!wantMax && c < 0) {
			best, bestKey = item, key
		}
	}
	return best
}

// order sorts the members by their mapped key into a tuple. The sort is
// stable, equal keys keep their container order.
func order(container Container, compfunc Callable) Tuple {
	items := elems(container)
	type keyed struct {
		key  object.Value
		item object.Value
	}
	ranked := make([]keyed, len(items))
	for i, item := range items {
		ranked[i] = keyed{key: callValue(compfunc, item), item: item}
	}
	sort.SliceStable(ranked, func(a, b int) bool {
		return object.Compare(ranked[a].key, ranked[b].key) < 0
	})
	out := make([]object.Value, len(ranked))
	for i, r := range ranked {
		out[i] = r.item
	}
	return object.NewTuple(out...)
}

func extract(container Container, condition Callable) Any {
	for _, item := range elems(container) {
		if truthy(callValue(condition, item)) {
			return item
		}
	}
	panic("dsl: no matching element")
}

func sfilter(container Container, condition Callable) Container {
	var kept []object.Value
	for _, item := range elems(container) {
		if truthy(callValue(condition, item)) {
			kept = append(kept, item)
		}
	}
	return collect(container, kept)
}

func mfilter(container Container, function Callable) FrozenSet {
	return merge(sfilter(container, function))
}

func apply(function Callable, container Container) Container {
	items := elems(container)
	mapped := make([]object.Value, len(items))
	for i, item := range items {
		mapped[i] = callValue(function, item)
	}
	return collect(container, mapped)
}

func mapply(function Callable, container ContainerContainer) FrozenSet {
	return merge(apply(function, container))
}

func rapply(functions Container, value Any) Container {
	items := elems(functions)
	mapped := make([]object.Value, len(items))
	for i, fn := range items {
		mapped[i] = callValue(asCallable(fn), value)
	}
	return collect(functions, mapped)
}

func papply(function Callable, a Tuple, b Tuple) Tuple {
	n := min(a.Len(), b.Len())
	out := make([]object.Value, n)
	for i := 0; i < n; i++ {
		out[i] = callValue(function, a.At(i), b.At(i))
	}
	return object.NewTuple(out...)
}

func mpapply(function Callable, a Tuple, b Tuple) Tuple {
	return asTuple(merge(papply(function, a, b)))
}

func prapply(function Callable, a Container, b Container) FrozenSet {
	var out []object.Value
	for _, right := range elems(b) {
		for _, left := range elems(a) {
			out = append(out, callValue(function, left, right))
		}
	}
	return setOf(out)
}
