package dsl

import "github.com/gridmind/gridil/internal/object"

func height(piece Piece) Integer {
	if g, ok := piece.(*object.Grid); ok {
		return Integer(g.Height())
	}
	locs := patchLocs(piece)
	if len(locs) == 0 {
		return 0
	}
	ul, lr := bounds(locs)
	return Integer(lr.I - ul.I + 1)
}

func width(piece Piece) Integer {
	if g, ok := piece.(*object.Grid); ok {
		return Integer(g.Width())
	}
	locs := patchLocs(piece)
	if len(locs) == 0 {
		return 0
	}
	ul, lr := bounds(locs)
	return Integer(lr.J - ul.J + 1)
}

func shape(piece Piece) IntegerTuple {
	return object.Pair{I: int(height(piece)), J: int(width(piece))}
}

func palette(element Element) IntegerSet {
	return object.NewIntSet(elementValues(element))
}

// mostcolor returns the most frequent color. Ties go to the smallest
// value.
func mostcolor(element Element) Integer {
	values := elementValues(element)
	if len(values) == 0 {
		panic("dsl: empty element")
	}
	counts := make(map[int]int, 10)
	for _, v := range values {
		counts[v]++
	}
	best, bestN := 0, 0
	for _, v := range object.NewIntSet(values).Values() {
		if counts[v] > bestN {
			best, bestN = v, counts[v]
		}
	}
	return Integer(best)
}

// leastcolor returns the least frequent color. Ties go to the smallest
// value.
func leastcolor(element Element) Integer {
	values := elementValues(element)
	if len(values) == 0 {
		panic("dsl: empty element")
	}
	counts := make(map[int]int, 10)
	for _, v := range values {
		counts[v]++
	}
	best, bestN := 0, -1
	for _, v := range object.NewIntSet(values).Values() {
		if bestN < 0 || counts[v] < bestN {
			best, bestN = v, counts[v]
		}
	}
	return Integer(best)
}

func colorcount(element Element, value Integer) Integer {
	n := 0
	for _, v := range elementValues(element) {
		if v == int(value) {
			n++
		}
	}
	return Integer(n)
}

func ulcorner(patch Patch) IntegerTuple {
	ul, _ := bounds(patchLocs(patch))
	return ul
}

func lrcorner(patch Patch) IntegerTuple {
	_, lr := bounds(patchLocs(patch))
	return lr
}

func uppermost(patch Patch) Integer {
	return Integer(ulcorner(patch).I)
}

func lowermost(patch Patch) Integer {
	return Integer(lrcorner(patch).I)
}

func leftmost(patch Patch) Integer {
	return Integer(ulcorner(patch).J)
}

func rightmost(patch Patch) Integer {
	return Integer(lrcorner(patch).J)
}

// color returns the color of a single-colored object.
func color(obj Object) Integer {
	if obj.Len() == 0 {
		panic("dsl: empty object")
	}
	return Integer(obj.Cells()[0].Value)
}
