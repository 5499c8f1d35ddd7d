package object

// Equal performs a deep equality check between two values. Set-like values
// compare as sets (their stored order is already canonical); callables
// compare by identity.
func Equal(a, b Value) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Kind() != b.Kind() {
		return false
	}

	switch av := a.(type) {
	case Boolean:
		return av == b.(Boolean)
	case Integer:
		return av == b.(Integer)
	case Pair:
		return av == b.(Pair)
	case Cell:
		return av == b.(Cell)
	case *Grid:
		bv := b.(*Grid)
		if len(av.rows) != len(bv.rows) {
			return false
		}
		for i := range av.rows {
			if len(av.rows[i]) != len(bv.rows[i]) {
				return false
			}
			for j := range av.rows[i] {
				if av.rows[i][j] != bv.rows[i][j] {
					return false
				}
			}
		}
		return true
	case *Object:
		bv := b.(*Object)
		if len(av.cells) != len(bv.cells) {
			return false
		}
		for i := range av.cells {
			if av.cells[i] != bv.cells[i] {
				return false
			}
		}
		return true
	case *Objects:
		bv := b.(*Objects)
		if len(av.items) != len(bv.items) {
			return false
		}
		for i := range av.items {
			if !Equal(av.items[i], bv.items[i]) {
				return false
			}
		}
		return true
	case *Indices:
		bv := b.(*Indices)
		if len(av.locs) != len(bv.locs) {
			return false
		}
		for i := range av.locs {
			if av.locs[i] != bv.locs[i] {
				return false
			}
		}
		return true
	case *IndicesSet:
		bv := b.(*IndicesSet)
		if len(av.items) != len(bv.items) {
			return false
		}
		for i := range av.items {
			if !Equal(av.items[i], bv.items[i]) {
				return false
			}
		}
		return true
	case *IntSet:
		bv := b.(*IntSet)
		if len(av.values) != len(bv.values) {
			return false
		}
		for i := range av.values {
			if av.values[i] != bv.values[i] {
				return false
			}
		}
		return true
	case *Tuple:
		bv := b.(*Tuple)
		if len(av.items) != len(bv.items) {
			return false
		}
		for i := range av.items {
			if !Equal(av.items[i], bv.items[i]) {
				return false
			}
		}
		return true
	case *Callable:
		return false // identity already handled above
	}
	return false
}

// Compare imposes a total order on values: by kind rank first, then a
// kind-specific order. Sequences compare element-wise with ties broken by
// length. The constructors use it to keep set storage canonical; ordering
// primitives use it to compare sort keys.
func Compare(a, b Value) int {
	ra, rb := kindRank[a.Kind()], kindRank[b.Kind()]
	if ra != rb {
		return cmpInt(ra, rb)
	}

	switch av := a.(type) {
	case Boolean:
		return cmpBool(bool(av), bool(b.(Boolean)))
	case Integer:
		return cmpInt(int(av), int(b.(Integer)))
	case Pair:
		return pairCompare(av, b.(Pair))
	case Cell:
		return cellCompare(av, b.(Cell))
	case *Grid:
		return gridCompare(av, b.(*Grid))
	case *Object:
		return objectCompare(av, b.(*Object))
	case *Objects:
		bv := b.(*Objects)
		return lexCompare(len(av.items), len(bv.items), func(i int) int {
			return objectCompare(av.items[i], bv.items[i])
		})
	case *Indices:
		return indicesCompare(av, b.(*Indices))
	case *IndicesSet:
		bv := b.(*IndicesSet)
		return lexCompare(len(av.items), len(bv.items), func(i int) int {
			return indicesCompare(av.items[i], bv.items[i])
		})
	case *IntSet:
		bv := b.(*IntSet)
		return lexCompare(len(av.values), len(bv.values), func(i int) int {
			return cmpInt(av.values[i], bv.values[i])
		})
	case *Tuple:
		bv := b.(*Tuple)
		return lexCompare(len(av.items), len(bv.items), func(i int) int {
			return Compare(av.items[i], bv.items[i])
		})
	case *Callable:
		bv := b.(*Callable)
		if av.Name != bv.Name {
			if av.Name < bv.Name {
				return -1
			}
			return 1
		}
		return cmpInt(av.Arity, bv.Arity)
	}
	return 0
}

var kindRank = map[Kind]int{
	KindBoolean:    0,
	KindInteger:    1,
	KindPair:       2,
	KindCell:       3,
	KindGrid:       4,
	KindObject:     5,
	KindObjects:    6,
	KindIndices:    7,
	KindIndicesSet: 8,
	KindIntSet:     9,
	KindTuple:      10,
	KindCallable:   11,
}

func pairLess(a, b Pair) bool { return pairCompare(a, b) < 0 }

func pairCompare(a, b Pair) int {
	if a.I != b.I {
		return cmpInt(a.I, b.I)
	}
	return cmpInt(a.J, b.J)
}

func cellLess(a, b Cell) bool { return cellCompare(a, b) < 0 }

// Cells order by color first, then location, matching the tuple shape
// (value, (i, j)) they correspond to.
func cellCompare(a, b Cell) int {
	if a.Value != b.Value {
		return cmpInt(a.Value, b.Value)
	}
	return pairCompare(a.Loc, b.Loc)
}

func gridCompare(a, b *Grid) int {
	return lexCompare(len(a.rows), len(b.rows), func(i int) int {
		return lexCompare(len(a.rows[i]), len(b.rows[i]), func(j int) int {
			return cmpInt(a.rows[i][j], b.rows[i][j])
		})
	})
}

func objectCompare(a, b *Object) int {
	return lexCompare(len(a.cells), len(b.cells), func(i int) int {
		return cellCompare(a.cells[i], b.cells[i])
	})
}

func indicesCompare(a, b *Indices) int {
	return lexCompare(len(a.locs), len(b.locs), func(i int) int {
		return pairCompare(a.locs[i], b.locs[i])
	})
}

// lexCompare compares two sequences element-wise over their common prefix
// and breaks ties by length.
func lexCompare(lenA, lenB int, at func(i int) int) int {
	n := lenA
	if lenB < n {
		n = lenB
	}
	for i := 0; i < n; i++ {
		if c := at(i); c != 0 {
			return c
		}
	}
	return cmpInt(lenA, lenB)
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func cmpBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	}
	return 1
}
