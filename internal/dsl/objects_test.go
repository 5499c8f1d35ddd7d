package dsl

import (
	"testing"

	"github.com/gridmind/gridil/internal/object"
)

func TestGridViews(t *testing.T) {
	g := gridOf([]int{1, 2}, []int{3, 4})

	wantEqual(t, "asobject(g)", asobject(g), object.NewObject([]object.Cell{
		{Value: 1, Loc: object.Pair{I: 0, J: 0}},
		{Value: 2, Loc: object.Pair{I: 0, J: 1}},
		{Value: 3, Loc: object.Pair{I: 1, J: 0}},
		{Value: 4, Loc: object.Pair{I: 1, J: 1}},
	}))
	wantEqual(t, "asindices(g)", asindices(g),
		object.NewIndices([]object.Pair{{I: 0, J: 0}, {I: 0, J: 1}, {I: 1, J: 0}, {I: 1, J: 1}}))

	spotted := gridOf([]int{1, 0}, []int{0, 1})
	wantEqual(t, "ofcolor(spotted, 1)", ofcolor(spotted, Integer(1)),
		object.NewIndices([]object.Pair{{I: 0, J: 0}, {I: 1, J: 1}}))
	wantEqual(t, "ofcolor(spotted, 9)", ofcolor(spotted, Integer(9)), object.NewIndices(nil))
}

func TestPatchConversions(t *testing.T) {
	obj := object.NewObject([]object.Cell{{Value: 5, Loc: object.Pair{I: 0, J: 1}}})
	idx := object.NewIndices([]object.Pair{{I: 0, J: 1}})

	wantEqual(t, "toindices(obj)", toindices(obj), idx)
	wantEqual(t, "toindices(idx)", toindices(idx), idx)
	expectPanic(t, "toindices(grid)", func() { toindices(gridOf([]int{1})) })

	g := gridOf([]int{1, 2}, []int{3, 4})
	wantEqual(t, "toobject drops out of bounds",
		toobject(object.NewIndices([]object.Pair{{I: 0, J: 0}, {I: 1, J: 5}}), g),
		object.NewObject([]object.Cell{{Value: 1, Loc: object.Pair{I: 0, J: 0}}}))

	wantEqual(t, "recolor", recolor(Integer(7), object.NewIndices([]object.Pair{{I: 0, J: 0}, {I: 2, J: 2}})),
		object.NewObject([]object.Cell{
			{Value: 7, Loc: object.Pair{I: 0, J: 0}},
			{Value: 7, Loc: object.Pair{I: 2, J: 2}},
		}))
}

func TestShiftNormalize(t *testing.T) {
	idx := object.NewIndices([]object.Pair{{I: 1, J: 1}, {I: 2, J: 3}})
	wantEqual(t, "shift(idx, (1,-1))", shift(idx, object.Pair{I: 1, J: -1}),
		object.NewIndices([]object.Pair{{I: 2, J: 0}, {I: 3, J: 2}}))

	obj := object.NewObject([]object.Cell{{Value: 4, Loc: object.Pair{I: 2, J: 2}}})
	wantEqual(t, "shift(obj, (0,1))", shift(obj, object.Pair{I: 0, J: 1}),
		object.NewObject([]object.Cell{{Value: 4, Loc: object.Pair{I: 2, J: 3}}}))

	wantEqual(t, "normalize", normalize(object.NewIndices([]object.Pair{{I: 2, J: 3}, {I: 3, J: 3}})),
		object.NewIndices([]object.Pair{{I: 0, J: 0}, {I: 1, J: 0}}))
	empty := object.NewObject(nil)
	wantEqual(t, "normalize(empty)", normalize(empty), empty)
}

func TestObjectsExtraction(t *testing.T) {
	g := gridOf(
		[]int{0, 5, 0},
		[]int{5, 5, 0},
		[]int{0, 0, 3},
	)

	// Same-colored, four-way, background dropped: the three 5s connect,
	// the 3 stands alone.
	objs := objects(g, Boolean(true), Boolean(false), Boolean(true))
	if objs.Len() != 2 {
		t.Fatalf("objects = %d components, want 2", objs.Len())
	}
	wantEqual(t, "objects[0]", objs.Items()[0],
		object.NewObject([]object.Cell{{Value: 3, Loc: object.Pair{I: 2, J: 2}}}))
	wantEqual(t, "objects[1]", objs.Items()[1], object.NewObject([]object.Cell{
		{Value: 5, Loc: object.Pair{I: 0, J: 1}},
		{Value: 5, Loc: object.Pair{I: 1, J: 0}},
		{Value: 5, Loc: object.Pair{I: 1, J: 1}},
	}))

	// Diagonal reach and mixed colors join the 3 to the 5s.
	mixed := objects(g, Boolean(false), Boolean(true), Boolean(true))
	if mixed.Len() != 1 || mixed.Items()[0].Len() != 4 {
		t.Errorf("diagonal mixed = %d components, first size %d, want 1 of 4",
			mixed.Len(), mixed.Items()[0].Len())
	}

	// Keeping the background connects everything.
	all := objects(g, Boolean(false), Boolean(false), Boolean(false))
	if all.Len() != 1 || all.Items()[0].Len() != 9 {
		t.Errorf("full grid = %d components, first size %d, want 1 of 9",
			all.Len(), all.Items()[0].Len())
	}

	// Univalued with background kept: two zero runs, the corner zero,
	// the 5s and the 3.
	runs := objects(g, Boolean(true), Boolean(false), Boolean(false))
	if runs.Len() != 5 {
		t.Errorf("univalued with background = %d components, want 5", runs.Len())
	}

	if got := objects(gridOf(), Boolean(true), Boolean(false), Boolean(true)); got.Len() != 0 {
		t.Errorf("objects(empty) = %d components, want 0", got.Len())
	}
}

func TestPartition(t *testing.T) {
	g := gridOf(
		[]int{0, 5, 0},
		[]int{5, 5, 0},
		[]int{0, 0, 3},
	)

	parts := partition(g)
	if parts.Len() != 3 {
		t.Fatalf("partition = %d objects, want 3", parts.Len())
	}
	fg := fgpartition(g)
	if fg.Len() != 2 {
		t.Fatalf("fgpartition = %d objects, want 2", fg.Len())
	}

	zeros := colorfilter(parts, Integer(0))
	if zeros.Len() != 1 || zeros.Items()[0].Len() != 5 {
		t.Errorf("zero partition = %d objects, first size %d, want 1 of 5",
			zeros.Len(), zeros.Items()[0].Len())
	}
	if colorfilter(fg, Integer(0)).Len() != 0 {
		t.Errorf("fgpartition should drop the background color")
	}
}

func TestColorAndSizeFilters(t *testing.T) {
	g := gridOf(
		[]int{0, 5, 0},
		[]int{5, 5, 0},
		[]int{0, 0, 3},
	)
	objs := objects(g, Boolean(true), Boolean(false), Boolean(true))

	fives := colorfilter(objs, Integer(5))
	if fives.Len() != 1 || fives.Items()[0].Len() != 3 {
		t.Errorf("colorfilter(5) = %d objects, first size %d, want 1 of 3",
			fives.Len(), fives.Items()[0].Len())
	}
	if colorfilter(objs, Integer(9)).Len() != 0 {
		t.Errorf("colorfilter(9) should be empty")
	}

	singles := sizefilter(objs, Integer(1))
	wantEqual(t, "sizefilter(objs, 1)", singles, object.NewObjects([]*object.Object{
		object.NewObject([]object.Cell{{Value: 3, Loc: object.Pair{I: 2, J: 2}}}),
	}))
}

func TestBackdropDelta(t *testing.T) {
	idx := object.NewIndices([]object.Pair{{I: 0, J: 0}, {I: 1, J: 2}})

	wantEqual(t, "backdrop(idx)", backdrop(idx), object.NewIndices([]object.Pair{{I: 0, J: 0}, {I: 0, J: 1}, {I: 0, J: 2}, {I: 1, J: 0}, {I: 1, J: 1}, {I: 1, J: 2}}))
	wantEqual(t, "delta(idx)", delta(idx), object.NewIndices([]object.Pair{{I: 0, J: 1}, {I: 0, J: 2}, {I: 1, J: 0}, {I: 1, J: 1}}))

	full := object.NewIndices([]object.Pair{{I: 0, J: 0}, {I: 0, J: 1}, {I: 1, J: 0}, {I: 1, J: 1}})
	wantEqual(t, "delta(full)", delta(full), object.NewIndices(nil))
	wantEqual(t, "backdrop(empty)", backdrop(object.NewIndices(nil)), object.NewIndices(nil))
}

func TestNeighborhoods(t *testing.T) {
	wantEqual(t, "dneighbors", dneighbors(object.Pair{I: 1, J: 1}),
		object.NewIndices([]object.Pair{{I: 0, J: 1}, {I: 1, J: 0}, {I: 1, J: 2}, {I: 2, J: 1}}))
	wantEqual(t, "ineighbors", ineighbors(object.Pair{I: 1, J: 1}),
		object.NewIndices([]object.Pair{{I: 0, J: 0}, {I: 0, J: 2}, {I: 2, J: 0}, {I: 2, J: 2}}))

	// Neighborhoods extend past the grid edge.
	around := neighbors(object.Pair{I: 0, J: 0})
	if around.Len() != 8 {
		t.Errorf("neighbors = %d locations, want 8", around.Len())
	}
	if !around.Has(object.Pair{I: -1, J: -1}) {
		t.Errorf("neighbors should include (-1, -1)")
	}
}
