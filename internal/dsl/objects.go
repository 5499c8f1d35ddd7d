package dsl

import (
	"fmt"

	"github.com/gridmind/gridil/internal/object"
)

// Four-way and eight-way neighborhood offsets.
var (
	dOffsets = []object.Pair{{I: -1, J: 0}, {I: 1, J: 0}, {I: 0, J: -1}, {I: 0, J: 1}}
	iOffsets = []object.Pair{{I: -1, J: -1}, {I: -1, J: 1}, {I: 1, J: -1}, {I: 1, J: 1}}
)

func asobject(grid Grid) Object {
	cells := make([]object.Cell, 0, grid.Height()*grid.Width())
	for i, row := range grid.Rows() {
		for j, v := range row {
			cells = append(cells, object.Cell{Value: v, Loc: object.Pair{I: i, J: j}})
		}
	}
	return object.NewObject(cells)
}

func asindices(grid Grid) Indices {
	locs := make([]object.Pair, 0, grid.Height()*grid.Width())
	for i, row := range grid.Rows() {
		for j := range row {
			locs = append(locs, object.Pair{I: i, J: j})
		}
	}
	return object.NewIndices(locs)
}

func ofcolor(grid Grid, value Integer) Indices {
	var locs []object.Pair
	for i, row := range grid.Rows() {
		for j, v := range row {
			if v == int(value) {
				locs = append(locs, object.Pair{I: i, J: j})
			}
		}
	}
	return object.NewIndices(locs)
}

func toindices(patch Patch) Indices {
	switch v := patch.(type) {
	case *object.Indices:
		return v
	case *object.Object:
		locs := make([]object.Pair, v.Len())
		for i, c := range v.Cells() {
			locs[i] = c.Loc
		}
		return object.NewIndices(locs)
	}
	panic(fmt.Sprintf("dsl: want a patch, got %s", patch.Kind()))
}

// toobject reads the grid's colors at the patch locations. Out-of-bounds
// locations are dropped.
func toobject(patch Patch, grid Grid) Object {
	h, w := grid.Height(), grid.Width()
	var cells []object.Cell
	for _, loc := range toindices(patch).Locs() {
		if loc.I >= 0 && loc.I < h && loc.J >= 0 && loc.J < w {
			cells = append(cells, object.Cell{Value: grid.At(loc.I, loc.J), Loc: loc})
		}
	}
	return object.NewObject(cells)
}

// normalize shifts a patch so its upper-left corner sits at the origin.
func normalize(patch Patch) Patch {
	locs := patchLocs(patch)
	if len(locs) == 0 {
		return patch
	}
	ul, _ := bounds(locs)
	return shift(patch, object.Pair{I: -ul.I, J: -ul.J})
}

func shift(patch Patch, directions IntegerTuple) Patch {
	return mapPatch(patch, func(p object.Pair) object.Pair {
		return object.Pair{I: p.I + directions.I, J: p.J + directions.J}
	})
}

func recolor(value Integer, patch Patch) Object {
	locs := toindices(patch).Locs()
	cells := make([]object.Cell, len(locs))
	for i, loc := range locs {
		cells[i] = object.Cell{Value: int(value), Loc: loc}
	}
	return object.NewObject(cells)
}

// objects extracts the connected components of a grid. univalued joins
// only same-colored neighbors, otherwise any two non-background neighbors
// connect. diagonal widens the neighborhood to eight cells. withoutBg
// drops components of the background color, taken to be the most frequent
// color.
func objects(grid Grid, univalued Boolean, diagonal Boolean, withoutBg Boolean) Objects {
	h, w := grid.Height(), grid.Width()
	if h == 0 || w == 0 {
		return object.NewObjects(nil)
	}

	bg, haveBg := 0, false
	if withoutBg {
		bg, haveBg = int(mostcolor(grid)), true
	}
	offsets := dOffsets
	if diagonal {
		offsets = append(append([]object.Pair(nil), dOffsets...), iOffsets...)
	}

	seen := make([]bool, h*w)
	var objs []*object.Object
	for si := 0; si < h; si++ {
		for sj := 0; sj < w; sj++ {
			if seen[si*w+sj] {
				continue
			}
			val := grid.At(si, sj)
			if haveBg && val == bg {
				continue
			}

			seen[si*w+sj] = true
			cells := []object.Cell{{Value: val, Loc: object.Pair{I: si, J: sj}}}
			queue := []object.Pair{{I: si, J: sj}}
			for qi := 0; qi < len(queue); qi++ {
				cur := queue[qi]
				for _, d := range offsets {
					ni, nj := cur.I+d.I, cur.J+d.J
					if ni < 0 || ni >= h || nj < 0 || nj >= w || seen[ni*w+nj] {
						continue
					}
					nv := grid.At(ni, nj)
					if univalued {
						if nv != val {
							continue
						}
					} else if haveBg && nv == bg {
						continue
					}
					seen[ni*w+nj] = true
					cells = append(cells, object.Cell{Value: nv, Loc: object.Pair{I: ni, J: nj}})
					queue = append(queue, object.Pair{I: ni, J: nj})
				}
			}
			objs = append(objs, object.NewObject(cells))
		}
	}
	return object.NewObjects(objs)
}

// partition groups the grid's cells by color, one object per color.
func partition(grid Grid) Objects {
	groups := make(map[int][]object.Cell)
	for i, row := range grid.Rows() {
		for j, v := range row {
			groups[v] = append(groups[v], object.Cell{Value: v, Loc: object.Pair{I: i, J: j}})
		}
	}
	objs := make([]*object.Object, 0, len(groups))
	for _, cells := range groups {
		objs = append(objs, object.NewObject(cells))
	}
	return object.NewObjects(objs)
}

// fgpartition is partition without the background color.
func fgpartition(grid Grid) Objects {
	bg := int(mostcolor(grid))
	groups := make(map[int][]object.Cell)
	for i, row := range grid.Rows() {
		for j, v := range row {
			if v == bg {
				continue
			}
			groups[v] = append(groups[v], object.Cell{Value: v, Loc: object.Pair{I: i, J: j}})
		}
	}
	objs := make([]*object.Object, 0, len(groups))
	for _, cells := range groups {
		objs = append(objs, object.NewObject(cells))
	}
	return object.NewObjects(objs)
}

func colorfilter(objs Objects, value Integer) Objects {
	var kept []*object.Object
	for _, o := range objs.Items() {
		if o.Len() > 0 && o.Cells()[0].Value == int(value) {
			kept = append(kept, o)
		}
	}
	return object.NewObjects(kept)
}

// sizefilter keeps the members with exactly n elements.
func sizefilter(container Container, n Integer) FrozenSet {
	var kept []object.Value
	for _, item := range elems(container) {
		if sizeOf(item) == int(n) {
			kept = append(kept, item)
		}
	}
	return setOf(kept)
}

// backdrop returns every location inside the patch's bounding box.
func backdrop(patch Patch) Indices {
	locs := patchLocs(patch)
	if len(locs) == 0 {
		return object.NewIndices(nil)
	}
	ul, lr := bounds(locs)
	out := make([]object.Pair, 0, (lr.I-ul.I+1)*(lr.J-ul.J+1))
	for i := ul.I; i <= lr.I; i++ {
		for j := ul.J; j <= lr.J; j++ {
			out = append(out, object.Pair{I: i, J: j})
		}
	}
	return object.NewIndices(out)
}

// delta is the backdrop minus the patch itself.
func delta(patch Patch) Indices {
	inside := toindices(patch)
	var out []object.Pair
	for _, loc := range backdrop(patch).Locs() {
		if !inside.Has(loc) {
			out = append(out, loc)
		}
	}
	return object.NewIndices(out)
}

func dneighbors(loc IntegerTuple) Indices {
	out := make([]object.Pair, len(dOffsets))
	for i, d := range dOffsets {
		out[i] = object.Pair{I: loc.I + d.I, J: loc.J + d.J}
	}
	return object.NewIndices(out)
}

func ineighbors(loc IntegerTuple) Indices {
	out := make([]object.Pair, len(iOffsets))
	for i, d := range iOffsets {
		out[i] = object.Pair{I: loc.I + d.I, J: loc.J + d.J}
	}
	return object.NewIndices(out)
}

func neighbors(loc IntegerTuple) Indices {
	out := make([]object.Pair, 0, len(dOffsets)+len(iOffsets))
	for _, d := range dOffsets {
		out = append(out, object.Pair{I: loc.I + d.I, J: loc.J + d.J})
	}
	for _, d := range iOffsets {
		out = append(out, object.Pair{I: loc.I + d.I, J: loc.J + d.J})
	}
	return object.NewIndices(out)
}
