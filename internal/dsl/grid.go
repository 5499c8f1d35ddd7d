package dsl

import "github.com/gridmind/gridil/internal/object"

// Mirrors accept any piece. Grids flip their cells, patches reflect their
// locations inside their own bounding box.

func vmirror(piece Piece) Piece {
	if g, ok := piece.(*object.Grid); ok {
		rows := g.Rows()
		out := make([][]int, len(rows))
		for i, row := range rows {
			rev := make([]int, len(row))
			for j, v := range row {
				rev[len(row)-1-j] = v
			}
			out[i] = rev
		}
		return object.NewGrid(out)
	}
	ul, lr := bounds(patchLocs(piece))
	d := ul.J + lr.J
	return mapPatch(piece, func(p object.Pair) object.Pair {
		return object.Pair{I: p.I, J: d - p.J}
	})
}

func hmirror(piece Piece) Piece {
	if g, ok := piece.(*object.Grid); ok {
		rows := g.Rows()
		out := make([][]int, len(rows))
		for i, row := range rows {
			out[len(rows)-1-i] = row
		}
		return object.NewGrid(out)
	}
	ul, lr := bounds(patchLocs(piece))
	d := ul.I + lr.I
	return mapPatch(piece, func(p object.Pair) object.Pair {
		return object.Pair{I: d - p.I, J: p.J}
	})
}

func dmirror(piece Piece) Piece {
	if g, ok := piece.(*object.Grid); ok {
		h, w := g.Height(), g.Width()
		out := make([][]int, w)
		for i := 0; i < w; i++ {
			row := make([]int, h)
			for j := 0; j < h; j++ {
				row[j] = g.At(j, i)
			}
			out[i] = row
		}
		return object.NewGrid(out)
	}
	ul, _ := bounds(patchLocs(piece))
	a, b := ul.I, ul.J
	return mapPatch(piece, func(p object.Pair) object.Pair {
		return object.Pair{I: p.J - b + a, J: p.I - a + b}
	})
}

func cmirror(piece Piece) Piece {
	return vmirror(dmirror(vmirror(piece)))
}

func rot90(grid Grid) Grid {
	h, w := grid.Height(), grid.Width()
	out := make([][]int, w)
	for i := 0; i < w; i++ {
		row := make([]int, h)
		for j := 0; j < h; j++ {
			row[j] = grid.At(h-1-j, i)
		}
		out[i] = row
	}
	return object.NewGrid(out)
}

func rot180(grid Grid) Grid {
	h, w := grid.Height(), grid.Width()
	out := make([][]int, h)
	for i := 0; i < h; i++ {
		row := make([]int, w)
		for j := 0; j < w; j++ {
			row[j] = grid.At(h-1-i, w-1-j)
		}
		out[i] = row
	}
	return object.NewGrid(out)
}

func rot270(grid Grid) Grid {
	h, w := grid.Height(), grid.Width()
	out := make([][]int, w)
	for i := 0; i < w; i++ {
		row := make([]int, h)
		for j := 0; j < h; j++ {
			row[j] = grid.At(j, w-1-i)
		}
		out[i] = row
	}
	return object.NewGrid(out)
}

func vconcat(a Grid, b Grid) Grid {
	rows := make([][]int, 0, a.Height()+b.Height())
	rows = append(rows, a.Rows()...)
	rows = append(rows, b.Rows()...)
	return object.NewGrid(rows)
}

func hconcat(a Grid, b Grid) Grid {
	n := min(a.Height(), b.Height())
	rows := make([][]int, n)
	for i := 0; i < n; i++ {
		left, right := a.Rows()[i], b.Rows()[i]
		row := make([]int, 0, len(left)+len(right))
		row = append(row, left...)
		row = append(row, right...)
		rows[i] = row
	}
	return object.NewGrid(rows)
}

// The halves drop the center row or column of odd-sized grids.

func tophalf(grid Grid) Grid {
	return object.NewGrid(grid.Rows()[:grid.Height()/2])
}

func bottomhalf(grid Grid) Grid {
	h := grid.Height()
	return object.NewGrid(grid.Rows()[h/2+h%2:])
}

func lefthalf(grid Grid) Grid {
	w := grid.Width()
	rows := make([][]int, grid.Height())
	for i, row := range grid.Rows() {
		rows[i] = row[:w/2]
	}
	return object.NewGrid(rows)
}

func righthalf(grid Grid) Grid {
	w := grid.Width()
	rows := make([][]int, grid.Height())
	for i, row := range grid.Rows() {
		rows[i] = row[w/2+w%2:]
	}
	return object.NewGrid(rows)
}

// trim strips the one-cell border.
func trim(grid Grid) Grid {
	h := grid.Height()
	out := make([][]int, 0, max(h-2, 0))
	for i := 1; i < h-1; i++ {
		row := grid.Rows()[i]
		if len(row) <= 2 {
			out = append(out, []int{})
			continue
		}
		out = append(out, row[1:len(row)-1])
	}
	return object.NewGrid(out)
}

// crop cuts the dims-sized subgrid anchored at start, clamped to the
// grid's bounds.
func crop(grid Grid, start IntegerTuple, dims IntegerTuple) Grid {
	h, w := grid.Height(), grid.Width()
	i0, j0 := max(start.I, 0), max(start.J, 0)
	i1, j1 := min(start.I+dims.I, h), min(start.J+dims.J, w)
	if i1 <= i0 || j1 <= j0 {
		return object.NewGrid(nil)
	}
	out := make([][]int, 0, i1-i0)
	for i := i0; i < i1; i++ {
		out = append(out, grid.Rows()[i][j0:j1])
	}
	return object.NewGrid(out)
}

// upscale blows up a grid cell by cell, or an object inside its own
// bounding box.
func upscale(element Element, factor Integer) Element {
	f := int(factor)
	if g, ok := element.(*object.Grid); ok {
		out := make([][]int, 0, g.Height()*max(f, 0))
		for _, row := range g.Rows() {
			scaled := make([]int, 0, len(row)*max(f, 0))
			for _, v := range row {
				for k := 0; k < f; k++ {
					scaled = append(scaled, v)
				}
			}
			for k := 0; k < f; k++ {
				out = append(out, scaled)
			}
		}
		return object.NewGrid(out)
	}
	obj := asObject(element)
	if obj.Len() == 0 {
		return obj
	}
	ul, _ := bounds(patchLocs(obj))
	out := make([]object.Cell, 0, obj.Len()*f*f)
	for _, c := range obj.Cells() {
		ri, rj := c.Loc.I-ul.I, c.Loc.J-ul.J
		for io := 0; io < f; io++ {
			for jo := 0; jo < f; jo++ {
				out = append(out, object.Cell{
					Value: c.Value,
					Loc:   object.Pair{I: ri*f + io + ul.I, J: rj*f + jo + ul.J},
				})
			}
		}
	}
	return object.NewObject(out)
}

func replace(grid Grid, replacee Integer, replacer Integer) Grid {
	rows := mutableRows(grid)
	for _, row := range rows {
		for j, v := range row {
			if v == int(replacee) {
				row[j] = int(replacer)
			}
		}
	}
	return object.NewGrid(rows)
}

func canvas(value Integer, dimensions IntegerTuple) Grid {
	h, w := max(dimensions.I, 0), max(dimensions.J, 0)
	rows := make([][]int, h)
	for i := range rows {
		row := make([]int, w)
		for j := range row {
			row[j] = int(value)
		}
		rows[i] = row
	}
	return object.NewGrid(rows)
}

// fill sets every in-bounds patch location to value. Locations outside
// the grid are ignored.
func fill(grid Grid, value Integer, patch Patch) Grid {
	h, w := grid.Height(), grid.Width()
	rows := mutableRows(grid)
	for _, loc := range patchLocs(patch) {
		if loc.I >= 0 && loc.I < h && loc.J >= 0 && loc.J < w {
			rows[loc.I][loc.J] = int(value)
		}
	}
	return object.NewGrid(rows)
}

// paint writes an object's cells onto the grid, skipping out-of-bounds
// cells.
func paint(grid Grid, obj Object) Grid {
	h, w := grid.Height(), grid.Width()
	rows := mutableRows(grid)
	for _, c := range obj.Cells() {
		if c.Loc.I >= 0 && c.Loc.I < h && c.Loc.J >= 0 && c.Loc.J < w {
			rows[c.Loc.I][c.Loc.J] = c.Value
		}
	}
	return object.NewGrid(rows)
}

// underfill fills only the patch locations currently showing the
// background color.
func underfill(grid Grid, value Integer, patch Patch) Grid {
	bg := int(mostcolor(grid))
	h, w := grid.Height(), grid.Width()
	rows := mutableRows(grid)
	for _, loc := range patchLocs(patch) {
		if loc.I >= 0 && loc.I < h && loc.J >= 0 && loc.J < w && rows[loc.I][loc.J] == bg {
			rows[loc.I][loc.J] = int(value)
		}
	}
	return object.NewGrid(rows)
}

// cover erases a patch by filling it with the background color.
func cover(grid Grid, patch Patch) Grid {
	return fill(grid, mostcolor(grid), patch)
}

func move(grid Grid, obj Object, offset IntegerTuple) Grid {
	shifted := shift(obj, offset).(*object.Object)
	return paint(cover(grid, obj), shifted)
}

// subgrid cuts the smallest grid containing the patch.
func subgrid(patch Patch, grid Grid) Grid {
	return crop(grid, ulcorner(patch), shape(patch))
}
