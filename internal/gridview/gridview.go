// Package gridview renders grids for terminals. When stdout supports
// color, each cell paints its puzzle color as a 256-color background
// behind the digit; otherwise cells render as plain digit rows. Cells
// outside the 0-9 palette always render as bare numbers.
package gridview

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"

	"github.com/gridmind/gridil/internal/object"
)

// palette maps the ten puzzle colors to xterm-256 indexes.
var palette = [10]int{16, 33, 203, 41, 220, 248, 200, 208, 117, 88}

// ink picks a readable digit color for each background.
var ink = [10]int{231, 231, 231, 16, 16, 16, 231, 16, 16, 231}

var (
	levelOnce sync.Once
	levelVal  int
)

// levelFor classifies color support: 0 none, 1 basic, 256, or truecolor.
func levelFor(term, colorterm string, noColor, tty bool) int {
	if noColor {
		return 0
	}
	if !tty {
		return 0
	}
	if term == "dumb" {
		return 0
	}
	if colorterm == "truecolor" || colorterm == "24bit" {
		return 16777216
	}
	if strings.Contains(term, "256color") {
		return 256
	}
	return 1
}

func level() int {
	levelOnce.Do(func() {
		_, noColor := os.LookupEnv("NO_COLOR")
		tty := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
		levelVal = levelFor(os.Getenv("TERM"), os.Getenv("COLORTERM"), noColor, tty)
	})
	return levelVal
}

// Render draws one grid, colored when the terminal supports it.
func Render(g *object.Grid) string {
	return render(g, level())
}

// RenderPlain draws one grid as digit rows regardless of the terminal.
func RenderPlain(g *object.Grid) string {
	return render(g, 0)
}

// Pair draws an example side by side, input -> output. Alignment
// assumes single-digit cells, which task validation guarantees.
func Pair(in, out *object.Grid) string {
	return pair(in, out, level())
}

func render(g *object.Grid, level int) string {
	rows := renderRows(g, level)
	return strings.Join(rows, "\n")
}

func renderRows(g *object.Grid, level int) []string {
	rows := make([]string, g.Height())
	for i, row := range g.Rows() {
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = cell(v, level)
		}
		rows[i] = strings.Join(cells, " ")
	}
	return rows
}

func cell(v, level int) string {
	if level == 0 || v < 0 || v > 9 {
		return strconv.Itoa(v)
	}
	return fmt.Sprintf("\033[38;5;%d;48;5;%dm%d\033[0m", ink[v], palette[v], v)
}

func pair(in, out *object.Grid, level int) string {
	left := renderRows(in, level)
	right := renderRows(out, level)

	height := len(left)
	if len(right) > height {
		height = len(right)
	}
	leftWidth := 0
	if in.Width() > 0 {
		leftWidth = in.Width()*2 - 1
	}
	mid := (height - 1) / 2

	lines := make([]string, height)
	for i := 0; i < height; i++ {
		var b strings.Builder
		if i < len(left) {
			b.WriteString(left[i])
		} else {
			b.WriteString(strings.Repeat(" ", leftWidth))
		}
		if i == mid {
			b.WriteString(" -> ")
		} else {
			b.WriteString("    ")
		}
		if i < len(right) {
			b.WriteString(right[i])
		}
		lines[i] = strings.TrimRight(b.String(), " ")
	}
	return strings.Join(lines, "\n")
}
