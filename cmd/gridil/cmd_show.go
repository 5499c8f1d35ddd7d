package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gridmind/gridil/internal/catalog"
	"github.com/gridmind/gridil/internal/gridview"
	"github.com/gridmind/gridil/internal/object"
	"github.com/gridmind/gridil/internal/taskset"
)

func runShow(cmd *cobra.Command, args []string) {
	task, err := taskset.Load(args[0])
	if err != nil {
		fatal(err)
	}

	fmt.Printf("task %s: %d train %s, %d test %s\n",
		task.ID, len(task.Train), plural(len(task.Train), "pair"),
		len(task.Test), plural(len(task.Test), "pair"))

	for i, p := range task.Train {
		fmt.Printf("\ntrain %d:\n%s\n", i+1, renderPair(p))
	}
	for i, p := range task.Test {
		if p.Output == nil {
			fmt.Printf("\ntest %d (output withheld):\n%s\n", i+1,
				gridview.Render(object.NewGrid(p.Input)))
			continue
		}
		fmt.Printf("\ntest %d:\n%s\n", i+1, renderPair(p))
	}
}

func renderPair(p taskset.Pair) string {
	return gridview.Pair(object.NewGrid(p.Input), object.NewGrid(p.Output))
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

func runPrimitives(cmd *cobra.Command, args []string) {
	ctx := cmdContext(cmd)

	lib, closeLib, err := openLibrary(ctx, libraryAddress(cmd))
	if err != nil {
		fatal(err)
	}
	defer closeLib()

	cat := catalog.Extract(lib, nil)
	for _, p := range cat.Primitives() {
		params := make([]string, len(p.ParamNames))
		for i, name := range p.ParamNames {
			params[i] = fmt.Sprintf("%s %s", name, p.ParamTypes[i])
		}
		fmt.Printf("%s(%s) -> %s\n", p.Name, strings.Join(params, ", "), p.Return)
	}

	if flagConstants {
		fmt.Println()
		for _, k := range cat.Constants() {
			fmt.Printf("%s %s = %s\n", k.Name, k.Type, k.Value.Inspect())
		}
	}
}
