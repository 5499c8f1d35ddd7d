package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/gridmind/gridil/internal/archive"
	"github.com/gridmind/gridil/internal/taskset"
)

func runArchiveImport(cmd *cobra.Command, args []string) {
	ctx := cmdContext(cmd)

	dir := args[0]
	tasks, err := taskset.LoadDir(dir)
	if err != nil {
		fatal(err)
	}

	source := flagSource
	if source == "" {
		source = filepath.Base(filepath.Clean(dir))
	}

	arch, err := archive.Open(ctx, cfg.Archive.Path)
	if err != nil {
		fatal(err)
	}
	defer arch.Close()

	n, err := arch.ImportTasks(ctx, source, tasks)
	if err != nil {
		fatal(err)
	}
	fmt.Printf("imported %d %s from %s\n", n, plural(n, "task"), dir)
}

func runArchiveSolutions(cmd *cobra.Command, args []string) {
	ctx := cmdContext(cmd)

	arch, err := archive.Open(ctx, cfg.Archive.Path)
	if err != nil {
		fatal(err)
	}
	defer arch.Close()

	var sols []archive.Solution
	if len(args) == 1 {
		sols, err = arch.Solutions(ctx, args[0])
	} else {
		sols, err = arch.AllSolutions(ctx)
	}
	if err != nil {
		fatal(err)
	}
	if len(sols) == 0 {
		fmt.Println("no solutions recorded")
		return
	}

	for _, sol := range sols {
		fmt.Printf("%s  run %s  depth %d  %d hypotheses  %s  %s\n",
			sol.TaskID, sol.RunID, sol.Depth, sol.Attempts,
			sol.Elapsed.Round(time.Millisecond),
			sol.SolvedAt.Local().Format(time.DateTime))
		if len(args) == 1 {
			fmt.Printf("\n%s\n\n", sol.Code)
		}
	}
}
