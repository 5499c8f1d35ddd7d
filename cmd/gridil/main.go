// gridil searches for programs that reproduce grid transformations from
// examples, in the style of the ARC corpus: a task supplies train pairs,
// the engine enumerates typed compositions of library primitives depth by
// depth, and the first composition matching every pair is the solution.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "gridil: %v\n", err)
		os.Exit(1)
	}
}
