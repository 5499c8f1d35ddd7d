package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/gridmind/gridil/internal/catalog"
	"github.com/gridmind/gridil/internal/config"
	"github.com/gridmind/gridil/internal/ctxlog"
	"github.com/gridmind/gridil/internal/dsl"
	"github.com/gridmind/gridil/internal/remote"
	"github.com/gridmind/gridil/internal/search"
)

var (
	configPath string
	verbose    bool

	flagDepth     int
	flagTimeout   time.Duration
	flagLibrary   string
	flagRecord    bool
	flagSource    string
	flagConstants bool
	flagAddr      string

	cfg *config.Config

	rootCmd = &cobra.Command{
		Use:   "gridil",
		Short: "Search for programs that reproduce grid transformations",
		Long: `gridil enumerates compositions of typed grid primitives until one
reproduces every training pair of a task, shallowest first.`,
		PersistentPreRun: loadConfig,
	}

	solveCmd = &cobra.Command{
		Use:   "solve <task.json>",
		Short: "Search for a program solving one task",
		Args:  cobra.ExactArgs(1),
		Run:   runSolve,
	}

	batchCmd = &cobra.Command{
		Use:   "batch [dir]",
		Short: "Solve a directory of tasks, or the imported set, recording solutions",
		Args:  cobra.MaximumNArgs(1),
		Run:   runBatch,
	}

	showCmd = &cobra.Command{
		Use:   "show <task.json>",
		Short: "Render a task's example pairs",
		Args:  cobra.ExactArgs(1),
		Run:   runShow,
	}

	primitivesCmd = &cobra.Command{
		Use:   "primitives",
		Short: "List the library as the engine sees it",
		Args:  cobra.NoArgs,
		Run:   runPrimitives,
	}

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Expose the grid library over gRPC",
		Args:  cobra.NoArgs,
		Run:   runServe,
	}

	archiveCmd = &cobra.Command{
		Use:   "archive",
		Short: "Manage the task and solution archive",
	}

	archiveImportCmd = &cobra.Command{
		Use:   "import <dir>",
		Short: "Import a directory of task files into the archive",
		Args:  cobra.ExactArgs(1),
		Run:   runArchiveImport,
	}

	archiveSolutionsCmd = &cobra.Command{
		Use:   "solutions [task-id]",
		Short: "List recorded solutions",
		Args:  cobra.MaximumNArgs(1),
		Run:   runArchiveSolutions,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"config file (default: gridil.yaml found upward from the working directory)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().IntVar(&flagDepth, "depth", 0, "deepest composition to try (0 leaves depth unbounded)")
	solveCmd.Flags().DurationVar(&flagTimeout, "timeout", 0, "wall-clock budget")
	solveCmd.Flags().StringVar(&flagLibrary, "library", "", "address of a remote primitive library")
	solveCmd.Flags().BoolVar(&flagRecord, "record", false, "record the solution in the archive")

	rootCmd.AddCommand(batchCmd)
	batchCmd.Flags().IntVar(&flagDepth, "depth", 0, "deepest composition to try (0 leaves depth unbounded)")
	batchCmd.Flags().DurationVar(&flagTimeout, "timeout", 0, "wall-clock budget per task")
	batchCmd.Flags().StringVar(&flagLibrary, "library", "", "address of a remote primitive library")

	rootCmd.AddCommand(showCmd)

	rootCmd.AddCommand(primitivesCmd)
	primitivesCmd.Flags().StringVar(&flagLibrary, "library", "", "address of a remote primitive library")
	primitivesCmd.Flags().BoolVar(&flagConstants, "constants", false, "list the constant pool too")

	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&flagAddr, "addr", "", "listen address (default from config)")

	rootCmd.AddCommand(archiveCmd)
	archiveCmd.AddCommand(archiveImportCmd)
	archiveImportCmd.Flags().StringVar(&flagSource, "source", "", "source label (default: the directory name)")
	archiveCmd.AddCommand(archiveSolutionsCmd)
}

// loadConfig resolves the configuration and process logger before any
// command body runs.
func loadConfig(_ *cobra.Command, _ []string) {
	path := configPath
	if path == "" {
		if wd, err := os.Getwd(); err == nil {
			if found, err := config.Find(wd); err == nil && found != "" {
				path = found
			}
		}
	}
	if path == "" {
		cfg = config.Default()
	} else {
		loaded, err := config.Load(path)
		if err != nil {
			fatal(err)
		}
		cfg = loaded
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "gridil: %v\n", err)
	os.Exit(1)
}

// cmdContext attaches the process logger to the command's context.
func cmdContext(cmd *cobra.Command) context.Context {
	return ctxlog.With(cmd.Context(), slog.Default())
}

// openLibrary picks the primitive collection: the in-process DSL when no
// address is configured, a remote client otherwise. The returned func
// releases the connection, if any.
func openLibrary(ctx context.Context, address string) (catalog.Library, func(), error) {
	if address == "" {
		return dsl.New(), func() {}, nil
	}
	client, err := remote.Dial(ctx, address)
	if err != nil {
		return nil, nil, err
	}
	return client, func() { client.Close() }, nil
}

// libraryAddress resolves the --library override against the config.
func libraryAddress(cmd *cobra.Command) string {
	if cmd.Flags().Changed("library") {
		return flagLibrary
	}
	return cfg.Library.Address
}

// searchOptions resolves budget flags against the config and wires
// progress reporting into the logger.
func searchOptions(cmd *cobra.Command, log *slog.Logger) search.Options {
	opts := search.Options{
		MaxDepth:         cfg.Search.MaxDepth,
		Timeout:          cfg.Search.Timeout.Std(),
		ProgressInterval: cfg.Search.ProgressInterval.Std(),
	}
	if cmd.Flags().Changed("depth") {
		opts.MaxDepth = flagDepth
	}
	if cmd.Flags().Changed("timeout") {
		opts.Timeout = flagTimeout
	}
	opts.Progress = func(p search.Progress) {
		log.Info("searching",
			"depth", p.Depth, "attempts", p.Attempts, "elapsed", p.Elapsed.Round(time.Millisecond))
	}
	return opts
}
