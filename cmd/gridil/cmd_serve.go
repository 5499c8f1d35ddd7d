package main

import (
	"github.com/spf13/cobra"

	"github.com/gridmind/gridil/internal/dsl"
	"github.com/gridmind/gridil/internal/remote"
)

func runServe(cmd *cobra.Command, args []string) {
	ctx := cmdContext(cmd)

	addr := cfg.Serve.Address
	if cmd.Flags().Changed("addr") {
		addr = flagAddr
	}

	srv := remote.NewServer(dsl.New())
	if err := srv.ListenAndServe(ctx, addr); err != nil {
		fatal(err)
	}
}
