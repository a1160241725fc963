package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/saylorsolutions/xorpad/cmd/internal"
	"github.com/saylorsolutions/xorpad/cmd/xorpad/internal/cli"
)

var (
	version = "dev"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := cli.NewRootCommand(version)
	if err := root.ExecuteContext(ctx); err != nil {
		stop()
		internal.Fatal("%s", cli.Describe(err))
	}
}
