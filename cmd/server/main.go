package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/meur/homepage/internal/cli"
)

func main() {
	if err := cli.Run(context.Background(), os.Args); err != nil {
		slog.Error("homepage failed", "error", err)
		os.Exit(1)
	}
}
