// Command seed loads YAML seed files into the database. It is shorthand for
// "server seed".
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/meur/homepage/internal/cli"
)

func main() {
	args := append([]string{os.Args[0], "seed"}, os.Args[1:]...)
	if err := cli.Run(context.Background(), args); err != nil {
		slog.Error("seeding failed", "error", err)
		os.Exit(1)
	}
}
