package main

import (
	"fmt"
	"os"

	"github.com/livrariapp/livraria-server/internal/config"
	"github.com/livrariapp/livraria-server/internal/entrypoint"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	// "serve" is the only mode; accept it explicitly for symmetry with
	// container entrypoints that pass a command.
	if len(os.Args) >= 2 && os.Args[1] != "serve" {
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", os.Args[1])
		fmt.Fprintf(os.Stderr, "Usage: %s [serve]\n", os.Args[0])
		os.Exit(1)
	}

	cfg := config.NewConfig()
	entrypoint.Run(cfg, Version)
}
