package main

import (
	"fmt"
	"os"

	"task-analytics/internal/cli"
	"task-analytics/internal/config"
)

func main() {
	loader := config.NewLoader()
	cfg, err := loader.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	root := cli.NewRootCommand(cfg)
	defer root.Close()

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
