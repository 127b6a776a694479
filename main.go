// Package main is the entry point for the api-doc-parser CLI.
package main

import (
	"fmt"
	"os"

	"api-doc-parser/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
