package main

import (
	"fmt"
	"os"

	"github.com/funvibe/pyvet/internal/config"
	"github.com/funvibe/pyvet/pkg/cli"
)

func main() {
	// Catch panics and show a user-friendly error
	defer func() {
		if r := recover(); r != nil {
			if os.Getenv("DEBUG") == "1" {
				panic(r) // Re-panic to get stack trace
			}
			fmt.Fprintf(os.Stderr, "Internal error: %v\n", r)
			fmt.Fprintln(os.Stderr, "This is a bug. Please report it.")
			os.Exit(1)
		}
	}()

	if os.Getenv("PYVET_TEST_MODE") == "1" {
		config.IsTestMode = true
	}

	cli.Execute()
}
