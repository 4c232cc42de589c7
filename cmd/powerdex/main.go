package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/morozRed/powerdex/internal/cli"
)

var version = "0.1.0-dev"

func main() {
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, "error:", exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(cli.ExitFailure)
	}
}

func run(stdout, stderr io.Writer, args []string) error {
	rootCmd := cli.NewRootCommand(version)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}
