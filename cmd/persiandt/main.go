// Command persiandt converts and inspects Jalali (Solar Hijri) dates.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/roach88/persiandt/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		// Commands that already rendered their error (JSON envelope or
		// "Error [...]" line) return an ExitError; anything else is a
		// flag or argument error from cobra.
		var exitErr *cli.ExitError
		if !errors.As(err, &exitErr) {
			fmt.Fprintf(os.Stderr, "persiandt: %v\n", err)
		}
		os.Exit(cli.GetExitCode(err))
	}
}
