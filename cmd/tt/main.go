// @MX:ANCHOR: main is the entry point of the tt binary; it exits with status 1 on any error.
// @MX:REASON: cli.Execute already printed the error, so main only sets the exit code
package main

import (
	"os"

	"github.com/ttcli/tt/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
