package main

import (
	"os"

	"github.com/breakaway-dev/rinkctl/internal/cli"
	"github.com/breakaway-dev/rinkctl/pkg/version"
)

func main() {
	os.Exit(run())
}

// run executes the root command and maps the outcome to an exit code.
// Cobra prints the error itself, so run only translates success or failure.
func run() int {
	root := cli.NewRootCmd(version.GetVersion())
	if err := root.Execute(); err != nil {
		return 1
	}
	return 0
}
