// Command charconv decodes UTF-16 streams and runs decoder conformance
// scenarios.
package main

import (
	"fmt"
	"os"

	"github.com/LynnKirby/charconv/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.GetExitCode(err))
	}
}
