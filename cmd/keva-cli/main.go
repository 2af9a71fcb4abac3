// keva-cli is the command-line client for keva-server.
package main

import (
	"fmt"
	"os"

	"github.com/cadvik/keva-go/internal/cli/command"
)

func main() {
	if err := command.App().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
