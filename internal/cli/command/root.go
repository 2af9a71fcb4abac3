package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/cadvik/keva-go/internal/infra/buildinfo"
	"github.com/cadvik/keva-go/pkg/client"
)

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "keva-cli",
		Usage:   "keva command-line client",
		Version: buildinfo.String(),
		Flags:   globalFlags(),
		Commands: []*cli.Command{
			GetCommand(),
			SetCommand(),
			DelCommand(),
		},
	}
}

// globalFlags returns the global CLI flags.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "server",
			Aliases: []string{"s"},
			Usage:   "keva server address",
			EnvVars: []string{"KEVA_SERVER"},
			Value:   "localhost:9001",
		},
	}
}

// dial opens a connection to the address in the global --server flag.
func dial(c *cli.Context) (*client.Client, error) {
	addr := c.String("server")
	cl, err := client.Dial(addr)
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", addr, err)
	}
	return cl, nil
}
