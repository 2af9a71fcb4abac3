package command

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"
)

// GetCommand returns the "get" command.
func GetCommand() *cli.Command {
	return &cli.Command{
		Name:      "get",
		Usage:     "Fetch the value stored under a key",
		ArgsUsage: "<key>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return errors.New("usage: keva-cli get <key>")
			}

			cl, err := dial(c)
			if err != nil {
				return err
			}
			defer cl.Close()

			value, found, err := cl.Get(c.Args().Get(0))
			if err != nil {
				return err
			}
			if !found {
				fmt.Fprintln(c.App.Writer, "(nil)")
				return nil
			}
			fmt.Fprintln(c.App.Writer, string(value))
			return nil
		},
	}
}

// SetCommand returns the "set" command.
func SetCommand() *cli.Command {
	return &cli.Command{
		Name:      "set",
		Usage:     "Store a value under a key",
		ArgsUsage: "<key> <value>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 2 {
				return errors.New("usage: keva-cli set <key> <value>")
			}

			cl, err := dial(c)
			if err != nil {
				return err
			}
			defer cl.Close()

			if err := cl.Set(c.Args().Get(0), []byte(c.Args().Get(1))); err != nil {
				return err
			}
			fmt.Fprintln(c.App.Writer, "OK")
			return nil
		},
	}
}

// DelCommand returns the "del" command.
func DelCommand() *cli.Command {
	return &cli.Command{
		Name:      "del",
		Usage:     "Delete a key",
		ArgsUsage: "<key>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return errors.New("usage: keva-cli del <key>")
			}

			cl, err := dial(c)
			if err != nil {
				return err
			}
			defer cl.Close()

			deleted, err := cl.Del(c.Args().Get(0))
			if err != nil {
				return err
			}
			n := 0
			if deleted {
				n = 1
			}
			fmt.Fprintf(c.App.Writer, "(integer) %d\n", n)
			return nil
		},
	}
}
