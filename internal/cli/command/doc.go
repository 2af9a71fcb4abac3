// Package command provides CLI command definitions for keva-cli.
package command
