// Package main provides the entry point for keva-cli.
package main
