// Package main provides the entry point for keva-server.
package main
