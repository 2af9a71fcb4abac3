// Package client provides a minimal RESP client for keva.
//
// It speaks the server's command subset (GET, SET, DEL) over a single
// TCP connection and is used by keva-cli and integration tests.
package client
