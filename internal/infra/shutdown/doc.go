// Package shutdown provides graceful shutdown handling.
//
// The handler waits for SIGINT/SIGTERM or end-of-file on an operator
// stream (stdin), then runs registered hooks in reverse order under a
// deadline.
package shutdown
