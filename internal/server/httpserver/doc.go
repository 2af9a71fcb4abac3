// Package httpserver provides keva's admin HTTP server.
//
// It serves operational endpoints (health, build info, Prometheus
// metrics) on an address separate from the RESP port.
package httpserver
