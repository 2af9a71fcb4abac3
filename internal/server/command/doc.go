// Package command turns raw request bytes into RESP reply bytes.
//
// The handler parses every frame in the request buffer in order and
// concatenates one reply per frame, which gives pipelined clients
// reply order matching request order. Protocol errors become error
// replies; the connection itself is left to the reactor.
package command
