// Package resp implements the subset of the Redis serialization protocol
// (RESP 2) that keva speaks on the wire.
//
// The parser is pure: it consumes exactly one value from a byte buffer,
// advancing a caller-owned cursor, and never performs I/O or mutates its
// input. Reply encoders produce ready-to-send byte strings.
package resp
