// Package snapshot runs the periodic keyspace snapshot loop.
//
// The manager owns the snapshot file path and interval; the keyspace's
// own locking serializes the write against concurrent commands. A failed
// snapshot is logged and counted, never fatal.
package snapshot
