// Package keyspace provides keva's in-memory key-value store.
//
// The store is a plain map guarded by a single readers-writer lock:
// reads take shared access, writes take exclusive access, and a snapshot
// holds shared access for its whole iteration so the written file is a
// point-in-time view of the keyspace.
//
// The snapshot file is a headerless sequence of records, each record
// being <key length><key bytes><value length><value bytes> with lengths
// encoded as 64-bit little-endian unsigned integers. There is no
// checksum; restore is best-effort and stops silently at the first
// truncated record.
package keyspace
