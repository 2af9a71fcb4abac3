package benchmark

import (
	"fmt"

	"github.com/cadvik/keva-go/internal/storage/keyspace"
)

// KeyCounts defines the keyspace sizes for benchmarking.
var KeyCounts = []int{1000, 10000, 100000}

// prefillStore fills a store with count keys of valueSize-byte values.
func prefillStore(store *keyspace.Store, count, valueSize int) {
	value := make([]byte, valueSize)
	for i := range value {
		value[i] = byte('a' + i%26)
	}
	for i := 0; i < count; i++ {
		store.Set(fmt.Sprintf("key-%08d", i), value)
	}
}
