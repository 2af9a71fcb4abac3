package benchmark

import (
	"fmt"
	"testing"

	"github.com/cadvik/keva-go/internal/storage/keyspace"
)

// BenchmarkKeyspaceGet benchmarks shared-lock reads at various scales.
func BenchmarkKeyspaceGet(b *testing.B) {
	for _, count := range KeyCounts {
		b.Run(fmt.Sprintf("keys_%d", count), func(b *testing.B) {
			store := keyspace.New()
			prefillStore(store, count, 64)

			b.ResetTimer()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				store.Get(fmt.Sprintf("key-%08d", i%count))
			}
		})
	}
}

// BenchmarkKeyspaceSet benchmarks exclusive-lock writes.
func BenchmarkKeyspaceSet(b *testing.B) {
	store := keyspace.New()
	value := make([]byte, 64)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		store.Set(fmt.Sprintf("key-%08d", i%100000), value)
	}
}

// BenchmarkKeyspaceGetParallel measures read scaling under the shared lock.
func BenchmarkKeyspaceGetParallel(b *testing.B) {
	store := keyspace.New()
	prefillStore(store, 10000, 64)

	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			store.Get(fmt.Sprintf("key-%08d", i%10000))
			i++
		}
	})
}
