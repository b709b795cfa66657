package accounts

import (
	"fmt"
	"testing"
)

// generateTransfers creates sends between a pool of addresses.
func generateTransfers(numTransfers, numUniqueAddresses int) []Transfer {
	addresses := make([]Address, numUniqueAddresses)
	for i := range numUniqueAddresses {
		addresses[i] = fmt.Sprintf("%064d", i)
	}

	transfers := make([]Transfer, numTransfers)
	for i := range numTransfers {
		from := addresses[i%numUniqueAddresses]
		to := addresses[(i+1)%numUniqueAddresses]
		transfers[i] = Send(from, to, 100, 10)
	}

	return transfers
}

// setupBenchmarkStore tracks the first trackedCount addresses of the pool.
func setupBenchmarkStore(trackedCount int) *Store {
	book := newFakeBook()
	for i := range trackedCount {
		book.track(fmt.Sprintf("p-%d", i), fmt.Sprintf("%064d", i))
	}

	return New(WithAddressBook(book))
}

func benchmarkIngest(b *testing.B, trackedCount, totalCount int) {
	transfers := generateTransfers(1000, totalCount)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		store := setupBenchmarkStore(trackedCount)
		b.StartTimer()

		for height, transfer := range transfers {
			if _, err := store.Ingest(transfer, 0, uint64(height), uint64(height)); err != nil {
				b.Fatal(err)
			}
		}
	}
}

// Benchmark Ingest with 10 tracked out of 50 addresses
func BenchmarkIngest_Small(b *testing.B) {
	benchmarkIngest(b, 10, 50)
}

// Benchmark Ingest with 100 tracked out of 500 addresses
func BenchmarkIngest_Medium(b *testing.B) {
	benchmarkIngest(b, 100, 500)
}

// Benchmark Ingest with 1000 tracked out of 5000 addresses
func BenchmarkIngest_Large(b *testing.B) {
	benchmarkIngest(b, 1000, 5000)
}

// Benchmark PruneTransactions on a full log
func BenchmarkPruneTransactions(b *testing.B) {
	transfers := generateTransfers(10_000, 100)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		store := setupBenchmarkStore(100)
		for height, transfer := range transfers {
			if _, err := store.Ingest(transfer, 0, uint64(height), uint64(height)); err != nil {
				b.Fatal(err)
			}
		}
		b.StartTimer()

		store.PruneTransactions(1000)
	}
}
