package match

import (
	"fmt"
	"testing"

	"floe/domain/book"
)

func BenchmarkMatchAndInsertRemaining(b *testing.B) {
	m, _ := newMatcher()
	for i := 0; i < 1000; i++ {
		m.MatchAndInsertRemaining(&book.Order{
			ID:     fmt.Sprintf("seed-%d", i),
			Price:  int64(90 + i%20),
			Volume: 100,
			Side:   book.Sell,
		})
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.MatchAndInsertRemaining(&book.Order{
			ID:     fmt.Sprintf("agg-%d", i),
			Price:  100,
			Volume: 50,
			Side:   book.Buy,
		})
	}
}

func BenchmarkInsertRemove(b *testing.B) {
	ob := book.NewOrderBook()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		o := &book.Order{
			ID:     fmt.Sprintf("o-%d", i),
			Price:  int64(1 + i%100),
			Volume: 10,
			Side:   book.Buy,
		}
		_ = ob.Insert(o)
		_ = ob.Remove(o)
	}
}
