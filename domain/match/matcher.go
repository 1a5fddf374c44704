// Package match implements price-time-priority crossing of incoming
// orders against a resting order book.
package match

import "floe/domain/book"

// Book is the slice of the order book contract the matcher drives.
// *book.OrderBook satisfies it.
type Book interface {
	PriceLevels(side book.Side) []int64
	Peek(side book.Side, price int64) (book.Order, bool)
	Fill(side book.Side, price int64, volume int64) int64
	Insert(o *book.Order) error
}

type Matcher struct {
	book Book
}

func New(b Book) *Matcher {
	return &Matcher{book: b}
}

// MatchAndInsertRemaining crosses an incoming order against the
// opposite side of the book, best price level first and time priority
// within a level. Trades are returned in the order they were
// generated. Any unfilled remainder is inserted on the incoming
// order's own side; a fully filled order never rests.
func (m *Matcher) MatchAndInsertRemaining(incoming *book.Order) []book.Trade {
	if incoming == nil {
		return nil
	}

	var trades []book.Trade
	opposite := incoming.Side.Opposite()

sweep:
	for incoming.Volume > 0 {
		levels := m.book.PriceLevels(opposite)
		if len(levels) == 0 {
			break
		}
		best := levels[0]
		if !incoming.Crosses(best) {
			// Levels are priority ordered, no further level can cross.
			break
		}

		for incoming.Volume > 0 {
			resting, ok := m.book.Peek(opposite, best)
			if !ok {
				break
			}
			fill := min(incoming.Volume, resting.Volume)
			if fill == 0 {
				// A zero-volume resting order can make no progress.
				break sweep
			}
			trades = append(trades, book.Trade{
				CrossingOrderID: incoming.ID,
				RestingOrderID:  resting.ID,
				Price:           best,
				Volume:          fill,
			})
			incoming.Volume -= fill
			m.book.Fill(opposite, best, fill)
		}
	}

	if incoming.Volume > 0 {
		_ = m.book.Insert(incoming)
	}
	return trades
}
