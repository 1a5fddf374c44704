// Package render produces a human-readable dump of an order book.
// It is built only on the book's read accessors; the matching core
// has no rendering concern.
package render

import (
	"fmt"
	"io"

	"floe/domain/book"
)

const delimiter = "|"

// Write prints the book in two columns: bids as "volume price" from
// the highest bid down, asks as "price volume" from the lowest ask
// up, one resting order per row.
func Write(w io.Writer, b *book.OrderBook) error {
	bids := flatten(b, book.Buy)
	asks := flatten(b, book.Sell)

	rows := len(bids)
	if len(asks) > rows {
		rows = len(asks)
	}
	for i := 0; i < rows; i++ {
		left := fmt.Sprintf("%21s", "")
		if i < len(bids) {
			left = fmt.Sprintf("%10d %10d", bids[i].Volume, bids[i].Price)
		}
		right := ""
		if i < len(asks) {
			right = fmt.Sprintf("%10d %10d", asks[i].Price, asks[i].Volume)
		}
		if _, err := fmt.Fprintf(w, "%s %s %s\n", left, delimiter, right); err != nil {
			return err
		}
	}
	return nil
}

// flatten lists every resting order on a side in price then time
// priority.
func flatten(b *book.OrderBook, side book.Side) []book.Order {
	var out []book.Order
	for _, price := range b.PriceLevels(side) {
		out = append(out, b.Level(side, price).Orders()...)
	}
	return out
}
