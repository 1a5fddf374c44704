// Package feed decodes incoming orders from a line-oriented text
// stream. One order per line:
//
//	SIDE,id,price,volume[,displaySize]
//
// SIDE is B/BUY or S/SELL, case-insensitive. A displaySize marks the
// order as an iceberg. Blank lines and lines starting with '#' are
// skipped.
package feed

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"floe/domain/book"
)

// Parse decodes a single order line.
func Parse(line string) (*book.Order, error) {
	fields := strings.Split(line, ",")
	if len(fields) != 4 && len(fields) != 5 {
		return nil, fmt.Errorf("expected 4 or 5 fields, got %d", len(fields))
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	var side book.Side
	switch strings.ToUpper(fields[0]) {
	case "B", "BUY":
		side = book.Buy
	case "S", "SELL":
		side = book.Sell
	default:
		return nil, fmt.Errorf("unknown side %q", fields[0])
	}

	if fields[1] == "" {
		return nil, fmt.Errorf("empty order id")
	}

	price, err := parsePositive(fields[2], "price")
	if err != nil {
		return nil, err
	}
	volume, err := parsePositive(fields[3], "volume")
	if err != nil {
		return nil, err
	}

	o := &book.Order{
		ID:     fields[1],
		Price:  price,
		Volume: volume,
		Side:   side,
	}
	if len(fields) == 5 {
		display, err := parsePositive(fields[4], "display size")
		if err != nil {
			return nil, err
		}
		o.Iceberg = true
		o.DisplaySize = display
	}
	return o, nil
}

func parsePositive(s, name string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("bad %s %q: %w", name, s, err)
	}
	if v <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %d", name, v)
	}
	return v, nil
}

// Reader pulls orders off a text stream one at a time.
type Reader struct {
	scanner *bufio.Scanner
	line    int
}

func NewReader(r io.Reader) *Reader {
	return &Reader{scanner: bufio.NewScanner(r)}
}

// Next returns the next order, io.EOF once the stream is exhausted,
// or a line-tagged error for a malformed line. After an error the
// reader keeps going from the following line.
func (r *Reader) Next() (*book.Order, error) {
	for r.scanner.Scan() {
		r.line++
		text := strings.TrimSpace(r.scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		o, err := Parse(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", r.line, err)
		}
		return o, nil
	}
	if err := r.scanner.Err(); err != nil {
		return nil, err
	}
	return nil, io.EOF
}
