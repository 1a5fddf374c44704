package book

import "sort"

// OrderBook is the authoritative store of resting orders for one
// instrument. Single-writer and deterministic.
type OrderBook struct {
	resting map[string]struct{}
	bids    map[int64]*PriceLevel
	asks    map[int64]*PriceLevel

	// hidden holds the not-yet-revealed slices of each iceberg order,
	// keyed by the parent order id. Entries are never empty.
	hidden map[string][]Order
}

func NewOrderBook() *OrderBook {
	return &OrderBook{
		resting: make(map[string]struct{}),
		bids:    make(map[int64]*PriceLevel),
		asks:    make(map[int64]*PriceLevel),
		hidden:  make(map[string][]Order),
	}
}

// Insert rests an order in the book. Iceberg orders are cut into
// display-sized slices: the first slice rests immediately, the rest
// stay hidden until the visible slice is removed.
func (b *OrderBook) Insert(o *Order) error {
	if o == nil {
		return ErrNilOrder
	}
	if _, ok := b.resting[o.ID]; ok {
		return ErrDuplicateID
	}
	b.resting[o.ID] = struct{}{}

	if o.Iceberg {
		slices := sliceIceberg(o)
		if len(slices) == 0 {
			delete(b.resting, o.ID)
			return nil
		}
		b.enqueue(slices[0])
		if rest := slices[1:]; len(rest) > 0 {
			b.hidden[o.ID] = rest
		}
		return nil
	}

	b.enqueue(*o)
	return nil
}

// Remove takes an order out of the book by identity. If the id has
// hidden iceberg slices the next slice is revealed at the same
// price and side, and the id stays in the look-up set.
func (b *OrderBook) Remove(o *Order) error {
	if o == nil {
		return ErrNilOrder
	}
	if _, ok := b.resting[o.ID]; !ok {
		return ErrNotFound
	}
	delete(b.resting, o.ID)

	removed := b.unlink(o.Side, o.Price, o.ID)

	if slices, ok := b.hidden[o.ID]; ok {
		next, rest := slices[0], slices[1:]
		b.enqueue(next)
		b.resting[o.ID] = struct{}{}
		if len(rest) > 0 {
			b.hidden[o.ID] = rest
		} else {
			delete(b.hidden, o.ID)
		}
	}

	if !removed {
		return ErrNotResting
	}
	return nil
}

// Exists reports whether an order with the given id currently rests.
func (b *OrderBook) Exists(id string) bool {
	_, ok := b.resting[id]
	return ok
}

// PriceLevels returns all resting prices on a side in matching
// priority order: highest first for Buy, lowest first for Sell.
func (b *OrderBook) PriceLevels(side Side) []int64 {
	levels := b.side(side)
	prices := make([]int64, 0, len(levels))
	for p := range levels {
		prices = append(prices, p)
	}
	if side == Buy {
		sort.Slice(prices, func(i, j int) bool { return prices[i] > prices[j] })
	} else {
		sort.Slice(prices, func(i, j int) bool { return prices[i] < prices[j] })
	}
	return prices
}

// Level returns the live price level, or nil if no orders rest there.
// Callers must treat it as read-only; mutation goes through Fill and
// Remove.
func (b *OrderBook) Level(side Side, price int64) *PriceLevel {
	return b.side(side)[price]
}

// Levels returns the live per-side storage, price to level. Read-only
// for callers; the matcher relies on seeing its own mutations here.
func (b *OrderBook) Levels(side Side) map[int64]*PriceLevel {
	return b.side(side)
}

// Peek returns a copy of the order at the front of a level.
func (b *OrderBook) Peek(side Side, price int64) (Order, bool) {
	lvl := b.side(side)[price]
	if lvl == nil || lvl.Len() == 0 {
		return Order{}, false
	}
	return lvl.orders[0], true
}

// Fill reduces the front order of a level by up to volume and returns
// the volume actually applied. An exhausted front order is removed
// from the book, which also reveals the next iceberg slice if the id
// has hidden volume.
func (b *OrderBook) Fill(side Side, price int64, volume int64) int64 {
	if volume <= 0 {
		return 0
	}
	lvl := b.side(side)[price]
	if lvl == nil {
		return 0
	}
	front := lvl.front()
	if front == nil {
		return 0
	}
	if volume > front.Volume {
		volume = front.Volume
	}
	front.Volume -= volume
	lvl.TotalVolume -= volume
	if front.Volume == 0 {
		exhausted := *front
		_ = b.Remove(&exhausted)
	}
	return volume
}

func (b *OrderBook) side(side Side) map[int64]*PriceLevel {
	if side == Buy {
		return b.bids
	}
	return b.asks
}

func (b *OrderBook) enqueue(o Order) {
	levels := b.side(o.Side)
	lvl, ok := levels[o.Price]
	if !ok {
		lvl = &PriceLevel{Price: o.Price}
		levels[o.Price] = lvl
	}
	lvl.Enqueue(o)
}

func (b *OrderBook) unlink(side Side, price int64, id string) bool {
	levels := b.side(side)
	lvl, ok := levels[price]
	if !ok {
		return false
	}
	if !lvl.removeByID(id) {
		return false
	}
	if lvl.Len() == 0 {
		delete(levels, price)
	}
	return true
}

// sliceIceberg cuts an iceberg order into plain display-sized slices
// plus a smaller final slice for any remainder. Slices carry the
// parent's id, price and side and are not icebergs themselves.
func sliceIceberg(o *Order) []Order {
	full := o.Volume / o.DisplaySize
	excess := o.Volume % o.DisplaySize

	slices := make([]Order, 0, full+1)
	for i := int64(0); i < full; i++ {
		slices = append(slices, Order{
			ID:     o.ID,
			Price:  o.Price,
			Volume: o.DisplaySize,
			Side:   o.Side,
		})
	}
	if excess > 0 {
		slices = append(slices, Order{
			ID:     o.ID,
			Price:  o.Price,
			Volume: excess,
			Side:   o.Side,
		})
	}
	return slices
}
