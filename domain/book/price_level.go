package book

// PriceLevel is the time-ordered queue of resting orders at one price
// on one side. The level owns its orders by value: readers get copies,
// and all mutation goes through the OrderBook.
type PriceLevel struct {
	Price       int64
	TotalVolume int64
	orders      []Order
}

func (l *PriceLevel) Enqueue(o Order) {
	l.orders = append(l.orders, o)
	l.TotalVolume += o.Volume
}

func (l *PriceLevel) Len() int { return len(l.orders) }

// Order returns a copy of the i-th resting order in time priority.
func (l *PriceLevel) Order(i int) Order { return l.orders[i] }

// Orders returns a copy of the whole queue in time priority.
func (l *PriceLevel) Orders() []Order {
	out := make([]Order, len(l.orders))
	copy(out, l.orders)
	return out
}

func (l *PriceLevel) front() *Order {
	if len(l.orders) == 0 {
		return nil
	}
	return &l.orders[0]
}

func (l *PriceLevel) removeByID(id string) bool {
	for i := range l.orders {
		if l.orders[i].ID != id {
			continue
		}
		l.TotalVolume -= l.orders[i].Volume
		l.orders = append(l.orders[:i], l.orders[i+1:]...)
		return true
	}
	return false
}
