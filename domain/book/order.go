package book

type Side int

const (
	Buy Side = iota
	Sell
)

func (s Side) Opposite() Side {
	if s == Buy {
		return Sell
	}
	return Buy
}

func (s Side) String() string {
	if s == Buy {
		return "BUY"
	}
	return "SELL"
}

// Order is an order as submitted by a caller. Volume is decremented
// by fills; everything else is immutable after creation. Two orders
// are the same order iff their IDs are equal.
type Order struct {
	ID          string
	Price       int64
	Volume      int64
	Side        Side
	Iceberg     bool
	DisplaySize int64
}

// Filled reports whether the order has no volume left.
func (o *Order) Filled() bool { return o.Volume == 0 }

// Crosses reports whether the order's limit permits a trade against
// the given resting price.
func (o *Order) Crosses(restingPrice int64) bool {
	if o.Side == Buy {
		return o.Price >= restingPrice
	}
	return o.Price <= restingPrice
}

// Trade records one fill between an incoming order and a resting one.
// The price is always the resting order's price.
type Trade struct {
	CrossingOrderID string `json:"crossing_order_id"`
	RestingOrderID  string `json:"resting_order_id"`
	Price           int64  `json:"price"`
	Volume          int64  `json:"volume"`
}
