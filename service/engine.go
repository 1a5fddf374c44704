package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"floe/domain/book"
	"floe/domain/match"
	"floe/infra/sequence"
)

// TradeReporter delivers executed trades downstream for settlement
// and reporting.
type TradeReporter interface {
	Report(ctx context.Context, t book.Trade) error
}

// Engine is the only write entry point into the matching core.
//
// The book and matcher are single-writer with no internal locking;
// the engine owns the mutex that keeps one matching call in flight
// at a time.
type Engine struct {
	mu       sync.Mutex
	book     *book.OrderBook
	matcher  *match.Matcher
	seq      *sequence.Sequencer
	log      *logrus.Logger
	reporter TradeReporter
}

// NewEngine wires the engine. reporter may be nil to disable trade
// publishing.
func NewEngine(
	b *book.OrderBook,
	m *match.Matcher,
	seq *sequence.Sequencer,
	log *logrus.Logger,
	reporter TradeReporter,
) *Engine {
	return &Engine{
		book:     b,
		matcher:  m,
		seq:      seq,
		log:      log,
		reporter: reporter,
	}
}

// Submit matches an incoming order against the book and rests any
// unfilled remainder. Orders arriving with a blank id are assigned
// one. The generated trades are returned in execution order.
func (e *Engine) Submit(ctx context.Context, o *book.Order) ([]book.Trade, error) {
	if o == nil {
		return nil, book.ErrNilOrder
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if o.ID == "" {
		o.ID = fmt.Sprintf("ord-%d", e.seq.Next())
	}
	if e.book.Exists(o.ID) {
		e.log.WithField("order_id", o.ID).Warn("duplicate order id rejected")
		return nil, book.ErrDuplicateID
	}

	trades := e.matcher.MatchAndInsertRemaining(o)
	e.publish(ctx, trades)

	e.log.WithFields(logrus.Fields{
		"order_id":  o.ID,
		"side":      o.Side.String(),
		"trades":    len(trades),
		"remaining": o.Volume,
	}).Info("order processed")

	return trades, nil
}

// Cancel removes a resting order outright. Cancelling the visible
// slice of an iceberg reveals the next one.
func (e *Engine) Cancel(o *book.Order) error {
	if o == nil {
		return book.ErrNilOrder
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.book.Remove(o); err != nil {
		e.log.WithError(err).WithField("order_id", o.ID).Warn("cancel failed")
		return err
	}
	e.log.WithField("order_id", o.ID).Info("order cancelled")
	return nil
}

// publish is best effort: a failed report is logged, never unwound —
// the fill already happened.
func (e *Engine) publish(ctx context.Context, trades []book.Trade) {
	if e.reporter == nil {
		return
	}
	for _, t := range trades {
		if err := e.reporter.Report(ctx, t); err != nil {
			e.log.WithError(err).WithFields(logrus.Fields{
				"crossing_order_id": t.CrossingOrderID,
				"resting_order_id":  t.RestingOrderID,
			}).Error("trade report failed")
		}
	}
}
