// Package service is the write entry point into the matching core.
//
// It serializes submissions onto the single-writer book, assigns ids
// to orders that arrive without one, logs soft failures, and hands
// executed trades to an optional downstream reporter — decoupled from
// any transport or rendering concern.
package service
