package carteira

import "iter"

// Position is the state of a single asset reconstructed from its buy
// transactions. It is derived and recomputed on each pass, never persisted.
type Position struct {
	Asset     string   // exchange-qualified asset identifier
	Quantity  Quantity // total quantity bought
	CostBasis Money    // cumulative amount paid (Σ quantity × unit price)
}

// AverageCost is the cost basis per unit. Only defined for a Position
// returned by Aggregate, whose quantity is strictly positive.
func (p Position) AverageCost() Money {
	return p.CostBasis.Div(p.Quantity)
}

// Aggregate folds the asset's buy transactions into a single Position. It
// returns nil when the asset has no buys or sums to zero quantity; such
// assets are excluded from the portfolio view entirely.
//
// Aggregate is a pure function: no I/O, deterministic, and order-independent
// thanks to exact decimal accumulation.
func Aggregate(l *Ledger, asset string) *Position {
	var quantity Quantity
	var cost Money
	for tx := range l.AssetTransactions(asset) {
		buy, ok := tx.(Buy)
		if !ok {
			continue
		}
		quantity = quantity.Add(buy.Quantity)
		cost = cost.Add(buy.Amount())
	}
	if quantity.IsZero() {
		return nil
	}
	return &Position{Asset: asset, Quantity: quantity, CostBasis: cost}
}

// QuantityAsOf folds the asset's buy quantities up to and including a given
// date. Used by the snapshot backfill, which needs the position on past days.
func QuantityAsOf(l *Ledger, asset string, on Date) Quantity {
	var quantity Quantity
	for tx := range l.AssetTransactions(asset) {
		if tx.When().After(on) {
			break // the ledger is sorted by date
		}
		if buy, ok := tx.(Buy); ok {
			quantity = quantity.Add(buy.Quantity)
		}
	}
	return quantity
}

// Positions iterates over the non-empty positions of every asset in the
// ledger, in lexical asset order.
func Positions(l *Ledger) iter.Seq[Position] {
	return func(yield func(Position) bool) {
		for asset := range l.Assets() {
			pos := Aggregate(l, asset)
			if pos == nil {
				continue
			}
			if !yield(*pos) {
				return
			}
		}
	}
}
