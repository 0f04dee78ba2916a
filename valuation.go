package carteira

// Quote is a point-in-time, currency-normalized price for one unit of an
// asset. Known distinguishes "price is zero" from "price is unknown": a
// failed provider lookup yields an unknown quote, never a zero one.
type Quote struct {
	Price Money
	Known bool
}

// KnownQuote wraps a price the provider did resolve.
func KnownQuote(price Money) Quote { return Quote{Price: price, Known: true} }

// NoQuote is the "price unavailable" quote.
func NoQuote() Quote { return Quote{} }

// Valuation combines a Position with a current quote.
type Valuation struct {
	Position
	Quote        Quote
	CurrentValue Money   // price × quantity, or cost basis when the price is unknown
	ProfitLoss   Money   // current value − cost basis
	Return       Percent // profit/loss over cost basis, 0 when cost basis is 0
}

// Value computes the valuation of a position against a quote.
//
// When the quote is unknown the position is carried at cost: a conservative
// "no information" default that keeps portfolio totals undistorted, as
// opposed to valuing the asset at zero. Value is referentially transparent;
// calling it twice with identical inputs yields identical output.
func Value(p Position, q Quote) Valuation {
	v := Valuation{Position: p, Quote: q}
	if q.Known {
		v.CurrentValue = q.Price.Mul(p.Quantity)
	} else {
		v.CurrentValue = p.CostBasis
	}
	v.ProfitLoss = v.CurrentValue.Sub(p.CostBasis)
	if !p.CostBasis.IsZero() {
		v.Return = v.ProfitLoss.Ratio(p.CostBasis)
	}
	return v
}
