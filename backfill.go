package carteira

// Backfill reconstructs the portfolio's total value for every day in
// [from, to] from the provider's price history and records it, overwriting
// any value already stored for a day. It returns the number of days recorded.
//
// Prices are carried forward over days the market was closed. A day is
// skipped when no asset has a known price yet, which only happens before the
// provider's history starts. Positions are taken as of each day, so trades
// inside the window shift the curve exactly where they happened.
func Backfill(l *Ledger, md MarketData, history *History, from, to Date) int {
	type series struct {
		asset  string
		prices map[Date]Money
		last   Money
		seen   bool
	}

	var all []*series
	for asset := range l.Assets() {
		all = append(all, &series{asset: asset, prices: md.PriceHistory(asset, from, to)})
	}

	var recorded int
	for day := from; !day.After(to); day = day.Add(1) {
		var total Money
		var priced bool
		for _, s := range all {
			if price, ok := s.prices[day]; ok {
				s.last, s.seen = price, true
			}
			if !s.seen {
				continue
			}
			quantity := QuantityAsOf(l, s.asset, day)
			if quantity.IsPositive() {
				total = total.Add(s.last.Mul(quantity))
				priced = true
			}
		}
		if !priced {
			continue
		}
		history.Append(day, total)
		recorded++
	}
	return recorded
}
