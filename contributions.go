package carteira

import (
	"maps"
	"slices"
)

// MonthlyContribution is the total amount invested in one calendar month.
// Derived aggregate, never persisted.
type MonthlyContribution struct {
	Month  Month
	Amount Money // Σ quantity × unit price of the month's buys
}

// MonthlyContributions rolls up buy transactions into monthly totals, in
// ascending month order. An empty asset aggregates across all assets;
// otherwise only that asset's buys count.
//
// Pure and deterministic: months with no buys simply do not appear.
func MonthlyContributions(l *Ledger, asset string) []MonthlyContribution {
	totals := make(map[Month]Money)
	for _, tx := range l.Transactions(ByKind(CmdBuy)) {
		if asset != "" && tx.Asset() != asset {
			continue
		}
		buy, ok := tx.(Buy)
		if !ok {
			continue
		}
		month := buy.When().MonthOf()
		totals[month] = totals[month].Add(buy.Amount())
	}

	months := slices.Collect(maps.Keys(totals))
	slices.SortFunc(months, func(a, b Month) int {
		if a.Before(b) {
			return -1
		}
		if b.Before(a) {
			return 1
		}
		return 0
	})

	contributions := make([]MonthlyContribution, 0, len(months))
	for _, month := range months {
		contributions = append(contributions, MonthlyContribution{Month: month, Amount: totals[month]})
	}
	return contributions
}
