package carteira

// AssetReport is the per-asset line of a portfolio report: the valued
// position plus its classified dividend entitlements.
type AssetReport struct {
	Valuation
	Class        AssetClass
	Entitlements []Entitlement
	Receivable   Money // qualified entitlements only
}

// PortfolioReport is the full state of the portfolio on a given day.
//
// Totals aggregate the per-asset lines: Invested and CurrentValue sum
// all positions, Receivable sums qualified entitlements only. The report
// is a pure function of (ledger, market data, date); nothing in it is
// cached between runs.
type PortfolioReport struct {
	Date         Date
	Assets       []AssetReport
	Invested     Money
	CurrentValue Money
	ProfitLoss   Money
	Return       Percent
	Receivable   Money
}

// NewPortfolioReport values every open position against the provider and
// classifies each asset's dividend events as of today.
//
// Provider failures degrade per asset: an unknown quote carries the
// position at cost, a failed dividend lookup leaves the asset without
// entitlements. The report itself always comes back complete.
func NewPortfolioReport(l *Ledger, md MarketData, today Date) *PortfolioReport {
	r := &PortfolioReport{Date: today}
	for p := range Positions(l) {
		quote := NoQuote()
		if price, ok := md.Quote(p.Asset); ok {
			quote = KnownQuote(price)
		}
		entitlements := ClassifyAll(l, p.Asset, md.DividendEvents(p.Asset), today)

		a := AssetReport{
			Valuation:    Value(p, quote),
			Class:        ClassOf(p.Asset),
			Entitlements: entitlements,
			Receivable:   QualifiedReceivable(entitlements),
		}
		r.Assets = append(r.Assets, a)

		r.Invested = r.Invested.Add(p.CostBasis)
		r.CurrentValue = r.CurrentValue.Add(a.CurrentValue)
		r.Receivable = r.Receivable.Add(a.Receivable)
	}
	r.ProfitLoss = r.CurrentValue.Sub(r.Invested)
	if !r.Invested.IsZero() {
		r.Return = r.ProfitLoss.Ratio(r.Invested)
	}
	return r
}

// DividendReport lists the portfolio's dividend entitlements on a given day.
type DividendReport struct {
	Date         Date
	Entitlements []Entitlement
	Receivable   Money // qualified entitlements only
}

// NewDividendReport classifies every held asset's dividend events. Received
// entitlements are history rather than pending cash, so they are excluded
// unless includeReceived is set.
func NewDividendReport(l *Ledger, md MarketData, today Date, includeReceived bool) *DividendReport {
	r := &DividendReport{Date: today}
	for asset := range l.Assets() {
		for _, ent := range ClassifyAll(l, asset, md.DividendEvents(asset), today) {
			if ent.Status == Received && !includeReceived {
				continue
			}
			r.Entitlements = append(r.Entitlements, ent)
		}
	}
	r.Receivable = QualifiedReceivable(r.Entitlements)
	return r
}
