package carteira

import "testing"

// fakeMarketData serves canned data per asset for tests.
type fakeMarketData struct {
	quotes    map[string]Money
	dividends map[string][]DividendEvent
	history   map[string]map[Date]Money
	rate      Quantity
}

func (f *fakeMarketData) Quote(asset string) (Money, bool) {
	price, ok := f.quotes[asset]
	return price, ok
}

func (f *fakeMarketData) DividendEvents(asset string) []DividendEvent {
	return f.dividends[asset]
}

func (f *fakeMarketData) PriceHistory(asset string, from, to Date) map[Date]Money {
	prices := make(map[Date]Money)
	for day, price := range f.history[asset] {
		if !day.Before(from) && !day.After(to) {
			prices[day] = price
		}
	}
	return prices
}

func (f *fakeMarketData) USDBRL() (Quantity, bool) {
	if f.rate.IsZero() {
		return Quantity{}, false
	}
	return f.rate, true
}

func TestNewPortfolioReport(t *testing.T) {
	ledger := NewLedger()
	ledger.Append(
		NewBuy(MustParse("2025-01-15"), "", "PETR4.SA", Q(100), M(28)),
		NewBuy(MustParse("2025-02-01"), "", "BOVA11.SA", Q(10), M(110)),
	)
	md := &fakeMarketData{
		quotes: map[string]Money{
			"PETR4.SA":  M(30),
			"BOVA11.SA": M(120),
		},
		dividends: map[string][]DividendEvent{
			"PETR4.SA": {
				{ExDate: MustParse("2025-06-01"), PayDate: MustParse("2025-06-30"), PerShare: M(1.25)},
			},
		},
	}

	r := NewPortfolioReport(ledger, md, MustParse("2025-06-15"))

	if len(r.Assets) != 2 {
		t.Fatalf("got %d assets, want 2", len(r.Assets))
	}
	// Assets come in lexical order: BOVA11.SA first.
	if r.Assets[0].Asset != "BOVA11.SA" || r.Assets[1].Asset != "PETR4.SA" {
		t.Fatalf("asset order = %s, %s", r.Assets[0].Asset, r.Assets[1].Asset)
	}

	if !r.Invested.Equal(M(3900)) { // 2800 + 1100
		t.Errorf("Invested = %s, want 3900", r.Invested.Decimal())
	}
	if !r.CurrentValue.Equal(M(4200)) { // 3000 + 1200
		t.Errorf("CurrentValue = %s, want 4200", r.CurrentValue.Decimal())
	}
	if !r.ProfitLoss.Equal(M(300)) {
		t.Errorf("ProfitLoss = %s, want 300", r.ProfitLoss.Decimal())
	}
	if !r.Receivable.Equal(M(125)) { // 100 × 1.25, qualified
		t.Errorf("Receivable = %s, want 125", r.Receivable.Decimal())
	}

	petr := r.Assets[1]
	if petr.Class != Stock {
		t.Errorf("PETR4.SA class = %s, want Ação", petr.Class)
	}
	if len(petr.Entitlements) != 1 || petr.Entitlements[0].Status != Qualified {
		t.Errorf("PETR4.SA entitlements = %+v", petr.Entitlements)
	}
}

func TestNewPortfolioReport_DegradesPerAsset(t *testing.T) {
	ledger := NewLedger()
	ledger.Append(
		NewBuy(MustParse("2025-01-15"), "", "PETR4.SA", Q(100), M(28)),
		NewBuy(MustParse("2025-02-01"), "", "VALE3.SA", Q(20), M(60)),
	)
	// Only PETR4 has a quote; VALE3 must be carried at cost.
	md := &fakeMarketData{quotes: map[string]Money{"PETR4.SA": M(30)}}

	r := NewPortfolioReport(ledger, md, MustParse("2025-06-15"))
	if !r.CurrentValue.Equal(M(4200)) { // 3000 + 1200 at cost
		t.Errorf("CurrentValue = %s, want 4200", r.CurrentValue.Decimal())
	}
	vale := r.Assets[1]
	if vale.Asset != "VALE3.SA" || vale.Quote.Known {
		t.Fatalf("expected VALE3.SA with unknown quote, got %+v", vale)
	}
	if !vale.CurrentValue.Equal(M(1200)) {
		t.Errorf("VALE3.SA CurrentValue = %s, want cost basis 1200", vale.CurrentValue.Decimal())
	}
}

func TestNewPortfolioReport_Empty(t *testing.T) {
	r := NewPortfolioReport(NewLedger(), &fakeMarketData{}, MustParse("2025-06-15"))
	if len(r.Assets) != 0 {
		t.Errorf("got %d assets, want 0", len(r.Assets))
	}
	if !r.Return.Equal(0) {
		t.Errorf("Return = %v, want 0 with nothing invested", r.Return)
	}
}

func TestNewDividendReport(t *testing.T) {
	ledger := NewLedger()
	ledger.Append(NewBuy(MustParse("2025-01-15"), "", "PETR4.SA", Q(100), M(28)))
	md := &fakeMarketData{
		dividends: map[string][]DividendEvent{
			"PETR4.SA": {
				{ExDate: MustParse("2025-06-01"), PayDate: MustParse("2025-06-10"), PerShare: M(0.5)}, // received
				{ExDate: MustParse("2025-06-05"), PayDate: MustParse("2025-06-30"), PerShare: M(1.25)}, // qualified
				{ExDate: MustParse("2025-06-20"), PerShare: M(2)},                                      // provisioned
			},
		},
	}
	today := MustParse("2025-06-15")

	r := NewDividendReport(ledger, md, today, false)
	if len(r.Entitlements) != 2 {
		t.Fatalf("got %d entitlements without -all, want 2", len(r.Entitlements))
	}
	for _, ent := range r.Entitlements {
		if ent.Status == Received {
			t.Error("received entitlement listed without includeReceived")
		}
	}
	if !r.Receivable.Equal(M(125)) {
		t.Errorf("Receivable = %s, want 125 (qualified only)", r.Receivable.Decimal())
	}

	all := NewDividendReport(ledger, md, today, true)
	if len(all.Entitlements) != 3 {
		t.Fatalf("got %d entitlements with includeReceived, want 3", len(all.Entitlements))
	}
	// The receivable total ignores received and provisioned amounts either way.
	if !all.Receivable.Equal(M(125)) {
		t.Errorf("Receivable = %s, want 125", all.Receivable.Decimal())
	}
}
