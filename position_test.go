package carteira

import (
	"slices"
	"testing"
)

func TestAggregate(t *testing.T) {
	ledger := NewLedger()
	ledger.Append(
		NewBuy(MustParse("2025-01-15"), "", "PETR4.SA", Q(60), M(27)),
		NewBuy(MustParse("2025-02-15"), "", "PETR4.SA", Q(40), M(29.5)),
		NewBuy(MustParse("2025-01-20"), "", "BTC-USD", Q(0.0005), M(350000)),
	)

	pos := Aggregate(ledger, "PETR4.SA")
	if pos == nil {
		t.Fatal("Aggregate returned nil for a held asset")
	}
	if !pos.Quantity.Equal(Q(100)) {
		t.Errorf("Quantity = %s, want 100", pos.Quantity)
	}
	// 60×27 + 40×29.5 = 1620 + 1180 = 2800
	if !pos.CostBasis.Equal(M(2800)) {
		t.Errorf("CostBasis = %s, want 2800", pos.CostBasis.Decimal())
	}
	if !pos.AverageCost().Equal(M(28)) {
		t.Errorf("AverageCost = %s, want 28", pos.AverageCost().Decimal())
	}
}

func TestAggregate_FractionalExact(t *testing.T) {
	ledger := NewLedger()
	// Ten buys of 0.1 unit must sum to exactly 1, no float drift.
	for i := range 10 {
		ledger.Append(NewBuy(MustParse("2025-01-01").Add(i), "", "BTC-USD", Q(0.1), M(100000)))
	}
	pos := Aggregate(ledger, "BTC-USD")
	if pos == nil {
		t.Fatal("Aggregate returned nil")
	}
	if !pos.Quantity.Equal(Q(1)) {
		t.Errorf("Quantity = %s, want exactly 1", pos.Quantity)
	}
	if !pos.CostBasis.Equal(M(100000)) {
		t.Errorf("CostBasis = %s, want 100000", pos.CostBasis.Decimal())
	}
}

func TestAggregate_OrderIndependent(t *testing.T) {
	buys := []Transaction{
		NewBuy(MustParse("2025-01-15"), "", "PETR4.SA", Q(60), M(27)),
		NewBuy(MustParse("2025-02-15"), "", "PETR4.SA", Q(40), M(29.5)),
		NewBuy(MustParse("2025-03-15"), "", "PETR4.SA", Q(13), M(31.07)),
	}

	forward, reversed := NewLedger(), NewLedger()
	forward.Append(buys...)
	slices.Reverse(buys)
	reversed.Append(buys...)

	a, b := Aggregate(forward, "PETR4.SA"), Aggregate(reversed, "PETR4.SA")
	if !a.Quantity.Equal(b.Quantity) || !a.CostBasis.Equal(b.CostBasis) {
		t.Errorf("aggregation depends on append order: %+v vs %+v", a, b)
	}
}

func TestAggregate_UnknownAsset(t *testing.T) {
	if pos := Aggregate(NewLedger(), "VALE3.SA"); pos != nil {
		t.Errorf("Aggregate of unknown asset = %+v, want nil", pos)
	}
}

func TestQuantityAsOf(t *testing.T) {
	ledger := NewLedger()
	ledger.Append(
		NewBuy(MustParse("2025-01-15"), "", "PETR4.SA", Q(60), M(27)),
		NewBuy(MustParse("2025-02-15"), "", "PETR4.SA", Q(40), M(29.5)),
	)

	testCases := []struct {
		name string
		on   string
		want Quantity
	}{
		{name: "before first buy", on: "2025-01-14", want: Q(0)},
		{name: "on first buy", on: "2025-01-15", want: Q(60)},
		{name: "between buys", on: "2025-02-01", want: Q(60)},
		{name: "on second buy", on: "2025-02-15", want: Q(100)},
		{name: "after all buys", on: "2025-06-01", want: Q(100)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := QuantityAsOf(ledger, "PETR4.SA", MustParse(tc.on))
			if !got.Equal(tc.want) {
				t.Errorf("QuantityAsOf(%s) = %s, want %s", tc.on, got, tc.want)
			}
		})
	}
}

func TestPositions(t *testing.T) {
	ledger := NewLedger()
	ledger.Append(
		NewBuy(MustParse("2025-01-15"), "", "PETR4.SA", Q(100), M(28)),
		NewBuy(MustParse("2025-01-16"), "", "BOVA11.SA", Q(10), M(110)),
	)

	var assets []string
	for pos := range Positions(ledger) {
		assets = append(assets, pos.Asset)
	}
	want := []string{"BOVA11.SA", "PETR4.SA"}
	if !slices.Equal(assets, want) {
		t.Errorf("Positions assets = %v, want %v", assets, want)
	}
}
