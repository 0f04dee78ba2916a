package carteira

import "testing"

func TestBackfill(t *testing.T) {
	ledger := NewLedger()
	ledger.Append(NewBuy(MustParse("2025-06-01"), "", "PETR4.SA", Q(100), M(28)))

	md := &fakeMarketData{
		history: map[string]map[Date]Money{
			"PETR4.SA": {
				MustParse("2025-06-02"): M(29),
				MustParse("2025-06-03"): M(30),
				// 06-04 and 06-05 closed, price carried forward
				MustParse("2025-06-06"): M(31),
			},
		},
	}

	h := NewHistory()
	n := Backfill(ledger, md, h, MustParse("2025-06-02"), MustParse("2025-06-06"))
	if n != 5 {
		t.Fatalf("Backfill recorded %d days, want 5", n)
	}

	testCases := []struct {
		day  string
		want Money
	}{
		{day: "2025-06-02", want: M(2900)},
		{day: "2025-06-03", want: M(3000)},
		{day: "2025-06-04", want: M(3000)}, // carried forward
		{day: "2025-06-05", want: M(3000)},
		{day: "2025-06-06", want: M(3100)},
	}
	for _, tc := range testCases {
		got, ok := h.Get(MustParse(tc.day))
		if !ok {
			t.Errorf("no value recorded for %s", tc.day)
			continue
		}
		if !got.Equal(tc.want) {
			t.Errorf("value on %s = %s, want %s", tc.day, got.Decimal(), tc.want.Decimal())
		}
	}
}

func TestBackfill_SkipsDaysBeforeData(t *testing.T) {
	ledger := NewLedger()
	ledger.Append(NewBuy(MustParse("2025-06-01"), "", "PETR4.SA", Q(10), M(28)))
	md := &fakeMarketData{
		history: map[string]map[Date]Money{
			"PETR4.SA": {MustParse("2025-06-04"): M(30)},
		},
	}

	h := NewHistory()
	n := Backfill(ledger, md, h, MustParse("2025-06-02"), MustParse("2025-06-04"))
	if n != 1 {
		t.Fatalf("Backfill recorded %d days, want 1", n)
	}
	if _, ok := h.Get(MustParse("2025-06-02")); ok {
		t.Error("recorded a value before the price history starts")
	}
}

func TestBackfill_PositionAsOfEachDay(t *testing.T) {
	// A buy inside the window shifts the curve from its trade date on.
	ledger := NewLedger()
	ledger.Append(
		NewBuy(MustParse("2025-06-01"), "", "PETR4.SA", Q(100), M(28)),
		NewBuy(MustParse("2025-06-04"), "", "PETR4.SA", Q(50), M(30)),
	)
	md := &fakeMarketData{
		history: map[string]map[Date]Money{
			"PETR4.SA": {
				MustParse("2025-06-03"): M(30),
				MustParse("2025-06-04"): M(30),
			},
		},
	}

	h := NewHistory()
	Backfill(ledger, md, h, MustParse("2025-06-03"), MustParse("2025-06-04"))
	if got, _ := h.Get(MustParse("2025-06-03")); !got.Equal(M(3000)) {
		t.Errorf("value on 2025-06-03 = %s, want 3000", got.Decimal())
	}
	if got, _ := h.Get(MustParse("2025-06-04")); !got.Equal(M(4500)) {
		t.Errorf("value on 2025-06-04 = %s, want 4500", got.Decimal())
	}
}

func TestBackfill_OverwritesExisting(t *testing.T) {
	ledger := NewLedger()
	ledger.Append(NewBuy(MustParse("2025-06-01"), "", "PETR4.SA", Q(100), M(28)))
	md := &fakeMarketData{
		history: map[string]map[Date]Money{
			"PETR4.SA": {MustParse("2025-06-02"): M(29)},
		},
	}

	h := NewHistory()
	h.Append(MustParse("2025-06-02"), M(1)) // stale value
	Backfill(ledger, md, h, MustParse("2025-06-02"), MustParse("2025-06-02"))
	if got, _ := h.Get(MustParse("2025-06-02")); !got.Equal(M(2900)) {
		t.Errorf("value on 2025-06-02 = %s, want the recomputed 2900", got.Decimal())
	}
}
