package carteira

import "testing"

func TestClassOf(t *testing.T) {
	testCases := []struct {
		asset string
		want  AssetClass
	}{
		{asset: "PETR4.SA", want: Stock},
		{asset: "VALE3.SA", want: Stock},
		{asset: "BOVA11.SA", want: ETF},
		{asset: "HASH11.SA", want: ETF},
		{asset: "BTC-USD", want: Crypto},
		{asset: "ETH-USD", want: Crypto},
	}
	for _, tc := range testCases {
		t.Run(tc.asset, func(t *testing.T) {
			if got := ClassOf(tc.asset); got != tc.want {
				t.Errorf("ClassOf(%s) = %s, want %s", tc.asset, got, tc.want)
			}
		})
	}
}

func TestIsB3(t *testing.T) {
	if !IsB3("PETR4.SA") {
		t.Error("PETR4.SA should be a B3 asset")
	}
	if IsB3("BTC-USD") {
		t.Error("BTC-USD should not be a B3 asset")
	}
}
