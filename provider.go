package carteira

import "strings"

// MarketData is the provider boundary. Implementations fetch point-in-time
// data on demand; every lookup may fail per asset and must surface the
// failure as a false/empty result, never as an error into the core. One
// missing quote degrades that asset's valuation to cost basis and nothing
// else.
type MarketData interface {
	// Quote returns the current price of one unit of the asset, already
	// normalized to the reporting currency, or false when unknown.
	Quote(asset string) (Money, bool)
	// DividendEvents returns the asset's known dividend events, dates
	// already parsed, or an empty slice when unknown.
	DividendEvents(asset string) []DividendEvent
	// PriceHistory returns the closing price per day over [from, to],
	// normalized to the reporting currency. Missing days are absent keys.
	PriceHistory(asset string, from, to Date) map[Date]Money
	// USDBRL returns the current USD→BRL conversion rate, or false when
	// unknown.
	USDBRL() (Quantity, bool)
}

// AssetClass is a coarse grouping of assets, used for report grouping only.
type AssetClass int

const (
	Stock AssetClass = iota
	ETF
	Crypto
)

func (c AssetClass) String() string {
	switch c {
	case ETF:
		return "ETF"
	case Crypto:
		return "Cripto"
	default:
		return "Ação"
	}
}

// ClassOf classifies an asset by its identifier suffix: "-USD" marks crypto
// pairs, B3 tickers ending in "11.SA" are ETFs/funds, everything else is a
// stock.
func ClassOf(asset string) AssetClass {
	switch {
	case strings.Contains(asset, "-USD"):
		return Crypto
	case strings.HasSuffix(asset, "11.SA"):
		return ETF
	default:
		return Stock
	}
}

// IsB3 reports whether the asset trades on B3 (".SA" suffix). Only B3 assets
// have dividend events in this system.
func IsB3(asset string) bool { return strings.HasSuffix(asset, ".SA") }
