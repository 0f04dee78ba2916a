package carteira

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

const brapiTokenEnv = "BRAPI_TOKEN"

var brapiTokenFlag = flag.String("brapi-token", "", "brapi.dev API token for fetching B3 quotes and dividends.\n If missing it will read the environment variable \""+brapiTokenEnv+"\". You can get one at https://brapi.dev/")

func brapiToken() string {
	// If the flag is not set, try the environment variable.
	if *brapiTokenFlag == "" {
		*brapiTokenFlag = os.Getenv(brapiTokenEnv)
	}
	return *brapiTokenFlag
}

// BrapiProvider fetches B3 quotes, dividend tables and crypto prices from
// brapi.dev, and the USD/BRL rate from AwesomeAPI. Crypto assets are quoted
// in USD and converted to BRL through that rate.
//
// Every lookup is independent and degrades to false/empty on failure, so one
// dead endpoint never takes down the whole portfolio pass. Responses are
// served through the daily-expiring disk cache. PriceHistory covers B3
// tickers only; crypto backfills come back empty.
type BrapiProvider struct {
	client *http.Client
	token  string
}

// NewBrapiProvider returns a provider with a daily-expiring response cache.
func NewBrapiProvider() *BrapiProvider {
	return &BrapiProvider{client: daily(), token: brapiToken()}
}

var _ MarketData = (*BrapiProvider)(nil)

// brapiQuote mirrors the fields of /api/quote responses this package reads.
type brapiQuote struct {
	Results []struct {
		RegularMarketPrice  float64 `json:"regularMarketPrice"`
		HistoricalDataPrice []struct {
			Date  int64   `json:"date"` // unix seconds
			Close float64 `json:"close"`
		} `json:"historicalDataPrice"`
		DividendsData struct {
			CashDividends []struct {
				Rate          float64 `json:"rate"`
				LastDatePrior string  `json:"lastDatePrior"` // ex-date, RFC3339
				PaymentDate   string  `json:"paymentDate"`   // RFC3339, may be empty
			} `json:"cashDividends"`
		} `json:"dividendsData"`
	} `json:"results"`
}

func (p *BrapiProvider) quoteURL(ticker string, params url.Values) string {
	if p.token != "" {
		params.Set("token", p.token)
	}
	return "https://brapi.dev/api/quote/" + url.PathEscape(ticker) + "?" + params.Encode()
}

// Quote returns the current BRL price of one unit of the asset.
func (p *BrapiProvider) Quote(asset string) (Money, bool) {
	if ClassOf(asset) == Crypto {
		return p.cryptoQuote(asset)
	}
	var q brapiQuote
	ticker := strings.TrimSuffix(asset, ".SA")
	if err := jwget(p.client, p.quoteURL(ticker, url.Values{}), &q); err != nil {
		log.Printf("could not get quote for %s: %v", asset, err)
		return Money{}, false
	}
	if len(q.Results) == 0 || q.Results[0].RegularMarketPrice <= 0 {
		return Money{}, false
	}
	return M(q.Results[0].RegularMarketPrice), true
}

// cryptoQuote fetches the USD price of a crypto pair (e.g. "BTC-USD") and
// converts it to BRL through the current USD rate, the same conversion the
// rest of the system assumes for USD-quoted assets.
func (p *BrapiProvider) cryptoQuote(asset string) (Money, bool) {
	rate, ok := p.USDBRL()
	if !ok {
		return Money{}, false
	}
	coin := strings.TrimSuffix(asset, "-USD")
	params := url.Values{"coin": {coin}, "currency": {"USD"}}
	if p.token != "" {
		params.Set("token", p.token)
	}
	addr := "https://brapi.dev/api/v2/crypto?" + params.Encode()

	var jobj any
	if err := jwget(p.client, addr, &jobj); err != nil {
		log.Printf("could not get crypto quote for %s: %v", asset, err)
		return Money{}, false
	}
	jval, err := jsonpath.Get("$.coins[0].regularMarketPrice", jobj)
	if err != nil {
		log.Printf("could not parse crypto quote for %s: %v", asset, err)
		return Money{}, false
	}
	usd, ok := jval.(float64)
	if !ok || usd <= 0 {
		return Money{}, false
	}
	return M(usd).Mul(rate), true
}

// USDBRL returns the current USD→BRL rate from AwesomeAPI.
func (p *BrapiProvider) USDBRL() (Quantity, bool) {
	const addr = "https://economia.awesomeapi.com.br/json/last/USD-BRL"
	var jobj any
	if err := jwget(p.client, addr, &jobj); err != nil {
		log.Printf("could not get USD/BRL rate: %v", err)
		return Quantity{}, false
	}
	jval, err := jsonpath.Get("$.USDBRL.bid", jobj)
	if err != nil {
		log.Printf("could not parse USD/BRL rate: %v", err)
		return Quantity{}, false
	}
	bid, ok := jval.(string)
	if !ok {
		return Quantity{}, false
	}
	value, err := decimal.NewFromString(bid)
	if err != nil || !value.IsPositive() {
		return Quantity{}, false
	}
	return Q(value), true
}

// DividendEvents returns the asset's cash dividend events. Only B3 assets
// pay dividends in this system; anything else yields an empty slice.
func (p *BrapiProvider) DividendEvents(asset string) []DividendEvent {
	if !IsB3(asset) {
		return nil
	}
	var q brapiQuote
	ticker := strings.TrimSuffix(asset, ".SA")
	if err := jwget(p.client, p.quoteURL(ticker, url.Values{"dividends": {"true"}}), &q); err != nil {
		log.Printf("could not get dividends for %s: %v", asset, err)
		return nil
	}
	if len(q.Results) == 0 {
		return nil
	}

	var events []DividendEvent
	for _, d := range q.Results[0].DividendsData.CashDividends {
		exDate, err := parseBrapiDate(d.LastDatePrior)
		if err != nil {
			// An event without an ex-date cannot be classified; skip it
			// here rather than let it produce a half-formed record.
			log.Printf("skipping %s dividend with invalid ex-date %q: %v", asset, d.LastDatePrior, err)
			continue
		}
		if d.Rate <= 0 {
			continue
		}
		event := DividendEvent{ExDate: exDate, PerShare: M(d.Rate)}
		if payDate, err := parseBrapiDate(d.PaymentDate); err == nil {
			event.PayDate = payDate
		}
		events = append(events, event)
	}
	return events
}

// PriceHistory returns the BRL closing price per day over [from, to].
func (p *BrapiProvider) PriceHistory(asset string, from, to Date) map[Date]Money {
	if !IsB3(asset) {
		return nil
	}
	var q brapiQuote
	ticker := strings.TrimSuffix(asset, ".SA")
	params := url.Values{"range": {"3mo"}, "interval": {"1d"}}
	if err := jwget(p.client, p.quoteURL(ticker, params), &q); err != nil {
		log.Printf("could not get price history for %s: %v", asset, err)
		return nil
	}
	if len(q.Results) == 0 {
		return nil
	}

	prices := make(map[Date]Money)
	for _, row := range q.Results[0].HistoricalDataPrice {
		day := NewDate(time.Unix(row.Date, 0).UTC().Date())
		if day.Before(from) || day.After(to) || row.Close <= 0 {
			continue
		}
		prices[day] = M(row.Close)
	}
	return prices
}

// parseBrapiDate reads the calendar day out of brapi's RFC3339 timestamps.
func parseBrapiDate(str string) (Date, error) {
	if str == "" {
		return Date{}, fmt.Errorf("empty date")
	}
	if len(str) > len(DateFormat) {
		str = str[:len(DateFormat)]
	}
	return ParseDate(str)
}
