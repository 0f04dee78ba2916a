package carteira

import (
	"encoding/json"
	"fmt"
	"io"
)

// importedTrade is one entry of the legacy carteira.json format: a map of
// ticker to trade list, with Portuguese field names and operation kinds.
type importedTrade struct {
	Kind      string  `json:"tipo"`
	Date      string  `json:"data"` // "2006-01-02"
	Quantity  float64 `json:"quantidade"`
	UnitPrice float64 `json:"preco_unitario"`
}

// ImportTrades decodes a carteira.json document and appends its purchases to
// the ledger, skipping transactions the ledger already contains so the same
// file can be imported twice without duplicating entries. It returns the
// number of transactions actually appended.
func ImportTrades(l *Ledger, r io.Reader) (int, error) {
	var doc map[string][]importedTrade
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return 0, fmt.Errorf("could not decode trades document: %w", err)
	}

	var appended int
	for asset, trades := range doc {
		for _, t := range trades {
			if t.Kind != "compra" {
				return appended, fmt.Errorf("unsupported operation %q for %s", t.Kind, asset)
			}
			day, err := ParseDate(t.Date)
			if err != nil {
				return appended, fmt.Errorf("invalid trade date for %s: %w", asset, err)
			}
			buy, err := l.Validate(NewBuy(day, "imported", asset, Q(t.Quantity), M(t.UnitPrice)))
			if err != nil {
				return appended, fmt.Errorf("invalid trade for %s: %w", asset, err)
			}
			if l.Contains(buy) {
				continue
			}
			l.Append(buy)
			appended++
		}
	}
	return appended, nil
}
