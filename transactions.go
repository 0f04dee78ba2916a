package carteira

import (
	"encoding/json"
	"errors"
	"fmt"
)

// CommandType is a typed string for identifying transaction commands.
type CommandType string

// Command types used for identifying transactions. Only "buy" exists today;
// the dispatch on CommandType is what keeps the record kind extensible.
const (
	CmdBuy CommandType = "buy"
)

// Transaction defines the common interface for all records of the ledger.
// Transactions are immutable once appended: the core only folds over them.
type Transaction interface {
	What() CommandType // What returns the command type of the transaction (e.g. "buy").
	When() Date        // When returns the trade date of the transaction.
	Asset() string     // Asset returns the exchange-qualified asset identifier.
	Equal(Transaction) bool
}

type baseCmd struct {
	Command CommandType `json:"command"`        // Command specifies the type of transaction.
	Date    Date        `json:"date"`           // Date is the trade date.
	Memo    string      `json:"memo,omitempty"` // Memo provides an optional note for the transaction.
}

// What returns the command name for the transaction.
func (t baseCmd) What() CommandType {
	return t.Command
}

// When returns the trade date of the transaction.
func (t baseCmd) When() Date {
	return t.Date
}

// MarshalJSON implements the json.Marshaler interface for baseCmd.
func (t baseCmd) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("command", t.Command)
	w.Append("date", t.Date)
	w.Optional("memo", t.Memo)
	return w.MarshalJSON()
}

// assetCmd is a component for asset-bound transactions.
type assetCmd struct {
	baseCmd
	Security string `json:"asset"` // Security is the asset identifier, e.g. "PETR4.SA" or "BTC-USD".
}

// Asset returns the asset identifier of the transaction.
func (t assetCmd) Asset() string { return t.Security }

func (t *assetCmd) validate() error {
	if t.Security == "" {
		return errors.New("asset identifier is missing")
	}
	if t.Date.IsZero() {
		return errors.New("trade date is missing")
	}
	return nil
}

// MarshalJSON implements the json.Marshaler interface for assetCmd.
func (t assetCmd) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.baseCmd)
	w.Append("asset", t.Security)
	return w.MarshalJSON()
}

// Buy represents a transaction where a quantity of an asset is purchased at a
// unit price in the reporting currency.
type Buy struct {
	assetCmd
	Quantity Quantity // Quantity is the number of shares, quotas or units bought.
	Price    Money    // Price is the unit price paid, in the reporting currency.
}

// NewBuy creates a new Buy transaction.
func NewBuy(day Date, memo, asset string, quantity Quantity, price Money) Buy {
	return Buy{
		assetCmd: assetCmd{baseCmd: baseCmd{Command: CmdBuy, Date: day, Memo: memo}, Security: asset},
		Quantity: quantity,
		Price:    price,
	}
}

// Amount returns the total cost of the purchase (quantity × unit price).
func (t Buy) Amount() Money { return t.Price.Mul(t.Quantity) }

// MarshalJSON implements the json.Marshaler interface for Buy.
func (t Buy) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.assetCmd)
	w.Append("quantity", t.Quantity)
	w.Append("price", t.Price)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Buy.
func (t *Buy) UnmarshalJSON(data []byte) error {
	var temp struct {
		assetCmd
		Quantity Quantity `json:"quantity"`
		Price    Money    `json:"price"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}

	t.assetCmd = temp.assetCmd
	t.Quantity = temp.Quantity
	t.Price = temp.Price
	return nil
}

func (t Buy) Equal(other Transaction) bool {
	o, ok := other.(Buy)
	return ok && t.assetCmd == o.assetCmd && t.Quantity.Equal(o.Quantity) && t.Price.Equal(o.Price)
}

// Validate checks the Buy transaction's fields. Zero or negative quantities
// and prices are rejected here, at the entry boundary: the core downstream
// assumes a ledger of strictly positive buys.
func (t Buy) Validate() (Transaction, error) {
	if err := t.assetCmd.validate(); err != nil {
		return t, err
	}
	if t.Quantity.IsNegative() || t.Quantity.IsZero() {
		return t, fmt.Errorf("buy transaction quantity must be positive, got %s", t.Quantity)
	}
	if t.Price.IsNegative() || t.Price.IsZero() {
		return t, fmt.Errorf("buy transaction unit price must be positive, got %s", t.Price)
	}
	return t, nil
}
