package carteira

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"sort"
)

// Ledger represents the list of all recorded transactions.
//
// In a Ledger transactions are always in chronological order. The Ledger is
// the sole source of truth for holdings; nothing in this package mutates a
// transaction after it has been appended.
type Ledger struct {
	transactions []Transaction
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{transactions: make([]Transaction, 0)}
}

// Len returns the number of transactions in the ledger.
func (l *Ledger) Len() int { return len(l.transactions) }

// Validate checks a transaction for correctness before it enters the ledger.
// It returns the validated transaction or an error detailing the failure.
func (l *Ledger) Validate(tx Transaction) (Transaction, error) {
	var err error
	switch v := tx.(type) {
	case Buy:
		tx, err = v.Validate()
	default:
		return tx, fmt.Errorf("unsupported transaction type for validation: %T %v", tx, tx)
	}
	if err != nil {
		return tx, fmt.Errorf("invalid %s transaction on %v: %w", tx.What(), tx.When(), err)
	}
	return tx, nil
}

// Append appends transactions to this ledger and maintains the chronological
// order of transactions.
func (l *Ledger) Append(txs ...Transaction) {
	l.transactions = append(l.transactions, txs...)
	l.stableSort()
}

// Contains reports whether an equal transaction is already in the ledger.
func (l *Ledger) Contains(tx Transaction) bool {
	for _, existing := range l.transactions {
		if existing.Equal(tx) {
			return true
		}
	}
	return false
}

// Transactions returns an iterator that yields each transaction in
// chronological order. When filters are given, a transaction is yielded if
// any filter accepts it.
func (l *Ledger) Transactions(filters ...func(Transaction) bool) iter.Seq2[int, Transaction] {
	return func(yield func(int, Transaction) bool) {
		for i, tx := range l.transactions {
			accept := len(filters) == 0
			for _, filter := range filters {
				if filter(tx) {
					accept = true
					break
				}
			}
			if !accept {
				continue
			}
			if !yield(i, tx) {
				return
			}
		}
	}
}

// AssetTransactions returns an iterator over the transactions of a single
// asset, in chronological order.
func (l *Ledger) AssetTransactions(asset string) iter.Seq[Transaction] {
	return func(yield func(Transaction) bool) {
		for _, tx := range l.transactions {
			if tx.Asset() != asset {
				continue
			}
			if !yield(tx) {
				return
			}
		}
	}
}

// Assets iterates over the distinct asset identifiers present in the ledger,
// in lexical order.
func (l *Ledger) Assets() iter.Seq[string] {
	return func(yield func(string) bool) {
		visited := make(map[string]struct{})
		for _, tx := range l.transactions {
			visited[tx.Asset()] = struct{}{}
		}
		assets := slices.Collect(maps.Keys(visited))
		slices.Sort(assets)
		for _, asset := range assets {
			if !yield(asset) {
				return
			}
		}
	}
}

// ByAsset returns a predicate that filters transactions by asset identifier.
func ByAsset(asset string) func(Transaction) bool {
	return func(tx Transaction) bool {
		return tx.Asset() == asset
	}
}

// ByKind returns a predicate that filters transactions by command type.
func ByKind(kind CommandType) func(Transaction) bool {
	return func(tx Transaction) bool {
		return tx.What() == kind
	}
}

// stableSort sorts the ledger by transaction date. The sort is stable, meaning
// transactions on the same day maintain their original relative order.
func (l *Ledger) stableSort() {
	sort.SliceStable(l.transactions, func(i, j int) bool {
		return l.transactions[i].When().Before(l.transactions[j].When())
	})
}

// OldestTransactionDate returns the date of the earliest transaction in the
// ledger, or the zero Date if the ledger is empty.
func (l *Ledger) OldestTransactionDate() Date {
	if len(l.transactions) == 0 {
		return Date{}
	}
	return l.transactions[0].When()
}

// NewestTransactionDate returns the date of the latest transaction in the
// ledger, or the zero Date if the ledger is empty.
func (l *Ledger) NewestTransactionDate() Date {
	if len(l.transactions) == 0 {
		return Date{}
	}
	return l.transactions[len(l.transactions)-1].When()
}
