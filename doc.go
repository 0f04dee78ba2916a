// Package carteira reconstructs an investor's portfolio state from a ledger
// of buy transactions, values that state against market prices, and works out
// which dividend events the holder is entitled to and the payment stage each
// entitlement is in.
//
// The core functionalities include:
//   - Ledger Management: an immutable, chronological record of buy
//     transactions per asset, persisted as human-readable JSONL.
//   - Position Aggregation: folding an asset's transactions into a single
//     position (quantity, cost basis, average cost) with exact decimal
//     arithmetic.
//   - Valuation: combining a position with a currency-normalized quote into
//     current value and profit/loss, degrading to cost basis when the quote
//     is unknown.
//   - Dividend Entitlements: a stateless classifier that derives the
//     eligible quantity and lifecycle status (Provisioned, Qualified,
//     Received) of each dividend event from the purchase dates and the
//     event's ex and pay dates.
//   - Historical Snapshots: an idempotent, one-row-per-day series of total
//     portfolio value, persisted as CSV.
//
// This package is the foundational logic for the `painel` command-line tool.
// All computations are pure functions over already-fetched inputs; market
// data retrieval and on-disk persistence live behind narrow collaborator
// boundaries (MarketData, the ledger and snapshot stores).
package carteira
