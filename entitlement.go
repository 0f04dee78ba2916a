package carteira

// DividendEvent is one dividend or coupon announcement for an asset, as
// supplied by the market data provider. It is an input per call and is never
// persisted by this package.
type DividendEvent struct {
	ExDate   Date  // first date on which a purchaser no longer qualifies
	PayDate  Date  // disbursement date; zero until announced
	PerShare Money // amount per share, in the reporting currency
}

// Announced reports whether the pay date is known.
func (e DividendEvent) Announced() bool { return !e.PayDate.IsZero() }

// Inconsistent reports whether the event carries a pay date before its
// ex-date, which is economically invalid. Such events are still classified
// by the literal rules; the flag is a data-quality signal for the caller.
func (e DividendEvent) Inconsistent() bool {
	return e.Announced() && e.PayDate.Before(e.ExDate)
}

// EntitlementStatus is the lifecycle stage of a dividend entitlement.
type EntitlementStatus int

const (
	// StatusNone means no classification applies; the event is excluded.
	StatusNone EntitlementStatus = iota
	// Provisioned: announced but the ex-date has not been reached; a sale
	// before the ex-date would still forfeit the entitlement.
	Provisioned
	// Qualified: the ex-date has passed and the holder held shares before
	// it; payment is pending or unannounced. This is the locked-in stage.
	Qualified
	// Received: the payment date has passed.
	Received
)

func (s EntitlementStatus) String() string {
	switch s {
	case Provisioned:
		return "provisioned"
	case Qualified:
		return "qualified"
	case Received:
		return "received"
	default:
		return "none"
	}
}

// classifyStatus derives the entitlement status from the three anchor dates.
// It is stateless: the status is recomputed from scratch on every call, never
// stored and toggled.
//
// An event whose ex-date falls exactly on today yields StatusNone: the
// holder's qualification on that very day is ambiguous and the event is
// excluded from that run's results.
func classifyStatus(today Date, e DividendEvent) EntitlementStatus {
	switch {
	case e.Announced() && e.PayDate.Before(today):
		return Received
	case e.ExDate.Before(today) && (!e.Announced() || !e.PayDate.Before(today)):
		return Qualified
	case e.ExDate.After(today):
		return Provisioned
	default:
		return StatusNone
	}
}

// Entitlement records what a dividend event is worth to the holder: the
// quantity that qualifies, the lifecycle status, and the resulting amount.
type Entitlement struct {
	Asset            string
	Event            DividendEvent
	EligibleQuantity Quantity // Σ buy quantities with trade date strictly before the ex-date
	Status           EntitlementStatus
	Receivable       Money // eligible quantity × amount per share
	Inconsistent     bool  // pay date before ex-date (data-quality signal)
}

// EligibleQuantity sums the asset's buy quantities with a trade date strictly
// before the ex-date. A purchase on the ex-date itself does not qualify. The
// sum is evaluated against the current ledger, so a backdated transaction
// appended after a previous run still counts if its trade date predates the
// ex-date.
func EligibleQuantity(l *Ledger, asset string, exDate Date) Quantity {
	var quantity Quantity
	for tx := range l.AssetTransactions(asset) {
		if !tx.When().Before(exDate) {
			break // the ledger is sorted by date
		}
		if buy, ok := tx.(Buy); ok {
			quantity = quantity.Add(buy.Quantity)
		}
	}
	return quantity
}

// Classify derives the Entitlement of one dividend event against the current
// ledger. It returns false when the event yields no entitlement: missing
// ex-date, ex-date falling on today, or no eligible quantity.
//
// today is an explicit parameter; Classify never reads the system clock.
func Classify(l *Ledger, asset string, e DividendEvent, today Date) (Entitlement, bool) {
	if e.ExDate.IsZero() {
		// Without an ex-date the event cannot be classified; do not guess.
		return Entitlement{}, false
	}
	status := classifyStatus(today, e)
	if status == StatusNone {
		return Entitlement{}, false
	}
	eligible := EligibleQuantity(l, asset, e.ExDate)
	if !eligible.IsPositive() {
		return Entitlement{}, false
	}
	return Entitlement{
		Asset:            asset,
		Event:            e,
		EligibleQuantity: eligible,
		Status:           status,
		Receivable:       e.PerShare.Mul(eligible),
		Inconsistent:     e.Inconsistent(),
	}, true
}

// ClassifyAll classifies a list of dividend events for one asset, keeping
// only the events that yield an entitlement.
func ClassifyAll(l *Ledger, asset string, events []DividendEvent, today Date) []Entitlement {
	var entitlements []Entitlement
	for _, e := range events {
		if ent, ok := Classify(l, asset, e, today); ok {
			entitlements = append(entitlements, ent)
		}
	}
	return entitlements
}

// QualifiedReceivable totals the locked-in receivable amount: Qualified
// entitlements only. Provisioned amounts are not locked in (a sale before
// the ex-date forfeits them) and Received amounts are already paid, so
// neither belongs in a "receivable going forward" total.
func QualifiedReceivable(entitlements []Entitlement) Money {
	var total Money
	for _, ent := range entitlements {
		if ent.Status == Qualified {
			total = total.Add(ent.Receivable)
		}
	}
	return total
}
