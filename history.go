package carteira

import (
	"encoding/csv"
	"fmt"
	"io"
	"iter"
	"slices"
	"sort"
)

// History stores the chronological series of total portfolio values, one row
// per calendar day. Dates are unique and the series is always sorted
// ascending.
type History struct {
	days   []Date
	values []Money
}

// NewHistory creates an empty series.
func NewHistory() *History {
	return &History{}
}

// Len returns the number of rows in the series.
func (h *History) Len() int { return len(h.days) }

// Latest returns the latest date and value in the series, or zero values if
// the series is empty.
func (h *History) Latest() (day Date, value Money) {
	last := len(h.days) - 1
	if last < 0 {
		return Date{}, Money{}
	}
	return h.days[last], h.values[last]
}

// Append adds one observation to the series.
//
// The append is idempotent with an overwrite policy: if a row for that date
// already exists its value is replaced, so a second run on the same day after
// a correction reflects the latest number. Otherwise the row is inserted and
// the series re-sorted by date ascending.
func (h *History) Append(on Date, value Money) *History {
	if i := slices.Index(h.days, on); i >= 0 {
		h.values[i] = value
		return h
	}
	h.days, h.values = append(h.days, on), append(h.values, value)
	h.sort()
	return h
}

// Get returns the value at 'day' and true, or zero value and false.
func (h *History) Get(day Date) (Money, bool) {
	if i := slices.Index(h.days, day); i >= 0 {
		return h.values[i], true
	}
	return Money{}, false
}

// Values returns an iterator over all date/value pairs in chronological order.
func (h *History) Values() iter.Seq2[Date, Money] {
	return func(yield func(Date, Money) bool) {
		for i, on := range h.days {
			if !yield(on, h.values[i]) {
				return
			}
		}
	}
}

// chronological is a private implementation to keep the series date-sorted.
type chronological struct{ *History }

func (s chronological) Len() int           { return len(s.days) }
func (s chronological) Less(i, j int) bool { return s.days[i].Before(s.days[j]) }
func (s chronological) Swap(i, j int) {
	s.days[i], s.days[j] = s.days[j], s.days[i]
	s.values[i], s.values[j] = s.values[j], s.values[i]
}

func (h *History) sort() { sort.Sort(chronological{h}) }

// csvHeader is the snapshot file header. The file is a two-column CSV, one
// row per day, the same shape the data has always had on disk.
var csvHeader = []string{"date", "total_value"}

// DecodeHistory reads a snapshot series from CSV. An empty input yields an
// empty series. Duplicate dates in the input collapse through the Append
// overwrite policy, keeping the last value.
func DecodeHistory(r io.Reader) (*History, error) {
	h := NewHistory()
	cr := csv.NewReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("could not read history: %w", err)
	}
	for i, rec := range records {
		if i == 0 && len(rec) > 0 && rec[0] == csvHeader[0] {
			continue // header row
		}
		if len(rec) != 2 {
			return nil, fmt.Errorf("invalid history row %d: want 2 columns got %d", i+1, len(rec))
		}
		day, err := ParseDate(rec[0])
		if err != nil {
			return nil, fmt.Errorf("invalid history row %d: %w", i+1, err)
		}
		var value Money
		if err := value.UnmarshalJSON([]byte(rec[1])); err != nil {
			return nil, fmt.Errorf("invalid history row %d value %q: %w", i+1, rec[1], err)
		}
		h.Append(day, value)
	}
	return h, nil
}

// EncodeHistory writes the series as CSV, header first, rows in
// chronological order.
func EncodeHistory(w io.Writer, h *History) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("could not write history header: %w", err)
	}
	for day, value := range h.Values() {
		if err := cw.Write([]string{day.String(), value.Decimal().String()}); err != nil {
			return fmt.Errorf("could not write history row %s: %w", day, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
