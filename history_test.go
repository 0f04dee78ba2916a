package carteira

import (
	"bytes"
	"strings"
	"testing"
)

func TestHistory_AppendOverwrites(t *testing.T) {
	h := NewHistory()
	day := MustParse("2025-06-15")
	h.Append(day, M(1000))
	h.Append(day, M(1100))

	if h.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", h.Len())
	}
	if got, _ := h.Get(day); !got.Equal(M(1100)) {
		t.Errorf("Get() = %s, want the overwritten 1100", got.Decimal())
	}
}

func TestHistory_AppendSortsByDate(t *testing.T) {
	h := NewHistory()
	h.Append(MustParse("2025-06-15"), M(3))
	h.Append(MustParse("2025-06-13"), M(1))
	h.Append(MustParse("2025-06-14"), M(2))

	var days []string
	for day := range h.Values() {
		days = append(days, day.String())
	}
	want := "2025-06-13,2025-06-14,2025-06-15"
	if got := strings.Join(days, ","); got != want {
		t.Errorf("dates = %s, want %s", got, want)
	}
}

func TestHistory_Latest(t *testing.T) {
	h := NewHistory()
	if day, value := h.Latest(); !day.IsZero() || !value.IsZero() {
		t.Errorf("Latest() on empty = %s %s, want zeros", day, value.Decimal())
	}
	h.Append(MustParse("2025-06-15"), M(3))
	h.Append(MustParse("2025-06-13"), M(1))
	day, value := h.Latest()
	if day.String() != "2025-06-15" || !value.Equal(M(3)) {
		t.Errorf("Latest() = %s %s, want 2025-06-15 3", day, value.Decimal())
	}
}

func TestDecodeHistory(t *testing.T) {
	input := "date,total_value\n2025-06-13,1234.56\n2025-06-14,1300\n"
	h, err := DecodeHistory(strings.NewReader(input))
	if err != nil {
		t.Fatalf("DecodeHistory returned error: %v", err)
	}
	if h.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", h.Len())
	}
	if got, ok := h.Get(MustParse("2025-06-13")); !ok || !got.Equal(M(1234.56)) {
		t.Errorf("Get(2025-06-13) = %s, want 1234.56", got.Decimal())
	}
}

func TestDecodeHistory_DuplicateDatesKeepLast(t *testing.T) {
	input := "date,total_value\n2025-06-13,1000\n2025-06-13,1050\n"
	h, err := DecodeHistory(strings.NewReader(input))
	if err != nil {
		t.Fatalf("DecodeHistory returned error: %v", err)
	}
	if h.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", h.Len())
	}
	if got, _ := h.Get(MustParse("2025-06-13")); !got.Equal(M(1050)) {
		t.Errorf("Get() = %s, want the last value 1050", got.Decimal())
	}
}

func TestDecodeHistory_Empty(t *testing.T) {
	h, err := DecodeHistory(strings.NewReader(""))
	if err != nil {
		t.Fatalf("DecodeHistory returned error: %v", err)
	}
	if h.Len() != 0 {
		t.Errorf("Len() = %d, want 0", h.Len())
	}
}

func TestEncodeHistory_RoundTrip(t *testing.T) {
	h := NewHistory()
	h.Append(MustParse("2025-06-13"), M(1234.56))
	h.Append(MustParse("2025-06-14"), M(1300))

	var buf bytes.Buffer
	if err := EncodeHistory(&buf, h); err != nil {
		t.Fatalf("EncodeHistory returned error: %v", err)
	}
	want := "date,total_value\n2025-06-13,1234.56\n2025-06-14,1300\n"
	if buf.String() != want {
		t.Errorf("EncodeHistory =\n%q\nwant\n%q", buf.String(), want)
	}

	decoded, err := DecodeHistory(&buf)
	if err != nil {
		t.Fatalf("DecodeHistory returned error: %v", err)
	}
	if decoded.Len() != h.Len() {
		t.Errorf("round trip Len() = %d, want %d", decoded.Len(), h.Len())
	}
}
