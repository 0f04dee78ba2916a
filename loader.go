package carteira

import (
	"fmt"
	"os"
	"path/filepath"
)

// LedgerFile is the transaction journal, one JSON object per line.
const LedgerFile = "ledger.jsonl"

// HistoryFile is the daily total-value history, in CSV.
const HistoryFile = "history.csv"

// LoadLedger reads the ledger from the data directory. A missing file is an
// empty portfolio, not an error.
func LoadLedger(path string) (*Ledger, error) {
	f, err := os.Open(filepath.Join(path, LedgerFile))
	if os.IsNotExist(err) {
		return NewLedger(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open ledger file: %w", err)
	}
	defer f.Close()

	ledger, err := DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode ledger file %q: %w", f.Name(), err)
	}
	return ledger, nil
}

// SaveLedger writes the ledger to the data directory, creating it if needed.
// The write goes through a temp file renamed into place, so a crash mid-write
// never leaves a truncated journal behind.
func SaveLedger(path string, ledger *Ledger) error {
	return atomicWrite(path, LedgerFile, func(f *os.File) error {
		return EncodeLedger(f, ledger)
	})
}

// LoadHistory reads the daily value history from the data directory. A
// missing file is an empty history, not an error.
func LoadHistory(path string) (*History, error) {
	f, err := os.Open(filepath.Join(path, HistoryFile))
	if os.IsNotExist(err) {
		return NewHistory(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open history file: %w", err)
	}
	defer f.Close()

	history, err := DecodeHistory(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode history file %q: %w", f.Name(), err)
	}
	return history, nil
}

// SaveHistory writes the daily value history to the data directory.
func SaveHistory(path string, history *History) error {
	return atomicWrite(path, HistoryFile, func(f *os.File) error {
		return EncodeHistory(f, history)
	})
}

// atomicWrite encodes into "<name>.tmp" in the data directory and renames it
// over the final file on success.
func atomicWrite(path, name string, encode func(*os.File) error) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("could not create data directory %q: %w", path, err)
	}

	filePath := filepath.Join(path, name)
	tmp, err := os.Create(filePath + ".tmp")
	if err != nil {
		return fmt.Errorf("error opening %q for writing: %w", filePath, err)
	}
	if err := encode(tmp); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("error writing %q: %w", filePath, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("error writing %q: %w", filePath, err)
	}
	return os.Rename(tmp.Name(), filePath)
}
