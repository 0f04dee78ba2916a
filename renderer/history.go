package renderer

import (
	"github.com/vlourenco/carteira"
)

type historyEntry struct {
	Date  carteira.Date
	Value carteira.Money
}

type historyView struct {
	Entries []historyEntry
}

// HistoryMarkdown renders the daily total-value history to markdown.
func HistoryMarkdown(h *carteira.History) string {
	var view historyView
	for day, value := range h.Values() {
		view.Entries = append(view.Entries, historyEntry{Date: day, Value: value})
	}
	return renderTemplate("history", "history.md", nil, view)
}
