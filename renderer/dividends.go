package renderer

import (
	"github.com/vlourenco/carteira"
)

// DividendsMarkdown renders the dividend entitlement report to markdown.
func DividendsMarkdown(r *carteira.DividendReport) string {
	partials := map[string]string{
		"dividends_events": "dividends_events.md",
	}
	return renderTemplate("dividends", "dividends.md", partials, r)
}
