package renderer

import (
	"github.com/vlourenco/carteira"
)

// SummaryMarkdown renders the full portfolio report to a markdown string.
func SummaryMarkdown(r *carteira.PortfolioReport) string {
	partials := map[string]string{
		"summary_assets": "summary_assets.md",
		"summary_totals": "summary_totals.md",
	}
	return renderTemplate("summary", "summary.md", partials, r)
}
