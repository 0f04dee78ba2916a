package renderer

import (
	"github.com/vlourenco/carteira"
)

// monthlyView wraps the contribution list with the optional asset filter, so
// the template can title itself.
type monthlyView struct {
	Asset         string
	Contributions []carteira.MonthlyContribution
}

// MonthlyMarkdown renders monthly contributions to markdown. asset narrows
// the title when the contributions were computed for a single asset.
func MonthlyMarkdown(asset string, contributions []carteira.MonthlyContribution) string {
	return renderTemplate("monthly", "monthly.md", nil, monthlyView{Asset: asset, Contributions: contributions})
}
