package agent

import (
	"context"
	"fmt"

	"github.com/vlourenco/carteira"
	"github.com/vlourenco/carteira/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about each expert's skill from the Tools and ask them questions.
			They are at your service and 100% dedicated to you, and they keep the context
			of your previous questions.

			The user is here primarily for information about the assets in his portfolio:
			values, returns, dividends, contribution history. Check the portfolio first
			to understand which tickers he holds before answering.

			Devise a plan of questions to ask each expert and come up with the best
			response to the user's request.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewResearcher returns an expert grounded in Google Search, for news and
// facts about B3 companies, funds and crypto markets.
func NewResearcher() *Expert {
	return &Expert{
		Name: "Researcher",
		Description: `This is an expert market researcher,
		well aware of financial products and institutions, and of the latest news
		about companies listed on B3, ETFs and crypto markets.
		Ask the Researcher whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert market researcher. You can search and find anything related
			to financial institutions, companies, markets and funds, with a focus on the
			Brazilian market. You leverage Google Search to ground your assertions,
			and you know how to relate the latest news to the user's request.
				`}}},
		},
	}
}

// NewAnalyst returns the expert in charge of reading the user's ledger. Its
// tools run the report layer against the data folder and return markdown.
func NewAnalyst(dataPath string, md carteira.MarketData) *Expert {
	lib := analystTools(dataPath, md)
	return &Expert{
		Name: "Analyst",
		Description: `This is the Analyst. He is in charge of reading the user's portfolio ledger.
		He can value positions, classify dividend entitlements, and compute monthly
		contributions and the daily value history.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are an analyst in charge of the user's portfolio ledger.
				Use the available tools to extract relevant information about the portfolio:
				  - valued positions and totals
				  - dividend entitlements
				  - monthly contributions
				  - daily value history
				You are part of a team of experts; pardon their approximative language
				and figure out what they meant.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// analystTools builds the Analyst's function library over the report layer.
func analystTools(dataPath string, md carteira.MarketData) []Function {
	summary := &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "PortfolioSummary",
			Description: `PortfolioSummary values every position at current prices and
			returns the per-asset table with invested amounts, current values, profit
			and loss, plus portfolio totals and the dividends receivable.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"date": {
						Type:        genai.TypeString,
						Description: "The reference date, YYYY-MM-DD. Today is the default.",
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted portfolio report.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			return respond(id, "PortfolioSummary", func() (string, error) {
				day, err := parseDate(args)
				if err != nil {
					return "", err
				}
				ledger, err := carteira.LoadLedger(dataPath)
				if err != nil {
					return "", err
				}
				return renderer.SummaryMarkdown(carteira.NewPortfolioReport(ledger, md, day)), nil
			})
		},
	}

	dividends := &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Dividends",
			Description: `Dividends lists the portfolio's dividend entitlements: provisioned
			(announced, ex-date ahead), qualified (locked in, payment pending) and
			received, with the receivable total over qualified entitlements.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"date": {
						Type:        genai.TypeString,
						Description: "The reference date, YYYY-MM-DD. Today is the default.",
					},
					"include_received": {
						Type:        genai.TypeBoolean,
						Description: "Also list already received dividends. Off by default.",
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted dividend report.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			return respond(id, "Dividends", func() (string, error) {
				day, err := parseDate(args)
				if err != nil {
					return "", err
				}
				includeReceived, _ := args["include_received"].(bool)
				ledger, err := carteira.LoadLedger(dataPath)
				if err != nil {
					return "", err
				}
				return renderer.DividendsMarkdown(carteira.NewDividendReport(ledger, md, day, includeReceived)), nil
			})
		},
	}

	monthly := &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "MonthlyContributions",
			Description: `MonthlyContributions sums the amounts invested per calendar month,
			over the whole portfolio or one asset.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"asset": {
						Type:        genai.TypeString,
						Description: "Restrict to one asset ticker. The whole portfolio is the default.",
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table of month and invested amount.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			return respond(id, "MonthlyContributions", func() (string, error) {
				asset, _ := args["asset"].(string)
				ledger, err := carteira.LoadLedger(dataPath)
				if err != nil {
					return "", err
				}
				return renderer.MonthlyMarkdown(asset, carteira.MonthlyContributions(ledger, asset)), nil
			})
		},
	}

	history := &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "ValueHistory",
			Description: `ValueHistory lists the portfolio's recorded total value per day,
			oldest first.`,
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: map[string]*genai.Schema{},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table of date and total value.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			return respond(id, "ValueHistory", func() (string, error) {
				h, err := carteira.LoadHistory(dataPath)
				if err != nil {
					return "", err
				}
				return renderer.HistoryMarkdown(h), nil
			})
		},
	}

	return []Function{summary, dividends, monthly, history}
}

// respond wraps a tool body into a FunctionResponse, folding its error into
// the response so the model sees it.
func respond(id, name string, body func() (string, error)) *genai.FunctionResponse {
	output, err := body()
	if err != nil {
		return &genai.FunctionResponse{
			ID: id, Name: name,
			Response: map[string]any{"error": err.Error()},
		}
	}
	return &genai.FunctionResponse{
		ID: id, Name: name,
		Response: map[string]any{"output": output},
	}
}

func parseDate(args map[string]any) (carteira.Date, error) {
	idate, hasDate := args["date"]
	if !hasDate {
		return carteira.Today(), nil
	}
	sdate, ok := idate.(string)
	if !ok {
		return carteira.Today(), fmt.Errorf("argument 'date' is not a string as expected but %T", idate)
	}
	if sdate == "" {
		return carteira.Today(), nil
	}
	date, err := carteira.ParseDate(sdate)
	if err != nil {
		return carteira.Today(), fmt.Errorf("argument 'date' must be a valid YYYY-MM-DD date, got %q", sdate)
	}
	return date, nil
}
