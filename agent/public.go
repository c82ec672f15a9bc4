package agent

import (
	"context"
	"fmt"
	"slices"
	"strconv"

	"github.com/etnz/expense"
	"github.com/etnz/expense/docs"
	"github.com/etnz/expense/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// newFacilitator creates the expert in charge of the conversation itself,
// with the other experts as its tools.
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:        "Facilitator",
		Description: ``,
		ModelName:   model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert skills that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is here primarily to understand and manage their own spending, as recorded
			in their expense ledger.

			Devise a plan of questions to ask each expert and come up with the best response to the
			user's request.

			The user will assume that you know their recorded expenses, check the ledger first
			through the Bookkeeper to understand what they are.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewAdvisor creates the expert grounding spending questions in the real
// world: typical prices, budgets and saving strategies.
func NewAdvisor() *Expert {
	return &Expert{
		Name: "Advisor",
		Description: `This is an expert in personal budgeting,
		well aware of typical prices, household budgets and saving strategies.
		Ask the Advisor whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert in personal budgeting. You can search and find about anything related to
			prices, typical household budgets, subscriptions and cost of living. You leverage Google
			Search to ground your assertions in a solid truth.
			You can get the latest news too, and you know how to relate them to the user's spending.
				`}}},
		},
	}
}

// NewBookkeeper creates the expert in charge of reading the user's expense
// ledger. The ledger is read from ledgerFile on every call, so that the
// conversation always sees the current state of the file.
func NewBookkeeper(ledgerFile string) *Expert {
	lib := bookkeeperTools(ledgerFile)

	return &Expert{
		Name: "Bookkeeper",
		Description: `This is the Bookkeeper. It is in charge of reading the user's expense ledger.
		It can list the recorded expenses, total them, and break them down month by month.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are a bookkeeper in charge of the user's expense ledger.
				You know how to use the Tools to extract relevant information about the user's spending.
				You are part of a team of experts, yours is everything recorded in the ledger. They might
				ask you questions in approximative language, pardon them and figure out what they meant.

				Use the available tools to get information about the user's expenses
				  - the list of recorded expenses
				  - totals, overall or for a single month
				  - the month by month breakdown

				Below is the documentation of the ledger file format:

			` + must(docs.GetTopic("format"))}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function.
type Func struct {
	// Declare this function.
	Decl *genai.FunctionDeclaration
	// Call this function.
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// bookkeeperTools builds the functions the Bookkeeper can call on the
// ledger stored at ledgerFile.
func bookkeeperTools(ledgerFile string) []Function {
	load := func() (*expense.Ledger, error) { return expense.LoadLedger(ledgerFile) }

	monthParam := &genai.Schema{
		Type:        genai.TypeInteger,
		Description: "Only consider the expenses of this calendar month (1 to 12), whatever the year.",
	}

	expenses := &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Expenses",
			Description: `Expenses lists the recorded expenses with their ID, date, description and amount.
			With the optional month argument, only the expenses of that calendar month, whatever the year.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"month": monthParam,
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table of the expenses.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			month, filtered, err := parseMonth(args)
			if err != nil {
				return errorResponse(id, "Expenses", err)
			}
			ledger, err := load()
			if err != nil {
				return errorResponse(id, "Expenses", err)
			}
			var filters []expense.Filter
			if filtered {
				filters = append(filters, expense.InMonth(month))
			}
			table := renderer.ExpensesMarkdown(slices.Collect(ledger.Expenses(filters...)))
			return outputResponse(id, "Expenses", table)
		},
	}

	summary := &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Summary",
			Description: `Summary totals the recorded expenses.
			With the optional month argument, only the expenses of that calendar month, whatever the year.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"month": monthParam,
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A sentence with the requested total.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			month, filtered, err := parseMonth(args)
			if err != nil {
				return errorResponse(id, "Summary", err)
			}
			ledger, err := load()
			if err != nil {
				return errorResponse(id, "Summary", err)
			}
			if filtered {
				return outputResponse(id, "Summary", renderer.MonthSummaryMarkdown(month, ledger.Sum(expense.InMonth(month))))
			}
			return outputResponse(id, "Summary", renderer.SummaryMarkdown(ledger.Sum()))
		},
	}

	report := &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "MonthlyReport",
			Description: `MonthlyReport breaks the recorded expenses down month by month, with the number of records and the total of each month.`,
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: map[string]*genai.Schema{},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table, one line per month holding expenses.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			ledger, err := load()
			if err != nil {
				return errorResponse(id, "MonthlyReport", err)
			}
			return outputResponse(id, "MonthlyReport", renderer.MonthlyMarkdown(expense.NewMonthlyReport(ledger)))
		},
	}

	return []Function{expenses, summary, report}
}

// parseMonth reads the optional 'month' argument of a tool call.
func parseMonth(args map[string]any) (month int, has bool, err error) {
	imonth, has := args["month"]
	if !has {
		return 0, false, nil
	}
	switch v := imonth.(type) {
	case float64:
		return int(v), true, nil
	case string:
		m, err := strconv.Atoi(v)
		if err != nil {
			return 0, false, fmt.Errorf("argument 'month' must be a number between 1 and 12, got %q", v)
		}
		return m, true, nil
	default:
		return 0, false, fmt.Errorf("argument 'month' is not a number as expected but %T", imonth)
	}
}

func errorResponse(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"error": err.Error(),
		},
	}
}

func outputResponse(id, name, output string) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"output": output,
		},
	}
}
