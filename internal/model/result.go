package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ScheduleItem is one sub-category line of a category schedule.
type ScheduleItem struct {
	Key     string          `json:"key"`
	Name    string          `json:"name"`
	Amount  decimal.Decimal `json:"amount"`
	Ledgers []LedgerRecord  `json:"ledgers"` // contributing ledgers, in extraction order
}

// BreakdownLine is a named share of a category total. Only the
// demonstration dataset carries breakdowns.
type BreakdownLine struct {
	Key    string          `json:"key"`
	Amount decimal.Decimal `json:"amount"`
}

// CategoryResult holds the aggregated figures for one category.
type CategoryResult struct {
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	Statement Statement       `json:"statement"`
	Group     Group           `json:"group"`
	Total     decimal.Decimal `json:"total"`
	Breakdown []BreakdownLine `json:"breakdown,omitempty"`
	Schedule  []ScheduleItem  `json:"schedule"`
}

// CapitalNote is the capital account roll-forward.
type CapitalNote struct {
	Opening   decimal.Decimal `json:"opening"`
	Additions decimal.Decimal `json:"additions"`
}

// Total returns opening plus additions.
func (n CapitalNote) Total() decimal.Decimal {
	return n.Opening.Add(n.Additions)
}

// Notes holds the derived disclosures.
type Notes struct {
	Capital CapitalNote `json:"note1_capital"`
}

// Result is the output of one aggregation run. It is never mutated after
// the engine returns it.
type Result struct {
	Categories    []CategoryResult `json:"categories"`
	Notes         Notes            `json:"notes"`
	GeneratedAt   time.Time        `json:"generated_at"`
	Demonstration bool             `json:"demonstration"`
}

// Category returns the result for a category code.
func (r *Result) Category(code string) (CategoryResult, bool) {
	for _, c := range r.Categories {
		if c.Code == code {
			return c, true
		}
	}
	return CategoryResult{}, false
}

// Total returns the total for a category code, or zero if absent.
func (r *Result) Total(code string) decimal.Decimal {
	c, ok := r.Category(code)
	if !ok {
		return decimal.Zero
	}
	return c.Total
}

// ByStatement returns the categories of one statement in taxonomy order.
func (r *Result) ByStatement(s Statement) []CategoryResult {
	var out []CategoryResult
	for _, c := range r.Categories {
		if c.Statement == s {
			out = append(out, c)
		}
	}
	return out
}

// Clone returns a deep copy of the result.
func (r *Result) Clone() *Result {
	if r == nil {
		return nil
	}
	out := *r
	if r.Categories == nil {
		return &out
	}
	out.Categories = make([]CategoryResult, len(r.Categories))
	for i, c := range r.Categories {
		cc := c
		if c.Breakdown != nil {
			cc.Breakdown = make([]BreakdownLine, len(c.Breakdown))
			copy(cc.Breakdown, c.Breakdown)
		}
		if c.Schedule != nil {
			cc.Schedule = make([]ScheduleItem, len(c.Schedule))
			for j, item := range c.Schedule {
				item.Ledgers = CloneLedgers(item.Ledgers)
				cc.Schedule[j] = item
			}
		}
		out.Categories[i] = cc
	}
	return &out
}
