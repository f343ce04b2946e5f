// Package aggregate rolls mapped ledger balances up into statement
// categories and sub-category schedules.
package aggregate

import (
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/cleared-dev/fsprep/internal/model"
	"github.com/cleared-dev/fsprep/internal/taxonomy"
)

// Engine aggregates ledgers against a pair of mapping sets.
type Engine struct {
	log zerolog.Logger
	now func() time.Time
}

// NewEngine creates an Engine that reports skipped ledgers to log at debug
// level.
func NewEngine(log zerolog.Logger) *Engine {
	return &Engine{log: log, now: time.Now}
}

// Aggregate runs an Engine with a disabled logger.
func Aggregate(ledgers []model.LedgerRecord, primary, sub map[string]string) *model.Result {
	return NewEngine(zerolog.Nop()).Aggregate(ledgers, primary, sub)
}

// Aggregate builds a fresh Result. Ledgers without a usable primary mapping,
// or whose mapping code matches no routing rule, are left out. When primary
// is empty the demonstration dataset is returned instead.
func (e *Engine) Aggregate(ledgers []model.LedgerRecord, primary, sub map[string]string) *model.Result {
	res := newResult(e.now())
	index := make(map[string]int, len(res.Categories))
	for i, c := range res.Categories {
		index[c.Code] = i
	}

	for _, l := range ledgers {
		opt, ok := primary[l.Name]
		if !ok || taxonomy.IsSentinel(opt) {
			continue
		}
		cat, ok := taxonomy.Route(taxonomy.OptionCode(opt))
		if !ok {
			e.log.Debug().Str("ledger", l.Name).Str("mapping", opt).Msg("mapping matches no category, skipped")
			continue
		}

		c := &res.Categories[index[cat.Code]]
		c.Total = c.Total.Add(l.Balance)

		subOpt, ok := sub[l.Name]
		if !ok || taxonomy.IsSentinel(subOpt) {
			continue
		}
		addToSchedule(c, subOpt, l)
	}

	if len(primary) == 0 {
		applyDemonstration(res)
	}
	res.Notes = DeriveNotes(res)
	return res
}

// newResult seeds every category with a zero total and its taxonomy
// sub-categories as empty schedule slots.
func newResult(at time.Time) *model.Result {
	cats := taxonomy.Categories()
	res := &model.Result{
		Categories:  make([]model.CategoryResult, len(cats)),
		GeneratedAt: at,
	}
	for i, c := range cats {
		cr := model.CategoryResult{
			Code:      c.Code,
			Name:      c.Name,
			Statement: c.Statement,
			Group:     c.Group,
			Schedule:  make([]model.ScheduleItem, len(c.SubCategories)),
		}
		for j, s := range c.SubCategories {
			cr.Schedule[j] = model.ScheduleItem{Key: s.Key, Name: s.Name}
		}
		res.Categories[i] = cr
	}
	return res
}

// addToSchedule credits l to the slot named by subOpt. The slot key is the
// sub-category code with the owning category's "{code}_" removed; an
// unknown key opens a new slot.
func addToSchedule(c *model.CategoryResult, subOpt string, l model.LedgerRecord) {
	key := strings.ReplaceAll(taxonomy.OptionCode(subOpt), c.Code+"_", "")
	for i := range c.Schedule {
		item := &c.Schedule[i]
		if item.Key == key {
			item.Amount = item.Amount.Add(l.Balance)
			item.Ledgers = append(item.Ledgers, l)
			return
		}
	}
	c.Schedule = append(c.Schedule, model.ScheduleItem{
		Key:     key,
		Name:    taxonomy.OptionLabel(subOpt, key),
		Amount:  l.Balance,
		Ledgers: []model.LedgerRecord{l},
	})
}
