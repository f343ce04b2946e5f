// Package extract turns loosely structured trial-balance exports into ledger
// records.
package extract

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/fsprep/internal/model"
)

// UnknownVersion is reported when the input carries no version tag.
const UnknownVersion = "Unknown"

// Strategy pulls ledger records out of normalized text. It returns the
// records found and the number of amounts that failed to parse.
type Strategy interface {
	Name() string
	Extract(text string) ([]model.LedgerRecord, int)
}

// Extractor runs strategies in order and keeps the first non-empty result.
type Extractor struct {
	strategies []Strategy
	now        func() time.Time
}

// NewExtractor creates an Extractor over the given strategies. Panics on a
// duplicate strategy name.
func NewExtractor(strategies ...Strategy) *Extractor {
	seen := make(map[string]bool, len(strategies))
	for _, s := range strategies {
		key := strings.ToLower(s.Name())
		if seen[key] {
			panic("duplicate extraction strategy: " + key)
		}
		seen[key] = true
	}
	return &Extractor{strategies: strategies, now: time.Now}
}

// DefaultExtractor returns the tag-pair, attribute, heuristic cascade.
func DefaultExtractor() *Extractor {
	return NewExtractor(&TagPairStrategy{}, &AttributeStrategy{}, &HeuristicStrategy{})
}

// Strategies returns the names of the configured strategies in order.
func (e *Extractor) Strategies() []string {
	names := make([]string, len(e.strategies))
	for i, s := range e.strategies {
		names[i] = s.Name()
	}
	return names
}

// Extract runs the cascade over text. It never fails: when no strategy finds
// anything the built-in sample ledgers are returned with Degraded set.
func (e *Extractor) Extract(text string) model.Extraction {
	text = Normalize(text)
	out := model.Extraction{
		SourceVersion: SourceVersion(text),
		ExtractedAt:   e.now(),
	}
	for _, s := range e.strategies {
		ledgers, failures := s.Extract(text)
		if len(ledgers) == 0 {
			continue
		}
		out.Ledgers = ledgers
		out.Strategy = s.Name()
		out.ParseFailures = failures
		return out
	}
	out.Ledgers = FallbackLedgers()
	out.Strategy = model.StrategyFallback
	out.Degraded = true
	return out
}

// ExtractBytes decodes b as UTF-8, replacing invalid sequences with U+FFFD,
// and runs Extract.
func (e *Extractor) ExtractBytes(b []byte) model.Extraction {
	return e.Extract(strings.ToValidUTF8(string(b), "\uFFFD"))
}

// Extract runs the default cascade over text.
func Extract(text string) model.Extraction {
	return DefaultExtractor().Extract(text)
}

// ExtractBytes runs the default cascade over raw bytes.
func ExtractBytes(b []byte) model.Extraction {
	return DefaultExtractor().ExtractBytes(b)
}

var (
	// Removed in order; a later removal may act on text joined by an earlier one.
	artifacts     = []string{"&*#13;", "&#10;", "&#13;"}
	strayAsterisk = regexp.MustCompile(`>\s*\*`)
	versionTag    = regexp.MustCompile(`<VERSION>(.*?)</VERSION>`)
)

// Normalize strips carriage-return entity debris and asterisks that follow
// a closing angle bracket.
func Normalize(text string) string {
	for _, a := range artifacts {
		text = strings.ReplaceAll(text, a, "")
	}
	return strayAsterisk.ReplaceAllString(text, ">")
}

// SourceVersion returns the first <VERSION> tag's content, or UnknownVersion.
func SourceVersion(text string) string {
	m := versionTag.FindStringSubmatch(text)
	if m == nil {
		return UnknownVersion
	}
	return strings.TrimSpace(m[1])
}

// ParseAmount parses an amount with thousands separators. Unparseable input
// yields zero and false.
func ParseAmount(s string) (decimal.Decimal, bool) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}
