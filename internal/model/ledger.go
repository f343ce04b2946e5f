package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerRecord is one (name, balance) pair from a trial-balance export.
type LedgerRecord struct {
	Name    string          `json:"name"`
	Balance decimal.Decimal `json:"balance"`
}

// Extraction strategies, in cascade order.
const (
	StrategyTagPair   = "tag-pair"
	StrategyAttribute = "attribute"
	StrategyHeuristic = "heuristic"
	StrategyFallback  = "fallback"
	StrategySample    = "sample"
)

// Extraction is the output of one extractor run.
type Extraction struct {
	Ledgers       []LedgerRecord `json:"ledgers"`
	SourceVersion string         `json:"source_version"`
	ExtractedAt   time.Time      `json:"extracted_at"`
	Strategy      string         `json:"strategy"`
	Degraded      bool           `json:"degraded"`       // fell back to built-in sample ledgers
	ParseFailures int            `json:"parse_failures"` // amounts that did not parse and were zeroed
}

// CloneLedgers returns a copy of ledgers. A nil slice stays nil.
func CloneLedgers(ledgers []LedgerRecord) []LedgerRecord {
	if ledgers == nil {
		return nil
	}
	out := make([]LedgerRecord, len(ledgers))
	copy(out, ledgers)
	return out
}

// CloneMapping returns a copy of a name to option map.
func CloneMapping(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
