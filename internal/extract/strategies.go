package extract

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/cleared-dev/fsprep/internal/model"
)

var (
	displayNameTag   = regexp.MustCompile(`<DSPDISPNAME>(.*?)</DSPDISPNAME>`)
	closingAmountTag = regexp.MustCompile(`<DSPCLDRAMTA>(.*?)</DSPCLDRAMTA>`)

	namedElement = regexp.MustCompile(`<\w+ NAME="([^"]+)"[^>]*>.*?<\w+>([\d.-]+)</\w+>`)

	nameCandidate   = regexp.MustCompile(`<[^>]+>([\p{L}\p{N}_\s&,.]+)</[^>]+>|"([\p{L}\p{N}_\s&,.]+)"`)
	amountCandidate = regexp.MustCompile(`>(-?\d+,?\d*\.?\d*)<`)
)

// TagPairStrategy pairs <DSPDISPNAME> names with <DSPCLDRAMTA> closing
// balances by position.
type TagPairStrategy struct{}

// Name returns the strategy name.
func (s *TagPairStrategy) Name() string { return model.StrategyTagPair }

// Extract pairs the i-th name with the i-th amount, truncating to the
// shorter list.
func (s *TagPairStrategy) Extract(text string) ([]model.LedgerRecord, int) {
	names := submatches(displayNameTag, text, 1)
	amounts := submatches(closingAmountTag, text, 1)
	return pair(names, amounts)
}

// AttributeStrategy reads elements carrying a NAME attribute followed by a
// nested numeric element.
type AttributeStrategy struct{}

// Name returns the strategy name.
func (s *AttributeStrategy) Name() string { return model.StrategyAttribute }

// Extract returns one record per matching element.
func (s *AttributeStrategy) Extract(text string) ([]model.LedgerRecord, int) {
	var ledgers []model.LedgerRecord
	var failures int
	for _, m := range namedElement.FindAllStringSubmatch(text, -1) {
		amount, ok := ParseAmount(m[2])
		if !ok {
			failures++
		}
		ledgers = append(ledgers, model.LedgerRecord{Name: m[1], Balance: amount})
	}
	return ledgers, failures
}

// HeuristicStrategy treats any tag-enclosed or quoted text as a name
// candidate and any >number< token as an amount candidate.
type HeuristicStrategy struct{}

// Name returns the strategy name.
func (s *HeuristicStrategy) Name() string { return model.StrategyHeuristic }

// Extract pairs surviving name candidates with amount candidates by
// position.
func (s *HeuristicStrategy) Extract(text string) ([]model.LedgerRecord, int) {
	var names []string
	for _, m := range nameCandidate.FindAllStringSubmatch(text, -1) {
		for _, g := range m[1:] {
			g = strings.TrimSpace(g)
			if g == "" {
				continue
			}
			if looksLikeName(g) {
				names = append(names, g)
			}
		}
	}
	amounts := submatches(amountCandidate, text, 1)
	return pair(names, amounts)
}

// looksLikeName rejects candidates of three runes or fewer and candidates
// that are only digits once separators are removed.
func looksLikeName(s string) bool {
	if utf8.RuneCountInString(s) <= 3 {
		return false
	}
	digits := strings.NewReplacer(",", "", ".", "").Replace(s)
	if digits == "" {
		return true
	}
	for _, r := range digits {
		if !unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

func submatches(re *regexp.Regexp, text string, group int) []string {
	var out []string
	for _, m := range re.FindAllStringSubmatch(text, -1) {
		out = append(out, m[group])
	}
	return out
}

// pair zips names and amounts, truncating to the shorter list. Records whose
// name is blank are dropped.
func pair(names, amounts []string) ([]model.LedgerRecord, int) {
	n := min(len(names), len(amounts))
	var ledgers []model.LedgerRecord
	var failures int
	for i := 0; i < n; i++ {
		name := strings.TrimSpace(names[i])
		amount, ok := ParseAmount(amounts[i])
		if !ok {
			failures++
		}
		if name == "" {
			continue
		}
		ledgers = append(ledgers, model.LedgerRecord{Name: name, Balance: amount})
	}
	return ledgers, failures
}
