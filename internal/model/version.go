package model

import "time"

// Version is an immutable snapshot of one committed aggregation.
type Version struct {
	ID         int               `json:"id"`
	Timestamp  time.Time         `json:"timestamp"`
	Mapping    map[string]string `json:"mapping"`
	SubMapping map[string]string `json:"sub_mapping"`
	Ledgers    []LedgerRecord    `json:"ledgers"`
	Result     *Result           `json:"result"`
}

// Clone returns a deep copy of the version.
func (v Version) Clone() Version {
	return Version{
		ID:         v.ID,
		Timestamp:  v.Timestamp,
		Mapping:    CloneMapping(v.Mapping),
		SubMapping: CloneMapping(v.SubMapping),
		Ledgers:    CloneLedgers(v.Ledgers),
		Result:     v.Result.Clone(),
	}
}
