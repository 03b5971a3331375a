// Package provider defines the loose tabular shapes stats providers return.
// Rows are keyed by the provider's own column headers; internal/normalize is
// the only place that turns them into typed records.
package provider

// AllSeasons is the season selector that sweeps a player's whole career.
const AllSeasons = "ALL"

// Row is one provider record keyed by column header.
type Row map[string]any

// Rows is a combined batch. A fetch that retrieves nothing returns an empty,
// non-nil Rows.
type Rows []Row

// PlayerRef identifies one roster entry.
type PlayerRef struct {
	ID   int64  `json:"id"`
	Name string `json:"full_name"`
}

// Get returns the first present value among keys. Aliases let callers accept
// source-specific header variants such as "Game_ID".
func (r Row) Get(keys ...string) (any, bool) {
	for _, k := range keys {
		if v, ok := r[k]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

// Clone returns a shallow copy of r.
func (r Row) Clone() Row {
	out := make(Row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
