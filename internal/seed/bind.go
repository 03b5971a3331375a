package seed

import (
	"math"
	"time"

	"github.com/albapepper/hoopstats-data/internal/record"
)

// bindGameLog flattens a game log into GameLogColumns order. Stat columns
// are NOT NULL, so a non-finite value is sent as zero.
func bindGameLog(l record.GameLog) []any {
	args := make([]any, 0, len(record.GameLogColumns))
	args = append(args,
		l.PlayerID,
		nilEmpty(l.SeasonID),
		l.GameID,
		nilDate(l.GameDate),
		nilEmpty(l.Team),
		nilEmpty(l.Opponent),
		nilEmpty(l.HomeAway),
		nilEmpty(l.WL),
	)
	for _, v := range l.Stats.Values() {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			v = 0
		}
		args = append(args, v)
	}
	return args
}

// bindMetadata flattens player metadata into MetadataColumns order.
func bindMetadata(p record.PlayerMetadata) []any {
	return []any{
		p.PlayerID,
		p.PlayerName,
		nilDate(p.DOB),
		nilEmpty(p.Height),
		nilFloat(p.Weight),
		orUnknown(p.Position),
		nilInt(p.DraftYear),
		nilInt(p.DraftRound),
		nilInt(p.DraftNumber),
		nilEmpty(p.School),
		orUnknown(p.Country),
		nilEmpty(p.HeadshotURL),
	}
}

// --------------------------------------------------------------------------
// Helpers
// --------------------------------------------------------------------------

// nilEmpty returns nil for empty strings (maps to SQL NULL).
func nilEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nilDate(t *time.Time) any {
	if t == nil || t.IsZero() {
		return nil
	}
	return *t
}

func nilFloat(f *float64) any {
	if f == nil || math.IsNaN(*f) || math.IsInf(*f, 0) {
		return nil
	}
	return *f
}

func nilInt(n *int64) any {
	if n == nil {
		return nil
	}
	return *n
}

func orUnknown(s string) string {
	if s == "" {
		return record.Unknown
	}
	return s
}
