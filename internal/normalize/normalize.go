// Package normalize turns raw provider rows into typed records. Both
// transforms are pure apart from a one-line summary log.
package normalize

import (
	"log/slog"
	"strings"
	"time"

	"github.com/albapepper/hoopstats-data/internal/provider"
	"github.com/albapepper/hoopstats-data/internal/record"
)

// dateLayouts are tried in order. The game log endpoint uses "APR 13, 2025";
// player info uses an ISO timestamp.
var dateLayouts = []string{
	"Jan 02, 2006",
	"2006-01-02T15:04:05",
	"2006-01-02",
	time.RFC3339,
	"01/02/2006",
}

// ParseDate returns the calendar date in val, or nil when it cannot be read.
func ParseDate(val any) *time.Time {
	if t, ok := val.(time.Time); ok {
		d := truncateDay(t)
		return &d
	}
	s := provider.String(val)
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			d := truncateDay(t)
			return &d
		}
	}
	return nil
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// GameLogs normalizes raw game log rows. The output has exactly one record
// per input row, in input order.
func GameLogs(rows provider.Rows, logger *slog.Logger) []record.GameLog {
	if logger == nil {
		logger = slog.Default()
	}

	out := make([]record.GameLog, 0, len(rows))
	malformed := 0
	for _, row := range rows {
		rec, wellFormed := gameLog(row)
		if !wellFormed {
			malformed++
		}
		out = append(out, rec)
	}

	if malformed > 0 {
		logger.Warn("Unexpected matchup format; team/opponent parsed best-effort", "rows", malformed)
	}
	logger.Info("Gamelogs normalized", "rows", len(out))
	return out
}

func gameLog(row provider.Row) (record.GameLog, bool) {
	playerID, _ := provider.ID(first(row, "PLAYER_ID", "Player_ID"))
	m := record.ParseMatchup(provider.String(row["MATCHUP"]))

	rec := record.GameLog{
		PlayerID: playerID,
		SeasonID: provider.String(row["SEASON_ID"]),
		GameID:   provider.String(first(row, "GAME_ID", "Game_ID")),
		GameDate: ParseDate(row["GAME_DATE"]),
		Team:     m.Team,
		Opponent: m.Opponent,
		HomeAway: m.HomeAway,
		WL:       strings.ToUpper(provider.String(row["WL"])),
	}
	for _, col := range record.StatColumns {
		rec.Stats.Set(col, provider.FloatOrZero(row[col]))
	}
	return rec, m.WellFormed
}

// Metadata normalizes raw player info rows and keeps the first row seen for
// each PLAYER_ID.
func Metadata(rows provider.Rows, logger *slog.Logger) []record.PlayerMetadata {
	if logger == nil {
		logger = slog.Default()
	}

	out := make([]record.PlayerMetadata, 0, len(rows))
	seen := make(map[int64]struct{}, len(rows))
	dropped := 0
	for _, row := range rows {
		id, ok := provider.ID(row["PLAYER_ID"])
		if !ok {
			dropped++
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, metadata(id, row))
	}

	if dropped > 0 {
		logger.Warn("Metadata rows without a player id dropped", "rows", dropped)
	}
	logger.Info("Metadata normalized", "rows", len(out))
	return out
}

func metadata(id int64, row provider.Row) record.PlayerMetadata {
	return record.PlayerMetadata{
		PlayerID:    id,
		PlayerName:  provider.String(row["PLAYER_NAME"]),
		DOB:         ParseDate(row["DOB"]),
		Height:      provider.String(row["HEIGHT"]),
		Weight:      provider.FloatPtr(row["WEIGHT"]),
		Position:    orUnknown(row["POSITION"]),
		DraftYear:   provider.IntPtr(row["DRAFT_YEAR"]),
		DraftRound:  provider.IntPtr(row["DRAFT_ROUND"]),
		DraftNumber: provider.IntPtr(row["DRAFT_NUMBER"]),
		School:      provider.String(row["SCHOOL"]),
		Country:     orUnknown(row["COUNTRY"]),
		HeadshotURL: provider.String(row["HEADSHOT_URL"]),
	}
}

func orUnknown(val any) string {
	if s := provider.String(val); s != "" {
		return s
	}
	return record.Unknown
}

func first(row provider.Row, keys ...string) any {
	v, _ := row.Get(keys...)
	return v
}
