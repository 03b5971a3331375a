package dashboard

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/albapepper/hoopstats-data/internal/record"
)

type scanner interface {
	Scan(dest ...any) error
}

var playerSelect = strings.Join(append(append([]string{}, record.MetadataColumns...), "UPDATED_AT"), ", ")

// timeLayouts covers what SQLite hands back as text for DATE and TIMESTAMP
// columns. Postgres returns time.Time directly.
var timeLayouts = []string{
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	time.RFC3339Nano,
	"2006-01-02",
}

// nullTime scans DATE/TIMESTAMP values from either driver.
type nullTime struct {
	Time  time.Time
	Valid bool
}

func (n *nullTime) Scan(src any) error {
	n.Time, n.Valid = time.Time{}, false
	switch v := src.(type) {
	case nil:
		return nil
	case time.Time:
		n.Time, n.Valid = v, true
		return nil
	case []byte:
		return n.parse(string(v))
	case string:
		return n.parse(v)
	default:
		return fmt.Errorf("unsupported time value %T", src)
	}
}

func (n *nullTime) parse(s string) error {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			n.Time, n.Valid = t, true
			return nil
		}
	}
	return fmt.Errorf("unparseable time %q", s)
}

func (n nullTime) ptr() *time.Time {
	if !n.Valid {
		return nil
	}
	t := n.Time.UTC()
	return &t
}

func scanPlayer(row scanner) (Player, error) {
	var (
		p                                  Player
		dob, updated                       nullTime
		height, school, headshot           sql.NullString
		weight                             sql.NullFloat64
		draftYear, draftRound, draftNumber sql.NullInt64
	)
	err := row.Scan(
		&p.PlayerID, &p.PlayerName, &dob, &height, &weight, &p.Position,
		&draftYear, &draftRound, &draftNumber, &school, &p.Country, &headshot,
		&updated,
	)
	if err != nil {
		return Player{}, err
	}
	p.DOB = dob.ptr()
	p.Height = height.String
	if weight.Valid {
		p.Weight = &weight.Float64
	}
	p.DraftYear = intPtr(draftYear)
	p.DraftRound = intPtr(draftRound)
	p.DraftNumber = intPtr(draftNumber)
	p.School = school.String
	p.HeadshotURL = headshot.String
	p.UpdatedAt = updated.ptr()
	return p, nil
}

func scanGameLog(row scanner) (record.GameLog, error) {
	var (
		g                               record.GameLog
		date                            nullTime
		season, team, opp, homeAway, wl sql.NullString
	)
	dest := []any{&g.PlayerID, &season, &g.GameID, &date, &team, &opp, &homeAway, &wl}
	stats := make([]float64, len(record.StatColumns))
	for i := range stats {
		dest = append(dest, &stats[i])
	}
	if err := row.Scan(dest...); err != nil {
		return record.GameLog{}, err
	}
	g.SeasonID = season.String
	g.GameDate = date.ptr()
	g.Team = team.String
	g.Opponent = opp.String
	g.HomeAway = homeAway.String
	g.WL = wl.String
	for i, col := range record.StatColumns {
		g.Stats.Set(col, stats[i])
	}
	return g, nil
}

// scanTotals reads lead columns followed by a totalsSelect block.
func scanTotals(row scanner, lead ...any) (int64, Totals, error) {
	var (
		gp int64
		t  Totals
	)
	dest := append(lead, &gp,
		&t.PTS, &t.REB, &t.AST, &t.STL, &t.BLK, &t.TOV, &t.MIN,
		&t.FGM, &t.FGA, &t.FG3M, &t.FG3A, &t.FTM, &t.FTA)
	if err := row.Scan(dest...); err != nil {
		return 0, Totals{}, fmt.Errorf("scan totals: %w", err)
	}
	return gp, t, nil
}

func intPtr(n sql.NullInt64) *int64 {
	if !n.Valid {
		return nil
	}
	v := n.Int64
	return &v
}
