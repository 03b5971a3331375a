// Package dashboard answers the read-only queries behind the player
// dashboard. Derived views (season trend, career, splits) are grouped SQL
// over the two base tables; nothing is materialized.
package dashboard

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/albapepper/hoopstats-data/internal/config"
	"github.com/albapepper/hoopstats-data/internal/db"
	"github.com/albapepper/hoopstats-data/internal/record"
)

// ErrNotFound is returned when a player has no stored rows.
var ErrNotFound = errors.New("dashboard: not found")

// Split labels.
const (
	LabelHome   = "Home"
	LabelAway   = "Away"
	LabelWins   = "Wins"
	LabelLosses = "Losses"
)

// DefaultRecentGames is used when RecentGames is called with a non-positive limit.
const DefaultRecentGames = 10

// totalsSelect sums the Totals columns, in struct order, after a COUNT(*).
var totalsSelect = func() string {
	cols := []string{"PTS", "REB", "AST", "STL", "BLK", "TOV", "MIN", "FGM", "FGA", "FG3M", "FG3A", "FTM", "FTA"}
	parts := make([]string, 0, len(cols)+1)
	parts = append(parts, "COUNT(*)")
	for _, c := range cols {
		parts = append(parts, "COALESCE(SUM("+c+"), 0)")
	}
	return strings.Join(parts, ", ")
}()

// Store runs dashboard queries over a shared handle.
type Store struct {
	db *db.Conn
}

// New creates a Store.
func New(conn *db.Conn) *Store {
	return &Store{db: conn}
}

func (s *Store) p(n int) string { return s.db.Dialect.Placeholder(n) }

// Players lists stored players ordered by name. A non-empty search filters
// on a case-insensitive substring of the name.
func (s *Store) Players(ctx context.Context, search string) ([]Player, error) {
	q := "SELECT " + playerSelect + " FROM " + config.MetadataTable
	var args []any
	if search = strings.TrimSpace(search); search != "" {
		q += " WHERE LOWER(PLAYER_NAME) LIKE " + s.p(1)
		args = append(args, "%"+strings.ToLower(search)+"%")
	}
	q += " ORDER BY PLAYER_NAME, PLAYER_ID"

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query players: %w", err)
	}
	defer rows.Close()

	players := []Player{}
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, err
		}
		players = append(players, p)
	}
	return players, rows.Err()
}

// Player returns one player's metadata.
func (s *Store) Player(ctx context.Context, id int64) (Player, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+playerSelect+" FROM "+config.MetadataTable+" WHERE PLAYER_ID = "+s.p(1), id)
	p, err := scanPlayer(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Player{}, ErrNotFound
	}
	return p, err
}

// RecentGames returns the player's latest games, newest first.
func (s *Store) RecentGames(ctx context.Context, id int64, limit int) ([]record.GameLog, error) {
	if limit <= 0 {
		limit = DefaultRecentGames
	}
	q := "SELECT " + strings.Join(record.GameLogColumns, ", ") +
		" FROM " + config.GameLogsTable +
		" WHERE PLAYER_ID = " + s.p(1) +
		" ORDER BY GAME_DATE DESC, GAME_ID DESC LIMIT " + s.p(2)

	rows, err := s.db.QueryContext(ctx, q, id, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent games: %w", err)
	}
	defer rows.Close()

	games := []record.GameLog{}
	for rows.Next() {
		g, err := scanGameLog(rows)
		if err != nil {
			return nil, err
		}
		games = append(games, g)
	}
	return games, rows.Err()
}

// SeasonAverages returns one line per SEASON_ID in ascending order.
func (s *Store) SeasonAverages(ctx context.Context, id int64) ([]SeasonLine, error) {
	q := "SELECT SEASON_ID, " + totalsSelect +
		" FROM " + config.GameLogsTable +
		" WHERE PLAYER_ID = " + s.p(1) +
		" GROUP BY SEASON_ID ORDER BY SEASON_ID"

	rows, err := s.db.QueryContext(ctx, q, id)
	if err != nil {
		return nil, fmt.Errorf("query season averages: %w", err)
	}
	defer rows.Close()

	lines := []SeasonLine{}
	for rows.Next() {
		var season sql.NullString
		gp, totals, err := scanTotals(rows, &season)
		if err != nil {
			return nil, err
		}
		lines = append(lines, SeasonLine{SeasonID: season.String, GP: gp, Averages: averagesOf(gp, totals)})
	}
	return lines, rows.Err()
}

// CareerStats aggregates every stored game. A player with no games is
// ErrNotFound.
func (s *Store) CareerStats(ctx context.Context, id int64) (Career, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+totalsSelect+" FROM "+config.GameLogsTable+" WHERE PLAYER_ID = "+s.p(1), id)
	gp, totals, err := scanTotals(row)
	if err != nil {
		return Career{}, err
	}
	if gp == 0 {
		return Career{}, ErrNotFound
	}
	return Career{PlayerID: id, GP: gp, Totals: totals, Averages: averagesOf(gp, totals)}, nil
}

// CareerHighs returns single-game maxima.
func (s *Store) CareerHighs(ctx context.Context, id int64) (Highs, error) {
	q := "SELECT COUNT(*), COALESCE(MAX(PTS), 0), COALESCE(MAX(REB), 0), COALESCE(MAX(AST), 0), " +
		"COALESCE(MAX(STL), 0), COALESCE(MAX(BLK), 0), COALESCE(MAX(FG3M), 0)" +
		" FROM " + config.GameLogsTable + " WHERE PLAYER_ID = " + s.p(1)

	h := Highs{PlayerID: id}
	var gp int64
	err := s.db.QueryRowContext(ctx, q, id).Scan(&gp, &h.PTS, &h.REB, &h.AST, &h.STL, &h.BLK, &h.FG3M)
	if err != nil {
		return Highs{}, fmt.Errorf("query career highs: %w", err)
	}
	if gp == 0 {
		return Highs{}, ErrNotFound
	}
	return h, nil
}

// LocationSplits returns Home then Away averages. Buckets without games are omitted.
func (s *Store) LocationSplits(ctx context.Context, id int64) ([]Split, error) {
	return s.splits(ctx, id, "HOME_AWAY", map[string]string{record.Home: LabelHome, record.Away: LabelAway},
		[]string{LabelHome, LabelAway})
}

// ResultSplits returns Wins then Losses averages.
func (s *Store) ResultSplits(ctx context.Context, id int64) ([]Split, error) {
	return s.splits(ctx, id, "WL", map[string]string{"W": LabelWins, "L": LabelLosses},
		[]string{LabelWins, LabelLosses})
}

// splits groups on column, which must be a trusted column name. Values
// missing from labels (NULLs, unknown flags) are not reported.
func (s *Store) splits(ctx context.Context, id int64, column string, labels map[string]string, order []string) ([]Split, error) {
	q := "SELECT " + column + ", " + totalsSelect +
		" FROM " + config.GameLogsTable +
		" WHERE PLAYER_ID = " + s.p(1) + " AND " + column + " IS NOT NULL" +
		" GROUP BY " + column

	rows, err := s.db.QueryContext(ctx, q, id)
	if err != nil {
		return nil, fmt.Errorf("query %s splits: %w", column, err)
	}
	defer rows.Close()

	byLabel := make(map[string]Split, len(order))
	for rows.Next() {
		var key sql.NullString
		gp, totals, err := scanTotals(rows, &key)
		if err != nil {
			return nil, err
		}
		label, ok := labels[key.String]
		if !ok {
			continue
		}
		byLabel[label] = Split{Label: label, GP: gp, Averages: averagesOf(gp, totals)}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	out := make([]Split, 0, len(order))
	for _, label := range order {
		if sp, ok := byLabel[label]; ok {
			out = append(out, sp)
		}
	}
	return out, nil
}
