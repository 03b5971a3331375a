package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/albapepper/hoopstats-data/internal/config"
)

// columnTypes holds per-dialect spellings for the few types that differ.
type columnTypes struct {
	bigint, stat, date, timestamp string
}

func (d Dialect) types() columnTypes {
	if d == SQLite {
		return columnTypes{bigint: "INTEGER", stat: "REAL", date: "DATE", timestamp: "TIMESTAMP"}
	}
	return columnTypes{bigint: "BIGINT", stat: "DOUBLE PRECISION", date: "DATE", timestamp: "TIMESTAMPTZ"}
}

// Schema returns the CREATE TABLE IF NOT EXISTS statements for both base
// tables. Column names and order are a contract with the dashboard queries.
func (d Dialect) Schema() []string {
	t := d.types()
	stat := func(name string) string {
		return fmt.Sprintf("%s %s NOT NULL DEFAULT 0", name, t.stat)
	}

	gameLogCols := []string{
		"PLAYER_ID " + t.bigint + " NOT NULL",
		"SEASON_ID VARCHAR(10)",
		"GAME_ID VARCHAR(20) NOT NULL",
		"GAME_DATE " + t.date,
		"TEAM VARCHAR(5)",
		"OPPONENT VARCHAR(5)",
		"HOME_AWAY CHAR(1)",
		"WL CHAR(1)",
	}
	for _, c := range []string{
		"MIN", "PTS", "FGM", "FGA", "FG_PCT", "FG3M", "FG3A", "FG3_PCT",
		"FTM", "FTA", "FT_PCT", "OREB", "DREB", "REB", "AST", "STL", "BLK",
		"TOV", "PF", "PLUS_MINUS",
	} {
		gameLogCols = append(gameLogCols, stat(c))
	}
	gameLogCols = append(gameLogCols, "PRIMARY KEY (PLAYER_ID, GAME_ID)")

	metadataCols := []string{
		"PLAYER_ID " + t.bigint + " PRIMARY KEY",
		"PLAYER_NAME VARCHAR(100) NOT NULL",
		"DOB " + t.date,
		"HEIGHT VARCHAR(10)",
		"WEIGHT " + t.stat,
		"POSITION VARCHAR(50) NOT NULL DEFAULT 'Unknown'",
		"DRAFT_YEAR INTEGER",
		"DRAFT_ROUND INTEGER",
		"DRAFT_NUMBER INTEGER",
		"SCHOOL VARCHAR(100)",
		"COUNTRY VARCHAR(100) NOT NULL DEFAULT 'Unknown'",
		"HEADSHOT_URL VARCHAR(255)",
		"UPDATED_AT " + t.timestamp + " NOT NULL DEFAULT CURRENT_TIMESTAMP",
	}

	return []string{
		createTable(config.MetadataTable, metadataCols),
		createTable(config.GameLogsTable, gameLogCols),
		"CREATE INDEX IF NOT EXISTS IDX_GAME_LOGS_PLAYER_DATE ON " +
			config.GameLogsTable + " (PLAYER_ID, GAME_DATE)",
	}
}

func createTable(name string, cols []string) string {
	return "CREATE TABLE IF NOT EXISTS " + name + " (\n\t" + strings.Join(cols, ",\n\t") + "\n)"
}

// EnsureSchema creates the base tables when they are missing. Existing tables
// are left untouched.
func (c *Conn) EnsureSchema(ctx context.Context) error {
	for _, stmt := range c.Dialect.Schema() {
		if _, err := c.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
