package seed

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albapepper/hoopstats-data/internal/config"
	"github.com/albapepper/hoopstats-data/internal/db"
)

// newStore returns a connection factory over a fresh on-disk SQLite file
// with the base tables created.
func newStore(t *testing.T) db.ConnectFunc {
	t.Helper()
	cfg := &config.Config{
		DBDriver:    config.DriverSQLite,
		DatabaseURL: "sqlite:" + filepath.Join(t.TempDir(), "nba.db"),
	}
	connect := db.Connector(cfg)

	conn, err := connect(context.Background())
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, conn.EnsureSchema(context.Background()))
	return connect
}

// countingConnect wraps connect and records how often it was called.
func countingConnect(connect db.ConnectFunc, calls *int) db.ConnectFunc {
	return func(ctx context.Context) (*db.Conn, error) {
		*calls++
		return connect(ctx)
	}
}

func testLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, nil)), &buf
}

func queryInt(t *testing.T, connect db.ConnectFunc, q string, args ...any) int {
	t.Helper()
	conn, err := connect(context.Background())
	require.NoError(t, err)
	defer conn.Close()
	var n int
	require.NoError(t, conn.QueryRowContext(context.Background(), q, args...).Scan(&n))
	return n
}

func execSQL(t *testing.T, connect db.ConnectFunc, q string, args ...any) {
	t.Helper()
	conn, err := connect(context.Background())
	require.NoError(t, err)
	defer conn.Close()
	_, err = conn.ExecContext(context.Background(), q, args...)
	require.NoError(t, err)
}

func TestStatementPostgres(t *testing.T) {
	table := Table{Name: "T", Columns: []string{"A", "B", "C"}, Key: []string{"A"}, TouchColumn: "UPDATED_AT"}

	got := table.Statement(db.Postgres, 2)

	assert.Equal(t,
		"INSERT INTO T (A, B, C) VALUES ($1, $2, $3), ($4, $5, $6) "+
			"ON CONFLICT (A) DO UPDATE SET B = EXCLUDED.B, C = EXCLUDED.C, UPDATED_AT = CURRENT_TIMESTAMP",
		got)
}

func TestStatementSQLiteGameLogs(t *testing.T) {
	got := GameLogsTable.Statement(db.SQLite, 1)

	assert.Contains(t, got, "INSERT INTO PLAYER_GAME_LOGS (PLAYER_ID, SEASON_ID, GAME_ID")
	assert.Contains(t, got, "ON CONFLICT (PLAYER_ID, GAME_ID) DO UPDATE SET SEASON_ID = EXCLUDED.SEASON_ID")
	assert.NotContains(t, got, "PLAYER_ID = EXCLUDED")
	assert.NotContains(t, got, "CURRENT_TIMESTAMP")
	assert.NotContains(t, got, "$1")
}

func TestRowsPerStatement(t *testing.T) {
	assert.Equal(t, 1000, GameLogsTable.rowsPerStatement(db.Postgres))
	assert.Equal(t, 2, GameLogsTable.rowsPerStatement(db.Dialect{MaxParams: 60}))
	assert.Equal(t, 1, GameLogsTable.rowsPerStatement(db.Dialect{MaxParams: 5}))
}

func TestLastPerKey(t *testing.T) {
	rows := [][]any{
		{int64(1), "g1", 10.0},
		{int64(1), "g2", 11.0},
		{int64(1), "g1", 12.0},
	}

	got := lastPerKey(rows, []int{0, 1})

	require.Len(t, got, 2)
	assert.Equal(t, 12.0, got[0][2])
	assert.Equal(t, "g2", got[1][1])
}

func TestUpsertEmptyBatchDoesNotConnect(t *testing.T) {
	calls := 0
	logger, _ := testLogger()
	u := NewUpserter(countingConnect(newStore(t), &calls), logger)

	n, err := u.UpsertGameLogs(context.Background(), nil)

	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Zero(t, calls)
}

func TestUpsertConnectionFailure(t *testing.T) {
	boom := errors.New("connection refused")
	logger, _ := testLogger()
	u := NewUpserter(func(ctx context.Context) (*db.Conn, error) { return nil, boom }, logger)

	_, err := u.UpsertGameLogs(context.Background(), sampleGameLogs())

	require.ErrorIs(t, err, boom)
}

func TestUpsertFailureMidBatchIsReported(t *testing.T) {
	connect := newStore(t)
	execSQL(t, connect, "DROP TABLE PLAYER_GAME_LOGS")
	logger, _ := testLogger()

	_, err := NewUpserter(connect, logger).UpsertGameLogs(context.Background(), sampleGameLogs())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "upsert PLAYER_GAME_LOGS")
}

func TestUpsertOpensFreshConnectionPerCall(t *testing.T) {
	calls := 0
	logger, _ := testLogger()
	u := NewUpserter(countingConnect(newStore(t), &calls), logger)

	_, err := u.UpsertGameLogs(context.Background(), sampleGameLogs())
	require.NoError(t, err)
	_, err = u.UpsertMetadata(context.Background(), sampleMetadata())
	require.NoError(t, err)

	assert.Equal(t, 2, calls)
}

func TestUpsertSpansMultipleStatements(t *testing.T) {
	connect := newStore(t)
	logger, _ := testLogger()
	u := NewUpserter(func(ctx context.Context) (*db.Conn, error) {
		conn, err := connect(ctx)
		if err != nil {
			return nil, err
		}
		// Two game log rows per statement.
		conn.Dialect.MaxParams = 2 * len(GameLogsTable.Columns)
		return conn, nil
	}, logger)

	logs := sampleGameLogs()
	for i := 0; i < 3; i++ {
		extra := logs[0]
		extra.GameID = fmt.Sprintf("00224001%02d", i)
		logs = append(logs, extra)
	}

	n, err := u.UpsertGameLogs(context.Background(), logs)

	require.NoError(t, err)
	assert.Equal(t, int64(len(logs)), n)
	assert.Equal(t, len(logs), queryInt(t, connect, "SELECT COUNT(*) FROM PLAYER_GAME_LOGS"))
}

func TestMetadataUpsertRefreshesTimestamp(t *testing.T) {
	connect := newStore(t)
	logger, _ := testLogger()
	u := NewUpserter(connect, logger)

	_, err := u.UpsertMetadata(context.Background(), sampleMetadata())
	require.NoError(t, err)
	execSQL(t, connect, "UPDATE PLAYER_METADATA SET UPDATED_AT = '2000-01-01 00:00:00'")

	_, err = u.UpsertMetadata(context.Background(), sampleMetadata())
	require.NoError(t, err)

	stale := queryInt(t, connect, "SELECT COUNT(*) FROM PLAYER_METADATA WHERE UPDATED_AT = '2000-01-01 00:00:00'")
	assert.Zero(t, stale)
}

func TestMetadataUpsertWritesNulls(t *testing.T) {
	connect := newStore(t)
	logger, _ := testLogger()

	_, err := NewUpserter(connect, logger).UpsertMetadata(context.Background(), sampleMetadata())
	require.NoError(t, err)

	assert.Equal(t, 1, queryInt(t, connect,
		"SELECT COUNT(*) FROM PLAYER_METADATA WHERE PLAYER_ID = 1630178 AND DOB IS NULL AND WEIGHT IS NULL AND DRAFT_YEAR IS NULL AND SCHOOL IS NULL AND POSITION = 'Unknown'"))
	assert.Equal(t, 1, queryInt(t, connect,
		"SELECT COUNT(*) FROM PLAYER_METADATA WHERE PLAYER_ID = 2544 AND DRAFT_YEAR = 2003 AND WEIGHT = 250"))
}

func TestGameDatesRoundTrip(t *testing.T) {
	connect := newStore(t)
	logger, _ := testLogger()

	_, err := NewUpserter(connect, logger).UpsertGameLogs(context.Background(), sampleGameLogs())
	require.NoError(t, err)

	conn, err := connect(context.Background())
	require.NoError(t, err)
	defer conn.Close()
	var got string
	require.NoError(t, conn.QueryRowContext(context.Background(),
		"SELECT GAME_DATE FROM PLAYER_GAME_LOGS WHERE GAME_ID = '0022400001'").Scan(&got))
	assert.True(t, strings.HasPrefix(got, "2025-04-13"), got)
}
