package seed

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albapepper/hoopstats-data/internal/normalize"
	"github.com/albapepper/hoopstats-data/internal/provider"
	"github.com/albapepper/hoopstats-data/internal/record"
)

func day(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}

func f64(v float64) *float64 { return &v }
func i64(v int64) *int64     { return &v }

func sampleGameLogs() []record.GameLog {
	return []record.GameLog{
		{
			PlayerID: 2544, SeasonID: "22024", GameID: "0022400001", GameDate: day("2025-04-13"),
			Team: "LAL", Opponent: "POR", HomeAway: record.Away, WL: "W",
			Stats: record.Stats{MIN: 34, PTS: 28, FGM: 11, FGA: 20, FGPct: 0.55, AST: 9, REB: 8},
		},
		{
			PlayerID: 2544, SeasonID: "22024", GameID: "0022400002", GameDate: day("2025-04-11"),
			Team: "LAL", Opponent: "HOU", HomeAway: record.Home, WL: "L",
			Stats: record.Stats{MIN: 36, PTS: 19, AST: 6, REB: 11},
		},
	}
}

func sampleMetadata() []record.PlayerMetadata {
	return []record.PlayerMetadata{
		{
			PlayerID: 2544, PlayerName: "LeBron James", DOB: day("1984-12-30"),
			Height: "6-9", Weight: f64(250), Position: "Forward",
			DraftYear: i64(2003), DraftRound: i64(1), DraftNumber: i64(1),
			School: "St. Vincent-St. Mary HS (OH)", Country: "USA",
			HeadshotURL: "https://cdn.nba.com/headshots/nba/latest/260x190/2544.png",
		},
		{PlayerID: 1630178, PlayerName: "Undrafted Rookie", Country: "France"},
	}
}

func TestUpsertGameLogsIsIdempotent(t *testing.T) {
	connect := newStore(t)
	logger, _ := testLogger()
	u := NewUpserter(connect, logger)

	first, err := u.UpsertGameLogs(context.Background(), sampleGameLogs())
	require.NoError(t, err)
	second, err := u.UpsertGameLogs(context.Background(), sampleGameLogs())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 2, queryInt(t, connect, "SELECT COUNT(*) FROM PLAYER_GAME_LOGS"))
	assert.Equal(t, 47, queryInt(t, connect, "SELECT CAST(SUM(PTS) AS INTEGER) FROM PLAYER_GAME_LOGS"))
}

func TestUpsertGameLogsLastWriteWins(t *testing.T) {
	connect := newStore(t)
	logger, _ := testLogger()
	u := NewUpserter(connect, logger)

	_, err := u.UpsertGameLogs(context.Background(), sampleGameLogs())
	require.NoError(t, err)

	corrected := sampleGameLogs()[:1]
	corrected[0].Stats.PTS = 30
	corrected[0].WL = "L"
	_, err = u.UpsertGameLogs(context.Background(), corrected)
	require.NoError(t, err)

	assert.Equal(t, 2, queryInt(t, connect, "SELECT COUNT(*) FROM PLAYER_GAME_LOGS"))
	assert.Equal(t, 30, queryInt(t, connect,
		"SELECT CAST(PTS AS INTEGER) FROM PLAYER_GAME_LOGS WHERE PLAYER_ID = 2544 AND GAME_ID = '0022400001' AND WL = 'L'"))
}

func TestUpsertDuplicateKeysInBatchKeepLast(t *testing.T) {
	connect := newStore(t)
	logger, _ := testLogger()

	logs := sampleGameLogs()
	dup := logs[0]
	dup.Stats.PTS = 40
	logs = append(logs, dup)

	n, err := NewUpserter(connect, logger).UpsertGameLogs(context.Background(), logs)

	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	assert.Equal(t, 40, queryInt(t, connect,
		"SELECT CAST(PTS AS INTEGER) FROM PLAYER_GAME_LOGS WHERE GAME_ID = '0022400001'"))
}

func TestUpsertDoesNotReviveDeletedRows(t *testing.T) {
	connect := newStore(t)
	logger, _ := testLogger()
	u := NewUpserter(connect, logger)

	_, err := u.UpsertGameLogs(context.Background(), sampleGameLogs())
	require.NoError(t, err)
	execSQL(t, connect, "DELETE FROM PLAYER_GAME_LOGS WHERE GAME_ID = '0022400002'")

	_, err = u.UpsertGameLogs(context.Background(), sampleGameLogs()[:1])
	require.NoError(t, err)

	assert.Zero(t, queryInt(t, connect, "SELECT COUNT(*) FROM PLAYER_GAME_LOGS WHERE GAME_ID = '0022400002'"))
}

func TestUpsertMetadataOverwrites(t *testing.T) {
	connect := newStore(t)
	logger, _ := testLogger()
	u := NewUpserter(connect, logger)

	_, err := u.UpsertMetadata(context.Background(), sampleMetadata())
	require.NoError(t, err)

	traded := sampleMetadata()[:1]
	traded[0].Position = "Forward-Guard"
	traded[0].Weight = nil
	_, err = u.UpsertMetadata(context.Background(), traded)
	require.NoError(t, err)

	assert.Equal(t, 2, queryInt(t, connect, "SELECT COUNT(*) FROM PLAYER_METADATA"))
	assert.Equal(t, 1, queryInt(t, connect,
		"SELECT COUNT(*) FROM PLAYER_METADATA WHERE PLAYER_ID = 2544 AND POSITION = 'Forward-Guard' AND WEIGHT IS NULL"))
}

func TestSingleRawRowEndToEnd(t *testing.T) {
	connect := newStore(t)
	logger, _ := testLogger()

	raw := provider.Rows{{"PLAYER_ID": 1, "MATCHUP": "LAL vs BOS", "PTS": "28", "Game_ID": "001"}}
	clean := normalize.GameLogs(raw, logger)
	require.Len(t, clean, 1)

	n, err := NewUpserter(connect, logger).UpsertGameLogs(context.Background(), clean)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	assert.Equal(t, 1, queryInt(t, connect,
		"SELECT COUNT(*) FROM PLAYER_GAME_LOGS WHERE PLAYER_ID = 1 AND GAME_ID = '001' "+
			"AND TEAM = 'LAL' AND OPPONENT = 'BOS' AND HOME_AWAY = 'H' AND PTS = 28 AND REB = 0"))
}

func TestBindGameLogZeroesNonFiniteStats(t *testing.T) {
	l := sampleGameLogs()[0]
	l.Stats.FGPct = nan()
	l.SeasonID = ""

	args := bindGameLog(l)

	require.Len(t, args, len(record.GameLogColumns))
	assert.Nil(t, args[1])
	assert.Equal(t, 0.0, args[8+4])
}

func TestBindMetadataDefaults(t *testing.T) {
	args := bindMetadata(record.PlayerMetadata{PlayerID: 7, PlayerName: "X", Weight: f64(nan())})

	require.Len(t, args, len(record.MetadataColumns))
	assert.Nil(t, args[2])
	assert.Nil(t, args[4])
	assert.Equal(t, record.Unknown, args[5])
	assert.Equal(t, record.Unknown, args[10])
}
