package fetch

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albapepper/hoopstats-data/internal/provider"
)

type stubSource struct {
	roster   []provider.PlayerRef
	logs     map[int64]provider.Rows
	info     map[int64]provider.Row
	failures map[int64]error
	calls    []time.Time
}

func (s *stubSource) ActivePlayers(ctx context.Context) ([]provider.PlayerRef, error) {
	return s.roster, nil
}

func (s *stubSource) PlayerGameLog(ctx context.Context, id int64, season string) (provider.Rows, error) {
	s.calls = append(s.calls, time.Now())
	if err := s.failures[id]; err != nil {
		return nil, err
	}
	return s.logs[id], nil
}

func (s *stubSource) PlayerInfo(ctx context.Context, id int64) (provider.Row, error) {
	s.calls = append(s.calls, time.Now())
	if err := s.failures[id]; err != nil {
		return nil, err
	}
	return s.info[id], nil
}

func newLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})), &buf
}

var roster = []provider.PlayerRef{
	{ID: 1, Name: "First Player"},
	{ID: 2, Name: "Second Player"},
	{ID: 3, Name: "Third Player"},
}

func TestFetchGameLogsSkipsFailingPlayer(t *testing.T) {
	src := &stubSource{
		logs: map[int64]provider.Rows{
			1: {{"Game_ID": "001", "MATCHUP": "LAL vs BOS"}},
			3: {{"Game_ID": "002", "MATCHUP": "MIA @ NYK"}, {"Game_ID": "003", "MATCHUP": "MIA vs CHI"}},
		},
		failures: map[int64]error{2: errors.New("connection reset")},
	}
	logger, buf := newLogger()
	f := New(src, Options{}, logger)

	rows, report := f.FetchGameLogs(context.Background(), roster, provider.AllSeasons)

	require.Len(t, rows, 3)
	assert.Equal(t, int64(1), rows[0]["PLAYER_ID"])
	assert.Equal(t, "First Player", rows[0]["PLAYER_NAME"])
	assert.Equal(t, int64(3), rows[2]["PLAYER_ID"])

	require.Len(t, report.Failures, 1)
	assert.Equal(t, int64(2), report.Failures[0].Player.ID)
	assert.Equal(t, 2, report.Retrieved)
	assert.Equal(t, 3, report.Requested)

	assert.Equal(t, 1, strings.Count(buf.String(), "Unable to pull logs"))
	assert.Contains(t, buf.String(), `player="Second Player"`)
	assert.Contains(t, buf.String(), "progress=3/3")
}

func TestFetchGameLogsDoesNotMutateSourceRows(t *testing.T) {
	original := provider.Row{"Game_ID": "001"}
	src := &stubSource{logs: map[int64]provider.Rows{1: {original}}}
	logger, _ := newLogger()

	New(src, Options{}, logger).FetchGameLogs(context.Background(), roster[:1], "2024-25")

	_, stamped := original["PLAYER_ID"]
	assert.False(t, stamped)
}

func TestFetchGameLogsEmptyResultIsNotNil(t *testing.T) {
	src := &stubSource{failures: map[int64]error{
		1: errors.New("boom"), 2: errors.New("boom"), 3: errors.New("boom"),
	}}
	logger, buf := newLogger()

	rows, report := New(src, Options{}, logger).FetchGameLogs(context.Background(), roster, provider.AllSeasons)

	require.NotNil(t, rows)
	assert.Empty(t, rows)
	assert.Len(t, report.Failures, 3)
	assert.Contains(t, buf.String(), "No game logs retrieved")
}

func TestFetchPacesCalls(t *testing.T) {
	src := &stubSource{logs: map[int64]provider.Rows{}}
	logger, _ := newLogger()
	delay := 30 * time.Millisecond

	New(src, Options{GameLogDelay: delay}, logger).FetchGameLogs(context.Background(), roster, "2024-25")

	require.Len(t, src.calls, 3)
	for i := 1; i < len(src.calls); i++ {
		gap := src.calls[i].Sub(src.calls[i-1])
		assert.GreaterOrEqual(t, gap, delay-5*time.Millisecond, "gap %d", i)
	}
}

func TestFetchStopsOnCancel(t *testing.T) {
	src := &stubSource{logs: map[int64]provider.Rows{}}
	logger, _ := newLogger()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, report := New(src, Options{GameLogDelay: time.Hour}, logger).FetchGameLogs(ctx, roster, "2024-25")

	assert.True(t, report.Interrupted)
	assert.Empty(t, src.calls)
}

func TestFetchMetadataShapesRows(t *testing.T) {
	src := &stubSource{
		info: map[int64]provider.Row{
			1: {"BIRTHDATE": "1984-12-30T00:00:00", "HEIGHT": "6-9", "WEIGHT": "250", "POSITION": "Forward",
				"DRAFT_YEAR": "2003", "DRAFT_ROUND": "1", "DRAFT_NUMBER": "1", "SCHOOL": "St. Vincent-St. Mary HS (OH)", "COUNTRY": "USA"},
			3: {"BIRTHDATE": "1988-03-14T00:00:00"},
		},
		failures: map[int64]error{2: errors.New("player not found")},
	}
	logger, buf := newLogger()
	f := New(src, Options{HeadshotTemplate: "https://cdn.example.com/{player_id}.png"}, logger)

	rows, report := f.FetchMetadata(context.Background(), roster)

	require.Len(t, rows, 2)
	assert.Equal(t, "1984-12-30T00:00:00", rows[0]["DOB"])
	assert.Equal(t, "St. Vincent-St. Mary HS (OH)", rows[0]["SCHOOL"])
	assert.Equal(t, "https://cdn.example.com/1.png", rows[0]["HEADSHOT_URL"])
	assert.Equal(t, "Third Player", rows[1]["PLAYER_NAME"])
	assert.Nil(t, rows[1]["POSITION"])
	assert.Len(t, report.Failures, 1)
	assert.Equal(t, 1, strings.Count(buf.String(), "Unable to pull metadata"))
}

func TestRosterFiltersByID(t *testing.T) {
	src := &stubSource{roster: roster}
	f := New(src, Options{}, nil)

	all, err := f.Roster(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	picked, err := f.Roster(context.Background(), []int64{3, 99})
	require.NoError(t, err)
	assert.Equal(t, []provider.PlayerRef{{ID: 3, Name: "Third Player"}, {ID: 99, Name: "Player 99"}}, picked)
}

func TestHeadshotURL(t *testing.T) {
	assert.Equal(t,
		"https://cdn.nba.com/headshots/nba/latest/260x190/2544.png",
		HeadshotURL("https://cdn.nba.com/headshots/nba/latest/260x190/{player_id}.png", 2544))
	assert.Empty(t, HeadshotURL("", 1))
}
