package nbastats

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albapepper/hoopstats-data/internal/provider"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 5*time.Second, nil)
}

func TestPlayerGameLogDecodesResultSet(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/playergamelog", r.URL.Path)
		assert.Equal(t, "2544", r.URL.Query().Get("PlayerID"))
		assert.Equal(t, provider.AllSeasons, r.URL.Query().Get("Season"))
		assert.Equal(t, "https://www.nba.com/", r.Header.Get("Referer"))
		assert.NotEmpty(t, r.Header.Get("User-Agent"))

		w.Write([]byte(`{
			"resource": "playergamelog",
			"resultSets": [{
				"name": "PlayerGameLog",
				"headers": ["SEASON_ID", "Player_ID", "Game_ID", "GAME_DATE", "MATCHUP", "WL", "PTS"],
				"rowSet": [
					["22024", 2544, "0022400001", "APR 13, 2025", "LAL vs. HOU", "W", 28],
					["22024", 2544, "0022400002", "APR 11, 2025", "LAL @ POR", "L", 17]
				]
			}]
		}`))
	})

	rows, err := client.PlayerGameLog(context.Background(), 2544, provider.AllSeasons)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "0022400001", rows[0]["Game_ID"])
	assert.Equal(t, "LAL @ POR", rows[1]["MATCHUP"])
	assert.Equal(t, json.Number("28"), rows[0]["PTS"])
}

func TestPlayerInfoNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"resultSets": [{"name": "CommonPlayerInfo", "headers": ["PERSON_ID"], "rowSet": []}]}`))
	})

	_, err := client.PlayerInfo(context.Background(), 1)
	require.ErrorIs(t, err, ErrPlayerNotFound)
}

func TestPlayerInfoReturnsFirstRow(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/commonplayerinfo", r.URL.Path)
		w.Write([]byte(`{"resultSets": [
			{"name": "CommonPlayerInfo", "headers": ["PERSON_ID", "BIRTHDATE", "HEIGHT", "COUNTRY"],
			 "rowSet": [[2544, "1984-12-30T00:00:00", "6-9", "USA"]]},
			{"name": "PlayerHeadlineStats", "headers": ["PTS"], "rowSet": [[24.4]]}
		]}`))
	})

	row, err := client.PlayerInfo(context.Background(), 2544)
	require.NoError(t, err)
	assert.Equal(t, "1984-12-30T00:00:00", row["BIRTHDATE"])
	assert.Equal(t, "6-9", row["HEIGHT"])
}

func TestMissingResultSet(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"resultSets": [{"name": "Other", "headers": [], "rowSet": []}]}`))
	})

	_, err := client.PlayerGameLog(context.Background(), 1, "2024-25")
	require.ErrorIs(t, err, ErrNoResultSet)
}

func TestNon200IsAnError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "slow down", http.StatusTooManyRequests)
	})

	_, err := client.PlayerGameLog(context.Background(), 1, "2024-25")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestMalformedBodyIsAnError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>blocked</html>`))
	})

	_, err := client.PlayerGameLog(context.Background(), 1, "2024-25")
	require.Error(t, err)
}

func TestActivePlayersFiltersRosterStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1", r.URL.Query().Get("IsOnlyCurrentSeason"))
		w.Write([]byte(`{"resultSets": [{"name": "CommonAllPlayers",
			"headers": ["PERSON_ID", "DISPLAY_FIRST_LAST", "ROSTERSTATUS"],
			"rowSet": [[2544, "LeBron James", 1], [76001, "Alaa Abdelnaby", 0], [201939, "Stephen Curry", 1]]}]}`))
	})

	players, err := client.ActivePlayers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []provider.PlayerRef{
		{ID: 2544, Name: "LeBron James"},
		{ID: 201939, Name: "Stephen Curry"},
	}, players)
}

func TestSeasonFor(t *testing.T) {
	assert.Equal(t, "2025-26", SeasonFor(time.Date(2025, time.October, 21, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2024-25", SeasonFor(time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "1999-00", SeasonFor(time.Date(1999, time.December, 1, 0, 0, 0, 0, time.UTC)))
}
