package nbastats

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/albapepper/hoopstats-data/internal/provider"
)

// SeasonFor returns the season token ("2025-26") in progress at t. A new
// season is counted from October.
func SeasonFor(t time.Time) string {
	start := t.Year()
	if t.Month() < time.October {
		start--
	}
	return fmt.Sprintf("%d-%02d", start, (start+1)%100)
}

// ActivePlayers returns the current-season roster.
func (c *Client) ActivePlayers(ctx context.Context) ([]provider.PlayerRef, error) {
	params := url.Values{
		"LeagueID":            {"00"},
		"Season":              {SeasonFor(time.Now())},
		"IsOnlyCurrentSeason": {"1"},
	}
	env, err := c.get(ctx, "commonallplayers", params)
	if err != nil {
		return nil, fmt.Errorf("fetch active players: %w", err)
	}
	set, ok := env.find("CommonAllPlayers")
	if !ok {
		return nil, fmt.Errorf("active players: %w", ErrNoResultSet)
	}

	var players []provider.PlayerRef
	for _, row := range set.rows() {
		id, ok := provider.ID(row["PERSON_ID"])
		if !ok {
			continue
		}
		// ROSTERSTATUS is 1 for players currently on a roster.
		if status, present := row.Get("ROSTERSTATUS"); present && provider.FloatOrZero(status) != 1 {
			continue
		}
		players = append(players, provider.PlayerRef{
			ID:   id,
			Name: provider.String(row["DISPLAY_FIRST_LAST"]),
		})
	}
	c.logger.Info("Active roster retrieved", "players", len(players))
	return players, nil
}

// PlayerGameLog returns one player's regular-season game rows for season,
// which may be provider.AllSeasons.
func (c *Client) PlayerGameLog(ctx context.Context, playerID int64, season string) (provider.Rows, error) {
	params := url.Values{
		"PlayerID":   {strconv.FormatInt(playerID, 10)},
		"Season":     {season},
		"SeasonType": {"Regular Season"},
		"LeagueID":   {"00"},
	}
	env, err := c.get(ctx, "playergamelog", params)
	if err != nil {
		return nil, fmt.Errorf("fetch game log for %d: %w", playerID, err)
	}
	set, ok := env.find("PlayerGameLog")
	if !ok {
		return nil, fmt.Errorf("game log for %d: %w", playerID, ErrNoResultSet)
	}
	return set.rows(), nil
}

// PlayerInfo returns the CommonPlayerInfo row for a player.
func (c *Client) PlayerInfo(ctx context.Context, playerID int64) (provider.Row, error) {
	params := url.Values{
		"PlayerID": {strconv.FormatInt(playerID, 10)},
		"LeagueID": {"00"},
	}
	env, err := c.get(ctx, "commonplayerinfo", params)
	if err != nil {
		return nil, fmt.Errorf("fetch player info for %d: %w", playerID, err)
	}
	set, ok := env.find("CommonPlayerInfo")
	if !ok {
		return nil, fmt.Errorf("player info for %d: %w", playerID, ErrNoResultSet)
	}
	rows := set.rows()
	if len(rows) == 0 {
		return nil, fmt.Errorf("player info for %d: %w", playerID, ErrPlayerNotFound)
	}
	return rows[0], nil
}
