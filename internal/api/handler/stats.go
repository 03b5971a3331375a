package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/albapepper/hoopstats-data/internal/api/respond"
	"github.com/albapepper/hoopstats-data/internal/cache"
	"github.com/albapepper/hoopstats-data/internal/dashboard"
)

const maxRecentGames = 82

// GetRecentGames returns a player's latest games.
// @Summary Recent games
// @Description Returns the player's most recent game logs, newest first.
// @Tags games
// @Produce json
// @Param playerID path int true "NBA player ID"
// @Param limit query int false "Number of games (1-82, default 10)"
// @Success 200 {array} record.GameLog
// @Failure 400 {object} respond.ErrorResponse
// @Router /players/{playerID}/games [get]
func (h *Handler) GetRecentGames(w http.ResponseWriter, r *http.Request) {
	id, ok := playerID(w, r)
	if !ok {
		return
	}
	limit := dashboard.DefaultRecentGames
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 || n > maxRecentGames {
			respond.WriteError(w, http.StatusBadRequest, respond.CodeInvalidParam,
				fmt.Sprintf("limit must be between 1 and %d", maxRecentGames))
			return
		}
		limit = n
	}

	h.serveCached(w, r, fmt.Sprintf("games:%d:%d", id, limit), cache.TTLGameLogs, "",
		func(ctx context.Context) (any, error) {
			return h.store.RecentGames(ctx, id, limit)
		})
}

// GetSeasonAverages returns the season trend.
// @Summary Season averages
// @Description Per-season games played, per-game averages and shooting percentages.
// @Tags stats
// @Produce json
// @Param playerID path int true "NBA player ID"
// @Success 200 {array} dashboard.SeasonLine
// @Failure 400 {object} respond.ErrorResponse
// @Router /players/{playerID}/seasons [get]
func (h *Handler) GetSeasonAverages(w http.ResponseWriter, r *http.Request) {
	id, ok := playerID(w, r)
	if !ok {
		return
	}
	h.serveCached(w, r, fmt.Sprintf("seasons:%d", id), cache.TTLAggregates, "",
		func(ctx context.Context) (any, error) {
			return h.store.SeasonAverages(ctx, id)
		})
}

// GetCareer returns career totals and averages.
// @Summary Career stats
// @Description Career games played, totals and per-game averages.
// @Tags stats
// @Produce json
// @Param playerID path int true "NBA player ID"
// @Success 200 {object} dashboard.Career
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Router /players/{playerID}/career [get]
func (h *Handler) GetCareer(w http.ResponseWriter, r *http.Request) {
	id, ok := playerID(w, r)
	if !ok {
		return
	}
	h.serveCached(w, r, fmt.Sprintf("career:%d", id), cache.TTLAggregates,
		fmt.Sprintf("No games stored for player %d", id),
		func(ctx context.Context) (any, error) {
			return h.store.CareerStats(ctx, id)
		})
}

// GetCareerHighs returns single-game maxima.
// @Summary Career highs
// @Description Single-game highs for points, rebounds, assists, steals, blocks and threes.
// @Tags stats
// @Produce json
// @Param playerID path int true "NBA player ID"
// @Success 200 {object} dashboard.Highs
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Router /players/{playerID}/highs [get]
func (h *Handler) GetCareerHighs(w http.ResponseWriter, r *http.Request) {
	id, ok := playerID(w, r)
	if !ok {
		return
	}
	h.serveCached(w, r, fmt.Sprintf("highs:%d", id), cache.TTLAggregates,
		fmt.Sprintf("No games stored for player %d", id),
		func(ctx context.Context) (any, error) {
			return h.store.CareerHighs(ctx, id)
		})
}

// GetSplits returns home/away or win/loss splits.
// @Summary Splits
// @Description Grouped per-game averages by location (Home/Away) or result (Wins/Losses).
// @Tags stats
// @Produce json
// @Param playerID path int true "NBA player ID"
// @Param kind path string true "Split kind" Enums(location, result)
// @Success 200 {array} dashboard.Split
// @Failure 400 {object} respond.ErrorResponse
// @Router /players/{playerID}/splits/{kind} [get]
func (h *Handler) GetSplits(w http.ResponseWriter, r *http.Request) {
	id, ok := playerID(w, r)
	if !ok {
		return
	}

	var load func(ctx context.Context) (any, error)
	switch kind := chi.URLParam(r, "kind"); kind {
	case "location":
		load = func(ctx context.Context) (any, error) { return h.store.LocationSplits(ctx, id) }
	case "result":
		load = func(ctx context.Context) (any, error) { return h.store.ResultSplits(ctx, id) }
	default:
		respond.WriteError(w, http.StatusBadRequest, respond.CodeInvalidParam, "Split kind must be 'location' or 'result'")
		return
	}

	h.serveCached(w, r, fmt.Sprintf("splits:%s:%d", chi.URLParam(r, "kind"), id), cache.TTLAggregates, "", load)
}
