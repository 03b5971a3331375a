package handler

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/albapepper/hoopstats-data/internal/cache"
)

// ListPlayers returns stored players, optionally filtered by name.
// @Summary List players
// @Description Returns PLAYER_METADATA rows ordered by name. search filters on a case-insensitive name substring.
// @Tags players
// @Produce json
// @Param search query string false "Name substring"
// @Success 200 {array} dashboard.Player
// @Router /players [get]
func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	search := strings.TrimSpace(r.URL.Query().Get("search"))
	key := "players:" + strings.ToLower(search)

	h.serveCached(w, r, key, cache.TTLPlayers, "No players found", func(ctx context.Context) (any, error) {
		return h.store.Players(ctx, search)
	})
}

// GetPlayer returns one player's metadata.
// @Summary Get player
// @Description Returns the PLAYER_METADATA row for a player.
// @Tags players
// @Produce json
// @Param playerID path int true "NBA player ID"
// @Success 200 {object} dashboard.Player
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Router /players/{playerID} [get]
func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	id, ok := playerID(w, r)
	if !ok {
		return
	}
	h.serveCached(w, r, fmt.Sprintf("player:%d", id), cache.TTLPlayers,
		fmt.Sprintf("Player %d not found", id),
		func(ctx context.Context) (any, error) {
			return h.store.Player(ctx, id)
		})
}
