package dashboard

import (
	"time"

	"github.com/albapepper/hoopstats-data/internal/record"
)

// Player is a PLAYER_METADATA row as served to the dashboard.
type Player struct {
	record.PlayerMetadata
	UpdatedAt *time.Time `json:"updated_at"`
}

// Totals are summed box-score columns over a set of games.
type Totals struct {
	PTS  float64 `json:"pts"`
	REB  float64 `json:"reb"`
	AST  float64 `json:"ast"`
	STL  float64 `json:"stl"`
	BLK  float64 `json:"blk"`
	TOV  float64 `json:"tov"`
	MIN  float64 `json:"min"`
	FGM  float64 `json:"fgm"`
	FGA  float64 `json:"fga"`
	FG3M float64 `json:"fg3m"`
	FG3A float64 `json:"fg3a"`
	FTM  float64 `json:"ftm"`
	FTA  float64 `json:"fta"`
}

// Averages are per-game figures. Shooting percentages are made over
// attempted for the whole set, not the mean of per-game percentages.
type Averages struct {
	PPG    float64 `json:"ppg"`
	RPG    float64 `json:"rpg"`
	APG    float64 `json:"apg"`
	SPG    float64 `json:"spg"`
	BPG    float64 `json:"bpg"`
	TPG    float64 `json:"tpg"`
	MPG    float64 `json:"mpg"`
	FGPct  float64 `json:"fg_pct"`
	FG3Pct float64 `json:"fg3_pct"`
	FTPct  float64 `json:"ft_pct"`
}

// SeasonLine is one row of the season trend.
type SeasonLine struct {
	SeasonID string `json:"season_id"`
	GP       int64  `json:"gp"`
	Averages
}

// Career aggregates every stored game for a player.
type Career struct {
	PlayerID int64    `json:"player_id"`
	GP       int64    `json:"gp"`
	Totals   Totals   `json:"totals"`
	Averages Averages `json:"averages"`
}

// Highs are single-game maxima.
type Highs struct {
	PlayerID int64   `json:"player_id"`
	PTS      float64 `json:"pts"`
	REB      float64 `json:"reb"`
	AST      float64 `json:"ast"`
	STL      float64 `json:"stl"`
	BLK      float64 `json:"blk"`
	FG3M     float64 `json:"fg3m"`
}

// Split is one bucket of a home/away or win/loss breakdown.
type Split struct {
	Label string `json:"label"`
	GP    int64  `json:"gp"`
	Averages
}

func averagesOf(gp int64, t Totals) Averages {
	if gp == 0 {
		return Averages{}
	}
	n := float64(gp)
	return Averages{
		PPG:    t.PTS / n,
		RPG:    t.REB / n,
		APG:    t.AST / n,
		SPG:    t.STL / n,
		BPG:    t.BLK / n,
		TPG:    t.TOV / n,
		MPG:    t.MIN / n,
		FGPct:  ratio(t.FGM, t.FGA),
		FG3Pct: ratio(t.FG3M, t.FG3A),
		FTPct:  ratio(t.FTM, t.FTA),
	}
}

func ratio(made, attempted float64) float64 {
	if attempted == 0 {
		return 0
	}
	return made / attempted
}
