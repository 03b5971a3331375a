// Package record defines the typed rows written to the two base tables.
// Column lists here fix the destination column order.
package record

import (
	"strings"
	"time"
)

// Home/away flags derived from the matchup string.
const (
	Home = "H"
	Away = "A"
)

// Unknown fills POSITION and COUNTRY when the source has no value.
const Unknown = "Unknown"

// StatColumns are the twenty numeric box-score columns in table order.
var StatColumns = []string{
	"MIN", "PTS",
	"FGM", "FGA", "FG_PCT",
	"FG3M", "FG3A", "FG3_PCT",
	"FTM", "FTA", "FT_PCT",
	"OREB", "DREB", "REB",
	"AST", "STL", "BLK",
	"TOV", "PF", "PLUS_MINUS",
}

// GameLogColumns is the PLAYER_GAME_LOGS column order.
var GameLogColumns = append([]string{
	"PLAYER_ID", "SEASON_ID", "GAME_ID", "GAME_DATE",
	"TEAM", "OPPONENT", "HOME_AWAY", "WL",
}, StatColumns...)

// MetadataColumns is the PLAYER_METADATA column order, excluding UPDATED_AT
// which the store maintains.
var MetadataColumns = []string{
	"PLAYER_ID", "PLAYER_NAME", "DOB",
	"HEIGHT", "WEIGHT", "POSITION",
	"DRAFT_YEAR", "DRAFT_ROUND", "DRAFT_NUMBER",
	"SCHOOL", "COUNTRY", "HEADSHOT_URL",
}

// Stats holds the numeric box score. Values are never missing; absent input
// is recorded as zero.
type Stats struct {
	MIN       float64 `json:"min"`
	PTS       float64 `json:"pts"`
	FGM       float64 `json:"fgm"`
	FGA       float64 `json:"fga"`
	FGPct     float64 `json:"fg_pct"`
	FG3M      float64 `json:"fg3m"`
	FG3A      float64 `json:"fg3a"`
	FG3Pct    float64 `json:"fg3_pct"`
	FTM       float64 `json:"ftm"`
	FTA       float64 `json:"fta"`
	FTPct     float64 `json:"ft_pct"`
	OREB      float64 `json:"oreb"`
	DREB      float64 `json:"dreb"`
	REB       float64 `json:"reb"`
	AST       float64 `json:"ast"`
	STL       float64 `json:"stl"`
	BLK       float64 `json:"blk"`
	TOV       float64 `json:"tov"`
	PF        float64 `json:"pf"`
	PlusMinus float64 `json:"plus_minus"`
}

// Values returns the stats in StatColumns order.
func (s Stats) Values() []float64 {
	return []float64{
		s.MIN, s.PTS,
		s.FGM, s.FGA, s.FGPct,
		s.FG3M, s.FG3A, s.FG3Pct,
		s.FTM, s.FTA, s.FTPct,
		s.OREB, s.DREB, s.REB,
		s.AST, s.STL, s.BLK,
		s.TOV, s.PF, s.PlusMinus,
	}
}

// Set assigns the stat named by a StatColumns entry. Unknown names are ignored.
func (s *Stats) Set(column string, v float64) {
	if p := s.field(column); p != nil {
		*p = v
	}
}

func (s *Stats) field(column string) *float64 {
	switch column {
	case "MIN":
		return &s.MIN
	case "PTS":
		return &s.PTS
	case "FGM":
		return &s.FGM
	case "FGA":
		return &s.FGA
	case "FG_PCT":
		return &s.FGPct
	case "FG3M":
		return &s.FG3M
	case "FG3A":
		return &s.FG3A
	case "FG3_PCT":
		return &s.FG3Pct
	case "FTM":
		return &s.FTM
	case "FTA":
		return &s.FTA
	case "FT_PCT":
		return &s.FTPct
	case "OREB":
		return &s.OREB
	case "DREB":
		return &s.DREB
	case "REB":
		return &s.REB
	case "AST":
		return &s.AST
	case "STL":
		return &s.STL
	case "BLK":
		return &s.BLK
	case "TOV":
		return &s.TOV
	case "PF":
		return &s.PF
	case "PLUS_MINUS":
		return &s.PlusMinus
	}
	return nil
}

// GameLog is one PLAYER_GAME_LOGS row, keyed on (PlayerID, GameID).
type GameLog struct {
	PlayerID int64      `json:"player_id"`
	SeasonID string     `json:"season_id"`
	GameID   string     `json:"game_id"`
	GameDate *time.Time `json:"game_date"`
	Team     string     `json:"team"`
	Opponent string     `json:"opponent"`
	HomeAway string     `json:"home_away"`
	WL       string     `json:"wl"`
	Stats
}

// PlayerMetadata is one PLAYER_METADATA row, keyed on PlayerID.
type PlayerMetadata struct {
	PlayerID    int64      `json:"player_id"`
	PlayerName  string     `json:"player_name"`
	DOB         *time.Time `json:"dob"`
	Height      string     `json:"height"`
	Weight      *float64   `json:"weight"`
	Position    string     `json:"position"`
	DraftYear   *int64     `json:"draft_year"`
	DraftRound  *int64     `json:"draft_round"`
	DraftNumber *int64     `json:"draft_number"`
	School      string     `json:"school"`
	Country     string     `json:"country"`
	HeadshotURL string     `json:"headshot_url"`
}

// Matchup is the parsed form of a "<TEAM> vs. <OPP>" / "<TEAM> @ <OPP>" string.
type Matchup struct {
	Team     string
	Opponent string
	HomeAway string
	// WellFormed is false when the string did not have exactly three tokens
	// with "vs"/"vs."/"@" in the middle. Parsing is still best-effort.
	WellFormed bool
}

// ParseMatchup splits on whitespace: the first token is the team, the last
// the opponent, and a literal "@" anywhere marks an away game.
func ParseMatchup(s string) Matchup {
	tokens := strings.Fields(s)
	m := Matchup{HomeAway: Home}
	if strings.Contains(s, "@") {
		m.HomeAway = Away
	}
	if len(tokens) == 0 {
		return m
	}
	m.Team = tokens[0]
	m.Opponent = tokens[len(tokens)-1]
	if len(tokens) == 3 {
		switch tokens[1] {
		case "vs", "vs.", "@":
			m.WellFormed = true
		}
	}
	return m
}
