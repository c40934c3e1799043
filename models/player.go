package models

import "math"

// Position is a player's role on the pitch
type Position string

const (
	PositionGoalkeeper Position = "goalkeeper"
	PositionDefender   Position = "defender"
	PositionMidfielder Position = "midfielder"
	PositionForward    Position = "forward"
)

// Attributes holds the 0-100 skill ratings used by the match engine
type Attributes struct {
	Goalkeeping int `json:"goalkeeping"`
	Defense     int `json:"defense"`
	Midfield    int `json:"midfield"`
	Attack      int `json:"attack"`
	Speed       int `json:"speed"`
}

// Player is a squad member inside a season snapshot
type Player struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Position   Position    `json:"position"`
	TeamID     string      `json:"team_id"`
	Attributes *Attributes `json:"attributes,omitempty"`
	Age        int         `json:"age,omitempty"`
}

// Overall returns the single-number rating driving simulation probabilities.
// Goalkeepers average goalkeeping and speed; everyone else averages
// defense, midfield, attack and speed. A player with no attribute set
// rates 0 rather than failing.
func (p *Player) Overall() int {
	if p == nil || p.Attributes == nil {
		return 0
	}
	a := p.Attributes
	if p.Position == PositionGoalkeeper {
		return int(math.Round(float64(a.Goalkeeping+a.Speed) / 2))
	}
	return int(math.Round(float64(a.Defense+a.Midfield+a.Attack+a.Speed) / 4))
}

// Squad is one team's roster: the 11 starters fielded for a match plus reserves
type Squad struct {
	TeamID   string   `json:"team_id"`
	Starters []Player `json:"starters"`
	Reserves []Player `json:"reserves,omitempty"`
}

// SeasonStats are the per-player season totals tracked in the ledger
type SeasonStats struct {
	MatchesPlayed int `json:"matches_played"`
	MinutesPlayed int `json:"minutes_played"`
	Goals         int `json:"goals"`
	Assists       int `json:"assists"`
	YellowCards   int `json:"yellow_cards"`
	RedCards      int `json:"red_cards"`
	Injuries      int `json:"injuries"`
}

// PlayerState is one ledger entry: season totals plus current availability.
// YellowCardsAccumulated resets to 0 once the 5-card suspension triggers.
// SuspensionMatches and InjuryMatches count down one per processed round,
// floored at 0.
type PlayerState struct {
	PlayerID               string      `json:"player_id"`
	SeasonStats            SeasonStats `json:"season_stats"`
	YellowCardsAccumulated int         `json:"yellow_cards_accumulated"`
	SuspensionMatches      int         `json:"suspension_matches"`
	InjuryMatches          int         `json:"injury_matches"`
}

// Available reports whether the player can be fielded next round
func (ps *PlayerState) Available() bool {
	return ps.SuspensionMatches == 0 && ps.InjuryMatches == 0
}
