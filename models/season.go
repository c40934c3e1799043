package models

// MatchPhase is the transient UI phase of the human match within the
// current round. The advancer always resets it to pre-match.
type MatchPhase string

const (
	PhasePreMatch   MatchPhase = "pre-match"
	PhaseInProgress MatchPhase = "in-progress"
	PhaseFullTime   MatchPhase = "full-time"
)

// UserMatchResult is the externally-played result of the human-controlled
// match, supplied by the caller of AdvanceRound. It is attached to the
// fixture verbatim: the core never re-simulates or edits it. HomeSquad
// and AwaySquad are the elevens actually fielded; when set they override
// the stored squads for appearance crediting.
type UserMatchResult struct {
	Result    MatchResult  `json:"result"`
	Events    []MatchEvent `json:"events,omitempty"`
	Stats     *MatchStats  `json:"stats,omitempty"`
	HomeSquad *Squad       `json:"home_squad,omitempty"`
	AwaySquad *Squad       `json:"away_squad,omitempty"`
}

// SeasonSnapshot is the full serializable state of one season: the unit
// of input/output for the simulation core. The core treats it as a value,
// returning a new snapshot rather than mutating shared state.
type SeasonSnapshot struct {
	TeamID       string `json:"team_id"`
	CurrentRound int    `json:"current_round"`

	Fixture        []Round                  `json:"fixture"`
	SquadsByTeam   map[string]*Squad        `json:"squads_by_team"`
	PlayerLedger   map[string]*PlayerState  `json:"player_ledger"`
	StandingGroups map[string][]string      `json:"standing_groups"`
	Standings      map[string][]StandingRow `json:"standings,omitempty"`

	Stadium       Stadium       `json:"stadium"`
	Finances      Finances      `json:"finances"`
	Merchandising Merchandising `json:"merchandising"`

	StaffMedicLevel int `json:"staff_medic_level"`

	// Transient match-in-progress state, cleared on every advance
	MatchPhase    MatchPhase       `json:"match_phase,omitempty"`
	PendingResult *UserMatchResult `json:"pending_result,omitempty"`
}

// TotalRounds returns the number of rounds in the fixture
func (s *SeasonSnapshot) TotalRounds() int {
	return len(s.Fixture)
}

// Finished reports whether every round of the fixture has been played
func (s *SeasonSnapshot) Finished() bool {
	return s.CurrentRound > len(s.Fixture)
}
