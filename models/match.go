package models

// EventType tags the variants of a MatchEvent
type EventType string

const (
	EventGoal       EventType = "goal"
	EventAssist     EventType = "assist"
	EventYellowCard EventType = "yellow_card"
	EventRedCard    EventType = "red_card"
	EventInjury     EventType = "injury"
)

// InjurySeverity buckets injuries by base recovery time
type InjurySeverity string

const (
	InjuryMinor    InjurySeverity = "minor"
	InjuryModerate InjurySeverity = "moderate"
	InjurySevere   InjurySeverity = "severe"
)

// MatchEvent is one chronological entry in a match report. Severity and
// DurationMatches are set only on injury events. Order within a match is
// by minute, ties broken by insertion order.
type MatchEvent struct {
	Minute   int       `json:"minute"`
	Type     EventType `json:"type"`
	TeamID   string    `json:"team_id"`
	PlayerID string    `json:"player_id"`

	Severity        InjurySeverity `json:"severity,omitempty"`
	DurationMatches int            `json:"duration_matches,omitempty"`
}

// MatchResult is a final score. A match with a result attached is
// immutable for the remainder of the season.
type MatchResult struct {
	HomeGoals int `json:"home_goals"`
	AwayGoals int `json:"away_goals"`
}

// ResultSource records how a match result was produced, so degraded and
// errored outcomes are distinguishable from genuine simulations.
type ResultSource string

const (
	ResultSimulated    ResultSource = "simulated"     // full engine run
	ResultUserSupplied ResultSource = "user_supplied" // human-controlled match, attached verbatim
	ResultDegraded     ResultSource = "degraded"      // squad data missing, random low score
	ResultErrored      ResultSource = "errored"       // simulator failed, 0-0 placeholder
)

// MatchStats are the aggregate statistics of a simulated match
type MatchStats struct {
	HomeShots      int `json:"home_shots"`
	AwayShots      int `json:"away_shots"`
	HomeFouls      int `json:"home_fouls"`
	AwayFouls      int `json:"away_fouls"`
	HomeCorners    int `json:"home_corners"`
	AwayCorners    int `json:"away_corners"`
	HomePossession int `json:"home_possession"`
	AwayPossession int `json:"away_possession"`
}

// Match is one fixture entry. Result is nil until the match is played.
// HomeSquad and AwaySquad record the fielded elevens when they differ
// from the stored squads (user-supplied results); nil means the stored
// squad played.
type Match struct {
	HomeTeamID string       `json:"home_team_id"`
	AwayTeamID string       `json:"away_team_id"`
	Result     *MatchResult `json:"result,omitempty"`
	Events     []MatchEvent `json:"events,omitempty"`
	Stats      *MatchStats  `json:"stats,omitempty"`
	HomeSquad  *Squad       `json:"home_squad,omitempty"`
	AwaySquad  *Squad       `json:"away_squad,omitempty"`
	Source     ResultSource `json:"source,omitempty"`
}

// Played reports whether the match has a final score attached
func (m *Match) Played() bool {
	return m.Result != nil
}

// HasTeam reports whether the given team plays in this match
func (m *Match) HasTeam(teamID string) bool {
	return m.HomeTeamID == teamID || m.AwayTeamID == teamID
}

// Round is one matchday: a fixed list of matches, mutated in place as
// results are attached, never reordered.
type Round struct {
	Number  int     `json:"number"`
	Matches []Match `json:"matches"`
}

// StandingRow is one team's line in a group table. GoalDiff is always
// recomputed from GoalsFor and GoalsAgainst, never stored independently.
type StandingRow struct {
	TeamID       string `json:"team_id"`
	Played       int    `json:"played"`
	Won          int    `json:"won"`
	Drawn        int    `json:"drawn"`
	Lost         int    `json:"lost"`
	GoalsFor     int    `json:"goals_for"`
	GoalsAgainst int    `json:"goals_against"`
	GoalDiff     int    `json:"goal_diff"`
	Points       int    `json:"points"`
}
