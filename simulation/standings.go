package simulation

import (
	"errors"
	"sort"

	"league-manager-system/models"
)

// ErrMissingGroups means the standings group configuration is absent or
// empty. Standings are never partially produced: this aborts the round.
var ErrMissingGroups = errors.New("standings group configuration missing or empty")

// RecomputeStandings rebuilds every group table from scratch out of the
// full match history, so standings can never drift from the fixture.
//
// Each group member starts at a zero row; every played match updates both
// participants under the 3-1-0 scheme. Tables sort by points, then goal
// difference, then goals for, all descending; teams equal on all three
// keep the order they appear in the group definition. A team referenced
// by a match but absent from every group is ignored.
func RecomputeStandings(fixture []models.Round, groups map[string][]string) (map[string][]models.StandingRow, error) {
	if len(groups) == 0 {
		return nil, ErrMissingGroups
	}

	rows := map[string]*models.StandingRow{}
	for _, teamIDs := range groups {
		for _, teamID := range teamIDs {
			rows[teamID] = &models.StandingRow{TeamID: teamID}
		}
	}

	for i := range fixture {
		for j := range fixture[i].Matches {
			match := &fixture[i].Matches[j]
			if !match.Played() {
				continue
			}
			applyResult(rows, match)
		}
	}

	for _, row := range rows {
		row.GoalDiff = row.GoalsFor - row.GoalsAgainst
	}

	standings := make(map[string][]models.StandingRow, len(groups))
	for name, teamIDs := range groups {
		table := make([]models.StandingRow, 0, len(teamIDs))
		for _, teamID := range teamIDs {
			table = append(table, *rows[teamID])
		}
		sort.SliceStable(table, func(i, j int) bool {
			a, b := table[i], table[j]
			if a.Points != b.Points {
				return a.Points > b.Points
			}
			if a.GoalDiff != b.GoalDiff {
				return a.GoalDiff > b.GoalDiff
			}
			return a.GoalsFor > b.GoalsFor
		})
		standings[name] = table
	}

	return standings, nil
}

func applyResult(rows map[string]*models.StandingRow, match *models.Match) {
	result := match.Result
	home, away := rows[match.HomeTeamID], rows[match.AwayTeamID]

	if home != nil {
		home.Played++
		home.GoalsFor += result.HomeGoals
		home.GoalsAgainst += result.AwayGoals
	}
	if away != nil {
		away.Played++
		away.GoalsFor += result.AwayGoals
		away.GoalsAgainst += result.HomeGoals
	}

	switch {
	case result.HomeGoals > result.AwayGoals:
		if home != nil {
			home.Won++
			home.Points += 3
		}
		if away != nil {
			away.Lost++
		}
	case result.HomeGoals < result.AwayGoals:
		if away != nil {
			away.Won++
			away.Points += 3
		}
		if home != nil {
			home.Lost++
		}
	default:
		if home != nil {
			home.Drawn++
			home.Points++
		}
		if away != nil {
			away.Drawn++
			away.Points++
		}
	}
}
