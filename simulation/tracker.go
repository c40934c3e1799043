package simulation

import "league-manager-system/models"

// Suspensions earned through cards always last at least one match
const minSuspension = 1

// Five accumulated yellows across the season trigger a one-match ban and
// reset the accumulator.
const yellowAccumulationLimit = 5

// AdvancePlayerStates applies one processed round to the player ledger
// and returns a new ledger; the input is never mutated.
//
// For every match in the round that has a result, each starter of both
// sides is credited a full 90 minutes — the match's own fielded squad
// when one is attached, the stored squad otherwise — then the match
// events are routed
// into season totals. A second yellow in the same match or a straight red
// earns a suspension of at least one match; injuries extend (never
// shorten) the current layoff. After all matches, suspension and injury
// countdowns tick down by one: the recovery tick runs even for a round
// with no recorded matches.
func AdvancePlayerStates(ledger map[string]*models.PlayerState, round models.Round, squads map[string]*models.Squad) map[string]*models.PlayerState {
	updated := make(map[string]*models.PlayerState, len(ledger))
	for id, st := range ledger {
		cp := *st
		updated[id] = &cp
	}

	// Players seen in events but not yet tracked start from zero
	ensure := func(playerID string) *models.PlayerState {
		if st, ok := updated[playerID]; ok {
			return st
		}
		st := &models.PlayerState{PlayerID: playerID}
		updated[playerID] = st
		return st
	}

	for i := range round.Matches {
		match := &round.Matches[i]
		if !match.Played() {
			continue
		}

		sides := []struct {
			teamID  string
			fielded *models.Squad
		}{
			{match.HomeTeamID, match.HomeSquad},
			{match.AwayTeamID, match.AwaySquad},
		}
		for _, side := range sides {
			squad := side.fielded
			if squad == nil {
				squad = squads[side.teamID]
			}
			if squad == nil {
				continue
			}
			for _, p := range squad.Starters {
				if p.ID == "" {
					continue
				}
				st := ensure(p.ID)
				st.SeasonStats.MatchesPlayed++
				st.SeasonStats.MinutesPlayed += 90
			}
		}

		yellowsThisMatch := map[string]int{}
		for _, ev := range match.Events {
			if ev.PlayerID == "" {
				continue
			}
			st := ensure(ev.PlayerID)

			switch ev.Type {
			case models.EventGoal:
				st.SeasonStats.Goals++
			case models.EventAssist:
				st.SeasonStats.Assists++
			case models.EventYellowCard:
				st.SeasonStats.YellowCards++
				st.YellowCardsAccumulated++
				yellowsThisMatch[ev.PlayerID]++
			case models.EventRedCard:
				st.SeasonStats.RedCards++
				if st.SuspensionMatches < minSuspension {
					st.SuspensionMatches = minSuspension
				}
			case models.EventInjury:
				st.SeasonStats.Injuries++
				duration := ev.DurationMatches
				if duration < 1 {
					duration = 1
				}
				if st.InjuryMatches < duration {
					st.InjuryMatches = duration
				}
			}
		}

		// Two yellows in the same match: forced one-match ban
		for playerID, count := range yellowsThisMatch {
			if count >= 2 {
				st := updated[playerID]
				if st.SuspensionMatches < minSuspension {
					st.SuspensionMatches = minSuspension
				}
			}
		}

		// Accumulated yellows across the season: ban and reset
		for _, st := range updated {
			if st.YellowCardsAccumulated >= yellowAccumulationLimit {
				if st.SuspensionMatches < minSuspension {
					st.SuspensionMatches = minSuspension
				}
				st.YellowCardsAccumulated = 0
			}
		}
	}

	// Recovery tick for the round just processed
	for _, st := range updated {
		if st.SuspensionMatches > 0 {
			st.SuspensionMatches--
		}
		if st.InjuryMatches > 0 {
			st.InjuryMatches--
		}
	}

	return updated
}
