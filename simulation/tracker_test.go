package simulation

import (
	"testing"

	"league-manager-system/models"
)

func trackerSquads() map[string]*models.Squad {
	squads := map[string]*models.Squad{}
	for _, teamID := range []string{"t1", "t2"} {
		squad := &models.Squad{TeamID: teamID}
		for i := 1; i <= 11; i++ {
			squad.Starters = append(squad.Starters, models.Player{
				ID:       teamID + "-p" + string(rune('0'+i/10)) + string(rune('0'+i%10)),
				TeamID:   teamID,
				Position: models.PositionMidfielder,
			})
		}
		squads[teamID] = squad
	}
	return squads
}

func playedRound(events ...models.MatchEvent) models.Round {
	return models.Round{
		Number: 1,
		Matches: []models.Match{{
			HomeTeamID: "t1",
			AwayTeamID: "t2",
			Result:     &models.MatchResult{HomeGoals: 1, AwayGoals: 0},
			Events:     events,
		}},
	}
}

func TestAdvancePlayerStates_CreditsAppearances(t *testing.T) {
	squads := trackerSquads()
	ledger := map[string]*models.PlayerState{}

	updated := AdvancePlayerStates(ledger, playedRound(), squads)

	if len(updated) != 22 {
		t.Fatalf("ledger entries = %d, want 22", len(updated))
	}
	for id, st := range updated {
		if st.SeasonStats.MatchesPlayed != 1 {
			t.Errorf("%s matches played = %d, want 1", id, st.SeasonStats.MatchesPlayed)
		}
		if st.SeasonStats.MinutesPlayed != 90 {
			t.Errorf("%s minutes played = %d, want 90", id, st.SeasonStats.MinutesPlayed)
		}
	}
	if len(ledger) != 0 {
		t.Error("input ledger was mutated")
	}
}

func TestAdvancePlayerStates_EventRouting(t *testing.T) {
	squads := trackerSquads()
	round := playedRound(
		models.MatchEvent{Minute: 12, Type: models.EventGoal, TeamID: "t1", PlayerID: "t1-p09"},
		models.MatchEvent{Minute: 12, Type: models.EventAssist, TeamID: "t1", PlayerID: "t1-p08"},
		models.MatchEvent{Minute: 30, Type: models.EventYellowCard, TeamID: "t2", PlayerID: "t2-p04"},
		models.MatchEvent{Minute: 55, Type: models.EventRedCard, TeamID: "t2", PlayerID: "t2-p05"},
		models.MatchEvent{Minute: 70, Type: models.EventInjury, TeamID: "t1", PlayerID: "t1-p06", Severity: models.InjuryModerate, DurationMatches: 3},
	)

	updated := AdvancePlayerStates(map[string]*models.PlayerState{}, round, squads)

	if got := updated["t1-p09"].SeasonStats.Goals; got != 1 {
		t.Errorf("goals = %d, want 1", got)
	}
	if got := updated["t1-p08"].SeasonStats.Assists; got != 1 {
		t.Errorf("assists = %d, want 1", got)
	}
	if got := updated["t2-p04"].SeasonStats.YellowCards; got != 1 {
		t.Errorf("yellow cards = %d, want 1", got)
	}
	if got := updated["t2-p04"].YellowCardsAccumulated; got != 1 {
		t.Errorf("accumulated yellows = %d, want 1", got)
	}
	// Red card: one-match ban earned, then served by this round's tick
	if got := updated["t2-p05"].SeasonStats.RedCards; got != 1 {
		t.Errorf("red cards = %d, want 1", got)
	}
	if got := updated["t2-p05"].SuspensionMatches; got != 0 {
		t.Errorf("suspension after tick = %d, want 0", got)
	}
	// Injury: 3 matches earned, tick leaves 2
	if got := updated["t1-p06"].SeasonStats.Injuries; got != 1 {
		t.Errorf("injuries = %d, want 1", got)
	}
	if got := updated["t1-p06"].InjuryMatches; got != 2 {
		t.Errorf("injury matches after tick = %d, want 2", got)
	}
}

func TestAdvancePlayerStates_DoubleYellowBan(t *testing.T) {
	squads := trackerSquads()
	round := playedRound(
		models.MatchEvent{Minute: 20, Type: models.EventYellowCard, TeamID: "t1", PlayerID: "t1-p03"},
		models.MatchEvent{Minute: 75, Type: models.EventYellowCard, TeamID: "t1", PlayerID: "t1-p03"},
	)

	updated := AdvancePlayerStates(map[string]*models.PlayerState{}, round, squads)

	st := updated["t1-p03"]
	if st.SeasonStats.YellowCards != 2 || st.YellowCardsAccumulated != 2 {
		t.Errorf("yellows = %d/%d accumulated, want 2/2", st.SeasonStats.YellowCards, st.YellowCardsAccumulated)
	}
	// The forced one-match ban was earned and served within this round;
	// the tick must never push it negative.
	if st.SuspensionMatches != 0 {
		t.Errorf("suspension after tick = %d, want 0", st.SuspensionMatches)
	}
}

func TestAdvancePlayerStates_DoubleYellowKeepsLongerBan(t *testing.T) {
	squads := trackerSquads()
	round := playedRound(
		models.MatchEvent{Minute: 20, Type: models.EventYellowCard, TeamID: "t1", PlayerID: "t1-p03"},
		models.MatchEvent{Minute: 75, Type: models.EventYellowCard, TeamID: "t1", PlayerID: "t1-p03"},
	)
	ledger := map[string]*models.PlayerState{
		"t1-p03": {PlayerID: "t1-p03", SuspensionMatches: 3},
	}

	updated := AdvancePlayerStates(ledger, round, squads)

	// max(3, 1) = 3, then the tick takes one
	if got := updated["t1-p03"].SuspensionMatches; got != 2 {
		t.Errorf("suspension = %d, want 2", got)
	}
	if ledger["t1-p03"].SuspensionMatches != 3 {
		t.Error("input ledger entry was mutated")
	}
}

func TestAdvancePlayerStates_FifthYellowResetsAccumulator(t *testing.T) {
	squads := trackerSquads()
	round := playedRound(
		models.MatchEvent{Minute: 40, Type: models.EventYellowCard, TeamID: "t2", PlayerID: "t2-p07"},
	)
	ledger := map[string]*models.PlayerState{
		"t2-p07": {PlayerID: "t2-p07", YellowCardsAccumulated: 4, SeasonStats: models.SeasonStats{YellowCards: 4}},
	}

	updated := AdvancePlayerStates(ledger, round, squads)

	st := updated["t2-p07"]
	if st.YellowCardsAccumulated != 0 {
		t.Errorf("accumulator = %d, want 0 after crossing 5", st.YellowCardsAccumulated)
	}
	if st.SeasonStats.YellowCards != 5 {
		t.Errorf("season yellows = %d, want 5", st.SeasonStats.YellowCards)
	}
	if st.SuspensionMatches < 0 {
		t.Errorf("suspension went negative: %d", st.SuspensionMatches)
	}
}

func TestAdvancePlayerStates_InjuryNeverShortened(t *testing.T) {
	squads := trackerSquads()
	round := playedRound(
		models.MatchEvent{Minute: 10, Type: models.EventInjury, TeamID: "t1", PlayerID: "t1-p02", Severity: models.InjuryMinor, DurationMatches: 1},
	)
	ledger := map[string]*models.PlayerState{
		"t1-p02": {PlayerID: "t1-p02", InjuryMatches: 5},
	}

	updated := AdvancePlayerStates(ledger, round, squads)

	// A new minor knock must not shorten the existing layoff: max(5,1)=5, tick -> 4
	if got := updated["t1-p02"].InjuryMatches; got != 4 {
		t.Errorf("injury matches = %d, want 4", got)
	}
}

func TestAdvancePlayerStates_RecoveryTickOnEmptyRound(t *testing.T) {
	ledger := map[string]*models.PlayerState{
		"a": {PlayerID: "a", SuspensionMatches: 2, InjuryMatches: 1},
		"b": {PlayerID: "b"},
	}

	updated := AdvancePlayerStates(ledger, models.Round{Number: 3}, nil)

	if got := updated["a"].SuspensionMatches; got != 1 {
		t.Errorf("suspension = %d, want 1", got)
	}
	if got := updated["a"].InjuryMatches; got != 0 {
		t.Errorf("injury = %d, want 0", got)
	}
	if got := updated["b"].SuspensionMatches; got != 0 {
		t.Errorf("clean player suspension = %d, want 0 (never negative)", got)
	}
}

func TestAdvancePlayerStates_UnplayedMatchIgnored(t *testing.T) {
	squads := trackerSquads()
	round := models.Round{
		Number:  1,
		Matches: []models.Match{{HomeTeamID: "t1", AwayTeamID: "t2"}}, // no result
	}

	updated := AdvancePlayerStates(map[string]*models.PlayerState{}, round, squads)

	if len(updated) != 0 {
		t.Errorf("unplayed match produced %d ledger entries, want 0", len(updated))
	}
}

func TestAdvancePlayerStates_LazyEntryForUnknownPlayer(t *testing.T) {
	squads := trackerSquads()
	round := playedRound(
		models.MatchEvent{Minute: 50, Type: models.EventGoal, TeamID: "t2", PlayerID: "loanee-99"},
	)

	updated := AdvancePlayerStates(map[string]*models.PlayerState{}, round, squads)

	st, ok := updated["loanee-99"]
	if !ok {
		t.Fatal("player from events was not lazily created")
	}
	if st.SeasonStats.Goals != 1 {
		t.Errorf("goals = %d, want 1", st.SeasonStats.Goals)
	}
	if st.SeasonStats.MatchesPlayed != 0 {
		t.Errorf("matches played = %d, want 0 for a non-starter", st.SeasonStats.MatchesPlayed)
	}
}

func TestAdvancePlayerStates_FieldedSquadOverridesStored(t *testing.T) {
	squads := trackerSquads()

	// The home side fielded a fully rotated eleven for this match
	fielded := &models.Squad{TeamID: "t1"}
	for i := 1; i <= 11; i++ {
		fielded.Starters = append(fielded.Starters, models.Player{
			ID:       "t1-sub" + string(rune('0'+i/10)) + string(rune('0'+i%10)),
			TeamID:   "t1",
			Position: models.PositionMidfielder,
		})
	}
	round := playedRound()
	round.Matches[0].HomeSquad = fielded

	updated := AdvancePlayerStates(map[string]*models.PlayerState{}, round, squads)

	st := updated["t1-sub01"]
	if st == nil || st.SeasonStats.MatchesPlayed != 1 || st.SeasonStats.MinutesPlayed != 90 {
		t.Fatalf("fielded starter not credited: %+v", st)
	}
	if benched := updated["t1-p01"]; benched != nil {
		t.Errorf("benched stored starter was credited: %+v", benched)
	}
	// No override on the away side: its stored squad still plays
	if away := updated["t2-p01"]; away == nil || away.SeasonStats.MatchesPlayed != 1 {
		t.Fatalf("stored away squad not credited: %+v", away)
	}
}
