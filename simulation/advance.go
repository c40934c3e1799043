// Package simulation is the round-advance core of the league manager:
// a stochastic match engine, the player condition tracker, the standings
// aggregator and the financial simulator, orchestrated by AdvanceRound.
// Every component is a pure function over season snapshots; all
// randomness flows through injected sources so rounds replay exactly
// under a fixed seed.
package simulation

import (
	"errors"
	"log"
	"math/rand"
	"time"

	"league-manager-system/models"
)

// Fatal input errors: the round aborts, nothing is partially committed.
var (
	ErrRoundNotFound        = errors.New("fixture has no entry for the requested round")
	ErrMissingUserResult    = errors.New("user match result required for the club's match this round")
	ErrUnexpectedUserResult = errors.New("user match result supplied but the club has no unplayed match this round")
)

// AdvanceInput is everything one round-advance needs. Seed drives every
// simulated match; Now stamps financial transactions (zero means wall
// clock).
type AdvanceInput struct {
	Snapshot   models.SeasonSnapshot
	UserResult *models.UserMatchResult
	Seed       int64
	Now        time.Time
}

// AdvanceRound advances the season by exactly one round and returns the
// new snapshot. The input snapshot is treated as read-only.
//
// The user's own match result, when the club plays this round, must be
// supplied by the caller and is attached verbatim. Every other unplayed
// match is simulated; a match missing squad data gets a random
// low-scoring degraded result, and a match whose simulation fails gets an
// errored 0-0 — neither aborts the rest of the round. Standings, the
// player ledger and finances are then recomputed off the merged fixture,
// and the round counter moves forward with transient match state cleared.
func AdvanceRound(in AdvanceInput) (models.SeasonSnapshot, error) {
	snap := in.Snapshot
	now := in.Now
	if now.IsZero() {
		now = time.Now()
	}

	roundIdx := -1
	for i := range snap.Fixture {
		if snap.Fixture[i].Number == snap.CurrentRound {
			roundIdx = i
			break
		}
	}
	if roundIdx < 0 {
		return models.SeasonSnapshot{}, ErrRoundNotFound
	}

	// Copy-on-write: only the current round's match list is rewritten
	fixture := make([]models.Round, len(snap.Fixture))
	copy(fixture, snap.Fixture)
	matches := make([]models.Match, len(fixture[roundIdx].Matches))
	copy(matches, fixture[roundIdx].Matches)
	fixture[roundIdx].Matches = matches

	humanIdx := -1
	for i := range matches {
		if matches[i].HasTeam(snap.TeamID) && !matches[i].Played() {
			humanIdx = i
			break
		}
	}
	if humanIdx >= 0 && in.UserResult == nil {
		return models.SeasonSnapshot{}, ErrMissingUserResult
	}
	if humanIdx < 0 && in.UserResult != nil {
		return models.SeasonSnapshot{}, ErrUnexpectedUserResult
	}

	for i := range matches {
		match := &matches[i]

		if i == humanIdx {
			result := in.UserResult.Result
			match.Result = &result
			match.Events = in.UserResult.Events
			match.Stats = in.UserResult.Stats
			match.HomeSquad = in.UserResult.HomeSquad
			match.AwaySquad = in.UserResult.AwaySquad
			match.Source = models.ResultUserSupplied
			continue
		}
		if match.Played() {
			continue
		}

		// One sub-source per match keeps replays deterministic even if
		// matches are ever simulated concurrently.
		matchRng := rand.New(rand.NewSource(in.Seed + int64(i) + 1))

		homeSquad := snap.SquadsByTeam[match.HomeTeamID]
		awaySquad := snap.SquadsByTeam[match.AwayTeamID]
		if homeSquad == nil || awaySquad == nil {
			match.Result = &models.MatchResult{
				HomeGoals: matchRng.Intn(3),
				AwayGoals: matchRng.Intn(3),
			}
			match.Events = nil
			match.Stats = nil
			match.Source = models.ResultDegraded
			log.Printf("[ADVANCE] missing squad data for %s vs %s, using degraded result", match.HomeTeamID, match.AwayTeamID)
			continue
		}

		simulateMatchSafe(matchRng, match,
			Lineup{TeamID: match.HomeTeamID, Starters: homeSquad.Starters},
			Lineup{TeamID: match.AwayTeamID, Starters: awaySquad.Starters},
			snap.StaffMedicLevel)
	}

	standings, err := RecomputeStandings(fixture, snap.StandingGroups)
	if err != nil {
		return models.SeasonSnapshot{}, err
	}

	ledger := AdvancePlayerStates(snap.PlayerLedger, fixture[roundIdx], snap.SquadsByTeam)

	finance := SimulateRoundFinances(FinanceClub{
		TeamID:        snap.TeamID,
		Stadium:       snap.Stadium,
		Finances:      snap.Finances,
		Merchandising: snap.Merchandising,
	}, standings, now)

	next := snap
	next.Fixture = fixture
	next.Standings = standings
	next.PlayerLedger = ledger
	next.Finances = finance.Finances
	next.Merchandising = finance.Merchandising
	next.CurrentRound = snap.CurrentRound + 1
	next.MatchPhase = models.PhasePreMatch
	next.PendingResult = nil
	return next, nil
}

// simulateMatchSafe runs the engine for one match and absorbs any panic
// into an errored 0-0, so a single bad roster can never take down the
// rest of the round.
func simulateMatchSafe(rng *rand.Rand, match *models.Match, home, away Lineup, medicLevel int) {
	defer func() {
		if r := recover(); r != nil {
			match.Result = &models.MatchResult{}
			match.Events = nil
			match.Stats = nil
			match.Source = models.ResultErrored
			log.Printf("[ADVANCE] simulation failed for %s vs %s: %v", match.HomeTeamID, match.AwayTeamID, r)
		}
	}()

	outcome := SimulateMatch(rng, home, away, medicLevel)
	stats := outcome.Stats
	match.Result = &outcome.Result
	match.Events = outcome.Events
	match.Stats = &stats
	match.Source = models.ResultSimulated
}
