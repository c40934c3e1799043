package simulation

import (
	"math"
	"math/rand"
	"sort"

	"league-manager-system/models"
)

// Match engine tuning. One attack opportunity block runs per side per
// half; a shot converts to a goal at the fixed conversion rate.
const (
	chancesPerHalf  = 7
	goalConversion  = 0.3
	homeAttackBonus = 1.1 // applied to the home attack index before each shot roll
	yellowCardProb  = 0.08
	redCardProb     = 0.02
	injuryProb      = 0.03
)

// injuryTable maps severity to base recovery matches, before the medical
// staff reduction is applied.
var injuryTable = []struct {
	Severity    models.InjurySeverity
	BaseMatches int
}{
	{models.InjuryMinor, 1},
	{models.InjuryModerate, 3},
	{models.InjurySevere, 6},
}

// medicalFactor returns the injury-duration multiplier for the club's
// medic staff level (1-5). Level 1 gives no reduction.
func medicalFactor(medicLevel int) float64 {
	switch medicLevel {
	case 2:
		return 0.85
	case 3:
		return 0.70
	case 4:
		return 0.50
	case 5:
		return 0.25
	default:
		return 1.00
	}
}

// Lineup is one side's eleven for a single match
type Lineup struct {
	TeamID   string
	Starters []models.Player
}

// MatchOutcome is a completed simulation: final score, chronological
// event list and aggregate statistics.
type MatchOutcome struct {
	Result models.MatchResult
	Events []models.MatchEvent
	Stats  models.MatchStats
}

// attackIndex is the mean overall rating of a full eleven. The divisor
// stays 11 even for short rosters, so an incomplete side plays weaker
// instead of failing.
func attackIndex(starters []models.Player) float64 {
	sum := 0
	for i := range starters {
		sum += starters[i].Overall()
	}
	return float64(sum) / 11
}

// SimulateMatch plays one full match between two elevens and returns the
// final score, the minute-sorted event list and the match statistics.
//
// The home side's attack index is multiplied by 1.1 before each shot
// roll; the away side uses its raw index. All randomness comes from the
// provided rng, so a fixed seed reproduces the exact same match.
func SimulateMatch(rng *rand.Rand, home, away Lineup, medicLevel int) MatchOutcome {
	homeAttack := attackIndex(home.Starters)
	awayAttack := attackIndex(away.Starters)

	first := simulateHalf(rng, home, away, homeAttack, awayAttack, 0, medicLevel)
	second := simulateHalf(rng, home, away, homeAttack, awayAttack, 45, medicLevel)

	events := append(first.events, second.events...)
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Minute < events[j].Minute
	})

	stats := models.MatchStats{
		HomeShots:   first.homeShots + second.homeShots,
		AwayShots:   first.awayShots + second.awayShots,
		HomeFouls:   first.homeFouls + second.homeFouls,
		AwayFouls:   first.awayFouls + second.awayFouls,
		HomeCorners: first.homeCorners + second.homeCorners,
		AwayCorners: first.awayCorners + second.awayCorners,
	}

	// Possession is analytic, not event-driven: attack differential plus
	// symmetric noise, clamped to [20,80].
	possession := int(math.Floor(50 + (homeAttack-awayAttack)/2 + (rng.Float64()*10 - 5)))
	if possession < 20 {
		possession = 20
	}
	if possession > 80 {
		possession = 80
	}
	stats.HomePossession = possession
	stats.AwayPossession = 100 - possession

	return MatchOutcome{
		Result: models.MatchResult{
			HomeGoals: first.homeGoals + second.homeGoals,
			AwayGoals: first.awayGoals + second.awayGoals,
		},
		Events: events,
		Stats:  stats,
	}
}

type halfOutcome struct {
	homeGoals, awayGoals     int
	homeShots, awayShots     int
	homeFouls, awayFouls     int
	homeCorners, awayCorners int
	events                   []models.MatchEvent
}

func simulateHalf(rng *rand.Rand, home, away Lineup, homeAttack, awayAttack float64, baseMinute, medicLevel int) halfOutcome {
	var out halfOutcome

	minute := func() int { return rng.Intn(45) + 1 + baseMinute }

	for i := 0; i < chancesPerHalf; i++ {
		if rng.Float64()*100 < homeAttack*homeAttackBonus {
			out.homeShots++
			if rng.Float64() < goalConversion {
				out.homeGoals++
				if scorer, ok := pickScorer(rng, home.Starters); ok {
					out.events = append(out.events, models.MatchEvent{
						Minute:   minute(),
						Type:     models.EventGoal,
						TeamID:   home.TeamID,
						PlayerID: scorer.ID,
					})
				}
			}
		}

		if rng.Float64()*100 < awayAttack {
			out.awayShots++
			if rng.Float64() < goalConversion {
				out.awayGoals++
				if scorer, ok := pickScorer(rng, away.Starters); ok {
					out.events = append(out.events, models.MatchEvent{
						Minute:   minute(),
						Type:     models.EventGoal,
						TeamID:   away.TeamID,
						PlayerID: scorer.ID,
					})
				}
			}
		}

		if rng.Float64() < 0.3 {
			out.homeFouls++
		}
		if rng.Float64() < 0.3 {
			out.awayFouls++
		}
		if rng.Float64() < 0.15 {
			out.homeCorners++
		}
		if rng.Float64() < 0.15 {
			out.awayCorners++
		}
	}

	// Per-player discipline and injury rolls, once per half
	for _, side := range []Lineup{home, away} {
		for i := range side.Starters {
			p := &side.Starters[i]
			if p.ID == "" {
				continue
			}

			if rng.Float64() < yellowCardProb {
				out.events = append(out.events, models.MatchEvent{
					Minute:   minute(),
					Type:     models.EventYellowCard,
					TeamID:   side.TeamID,
					PlayerID: p.ID,
				})
			}

			if rng.Float64() < redCardProb {
				out.events = append(out.events, models.MatchEvent{
					Minute:   minute(),
					Type:     models.EventRedCard,
					TeamID:   side.TeamID,
					PlayerID: p.ID,
				})
			}

			if rng.Float64() < injuryProb {
				injury := injuryTable[rng.Intn(len(injuryTable))]
				duration := int(math.Round(float64(injury.BaseMatches) * medicalFactor(medicLevel)))
				if duration < 1 {
					duration = 1
				}
				out.events = append(out.events, models.MatchEvent{
					Minute:          minute(),
					Type:            models.EventInjury,
					TeamID:          side.TeamID,
					PlayerID:        p.ID,
					Severity:        injury.Severity,
					DurationMatches: duration,
				})
			}
		}
	}

	return out
}

// pickScorer draws a uniformly-random outfield starter. Goalkeepers never
// score here; if the outfield pool is somehow empty the 11th starter gets
// the goal, and a roster too short for even that yields no scorer event.
func pickScorer(rng *rand.Rand, starters []models.Player) (models.Player, bool) {
	pool := make([]models.Player, 0, len(starters))
	for _, p := range starters {
		if p.Position != models.PositionGoalkeeper {
			pool = append(pool, p)
		}
	}
	if len(pool) > 0 {
		return pool[rng.Intn(len(pool))], true
	}
	if len(starters) >= 11 {
		return starters[10], true
	}
	return models.Player{}, false
}
