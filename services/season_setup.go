package services

import (
	"fmt"
	"math/rand"
	"time"

	"league-manager-system/models"

	"github.com/google/uuid"
)

// aiClubNames seeds the 19 computer-controlled clubs that fill out the
// two zones around the user's team.
var aiClubNames = []string{
	"Atlético Norte", "Deportivo Costanera", "Racing del Sur", "Unión Ferroviaria",
	"Club Estudiantil", "Sporting Ribera", "Defensores del Parque", "Juventud Minera",
	"Huracán del Valle", "Atlético Portuario", "Gimnasia Central", "Libertad FC",
	"Real Cordillera", "Independiente Oeste", "Olimpo de la Bahía", "Círculo Andino",
	"Nacional del Litoral", "Vélez del Plata", "Argentinos del Este",
}

var firstNames = []string{
	"Lucas", "Mateo", "Santiago", "Benjamín", "Joaquín", "Tomás", "Agustín",
	"Franco", "Nicolás", "Ignacio", "Bruno", "Thiago", "Emiliano", "Gonzalo",
	"Facundo", "Ramiro", "Esteban", "Marcos", "Julián", "Sebastián",
}

var lastNames = []string{
	"González", "Rodríguez", "Fernández", "López", "Martínez", "Pérez",
	"Sánchez", "Romero", "Díaz", "Álvarez", "Torres", "Ruiz", "Ramírez",
	"Flores", "Acosta", "Benítez", "Medina", "Herrera", "Aguirre", "Molina",
}

// NewSeasonSnapshot builds a fresh 20-team season: the user's club plus
// 19 AI clubs split into two zones, a full home-and-away fixture per
// zone, generated squads, a default stadium and a starter merchandising
// catalog. The seed makes generation reproducible.
func NewSeasonSnapshot(teamID, teamName, stadiumName string, seed int64) models.SeasonSnapshot {
	rng := rand.New(rand.NewSource(seed))

	teamIDs := []string{teamID}
	squads := map[string]*models.Squad{teamID: generateSquad(rng, teamID)}
	for range aiClubNames {
		id := uuid.NewString()
		teamIDs = append(teamIDs, id)
		squads[id] = generateSquad(rng, id)
	}

	zoneA := teamIDs[:10]
	zoneB := teamIDs[10:]

	fixture := mergeZoneFixtures(generateFullSeason(zoneA), generateFullSeason(zoneB))

	if stadiumName == "" {
		stadiumName = fmt.Sprintf("Estadio %s", teamName)
	}

	// Initial funding arrives as a transaction so the budget stays the
	// exact running sum of the ledger from day one.
	funding := models.Transaction{
		Date:        time.Now(),
		Description: "Season start funding",
		Amount:      10_000_000,
		Category:    models.TransactionOther,
	}

	return models.SeasonSnapshot{
		TeamID:       teamID,
		CurrentRound: 1,
		Fixture:      fixture,
		SquadsByTeam: squads,
		PlayerLedger: map[string]*models.PlayerState{},
		StandingGroups: map[string][]string{
			"zone-a": zoneA,
			"zone-b": zoneB,
		},
		Stadium: models.Stadium{
			Name:        stadiumName,
			Capacity:    20000,
			TicketPrice: 2500,
		},
		Finances: models.Finances{
			Budget:       funding.Amount,
			Transactions: []models.Transaction{funding},
		},
		Merchandising: models.Merchandising{Products: []models.Product{
			{ID: uuid.NewString(), Name: "Home shirt", UnitCost: 1200, SellingPrice: 3500, Stock: 800},
			{ID: uuid.NewString(), Name: "Scarf", UnitCost: 300, SellingPrice: 900, Stock: 1200},
			{ID: uuid.NewString(), Name: "Cap", UnitCost: 400, SellingPrice: 1100, Stock: 600},
		}},
		StaffMedicLevel: 1,
		MatchPhase:      models.PhasePreMatch,
	}
}

// generateSquad builds a 1-4-4-2 starting eleven plus five reserves
func generateSquad(rng *rand.Rand, teamID string) *models.Squad {
	squad := &models.Squad{TeamID: teamID}

	starterPositions := []models.Position{models.PositionGoalkeeper}
	for i := 0; i < 4; i++ {
		starterPositions = append(starterPositions, models.PositionDefender)
	}
	for i := 0; i < 4; i++ {
		starterPositions = append(starterPositions, models.PositionMidfielder)
	}
	starterPositions = append(starterPositions, models.PositionForward, models.PositionForward)

	for _, pos := range starterPositions {
		squad.Starters = append(squad.Starters, generatePlayer(rng, teamID, pos))
	}

	reservePositions := []models.Position{
		models.PositionGoalkeeper, models.PositionDefender,
		models.PositionMidfielder, models.PositionMidfielder, models.PositionForward,
	}
	for _, pos := range reservePositions {
		squad.Reserves = append(squad.Reserves, generatePlayer(rng, teamID, pos))
	}

	return squad
}

func generatePlayer(rng *rand.Rand, teamID string, pos models.Position) models.Player {
	skill := func() int { return 40 + rng.Intn(51) } // 40-90

	attrs := &models.Attributes{
		Goalkeeping: skill(),
		Defense:     skill(),
		Midfield:    skill(),
		Attack:      skill(),
		Speed:       skill(),
	}

	return models.Player{
		ID:         uuid.NewString(),
		Name:       fmt.Sprintf("%s %s", firstNames[rng.Intn(len(firstNames))], lastNames[rng.Intn(len(lastNames))]),
		Position:   pos,
		TeamID:     teamID,
		Attributes: attrs,
		Age:        17 + rng.Intn(19),
	}
}

// generateRoundRobin builds a single round-robin via the circle method:
// n-1 rounds of n/2 matches for an even field.
func generateRoundRobin(teamIDs []string) [][]models.Match {
	ids := make([]string, len(teamIDs))
	copy(ids, teamIDs)
	n := len(ids)
	if n%2 != 0 {
		ids = append(ids, "") // bye slot
		n++
	}

	rounds := make([][]models.Match, n-1)
	for i := 0; i < n-1; i++ {
		round := make([]models.Match, 0, n/2)
		for j := 0; j < n/2; j++ {
			home, away := ids[j], ids[n-1-j]
			if home == "" || away == "" {
				continue
			}
			round = append(round, models.Match{HomeTeamID: home, AwayTeamID: away})
		}
		rounds[i] = round

		// Rotate everything except the first slot
		last := ids[n-1]
		copy(ids[2:], ids[1:n-1])
		ids[1] = last
	}

	return rounds
}

// generateFullSeason doubles the round robin with home and away swapped
// in the second half.
func generateFullSeason(teamIDs []string) [][]models.Match {
	firstHalf := generateRoundRobin(teamIDs)
	season := make([][]models.Match, 0, len(firstHalf)*2)
	season = append(season, firstHalf...)
	for _, round := range firstHalf {
		swapped := make([]models.Match, len(round))
		for i, m := range round {
			swapped[i] = models.Match{HomeTeamID: m.AwayTeamID, AwayTeamID: m.HomeTeamID}
		}
		season = append(season, swapped)
	}
	return season
}

// mergeZoneFixtures interleaves the two zones' schedules into shared
// numbered rounds: round k holds every zone's k-th matchday.
func mergeZoneFixtures(zones ...[][]models.Match) []models.Round {
	maxRounds := 0
	for _, zone := range zones {
		if len(zone) > maxRounds {
			maxRounds = len(zone)
		}
	}

	fixture := make([]models.Round, maxRounds)
	for i := 0; i < maxRounds; i++ {
		round := models.Round{Number: i + 1}
		for _, zone := range zones {
			if i < len(zone) {
				round.Matches = append(round.Matches, zone[i]...)
			}
		}
		fixture[i] = round
	}
	return fixture
}
