package simulation

import (
	"fmt"
	"math"
	"sort"
	"time"

	"league-manager-system/models"
)

// FinanceClub is the club-side input to the financial round: current
// rank comes separately from the standings.
type FinanceClub struct {
	TeamID        string
	Stadium       models.Stadium
	Finances      models.Finances
	Merchandising models.Merchandising
}

// FinanceOutcome carries the updated finances and catalog plus the
// transactions produced this round (already appended to Finances).
type FinanceOutcome struct {
	Finances      models.Finances
	Merchandising models.Merchandising
	Transactions  []models.Transaction
}

// SimulateRoundFinances computes matchday ticket and merchandising
// revenue from the club's current league position and appends one ledger
// transaction per revenue source. Inputs are copied, never mutated.
//
// Ticket revenue scales occupancy with league rank and dampens it by
// ticket price; merchandising demand scales with rank and the selling
// price relative to five times unit cost. A club missing from the
// standings is treated as mid-table.
func SimulateRoundFinances(club FinanceClub, standings map[string][]models.StandingRow, now time.Time) FinanceOutcome {
	rank, totalTeams := clubRank(club.TeamID, standings)
	performance := 1 - float64(rank-1)/float64(totalTeams)

	var transactions []models.Transaction

	// Ticket revenue
	baseOccupancy := 0.5 + 0.4*performance
	priceFactor := math.Max(0.3, 1-float64(club.Stadium.TicketPrice)/10000)
	occupancy := math.Min(1, baseOccupancy*priceFactor)
	attendance := int(math.Round(float64(club.Stadium.Capacity) * occupancy))
	ticketRevenue := int64(attendance) * club.Stadium.TicketPrice

	transactions = append(transactions, models.Transaction{
		Date:        now,
		Description: fmt.Sprintf("Matchday gate receipts (%d tickets)", attendance),
		Amount:      ticketRevenue,
		Category:    models.TransactionTickets,
	})

	// Merchandising revenue
	products := make([]models.Product, len(club.Merchandising.Products))
	copy(products, club.Merchandising.Products)
	for i := range products {
		p := &products[i]
		// A zero unit cost would make the ratio undefined; such products
		// sell at the demand floor.
		priceEffect := 0.2
		if p.UnitCost > 0 {
			priceEffect = math.Max(0.2, 1-float64(p.SellingPrice)/(5*float64(p.UnitCost)))
		}
		demand := int(math.Round(1000 * performance * priceEffect))
		if demand < 0 {
			demand = 0
		}
		unitsSold := demand
		if unitsSold > p.Stock {
			unitsSold = p.Stock
		}
		revenue := int64(unitsSold) * p.SellingPrice
		p.Stock -= unitsSold
		p.UnitsSold += unitsSold

		transactions = append(transactions, models.Transaction{
			Date:        now,
			Description: fmt.Sprintf("Merchandise sales: %s (%d units)", p.Name, unitsSold),
			Amount:      revenue,
			Category:    models.TransactionMerchandising,
		})
	}

	finances := models.Finances{Budget: club.Finances.Budget}
	finances.Transactions = make([]models.Transaction, 0, len(club.Finances.Transactions)+len(transactions))
	finances.Transactions = append(finances.Transactions, club.Finances.Transactions...)
	finances.Transactions = append(finances.Transactions, transactions...)
	for _, tx := range transactions {
		finances.Budget += tx.Amount
	}

	return FinanceOutcome{
		Finances:      finances,
		Merchandising: models.Merchandising{Products: products},
		Transactions:  transactions,
	}
}

// clubRank is the club's 1-based position across all groups combined,
// groups concatenated in name order for determinism. Unknown clubs land
// mid-table; an empty table falls back to a 20-team league.
func clubRank(teamID string, standings map[string][]models.StandingRow) (rank, totalTeams int) {
	names := make([]string, 0, len(standings))
	for name := range standings {
		names = append(names, name)
	}
	sort.Strings(names)

	position := 0
	found := false
	for _, name := range names {
		for _, row := range standings[name] {
			totalTeams++
			if !found && row.TeamID == teamID {
				position = totalTeams
				found = true
			}
		}
	}

	if totalTeams == 0 {
		totalTeams = 20
	}
	if !found {
		position = totalTeams / 2
	}
	if position < 1 {
		position = 1
	}
	return position, totalTeams
}
