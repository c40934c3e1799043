package simulation

import (
	"testing"
	"time"

	"league-manager-system/models"
)

func leagueOf(teamIDs ...string) map[string][]models.StandingRow {
	rows := make([]models.StandingRow, len(teamIDs))
	for i, id := range teamIDs {
		rows[i] = models.StandingRow{TeamID: id}
	}
	return map[string][]models.StandingRow{"zone-a": rows}
}

func twentyTeamLeague(clubID string, clubRank int) map[string][]models.StandingRow {
	ids := make([]string, 20)
	for i := range ids {
		ids[i] = "ai-" + string(rune('a'+i))
	}
	if clubRank >= 1 && clubRank <= 20 {
		ids[clubRank-1] = clubID
	}
	return leagueOf(ids...)
}

func TestSimulateRoundFinances_TicketRevenue(t *testing.T) {
	club := FinanceClub{
		TeamID:  "club",
		Stadium: models.Stadium{Capacity: 20000, TicketPrice: 5000},
	}

	out := SimulateRoundFinances(club, twentyTeamLeague("club", 1), time.Now())

	// rank 1 of 20: occupancy = min(1, 0.9*0.5) = 0.45, attendance 9000
	if len(out.Transactions) != 1 {
		t.Fatalf("transactions = %d, want 1", len(out.Transactions))
	}
	tx := out.Transactions[0]
	if tx.Category != models.TransactionTickets {
		t.Errorf("category = %s, want tickets", tx.Category)
	}
	if tx.Amount != 45_000_000 {
		t.Errorf("ticket revenue = %d, want 45000000", tx.Amount)
	}
	if out.Finances.Budget != 45_000_000 {
		t.Errorf("budget = %d, want 45000000", out.Finances.Budget)
	}
}

func TestSimulateRoundFinances_Merchandising(t *testing.T) {
	club := FinanceClub{
		TeamID:  "club",
		Stadium: models.Stadium{Capacity: 0, TicketPrice: 0},
		Merchandising: models.Merchandising{Products: []models.Product{
			{ID: "p1", Name: "Home shirt", UnitCost: 100, SellingPrice: 300, Stock: 50},
		}},
	}

	out := SimulateRoundFinances(club, twentyTeamLeague("club", 1), time.Now())

	// performanceFactor 1.0: priceEffect = max(0.2, 1-300/500) = 0.4,
	// demand 400, capped by stock at 50 units
	product := out.Merchandising.Products[0]
	if product.Stock != 0 {
		t.Errorf("stock = %d, want 0", product.Stock)
	}
	if product.UnitsSold != 50 {
		t.Errorf("units sold = %d, want 50", product.UnitsSold)
	}

	var merchTx *models.Transaction
	for i := range out.Transactions {
		if out.Transactions[i].Category == models.TransactionMerchandising {
			merchTx = &out.Transactions[i]
		}
	}
	if merchTx == nil {
		t.Fatal("no merchandising transaction produced")
	}
	if merchTx.Amount != 15000 {
		t.Errorf("merch revenue = %d, want 15000", merchTx.Amount)
	}
}

func TestSimulateRoundFinances_BudgetIsRunningSum(t *testing.T) {
	prior := []models.Transaction{
		{Description: "Season sponsorship", Amount: 1_000_000, Category: models.TransactionOther},
		{Description: "Physio hire", Amount: -200_000, Category: models.TransactionStaff},
	}
	club := FinanceClub{
		TeamID:   "club",
		Stadium:  models.Stadium{Capacity: 10000, TicketPrice: 2000},
		Finances: models.Finances{Budget: 800_000, Transactions: prior},
		Merchandising: models.Merchandising{Products: []models.Product{
			{ID: "p1", Name: "Scarf", UnitCost: 50, SellingPrice: 100, Stock: 1000},
		}},
	}

	out := SimulateRoundFinances(club, twentyTeamLeague("club", 5), time.Now())

	var sum int64
	for _, tx := range out.Finances.Transactions {
		sum += tx.Amount
	}
	if out.Finances.Budget != sum {
		t.Errorf("budget %d != transaction sum %d", out.Finances.Budget, sum)
	}
	if len(out.Finances.Transactions) != len(prior)+len(out.Transactions) {
		t.Errorf("ledger length = %d, want %d", len(out.Finances.Transactions), len(prior)+len(out.Transactions))
	}
	if len(club.Finances.Transactions) != 2 {
		t.Error("input transaction list was mutated")
	}
	if club.Merchandising.Products[0].Stock != 1000 {
		t.Error("input product stock was mutated")
	}
}

func TestSimulateRoundFinances_UnrankedClubIsMidTable(t *testing.T) {
	club := FinanceClub{
		TeamID:  "club",
		Stadium: models.Stadium{Capacity: 10000, TicketPrice: 1000},
	}

	out := SimulateRoundFinances(club, twentyTeamLeague("someone-else", 0), time.Now())

	// rank 10 of 20: performance 0.55, occupancy 0.72*0.9 = 0.648,
	// attendance 6480
	if got := out.Transactions[0].Amount; got != 6_480_000 {
		t.Errorf("ticket revenue = %d, want 6480000", got)
	}
}

func TestClubRank_CombinesGroupsInNameOrder(t *testing.T) {
	standings := map[string][]models.StandingRow{
		"zone-b": {{TeamID: "b1"}, {TeamID: "b2"}},
		"zone-a": {{TeamID: "a1"}, {TeamID: "a2"}},
	}

	rank, total := clubRank("b1", standings)
	if total != 4 {
		t.Errorf("total teams = %d, want 4", total)
	}
	if rank != 3 {
		t.Errorf("rank = %d, want 3 (zone-a rows come first)", rank)
	}
}

func TestSimulateRoundFinances_ZeroCostProductStaysSane(t *testing.T) {
	club := FinanceClub{
		TeamID:  "t1",
		Stadium: models.Stadium{Capacity: 10000, TicketPrice: 1000},
		Merchandising: models.Merchandising{Products: []models.Product{
			{ID: "giveaway", Name: "Matchday flyer", UnitCost: 0, SellingPrice: 0, Stock: 10},
		}},
	}

	out := SimulateRoundFinances(club, twentyTeamLeague("t1", 1), time.Unix(1_700_000_000, 0))

	p := out.Merchandising.Products[0]
	if p.UnitsSold < 0 {
		t.Fatalf("units sold = %d, want non-negative", p.UnitsSold)
	}
	if p.Stock < 0 || p.Stock > 10 {
		t.Fatalf("stock = %d, want within [0,10]", p.Stock)
	}
	if p.Stock != 10-p.UnitsSold {
		t.Errorf("stock = %d, units sold = %d: stock must only decrease by sales", p.Stock, p.UnitsSold)
	}
	// Free product at full demand floor: all 10 units move for no revenue
	if p.UnitsSold != 10 {
		t.Errorf("units sold = %d, want 10 (demand floor exceeds stock)", p.UnitsSold)
	}
	if got := out.Transactions[1].Amount; got != 0 {
		t.Errorf("merch revenue = %d, want 0 for a free product", got)
	}
}
