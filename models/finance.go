package models

import "time"

// TransactionCategory labels ledger entries for reporting
type TransactionCategory string

const (
	TransactionTickets       TransactionCategory = "tickets"
	TransactionMerchandising TransactionCategory = "merchandising"
	TransactionTransfer      TransactionCategory = "transfer"
	TransactionStaff         TransactionCategory = "staff"
	TransactionOther         TransactionCategory = "other"
)

// Transaction is one append-only entry in the club ledger
type Transaction struct {
	Date        time.Time           `json:"date"`
	Description string              `json:"description"`
	Amount      int64               `json:"amount"`
	Category    TransactionCategory `json:"category"`
}

// Finances holds the club budget and its transaction history. Budget is
// always the running sum of transaction amounts since season start.
type Finances struct {
	Budget       int64         `json:"budget"`
	Transactions []Transaction `json:"transactions,omitempty"`
}

// Product is one merchandising catalog item. Stock only decreases by
// units sold here; restocking happens outside the simulation core.
type Product struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	UnitCost     int64  `json:"unit_cost"`
	SellingPrice int64  `json:"selling_price"`
	Stock        int    `json:"stock"`
	UnitsSold    int    `json:"units_sold"`
}

// Merchandising is the club's product catalog
type Merchandising struct {
	Products []Product `json:"products"`
}

// Stadium attributes drive matchday ticket revenue
type Stadium struct {
	Name        string `json:"name,omitempty"`
	Capacity    int    `json:"capacity"`
	TicketPrice int64  `json:"ticket_price"`
}
