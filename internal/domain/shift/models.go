package shift

import "time"

// Totals is one amount per payment channel.
type Totals struct {
	Cash     float64 `json:"cash"`
	Card     float64 `json:"card"`
	Transfer float64 `json:"transfer"`
}

// Report is one cashier's end-of-shift reconciliation. Discrepancies
// are signed: declared minus system, so a shortfall is negative.
type Report struct {
	ID            string    `json:"id"`
	BranchID      string    `json:"branchId"`
	UserID        string    `json:"userId"`
	UserName      string    `json:"userName"`
	EndedAt       time.Time `json:"endedAt"`
	System        Totals    `json:"system"`
	Declared      Totals    `json:"declared"`
	Discrepancies Totals    `json:"discrepancies"`
}
