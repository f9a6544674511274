package attendance

import "time"

// Record is one clock-in/clock-out pair for an employee on a calendar
// day. It is created on clock-in, mutated once when the clock-out is
// set, and never deleted.
type Record struct {
	ID         string     `json:"id"`
	BranchID   string     `json:"branchId"`
	EmployeeID string     `json:"employeeId"`
	Date       string     `json:"date"`
	ClockIn    time.Time  `json:"clockIn"`
	ClockOut   *time.Time `json:"clockOut,omitempty"`
}

const DateLayout = "2006-01-02"
