package payroll

import "time"

// Payment is one settlement for an employee, keyed by period (the
// settlement date). The (employee, period) pair is unique: a second
// run for the same period is rejected, never duplicated.
type Payment struct {
	ID         string    `json:"id"`
	BranchID   string    `json:"branchId"`
	EmployeeID string    `json:"employeeId"`
	Period     string    `json:"period"`
	BaseSalary float64   `json:"baseSalary"`
	Benefits   float64   `json:"benefits"`
	Tips       float64   `json:"tips"`
	Deductions float64   `json:"deductions"`
	Amount     float64   `json:"amount"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Settlement is the computed breakdown before it is persisted as a
// Payment.
type Settlement struct {
	DaysWorked   int     `json:"daysWorked"`
	HoursWorked  float64 `json:"hoursWorked"`
	BaseSalary   float64 `json:"baseSalary"`
	Benefits     float64 `json:"benefits"`
	Tips         float64 `json:"tips"`
	LateCount    int     `json:"lateCount"`
	AbsenceCount int     `json:"absenceCount"`
	Deductions   float64 `json:"deductions"`
	Net          float64 `json:"net"`
}

type RegisterRow struct {
	EmployeeID   string
	EmployeeName string
	Period       string
	BaseSalary   float64
	Benefits     float64
	Tips         float64
	Deductions   float64
	Amount       float64
	CreatedAt    time.Time
}
