package staff

import "time"

const (
	PaymentTypeHourly = "hourly"
	PaymentTypeDaily  = "daily"
)

// CompensationPolicy drives the payroll settlement: exactly one of
// HourlyRate/DailyRate is meaningful, selected by PaymentType.
type CompensationPolicy struct {
	PaymentType     string  `json:"paymentType"`
	HourlyRate      float64 `json:"hourlyRate"`
	DailyRate       float64 `json:"dailyRate"`
	WorkdayHours    float64 `json:"workdayHours"`
	ShiftStartTime  string  `json:"shiftStartTime,omitempty"`
	MonthlyBenefits float64 `json:"monthlyBenefits"`
	LatePenalty     float64 `json:"latePenalty"`
	AbsencePenalty  float64 `json:"absencePenalty"`
	RestDays        []int   `json:"restDays"`
}

type Employee struct {
	ID        string             `json:"id"`
	BranchID  string             `json:"branchId"`
	UserID    string             `json:"userId,omitempty"`
	Name      string             `json:"name"`
	Role      string             `json:"role"`
	HireDate  string             `json:"hireDate"`
	Policy    CompensationPolicy `json:"policy"`
	CreatedAt time.Time          `json:"createdAt"`
}

// IsRestDay reports whether the weekday (0=Sunday) is exempt from the
// absence penalty.
func (p CompensationPolicy) IsRestDay(weekday int) bool {
	for _, day := range p.RestDays {
		if day == weekday {
			return true
		}
	}
	return false
}
