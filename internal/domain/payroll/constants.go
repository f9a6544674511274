package payroll

const (
	StatusPaid = "paid"

	// Benefits are configured per month and prorated over the
	// settlement window against a 30-day month.
	BenefitsProrationDays = 30

	DateLayout = "2006-01-02"
)
