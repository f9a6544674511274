package payroll

import "errors"

var (
	ErrAlreadyPaid     = errors.New("employee already paid for period")
	ErrPaymentNotFound = errors.New("payroll payment not found")
)
