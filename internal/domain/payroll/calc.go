package payroll

import (
	"time"

	"restopos/internal/domain/attendance"
	"restopos/internal/domain/orders"
	"restopos/internal/domain/staff"
)

// Inputs carries everything a settlement computation needs, so Compute
// stays a pure function over snapshots.
type Inputs struct {
	EmployeeID string
	Policy     staff.CompensationPolicy
	HireDate   string
	Records    []attendance.Record
	Orders     []orders.Order
	AsOf       time.Time
	WindowDays int
}

// Compute derives the settlement for the trailing window ending at
// AsOf (inclusive).
//
// Base salary counts distinct attendance days for daily employees and
// closed-record hours for hourly ones. Benefits are prorated against a
// 30-day month. The absence penalty applies to every scheduled
// (non-rest) day in the window without an attendance record; days
// before the hire date are exempt. The late penalty applies once per
// record whose clock-in is after the scheduled shift start.
func Compute(in Inputs) Settlement {
	var out Settlement

	out.DaysWorked = attendance.DistinctDays(in.Records)
	out.HoursWorked = attendance.TotalHours(in.Records)

	if in.Policy.PaymentType == staff.PaymentTypeDaily {
		out.BaseSalary = float64(out.DaysWorked) * in.Policy.DailyRate
	} else {
		out.BaseSalary = out.HoursWorked * in.Policy.HourlyRate
	}

	out.Benefits = in.Policy.MonthlyBenefits / BenefitsProrationDays * float64(in.WindowDays)

	windowStart := startOfDay(in.AsOf).AddDate(0, 0, -(in.WindowDays - 1))
	out.Tips = SumTips(in.Orders, in.EmployeeID, windowStart, in.AsOf.Add(time.Nanosecond))

	recorded := map[string]struct{}{}
	for _, record := range in.Records {
		recorded[record.Date] = struct{}{}
	}

	for i := 0; i < in.WindowDays; i++ {
		day := in.AsOf.AddDate(0, 0, -i)
		if in.Policy.IsRestDay(int(day.Weekday())) {
			continue
		}
		key := day.Format(DateLayout)
		if in.HireDate != "" && key < in.HireDate {
			continue
		}
		if _, ok := recorded[key]; !ok {
			out.AbsenceCount++
		}
	}

	if in.Policy.ShiftStartTime != "" && in.Policy.LatePenalty > 0 {
		for _, record := range in.Records {
			scheduled, err := time.ParseInLocation(
				DateLayout+" 15:04",
				record.Date+" "+in.Policy.ShiftStartTime,
				record.ClockIn.Location(),
			)
			if err != nil {
				continue
			}
			if record.ClockIn.After(scheduled) {
				out.LateCount++
			}
		}
	}

	out.Deductions = float64(out.AbsenceCount)*in.Policy.AbsencePenalty +
		float64(out.LateCount)*in.Policy.LatePenalty
	out.Net = out.BaseSalary + out.Benefits + out.Tips - out.Deductions
	return out
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
