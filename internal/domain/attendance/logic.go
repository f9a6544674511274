package attendance

// HoursWorked returns the fractional hours between clock-in and
// clock-out, or 0 while the record is still open.
func HoursWorked(record Record) float64 {
	if record.ClockOut == nil {
		return 0
	}
	return record.ClockOut.Sub(record.ClockIn).Hours()
}

// DistinctDays counts the distinct calendar days covered by records.
func DistinctDays(records []Record) int {
	seen := map[string]struct{}{}
	for _, record := range records {
		seen[record.Date] = struct{}{}
	}
	return len(seen)
}

// TotalHours sums HoursWorked over all closed records.
func TotalHours(records []Record) float64 {
	var total float64
	for _, record := range records {
		total += HoursWorked(record)
	}
	return total
}
