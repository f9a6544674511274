package attendance

import (
	"testing"
	"time"
)

func TestHoursWorked(t *testing.T) {
	clockIn := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	clockOut := clockIn.Add(7*time.Hour + 30*time.Minute)

	record := Record{ClockIn: clockIn, ClockOut: &clockOut}
	if got := HoursWorked(record); got != 7.5 {
		t.Fatalf("expected 7.5 hours, got %v", got)
	}
}

func TestHoursWorkedOpenRecord(t *testing.T) {
	record := Record{ClockIn: time.Now()}
	if got := HoursWorked(record); got != 0 {
		t.Fatalf("expected 0 hours for open record, got %v", got)
	}
}

func TestDistinctDays(t *testing.T) {
	records := []Record{
		{Date: "2026-03-02"},
		{Date: "2026-03-02"},
		{Date: "2026-03-03"},
		{Date: "2026-03-05"},
	}
	if got := DistinctDays(records); got != 3 {
		t.Fatalf("expected 3 distinct days, got %d", got)
	}
}

func TestTotalHoursSkipsOpenRecords(t *testing.T) {
	clockIn := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	clockOut := clockIn.Add(8 * time.Hour)

	records := []Record{
		{ClockIn: clockIn, ClockOut: &clockOut},
		{ClockIn: clockIn.AddDate(0, 0, 1)},
	}
	if got := TotalHours(records); got != 8 {
		t.Fatalf("expected 8 hours, got %v", got)
	}
}
