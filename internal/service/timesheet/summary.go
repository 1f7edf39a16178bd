package timesheet

import (
	"math"

	"github.com/bambooclone/hr-backend-go/internal/domain/timesheet"
)

// Summarize aggregates a week's entries. The billable percentage is rounded
// to the nearest whole percent and reported as 0 for an empty week.
func Summarize(entries []timesheet.TimeEntry) timesheet.WeeklySummary {
	var total, billable float64
	for _, entry := range entries {
		total += entry.Hours
		if entry.IsBillable {
			billable += entry.Hours
		}
	}

	summary := timesheet.WeeklySummary{
		TotalHours:       total,
		BillableHours:    billable,
		NonBillableHours: total - billable,
	}
	if total > 0 {
		summary.BillablePercentage = int(math.Round(billable / total * 100))
	}

	return summary
}
