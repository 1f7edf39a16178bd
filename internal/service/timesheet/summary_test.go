package timesheet

import (
	"testing"

	"github.com/bambooclone/hr-backend-go/internal/domain/timesheet"
	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	entries := []timesheet.TimeEntry{
		{Hours: 8, IsBillable: true},
		{Hours: 6.5, IsBillable: true},
		{Hours: 2.5},
		{Hours: 3},
	}

	summary := Summarize(entries)

	assert.Equal(t, 20.0, summary.TotalHours)
	assert.Equal(t, 14.5, summary.BillableHours)
	assert.Equal(t, 5.5, summary.NonBillableHours)
	// 14.5 / 20 = 72.5%, rounded to 73.
	assert.Equal(t, 73, summary.BillablePercentage)
}

func TestSummarizeEmptyWeek(t *testing.T) {
	summary := Summarize(nil)

	assert.Equal(t, 0.0, summary.TotalHours)
	assert.Equal(t, 0, summary.BillablePercentage)
}

func TestSummarizeAllBillable(t *testing.T) {
	entries := []timesheet.TimeEntry{
		{Hours: 7.75, IsBillable: true},
		{Hours: 0.25, IsBillable: true},
	}

	summary := Summarize(entries)

	assert.Equal(t, 8.0, summary.TotalHours)
	assert.Equal(t, 0.0, summary.NonBillableHours)
	assert.Equal(t, 100, summary.BillablePercentage)
}
