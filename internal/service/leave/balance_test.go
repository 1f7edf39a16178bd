package leave

import (
	"testing"
	"time"

	"github.com/bambooclone/hr-backend-go/internal/domain/leave"
	"github.com/stretchr/testify/assert"
)

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func approvedRequest(typeID, start, end string) leave.LeaveRequest {
	return leave.LeaveRequest{
		LeaveTypeID: typeID,
		StartDate:   day(start),
		EndDate:     day(end),
		Status:      leave.RequestStatusApproved,
	}
}

func TestUsedDaysInYear(t *testing.T) {
	approved := []leave.LeaveRequest{
		approvedRequest("al", "2024-03-04", "2024-03-08"),
		approvedRequest("al", "2024-12-30", "2025-01-02"),
	}

	assert.Equal(t, 7, UsedDaysInYear(approved, 2024))
	assert.Equal(t, 2, UsedDaysInYear(approved, 2025))
	assert.Equal(t, 0, UsedDaysInYear(approved, 2023))
}

func TestComputeBalanceWithoutCarryForward(t *testing.T) {
	lt := leave.LeaveType{ID: "al", Code: "AL", Name: "Annual Leave", DaysAllowed: 12}
	approved := []leave.LeaveRequest{
		approvedRequest("al", "2024-06-03", "2024-06-07"),
	}

	balance := ComputeBalance(lt, approved, 2024)

	assert.Equal(t, 12, balance.TotalDays)
	assert.Equal(t, 5, balance.UsedDays)
	assert.Equal(t, 7, balance.RemainingDays)
	assert.False(t, balance.CarryForward)
}

func TestComputeBalanceCarryForward(t *testing.T) {
	lt := leave.LeaveType{ID: "al", Code: "AL", Name: "Annual Leave", DaysAllowed: 10, CarryForward: true}

	// 4 of 10 days used in 2023 leaves 6 to carry into 2024.
	approved := []leave.LeaveRequest{
		approvedRequest("al", "2023-08-07", "2023-08-10"),
		approvedRequest("al", "2024-02-05", "2024-02-07"),
	}

	balance := ComputeBalance(lt, approved, 2024)

	assert.Equal(t, 16, balance.TotalDays)
	assert.Equal(t, 3, balance.UsedDays)
	assert.Equal(t, 13, balance.RemainingDays)
	assert.True(t, balance.CarryForward)
}

func TestComputeBalanceCarryForwardClampedAtZero(t *testing.T) {
	lt := leave.LeaveType{ID: "al", Code: "AL", DaysAllowed: 10, CarryForward: true}

	// Previous year fully used plus a boundary-spanning request; the carried
	// remainder never goes negative.
	approved := []leave.LeaveRequest{
		approvedRequest("al", "2023-01-02", "2023-01-11"),
		approvedRequest("al", "2023-12-29", "2024-01-02"),
	}

	balance := ComputeBalance(lt, approved, 2024)

	assert.Equal(t, 10, balance.TotalDays)
	assert.Equal(t, 2, balance.UsedDays)
	assert.Equal(t, 8, balance.RemainingDays)
}

func TestComputeBalanceLooksBackExactlyOneYear(t *testing.T) {
	lt := leave.LeaveType{ID: "al", Code: "AL", DaysAllowed: 10, CarryForward: true}

	// Usage two years back must not influence the carry into 2024.
	approved := []leave.LeaveRequest{
		approvedRequest("al", "2022-03-07", "2022-03-11"),
	}

	balance := ComputeBalance(lt, approved, 2024)

	assert.Equal(t, 20, balance.TotalDays)
	assert.Equal(t, 0, balance.UsedDays)
	assert.Equal(t, 20, balance.RemainingDays)
}
