package leave

import "github.com/bambooclone/hr-backend-go/internal/domain/leave"

// UsedDaysInYear sums the days of the approved requests that fall inside the
// given calendar year. A request spanning the year boundary charges each day
// to the year it falls in.
func UsedDaysInYear(approved []leave.LeaveRequest, year int) int {
	used := 0
	for _, request := range approved {
		used += request.DaysInYear(year)
	}
	return used
}

// ComputeBalance derives the balance of one leave type for one employee and
// year from the approved requests. Balances are never persisted.
//
// Carry-forward looks back exactly one year: the unused remainder of the
// previous year's allowance, clamped at zero, is added to this year's total.
func ComputeBalance(leaveType leave.LeaveType, approved []leave.LeaveRequest, year int) leave.Balance {
	used := UsedDaysInYear(approved, year)

	total := leaveType.DaysAllowed
	if leaveType.CarryForward {
		usedPrevious := UsedDaysInYear(approved, year-1)
		carried := leaveType.DaysAllowed - usedPrevious
		if carried < 0 {
			carried = 0
		}
		total += carried
	}

	return leave.Balance{
		LeaveTypeID:   leaveType.ID,
		LeaveTypeCode: leaveType.Code,
		LeaveTypeName: leaveType.Name,
		TotalDays:     total,
		UsedDays:      used,
		RemainingDays: total - used,
		CarryForward:  leaveType.CarryForward,
	}
}
