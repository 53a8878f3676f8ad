package worklog

import (
	"fmt"
	"time"

	"github.com/krontech/worklog-backend-go/internal/domain/employee"
	"github.com/krontech/worklog-backend-go/internal/domain/worklog"
	"github.com/krontech/worklog-backend-go/internal/pkg/dateutil"
)

// validateWorkDate enforces the temporal rules: no future dates, and the date
// must fall inside the employee's employment window.
func validateWorkDate(emp *employee.Employee, workDate, now time.Time) error {
	date := dateutil.DateOnly(workDate)
	today := dateutil.DateOnly(now)

	if date.After(today) {
		return worklog.ErrFutureDate
	}
	if date.Before(dateutil.DateOnly(emp.StartDate)) {
		return worklog.ErrBeforeEmployment
	}
	if emp.EndDate != nil && date.After(dateutil.DateOnly(*emp.EndDate)) {
		return worklog.ErrAfterEmployment
	}
	return nil
}

// dayTotals sums hours and counts same-type entries over one day's existing
// worklogs, excluding the entry with skipID (used when revalidating an update
// against its own previous version).
func dayTotals(dayLogs []worklog.Worklog, typeID, skipID string) (totalHours, sameType int) {
	for _, w := range dayLogs {
		if w.ID == skipID {
			continue
		}
		totalHours += w.HoursWorked
		if w.WorklogTypeID == typeID {
			sameType++
		}
	}
	return totalHours, sameType
}

// validateDayQuota enforces the daily 12-hour ceiling and the 3-entries-per-
// type cap against the already-recorded day. It returns the resulting day
// total so the caller can log the over-8-hours advisory.
func validateDayQuota(dayLogs []worklog.Worklog, typeID string, hours int, skipID string) (newTotal int, err error) {
	currentTotal, sameType := dayTotals(dayLogs, typeID, skipID)
	newTotal = currentTotal + hours

	if newTotal > worklog.MaxDailyHours {
		return newTotal, fmt.Errorf(
			"%w: adding %d hours would exceed the maximum of %d hours (current total: %d, maximum additional: %d)",
			worklog.ErrDailyHoursExceeded, hours, worklog.MaxDailyHours,
			currentTotal, worklog.MaxDailyHours-currentTotal,
		)
	}

	if sameType >= worklog.MaxEntriesPerType {
		return newTotal, fmt.Errorf(
			"%w: you already have %d entries of this type for this date, consider updating an existing entry",
			worklog.ErrTooManySameType, sameType,
		)
	}

	return newTotal, nil
}
