package worklog

import (
	"time"

	"github.com/krontech/worklog-backend-go/internal/pkg/dateutil"
)

// Business rule constants for daily worklog quotas.
const (
	MinEntryHours      = 1
	MaxEntryHours      = 8
	MaxDailyHours      = 12
	StandardDailyHours = 8
	MaxEntriesPerType  = 3
	EditableWindowDays = 7
)

type Worklog struct {
	ID            string
	EmployeeID    string
	WorklogTypeID string
	WorkDate      time.Time
	HoursWorked   int
	Description   *string
	ProjectName   *string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// DTO
	EmployeeName    *string
	WorklogTypeName *string
}

// Editable reports whether the entry may still be changed: the work date must
// fall within the trailing 7-day window, today included.
func (w *Worklog) Editable(now time.Time) bool {
	cutoff := dateutil.DateOnly(now).AddDate(0, 0, -EditableWindowDays)
	return !dateutil.DateOnly(w.WorkDate).Before(cutoff)
}

// WorkDays converts the entry's hours to nominal 8-hour days.
func (w *Worklog) WorkDays() float64 {
	return float64(w.HoursWorked) / 8.0
}
