package worklog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestEditable(t *testing.T) {
	now := date(2025, time.June, 16)

	cases := []struct {
		name     string
		workDate time.Time
		want     bool
	}{
		{"today", date(2025, time.June, 16), true},
		{"yesterday", date(2025, time.June, 15), true},
		{"exactly seven days ago", date(2025, time.June, 9), true},
		{"eight days ago", date(2025, time.June, 8), false},
		{"a month ago", date(2025, time.May, 16), false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := Worklog{WorkDate: c.workDate}
			assert.Equal(t, c.want, w.Editable(now))
		})
	}
}

func TestEditableIgnoresTimeOfDay(t *testing.T) {
	// A timestamped "now" must behave like its calendar date.
	now := time.Date(2025, time.June, 16, 23, 55, 0, 0, time.UTC)
	w := Worklog{WorkDate: date(2025, time.June, 9)}
	assert.True(t, w.Editable(now))
}

func TestCreateWorklogRequestValidate(t *testing.T) {
	valid := CreateWorklogRequest{
		WorklogTypeID: "3f06af63-a93c-11e4-9797-00505690773f",
		WorkDate:      "2025-06-16",
		HoursWorked:   8,
	}
	assert.NoError(t, valid.Validate())

	t.Run("missing fields", func(t *testing.T) {
		req := CreateWorklogRequest{}
		err := req.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "worklog_type_id")
		assert.Contains(t, err.Error(), "work_date")
		assert.Contains(t, err.Error(), "hours_worked")
	})

	t.Run("bad date format", func(t *testing.T) {
		req := valid
		req.WorkDate = "16/06/2025"
		assert.Error(t, req.Validate())
	})

	t.Run("hours out of range", func(t *testing.T) {
		req := valid
		req.HoursWorked = 9
		assert.Error(t, req.Validate())

		req.HoursWorked = 0
		assert.Error(t, req.Validate())
	})

	t.Run("project name too long", func(t *testing.T) {
		req := valid
		long := string(make([]byte, 201))
		req.ProjectName = &long
		assert.Error(t, req.Validate())
	})
}

func TestUpdateWorklogRequestValidate(t *testing.T) {
	t.Run("hours only is valid", func(t *testing.T) {
		req := UpdateWorklogRequest{HoursWorked: 4}
		assert.NoError(t, req.Validate())
	})

	t.Run("empty type id rejected", func(t *testing.T) {
		empty := " "
		req := UpdateWorklogRequest{WorklogTypeID: &empty, HoursWorked: 4}
		assert.Error(t, req.Validate())
	})

	t.Run("bad optional date rejected", func(t *testing.T) {
		bad := "not-a-date"
		req := UpdateWorklogRequest{WorkDate: &bad, HoursWorked: 4}
		assert.Error(t, req.Validate())
	})
}
