package dashboard

import (
	"testing"
	"time"

	"github.com/krontech/worklog-backend-go/internal/domain/dashboard"
	"github.com/krontech/worklog-backend-go/internal/domain/worklog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestUtilizationRate(t *testing.T) {
	t.Run("full single week", func(t *testing.T) {
		// 40 logged hours against one head over 5 working days.
		assert.Equal(t, 100.0, utilizationRate(40, 1, 5))
	})

	t.Run("half utilized", func(t *testing.T) {
		assert.Equal(t, 50.0, utilizationRate(20, 1, 5))
	})

	t.Run("zero working days yields zero", func(t *testing.T) {
		assert.Equal(t, 0.0, utilizationRate(40, 1, 0))
	})

	t.Run("zero headcount yields zero", func(t *testing.T) {
		assert.Equal(t, 0.0, utilizationRate(40, 0, 5))
	})

	t.Run("team of three at twenty percent", func(t *testing.T) {
		// 24 hours against 3 heads * 5 days * 8 hours = 120 capacity.
		assert.Equal(t, 20.0, utilizationRate(24, 3, 5))
	})
}

func TestBuildPeriodSummary(t *testing.T) {
	logs := []worklog.Worklog{
		{WorkDate: day(2025, time.June, 9), HoursWorked: 8},
		{WorkDate: day(2025, time.June, 10), HoursWorked: 4},
		{WorkDate: day(2025, time.June, 10), HoursWorked: 4},
	}

	summary := buildPeriodSummary(logs, day(2025, time.June, 9), day(2025, time.June, 15))

	assert.Equal(t, 16, summary.TotalHours)
	assert.Equal(t, 2.0, summary.TotalDays)
	assert.Equal(t, 2, summary.DaysWorked)
	assert.Equal(t, 8.0, summary.AverageHoursPerDay)
	assert.Equal(t, "2025-06-09", summary.StartDate)
	assert.Equal(t, "2025-06-15", summary.EndDate)
}

func TestBuildPeriodSummaryEmpty(t *testing.T) {
	summary := buildPeriodSummary(nil, day(2025, time.June, 9), day(2025, time.June, 15))

	assert.Equal(t, 0, summary.TotalHours)
	assert.Equal(t, 0, summary.DaysWorked)
	assert.Equal(t, 0.0, summary.AverageHoursPerDay)
}

func TestBuildTypeBreakdown(t *testing.T) {
	t.Run("percentages sum to one hundred", func(t *testing.T) {
		breakdown := buildTypeBreakdown([]dashboard.TypeHours{
			{TypeName: "Development", Hours: 30},
			{TypeName: "Meeting", Hours: 6},
			{TypeName: "Code Review", Hours: 4},
		})

		require.Len(t, breakdown, 3)
		assert.Equal(t, "Development", breakdown[0].TypeName)
		assert.Equal(t, 75.0, breakdown[0].Percentage)
		assert.Equal(t, 15.0, breakdown[1].Percentage)
		assert.Equal(t, 10.0, breakdown[2].Percentage)

		total := 0.0
		for _, b := range breakdown {
			total += b.Percentage
		}
		assert.Equal(t, 100.0, total)
	})

	t.Run("zero total yields zero percentages", func(t *testing.T) {
		breakdown := buildTypeBreakdown([]dashboard.TypeHours{{TypeName: "Development", Hours: 0}})
		require.Len(t, breakdown, 1)
		assert.Equal(t, 0.0, breakdown[0].Percentage)
	})

	t.Run("no rows yields empty slice", func(t *testing.T) {
		assert.Empty(t, buildTypeBreakdown(nil))
	})
}

func TestBuildRecentWorklogs(t *testing.T) {
	typeName := "Development"
	var logs []worklog.Worklog
	for i := 0; i < 8; i++ {
		logs = append(logs, worklog.Worklog{
			WorkDate:        day(2025, time.June, 16-i),
			HoursWorked:     8,
			WorklogTypeName: &typeName,
		})
	}

	recent := buildRecentWorklogs(logs)

	require.Len(t, recent, 5)
	assert.Equal(t, "2025-06-16", recent[0].Date)
	assert.Equal(t, "2025-06-12", recent[4].Date)
	assert.Equal(t, "Development", recent[0].Type)
}

func TestBuildTeamStatistics(t *testing.T) {
	members := buildTeamMemberSummaries([]dashboard.MemberStats{
		{EmployeeID: "m1", FirstName: "Ana", LastName: "Silva", GradeTitle: "Senior", TotalHours: 40, DaysWorked: 5},
		{EmployeeID: "m2", FirstName: "Budi", LastName: "Santoso", GradeTitle: "Junior", TotalHours: 20, DaysWorked: 3},
	}, 5)

	require.Len(t, members, 2)
	assert.Equal(t, 100.0, members[0].UtilizationRate)
	assert.Equal(t, 50.0, members[1].UtilizationRate)

	stats := buildTeamStatistics(members, 5)
	assert.Equal(t, 2, stats.TeamSize)
	assert.Equal(t, 60, stats.TotalTeamHours)
	assert.Equal(t, 30.0, stats.AverageHoursPerMember)
	assert.Equal(t, 75.0, stats.TeamUtilizationRate)
}

func TestBuildTeamLeadSummaries(t *testing.T) {
	leads := buildTeamLeadSummaries([]dashboard.TeamStats{
		{TeamLeadID: "tl1", TeamLeadName: "Citra Dewi", TeamSize: 2, MemberHours: 56, LeadHours: 40, MembersWithLogs: 2},
	}, 5)

	require.Len(t, leads, 1)
	assert.Equal(t, 96, leads[0].TeamTotalHours)
	// 96 hours against (2 members + the lead) * 5 days * 8 hours.
	assert.Equal(t, 80.0, leads[0].TeamUtilizationRate)
	assert.Equal(t, 2, leads[0].TeamMembersWithLogs)
}

func TestBuildInsights(t *testing.T) {
	t.Run("best and worst with gap", func(t *testing.T) {
		insights := buildInsights([]dashboard.TeamLeadSummary{
			{ID: "tl1", Name: "Citra Dewi", TeamUtilizationRate: 80},
			{ID: "tl2", Name: "Dian Putra", TeamUtilizationRate: 55},
			{ID: "tl3", Name: "Eka Wijaya", TeamUtilizationRate: 92.5},
		})

		require.NotNil(t, insights)
		assert.Equal(t, "tl3", insights.BestTeamID)
		assert.Equal(t, "tl2", insights.WorstTeamID)
		assert.Equal(t, 37.5, insights.UtilizationGap)
	})

	t.Run("single team is both best and worst", func(t *testing.T) {
		insights := buildInsights([]dashboard.TeamLeadSummary{
			{ID: "tl1", Name: "Citra Dewi", TeamUtilizationRate: 80},
		})

		require.NotNil(t, insights)
		assert.Equal(t, insights.BestTeamID, insights.WorstTeamID)
		assert.Equal(t, 0.0, insights.UtilizationGap)
	})

	t.Run("no teams yields nil", func(t *testing.T) {
		assert.Nil(t, buildInsights(nil))
	})
}

func TestBuildDepartmentStats(t *testing.T) {
	// 9 staff after excluding the director, 200 hours over a 5-day week.
	// The same headcount feeds the headline figure, the capacity
	// denominator, and the compliance denominator.
	stats := buildDepartmentStats(9, 2, 200, 8, 5)

	assert.Equal(t, 9, stats.TotalEmployees)
	assert.Equal(t, 2, stats.TotalTeamLeads)
	assert.Equal(t, 200, stats.DepartmentTotalHours)
	assert.Equal(t, utilizationRate(200, 9, 5), stats.DepartmentUtilizationRate)
	assert.Equal(t, 8, stats.EmployeesWithLogs)
	assert.Equal(t, round2(800.0/9), stats.LogComplianceRate)
}
