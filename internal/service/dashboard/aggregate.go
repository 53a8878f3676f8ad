package dashboard

import (
	"math"
	"time"

	"github.com/krontech/worklog-backend-go/internal/domain/dashboard"
	"github.com/krontech/worklog-backend-go/internal/domain/worklog"
)

const recentWorklogLimit = 5

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// utilizationRate is logged hours as a percentage of headcount capacity over
// the working days in range. Capacity is 8 hours per working day per head;
// a zero capacity yields 0 rather than dividing.
func utilizationRate(hours, headcount, workingDays int) float64 {
	capacity := headcount * workingDays * worklog.StandardDailyHours
	if capacity == 0 {
		return 0
	}
	return round2(float64(hours) * 100 / float64(capacity))
}

func sumHours(logs []worklog.Worklog) int {
	total := 0
	for _, w := range logs {
		total += w.HoursWorked
	}
	return total
}

func distinctDays(logs []worklog.Worklog) int {
	seen := make(map[string]struct{}, len(logs))
	for _, w := range logs {
		seen[w.WorkDate.Format("2006-01-02")] = struct{}{}
	}
	return len(seen)
}

func buildPeriodSummary(logs []worklog.Worklog, start, end time.Time) dashboard.PeriodSummary {
	totalHours := sumHours(logs)
	daysWorked := distinctDays(logs)

	avg := 0.0
	if daysWorked > 0 {
		avg = round2(float64(totalHours) / float64(daysWorked))
	}

	return dashboard.PeriodSummary{
		TotalHours:         totalHours,
		TotalDays:          round2(float64(totalHours) / float64(worklog.StandardDailyHours)),
		DaysWorked:         daysWorked,
		AverageHoursPerDay: avg,
		StartDate:          start.Format("2006-01-02"),
		EndDate:            end.Format("2006-01-02"),
	}
}

// buildTypeBreakdown converts hours-by-type rows to percentages of the total.
// Rows arrive busiest first and keep that order.
func buildTypeBreakdown(rows []dashboard.TypeHours) []dashboard.TypeBreakdown {
	total := 0
	for _, row := range rows {
		total += row.Hours
	}

	breakdown := make([]dashboard.TypeBreakdown, 0, len(rows))
	for _, row := range rows {
		pct := 0.0
		if total > 0 {
			pct = round2(float64(row.Hours) * 100 / float64(total))
		}
		breakdown = append(breakdown, dashboard.TypeBreakdown{
			TypeName:   row.TypeName,
			Hours:      row.Hours,
			Percentage: pct,
		})
	}
	return breakdown
}

// buildRecentWorklogs takes the first entries of an already date-descending
// list.
func buildRecentWorklogs(logs []worklog.Worklog) []dashboard.RecentWorklog {
	limit := recentWorklogLimit
	if len(logs) < limit {
		limit = len(logs)
	}

	recent := make([]dashboard.RecentWorklog, 0, limit)
	for _, w := range logs[:limit] {
		typeName := ""
		if w.WorklogTypeName != nil {
			typeName = *w.WorklogTypeName
		}
		recent = append(recent, dashboard.RecentWorklog{
			Date:        w.WorkDate.Format("2006-01-02"),
			Type:        typeName,
			Hours:       w.HoursWorked,
			Description: w.Description,
			ProjectName: w.ProjectName,
		})
	}
	return recent
}

func buildTeamMemberSummaries(rows []dashboard.MemberStats, workingDays int) []dashboard.TeamMemberSummary {
	members := make([]dashboard.TeamMemberSummary, 0, len(rows))
	for _, row := range rows {
		members = append(members, dashboard.TeamMemberSummary{
			ID:              row.EmployeeID,
			Name:            row.FirstName + " " + row.LastName,
			Grade:           row.GradeTitle,
			TotalHours:      row.TotalHours,
			DaysWorked:      row.DaysWorked,
			UtilizationRate: utilizationRate(row.TotalHours, 1, workingDays),
		})
	}
	return members
}

func buildTeamStatistics(members []dashboard.TeamMemberSummary, workingDays int) *dashboard.TeamStatistics {
	teamSize := len(members)
	totalHours := 0
	for _, m := range members {
		totalHours += m.TotalHours
	}

	avg := 0.0
	if teamSize > 0 {
		avg = round2(float64(totalHours) / float64(teamSize))
	}

	return &dashboard.TeamStatistics{
		TeamSize:              teamSize,
		TotalTeamHours:        totalHours,
		AverageHoursPerMember: avg,
		TeamUtilizationRate:   utilizationRate(totalHours, teamSize, workingDays),
	}
}

// buildTeamLeadSummaries computes per-team utilization with the lead counted
// as a team head alongside the members.
func buildTeamLeadSummaries(rows []dashboard.TeamStats, workingDays int) []dashboard.TeamLeadSummary {
	leads := make([]dashboard.TeamLeadSummary, 0, len(rows))
	for _, row := range rows {
		teamHours := row.LeadHours + row.MemberHours
		leads = append(leads, dashboard.TeamLeadSummary{
			ID:                  row.TeamLeadID,
			Name:                row.TeamLeadName,
			TeamSize:            row.TeamSize,
			TeamTotalHours:      teamHours,
			TeamUtilizationRate: utilizationRate(teamHours, row.TeamSize+1, workingDays),
			TeamMembersWithLogs: row.MembersWithLogs,
		})
	}
	return leads
}

// buildInsights names the best and worst performing team by utilization.
// Needs at least one team; a single team is both best and worst with gap 0.
func buildInsights(leads []dashboard.TeamLeadSummary) *dashboard.PerformanceInsights {
	if len(leads) == 0 {
		return nil
	}

	best, worst := leads[0], leads[0]
	for _, l := range leads[1:] {
		if l.TeamUtilizationRate > best.TeamUtilizationRate {
			best = l
		}
		if l.TeamUtilizationRate < worst.TeamUtilizationRate {
			worst = l
		}
	}

	return &dashboard.PerformanceInsights{
		BestTeamID:       best.ID,
		BestTeamName:     best.Name,
		BestUtilization:  best.TeamUtilizationRate,
		WorstTeamID:      worst.ID,
		WorstTeamName:    worst.Name,
		WorstUtilization: worst.TeamUtilizationRate,
		UtilizationGap:   round2(best.TeamUtilizationRate - worst.TeamUtilizationRate),
	}
}

// buildDepartmentStats aggregates the director's department.
// totalEmployees already excludes the director, who is not counted in the
// headline figure, the capacity denominator, or either compliance count.
func buildDepartmentStats(totalEmployees, totalTeamLeads, totalHours, employeesWithLogs, workingDays int) *dashboard.DepartmentStatistics {
	compliance := 0.0
	if totalEmployees > 0 {
		compliance = round2(float64(employeesWithLogs) * 100 / float64(totalEmployees))
	}

	return &dashboard.DepartmentStatistics{
		TotalEmployees:            totalEmployees,
		TotalTeamLeads:            totalTeamLeads,
		DepartmentTotalHours:      totalHours,
		DepartmentUtilizationRate: utilizationRate(totalHours, totalEmployees, workingDays),
		EmployeesWithLogs:         employeesWithLogs,
		LogComplianceRate:         compliance,
	}
}
