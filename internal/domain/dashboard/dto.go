package dashboard

// ========== FILTERS ==========

// Filters carries the optional date range and narrowing parameters of a
// dashboard request. GroupBy is accepted for forward compatibility and is
// informational only.
type Filters struct {
	StartDate  string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate    string `json:"end_date,omitempty"`   // YYYY-MM-DD
	EmployeeID string `json:"employee_id,omitempty"`
	TeamLeadID string `json:"team_lead_id,omitempty"`
	GroupBy    string `json:"group_by,omitempty"` // employee|worklogType|date|team
}

// ========== COMBINED DASHBOARD ==========

// DashboardResponse is the role-shaped composite view. Team and department
// blocks are only populated for team leads and directors respectively.
type DashboardResponse struct {
	CurrentUser          UserSummary           `json:"current_user"`
	PeriodSummary        PeriodSummary         `json:"period_summary"`
	WorklogTypeBreakdown []TypeBreakdown       `json:"worklog_type_breakdown"`
	RecentWorklogs       []RecentWorklog       `json:"recent_worklogs"`
	TeamMembers          []TeamMemberSummary   `json:"team_members,omitempty"`
	TeamStats            *TeamStatistics       `json:"team_stats,omitempty"`
	TeamLeads            []TeamLeadSummary     `json:"team_leads,omitempty"`
	TeamInsights         *PerformanceInsights  `json:"team_performance_insights,omitempty"`
	DepartmentStats      *DepartmentStatistics `json:"department_stats,omitempty"`
}

type UserSummary struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	Department string `json:"department"`
}

type PeriodSummary struct {
	TotalHours         int     `json:"total_hours"`
	TotalDays          float64 `json:"total_days"`
	DaysWorked         int     `json:"days_worked"`
	AverageHoursPerDay float64 `json:"average_hours_per_day"`
	StartDate          string  `json:"start_date"`
	EndDate            string  `json:"end_date"`
}

type TypeBreakdown struct {
	TypeName   string  `json:"type_name"`
	Hours      int     `json:"hours"`
	Percentage float64 `json:"percentage"`
}

type RecentWorklog struct {
	Date        string  `json:"date"`
	Type        string  `json:"type"`
	Hours       int     `json:"hours"`
	Description *string `json:"description,omitempty"`
	ProjectName *string `json:"project_name,omitempty"`
}

// ========== TEAM LEAD VIEW ==========

type TeamMemberSummary struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Grade           string  `json:"grade"`
	TotalHours      int     `json:"total_hours"`
	DaysWorked      int     `json:"days_worked"`
	UtilizationRate float64 `json:"utilization_rate"`
}

type TeamStatistics struct {
	TeamSize              int     `json:"team_size"`
	TotalTeamHours        int     `json:"total_team_hours"`
	AverageHoursPerMember float64 `json:"average_hours_per_member"`
	TeamUtilizationRate   float64 `json:"team_utilization_rate"`
}

// ========== DIRECTOR VIEW ==========

type TeamLeadSummary struct {
	ID                  string  `json:"id"`
	Name                string  `json:"name"`
	TeamSize            int     `json:"team_size"`
	TeamTotalHours      int     `json:"team_total_hours"`
	TeamUtilizationRate float64 `json:"team_utilization_rate"`
	TeamMembersWithLogs int     `json:"team_members_with_logs"`
}

type PerformanceInsights struct {
	BestTeamID       string  `json:"best_performing_team_id"`
	BestTeamName     string  `json:"best_performing_team_name"`
	BestUtilization  float64 `json:"best_performing_team_utilization"`
	WorstTeamID      string  `json:"worst_performing_team_id"`
	WorstTeamName    string  `json:"worst_performing_team_name"`
	WorstUtilization float64 `json:"worst_performing_team_utilization"`
	UtilizationGap   float64 `json:"utilization_gap"`
}

type DepartmentStatistics struct {
	TotalEmployees            int     `json:"total_employees"`
	TotalTeamLeads            int     `json:"total_team_leads"`
	DepartmentTotalHours      int     `json:"department_total_hours"`
	DepartmentUtilizationRate float64 `json:"department_utilization_rate"`
	EmployeesWithLogs         int     `json:"employees_with_logs"`
	LogComplianceRate         float64 `json:"log_compliance_rate"`
}

// ========== QUICK STATS ==========

// QuickStatsResponse is the lightweight header widget. TeamSize and
// TeamMembersLoggedToday are only set for team leads and directors; the
// director is excluded from both counts.
type QuickStatsResponse struct {
	TodayHours             int  `json:"today_hours"`
	WeekHours              int  `json:"week_hours"`
	RemainingWeekHours     int  `json:"remaining_week_hours"`
	HasLoggedToday         bool `json:"has_logged_today"`
	TeamSize               *int `json:"team_size,omitempty"`
	TeamMembersLoggedToday *int `json:"team_members_logged_today,omitempty"`
}
