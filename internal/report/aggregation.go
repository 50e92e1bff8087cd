package report

import (
	"time"

	"timesheet-manager/internal/domain"
)

// WeekGroup is the weekly rollup of a set of timesheets sharing a week start.
// TotalHours is the sum of member totals; member totals are trusted, never
// recomputed from raw entries.
type WeekGroup struct {
	WeekStart  time.Time           `json:"weekStart"`
	TotalHours float64             `json:"totalHours"`
	Members    []*domain.Timesheet `json:"members"`
}

// TimesheetDetail is the drill-down projection for a single timesheet.
type TimesheetDetail struct {
	Owner      domain.Employee    `json:"owner"`
	Entries    []domain.TimeEntry `json:"entries"`
	TotalHours float64            `json:"totalHours"`
}

// GroupByWeek groups a snapshot of timesheets by the calendar date of their
// week start. Two timesheets whose week starts denote the same calendar day
// group together regardless of time-of-day or timezone encoding. Groups
// appear in first-seen order of the input.
func GroupByWeek(timesheets []*domain.Timesheet) []*WeekGroup {
	byKey := make(map[string]*WeekGroup)
	var groups []*WeekGroup

	for _, ts := range timesheets {
		key := domain.DateKey(ts.WeekStart)
		group, ok := byKey[key]
		if !ok {
			group = &WeekGroup{
				WeekStart: domain.NormalizeDate(ts.WeekStart),
			}
			byKey[key] = group
			groups = append(groups, group)
		}
		group.TotalHours += ts.TotalHours
		group.Members = append(group.Members, ts)
	}

	return groups
}

// DetailFor projects a single timesheet into its detail view. Direct
// passthrough, no computation.
func DetailFor(ts *domain.Timesheet) *TimesheetDetail {
	return &TimesheetDetail{
		Owner:      ts.Owner,
		Entries:    ts.Entries,
		TotalHours: ts.TotalHours,
	}
}
