package api

import (
	"timesheet-manager/internal/domain"
	"timesheet-manager/internal/report"
)

// OwnerResponse identifies a timesheet owner on the wire
type OwnerResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// EntryResponse is the wire shape of a single time entry
type EntryResponse struct {
	Date    string  `json:"date"`
	JobName string  `json:"jobName"`
	Hours   float64 `json:"hours"`
}

// TimesheetResponse is the wire shape of a full timesheet
type TimesheetResponse struct {
	ID         string          `json:"id"`
	Owner      OwnerResponse   `json:"owner"`
	WeekStart  string          `json:"weekStart"`
	Entries    []EntryResponse `json:"entries"`
	TotalHours float64         `json:"totalHours"`
	Status     string          `json:"status"`
}

// CreateTimesheetRequest carries the input for timesheet creation
type CreateTimesheetRequest struct {
	WeekStart string `json:"weekStart"`
}

// AddEntryRequest carries the input for appending an entry
type AddEntryRequest struct {
	Date    string  `json:"date"`
	JobName string  `json:"jobName"`
	Hours   float64 `json:"hours"`
}

// WeekSummaryResponse is one row of the manager's weekly rollup
type WeekSummaryResponse struct {
	WeekStart  string               `json:"weekStart"`
	TotalHours float64              `json:"totalHours"`
	Members    []*TimesheetResponse `json:"members"`
}

// toTimesheetResponse converts a domain timesheet into its wire shape
func toTimesheetResponse(ts *domain.Timesheet) *TimesheetResponse {
	entries := make([]EntryResponse, len(ts.Entries))
	for i, entry := range ts.Entries {
		entries[i] = EntryResponse{
			Date:    domain.DateKey(entry.Date),
			JobName: entry.JobName,
			Hours:   entry.Hours,
		}
	}

	return &TimesheetResponse{
		ID: ts.ID,
		Owner: OwnerResponse{
			ID:    ts.Owner.ID,
			Email: ts.Owner.Email,
		},
		WeekStart:  domain.DateKey(ts.WeekStart),
		Entries:    entries,
		TotalHours: ts.TotalHours,
		Status:     string(ts.Status),
	}
}

// toTimesheetResponses converts a slice of domain timesheets
func toTimesheetResponses(timesheets []*domain.Timesheet) []*TimesheetResponse {
	responses := make([]*TimesheetResponse, len(timesheets))
	for i, ts := range timesheets {
		responses[i] = toTimesheetResponse(ts)
	}
	return responses
}

// toWeekSummaryResponses converts aggregation groups into their wire shape
func toWeekSummaryResponses(groups []*report.WeekGroup) []*WeekSummaryResponse {
	responses := make([]*WeekSummaryResponse, len(groups))
	for i, group := range groups {
		responses[i] = &WeekSummaryResponse{
			WeekStart:  domain.DateKey(group.WeekStart),
			TotalHours: group.TotalHours,
			Members:    toTimesheetResponses(group.Members),
		}
	}
	return responses
}
