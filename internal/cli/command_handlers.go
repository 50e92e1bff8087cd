package cli

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"timesheet-manager/internal/api"
)

// commandHandler implements all subcommands against the API facade
type commandHandler struct {
	api          api.API
	out          io.Writer
	errorHandler *ErrorHandler
}

// newCommandHandler creates a command handler
func newCommandHandler(apiInstance api.API, out io.Writer) *commandHandler {
	return &commandHandler{
		api:          apiInstance,
		out:          out,
		errorHandler: NewErrorHandler(),
	}
}

// createCommand creates a new weekly timesheet
func (h *commandHandler) createCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "create <week-start>",
		Short: "Create a new timesheet for the week containing the given date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ts, err := h.api.CreateTimesheet(cmd.Context(), tokenFromCommand(cmd), api.CreateTimesheetRequest{
				WeekStart: args[0],
			})
			if err != nil {
				return h.errorHandler.Handle("create timesheet", err)
			}

			fmt.Fprintf(h.out, "Created timesheet %s for week of %s\n", ts.ID, ts.WeekStart)
			return nil
		},
	}
}

// addCommand appends a time entry to a timesheet
func (h *commandHandler) addCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add <timesheet-id> <date> <job> <hours>",
		Short: "Add a time entry to an in-progress timesheet",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			hours, err := strconv.ParseFloat(args[3], 64)
			if err != nil {
				return fmt.Errorf("failed to add entry: hours must be a number, got %q", args[3])
			}

			ts, err := h.api.AddEntry(cmd.Context(), tokenFromCommand(cmd), args[0], api.AddEntryRequest{
				Date:    args[1],
				JobName: args[2],
				Hours:   hours,
			})
			if err != nil {
				return h.errorHandler.Handle("add entry", err)
			}

			fmt.Fprintf(h.out, "Added %s: %s (%.2fh), total now %.2fh\n", args[1], args[2], hours, ts.TotalHours)
			return nil
		},
	}
}

// completeCommand locks a timesheet
func (h *commandHandler) completeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "complete <timesheet-id>",
		Short: "Mark a timesheet as completed (cannot be undone)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ts, err := h.api.Complete(cmd.Context(), tokenFromCommand(cmd), args[0])
			if err != nil {
				return h.errorHandler.Handle("complete timesheet", err)
			}

			fmt.Fprintf(h.out, "Completed timesheet %s with %.2f hours\n", ts.ID, ts.TotalHours)
			return nil
		},
	}
}

// listCommand lists the caller's own timesheets
func (h *commandHandler) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your timesheets, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			timesheets, err := h.api.ListMine(cmd.Context(), tokenFromCommand(cmd))
			if err != nil {
				return h.errorHandler.Handle("list timesheets", err)
			}

			if len(timesheets) == 0 {
				fmt.Fprintln(h.out, "No timesheets found")
				return nil
			}

			w := tabwriter.NewWriter(h.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tWEEK\tHOURS\tSTATUS")
			for _, ts := range timesheets {
				fmt.Fprintf(w, "%s\t%s\t%.2f\t%s\n", ts.ID, ts.WeekStart, ts.TotalHours, ts.Status)
			}
			return w.Flush()
		},
	}
}

// allCommand lists every timesheet, manager only
func (h *commandHandler) allCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "List every employee's timesheets (manager only)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			timesheets, err := h.api.ListAll(cmd.Context(), tokenFromCommand(cmd))
			if err != nil {
				return h.errorHandler.Handle("list all timesheets", err)
			}

			if len(timesheets) == 0 {
				fmt.Fprintln(h.out, "No timesheets found")
				return nil
			}

			w := tabwriter.NewWriter(h.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "EMPLOYEE\tWEEK\tHOURS\tSTATUS")
			for _, ts := range timesheets {
				fmt.Fprintf(w, "%s\t%s\t%.2f\t%s\n", ts.Owner.Email, ts.WeekStart, ts.TotalHours, ts.Status)
			}
			return w.Flush()
		},
	}
}

// summaryCommand prints the weekly rollup, manager only
func (h *commandHandler) summaryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show total hours per week across all employees (manager only)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			summaries, err := h.api.WeeklySummary(cmd.Context(), tokenFromCommand(cmd))
			if err != nil {
				return h.errorHandler.Handle("summarize timesheets", err)
			}

			if len(summaries) == 0 {
				fmt.Fprintln(h.out, "No timesheets found")
				return nil
			}

			w := tabwriter.NewWriter(h.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "WEEK\tTOTAL HOURS\tTIMESHEETS")
			for _, summary := range summaries {
				fmt.Fprintf(w, "%s\t%.2f\t%d\n", summary.WeekStart, summary.TotalHours, len(summary.Members))
			}
			return w.Flush()
		},
	}
}

// jobsCommand lists the job catalog
func (h *commandHandler) jobsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "jobs",
		Short: "List the valid job names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := h.api.ListJobs(cmd.Context(), tokenFromCommand(cmd))
			if err != nil {
				return h.errorHandler.Handle("list jobs", err)
			}

			for _, name := range names {
				fmt.Fprintln(h.out, name)
			}
			return nil
		},
	}
}
