package cli

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"timesheet-manager/internal/api"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd *cobra.Command
	api api.API
	out io.Writer
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(apiInstance api.API, out io.Writer) *RootCommand {
	root := &RootCommand{
		api: apiInstance,
		out: out,
	}

	root.cmd = &cobra.Command{
		Use:   "tsm",
		Short: "A command-line weekly timesheet manager",
		Long: `Timesheet Manager (tsm) tracks employee work hours on a weekly basis and
lets managers review aggregated submissions.

EXAMPLES:
  tsm create 2024-06-03                        # Create a timesheet for that week
  tsm add <id> 2024-06-03 ProjectA 8           # Add an entry to a timesheet
  tsm complete <id>                            # Lock a timesheet (irreversible)
  tsm list                                     # List your timesheets
  tsm all                                      # List every timesheet (manager)
  tsm summary                                  # Weekly rollup (manager)
  tsm jobs                                     # Show the job catalog

AUTHENTICATION:
  Every command needs a credential token, from --token or TSM_TOKEN.
  A fresh database is seeded with two demo accounts:
    demo-employee-token   (employee role)
    demo-manager-token    (manager role)

CONFIGURATION:
  TSM_DB_DIR                Database directory (default: ~/.tsm)
  TSM_DB_FILENAME           Database filename (default: tsm.db)
  TSM_DB_QUERY_TIMEOUT      Query timeout (default: 10s)
  TSM_DB_WRITE_TIMEOUT      Write timeout (default: 5s)
  TSM_WEEK_ANCHOR           First day of the timesheet week (default: monday)
  TSM_CONFIG_FILE           Optional YAML config file layered under env vars
  TSM_APP_TIMEOUT           Application timeout (default: 60s)`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.cmd.PersistentFlags().String("token", "", "Credential token (overrides TSM_TOKEN)")

	root.addSubcommands()

	return root
}

// Execute runs the root command with the given context and arguments
func (r *RootCommand) Execute(ctx context.Context, args []string) error {
	r.cmd.SetArgs(args)
	return r.cmd.ExecuteContext(ctx)
}

// addSubcommands wires every command handler into the root
func (r *RootCommand) addSubcommands() {
	handler := newCommandHandler(r.api, r.out)

	r.cmd.AddCommand(
		handler.createCommand(),
		handler.addCommand(),
		handler.completeCommand(),
		handler.listCommand(),
		handler.allCommand(),
		handler.summaryCommand(),
		handler.jobsCommand(),
	)
}

// tokenFromCommand resolves the credential token from the flag or environment
func tokenFromCommand(cmd *cobra.Command) string {
	if token, err := cmd.Flags().GetString("token"); err == nil && token != "" {
		return token
	}
	return os.Getenv("TSM_TOKEN")
}
