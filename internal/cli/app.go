package cli

import (
	"context"
	"io"
	"os"

	"timesheet-manager/internal/api"
)

// App is the command-line application shell
type App struct {
	root *RootCommand
}

// NewApp creates a new App with the injected API, writing to stdout
func NewApp(apiInstance api.API) *App {
	return NewAppWithOutput(apiInstance, os.Stdout)
}

// NewAppWithOutput creates a new App writing to the given writer
func NewAppWithOutput(apiInstance api.API, out io.Writer) *App {
	return &App{
		root: NewRootCommand(apiInstance, out),
	}
}

// Run executes the application with the given arguments
func (a *App) Run(ctx context.Context, args []string) error {
	return a.root.Execute(ctx, args)
}
