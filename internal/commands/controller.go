// Package commands contains the CLI commands for the application.
package commands

// Flags holds the global and per-command flag values.
type Flags struct {
	LogLevel string
	Config   string
	AST      string
	Manifest string
	DryRun   bool
	Watch    bool
}

// Controller dispatches CLI commands.
type Controller struct {
	Flags *Flags
}
