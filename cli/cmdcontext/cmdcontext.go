package cmdcontext

// CmdCtx is the main structure of the program context.
type CmdCtx struct {
	// Cli - CLI context. Contains flags passed when starting
	// oodgen and some other parameters.
	Cli CliCtx
	// CommandName contains name of the command.
	CommandName string
}

// CliCtx - CLI context. Contains flags passed when starting
// oodgen and some other parameters.
type CliCtx struct {
	// ConfigPath is a path to the apps configuration file (apps.yaml).
	ConfigPath string
	// RootDir is a directory under which the base template clone and
	// the apps directory live. Empty means "next to the config file".
	RootDir string
	// Verbose logging flag. Enables debug log output.
	Verbose bool
}
