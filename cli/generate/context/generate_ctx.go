package generate_ctx

import (
	"github.com/oodtools/oodgen/cli/config"
	"github.com/oodtools/oodgen/cli/generate/internal/erb"
)

// GenerateCtx contains information for generating applications from the
// base template.
type GenerateCtx struct {
	// ConfigPath is a path of the loaded apps configuration file.
	ConfigPath string
	// RootDir is a directory under which the base template clone and
	// the apps directory live.
	RootDir string
	// AppsDir is a directory where applications are generated.
	AppsDir string
	// Cfg is the loaded apps configuration.
	Cfg *config.AppsCfg
	// Renderer is a template renderer to use. If nil, the external
	// erb interpreter is used.
	Renderer erb.Renderer
	// Verbose enables output of the invoked external commands.
	Verbose bool
}
