// Package steps provides a set of handlers for the app generation chain.
package steps

import (
	"github.com/oodtools/oodgen/cli/config"
	"github.com/oodtools/oodgen/cli/generate/internal/erb"
)

const (
	// FormTemplateName is the templated form descriptor artifact.
	FormTemplateName = "form.yml.erb"
	// ManifestTemplateName is the templated manifest descriptor artifact.
	ManifestTemplateName = "manifest.yml.erb"
	// SubmitTemplateName is the submit script artifact, copied verbatim.
	SubmitTemplateName = "submit.yml.erb"
	// TemplateDirName is the job template directory artifact, copied verbatim.
	TemplateDirName = "template"

	// FormName is the rendered form descriptor file name.
	FormName = "form.yml"
	// ManifestName is the rendered manifest descriptor file name.
	ManifestName = "manifest.yml"

	// VarsFileName is the ephemeral per-app variables file name.
	VarsFileName = "vars.rb"
)

// BaseArtifacts are the artifacts copied from the base template
// repository into every generated app.
var BaseArtifacts = []string{
	FormTemplateName,
	ManifestTemplateName,
	SubmitTemplateName,
	TemplateDirName,
}

// AppCtx contains the information required for generating a single app.
type AppCtx struct {
	// Base is the base template configuration.
	Base *config.BaseOpts
	// App is the application configuration.
	App *config.AppOpts
	// BaseDir is a path to the base template repository clone.
	BaseDir string
	// AppsDir is a directory where applications are generated.
	AppsDir string
	// AppPath is a path to the application destination directory.
	AppPath string
	// VarsFilePath is a path to the written variables file.
	VarsFilePath string
	// Vars is an ordered list of variable assignment statements.
	Vars []string
	// Skipped is set if the application already exists. All the
	// following steps become no-ops.
	Skipped bool
	// Renderer is a template renderer to use.
	Renderer erb.Renderer
}

// Step is an interface for a single step in the generation chain.
type Step interface {
	Run(appCtx *AppCtx) error
}

// NewAppContext creates a new app generation context.
func NewAppContext(base *config.BaseOpts, app *config.AppOpts,
	baseDir string, appsDir string,
) AppCtx {
	return AppCtx{
		Base:     base,
		App:      app,
		BaseDir:  baseDir,
		AppsDir:  appsDir,
		Renderer: erb.CliRenderer{},
	}
}
