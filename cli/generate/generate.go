// Package generate creates application bundles from the base template.
package generate

import (
	"fmt"
	"path/filepath"

	"github.com/oodtools/oodgen/cli/cmdcontext"
	"github.com/oodtools/oodgen/cli/configure"
	generate_ctx "github.com/oodtools/oodgen/cli/generate/context"
	"github.com/oodtools/oodgen/cli/generate/internal/steps"
	"github.com/oodtools/oodgen/cli/repo"
)

// FillCtx fills the generate context from the command context: resolves
// the root directory and loads the apps configuration.
func FillCtx(cmdCtx *cmdcontext.CmdCtx, genCtx *generate_ctx.GenerateCtx) error {
	genCtx.ConfigPath = cmdCtx.Cli.ConfigPath
	genCtx.Verbose = cmdCtx.Cli.Verbose

	rootDir, err := configure.RootDir(cmdCtx.Cli.RootDir, genCtx.ConfigPath)
	if err != nil {
		return err
	}
	genCtx.RootDir = rootDir
	genCtx.AppsDir = filepath.Join(rootDir, configure.AppsDirName)

	genCtx.Cfg, err = configure.GetAppsCfg(genCtx.ConfigPath)
	if err != nil {
		return err
	}

	return nil
}

// Run generates all configured applications in document order. The base
// template repository is provisioned once; each app that does not exist
// yet is created by the steps chain. Any failure aborts the whole run:
// apps after the failed one are not processed and no rollback of the
// failed app directory is performed.
func Run(genCtx *generate_ctx.GenerateCtx) error {
	if err := checkCtx(genCtx); err != nil {
		return err
	}

	if err := repo.Provision(genCtx.RootDir, genCtx.Cfg.Base, genCtx.Verbose); err != nil {
		return err
	}

	baseDir := repo.Dir(genCtx.RootDir, genCtx.Cfg.Base)

	stepsChain := []steps.Step{
		steps.CreateAppDirectory{},
		steps.CopyBaseArtifacts{},
		steps.CollectTemplateVars{},
		steps.WriteVarsFile{},
		steps.RenderTemplates{},
		steps.Cleanup{},
	}

	for i := range genCtx.Cfg.Apps {
		app := &genCtx.Cfg.Apps[i]

		appCtx := steps.NewAppContext(genCtx.Cfg.Base, app, baseDir, genCtx.AppsDir)
		if genCtx.Renderer != nil {
			appCtx.Renderer = genCtx.Renderer
		}

		for _, step := range stepsChain {
			if err := step.Run(&appCtx); err != nil {
				return err
			}
		}

		if appCtx.Skipped {
			fmt.Printf("Skipped %s -- already created\n", app.AppName)
		} else {
			fmt.Printf("Created %s\n", app.AppName)
		}
	}

	return nil
}

// checkCtx checks generate context for validity.
func checkCtx(genCtx *generate_ctx.GenerateCtx) error {
	if genCtx.Cfg == nil || genCtx.Cfg.Base == nil {
		return fmt.Errorf("apps configuration is not loaded")
	}
	if genCtx.AppsDir == "" {
		return fmt.Errorf("apps directory is not set")
	}

	return nil
}
