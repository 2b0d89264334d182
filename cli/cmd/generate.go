package cmd

import (
	"github.com/oodtools/oodgen/cli/cmdcontext"
	"github.com/oodtools/oodgen/cli/generate"
	generate_ctx "github.com/oodtools/oodgen/cli/generate/context"
	"github.com/oodtools/oodgen/cli/util"
	"github.com/spf13/cobra"
)

// NewGenerateCmd creates applications listed in the configuration file.
func NewGenerateCmd() *cobra.Command {
	var generateCmd = &cobra.Command{
		Use:   "generate [flags]",
		Short: "Generate applications from the base template",
		Long: `Generate applications from the base template.

Reads the apps configuration file, clones the base template repository
if it is not cloned yet and creates every application that does not
exist on disk. An existing application directory is never touched:
the app is reported as skipped.`,
		Example: `
# Generate all applications described in apps.yaml.

    $ oodgen generate

# Generate into a dedicated root directory.

    $ oodgen generate --cfg /etc/ood/apps.yaml --root /var/ood`,
		Run: func(cmd *cobra.Command, args []string) {
			cmdCtx.CommandName = cmd.Name()
			err := internalGenerateModule(&cmdCtx, args)
			util.HandleCmdErr(cmd, err)
		},
	}

	return generateCmd
}

// internalGenerateModule is a default generate module.
func internalGenerateModule(cmdCtx *cmdcontext.CmdCtx, args []string) error {
	var genCtx generate_ctx.GenerateCtx
	if err := generate.FillCtx(cmdCtx, &genCtx); err != nil {
		return err
	}

	return generate.Run(&genCtx)
}
