package cmd

import (
	"github.com/oodtools/oodgen/cli/cmdcontext"
	init_pkg "github.com/oodtools/oodgen/cli/init"
	"github.com/oodtools/oodgen/cli/util"
	"github.com/spf13/cobra"
)

var initCtx init_pkg.InitCtx

// NewInitCmd creates a starter apps configuration file in the current
// working directory.
func NewInitCmd() *cobra.Command {
	var initCmd = &cobra.Command{
		Use:   "init [flags]",
		Short: "Create a starter apps configuration file",
		Run: func(cmd *cobra.Command, args []string) {
			cmdCtx.CommandName = cmd.Name()
			err := internalInitModule(&cmdCtx, args)
			util.HandleCmdErr(cmd, err)
		},
	}

	initCmd.Flags().BoolVarP(&initCtx.ForceMode, "force", "f", false,
		"Overwrite the configuration file if it already exists")

	return initCmd
}

// internalInitModule is a default init module.
func internalInitModule(cmdCtx *cmdcontext.CmdCtx, args []string) error {
	initCtx.ConfigName = cmdCtx.Cli.ConfigPath
	return init_pkg.Run(&initCtx)
}
