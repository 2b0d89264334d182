package cmd

import (
	"path/filepath"

	"github.com/oodtools/oodgen/cli/cmdcontext"
	"github.com/oodtools/oodgen/cli/configure"
	"github.com/oodtools/oodgen/cli/list"
	"github.com/oodtools/oodgen/cli/util"
	"github.com/spf13/cobra"
)

// NewListCmd shows configured applications and their status.
func NewListCmd() *cobra.Command {
	var listCmd = &cobra.Command{
		Use:   "list",
		Short: "Show configured applications and their generation status",
		Run: func(cmd *cobra.Command, args []string) {
			cmdCtx.CommandName = cmd.Name()
			err := internalListModule(&cmdCtx, args)
			util.HandleCmdErr(cmd, err)
		},
	}

	return listCmd
}

// internalListModule is a default list module.
func internalListModule(cmdCtx *cmdcontext.CmdCtx, args []string) error {
	cfg, err := configure.GetAppsCfg(cmdCtx.Cli.ConfigPath)
	if err != nil {
		return err
	}

	rootDir, err := configure.RootDir(cmdCtx.Cli.RootDir, cmdCtx.Cli.ConfigPath)
	if err != nil {
		return err
	}

	return list.Apps(cfg, filepath.Join(rootDir, configure.AppsDirName))
}
