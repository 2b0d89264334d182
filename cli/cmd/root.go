package cmd

import (
	"os"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/oodtools/oodgen/cli/cmdcontext"
	"github.com/oodtools/oodgen/cli/configure"
	"github.com/spf13/cobra"
)

var (
	cmdCtx  cmdcontext.CmdCtx
	rootCmd *cobra.Command
)

// NewCmdRoot creates a new root command.
func NewCmdRoot() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "oodgen",
		Short: "OnDemand application generator",
		Long: "Utility for generating job-submission portal applications " +
			"from a base template repository",
		Example: `$ oodgen init
  $ oodgen generate
  $ oodgen list`,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cmdCtx.Cli.ConfigPath, "cfg", "c",
		configure.DefaultConfigName, "Path to the apps configuration file")
	rootCmd.PersistentFlags().StringVarP(&cmdCtx.Cli.RootDir, "root", "r",
		"", "Root directory for the base clone and generated apps "+
			"(default: the configuration file directory)")
	rootCmd.PersistentFlags().BoolVarP(&cmdCtx.Cli.Verbose, "verbose", "V",
		false, "Verbose output")

	rootCmd.AddCommand(
		NewGenerateCmd(),
		NewListCmd(),
		NewInitCmd(),
		NewVersionCmd(),
	)

	rootCmd.InitDefaultHelpCmd()

	log.SetHandler(cli.Default)

	return rootCmd
}

// Execute root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf(err.Error())
	}
}

// InitRoot initializes the root command and global flags.
func InitRoot() {
	rootCmd = NewCmdRoot()
	rootCmd.ParseFlags(os.Args)

	if cmdCtx.Cli.Verbose {
		log.SetLevel(log.DebugLevel)
	}
}
