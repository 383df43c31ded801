package main

import (
	"github.com/spf13/cobra"

	"github.com/blitforge/kernelgate/cmd/cli"
	"github.com/blitforge/kernelgate/internal/utils/cliutil"
	"github.com/blitforge/kernelgate/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:   "kernelgate",
	Short: "Kernelgate",
	Long:  `Gates kernel startup on its required support module, negotiating installation with the operator when it is missing`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init()
	},
}

var environmentFlags = map[string]cliutil.Flag{
	"config": {
		Type:        cliutil.FlagTypeString,
		Shorthand:   "c",
		Description: "Path to config file",
	},
	"display-name": {
		Type:        cliutil.FlagTypeString,
		Description: "Environment display name",
	},
	"env-name": {
		Type:        cliutil.FlagTypeString,
		Description: "Environment name",
	},
	"env-path": {
		Type:        cliutil.FlagTypeString,
		Description: "Interpreter path (or container reference when docker is enabled)",
	},
}

func main() {
	logger.Init()
	log := logger.Get()

	rootCmd.AddCommand(cliutil.CreateCommand(cliutil.CommandConfig{
		Use:   "check",
		Short: "Check whether the kernel module is installed",
		RunFunc: func(cmd *cobra.Command, args []string) error {
			return cli.RunCheck(cmd, args)
		},
		Flags: environmentFlags,
	}, log))

	rootCmd.AddCommand(cliutil.CreateCommand(cliutil.CommandConfig{
		Use:   "ensure",
		Short: "Install the kernel module interactively if it is missing",
		RunFunc: func(cmd *cobra.Command, args []string) error {
			return cli.RunEnsure(cmd, args)
		},
		Flags: environmentFlags,
	}, log))

	launchFlags := map[string]cliutil.Flag{
		"connection-file": {
			Type:        cliutil.FlagTypeString,
			Shorthand:   "f",
			Description: "Kernel connection file",
		},
	}
	for name, flag := range environmentFlags {
		launchFlags[name] = flag
	}
	rootCmd.AddCommand(cliutil.CreateCommand(cliutil.CommandConfig{
		Use:   "launch",
		Short: "Start the kernel after its dependencies are satisfied",
		RunFunc: func(cmd *cobra.Command, args []string) error {
			return cli.RunLaunch(cmd, args)
		},
		Flags: launchFlags,
	}, log))

	cliutil.ExecuteCommand(rootCmd, log)
}
