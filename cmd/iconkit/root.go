package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose    bool
	configPath string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "iconkit",
		Short:         "Iconkit inspects, validates, and resolves layered .icon documents",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Path to an iconkit.yaml settings file")

	cmd.AddCommand(newValidateCmd(flags))
	cmd.AddCommand(newResolveCmd(flags))
	cmd.AddCommand(newInspectCmd(flags))
	cmd.AddCommand(newAssetsCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
