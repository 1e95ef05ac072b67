package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var levelFlag string
	var colorFlag string
	var moduleFlags []string

	ctx := newCommandContext(&configFlag, &levelFlag, &colorFlag, &moduleFlags)

	rootCmd := &cobra.Command{
		Use:           "prettylog",
		Short:         "Pretty logging playground CLI",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&levelFlag, "level", "", "Minimum severity (trace, debug, info, warn, error, off)")
	rootCmd.PersistentFlags().StringVar(&colorFlag, "color", "", "Color mode (auto, always, never)")
	rootCmd.PersistentFlags().StringArrayVar(&moduleFlags, "module", nil, "Module prefix to keep (repeatable, empty keeps all)")

	rootCmd.AddCommand(newDemoCommand(ctx))
	rootCmd.AddCommand(newPanicCommand(ctx))
	rootCmd.AddCommand(newLevelsCommand())
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
