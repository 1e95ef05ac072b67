package main

import (
	"fmt"

	"github.com/spf13/cobra"

	prettylog "github.com/Nekidev/pretty-logging"
)

func newLevelsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "levels",
		Short: "Show the severity reference table",
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make([][]string, 0, len(prettylog.Levels())+1)
			for _, level := range prettylog.Levels() {
				rows = append(rows, []string{
					level.String(),
					"[" + level.Label() + "]",
					level.Stream().String(),
					styleName(level),
				})
			}
			rows = append(rows, []string{"panic", "[PANIC]", "stderr", "bold red"})

			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Level", "Tag", "Stream", "Style"}, rows))
			return nil
		},
	}
}

func styleName(level prettylog.Level) string {
	switch level {
	case prettylog.LevelTrace:
		return "dim"
	case prettylog.LevelDebug:
		return "white"
	case prettylog.LevelInfo:
		return "blue"
	case prettylog.LevelWarn:
		return "yellow"
	default:
		return "bold red"
	}
}
