package main

import (
	"github.com/spf13/cobra"

	prettylog "github.com/Nekidev/pretty-logging"
)

func newPanicCommand(ctx *commandContext) *cobra.Command {
	var message string

	cmd := &cobra.Command{
		Use:   "panic",
		Short: "Trigger a panic to demonstrate the failure hook",
		Long: "Trigger a panic after initializing the sink. The installed hook formats\n" +
			"the payload under a PANIC tag on stderr before the process crashes, so\n" +
			"expect a stack trace and a non-zero exit status.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ctx.initLogging(); err != nil {
				return err
			}
			prettylog.ModuleLogger("demo").Info("about to panic")

			defer prettylog.HandlePanic()
			panic(message)
		},
	}

	cmd.Flags().StringVar(&message, "message", "Hello pretty logger!", "Panic payload")
	return cmd
}
