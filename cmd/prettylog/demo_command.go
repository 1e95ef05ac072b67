package main

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	prettylog "github.com/Nekidev/pretty-logging"
)

func newDemoCommand(ctx *commandContext) *cobra.Command {
	var workers int
	var events int

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Emit a scripted burst of log events from concurrent workers",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ctx.initLogging(); err != nil {
				return err
			}
			if workers < 1 {
				workers = 1
			}
			if events < 1 {
				events = 1
			}

			prettylog.ModuleLogger("demo").Info(fmt.Sprintf("starting %d workers", workers))

			var wg sync.WaitGroup
			for i := 0; i < workers; i++ {
				worker := i
				wg.Add(1)
				go func() {
					defer wg.Done()
					defer prettylog.HandlePanic()
					runDemoWorker(worker, events)
				}()
			}
			wg.Wait()

			prettylog.ModuleLogger("demo").Info("all workers finished")
			prettylog.Drain(5 * time.Second)
			return nil
		},
	}

	cmd.Flags().IntVar(&workers, "workers", 4, "Number of concurrent producer goroutines")
	cmd.Flags().IntVar(&events, "events", 10, "Number of events each worker emits")
	return cmd
}

func runDemoWorker(worker, events int) {
	jobID := uuid.NewString()
	logger := prettylog.ModuleLogger(fmt.Sprintf("demo::worker%d", worker))

	for seq := 0; seq < events; seq++ {
		switch seq % 5 {
		case 0:
			logger.Log(context.Background(), prettylog.TraceLevel, fmt.Sprintf("job %s step %d scheduled", jobID, seq))
		case 1:
			logger.Debug(fmt.Sprintf("job %s step %d running", jobID, seq))
		case 2:
			logger.Info(fmt.Sprintf("job %s step %d done", jobID, seq))
		case 3:
			logger.Warn(fmt.Sprintf("job %s step %d retried", jobID, seq))
		default:
			logger.Error(fmt.Sprintf("job %s step %d failed", jobID, seq))
		}
	}
}
