package main

import (
	"strings"
	"sync"

	prettylog "github.com/Nekidev/pretty-logging"
)

// commandContext resolves configuration once per invocation, layering flag
// overrides on top of the file values.
type commandContext struct {
	configFlag  *string
	levelFlag   *string
	colorFlag   *string
	moduleFlags *[]string

	optionsOnce sync.Once
	options     prettylog.Options
	optionsErr  error
}

func newCommandContext(configFlag, levelFlag, colorFlag *string, moduleFlags *[]string) *commandContext {
	return &commandContext{
		configFlag:  configFlag,
		levelFlag:   levelFlag,
		colorFlag:   colorFlag,
		moduleFlags: moduleFlags,
	}
}

func (c *commandContext) ensureOptions() (prettylog.Options, error) {
	c.optionsOnce.Do(func() {
		cfg, _, _, err := prettylog.LoadConfig(strings.TrimSpace(*c.configFlag))
		if err != nil {
			c.optionsErr = err
			return
		}
		if value := strings.TrimSpace(*c.levelFlag); value != "" {
			cfg.Level = value
		}
		if value := strings.TrimSpace(*c.colorFlag); value != "" {
			cfg.Color = value
		}
		if len(*c.moduleFlags) > 0 {
			cfg.Modules = *c.moduleFlags
		}
		if err := cfg.Validate(); err != nil {
			c.optionsErr = err
			return
		}
		c.options = cfg.Options()
	})
	return c.options, c.optionsErr
}

// initLogging constructs the process-wide sink from the resolved options.
func (c *commandContext) initLogging() error {
	opts, err := c.ensureOptions()
	if err != nil {
		return err
	}
	prettylog.InitWith(opts)
	return nil
}
