package main

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"gxttool/internal/config"
	"gxttool/internal/gxt"
	"gxttool/internal/logging"
)

type commandContext struct {
	configFlag   *string
	logLevelFlag *string
	debugFlag    *bool

	configOnce sync.Once
	config     *config.Config
	configPath string
	configSeen bool
	configErr  error
}

func newCommandContext(configFlag, logLevelFlag *string, debugFlag *bool) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		logLevelFlag: logLevelFlag,
		debugFlag:    debugFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, resolved, exists, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = resolved
		c.configSeen = exists
	})
	return c.config, c.configErr
}

// logger builds a component logger. Output configured as "stderr" goes to the
// command's stderr.
func (c *commandContext) logger(cmd *cobra.Command, component string) (*slog.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logCfg := *cfg
	if c.logLevelFlag != nil && strings.TrimSpace(*c.logLevelFlag) != "" {
		logCfg.Logging.Level = *c.logLevelFlag
	}
	if c.debugFlag != nil && *c.debugFlag {
		logCfg.Logging.Development = true
	}
	logger, err := logging.NewFromConfig(&logCfg, cmd.ErrOrStderr())
	if err != nil {
		return nil, fmt.Errorf("configure logging: %w", err)
	}
	return logging.NewComponentLogger(logger, component), nil
}

// platformFlag binds --platform and resolves it against the configured
// default when the flag is not given.
type platformFlag struct {
	value gxt.Platform
}

func (p *platformFlag) register(cmd *cobra.Command) {
	names := make([]string, len(gxt.Platforms))
	for i, platform := range gxt.Platforms {
		names[i] = platform.String()
	}
	cmd.Flags().VarP(&p.value, "platform", "p", "Target platform: "+strings.Join(names, ", ")+" (default from config)")
}

func (p *platformFlag) resolve(cmd *cobra.Command, cfg *config.Config) gxt.Platform {
	if cmd.Flags().Changed("platform") {
		return p.value
	}
	return cfg.Platform()
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
