package config

import (
	"errors"
	"fmt"
	"strings"

	"gxttool/internal/gxt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateGXT(); err != nil {
		return err
	}
	if err := c.validateDocument(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateGXT() error {
	if _, err := gxt.ParsePlatform(c.GXT.Platform); err != nil {
		return fmt.Errorf("gxt.platform: %w", err)
	}
	return nil
}

func (c *Config) validateDocument() error {
	ext := c.Document.Extension
	if ext == "." || strings.ContainsAny(ext, `/\`) {
		return fmt.Errorf("document.extension %q is not a file extension", ext)
	}
	if strings.EqualFold(ext, ".gxt") {
		return errors.New("document.extension must differ from .gxt")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
