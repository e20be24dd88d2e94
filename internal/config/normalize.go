package config

import (
	"os"
	"strings"
)

func (c *Config) normalize() {
	c.normalizeGXT()
	c.normalizeDocument()
	c.normalizeLogging()
}

func (c *Config) normalizeGXT() {
	if value, ok := os.LookupEnv(PlatformEnv); ok && strings.TrimSpace(value) != "" {
		c.GXT.Platform = value
	}
	c.GXT.Platform = strings.ToLower(strings.TrimSpace(c.GXT.Platform))
	if c.GXT.Platform == "" {
		c.GXT.Platform = defaultPlatform
	}
}

func (c *Config) normalizeDocument() {
	ext := strings.TrimSpace(c.Document.Extension)
	if ext == "" {
		ext = defaultDocumentExt
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	c.Document.Extension = ext
	c.Document.TitlePrefix = strings.TrimSpace(c.Document.TitlePrefix)
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.Output = strings.TrimSpace(c.Logging.Output)
	switch strings.ToLower(c.Logging.Output) {
	case "":
		c.Logging.Output = defaultLogOutput
	case "stderr", "stdout":
		c.Logging.Output = strings.ToLower(c.Logging.Output)
	default:
		if expanded, err := expandPath(c.Logging.Output); err == nil {
			c.Logging.Output = expanded
		}
	}
}
