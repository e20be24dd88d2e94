package config

const (
	defaultConfigPath  = "~/.config/gxttool/config.toml"
	projectConfigName  = "gxttool.toml"
	defaultPlatform    = "psp"
	defaultDocumentExt = ".toml"
	defaultTitlePrefix = "Decompiled"
	defaultLogFormat   = "console"
	defaultLogLevel    = "info"
	defaultLogOutput   = "stderr"

	// PlatformEnv, when set, overrides gxt.platform from the config file.
	PlatformEnv = "GXTTOOL_PLATFORM"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		GXT: GXT{
			Platform: defaultPlatform,
		},
		Document: Document{
			Extension:   defaultDocumentExt,
			TitlePrefix: defaultTitlePrefix,
		},
		Output: Output{
			Lock: true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
			Output: defaultLogOutput,
		},
	}
}
