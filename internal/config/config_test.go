package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"gxttool/internal/config"
	"gxttool/internal/gxt"
)

func TestLoadDefaultConfigWhenAbsent(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv(config.PlatformEnv, "")
	t.Chdir(t.TempDir())

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	want := filepath.Join(tempHome, ".config", "gxttool", "config.toml")
	if resolved != want {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, want)
	}
	if cfg.Platform() != gxt.PlatformPSP {
		t.Fatalf("expected PSP default, got %v", cfg.Platform())
	}
	if cfg.Document.Extension != ".toml" {
		t.Fatalf("unexpected document extension: %q", cfg.Document.Extension)
	}
	if !cfg.Output.Lock || cfg.Output.Overwrite || cfg.Output.Backup {
		t.Fatalf("unexpected output defaults: %+v", cfg.Output)
	}
	if cfg.DocumentTitle("INTRO.gxt") != "Decompiled INTRO.gxt" {
		t.Fatalf("unexpected title: %q", cfg.DocumentTitle("INTRO.gxt"))
	}
}

func TestLoadCustomPath(t *testing.T) {
	t.Setenv(config.PlatformEnv, "")
	configPath := filepath.Join(t.TempDir(), "gxttool.toml")

	type payload struct {
		GXT struct {
			Platform string `toml:"platform"`
		} `toml:"gxt"`
		Document struct {
			Extension   string `toml:"extension"`
			TitlePrefix string `toml:"title_prefix"`
		} `toml:"document"`
		Output struct {
			Backup bool `toml:"backup"`
		} `toml:"output"`
	}
	custom := payload{}
	custom.GXT.Platform = " PC "
	custom.Document.Extension = "txt"
	custom.Document.TitlePrefix = ""
	custom.Output.Backup = true
	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal custom config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != configPath {
		t.Fatalf("unexpected resolution: %q exists=%v", resolved, exists)
	}
	if cfg.Platform() != gxt.PlatformPC {
		t.Fatalf("expected PC platform, got %v", cfg.Platform())
	}
	if cfg.Document.Extension != ".txt" {
		t.Fatalf("expected normalized extension .txt, got %q", cfg.Document.Extension)
	}
	if cfg.DocumentTitle("A.gxt") != "A.gxt" {
		t.Fatalf("expected bare title without prefix, got %q", cfg.DocumentTitle("A.gxt"))
	}
	if !cfg.Output.Backup || !cfg.Output.Lock {
		t.Fatalf("unexpected output settings: %+v", cfg.Output)
	}
}

func TestPlatformEnvOverridesFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "gxttool.toml")
	if err := os.WriteFile(configPath, []byte("[gxt]\nplatform = \"pc\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(config.PlatformEnv, "ps2")

	cfg, _, _, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Platform() != gxt.PlatformPS2 {
		t.Fatalf("expected PS2 from env, got %v", cfg.Platform())
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	t.Setenv(config.PlatformEnv, "")
	configPath := filepath.Join(t.TempDir(), "gxttool.toml")
	if err := os.WriteFile(configPath, []byte("[gxt]\nplatfrom = \"pc\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, _, err := config.Load(configPath); err == nil {
		t.Fatal("expected error for misspelled key")
	}
}

func TestCreateSample(t *testing.T) {
	t.Setenv(config.PlatformEnv, "")
	path := filepath.Join(t.TempDir(), "nested", "sample.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(contents), "title_prefix") {
		t.Fatalf("sample config missing document settings: %s", contents)
	}

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("sample config does not load: %v", err)
	}
	if !exists {
		t.Fatal("expected sample to exist")
	}
	def := config.Default()
	if cfg.GXT != def.GXT || cfg.Document != def.Document || cfg.Output != def.Output || cfg.Logging != def.Logging {
		t.Fatalf("sample config drifted from defaults: %+v", cfg)
	}
}

func TestValidateDetectsInvalidValues(t *testing.T) {
	cfg := config.Default()
	cfg.GXT.Platform = "dreamcast"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown platform")
	}

	cfg = config.Default()
	cfg.Document.Extension = ".GXT"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error when document extension collides with .gxt")
	}

	cfg = config.Default()
	cfg.Document.Extension = "./x"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for path separator in extension")
	}

	cfg = config.Default()
	cfg.Logging.Format = "xml"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unsupported log format")
	}

	cfg = config.Default()
	cfg.Logging.Level = "trace"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unsupported log level")
	}

	cfg = config.Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
}

func TestExpandPathTilde(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	got, err := config.ExpandPath("~/dir/file.toml")
	if err != nil {
		t.Fatalf("ExpandPath: %v", err)
	}
	if got != filepath.Join(home, "dir", "file.toml") {
		t.Fatalf("unexpected expansion %q", got)
	}
}

func TestLoggingOutputNormalization(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(config.PlatformEnv, "")
	configPath := filepath.Join(t.TempDir(), "gxttool.toml")
	if err := os.WriteFile(configPath, []byte("[logging]\noutput = \"~/logs/gxttool.log\"\ndevelopment = true\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, _, _, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if want := filepath.Join(home, "logs", "gxttool.log"); cfg.Logging.Output != want {
		t.Fatalf("output = %q, want %q", cfg.Logging.Output, want)
	}
	if !cfg.Logging.Development {
		t.Fatal("expected development flag from file")
	}

	if err := os.WriteFile(configPath, []byte("[logging]\noutput = \" STDOUT \"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, _, _, err = config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Logging.Output != "stdout" {
		t.Fatalf("output = %q, want stdout", cfg.Logging.Output)
	}
	if config.Default().Logging.Output != "stderr" {
		t.Fatalf("unexpected default output %q", config.Default().Logging.Output)
	}
}
