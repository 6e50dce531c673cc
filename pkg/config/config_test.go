package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/harunnryd/toolcall/pkg/errorsx"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv(OpenAIKeyEnv, "")
	t.Setenv("TOOLCALL_CREDENTIAL_API_KEY", "")
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Vendors.LLM.Provider != "mock" {
		t.Fatalf("expected mock provider, got %q", cfg.Vendors.LLM.Provider)
	}
	if cfg.Agent.DefaultQuestion != DefaultQuestion {
		t.Fatalf("unexpected default question %q", cfg.Agent.DefaultQuestion)
	}
	if !cfg.Privacy.RedactPII || cfg.LogLevel != "info" || cfg.LogFormat != "text" {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	err = cfg.RequireCredential()
	if !errorsx.HasReason(err, errorsx.ReasonMissingCredential) || !errors.Is(err, ErrMissingCredential) {
		t.Fatalf("expected missing credential, got %v", err)
	}
}

func TestLoadConfigFile(t *testing.T) {
	t.Setenv(OpenAIKeyEnv, "")
	t.Setenv("TOOLCALL_CREDENTIAL_API_KEY", "")
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `credential:
  api_key: demo_openai_key_12345
vendors:
  llm:
    provider: mock
    settings:
      model: gpt-4o-mini
      temperature: 0.2
log_level: debug
`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Credential.APIKey != "demo_openai_key_12345" {
		t.Fatalf("unexpected api key %q", cfg.Credential.APIKey)
	}
	if cfg.Vendors.LLM.Settings["model"] != "gpt-4o-mini" {
		t.Fatalf("unexpected settings %v", cfg.Vendors.LLM.Settings)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("expected debug level, got %q", cfg.LogLevel)
	}
	if err := cfg.RequireCredential(); err != nil {
		t.Fatalf("unexpected credential error: %v", err)
	}
}

func TestLoadConfigEnvCredential(t *testing.T) {
	t.Setenv("TOOLCALL_CREDENTIAL_API_KEY", "")
	t.Setenv(OpenAIKeyEnv, "from-openai-env")
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Credential.APIKey != "from-openai-env" {
		t.Fatalf("expected key from %s, got %q", OpenAIKeyEnv, cfg.Credential.APIKey)
	}

	t.Setenv("TOOLCALL_CREDENTIAL_API_KEY", "from-prefixed-env")
	cfg, err = LoadConfig("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Credential.APIKey != "from-prefixed-env" {
		t.Fatalf("expected prefixed env to win, got %q", cfg.Credential.APIKey)
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("TOOLCALL_LOG_FORMAT", "json")
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.LogFormat != "json" {
		t.Fatalf("expected json from env, got %q", cfg.LogFormat)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if !errorsx.HasReason(err, errorsx.ReasonConfigLoad) {
		t.Fatalf("expected config_load error, got %v", err)
	}
}
