package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/harunnryd/toolcall/pkg/errorsx"
	"github.com/spf13/viper"
)

const (
	EnvPrefix       = "TOOLCALL"
	OpenAIKeyEnv    = "OPENAI_API_KEY"
	DefaultQuestion = "What is the length of the word: DOG"
)

type Config struct {
	Credential  CredentialConfig `mapstructure:"credential"`
	Vendors     VendorsConfig    `mapstructure:"vendors"`
	Agent       AgentConfig      `mapstructure:"agent"`
	Privacy     PrivacyConfig    `mapstructure:"privacy"`
	Environment string           `mapstructure:"environment"`
	LogLevel    string           `mapstructure:"log_level"`
	LogFormat   string           `mapstructure:"log_format"`
}

// CredentialConfig holds the model API key. It is handed to the provider
// factory explicitly; nothing reads it from the process environment later.
type CredentialConfig struct {
	APIKey string `mapstructure:"api_key"`
}

type VendorConfig struct {
	Provider string         `mapstructure:"provider"`
	Settings map[string]any `mapstructure:"settings"`
}

type VendorsConfig struct {
	LLM VendorConfig `mapstructure:"llm"`
}

type AgentConfig struct {
	DefaultQuestion string `mapstructure:"default_question"`
	Banner          bool   `mapstructure:"banner"`
}

type PrivacyConfig struct {
	RedactPII bool `mapstructure:"redact_pii"`
}

// LoadConfig reads defaults, then the optional file at path, then
// TOOLCALL_* environment variables. OPENAI_API_KEY is accepted as the
// credential when TOOLCALL_CREDENTIAL_API_KEY is not set.
func LoadConfig(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("credential.api_key", EnvPrefix+"_CREDENTIAL_API_KEY", OpenAIKeyEnv); err != nil {
		return Config{}, errorsx.Wrap(fmt.Errorf("bind env: %w", err), errorsx.ReasonConfigLoad)
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errorsx.Wrap(fmt.Errorf("read config: %w", err), errorsx.ReasonConfigLoad)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errorsx.Wrap(fmt.Errorf("unmarshal: %w", err), errorsx.ReasonConfigLoad)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("credential.api_key", "")
	v.SetDefault("vendors.llm.provider", "mock")
	v.SetDefault("agent.default_question", DefaultQuestion)
	v.SetDefault("agent.banner", true)
	v.SetDefault("privacy.redact_pii", true)
	v.SetDefault("environment", "development")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
}

// ErrMissingCredential reports an absent API key.
var ErrMissingCredential = errors.New("api key is required: set credential.api_key, " + OpenAIKeyEnv + " or --api-key")

// RequireCredential fails when no API key was configured.
func (c Config) RequireCredential() error {
	if strings.TrimSpace(c.Credential.APIKey) == "" {
		return errorsx.Wrap(ErrMissingCredential, errorsx.ReasonMissingCredential)
	}
	return nil
}
