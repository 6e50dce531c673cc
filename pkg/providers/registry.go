package providers

import (
	"strings"

	"github.com/harunnryd/toolcall/pkg/config"
	"github.com/harunnryd/toolcall/pkg/configutil"
	"github.com/harunnryd/toolcall/pkg/errorsx"
	"github.com/harunnryd/toolcall/pkg/llm"
	"github.com/harunnryd/toolcall/pkg/providers/mock"
)

// LLMFactory builds a chat model from the loaded configuration.
type LLMFactory func(cfg config.Config) (llm.LLMAdapter, error)

type Registry struct {
	llm map[string]LLMFactory
}

func NewRegistry() *Registry {
	return &Registry{llm: make(map[string]LLMFactory)}
}

// NewDefaultRegistry returns a registry with the built-in providers.
func NewDefaultRegistry() *Registry {
	reg := NewRegistry()
	reg.RegisterLLM("mock", buildMockLLM)
	return reg
}

func (r *Registry) RegisterLLM(name string, factory LLMFactory) {
	r.llm[normalizeName(name)] = factory
}

// BuildLLM checks the credential and runs the factory for provider.
func (r *Registry) BuildLLM(provider string, cfg config.Config) (llm.LLMAdapter, error) {
	fn := r.llm[normalizeName(provider)]
	if fn == nil {
		return nil, errorsx.New(errorsx.ReasonProviderUnknown, "llm provider not registered: %s", provider)
	}
	if err := cfg.RequireCredential(); err != nil {
		return nil, err
	}
	return fn(cfg)
}

type mockLLMSettings struct {
	Model        string   `mapstructure:"model"`
	Temperature  *float64 `mapstructure:"temperature"`
	FallbackText string   `mapstructure:"fallback_text"`
}

func buildMockLLM(cfg config.Config) (llm.LLMAdapter, error) {
	if err := configutil.ValidateSettings(cfg.Vendors.LLM.Settings, configutil.Schema{
		Optional: []string{"model", "temperature", "fallback_text"},
	}); err != nil {
		return nil, errorsx.Wrap(err, errorsx.ReasonConfigLoad)
	}
	var settings mockLLMSettings
	if err := configutil.DecodeSettings(cfg.Vendors.LLM.Settings, &settings); err != nil {
		return nil, errorsx.Wrap(err, errorsx.ReasonConfigLoad)
	}
	adapter, err := mock.NewLLMAdapter(mock.LLMConfig{
		APIKey:       cfg.Credential.APIKey,
		Model:        settings.Model,
		Temperature:  configutil.FloatValue(settings.Temperature, 0),
		FallbackText: settings.FallbackText,
	})
	if err != nil {
		return nil, err
	}
	return adapter, nil
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
