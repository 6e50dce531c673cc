package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/harunnryd/toolcall/pkg/config"
	"github.com/harunnryd/toolcall/pkg/logging"
	"github.com/harunnryd/toolcall/pkg/redact"
	"github.com/harunnryd/toolcall/pkg/runner"
	"github.com/harunnryd/toolcall/pkg/tools"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
	apiKey     string
	logLevel   string
	logFormat  string
	noBanner   bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "toolcall",
		Short:         "Answer questions with a tool-calling chat model",
		Long:          "toolcall sends a question to a chat model with tools bound and resolves at most one tool call into the answer.",
		Version:       runner.Version,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to a YAML config file")
	root.PersistentFlags().StringVar(&opts.apiKey, "api-key", "", "model API key (overrides config and "+config.OpenAIKeyEnv+")")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "debug, info, warn or error")
	root.PersistentFlags().StringVar(&opts.logFormat, "log-format", "", "text, json or pretty")
	root.PersistentFlags().BoolVar(&opts.noBanner, "no-banner", false, "do not print the startup banner")

	root.AddCommand(askCmd(opts))
	root.AddCommand(toolsCmd(opts))
	return root
}

// load resolves configuration with flag overrides applied and builds the
// process logger.
func (o *rootOptions) load(cmd *cobra.Command) (config.Config, *slog.Logger, error) {
	cfg, err := config.LoadConfig(o.configPath)
	if err != nil {
		return config.Config{}, nil, err
	}
	if strings.TrimSpace(o.apiKey) != "" {
		cfg.Credential.APIKey = o.apiKey
	}
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}
	if o.logFormat != "" {
		cfg.LogFormat = o.logFormat
	}
	if o.noBanner {
		cfg.Agent.Banner = false
	}

	logger := logging.InitLogger(logging.LogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: cmd.ErrOrStderr(),
	})
	logger.Debug("config loaded",
		"path", o.configPath,
		"environment", cfg.Environment,
		"provider", cfg.Vendors.LLM.Provider,
		"api_key", redact.Secret(cfg.Credential.APIKey),
	)
	return cfg, logger, nil
}

func newToolRegistry(logger *slog.Logger) *tools.Registry {
	return tools.NewRegistry(tools.NewTextLengthTool(logger))
}
