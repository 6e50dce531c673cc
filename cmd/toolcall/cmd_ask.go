package main

import (
	"fmt"
	"strings"

	"github.com/harunnryd/toolcall/pkg/agent"
	"github.com/harunnryd/toolcall/pkg/metrics"
	"github.com/harunnryd/toolcall/pkg/providers"
	"github.com/harunnryd/toolcall/pkg/redact"
	"github.com/harunnryd/toolcall/pkg/runner"
	"github.com/spf13/cobra"
)

func askCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "ask [question...]",
		Short: "Run the agent once and print its answer",
		Example: `  toolcall ask "What is the length of the word: DOG"
  OPENAI_API_KEY=demo toolcall ask length of \'cats\'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := opts.load(cmd)
			if err != nil {
				return err
			}
			if cfg.Agent.Banner {
				runner.PrintBanner(cmd.OutOrStdout(), false)
			}

			model, err := providers.NewDefaultRegistry().BuildLLM(cfg.Vendors.LLM.Provider, cfg)
			if err != nil {
				return err
			}
			a := agent.New(model, newToolRegistry(logger), agent.Options{
				Logger:   logger,
				Observer: metrics.NewLoggerObserver(logger),
				Redactor: redact.New(cfg.Privacy.RedactPII),
			})

			question := strings.TrimSpace(strings.Join(args, " "))
			if question == "" {
				question = cfg.Agent.DefaultQuestion
			}
			result, err := a.Run(cmd.Context(), question)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), result)
			return err
		},
	}
}
