package main

import (
	"encoding/json"
	"fmt"

	"github.com/harunnryd/toolcall/pkg/llm"
	"github.com/spf13/cobra"
)

func toolsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "Print the tool definitions bound to the model",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, logger, err := opts.load(cmd)
			if err != nil {
				return err
			}
			defs := llm.MapFunctionTools(newToolRegistry(logger).Definitions())
			out, err := json.MarshalIndent(defs, "", "  ")
			if err != nil {
				return fmt.Errorf("encode tools: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return err
		},
	}
}
