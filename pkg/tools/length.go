package tools

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/harunnryd/toolcall/pkg/errorsx"
	"github.com/harunnryd/toolcall/pkg/logging"
)

const TextLengthToolName = "get_text_length"

// NewTextLengthTool counts the characters of a text argument.
func NewTextLengthTool(logger *slog.Logger) Tool {
	log := logging.NewComponentLogger(logger, "tool."+TextLengthToolName)
	return Tool{
		Name:        TextLengthToolName,
		Description: "Returns the length of a text by characters",
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"text": map[string]any{"type": "string", "description": "text to measure"},
			},
			"required": []string{"text"},
		},
		ScalarArg: "text",
		Func: func(_ context.Context, input any) (any, error) {
			text, ok := input.(string)
			if !ok {
				return nil, errorsx.New(errorsx.ReasonToolArgs, "text must be a string, got %T", input)
			}
			log.Info("get_text_length called", "text", text)
			return TextLength(text), nil
		},
	}
}

// TextLength trims surrounding single quotes and newlines, then double
// quotes, and counts the remaining characters.
func TextLength(text string) int {
	text = strings.Trim(text, "'\n")
	text = strings.Trim(text, `"`)
	return utf8.RuneCountInString(text)
}
