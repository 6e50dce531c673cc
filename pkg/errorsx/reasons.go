package errorsx

// ReasonCode is a short machine-readable error reason.
type ReasonCode string

const (
	ReasonUnknown ReasonCode = "unknown"

	ReasonMissingCredential ReasonCode = "missing_credential"
	ReasonConfigLoad        ReasonCode = "config_load"
	ReasonProviderUnknown   ReasonCode = "provider_unknown"

	ReasonLLMGenerate ReasonCode = "llm_generate"
	ReasonToolArgs    ReasonCode = "tool_args"
)
