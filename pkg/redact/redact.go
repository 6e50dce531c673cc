package redact

import (
	"regexp"
	"strings"
)

var (
	emailRe = regexp.MustCompile(`(?i)[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}`)
	phoneRe = regexp.MustCompile(`\b\+?\d[\d\s\-]{7,}\d\b`)
	keyRe   = regexp.MustCompile(`\bsk-[A-Za-z0-9_\-]{8,}\b`)
)

// Redactor scrubs PII and API keys from text headed for logs.
type Redactor struct {
	enabled bool
}

func New(enabled bool) Redactor {
	return Redactor{enabled: enabled}
}

func (r Redactor) Enabled() bool { return r.enabled }

// Text replaces emails, phone numbers and sk- style keys when enabled.
func (r Redactor) Text(in string) string {
	if !r.enabled || strings.TrimSpace(in) == "" {
		return in
	}
	out := emailRe.ReplaceAllString(in, "[REDACTED_EMAIL]")
	out = phoneRe.ReplaceAllString(out, "[REDACTED_PHONE]")
	out = keyRe.ReplaceAllString(out, "[REDACTED_KEY]")
	return out
}

// Secret masks a credential, keeping at most its first four characters.
func Secret(s string) string {
	if s == "" {
		return ""
	}
	if len(s) <= 8 {
		return "****"
	}
	return s[:4] + "****"
}
