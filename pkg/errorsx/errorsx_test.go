package errorsx

import (
	"errors"
	"testing"
)

func TestWrapAndReason(t *testing.T) {
	err := Wrap(assertErr{}, ReasonLLMGenerate)
	if Reason(err) != ReasonLLMGenerate {
		t.Fatalf("expected reason %s, got %s", ReasonLLMGenerate, Reason(err))
	}
	if !HasReason(err, ReasonLLMGenerate) {
		t.Fatalf("expected HasReason true")
	}
}

func TestWrapPreservesExistingReason(t *testing.T) {
	first := Wrap(assertErr{}, ReasonMissingCredential)
	second := Wrap(first, ReasonLLMGenerate)
	if Reason(second) != ReasonMissingCredential {
		t.Fatalf("expected reason preserved, got %s", Reason(second))
	}
}

func TestWrapNil(t *testing.T) {
	if Wrap(nil, ReasonToolArgs) != nil {
		t.Fatalf("expected nil")
	}
	if Reason(nil) != ReasonUnknown {
		t.Fatalf("expected unknown reason for nil")
	}
}

func TestReasonThroughFmtWrap(t *testing.T) {
	err := errorsWrap(Wrap(assertErr{}, ReasonToolArgs))
	if !HasReason(err, ReasonToolArgs) {
		t.Fatalf("expected reason through wrapping, got %s", Reason(err))
	}
	if !errors.Is(err, assertErr{}) {
		t.Fatalf("expected cause preserved")
	}
}

func errorsWrap(err error) error {
	return &wrapped{err}
}

type wrapped struct{ err error }

func (w *wrapped) Error() string { return "outer: " + w.err.Error() }
func (w *wrapped) Unwrap() error { return w.err }

type assertErr struct{}

func (assertErr) Error() string { return "boom" }

func TestNewFormatsMessage(t *testing.T) {
	err := New(ReasonMissingCredential, "%s is required", "credential.api_key")
	if err.Error() != "credential.api_key is required" {
		t.Fatalf("unexpected message %q", err.Error())
	}
	if !HasReason(err, ReasonMissingCredential) {
		t.Fatalf("expected missing credential reason")
	}
}
