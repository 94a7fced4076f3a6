package gemini

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingKey is reported before any network call when no API key is
// configured. Generation features must stop on it.
var ErrMissingKey = errors.New("gemini API key is not configured")

// Kind is the best-effort failure cause of a generation call.
type Kind int

const (
	KindUnknown Kind = iota
	KindRateLimited
	KindContentFiltered
	KindInvalidKey
)

// ClassifiedError carries the provider failure together with its
// classified cause. The classification is advisory: it prefers structured
// provider codes and falls back to substring matching on the message.
type ClassifiedError struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *ClassifiedError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.cause != nil {
		return e.cause.Error()
	}
	return "generation failed"
}

func (e *ClassifiedError) Unwrap() error { return e.cause }

// UserMessage renders the failure as an in-band reply string so a
// conversation can continue instead of crashing.
func (e *ClassifiedError) UserMessage() string {
	switch e.Kind {
	case KindRateLimited:
		return "Rate limit reached. Please wait a moment and try again."
	case KindContentFiltered:
		return "Content filtered. Please rephrase your request."
	case KindInvalidKey:
		return "API configuration issue. Check the configured key."
	default:
		return fmt.Sprintf("Error: %s. Please try rephrasing!", e.Error())
	}
}

// Classify wraps err as a ClassifiedError, inferring the cause from the
// message text when no structured code is available.
func Classify(err error) *ClassifiedError {
	var classified *ClassifiedError
	if errors.As(err, &classified) {
		return classified
	}
	return &ClassifiedError{
		Kind:    classifyMessage(err.Error()),
		Message: err.Error(),
		cause:   err,
	}
}

func classifyMessage(message string) Kind {
	m := strings.ToLower(message)
	switch {
	case strings.Contains(m, "quota"),
		strings.Contains(m, "resource_exhausted"),
		strings.Contains(m, "rate"),
		strings.Contains(m, "429"):
		return KindRateLimited
	case strings.Contains(m, "safety"), strings.Contains(m, "blocked"):
		return KindContentFiltered
	case strings.Contains(m, "api_key"), strings.Contains(m, "invalid"):
		return KindInvalidKey
	default:
		return KindUnknown
	}
}
