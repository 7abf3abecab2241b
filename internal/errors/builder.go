package errors

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrorDetail describes one failing field and the reasons it failed.
type ErrorDetail struct {
	Field        string   `json:"field"`
	Descriptions []string `json:"descriptions"`
}

type withDetails struct {
	cause   error
	details []ErrorDetail
}

func (w *withDetails) Error() string { return w.cause.Error() }
func (w *withDetails) Unwrap() error { return w.cause }

// ErrorBuilder provides a fluent interface for building errors
// but does not implement the error interface.
// Mark must be the last call in the chain when using the builder.
type ErrorBuilder struct {
	err error
}

// NewError starts a new error builder chain
func NewError(msg string) *ErrorBuilder {
	return &ErrorBuilder{err: errors.New(msg)}
}

// WithError starts a builder chain with an existing error
func WithError(err error) *ErrorBuilder {
	return &ErrorBuilder{err: err}
}

// WithMessage adds internal context to the error
func (b *ErrorBuilder) WithMessage(msg string) *ErrorBuilder {
	b.err = errors.WithMessage(b.err, msg)
	return b
}

// WithHint adds a message meant for API clients
func (b *ErrorBuilder) WithHint(hint string) *ErrorBuilder {
	b.err = errors.WithHint(b.err, hint)
	return b
}

func (b *ErrorBuilder) WithHintf(format string, args ...any) *ErrorBuilder {
	b.err = errors.WithHintf(b.err, format, args...)
	return b
}

// WithDetails attaches field level details that the API layer returns as-is.
func (b *ErrorBuilder) WithDetails(details ...ErrorDetail) *ErrorBuilder {
	if len(details) == 0 {
		return b
	}
	b.err = &withDetails{cause: b.err, details: details}
	return b
}

// Mark marks the error with a kind sentinel.
// should be the last call in the chain
func (b *ErrorBuilder) Mark(reference error) error {
	b.err = errors.Mark(b.err, reference)
	return b.err
}

func (b *ErrorBuilder) Error() error {
	return b.err
}

// Details returns the field details attached anywhere in the chain.
func Details(err error) []ErrorDetail {
	var d *withDetails
	if errors.As(err, &d) {
		return d.details
	}
	return nil
}

// Hint returns the client facing message of err, falling back to its full text.
func Hint(err error) string {
	if hint := strings.TrimSpace(errors.FlattenHints(err)); hint != "" {
		return hint
	}
	return err.Error()
}
