// Package skyerr defines the error taxonomy shared by every stage of a query.
package skyerr

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a query failure.
type Kind int

const (
	KindUnknown Kind = iota
	KindParse
	KindResolution
	KindRequirement
	KindEvaluation
	KindConfiguration
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindParse:
		return "parse"
	case KindResolution:
		return "resolution"
	case KindRequirement:
		return "requirement"
	case KindEvaluation:
		return "evaluation"
	case KindConfiguration:
		return "configuration"
	default:
		return "unknown"
	}
}

// ErrUnsupported is wrapped by requirement errors raised when a property
// cannot be computed for an object kind (e.g. magnitude of a fixed point).
var ErrUnsupported = errors.New("unsupported for this object kind")

// Error is a classified query failure. Subject names what was being handled
// ("date", "object", "horiz"), Input is the offending user text.
type Error struct {
	Kind        Kind
	Subject     string
	Input       string
	Reason      string
	Suggestions []string
	Err         error
}

func (e *Error) Error() string {
	var b strings.Builder
	switch e.Kind {
	case KindParse:
		fmt.Fprintf(&b, "invalid %s %q", e.Subject, e.Input)
	case KindResolution:
		fmt.Fprintf(&b, "unknown %s %q", e.Subject, e.Input)
	case KindConfiguration:
		fmt.Fprintf(&b, "bad %s %q", e.Subject, e.Input)
	default:
		b.WriteString(e.Subject)
		if e.Input != "" {
			fmt.Fprintf(&b, " of %s", e.Input)
		}
	}
	if e.Reason != "" {
		b.WriteString(": ")
		b.WriteString(e.Reason)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	if len(e.Suggestions) > 0 {
		fmt.Fprintf(&b, " (did you mean %s?)", strings.Join(e.Suggestions, ", "))
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

// Parse reports a malformed token. what names the expected form.
func Parse(what, input, reason string) error {
	return &Error{Kind: KindParse, Subject: what, Input: input, Reason: reason}
}

// Resolution reports an unknown object or property alias.
func Resolution(what, input string, suggestions []string) error {
	return &Error{Kind: KindResolution, Subject: what, Input: input, Suggestions: suggestions}
}

// Requirement reports a property whose prerequisites are not met.
func Requirement(property, object, reason string) error {
	return &Error{Kind: KindRequirement, Subject: property, Input: object, Reason: reason}
}

// Unsupported is a requirement error wrapping ErrUnsupported.
func Unsupported(property, object string) error {
	return &Error{Kind: KindRequirement, Subject: property, Input: object, Err: ErrUnsupported}
}

// Evaluation wraps an out-of-domain condition from the ephemeris provider.
func Evaluation(property, object string, err error) error {
	return &Error{Kind: KindEvaluation, Subject: property, Input: object, Err: err}
}

// Configuration reports a degenerate setting such as a zero ephemeris step.
func Configuration(what, input, reason string) error {
	return &Error{Kind: KindConfiguration, Subject: what, Input: input, Reason: reason}
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// IsNotFound reports whether err is an unknown-object resolution failure.
func IsNotFound(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindResolution && e.Subject == "object"
}
