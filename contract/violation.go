package contract

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Kind is the category of a raised Violation.
type Kind uint8

// Kind constants. KindFailure is the unconditional failure raised by Fail;
// the other three are the contract-violation kinds.
const (
	KindPrecondition Kind = iota
	KindPostcondition
	KindInvariant
	KindFailure
)

// Prefix returns the fixed prefix rendered for the kind. KindFailure has
// none.
func (k Kind) Prefix() string {
	switch k {
	case KindPrecondition:
		return "Precondition violation!"
	case KindPostcondition:
		return "Postcondition violation!"
	case KindInvariant:
		return "Invariant violation!"
	default:
		return ""
	}
}

// String returns the lowercase name of the kind, suitable for logs and
// metric labels.
func (k Kind) String() string {
	switch k {
	case KindPrecondition:
		return "precondition"
	case KindPostcondition:
		return "postcondition"
	case KindInvariant:
		return "invariant"
	case KindFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// ErrFailure is the sentinel every raised value unwraps to. It corresponds
// to an unadorned runtime failure; handlers that match it observe both
// kinds.
var ErrFailure = errors.New("runtime failure")

// ErrContractViolation is the sentinel for the three contract kinds. It
// wraps ErrFailure, so errors.Is(v, ErrFailure) holds for contract
// violations as well.
var ErrContractViolation = fmt.Errorf("contract violation: %w", ErrFailure)

// Violation is the value raised by a failed check. It is immutable: the
// rendered message is computed once at construction and Error returns the
// same string on every call.
type Violation struct {
	kind     Kind
	message  string
	file     string
	line     int
	rendered string
}

// NewViolation constructs a Violation without location annotation.
func NewViolation(kind Kind, message string) *Violation {
	return &Violation{
		kind:     kind,
		message:  message,
		rendered: render(kind, message, "", 0),
	}
}

// NewViolationAt constructs a Violation annotated with a source location.
func NewViolationAt(kind Kind, message, file string, line int) *Violation {
	return &Violation{
		kind:     kind,
		message:  message,
		file:     file,
		line:     line,
		rendered: render(kind, message, file, line),
	}
}

// Kind returns the category of the violation.
func (v *Violation) Kind() Kind { return v.kind }

// Message returns the caller-supplied message, undecorated.
func (v *Violation) Message() string { return v.message }

// Location returns the call site the violation was raised at. ok is false
// for violations raised in release builds, which carry no location.
func (v *Violation) Location() (file string, line int, ok bool) {
	return v.file, v.line, v.file != ""
}

// Error returns the rendered form of the violation.
func (v *Violation) Error() string { return v.rendered }

// Unwrap returns ErrContractViolation for the contract kinds and ErrFailure
// for KindFailure.
func (v *Violation) Unwrap() error {
	if v.kind == KindFailure {
		return ErrFailure
	}

	return ErrContractViolation
}

// render produces the canonical message form:
//
//	\n<prefix>\n<message>\n(<file>:<line>)\n    located, with prefix
//	\n<message>\n(<file>:<line>)\n             located, KindFailure
//	\n<prefix>\n<message>\n                    unlocated, with prefix
//	<message>                                  unlocated, KindFailure
func render(kind Kind, message, file string, line int) string {
	prefix := kind.Prefix()

	if file == "" && prefix == "" {
		return message
	}

	var sb strings.Builder

	sb.WriteString("\n")

	if prefix != "" {
		sb.WriteString(prefix)
		sb.WriteString("\n")
	}

	sb.WriteString(message)
	sb.WriteString("\n")

	if file != "" {
		sb.WriteString("(")
		sb.WriteString(file)
		sb.WriteString(":")
		sb.WriteString(strconv.Itoa(line))
		sb.WriteString(")\n")
	}

	return sb.String()
}
