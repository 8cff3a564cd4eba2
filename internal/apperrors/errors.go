package apperrors

import (
	"errors"
	"strings"
)

type Kind string

const (
	KindInput  Kind = "input"
	KindEncode Kind = "encode"
	KindOutput Kind = "output"
	KindUsage  Kind = "usage"
	KindCheck  Kind = "check"
)

// Exit statuses returned by the CLI for each error kind.
const (
	ExitOK     = 0
	ExitInput  = 1
	ExitEncode = 2
	ExitOutput = 3
	ExitCheck  = 4
	ExitUsage  = 64
)

type Error struct {
	Kind Kind
	// SafeMessage is intended for user-facing output and logs.
	SafeMessage string
	// Cause keeps the original error for troubleshooting.
	Cause error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	msg := strings.TrimSpace(e.SafeMessage)
	if msg != "" {
		return msg
	}
	if e.Cause != nil {
		return e.Cause.Error()
	}
	return "unknown error"
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func defaultSafeMessage(kind Kind) string {
	switch kind {
	case KindInput:
		return "Error reading file."
	case KindEncode:
		return "Error during encoding."
	case KindOutput:
		return "Error writing output."
	case KindUsage:
		return "Invalid usage."
	case KindCheck:
		return "Catalog check failed."
	default:
		return "Request failed."
	}
}

func New(kind Kind, safeMessage string, cause error) error {
	msg := strings.TrimSpace(safeMessage)
	if msg == "" {
		msg = defaultSafeMessage(kind)
	}
	return &Error{
		Kind:        kind,
		SafeMessage: msg,
		Cause:       cause,
	}
}

func Output(err error) error {
	return New(KindOutput, "", err)
}

func KindOf(err error) (Kind, bool) {
	var e *Error
	if !errors.As(err, &e) {
		return "", false
	}
	return e.Kind, true
}

// ExitCode maps err to the process exit status. Errors without a kind
// (cobra flag parsing, unknown commands) are treated as usage errors.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	kind, ok := KindOf(err)
	if !ok {
		return ExitUsage
	}
	switch kind {
	case KindInput:
		return ExitInput
	case KindEncode:
		return ExitEncode
	case KindOutput:
		return ExitOutput
	case KindCheck:
		return ExitCheck
	default:
		return ExitUsage
	}
}
