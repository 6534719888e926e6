// Package apperr defines the failure kinds that abort a run.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies a fatal failure.
type Kind string

const (
	KindUnknown       Kind = ""
	KindConfiguration Kind = "configuration"
	KindNetwork       Kind = "network"
	KindSchema        Kind = "schema"
	KindSelection     Kind = "selection"
	KindDelivery      Kind = "delivery"
)

// Sentinels for errors.Is checks. They match any *Error of the same kind.
var (
	ErrConfiguration = &Error{Kind: KindConfiguration}
	ErrNetwork       = &Error{Kind: KindNetwork}
	ErrSchema        = &Error{Kind: KindSchema}
	ErrSelection     = &Error{Kind: KindSelection}
	ErrDelivery      = &Error{Kind: KindDelivery}
)

// Error is a typed failure carrying its kind and an optional cause.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	msg := e.Msg
	if msg == "" {
		msg = string(e.Kind) + " error"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Configuration reports a missing or malformed setting.
func Configuration(msg string, err error) error {
	return &Error{Kind: KindConfiguration, Msg: msg, Err: err}
}

// Network reports a transport level failure.
func Network(msg string, err error) error {
	return &Error{Kind: KindNetwork, Msg: msg, Err: err}
}

// Schema reports a response that is missing expected fields.
func Schema(msg string, err error) error {
	return &Error{Kind: KindSchema, Msg: msg, Err: err}
}

// Selection reports that nothing could be selected.
func Selection(msg string, err error) error {
	return &Error{Kind: KindSelection, Msg: msg, Err: err}
}

// Delivery reports a rejected notification.
func Delivery(msg string, err error) error {
	return &Error{Kind: KindDelivery, Msg: msg, Err: err}
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// ExitCode maps err to a process exit status. nil maps to 0.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	switch KindOf(err) {
	case KindConfiguration:
		return 2
	case KindNetwork:
		return 3
	case KindSchema:
		return 4
	case KindSelection:
		return 5
	case KindDelivery:
		return 6
	default:
		return 1
	}
}
