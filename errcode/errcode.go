package errcode

import (
	"errors"

	"growkit-go/drivers/dht"
)

// Code is a stable, telemetry-facing error identifier.
// It is a string newtype, comparable, allocation-free, and implements error.
type Code string

func (c Code) Error() string { return string(c) }

// Canonical codes (short, stable).
const (
	OK            Code = "ok"
	Busy          Code = "busy"
	Unsupported   Code = "unsupported"
	InvalidParams Code = "invalid_params"

	NoResponse       Code = "no_response"
	ChecksumMismatch Code = "checksum_mismatch"
	Timeout          Code = "timeout"
	NotReady         Code = "not_ready"

	UnknownPin Code = "unknown_pin"
	PinInUse   Code = "pin_in_use"

	Error Code = "error" // generic fallback
)

// Optional wrapper when we want to keep context and a cause.
type E struct {
	C   Code
	Op  string
	Msg string
	Err error
}

func (e *E) Error() string {
	if e.Msg != "" {
		return string(e.C) + ": " + e.Msg
	}
	return string(e.C)
}
func (e *E) Unwrap() error { return e.Err }
func (e *E) Code() Code    { return e.C }

// Of extracts a Code from an error, defaulting to Error.
func Of(err error) Code {
	if err == nil {
		return OK
	}
	if c, ok := err.(Code); ok {
		return c
	}
	type coder interface{ Code() Code }
	if x, ok := err.(coder); ok {
		return x.Code()
	}
	return Error
}

// MapDriverErr maps sensor driver errors to a Code.
func MapDriverErr(err error) Code {
	switch {
	case err == nil:
		return OK
	case errors.Is(err, dht.ErrNoResponse):
		return NoResponse
	case errors.Is(err, dht.ErrChecksum):
		return ChecksumMismatch
	case errors.Is(err, dht.ErrTimeout):
		return Timeout
	default:
		return Error
	}
}
