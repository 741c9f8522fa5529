// Copyright 2026 The Sundial Authors
// SPDX-License-Identifier: Apache-2.0

package ipc

import (
	"errors"
	"fmt"
)

// Code classifies a method-call failure. Codes travel in the response
// envelope alongside the message so the client can distinguish, for
// example, a policy denial from a missing zone database without
// parsing error text.
type Code string

const (
	// CodeInvalidArgument marks malformed or contradictory mutation
	// input (unknown timezone, non-positive absolute time).
	CodeInvalidArgument Code = "invalid-argument"

	// CodeAuthRequired means the policy authority wants interactive
	// confirmation but the caller did not permit interaction.
	CodeAuthRequired Code = "auth-required"

	// CodeAuthDenied means both the policy authority and the
	// capability fallback refused the mutation.
	CodeAuthDenied Code = "auth-denied"

	// CodeUnsupported marks a feature that is intentionally absent,
	// such as NTP control.
	CodeUnsupported Code = "unsupported"

	// CodeNotFound marks a required file or device that is absent.
	CodeNotFound Code = "not-found"

	// CodeDevice marks a control-call failure against the RTC device.
	CodeDevice Code = "device-error"

	// CodeIO marks a filesystem read or write failure.
	CodeIO Code = "io-error"

	// CodeInternal marks unexpected failures: arithmetic overflow,
	// kernel call errors with no more specific classification.
	CodeInternal Code = "internal"
)

// Error is a structured method-call failure. Every error that crosses
// the socket boundary is one of these; the server maps anything else
// to CodeInternal.
type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Errorf builds an *Error with the given code and formatted message.
func Errorf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// InvalidArgumentf builds a CodeInvalidArgument error.
func InvalidArgumentf(format string, args ...any) *Error {
	return Errorf(CodeInvalidArgument, format, args...)
}

// Unsupportedf builds a CodeUnsupported error.
func Unsupportedf(format string, args ...any) *Error {
	return Errorf(CodeUnsupported, format, args...)
}

// NotFoundf builds a CodeNotFound error.
func NotFoundf(format string, args ...any) *Error {
	return Errorf(CodeNotFound, format, args...)
}

// Devicef builds a CodeDevice error.
func Devicef(format string, args ...any) *Error {
	return Errorf(CodeDevice, format, args...)
}

// IOf builds a CodeIO error.
func IOf(format string, args ...any) *Error {
	return Errorf(CodeIO, format, args...)
}

// Internalf builds a CodeInternal error.
func Internalf(format string, args ...any) *Error {
	return Errorf(CodeInternal, format, args...)
}

// CodeOf extracts the Code from err. Unclassified errors report
// CodeInternal.
func CodeOf(err error) Code {
	var structured *Error
	if errors.As(err, &structured) {
		return structured.Code
	}
	return CodeInternal
}
