// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package rpc

import (
	"errors"
	"fmt"
)

// Sentinel errors for remote tree synchronization.
var (
	// ErrUnknownType indicates a type tag with no factory branch or codec.
	ErrUnknownType = errors.New("unknown type tag")

	// ErrUnknownReference indicates an @ref id that was never registered.
	ErrUnknownReference = errors.New("unknown object reference")

	// ErrDesync indicates an event that cannot occur at this point of a
	// well-formed stream.
	ErrDesync = errors.New("event stream out of sync")

	// ErrUnexpectedEnd indicates the stream ended before the tree did.
	ErrUnexpectedEnd = errors.New("unexpected end of event stream")

	// ErrNotImplemented indicates a value combination the dialect does not
	// support.
	ErrNotImplemented = errors.New("not implemented")

	// ErrNilTree indicates a transmission of a nil tree.
	ErrNilTree = errors.New("nil tree")
)

// ErrorKind separates corrupted streams from missing support.
type ErrorKind int

const (
	// DesyncError means the stream cannot be interpreted further.
	DesyncError ErrorKind = iota
	// ImplementationGap means a valid stream hit unsupported code.
	ImplementationGap
)

func (k ErrorKind) String() string {
	if k == ImplementationGap {
		return "implementation_gap"
	}
	return "wire_corruption"
}

// ProtocolError aborts a transmission. Both kinds are fatal for the
// session that raised them.
type ProtocolError struct {
	Kind ErrorKind
	// Op is the primitive that failed, e.g. "ReceiveNode".
	Op  string
	Err error
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("rpc %s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *ProtocolError) Unwrap() error { return e.Err }

// IsDesync reports whether err is a stream corruption error.
func IsDesync(err error) bool {
	var pe *ProtocolError
	return errors.As(err, &pe) && pe.Kind == DesyncError
}

// IsImplementationGap reports whether err was raised by unsupported code.
func IsImplementationGap(err error) bool {
	var pe *ProtocolError
	return errors.As(err, &pe) && pe.Kind == ImplementationGap
}

// Desync aborts the running traversal with a stream corruption error.
func Desync(op string, err error, format string, args ...any) {
	panic(&ProtocolError{Kind: DesyncError, Op: op, Err: fmt.Errorf("%w: "+format, append([]any{err}, args...)...)})
}

// NotImplemented aborts the running traversal with an implementation gap.
func NotImplemented(op string, format string, args ...any) {
	panic(&ProtocolError{Kind: ImplementationGap, Op: op, Err: fmt.Errorf("%w: "+format, append([]any{ErrNotImplemented}, args...)...)})
}

// transportFailure carries an I/O error out of a traversal.
type transportFailure struct{ err error }

// recoverAbort turns a traversal abort into an error. Other panics are
// re-raised.
func recoverAbort(errp *error) {
	r := recover()
	if r == nil {
		return
	}
	switch v := r.(type) {
	case *ProtocolError:
		*errp = v
	case transportFailure:
		*errp = v.err
	default:
		panic(r)
	}
}
