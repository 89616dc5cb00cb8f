// Copyright 2016, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package errors implements functions to manipulate codec errors.
//
// In idiomatic Go, it is an anti-pattern to use panics as a form of error
// reporting in the API. Instead, the expected way to transmit errors is by
// returning an error value. The recursive tree walkers in this repository
// are simpler if a failure deep inside the recursion can unwind the whole
// walk at once, so the internal packages use Panic for that purpose and
// recover at their API boundary with Recover.
//
// The Panic and Recover functions in this package provide a safe way to
// recover from errors only generated from within this repository.
//
// Example usage:
//
//	func Foo() (err error) {
//		defer errors.Recover(&err)
//
//		if rand.Intn(2) == 0 {
//			// Unexpected panics will not be caught by Recover.
//			io.Closer(nil).Close()
//		} else {
//			// Errors thrown by Panic will be caught by Recover.
//			errors.Panic(errors.Error{Code: errors.Internal, Msg: "whoopsie"})
//		}
//	}
package errors

import "strings"

const (
	// Unknown indicates that there is no classification for this error.
	Unknown = iota

	// Internal indicates that this error is due to an internal bug.
	// Users should file a issue report if this type of error is encountered.
	Internal

	// Invalid indicates that this error is due to the user misusing the API
	// and is indicative of a bug on the user's part.
	Invalid

	// LimitExceeded indicates that a code or structure grew beyond what the
	// format is able to represent.
	LimitExceeded

	// Corrupted indicates that the container is malformed or was altered.
	Corrupted

	// Structural indicates that a serialized tree or bit stream does not
	// describe a valid Huffman tree or sequence of codes.
	Structural

	// Closed indicates that the handlers are closed.
	Closed
)

var codeMap = map[int]string{
	Unknown:       "unknown error",
	Internal:      "internal error",
	Invalid:       "invalid argument",
	LimitExceeded: "limit exceeded",
	Corrupted:     "malformed container",
	Structural:    "structural corruption",
	Closed:        "closed handler",
}

type Error struct {
	Code int    // The error type
	Pkg  string // Name of the package where the error originated
	Msg  string // Descriptive message about the error (optional)
}

func (e Error) Error() string {
	var ss []string
	for _, s := range []string{e.Pkg, codeMap[e.Code], e.Msg} {
		if s != "" {
			ss = append(ss, s)
		}
	}
	return strings.Join(ss, ": ")
}

func (e Error) IsInternal() bool      { return e.Code == Internal }
func (e Error) IsInvalid() bool       { return e.Code == Invalid }
func (e Error) IsLimitExceeded() bool { return e.Code == LimitExceeded }
func (e Error) IsCorrupted() bool     { return e.Code == Corrupted }
func (e Error) IsStructural() bool    { return e.Code == Structural }
func (e Error) IsClosed() bool        { return e.Code == Closed }

func IsInternal(err error) bool      { return isCode(err, Internal) }
func IsInvalid(err error) bool       { return isCode(err, Invalid) }
func IsLimitExceeded(err error) bool { return isCode(err, LimitExceeded) }
func IsCorrupted(err error) bool     { return isCode(err, Corrupted) }
func IsStructural(err error) bool    { return isCode(err, Structural) }
func IsClosed(err error) bool        { return isCode(err, Closed) }

func isCode(err error, code int) bool {
	if cerr, ok := err.(Error); ok && cerr.Code == code {
		return true
	}
	return false
}

// errWrap is used by Panic and Recover to ensure that only errors raised by
// Panic are recovered by Recover.
type errWrap struct{ e *error }

func Recover(err *error) {
	switch ex := recover().(type) {
	case nil:
		// Do nothing.
	case errWrap:
		*err = *ex.e
	default:
		panic(ex)
	}
}

func Panic(err error) {
	panic(errWrap{&err})
}
