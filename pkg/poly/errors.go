// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package poly

import (
	"errors"
	"fmt"
)

var (
	// ErrParse is the root of all parse errors.  Use errors.As with a
	// *ParseError to recover the position of the problem.
	ErrParse = errors.New("poly: malformed polynomial")
	// ErrType indicates an operand (or assigned value) of an unsupported shape.
	ErrType = errors.New("poly: unsupported operand type")
	// ErrNotDivisible indicates long division could not produce a polynomial
	// quotient (e.g. the divisor has a higher degree than the dividend).
	ErrNotDivisible = errors.New("poly: polynomials are not divisible")
	// ErrDivisionByZero indicates division (or a fraction) by the zero polynomial.
	ErrDivisionByZero = errors.New("poly: division by zero")
	// ErrNoSuchLetter indicates a query on a letter absent from the polynomial.
	ErrNoSuchLetter = errors.New("poly: letter not in polynomial")
	// ErrIndex indicates a monomial position outside the polynomial.
	ErrIndex = errors.New("poly: index out of range")
	// ErrUnboundLetter indicates evaluation without a value for some letter.
	ErrUnboundLetter = errors.New("poly: letter has no value")
	// ErrUnsupported indicates an operation not defined for this polynomial.
	ErrUnsupported = errors.New("poly: unsupported operation")
)

// ParseError is a structured error which retains the span of the original
// string where an error occurred, along with an error message.
type ParseError struct {
	// Original text being parsed
	text []rune
	// Span of the offending characters.
	span Span
	// Error message being reported
	msg string
}

func newParseError(text []rune, span Span, msg string) *ParseError {
	return &ParseError{text, span, msg}
}

// Span returns the span of the original text on which this error is reported.
func (p *ParseError) Span() Span {
	return p.span
}

// Message returns the message to be reported.
func (p *ParseError) Message() string {
	return p.msg
}

// Text returns the string which failed to parse.
func (p *ParseError) Text() string {
	return string(p.text)
}

// Error implements the error interface.
func (p *ParseError) Error() string {
	return fmt.Sprintf("%d:%d: %s", p.span.Start(), p.span.End(), p.msg)
}

// Unwrap allows errors.Is(err, ErrParse) to match any parse error.
func (p *ParseError) Unwrap() error {
	return ErrParse
}
