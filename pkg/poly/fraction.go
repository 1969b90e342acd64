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
	"math/big"
	"strings"
	"unicode/utf8"
)

// AlgebraicFraction represents the (unreduced) ratio of two polynomials.  No
// attempt is made to cancel common factors; arithmetic is defined purely by
// cross-multiplication.
type AlgebraicFraction struct {
	numerator   *Polynomial
	denominator *Polynomial
}

// NewFraction constructs an algebraic fraction, failing if the denominator is
// zero.
func NewFraction(numerator, denominator *Polynomial) (*AlgebraicFraction, error) {
	if denominator.IsZero() {
		return nil, ErrDivisionByZero
	}
	//
	return &AlgebraicFraction{numerator.Clone(), denominator.Clone()}, nil
}

// FractionOf constructs the fraction p/1.
func FractionOf(p *Polynomial) *AlgebraicFraction {
	return &AlgebraicFraction{p.Clone(), Int(1)}
}

// Invert returns the algebraic fraction v/p, where v is a scalar.  This fails
// if p is zero.
func (p *Polynomial) Invert(v *big.Rat) (*AlgebraicFraction, error) {
	return NewFraction(Const(v), p)
}

// Numerator returns the numerator of this fraction.
func (f *AlgebraicFraction) Numerator() *Polynomial {
	return f.numerator
}

// Denominator returns the denominator of this fraction.
func (f *AlgebraicFraction) Denominator() *Polynomial {
	return f.denominator
}

// Terms returns both the numerator and the denominator.
func (f *AlgebraicFraction) Terms() (*Polynomial, *Polynomial) {
	return f.numerator, f.denominator
}

// Invert swaps the numerator and denominator of this fraction.  This fails if
// the numerator is zero.
func (f *AlgebraicFraction) Invert() (*AlgebraicFraction, error) {
	return NewFraction(f.denominator, f.numerator)
}

// Neg negates this fraction.
func (f *AlgebraicFraction) Neg() *AlgebraicFraction {
	return &AlgebraicFraction{f.numerator.Neg(), f.denominator}
}

// Add returns a/b + c/d = (ad + cb)/bd.
func (f *AlgebraicFraction) Add(other *AlgebraicFraction) *AlgebraicFraction {
	var (
		num = f.numerator.Mul(other.denominator).Add(other.numerator.Mul(f.denominator))
		den = f.denominator.Mul(other.denominator)
	)
	//
	return &AlgebraicFraction{num, den}
}

// Sub returns a/b - c/d = (ad - cb)/bd.
func (f *AlgebraicFraction) Sub(other *AlgebraicFraction) *AlgebraicFraction {
	return f.Add(other.Neg())
}

// Mul returns a/b * c/d = ac/bd.
func (f *AlgebraicFraction) Mul(other *AlgebraicFraction) *AlgebraicFraction {
	return &AlgebraicFraction{f.numerator.Mul(other.numerator), f.denominator.Mul(other.denominator)}
}

// Div returns (a/b) / (c/d) = ad/bc, which fails when c is zero.
func (f *AlgebraicFraction) Div(other *AlgebraicFraction) (*AlgebraicFraction, error) {
	return NewFraction(f.numerator.Mul(other.denominator), f.denominator.Mul(other.numerator))
}

// Pow raises both numerator and denominator to a given power.
func (f *AlgebraicFraction) Pow(n uint) *AlgebraicFraction {
	return &AlgebraicFraction{f.numerator.Pow(n), f.denominator.Pow(n)}
}

// Equal checks whether numerators and denominators are (respectively) equal.
func (f *AlgebraicFraction) Equal(other *AlgebraicFraction) bool {
	return f.numerator.Equal(other.numerator) && f.denominator.Equal(other.denominator)
}

// Equivalent checks whether two fractions represent the same ratio, i.e.
// whether a*d == c*b.
func (f *AlgebraicFraction) Equivalent(other *AlgebraicFraction) bool {
	return f.numerator.Mul(other.denominator).Equal(other.numerator.Mul(f.denominator))
}

// Eval evaluates this fraction under a given environment.  This fails when a
// letter is unbound, or the denominator evaluates to zero.
func (f *AlgebraicFraction) Eval(env map[string]*big.Rat) (*big.Rat, error) {
	n, err := f.numerator.Eval(env)
	if err != nil {
		return nil, err
	}
	//
	d, err := f.denominator.Eval(env)
	if err != nil {
		return nil, err
	} else if d.Sign() == 0 {
		return nil, ErrDivisionByZero
	}
	//
	return n.Quo(n, d), nil
}

// Inline renders this fraction on a single line, as in "(x + 1)/(x - 1)".
func (f *AlgebraicFraction) Inline() string {
	return "(" + f.numerator.String() + ")/(" + f.denominator.String() + ")"
}

// String renders this fraction over three lines, with the numerator and
// denominator centred above and below a dividing bar.
func (f *AlgebraicFraction) String() string {
	var (
		num   = f.numerator.String()
		den   = f.denominator.String()
		width = max(utf8.RuneCountInString(num), utf8.RuneCountInString(den))
	)
	//
	return strings.Join([]string{centre(num, width), strings.Repeat("−", width), centre(den, width)}, "\n")
}

func centre(s string, width int) string {
	var (
		n     = utf8.RuneCountInString(s)
		left  = (width - n) / 2
		right = width - n - left
	)
	//
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}
