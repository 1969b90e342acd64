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
package calculus

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/consensys/go-poly/pkg/poly"
)

var (
	// ErrNegativeOrder indicates a derivative or antiderivative of negative order.
	ErrNegativeOrder = errors.New("calculus: order must be non-negative")
	// ErrInterpolation indicates interpolation points which do not determine a
	// unique polynomial.
	ErrInterpolation = errors.New("calculus: invalid interpolation points")
)

// DEFAULT_LETTER is used when a polynomial has no letters of its own.
const DEFAULT_LETTER = "x"

// Derivative returns the m-th derivative of a polynomial with respect to a
// given letter.  Letters other than the given one are treated as constants.
func Derivative(p *poly.Polynomial, letter string, m int) (*poly.Polynomial, error) {
	if m < 0 {
		return nil, fmt.Errorf("%w (was %d)", ErrNegativeOrder, m)
	}
	//
	for i := 0; i < m && !p.IsZero(); i++ {
		p = derive(p, letter)
	}
	//
	return p, nil
}

// Polyder returns the m-th derivative of a polynomial with respect to its
// first letter.
func Polyder(p *poly.Polynomial, m int) (*poly.Polynomial, error) {
	return Derivative(p, firstLetter(p), m)
}

func derive(p *poly.Polynomial, letter string) *poly.Polynomial {
	var terms []poly.Monomial
	//
	for _, t := range p.Terms() {
		e := t.Exponent(letter)
		// Constants (w.r.t. letter) vanish
		if e == 0 {
			continue
		}
		//
		powers := t.Powers()
		powers[letter] = e - 1
		coeff := t.Coefficient()
		coeff.Mul(coeff, new(big.Rat).SetUint64(uint64(e)))
		terms = append(terms, poly.NewMonomial(coeff, powers))
	}
	//
	return poly.New(terms...)
}

// Integral returns the m-th antiderivative of a polynomial with respect to a
// given letter.  Integration constants are given in order of integration, so
// the first constant is added after the first integration, and so on.
// Missing constants default to zero.
func Integral(p *poly.Polynomial, letter string, m int, constants ...*big.Rat) (*poly.Polynomial, error) {
	if m < 0 {
		return nil, fmt.Errorf("%w (was %d)", ErrNegativeOrder, m)
	}
	//
	for i := 0; i < m; i++ {
		p = integrate(p, letter)
		//
		if i < len(constants) && constants[i] != nil {
			p = p.Add(poly.Const(constants[i]))
		}
	}
	//
	return p, nil
}

// Polyint returns the m-th antiderivative of a polynomial with respect to its
// first letter.
func Polyint(p *poly.Polynomial, m int, constants ...*big.Rat) (*poly.Polynomial, error) {
	return Integral(p, firstLetter(p), m, constants...)
}

func integrate(p *poly.Polynomial, letter string) *poly.Polynomial {
	var terms = make([]poly.Monomial, 0, p.Len())
	//
	for _, t := range p.Terms() {
		var (
			e      = t.Exponent(letter) + 1
			powers = t.Powers()
			coeff  = t.Coefficient()
		)
		//
		powers[letter] = e
		coeff.Quo(coeff, new(big.Rat).SetUint64(uint64(e)))
		terms = append(terms, poly.NewMonomial(coeff, powers))
	}
	//
	return poly.New(terms...)
}

// DefiniteIntegral returns the integral of a univariate polynomial between a
// lower limit a and an upper limit b, i.e. F(b) - F(a) where F is an
// antiderivative.  Polynomials with more than one letter give
// poly.ErrUnboundLetter.
func DefiniteIntegral(p *poly.Polynomial, a, b *big.Rat) (*big.Rat, error) {
	F, err := Polyint(p, 1)
	if err != nil {
		return nil, err
	}
	//
	upper, err := F.Call(b)
	if err != nil {
		return nil, err
	}
	//
	lower, err := F.Call(a)
	if err != nil {
		return nil, err
	}
	//
	return upper.Sub(upper, lower), nil
}

// FromRoots returns the monic polynomial (letter - r1)(letter - r2)...  With no
// roots, this is the constant one.
func FromRoots(letter string, roots ...*big.Rat) *poly.Polynomial {
	var res = poly.Int(1)
	//
	for _, r := range roots {
		res = res.Mul(poly.Var(letter).Sub(poly.Const(r)))
	}
	//
	return res
}

// Divisible checks whether b divides a exactly, i.e. whether the remainder of
// a / b is zero.
func Divisible(a, b *poly.Polynomial) bool {
	if a.Degree() < b.Degree() {
		return false
	}
	//
	r, err := a.Mod(b)
	//
	return err == nil && r.IsZero()
}

// Interpolate returns the polynomial of least degree (in x) passing through
// the points (xs[i], ys[i]), using Lagrange's method.  The abscissas must be
// distinct, and both slices must have the same non-zero length.
func Interpolate(xs, ys []*big.Rat) (*poly.Polynomial, error) {
	if len(xs) == 0 || len(xs) != len(ys) {
		return nil, fmt.Errorf("%w: %d abscissas, %d ordinates", ErrInterpolation, len(xs), len(ys))
	}
	//
	var res = poly.Zero()
	//
	for j := range xs {
		basis := poly.Int(1)
		//
		for m := range xs {
			if m == j {
				continue
			}
			//
			d := new(big.Rat).Sub(xs[j], xs[m])
			if d.Sign() == 0 {
				return nil, fmt.Errorf("%w: repeated abscissa %s", ErrInterpolation, xs[j].RatString())
			}
			//
			factor := poly.Var(DEFAULT_LETTER).Sub(poly.Const(xs[m]))
			basis = basis.Mul(factor.MulScalar(d.Inv(d)))
		}
		//
		res = res.Add(basis.MulScalar(ys[j]))
	}
	//
	return res, nil
}

func firstLetter(p *poly.Polynomial) string {
	if letters := p.Letters(); len(letters) > 0 {
		return letters[0]
	}
	//
	return DEFAULT_LETTER
}
