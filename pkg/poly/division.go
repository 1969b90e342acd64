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
	"math/big"
	"slices"

	log "github.com/sirupsen/logrus"
)

// MAX_DIVISION_STEPS bounds the number of reduction steps performed by long
// division.  Multivariate divisors whose leading letter is shared by several
// terms can otherwise cycle without reducing the remainder.
const MAX_DIVISION_STEPS = 1 << 14

// DivMod performs polynomial long division of this polynomial by another,
// returning the quotient and remainder such that quotient*other + remainder
// equals this polynomial.  Division is driven by the letter of the divisor
// with the greatest power: at each step the leading term of the remainder
// (with respect to that letter) is divided by the leading term of the divisor.
// This continues until the degree of the remainder is less than that of the
// divisor.
//
// Division by zero gives ErrDivisionByZero, whilst zero divided by any other
// polynomial gives a zero quotient and remainder.  When the divisor has a greater
// degree than this polynomial, or some leading term cannot be divided exactly,
// ErrNotDivisible is returned.  Callers wanting a result regardless should
// use TrueDiv, which falls back to an algebraic fraction.
func (p *Polynomial) DivMod(other *Polynomial) (*Polynomial, *Polynomial, error) {
	var (
		a = p.Clone().Simplify()
		b = other.Clone().Simplify()
		q = Zero()
	)
	// Dispatch trivial cases
	switch {
	case b.IsZero():
		return nil, nil, ErrDivisionByZero
	case a.IsZero():
		return Zero(), Zero(), nil
	case b.Equal(Int(1)):
		return a, Zero(), nil
	case b.Equal(Int(-1)):
		return a.Neg(), Zero(), nil
	case a.Degree() < b.Degree():
		return nil, nil, fmt.Errorf("%w: degree %d less than degree %d", ErrNotDivisible, a.Degree(), b.Degree())
	}
	//
	letter, _ := b.MaxLetter(true)
	b.sortBy(letter)
	// Leading term and remainder of the divisor
	lead, rest := b.terms[0], &Polynomial{b.terms[1:]}
	//
	for step := 0; a.Degree() >= b.Degree(); step++ {
		if a.IsZero() {
			break
		} else if step == MAX_DIVISION_STEPS {
			return nil, nil, fmt.Errorf("%w: no reduction after %d steps", ErrNotDivisible, step)
		}
		//
		a.sortBy(letter)
		//
		term, err := a.terms[0].Div(lead)
		if err != nil {
			return nil, nil, err
		}
		//
		log.Debugf("division step %d: %s / %s = %s", step, a.terms[0], lead, term)
		//
		q.terms = append(q.terms, term)
		a = (&Polynomial{a.terms[1:]}).Sub(rest.Mul(New(term)))
	}
	//
	return q.Simplify(), a, nil
}

// Div returns the quotient of DivMod.
func (p *Polynomial) Div(other *Polynomial) (*Polynomial, error) {
	q, _, err := p.DivMod(other)
	return q, err
}

// Mod returns the remainder of DivMod.
func (p *Polynomial) Mod(other *Polynomial) (*Polynomial, error) {
	_, r, err := p.DivMod(other)
	return r, err
}

// Quotient is the outcome of true division, holding either an exact
// polynomial quotient or (when no such quotient exists) an algebraic fraction.
type Quotient struct {
	poly *Polynomial
	frac *AlgebraicFraction
}

// IsPolynomial checks whether the division was exact.
func (q Quotient) IsPolynomial() bool {
	return q.poly != nil
}

// Polynomial returns the exact quotient, or nil if the division was not exact.
func (q Quotient) Polynomial() *Polynomial {
	return q.poly
}

// Fraction returns the fallback algebraic fraction, or nil if the division was
// exact.
func (q Quotient) Fraction() *AlgebraicFraction {
	return q.frac
}

func (q Quotient) String() string {
	if q.poly != nil {
		return q.poly.String()
	}
	//
	return q.frac.Inline()
}

// TrueDiv divides this polynomial by another.  If the division is exact, the
// polynomial quotient is returned.  Otherwise, the result is an unevaluated
// algebraic fraction pairing both operands unchanged.  Only division by zero
// is reported as an error.
func (p *Polynomial) TrueDiv(other *Polynomial) (Quotient, error) {
	quotient, remainder, err := p.DivMod(other)
	//
	switch {
	case errors.Is(err, ErrDivisionByZero):
		return Quotient{}, err
	case err == nil && remainder.IsZero():
		return Quotient{poly: quotient}, nil
	}
	//
	frac, err := NewFraction(p, other)
	//
	return Quotient{frac: frac}, err
}

// DivAll divides every monomial of this polynomial by the given monomial.
func (p *Polynomial) DivAll(divisor Monomial) (*Polynomial, error) {
	var terms = make([]Monomial, len(p.terms))
	//
	for i, t := range p.terms {
		ith, err := t.Div(divisor)
		if err != nil {
			return nil, err
		}
		//
		terms[i] = ith
	}
	//
	return New(terms...), nil
}

// GCD returns the greatest common divisor of the monomials of this polynomial.
// That is, the monomial whose coefficient is the gcd of all (integral)
// coefficients and whose letters are those common to every monomial, raised to
// their minimum power.  Non-integral coefficients contribute the gcd of their
// numerators.
func (p *Polynomial) GCD() Monomial {
	var (
		g      = new(big.Int)
		powers = make(map[string]uint)
	)
	//
	for _, t := range p.terms {
		g.GCD(nil, nil, g, new(big.Int).Abs(t.coefficient.Num()))
	}
	//
	for _, l := range p.JointLetters() {
		powers[l] = slices.Min(p.RawPowers(l))
	}
	//
	return NewMonomial(new(big.Rat).SetInt(g), powers)
}

// LCM returns the least common multiple of the monomials of this polynomial.
// That is, the monomial whose coefficient is the lcm of all (integral)
// coefficients and which contains every letter raised to its maximum power.
func (p *Polynomial) LCM() Monomial {
	var (
		l      = big.NewInt(1)
		powers = make(map[string]uint)
	)
	//
	for _, t := range p.terms {
		c := new(big.Int).Abs(t.coefficient.Num())
		if c.Sign() == 0 {
			continue
		}
		//
		g := new(big.Int).GCD(nil, nil, l, c)
		l.Mul(l, c).Quo(l, g)
	}
	//
	for _, letter := range p.Letters() {
		powers[letter], _ = p.MaxPower(letter)
	}
	//
	return NewMonomial(new(big.Rat).SetInt(l), powers)
}

// GCD returns a greatest common divisor of two polynomials, computed with
// Euclid's algorithm over Mod.  The result is normalised to be monic.  When
// the polynomials cannot be divided (e.g. they share no letter), the result is
// one.
func GCD(a, b *Polynomial) *Polynomial {
	var x, y = a.Clone().Simplify(), b.Clone().Simplify()
	//
	if x.Degree() < y.Degree() {
		x, y = y, x
	}
	//
	for !y.IsZero() {
		r, err := x.Mod(y)
		if err != nil {
			return Int(1)
		}
		//
		x, y = y, r
	}
	//
	return monic(x)
}

// LCM returns a least common multiple of two polynomials, as a*b/gcd(a,b).
func LCM(a, b *Polynomial) *Polynomial {
	var (
		g       = GCD(a, b)
		prod    = a.Mul(b)
		q, _, _ = prod.DivMod(g)
	)
	//
	if q == nil {
		return prod
	}
	//
	return q
}

// Normalise a polynomial by dividing through by its leading coefficient.
func monic(p *Polynomial) *Polynomial {
	if p.IsZero() {
		return p
	}
	//
	return p.MulScalar(new(big.Rat).Inv(p.terms[0].coefficient))
}

// Sort the monomials of this polynomial in place, such that the exponents of
// the given letter are descending.  Ties retain the canonical order.
func (p *Polynomial) sortBy(letter string) {
	slices.SortStableFunc(p.terms, func(l, r Monomial) int {
		var le, re = l.Exponent(letter), r.Exponent(letter)
		//
		switch {
		case le > re:
			return -1
		case le < re:
			return 1
		default:
			return cmpPowers(l, r)
		}
	})
}
