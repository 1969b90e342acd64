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
	"bytes"
	"math/big"
	"slices"
	"sort"
)

// Polynomial represents a sum of monomials.  Unless constructed via NewRaw,
// a polynomial is kept in canonical form: similar monomials are merged, zero
// terms are removed and the remaining terms are sorted according to
// Monomial.Cmp.  Observe that an uninitialised Polynomial corresponds with
// zero.
//
// Polynomials provide no internal locking.  Concurrent readers are safe
// provided no one is mutating the polynomial (e.g. via Update, Append or any
// of the indexed setters) at the same time.
type Polynomial struct {
	terms []Monomial
}

// New constructs a polynomial in canonical form from zero or more well-formed
// monomials.
func New(terms ...Monomial) *Polynomial {
	p := NewRaw(terms...)
	return p.Simplify()
}

// NewRaw constructs a polynomial from zero or more monomials without
// simplifying them.  The monomials are retained in the order given.  Use
// Simplify to put the polynomial into canonical form.
func NewRaw(terms ...Monomial) *Polynomial {
	return &Polynomial{slices.Clone(terms)}
}

// FromTerms constructs a polynomial from zero or more monomials, checking
// each is well-formed.
func FromTerms(terms ...Monomial) (*Polynomial, error) {
	for i, t := range terms {
		if !t.IsValid() {
			return nil, malformed(i)
		}
	}
	//
	return New(terms...), nil
}

// Zero returns the zero polynomial.
func Zero() *Polynomial {
	return &Polynomial{}
}

// Const returns the constant polynomial c.
func Const(c *big.Rat) *Polynomial {
	return New(Constant(c))
}

// Int returns the constant polynomial n.
func Int(n int64) *Polynomial {
	return New(Constant(big.NewRat(n, 1)))
}

// Var returns the polynomial consisting of a single letter.
func Var(letter string) *Polynomial {
	return New(Variable(letter))
}

// Poly1D constructs a univariate polynomial from its coefficients, given from
// the highest power down to the constant term.  For example, [3, -2, 0, 1]
// gives 3x^3 - 2x^2 + 1.
func Poly1D(letter string, coeffs ...*big.Rat) *Polynomial {
	var (
		n     = len(coeffs)
		terms = make([]Monomial, n)
	)
	//
	for i, c := range coeffs {
		terms[i] = NewMonomial(c, map[string]uint{letter: uint(n - 1 - i)})
	}
	//
	return New(terms...)
}

// Poly1DInt is a convenience variant of Poly1D for integer coefficients.
func Poly1DInt(letter string, coeffs ...int64) *Polynomial {
	var rs = make([]*big.Rat, len(coeffs))
	//
	for i, c := range coeffs {
		rs[i] = big.NewRat(c, 1)
	}
	//
	return Poly1D(letter, rs...)
}

// Len returns the number of monomials in this polynomial.
func (p *Polynomial) Len() uint {
	return uint(len(p.terms))
}

// Term returns the ith monomial in this polynomial.
func (p *Polynomial) Term(ith uint) Monomial {
	return p.terms[ith]
}

// Terms returns a copy of the monomial sequence of this polynomial.
func (p *Polynomial) Terms() []Monomial {
	return slices.Clone(p.terms)
}

// Clone performs a copy of this polynomial.  Since monomials are immutable,
// this need not be deep.
func (p *Polynomial) Clone() *Polynomial {
	return &Polynomial{slices.Clone(p.terms)}
}

// Simplify puts this polynomial into canonical form (in place), returning it
// for convenience.  Similar monomials are combined by summing their
// coefficients and monomials whose coefficient is zero are removed.  This is
// idempotent.
func (p *Polynomial) Simplify() *Polynomial {
	var (
		terms = slices.Clone(p.terms)
		res   []Monomial
	)
	// Bring similar monomials together
	slices.SortStableFunc(terms, cmpPowers)
	//
	for i := 0; i < len(terms); {
		var (
			ith = terms[i]
			sum = ith.Coefficient()
			j   = i + 1
		)
		//
		for ; j < len(terms) && terms[j].Matches(ith); j++ {
			sum.Add(sum, terms[j].coefficient)
		}
		//
		if sum.Sign() != 0 {
			res = append(res, Monomial{sum, ith.powers})
		}
		//
		i = j
	}
	//
	p.terms = res
	//
	return p
}

// IsZero checks whether this polynomial is equivalent to zero.
func (p *Polynomial) IsZero() bool {
	for _, t := range p.terms {
		if !t.IsZero() {
			return false
		}
	}
	//
	return true
}

// IsNum checks whether this polynomial represents a number, i.e. it is either
// zero or consists of a single constant term.
func (p *Polynomial) IsNum() bool {
	for _, t := range p.terms {
		if !t.IsZero() && !t.IsConstant() {
			return false
		}
	}
	//
	return true
}

// Degree returns the maximum total degree of the monomials in this polynomial.
// Observe that the degree of a non-zero constant is 0, whilst the degree of
// the zero polynomial is (by convention) -1.
func (p *Polynomial) Degree() int {
	var degree = -1
	//
	for _, t := range p.terms {
		if !t.IsZero() {
			degree = max(degree, int(t.Degree()))
		}
	}
	//
	return degree
}

// Letters returns the sorted set of letters appearing in this polynomial.
func (p *Polynomial) Letters() []string {
	var letters []string
	//
	for _, t := range p.terms {
		for _, ith := range t.powers {
			if !slices.Contains(letters, ith.Letter) {
				letters = append(letters, ith.Letter)
			}
		}
	}
	//
	sort.Strings(letters)
	//
	return letters
}

// JointLetters returns the sorted set of letters appearing in every monomial
// of this polynomial.
func (p *Polynomial) JointLetters() []string {
	var joint []string
	//
	for i, t := range p.terms {
		if i == 0 {
			joint = t.Letters()
		} else {
			joint = slices.DeleteFunc(joint, func(l string) bool {
				return t.Exponent(l) == 0
			})
		}
	}
	//
	return joint
}

// MaxLetter returns the letter with the greatest power in this polynomial.
// Ties are resolved in favour of the alphabetically first letter when
// alphabetically holds, and the last otherwise.  If this polynomial has no
// letters, false is returned.
func (p *Polynomial) MaxLetter(alphabetically bool) (string, bool) {
	var (
		letters = p.Letters()
		best    string
		bestExp uint
	)
	//
	if len(letters) == 0 {
		return "", false
	}
	//
	for i, l := range letters {
		e, _ := p.MaxPower(l)
		//
		if i == 0 || e > bestExp || (e == bestExp && !alphabetically) {
			best, bestExp = l, e
		}
	}
	//
	return best, true
}

// Coefficients returns the coefficients of this polynomial in order.
func (p *Polynomial) Coefficients() []*big.Rat {
	var cs = make([]*big.Rat, len(p.terms))
	//
	for i, t := range p.terms {
		cs[i] = t.Coefficient()
	}
	//
	return cs
}

// Float64Coefficients returns the coefficients of this polynomial converted
// into (possibly inexact) floating point values.
func (p *Polynomial) Float64Coefficients() []float64 {
	var cs = make([]float64, len(p.terms))
	//
	for i, t := range p.terms {
		cs[i], _ = t.coefficient.Float64()
	}
	//
	return cs
}

// RightHandSide returns the constant term of this polynomial, if it has one.
func (p *Polynomial) RightHandSide() (*big.Rat, bool) {
	if n := len(p.terms); n > 0 && p.terms[n-1].IsConstant() {
		return p.terms[n-1].Coefficient(), true
	}
	//
	return nil, false
}

// RawPowers returns the exponent of a given letter in each monomial, in order.
// Monomials which do not contain the letter give zero.
func (p *Polynomial) RawPowers(letter string) []uint {
	var powers = make([]uint, len(p.terms))
	//
	for i, t := range p.terms {
		powers[i] = t.Exponent(letter)
	}
	//
	return powers
}

// Powers is like RawPowers, except that all zeros are removed except a
// trailing one.
func (p *Polynomial) Powers(letter string) []uint {
	var (
		raw    = p.RawPowers(letter)
		powers []uint
	)
	//
	if len(raw) == 0 {
		return nil
	}
	//
	for _, e := range raw[:len(raw)-1] {
		if e != 0 {
			powers = append(powers, e)
		}
	}
	//
	return append(powers, raw[len(raw)-1])
}

// MaxPower returns the maximum exponent of a given letter in this polynomial,
// or an error if the letter does not occur.
func (p *Polynomial) MaxPower(letter string) (uint, error) {
	if !slices.Contains(p.Letters(), letter) {
		return 0, ErrNoSuchLetter
	}
	//
	return slices.Max(p.RawPowers(letter)), nil
}

// MinPower returns the minimum exponent of a given letter in this polynomial,
// or an error if the letter does not occur.
func (p *Polynomial) MinPower(letter string) (uint, error) {
	if !slices.Contains(p.Letters(), letter) {
		return 0, ErrNoSuchLetter
	}
	//
	return slices.Min(p.RawPowers(letter)), nil
}

// Get returns the coefficient of the first monomial in which letter has the
// given power.  A power of zero gives the right-hand side.  If there is no
// such monomial, zero is returned.
func (p *Polynomial) Get(power uint, letter string) *big.Rat {
	if power == 0 {
		if rhs, ok := p.RightHandSide(); ok {
			return rhs
		}
		//
		return new(big.Rat)
	}
	//
	for _, t := range p.terms {
		if t.Exponent(letter) == power {
			return t.Coefficient()
		}
	}
	//
	return new(big.Rat)
}

// PTerm pairs a coefficient with the exponent of some letter.
type PTerm struct {
	Coeff *big.Rat
	Exp   uint
}

// ToPList returns each monomial of this polynomial as a coefficient paired
// with the exponent of the given letter.
func (p *Polynomial) ToPList(letter string) []PTerm {
	var ts = make([]PTerm, len(p.terms))
	//
	for i, t := range p.terms {
		ts[i] = PTerm{t.Coefficient(), t.Exponent(letter)}
	}
	//
	return ts
}

// Equal checks whether two polynomials are equal.  That is, whether their
// canonical forms contain the same monomials (regardless of the order in which
// they were originally given).
func (p *Polynomial) Equal(other *Polynomial) bool {
	var (
		lhs = p.Clone().Simplify()
		rhs = other.Clone().Simplify()
	)
	//
	return slices.EqualFunc(lhs.terms, rhs.terms, Monomial.Equal)
}

// String returns the canonical textual form of this polynomial, such as
// "3/2x^2 - 2x + 9/2".  The zero polynomial is written "0".  This form can be
// parsed back with Parse.
func (p *Polynomial) String() string {
	var buf bytes.Buffer
	//
	for _, t := range p.terms {
		if t.IsZero() {
			continue
		}
		//
		switch {
		case buf.Len() == 0:
			buf.WriteString(t.String())
		case t.IsNegative():
			buf.WriteString(" - ")
			buf.WriteString(t.Neg().String())
		default:
			buf.WriteString(" + ")
			buf.WriteString(t.String())
		}
	}
	//
	if buf.Len() == 0 {
		return "0"
	}
	//
	return buf.String()
}
