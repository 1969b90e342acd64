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
	"fmt"
	"math"
	"math/big"
	"math/bits"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MAX_EXPONENT bounds the exponent of any letter in a monomial.  Arithmetic
// producing a larger exponent panics.
const MAX_EXPONENT = math.MaxUint32

// Power associates a letter with a (strictly positive) exponent.
type Power struct {
	Letter string
	Exp    uint
}

// Monomial represents a single term of a polynomial: a rational coefficient
// multiplied by zero or more letters raised to positive integer powers.
// Monomials are immutable values and can be freely copied.  Observe that the
// zero value is malformed (it has no coefficient) and is rejected wherever a
// monomial is assigned into a polynomial.
type Monomial struct {
	coefficient *big.Rat
	// Powers sorted by letter, where every exponent is non-zero.
	powers []Power
}

// NewMonomial constructs a monomial with a given coefficient and exponent
// mapping.  Letters with a zero exponent are dropped.
func NewMonomial(coefficient *big.Rat, powers map[string]uint) Monomial {
	var ps = make([]Power, 0, len(powers))
	//
	for l, e := range powers {
		if e != 0 {
			ps = append(ps, Power{l, e})
		}
	}
	//
	sortPowers(ps)
	//
	return Monomial{new(big.Rat).Set(coefficient), ps}
}

// IntMonomial is a convenience constructor for monomials with integer
// coefficients.
func IntMonomial(coefficient int64, powers map[string]uint) Monomial {
	return NewMonomial(big.NewRat(coefficient, 1), powers)
}

// Constant constructs a monomial without letters.
func Constant(coefficient *big.Rat) Monomial {
	return Monomial{new(big.Rat).Set(coefficient), nil}
}

// Variable constructs the monomial 1*letter.
func Variable(letter string) Monomial {
	return Monomial{big.NewRat(1, 1), []Power{{letter, 1}}}
}

// IsValid checks this monomial is well formed.
func (p Monomial) IsValid() bool {
	if p.coefficient == nil {
		return false
	}
	//
	for i, ith := range p.powers {
		if ith.Exp == 0 || ith.Exp > MAX_EXPONENT || !IsLetter(ith.Letter) {
			return false
		} else if i > 0 && p.powers[i-1].Letter >= ith.Letter {
			return false
		}
	}
	//
	return true
}

// IsLetter checks whether a string is a single (unicode) letter, and hence
// usable as a letter of a monomial.
func IsLetter(s string) bool {
	r, n := utf8.DecodeRuneInString(s)
	//
	return n > 0 && n == len(s) && unicode.IsLetter(r)
}

// Coefficient returns (a copy of) the coefficient of this monomial.
func (p Monomial) Coefficient() *big.Rat {
	return new(big.Rat).Set(p.coefficient)
}

// Len returns the number of letters in this monomial.
func (p Monomial) Len() uint {
	return uint(len(p.powers))
}

// Nth returns the nth power in this monomial (in letter order).
func (p Monomial) Nth(index uint) Power {
	return p.powers[index]
}

// Exponent returns the exponent of a given letter, or zero if the letter does
// not occur.
func (p Monomial) Exponent(letter string) uint {
	for _, ith := range p.powers {
		if ith.Letter == letter {
			return ith.Exp
		}
	}
	//
	return 0
}

// Powers returns the exponent mapping of this monomial.
func (p Monomial) Powers() map[string]uint {
	var m = make(map[string]uint, len(p.powers))
	//
	for _, ith := range p.powers {
		m[ith.Letter] = ith.Exp
	}
	//
	return m
}

// Letters returns the letters of this monomial in sorted order.
func (p Monomial) Letters() []string {
	var letters = make([]string, len(p.powers))
	//
	for i, ith := range p.powers {
		letters[i] = ith.Letter
	}
	//
	return letters
}

// Degree returns the total degree of this monomial.
func (p Monomial) Degree() uint {
	var d uint
	//
	for _, ith := range p.powers {
		d += ith.Exp
	}
	//
	return d
}

// IsConstant checks whether this monomial has no letters.
func (p Monomial) IsConstant() bool {
	return len(p.powers) == 0
}

// IsZero checks whether the coefficient of this monomial is zero.
func (p Monomial) IsZero() bool {
	return p.coefficient.Sign() == 0
}

// IsNegative checks whether the coefficient of this monomial is negative.
func (p Monomial) IsNegative() bool {
	return p.coefficient.Sign() < 0
}

// Neg returns a negated copy of this monomial.
func (p Monomial) Neg() Monomial {
	return Monomial{new(big.Rat).Neg(p.coefficient), p.powers}
}

// WithCoefficient returns a monomial with the same letters as this, but a
// different coefficient.
func (p Monomial) WithCoefficient(c *big.Rat) Monomial {
	return Monomial{new(big.Rat).Set(c), p.powers}
}

// MulScalar multiplies this monomial by scalar.
func (p Monomial) MulScalar(scalar *big.Rat) Monomial {
	return Monomial{new(big.Rat).Mul(p.coefficient, scalar), p.powers}
}

// Mul returns a fresh monomial representing the multiplication of this monomial
// and another.  Exponents of shared letters are added.
func (p Monomial) Mul(other Monomial) Monomial {
	var (
		res  = make([]Power, 0, len(p.powers)+len(other.powers))
		i, j int
	)
	// Merge sorted powers
	for i < len(p.powers) || j < len(other.powers) {
		switch {
		case j == len(other.powers) || (i < len(p.powers) && p.powers[i].Letter < other.powers[j].Letter):
			res = append(res, p.powers[i])
			i++
		case i == len(p.powers) || other.powers[j].Letter < p.powers[i].Letter:
			res = append(res, other.powers[j])
			j++
		default:
			exp := checkExponent(uint64(p.powers[i].Exp)+uint64(other.powers[j].Exp), false)
			res = append(res, Power{p.powers[i].Letter, exp})
			i++
			j++
		}
	}
	//
	return Monomial{new(big.Rat).Mul(p.coefficient, other.coefficient), res}
}

// Div divides this monomial by another.  This fails if the other has a zero
// coefficient, or if it contains a letter with a greater exponent than in this
// monomial (since negative powers are not supported).
func (p Monomial) Div(other Monomial) (Monomial, error) {
	if other.IsZero() {
		return Monomial{}, ErrDivisionByZero
	}
	//
	var powers = p.Powers()
	//
	for _, ith := range other.powers {
		e := powers[ith.Letter]
		if e < ith.Exp {
			return Monomial{}, fmt.Errorf("%w: %s does not divide %s", ErrNotDivisible, other, p)
		}
		//
		powers[ith.Letter] = e - ith.Exp
	}
	//
	c := new(big.Rat).Quo(p.coefficient, other.coefficient)
	//
	return NewMonomial(c, powers), nil
}

// Pow raises this monomial to a given power.  This panics if the exponent of
// any letter would exceed MAX_EXPONENT.
func (p Monomial) Pow(n uint) Monomial {
	if n == 0 {
		return Constant(big.NewRat(1, 1))
	}
	//
	var powers = make([]Power, len(p.powers))
	//
	for i, ith := range p.powers {
		hi, lo := bits.Mul64(uint64(ith.Exp), uint64(n))
		powers[i] = Power{ith.Letter, checkExponent(lo, hi != 0)}
	}
	//
	var (
		exp = new(big.Int).SetUint64(uint64(n))
		num = new(big.Int).Exp(p.coefficient.Num(), exp, nil)
		den = new(big.Int).Exp(p.coefficient.Denom(), exp, nil)
	)
	//
	return Monomial{new(big.Rat).SetFrac(num, den), powers}
}

func checkExponent(exp uint64, overflow bool) uint {
	if overflow || exp > MAX_EXPONENT {
		panic(fmt.Sprintf("exponent overflow (maximum is %d)", uint64(MAX_EXPONENT)))
	}
	//
	return uint(exp)
}

// AreSimilar returns true when two monomials have identical exponent mappings
// (i.e. the same literal part), regardless of their coefficients.
func AreSimilar(a, b Monomial) bool {
	return a.Matches(b)
}

// Matches determines whether or not the letters (and exponents) of this
// monomial match those of the other.
func (p Monomial) Matches(other Monomial) bool {
	return slices.Equal(p.powers, other.powers)
}

// Equal performs structural equality between two monomials.
func (p Monomial) Equal(other Monomial) bool {
	return p.Matches(other) && p.coefficient.Cmp(other.coefficient) == 0
}

// Cmp implements the canonical ordering of monomials.  A monomial is ordered
// before another when it has a greater total degree or, for equal degrees,
// when it has the greater exponent on the first letter (alphabetically) where
// they differ.  Coefficients are compared last.
func (p Monomial) Cmp(other Monomial) int {
	if c := cmpPowers(p, other); c != 0 {
		return c
	}
	//
	return p.coefficient.Cmp(other.coefficient)
}

func cmpPowers(p, other Monomial) int {
	var (
		pd, od = p.Degree(), other.Degree()
		i, j   int
	)
	//
	if pd != od {
		if pd > od {
			return -1
		}
		//
		return 1
	}
	//
	for i < len(p.powers) || j < len(other.powers) {
		switch {
		case j == len(other.powers) || (i < len(p.powers) && p.powers[i].Letter < other.powers[j].Letter):
			return -1
		case i == len(p.powers) || other.powers[j].Letter < p.powers[i].Letter:
			return 1
		case p.powers[i].Exp > other.powers[j].Exp:
			return -1
		case p.powers[i].Exp < other.powers[j].Exp:
			return 1
		}
		//
		i++
		j++
	}
	//
	return 0
}

// Literal returns the letter part of this monomial (e.g. "x^2y").
func (p Monomial) Literal() string {
	var buf strings.Builder
	//
	for _, ith := range p.powers {
		buf.WriteString(ith.Letter)
		//
		if ith.Exp != 1 {
			buf.WriteString("^")
			buf.WriteString(fmt.Sprintf("%d", ith.Exp))
		}
	}
	//
	return buf.String()
}

// String returns the unsigned-prefix representation of this monomial, such as
// "3/2x^2y" or "-x".
func (p Monomial) String() string {
	var (
		buf     bytes.Buffer
		literal = p.Literal()
	)
	// Various cases to improve readability
	switch {
	case literal == "":
		buf.WriteString(p.coefficient.RatString())
	case p.coefficient.Cmp(ratOne) == 0:
		buf.WriteString(literal)
	case p.coefficient.Cmp(ratMinusOne) == 0:
		buf.WriteString("-")
		buf.WriteString(literal)
	default:
		buf.WriteString(p.coefficient.RatString())
		buf.WriteString(literal)
	}
	//
	return buf.String()
}

var (
	ratZero     = big.NewRat(0, 1)
	ratOne      = big.NewRat(1, 1)
	ratMinusOne = big.NewRat(-1, 1)
)

func sortPowers(powers []Power) {
	slices.SortFunc(powers, func(a, b Power) int {
		return strings.Compare(a.Letter, b.Letter)
	})
}
