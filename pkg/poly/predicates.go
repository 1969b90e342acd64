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
	"slices"
)

// IsLinear checks whether every monomial has total degree at most one.
func (p *Polynomial) IsLinear() bool {
	return p.Degree() <= 1
}

// IsOrdered checks whether the (non-zero) powers of a given letter form a run
// of consecutive exponents, either descending (e.g. 3, 2, 1, 0) or ascending.
// A letter which does not occur gives false.
func (p *Polynomial) IsOrdered(letter string) bool {
	if !slices.Contains(p.Letters(), letter) {
		return false
	} else if p.IsCompleteAll() {
		return true
	}
	//
	var (
		powers     = p.Powers(letter)
		desc, asc  = true, true
		prev, next int
	)
	//
	for i := 1; i < len(powers); i++ {
		prev, next = int(powers[i-1]), int(powers[i])
		desc = desc && next == prev-1
		asc = asc && next == prev+1
	}
	//
	return desc || asc
}

// IsOrderedAll checks whether this polynomial is ordered for every letter.
func (p *Polynomial) IsOrderedAll() bool {
	for _, l := range p.Letters() {
		if !p.IsOrdered(l) {
			return false
		}
	}
	//
	return true
}

// IsComplete checks whether every power of a given letter, from its maximum
// down to zero, appears exactly once in order.  A letter which does not occur
// gives false.
func (p *Polynomial) IsComplete(letter string) bool {
	maxPower, err := p.MaxPower(letter)
	//
	if err != nil {
		return false
	} else if maxPower == 1 {
		return true
	}
	//
	powers := p.Powers(letter)
	//
	if uint(len(powers)) != maxPower+1 {
		return false
	}
	//
	for i, e := range powers {
		if e != maxPower-uint(i) {
			return false
		}
	}
	//
	return true
}

// IsCompleteAll checks whether this polynomial is complete for every letter.
func (p *Polynomial) IsCompleteAll() bool {
	for _, l := range p.Letters() {
		if !p.IsComplete(l) {
			return false
		}
	}
	//
	return true
}

// MakeComplete inserts explicit zero-coefficient placeholders for every
// missing power of a given letter, and orders the monomials by descending
// power of that letter.  This returns false if the polynomial was already
// complete (or the letter does not occur).  Observe that Simplify removes the
// placeholders again.
func (p *Polynomial) MakeComplete(letter string) bool {
	maxPower, err := p.MaxPower(letter)
	//
	if err != nil || p.IsComplete(letter) {
		return false
	}
	//
	raw := p.RawPowers(letter)
	//
	for e := uint(0); e < maxPower; e++ {
		if !slices.Contains(raw, e) {
			p.terms = append(p.terms, NewMonomial(ratZero, map[string]uint{letter: e}))
		}
	}
	//
	p.sortBy(letter)
	//
	return true
}

// IsSquareDiff checks whether this polynomial is a difference of two squares,
// such as 25x^4 - 9.
func (p *Polynomial) IsSquareDiff() bool {
	var q = p.Clone().Simplify()
	//
	if q.Len() != 2 || q.terms[0].IsNegative() == q.terms[1].IsNegative() {
		return false
	}
	//
	return isSquare(q.terms[0]) && isSquare(q.terms[1])
}

// Check whether a monomial is (up to sign) the square of another.
func isSquare(m Monomial) bool {
	for _, ith := range m.powers {
		if ith.Exp%2 != 0 {
			return false
		}
	}
	//
	c := new(big.Rat).Abs(m.coefficient)
	//
	return isPerfectSquare(c.Num()) && isPerfectSquare(c.Denom())
}

func isPerfectSquare(n *big.Int) bool {
	r := new(big.Int).Sqrt(n)
	return r.Mul(r, r).Cmp(n) == 0
}
