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
	"fmt"
	"math"
	"math/big"
)

// Eval evaluates this polynomial with a given environment (i.e. mapping of
// letters to values).  Every letter of the polynomial must be bound, otherwise
// ErrUnboundLetter is returned.
func (p *Polynomial) Eval(env map[string]*big.Rat) (*big.Rat, error) {
	var val = new(big.Rat)
	// Sum evaluated terms
	for _, t := range p.terms {
		ith, err := evalTerm(t, env)
		if err != nil {
			return nil, err
		}
		//
		val.Add(val, ith)
	}
	// Done
	return val, nil
}

func evalTerm(term Monomial, env map[string]*big.Rat) (*big.Rat, error) {
	var acc = term.Coefficient()
	//
	for _, ith := range term.powers {
		v, ok := env[ith.Letter]
		if !ok || v == nil {
			return nil, fmt.Errorf("%w: %s", ErrUnboundLetter, ith.Letter)
		}
		//
		acc.Mul(acc, ratPow(v, ith.Exp))
	}
	//
	return acc, nil
}

// Call evaluates this polynomial by binding the given values positionally to
// its (sorted) letters.  For example, for 3xy + x^2 - 4, Call(2, 3) binds x=2
// and y=3.  When no arguments are given, every letter is bound to one.
// Supplying fewer values than letters gives ErrUnboundLetter; extra values are
// ignored.
func (p *Polynomial) Call(args ...*big.Rat) (*big.Rat, error) {
	var (
		letters = p.Letters()
		env     = make(map[string]*big.Rat, len(letters))
	)
	//
	for i, l := range letters {
		switch {
		case len(args) == 0:
			env[l] = ratOne
		case i < len(args):
			env[l] = args[i]
		}
	}
	//
	return p.Eval(env)
}

// Substitute performs partial evaluation, replacing each bound letter with its
// value whilst leaving unbound letters untouched.
func (p *Polynomial) Substitute(env map[string]*big.Rat) *Polynomial {
	var terms = make([]Monomial, len(p.terms))
	//
	for i, t := range p.terms {
		var (
			coeff  = t.Coefficient()
			powers = make(map[string]uint)
		)
		//
		for _, ith := range t.powers {
			if v, ok := env[ith.Letter]; ok && v != nil {
				coeff.Mul(coeff, ratPow(v, ith.Exp))
			} else {
				powers[ith.Letter] = ith.Exp
			}
		}
		//
		terms[i] = NewMonomial(coeff, powers)
	}
	//
	return New(terms...)
}

// Compose substitutes a polynomial for a given letter, e.g. composing x^2 + 1
// with x := y - 1 gives y^2 - 2y + 2.
func (p *Polynomial) Compose(letter string, q *Polynomial) *Polynomial {
	var res = Zero()
	//
	for _, t := range p.terms {
		var (
			e      = t.Exponent(letter)
			powers = t.Powers()
		)
		//
		delete(powers, letter)
		res = res.Add(New(NewMonomial(t.coefficient, powers)).Mul(q.Pow(e)))
	}
	//
	return res
}

// EvalFloat evaluates this polynomial using floating point arithmetic, binding
// the given values positionally to its (sorted) letters.  Letters without a
// value are taken as zero.
func (p *Polynomial) EvalFloat(args ...float64) float64 {
	var (
		letters = p.Letters()
		val     float64
	)
	//
	for _, t := range p.terms {
		acc, _ := t.coefficient.Float64()
		//
		for _, ith := range t.powers {
			var x float64
			//
			for i, l := range letters {
				if l == ith.Letter && i < len(args) {
					x = args[i]
				}
			}
			//
			acc *= math.Pow(x, float64(ith.Exp))
		}
		//
		val += acc
	}
	//
	return val
}

// EvalComplex evaluates a univariate polynomial at a complex point.  Letters
// other than the first are taken as zero.
func (p *Polynomial) EvalComplex(z complex128) complex128 {
	var (
		letters = p.Letters()
		val     complex128
	)
	//
	for _, t := range p.terms {
		c, _ := t.coefficient.Float64()
		acc := complex(c, 0)
		//
		for _, ith := range t.powers {
			if ith.Letter == letters[0] {
				acc *= complexPow(z, ith.Exp)
			} else {
				acc = 0
			}
		}
		//
		val += acc
	}
	//
	return val
}

func ratPow(r *big.Rat, n uint) *big.Rat {
	var (
		e   = big.NewInt(int64(n))
		num = new(big.Int).Exp(r.Num(), e, nil)
		den = new(big.Int).Exp(r.Denom(), e, nil)
	)
	//
	return new(big.Rat).SetFrac(num, den)
}

func complexPow(z complex128, n uint) complex128 {
	var acc complex128 = 1
	//
	for ; n > 0; n >>= 1 {
		if n&1 == 1 {
			acc *= z
		}
		//
		z *= z
	}
	//
	return acc
}
