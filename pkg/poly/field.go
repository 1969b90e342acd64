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
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
)

// EvalField evaluates this polynomial over the scalar field of BLS12-377.
// Rational coefficients n/d are mapped to n * d^-1 in the field.  Every letter
// must be bound, otherwise ErrUnboundLetter is returned.
func (p *Polynomial) EvalField(env map[string]fr.Element) (fr.Element, error) {
	var val fr.Element
	//
	for _, t := range p.terms {
		acc, err := ratToField(t.coefficient)
		if err != nil {
			return val, err
		}
		//
		for _, ith := range t.powers {
			x, ok := env[ith.Letter]
			if !ok {
				return val, fmt.Errorf("%w: %s", ErrUnboundLetter, ith.Letter)
			}
			//
			var xe fr.Element
			//
			xe.Exp(x, new(big.Int).SetUint64(uint64(ith.Exp)))
			acc.Mul(&acc, &xe)
		}
		//
		val.Add(&val, &acc)
	}
	//
	return val, nil
}

// ProbablyEqual checks whether two polynomials are identical by evaluating
// their difference at random points of the BLS12-377 scalar field (i.e. the
// Schwartz-Zippel lemma).  Each round wrongly reports equality with
// probability at most d/r, where d is the degree of the difference and r the
// field modulus.  Observe that false is never reported for equal polynomials.
func ProbablyEqual(p, q *Polynomial, rounds uint) (bool, error) {
	var diff = p.Sub(q)
	//
	for range max(rounds, 1) {
		env := make(map[string]fr.Element)
		//
		for _, l := range diff.Letters() {
			var x fr.Element
			//
			if _, err := x.SetRandom(); err != nil {
				return false, err
			}
			//
			env[l] = x
		}
		//
		v, err := diff.EvalField(env)
		if err != nil {
			return false, err
		} else if !v.IsZero() {
			return false, nil
		}
	}
	//
	return true, nil
}

func ratToField(r *big.Rat) (fr.Element, error) {
	var num, den fr.Element
	//
	num.SetBigInt(r.Num())
	den.SetBigInt(r.Denom())
	//
	if den.IsZero() {
		return num, fmt.Errorf("%w: denominator %s vanishes in field", ErrDivisionByZero, r.Denom())
	}
	//
	den.Inverse(&den)
	num.Mul(&num, &den)
	//
	return num, nil
}
