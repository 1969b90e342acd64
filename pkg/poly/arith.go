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
	"math/bits"
)

// Add another polynomial onto this polynomial, producing a fresh polynomial.
func (p *Polynomial) Add(other *Polynomial) *Polynomial {
	var terms = make([]Monomial, 0, len(p.terms)+len(other.terms))
	//
	terms = append(terms, p.terms...)
	terms = append(terms, other.terms...)
	//
	return New(terms...)
}

// Sub another polynomial from this polynomial, producing a fresh polynomial.
func (p *Polynomial) Sub(other *Polynomial) *Polynomial {
	return p.Add(other.Neg())
}

// Neg returns a copy of this polynomial with every coefficient negated.
func (p *Polynomial) Neg() *Polynomial {
	var res = make([]Monomial, len(p.terms))
	//
	for i, t := range p.terms {
		res[i] = t.Neg()
	}
	//
	return &Polynomial{res}
}

// Mul this polynomial by another polynomial, producing a fresh polynomial.
// Every monomial of this is multiplied by every monomial of the other.
func (p *Polynomial) Mul(other *Polynomial) *Polynomial {
	var terms = make([]Monomial, 0, len(p.terms)*len(other.terms))
	//
	for _, ith := range p.terms {
		for _, jth := range other.terms {
			terms = append(terms, ith.Mul(jth))
		}
	}
	//
	return New(terms...)
}

// MulScalar multiplies every coefficient of this polynomial by a scalar.
func (p *Polynomial) MulScalar(scalar *big.Rat) *Polynomial {
	var terms = make([]Monomial, len(p.terms))
	//
	for i, t := range p.terms {
		terms[i] = t.MulScalar(scalar)
	}
	//
	return New(terms...)
}

// Pow raises this polynomial to a given (non-negative) power using
// exponentiation by squaring.  Observe that p^0 == 1 for every p (including
// zero).  This panics if the result would contain an exponent greater than
// MAX_EXPONENT (see PowAny for a checked alternative).
func (p *Polynomial) Pow(n uint) *Polynomial {
	var (
		res  = Int(1)
		base = p.Clone().Simplify()
	)
	//
	if base.powOverflows(n) {
		checkExponent(0, true)
	}
	// Single monomials are easy
	if base.Len() == 1 {
		return New(base.terms[0].Pow(n))
	}
	//
	for ; n > 0; n >>= 1 {
		if n&1 == 1 {
			res = res.Mul(base)
		}
		//
		if n > 1 {
			base = base.Mul(base)
		}
	}
	//
	return res
}

// PowAny raises this polynomial to a power given as a dynamic value.  The
// exponent must be an integer (e.g. int, uint, an integral float64 or an
// integral *big.Rat), otherwise ErrType is returned.  Negative exponents give
// ErrUnsupported, since they cannot be represented as polynomials (see Invert).
func (p *Polynomial) PowAny(exp any) (*Polynomial, error) {
	var n int64
	//
	switch e := exp.(type) {
	case int:
		n = int64(e)
	case int64:
		n = e
	case uint:
		if e > math.MaxInt64 {
			return nil, fmt.Errorf("%w: exponent %d too large", ErrUnsupported, e)
		}
		//
		n = int64(e)
	case float64:
		if e != math.Trunc(e) || math.IsInf(e, 0) || math.Abs(e) > math.MaxInt32 {
			return nil, fmt.Errorf("%w: non-integer exponent %v", ErrType, e)
		}
		//
		n = int64(e)
	case *big.Rat:
		if !e.IsInt() || !e.Num().IsInt64() {
			return nil, fmt.Errorf("%w: non-integer exponent %s", ErrType, e.RatString())
		}
		//
		n = e.Num().Int64()
	default:
		return nil, fmt.Errorf("%w: exponent of type %T", ErrType, exp)
	}
	//
	if n < 0 {
		return nil, fmt.Errorf("%w: negative exponent %d", ErrUnsupported, n)
	} else if p.powOverflows(uint(n)) {
		return nil, fmt.Errorf("%w: exponent %d exceeds maximum %d", ErrUnsupported, n, uint64(MAX_EXPONENT))
	}
	//
	return p.Pow(uint(n)), nil
}

// Check whether raising this polynomial to the nth power would give some letter
// an exponent greater than MAX_EXPONENT.
func (p *Polynomial) powOverflows(n uint) bool {
	var e uint
	//
	for _, t := range p.terms {
		for _, ith := range t.powers {
			e = max(e, ith.Exp)
		}
	}
	//
	hi, lo := bits.Mul64(uint64(e), uint64(n))
	//
	return hi != 0 || lo > MAX_EXPONENT
}

// AddAny adds an operand onto this polynomial.
func (p *Polynomial) AddAny(o Operand) (*Polynomial, error) {
	q, err := o.Polynomial()
	if err != nil {
		return nil, err
	}
	//
	return p.Add(q), nil
}

// SubAny subtracts an operand from this polynomial.
func (p *Polynomial) SubAny(o Operand) (*Polynomial, error) {
	q, err := o.Polynomial()
	if err != nil {
		return nil, err
	}
	//
	return p.Sub(q), nil
}

// MulAny multiplies this polynomial by an operand.
func (p *Polynomial) MulAny(o Operand) (*Polynomial, error) {
	q, err := o.Polynomial()
	if err != nil {
		return nil, err
	}
	//
	return p.Mul(q), nil
}

// DivModAny performs long division of this polynomial by an operand.
func (p *Polynomial) DivModAny(o Operand) (*Polynomial, *Polynomial, error) {
	q, err := o.Polynomial()
	if err != nil {
		return nil, nil, err
	}
	//
	return p.DivMod(q)
}

// TrueDivAny divides this polynomial by an operand, falling back to an
// algebraic fraction when there is no exact quotient.
func (p *Polynomial) TrueDivAny(o Operand) (Quotient, error) {
	q, err := o.Polynomial()
	if err != nil {
		return Quotient{}, err
	}
	//
	return p.TrueDiv(q)
}

// ModAny returns the remainder of dividing this polynomial by an operand.
func (p *Polynomial) ModAny(o Operand) (*Polynomial, error) {
	q, err := o.Polynomial()
	if err != nil {
		return nil, err
	}
	//
	return p.Mod(q)
}
