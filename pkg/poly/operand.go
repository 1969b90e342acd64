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

// OperandKind identifies which variant an Operand holds.
type OperandKind uint8

const (
	// NO_OPERAND is the (invalid) kind of a zero-value operand.
	NO_OPERAND OperandKind = iota
	// POLY_OPERAND holds a polynomial.
	POLY_OPERAND
	// TEXT_OPERAND holds a string to be parsed.
	TEXT_OPERAND
	// SCALAR_OPERAND holds a rational constant.
	SCALAR_OPERAND
	// TERMS_OPERAND holds an explicit collection of monomials.
	TERMS_OPERAND
)

// Operand is the right-hand side of an arithmetic operation.  It holds exactly
// one of the supported variants, each with its own conversion rule into a
// polynomial.
type Operand struct {
	kind   OperandKind
	poly   *Polynomial
	text   string
	scalar *big.Rat
	terms  []Monomial
}

// Poly constructs an operand from a polynomial.
func Poly(p *Polynomial) Operand {
	return Operand{kind: POLY_OPERAND, poly: p}
}

// Text constructs an operand from a string, which is parsed when the operand
// is used.
func Text(s string) Operand {
	return Operand{kind: TEXT_OPERAND, text: s}
}

// Scalar constructs a constant operand.
func Scalar(c *big.Rat) Operand {
	return Operand{kind: SCALAR_OPERAND, scalar: new(big.Rat).Set(c)}
}

// Integer constructs a constant integer operand.
func Integer(n int64) Operand {
	return Operand{kind: SCALAR_OPERAND, scalar: big.NewRat(n, 1)}
}

// Float constructs a constant operand from the exact rational value of a
// float.  Observe that NaN and infinities produce an invalid operand.
func Float(f float64) Operand {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Operand{}
	}
	//
	return Operand{kind: SCALAR_OPERAND, scalar: new(big.Rat).SetFloat64(f)}
}

// Terms constructs an operand from an explicit collection of monomials.
func Terms(terms ...Monomial) Operand {
	return Operand{kind: TERMS_OPERAND, terms: terms}
}

// OperandOf converts a dynamically typed value into an operand.  Supported
// types are polynomials, strings, (unsigned) integers, floats, rationals,
// single monomials and monomial slices.  Anything else gives ErrType.
func OperandOf(value any) (Operand, error) {
	switch v := value.(type) {
	case Operand:
		return v, nil
	case *Polynomial:
		if v == nil {
			break
		}
		//
		return Poly(v), nil
	case Polynomial:
		return Poly(&v), nil
	case string:
		return Text(v), nil
	case int:
		return Integer(int64(v)), nil
	case int64:
		return Integer(v), nil
	case int32:
		return Integer(int64(v)), nil
	case uint:
		return Scalar(new(big.Rat).SetInt(new(big.Int).SetUint64(uint64(v)))), nil
	case uint64:
		return Scalar(new(big.Rat).SetInt(new(big.Int).SetUint64(v))), nil
	case float64:
		if o := Float(v); o.kind != NO_OPERAND {
			return o, nil
		}
	case *big.Rat:
		if v == nil {
			break
		}
		//
		return Scalar(v), nil
	case *big.Int:
		if v == nil {
			break
		}
		//
		return Scalar(new(big.Rat).SetInt(v)), nil
	case Monomial:
		return Terms(v), nil
	case []Monomial:
		return Terms(v...), nil
	}
	//
	return Operand{}, fmt.Errorf("%w: %T", ErrType, value)
}

// Kind returns the variant held by this operand.
func (o Operand) Kind() OperandKind {
	return o.kind
}

// Polynomial converts this operand into a polynomial.  Text is parsed (which
// may give a *ParseError), monomial collections must be well-formed and the
// zero-value operand gives ErrType.
func (o Operand) Polynomial() (*Polynomial, error) {
	switch o.kind {
	case POLY_OPERAND:
		return o.poly, nil
	case TEXT_OPERAND:
		return Parse(o.text)
	case SCALAR_OPERAND:
		return Const(o.scalar), nil
	case TERMS_OPERAND:
		return FromTerms(o.terms...)
	default:
		return nil, fmt.Errorf("%w: empty operand", ErrType)
	}
}
