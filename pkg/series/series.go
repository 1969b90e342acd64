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
package series

import (
	"fmt"
	"math/big"

	"github.com/consensys/go-poly/pkg/calculus"
	"github.com/consensys/go-poly/pkg/poly"
)

// Generator is the signature shared by all named sequences.
type Generator func(n int) (*poly.Polynomial, error)

// Generators maps the name of each sequence to its generator.
var Generators = map[string]Generator{
	"fibonacci":    Fibonacci,
	"lucas":        Lucas,
	"chebyshev-t":  ChebyshevT,
	"chebyshev-u":  ChebyshevU,
	"hermite-prob": HermiteProb,
	"hermite-phys": HermitePhys,
	"laguerre":     Laguerre,
	"bernoulli":    Bernoulli,
}

// Fibonacci returns the n-th Fibonacci polynomial, i.e. F(0) = 0, F(1) = 1 and
// F(n) = x*F(n-1) + F(n-2).
func Fibonacci(n int) (*poly.Polynomial, error) {
	return LucasW(poly.Var("x"), poly.Int(1)).At(n)
}

// Lucas returns the n-th Lucas polynomial, i.e. L(0) = 2, L(1) = x and
// L(n) = x*L(n-1) + L(n-2).
func Lucas(n int) (*poly.Polynomial, error) {
	return LucasV(poly.Var("x"), poly.Int(1)).At(n)
}

// ChebyshevT returns the n-th Chebyshev polynomial of the first kind.
func ChebyshevT(n int) (*poly.Polynomial, error) {
	switch {
	case n < 0:
		return nil, fmt.Errorf("%w (was %d)", ErrNegativeIndex, n)
	case n == 0:
		return poly.Int(1), nil
	}
	// The w-sequence for P = 2x and Q = -1 gives 2T(n)
	t2, err := LucasV(poly.Int(2).Mul(poly.Var("x")), poly.Int(-1)).At(n)
	if err != nil {
		return nil, err
	}
	//
	return t2.MulScalar(big.NewRat(1, 2)), nil
}

// ChebyshevU returns the n-th Chebyshev polynomial of the second kind.
func ChebyshevU(n int) (*poly.Polynomial, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w (was %d)", ErrNegativeIndex, n)
	}
	// The W-sequence for P = 2x and Q = -1 gives U(n-1)
	return LucasW(poly.Int(2).Mul(poly.Var("x")), poly.Int(-1)).At(n + 1)
}

// HermiteProb returns the n-th (probabilists') Hermite polynomial, defined by
// He(0) = 1 and He(n+1) = x*He(n) - He'(n).
func HermiteProb(n int) (*poly.Polynomial, error) {
	return hermite(n, poly.Var("x"))
}

// HermitePhys returns the n-th (physicists') Hermite polynomial, defined by
// H(0) = 1 and H(n+1) = 2x*H(n) - H'(n).
func HermitePhys(n int) (*poly.Polynomial, error) {
	return hermite(n, poly.MustParse("2x"))
}

func hermite(n int, factor *poly.Polynomial) (*poly.Polynomial, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w (was %d)", ErrNegativeIndex, n)
	}
	//
	var h = poly.Int(1)
	//
	for range n {
		d, err := calculus.Derivative(h, "x", 1)
		if err != nil {
			return nil, err
		}
		//
		h = factor.Mul(h).Sub(d)
	}
	//
	return h, nil
}

// Laguerre returns the n-th Laguerre polynomial, defined by L(0) = 1,
// L(1) = 1 - x and (k+1)L(k+1) = (2k+1-x)L(k) - kL(k-1).
func Laguerre(n int) (*poly.Polynomial, error) {
	switch {
	case n < 0:
		return nil, fmt.Errorf("%w (was %d)", ErrNegativeIndex, n)
	case n == 0:
		return poly.Int(1), nil
	}
	//
	var (
		x    = poly.Var("x")
		prev = poly.Int(1)
		curr = poly.Int(1).Sub(x)
	)
	//
	for k := int64(1); k < int64(n); k++ {
		var (
			lhs  = poly.Int(2*k + 1).Sub(x).Mul(curr)
			rhs  = prev.MulScalar(big.NewRat(k, 1))
			next = lhs.Sub(rhs).MulScalar(big.NewRat(1, k+1))
		)
		//
		prev, curr = curr, next
	}
	//
	return curr, nil
}

// Bernoulli returns the m-th Bernoulli polynomial, using the explicit formula
// B(m) = sum_{n=0}^{m} 1/(n+1) sum_{k=0}^{n} (-1)^k C(n,k) (x+k)^m.
func Bernoulli(m int) (*poly.Polynomial, error) {
	if m < 0 {
		return nil, fmt.Errorf("%w (was %d)", ErrNegativeIndex, m)
	}
	//
	var res = poly.Zero()
	//
	for n := int64(0); n <= int64(m); n++ {
		inner := poly.Zero()
		//
		for k := int64(0); k <= n; k++ {
			c := new(big.Rat).SetInt(Binomial(n, k))
			if k%2 == 1 {
				c.Neg(c)
			}
			//
			term := poly.Var("x").Add(poly.Int(k)).Pow(uint(m))
			inner = inner.Add(term.MulScalar(c))
		}
		//
		res = res.Add(inner.MulScalar(big.NewRat(1, n+1)))
	}
	//
	return res, nil
}

// BernoulliNumber returns the m-th Bernoulli number, i.e. the constant term of
// the m-th Bernoulli polynomial.  Observe this follows the convention that
// B(1) = -1/2.
func BernoulliNumber(m int) (*big.Rat, error) {
	b, err := Bernoulli(m)
	if err != nil {
		return nil, err
	}
	//
	return b.Get(0, "x"), nil
}

// Binomial returns the binomial coefficient C(n, k), which is zero unless
// 0 <= k <= n.
func Binomial(n, k int64) *big.Int {
	if k < 0 || n < 0 || k > n {
		return new(big.Int)
	}
	//
	return new(big.Int).Binomial(n, k)
}
