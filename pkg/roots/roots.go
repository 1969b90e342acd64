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
package roots

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"math/big"
	"math/cmplx"
	"slices"

	"github.com/consensys/go-poly/pkg/poly"
)

var (
	// ErrNotUnivariate indicates a polynomial with more than one letter.
	ErrNotUnivariate = errors.New("roots: polynomial is not univariate")
	// ErrNoConvergence indicates an iterative method failed to find a root.
	ErrNoConvergence = errors.New("roots: method did not converge")
	// ErrUnsupported indicates a polynomial whose shape the method cannot handle
	// (e.g. the wrong degree).
	ErrUnsupported = errors.New("roots: unsupported polynomial")
)

// Config bundles the parameters of the iterative root finders.
type Config struct {
	// Epsilon is the tolerance below which successive approximations are
	// considered equal.
	Epsilon float64 `yaml:"epsilon"`
	// MaxIterations bounds the number of iterations before giving up.
	MaxIterations uint `yaml:"iterations"`
}

// DefaultConfig returns a sensible default configuration for the iterative
// root finders.
func DefaultConfig() Config {
	return Config{
		Epsilon:       1e-12,
		MaxIterations: 1000,
	}
}

// Zero returns the (exact) zero of a linear univariate polynomial ax + b,
// i.e. -b/a.  Any other polynomial gives ErrUnsupported.
func Zero(p *poly.Polynomial) (*big.Rat, error) {
	letter, err := univariate(p)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupported, err)
	} else if p.Degree() != 1 {
		return nil, fmt.Errorf("%w: degree %d is not linear", ErrUnsupported, p.Degree())
	}
	//
	var (
		a = p.Get(1, letter)
		b = p.Get(0, letter)
	)
	//
	return b.Neg(b).Quo(b, a), nil
}

// Quadratic returns both roots of a univariate polynomial ax^2 + bx + c using
// the quadratic formula.  The roots are complex when the discriminant is
// negative.  Any polynomial not of degree two gives ErrUnsupported.
func Quadratic(p *poly.Polynomial) ([]complex128, error) {
	letter, err := univariate(p)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupported, err)
	} else if p.Degree() != 2 {
		return nil, fmt.Errorf("%w: degree %d is not quadratic", ErrUnsupported, p.Degree())
	}
	//
	var (
		a, _ = p.Get(2, letter).Float64()
		b, _ = p.Get(1, letter).Float64()
		c, _ = p.Get(0, letter).Float64()
		d    = cmplx.Sqrt(complex(b*b-4*a*c, 0))
		bc   = complex(b, 0)
		ac   = complex(2*a, 0)
	)
	//
	return []complex128{(-bc + d) / ac, (-bc - d) / ac}, nil
}

// Ruffini returns the rational roots of a univariate polynomial, each repeated
// according to its multiplicity and sorted in ascending order.  Candidates are
// drawn from the rational root theorem (i.e. p/q where p divides the constant
// term and q divides the leading coefficient), and each root found is
// divided out using Ruffini's rule.
func Ruffini(p *poly.Polynomial) ([]*big.Rat, error) {
	letter, err := univariate(p)
	if err != nil {
		return nil, err
	} else if p.Degree() < 1 {
		return nil, nil
	}
	//
	var (
		roots []*big.Rat
		x     = poly.Var(letter)
	)
	// Zero roots first
	for p.Degree() > 0 && p.Get(0, letter).Sign() == 0 {
		roots = append(roots, new(big.Rat))
		p, _ = p.Div(x)
	}
	//
	candidates, err := rationalCandidates(p, letter)
	if err != nil {
		return nil, err
	}
	//
	for _, c := range candidates {
		for p.Degree() > 0 {
			if v, _ := p.Call(c); v.Sign() != 0 {
				break
			}
			//
			roots = append(roots, c)
			p, _ = p.Div(x.Sub(poly.Const(c)))
		}
	}
	//
	slices.SortFunc(roots, (*big.Rat).Cmp)
	//
	return roots, nil
}

// Determine candidates p/q for the rational roots of a polynomial with a
// non-zero constant term.
func rationalCandidates(p *poly.Polynomial, letter string) ([]*big.Rat, error) {
	if p.Degree() < 1 {
		return nil, nil
	}
	// Scale to integer coefficients
	var (
		lcm  = big.NewInt(1)
		seen = make(map[string]bool)
		res  []*big.Rat
	)
	//
	for _, c := range p.Coefficients() {
		g := new(big.Int).GCD(nil, nil, lcm, c.Denom())
		lcm.Mul(lcm, c.Denom()).Quo(lcm, g)
	}
	//
	var (
		scale = new(big.Rat).SetInt(lcm)
		lead  = new(big.Rat).Mul(p.Get(uint(p.Degree()), letter), scale)
		rhs   = new(big.Rat).Mul(p.Get(0, letter), scale)
	)
	//
	ps, err := divisors(rhs.Num())
	if err != nil {
		return nil, err
	}
	//
	qs, err := divisors(lead.Num())
	if err != nil {
		return nil, err
	}
	//
	for _, n := range ps {
		for _, d := range qs {
			for _, sign := range []int64{1, -1} {
				c := big.NewRat(sign*n, d)
				if key := c.RatString(); !seen[key] {
					seen[key] = true
					res = append(res, c)
				}
			}
		}
	}
	//
	return res, nil
}

// MAX_DIVISOR bounds the magnitude of integers whose divisors are enumerated.
const MAX_DIVISOR = 1 << 40

// Compute the positive divisors of a non-zero integer by trial division.
func divisors(n *big.Int) ([]int64, error) {
	var a = new(big.Int).Abs(n)
	//
	if !a.IsInt64() || a.Int64() > MAX_DIVISOR {
		return nil, fmt.Errorf("%w: coefficient %s too large to factor", ErrUnsupported, n)
	}
	//
	var (
		m   = a.Int64()
		res []int64
	)
	//
	for i := int64(1); i*i <= m; i++ {
		if m%i == 0 {
			res = append(res, i)
			//
			if i != m/i {
				res = append(res, m/i)
			}
		}
	}
	//
	slices.Sort(res)
	//
	return res, nil
}

// Check a polynomial has at most one letter, returning it (or the default
// letter "x" for constants).
func univariate(p *poly.Polynomial) (string, error) {
	switch letters := p.Letters(); len(letters) {
	case 0:
		return "x", nil
	case 1:
		return letters[0], nil
	default:
		return "", fmt.Errorf("%w: letters %v", ErrNotUnivariate, letters)
	}
}

// SORT_TOLERANCE is the distance below which real parts are considered equal
// when sorting complex roots, such that conjugate pairs remain adjacent.
const SORT_TOLERANCE = 1e-9

// Sort complex roots by real part, then imaginary part.
func sortComplex(roots []complex128) {
	slices.SortStableFunc(roots, func(a, b complex128) int {
		if math.Abs(real(a)-real(b)) >= SORT_TOLERANCE {
			return cmp.Compare(real(a), real(b))
		}
		//
		return cmp.Compare(imag(a), imag(b))
	})
}
