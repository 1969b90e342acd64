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
	"fmt"
	"math"
	"math/cmplx"

	"github.com/consensys/go-poly/pkg/calculus"
	"github.com/consensys/go-poly/pkg/poly"
	log "github.com/sirupsen/logrus"
)

// Newton finds one root of a univariate polynomial using Newton's method,
// starting from a given point.  Complex roots are found by starting from a
// point with a non-zero imaginary part.
func Newton(p *poly.Polynomial, start complex128, cfg Config) (complex128, error) {
	if _, err := univariate(p); err != nil {
		return 0, err
	}
	//
	d1, _ := calculus.Polyder(p, 1)
	//
	return iterate("newton", start, cfg, func(x complex128) (complex128, bool) {
		var (
			fx  = p.EvalComplex(x)
			dfx = d1.EvalComplex(x)
		)
		//
		if dfx == 0 {
			return 0, false
		}
		//
		return x - fx/dfx, true
	})
}

// Halley finds one root of a univariate polynomial using Halley's method, which
// converges cubically but requires the second derivative.
func Halley(p *poly.Polynomial, start complex128, cfg Config) (complex128, error) {
	if _, err := univariate(p); err != nil {
		return 0, err
	}
	//
	var (
		d1, _ = calculus.Polyder(p, 1)
		d2, _ = calculus.Polyder(p, 2)
	)
	//
	return iterate("halley", start, cfg, func(x complex128) (complex128, bool) {
		var (
			fx    = p.EvalComplex(x)
			dfx   = d1.EvalComplex(x)
			ddfx  = d2.EvalComplex(x)
			denom = 2*dfx*dfx - fx*ddfx
		)
		//
		if denom == 0 {
			return 0, false
		}
		//
		return x - (2*fx*dfx)/denom, true
	})
}

// Apply a given step function until successive approximations are within
// epsilon of each other (or the polynomial vanishes exactly).
func iterate(name string, x complex128, cfg Config, step func(complex128) (complex128, bool)) (complex128, error) {
	for i := uint(0); i < cfg.MaxIterations; i++ {
		next, ok := step(x)
		if !ok {
			return 0, fmt.Errorf("%w: %s stalled at %v", ErrNoConvergence, name, x)
		} else if cmplx.IsNaN(next) || cmplx.IsInf(next) {
			return 0, fmt.Errorf("%w: %s diverged from %v", ErrNoConvergence, name, x)
		}
		//
		log.Debugf("%s: iteration %d, x=%v", name, i, next)
		//
		if next == x || cmplx.Abs(next-x) < cfg.Epsilon {
			return next, nil
		}
		//
		x = next
	}
	//
	return 0, fmt.Errorf("%w: %s exceeded %d iterations", ErrNoConvergence, name, cfg.MaxIterations)
}

// Bisection finds a real root of a univariate polynomial within the interval
// [a, b], over which the polynomial must change sign.
func Bisection(p *poly.Polynomial, a, b float64, cfg Config) (float64, error) {
	if _, err := univariate(p); err != nil {
		return 0, err
	}
	//
	var fa, fb = p.EvalFloat(a), p.EvalFloat(b)
	//
	switch {
	case fa == 0:
		return a, nil
	case fb == 0:
		return b, nil
	case math.Signbit(fa) == math.Signbit(fb):
		return 0, fmt.Errorf("%w: no sign change over [%g, %g]", ErrNoConvergence, a, b)
	}
	//
	for i := uint(0); i < cfg.MaxIterations; i++ {
		mid := a + (b-a)/2
		fm := p.EvalFloat(mid)
		//
		log.Debugf("bisection: iteration %d, [%g, %g]", i, a, b)
		//
		if fm == 0 || math.Abs(b-a)/2 < cfg.Epsilon {
			return mid, nil
		} else if math.Signbit(fm) == math.Signbit(fa) {
			a, fa = mid, fm
		} else {
			b = mid
		}
	}
	//
	return 0, fmt.Errorf("%w: bisection exceeded %d iterations", ErrNoConvergence, cfg.MaxIterations)
}

// DurandKerner finds all (complex) roots of a univariate polynomial
// simultaneously, using the Durand-Kerner (Weierstrass) method.  The roots are
// returned sorted by real part, then imaginary part.
func DurandKerner(p *poly.Polynomial, cfg Config) ([]complex128, error) {
	letter, err := univariate(p)
	if err != nil {
		return nil, err
	} else if p.Degree() < 1 {
		return nil, fmt.Errorf("%w: constant polynomial", ErrUnsupported)
	}
	//
	var (
		n      = p.Degree()
		lead   = p.Get(uint(n), letter)
		monic  = p.MulScalar(lead.Inv(lead))
		seed   = complex(0.4, 0.9)
		roots  = make([]complex128, n)
		next   = make([]complex128, n)
		change float64
	)
	//
	for i := range roots {
		roots[i] = cmplx.Pow(seed, complex(float64(i), 0))
	}
	//
	for iter := uint(0); iter < cfg.MaxIterations; iter++ {
		change = 0
		//
		for i, r := range roots {
			denom := complex(1, 0)
			//
			for j, s := range roots {
				if i != j {
					denom *= r - s
				}
			}
			//
			next[i] = r - monic.EvalComplex(r)/denom
			change = max(change, cmplx.Abs(next[i]-r))
		}
		//
		copy(roots, next)
		log.Debugf("durand-kerner: iteration %d, change=%g", iter, change)
		//
		if change < cfg.Epsilon {
			sortComplex(roots)
			return roots, nil
		}
	}
	//
	return nil, fmt.Errorf("%w: durand-kerner exceeded %d iterations", ErrNoConvergence, cfg.MaxIterations)
}
