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

	"github.com/consensys/go-poly/pkg/poly"
	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/mat"
)

// Eigen finds all (complex) roots of a univariate polynomial as the
// eigenvalues of its companion matrix.  The roots are returned sorted by real
// part, then imaginary part.
func Eigen(p *poly.Polynomial) ([]complex128, error) {
	letter, err := univariate(p)
	if err != nil {
		return nil, err
	} else if p.Degree() < 1 {
		return nil, fmt.Errorf("%w: constant polynomial", ErrUnsupported)
	}
	//
	var (
		eig       mat.Eigen
		companion = Companion(p, letter)
	)
	//
	if ok := eig.Factorize(companion, mat.EigenNone); !ok {
		return nil, fmt.Errorf("%w: eigenvalue decomposition failed", ErrNoConvergence)
	}
	//
	roots := eig.Values(nil)
	log.Debugf("eigen: companion matrix of order %d gave %v", len(roots), roots)
	sortComplex(roots)
	//
	return roots, nil
}

// Companion constructs the companion matrix of a univariate polynomial of
// degree n >= 1 in the given letter.  This is the n x n matrix with ones on
// the subdiagonal and whose last column holds the negated coefficients of the
// monic polynomial, from the constant term upwards.  Its characteristic
// polynomial is the polynomial itself (up to the leading coefficient).
func Companion(p *poly.Polynomial, letter string) *mat.Dense {
	var (
		n       = p.Degree()
		lead, _ = p.Get(uint(n), letter).Float64()
		m       = mat.NewDense(n, n, nil)
	)
	//
	for i := 1; i < n; i++ {
		m.Set(i, i-1, 1)
	}
	//
	for i := 0; i < n; i++ {
		c, _ := p.Get(uint(i), letter).Float64()
		m.Set(i, n-1, -c/lead)
	}
	//
	return m
}
