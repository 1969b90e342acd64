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
	"errors"
	"fmt"
	"slices"

	"github.com/consensys/go-poly/pkg/poly"
)

// ErrNegativeIndex indicates a request for a negative element of a sequence.
var ErrNegativeIndex = errors.New("series: index must be non-negative")

// Recurrence represents a sequence of polynomials defined by the second-order
// linear recurrence W(n) = P*W(n-1) + Q*W(n-2), with W(0) and W(1) given.
// Elements are cached as they are computed, hence a Recurrence is not safe for
// concurrent use.
type Recurrence struct {
	p     *poly.Polynomial
	q     *poly.Polynomial
	cache []*poly.Polynomial
}

// NewRecurrence constructs a recurrence from its coefficients P and Q, and its
// two initial elements.
func NewRecurrence(p, q, zero, one *poly.Polynomial) *Recurrence {
	return &Recurrence{p, q, []*poly.Polynomial{zero, one}}
}

// LucasW constructs the "W" Lucas polynomial sequence for given P and Q, which
// starts from 0 and 1.  For example, P = x and Q = 1 gives the Fibonacci
// polynomials.
func LucasW(p, q *poly.Polynomial) *Recurrence {
	return NewRecurrence(p, q, poly.Zero(), poly.Int(1))
}

// LucasV constructs the "w" Lucas polynomial sequence for given P and Q, which
// starts from 2 and P.  For example, P = x and Q = 1 gives the Lucas
// polynomials.
func LucasV(p, q *poly.Polynomial) *Recurrence {
	return NewRecurrence(p, q, poly.Int(2), p)
}

// At returns the n-th element of this sequence, computing (and caching) any
// missing elements before it.
func (r *Recurrence) At(n int) (*poly.Polynomial, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w (was %d)", ErrNegativeIndex, n)
	}
	//
	for len(r.cache) <= n {
		var (
			k    = len(r.cache)
			next = r.p.Mul(r.cache[k-1]).Add(r.q.Mul(r.cache[k-2]))
		)
		//
		r.cache = append(r.cache, next)
	}
	//
	return r.cache[n], nil
}

// Cache returns the elements computed so far.
func (r *Recurrence) Cache() []*poly.Polynomial {
	return slices.Clone(r.cache)
}

// Reset discards all cached elements except the initial two.
func (r *Recurrence) Reset() {
	r.cache = r.cache[:2]
}
