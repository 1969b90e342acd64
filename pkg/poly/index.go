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
	"slices"
)

// GetAt returns the monomial at a given position in this polynomial.
func (p *Polynomial) GetAt(index int) (Monomial, error) {
	if err := p.checkIndex(index); err != nil {
		return Monomial{}, err
	}
	//
	return p.terms[index], nil
}

// GetRange returns the monomials in positions [start, end).
func (p *Polynomial) GetRange(start, end int) ([]Monomial, error) {
	if err := p.checkRange(start, end); err != nil {
		return nil, err
	}
	//
	return slices.Clone(p.terms[start:end]), nil
}

// SetAt replaces the monomial at a given position.  The monomial must be well
// formed, otherwise ErrType is returned.  No simplification is performed.
func (p *Polynomial) SetAt(index int, m Monomial) error {
	if err := p.checkIndex(index); err != nil {
		return err
	} else if !m.IsValid() {
		return malformed(0)
	}
	//
	p.terms[index] = m
	//
	return nil
}

// SetRange replaces the monomials in positions [start, end) with the given
// monomials (which need not have the same length).  No simplification is
// performed.
func (p *Polynomial) SetRange(start, end int, ms ...Monomial) error {
	if err := p.checkRange(start, end); err != nil {
		return err
	}
	//
	for i, m := range ms {
		if !m.IsValid() {
			return malformed(i)
		}
	}
	//
	p.terms = slices.Replace(p.terms, start, end, ms...)
	//
	return nil
}

// RemoveAt deletes the monomial at a given position.  No simplification is
// performed.
func (p *Polynomial) RemoveAt(index int) error {
	if err := p.checkIndex(index); err != nil {
		return err
	}
	//
	p.terms = slices.Delete(p.terms, index, index+1)
	//
	return nil
}

// RemoveRange deletes the monomials in positions [start, end).  No
// simplification is performed.
func (p *Polynomial) RemoveRange(start, end int) error {
	if err := p.checkRange(start, end); err != nil {
		return err
	}
	//
	p.terms = slices.Delete(p.terms, start, end)
	//
	return nil
}

// Update replaces the contents of this polynomial entirely with the given
// operand, and then simplifies.  The receiver is returned to allow chaining.
func (p *Polynomial) Update(o Operand) (*Polynomial, error) {
	q, err := o.Polynomial()
	if err != nil {
		return nil, err
	}
	//
	p.terms = slices.Clone(q.terms)
	//
	return p.Simplify(), nil
}

// Append merges the monomials of the given operand into this polynomial, and
// then simplifies.  The receiver is returned to allow chaining.
func (p *Polynomial) Append(o Operand) (*Polynomial, error) {
	q, err := o.Polynomial()
	if err != nil {
		return nil, err
	}
	//
	p.terms = append(p.terms, q.terms...)
	//
	return p.Simplify(), nil
}

func (p *Polynomial) checkIndex(index int) error {
	if index < 0 || index >= len(p.terms) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrIndex, index, len(p.terms))
	}
	//
	return nil
}

func (p *Polynomial) checkRange(start, end int) error {
	if start < 0 || end > len(p.terms) || start > end {
		return fmt.Errorf("%w: [%d,%d) not within [0,%d)", ErrIndex, start, end, len(p.terms))
	}
	//
	return nil
}

func malformed(index int) error {
	return fmt.Errorf("%w: malformed monomial (%d)", ErrType, index)
}
