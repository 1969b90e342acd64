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
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Fraction_01(t *testing.T) {
	f, err := NewFraction(MustParse("x"), MustParse("x^2 + 1"))
	require.NoError(t, err)
	//
	assert.Equal(t, "(x)/(x^2 + 1)", f.Inline())
	assert.Equal(t, "   x   \n−−−−−−−\nx^2 + 1", f.String())
	//
	n, d := f.Terms()
	assert.Equal(t, "x", n.String())
	assert.Equal(t, "x^2 + 1", d.String())
}

func Test_Fraction_02(t *testing.T) {
	_, err := NewFraction(MustParse("x"), Zero())
	assert.ErrorIs(t, err, ErrDivisionByZero)
	//
	_, err = Zero().Invert(big.NewRat(1, 1))
	assert.ErrorIs(t, err, ErrDivisionByZero)
	//
	_, err = FractionOf(Zero()).Invert()
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

func Test_Fraction_03(t *testing.T) {
	var (
		a, _ = NewFraction(MustParse("1"), MustParse("x"))
		b, _ = NewFraction(MustParse("1"), MustParse("y"))
	)
	//
	sum := a.Add(b)
	assert.Equal(t, "(x + y)/(xy)", sum.Inline())
	//
	diff := a.Sub(b)
	assert.Equal(t, "(-x + y)/(xy)", diff.Inline())
	//
	prod := a.Mul(b)
	assert.Equal(t, "(1)/(xy)", prod.Inline())
	//
	quo, err := a.Div(b)
	require.NoError(t, err)
	assert.Equal(t, "(y)/(x)", quo.Inline())
	//
	assert.Equal(t, "(1)/(x^2)", a.Pow(2).Inline())
	assert.Equal(t, "(-1)/(x)", a.Neg().Inline())
}

func Test_Fraction_04(t *testing.T) {
	var (
		a, _ = NewFraction(MustParse("x + 1"), MustParse("x - 1"))
		b, _ = NewFraction(MustParse("2x + 2"), MustParse("2x - 2"))
	)
	//
	assert.False(t, a.Equal(b))
	assert.True(t, a.Equivalent(b))
	assert.True(t, a.Equal(a))
	//
	v, err := a.Eval(map[string]*big.Rat{"x": big.NewRat(3, 1)})
	require.NoError(t, err)
	assert.Equal(t, "2", v.RatString())
	//
	_, err = a.Eval(map[string]*big.Rat{"x": big.NewRat(1, 1)})
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

func Test_Fraction_05(t *testing.T) {
	f, err := MustParse("x + 1").Invert(big.NewRat(3, 1))
	require.NoError(t, err)
	assert.Equal(t, "(3)/(x + 1)", f.Inline())
	//
	g, err := f.Invert()
	require.NoError(t, err)
	assert.Equal(t, "(x + 1)/(3)", g.Inline())
}
