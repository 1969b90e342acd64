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
package calculus

import (
	"math/big"
	"testing"

	"github.com/consensys/go-poly/pkg/poly"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Polyder_01(t *testing.T) {
	checkPolyder(t, "x^2", 1, "2x")
}

func Test_Polyder_02(t *testing.T) {
	checkPolyder(t, "2x^3 - 4x^2 + 1", 1, "6x^2 - 8x")
}

func Test_Polyder_03(t *testing.T) {
	checkPolyder(t, "2x^3 - 4x^2 + 1", 2, "12x - 8")
}

func Test_Polyder_04(t *testing.T) {
	checkPolyder(t, "2x^3 - 4x^2 + 1", 4, "0")
}

func Test_Polyder_05(t *testing.T) {
	checkPolyder(t, "2x^3 - 4x^2 + 1", 0, "2x^3 - 4x^2 + 1")
}

func Test_Polyder_06(t *testing.T) {
	checkPolyder(t, "7", 1, "0")
}

func Test_Polyder_07(t *testing.T) {
	_, err := Polyder(poly.MustParse("x"), -1)
	assert.ErrorIs(t, err, ErrNegativeOrder)
}

func Test_Derivative_01(t *testing.T) {
	p := poly.MustParse("x^2y^3 + 3xy + y")
	//
	dx, err := Derivative(p, "x", 1)
	require.NoError(t, err)
	assert.Equal(t, "2xy^3 + 3y", dx.String())
	//
	dy, err := Derivative(p, "y", 1)
	require.NoError(t, err)
	assert.Equal(t, "3x^2y^2 + 3x + 1", dy.String())
}

func Test_Polyint_01(t *testing.T) {
	checkPolyint(t, "-x", 1, nil, "-1/2x^2")
}

func Test_Polyint_02(t *testing.T) {
	checkPolyint(t, "x^3 - 7x + 5", 1, nil, "1/4x^4 - 7/2x^2 + 5x")
}

func Test_Polyint_03(t *testing.T) {
	checkPolyint(t, "3x^2 - 7", 1, []int64{5}, "x^3 - 7x + 5")
}

func Test_Polyint_04(t *testing.T) {
	checkPolyint(t, "x^2 + x + 1", 3, []int64{3, 2, 1}, "1/60x^5 + 1/24x^4 + 1/6x^3 + 3/2x^2 + 2x + 1")
}

func Test_Polyint_05(t *testing.T) {
	checkPolyint(t, "4", 1, nil, "4x")
}

func Test_Polyint_06(t *testing.T) {
	_, err := Polyint(poly.MustParse("x"), -2)
	assert.ErrorIs(t, err, ErrNegativeOrder)
}

func Test_Polyint_Inverse(t *testing.T) {
	for _, s := range []string{"0", "5", "x", "3x^4 - 2x + 1/3", "x^7 - x^6"} {
		p := poly.MustParse(s)
		F, err := Polyint(p, 2)
		require.NoError(t, err)
		//
		q, err := Polyder(F, 2)
		require.NoError(t, err)
		assert.True(t, q.Equal(p), s)
	}
}

func Test_DefiniteIntegral_01(t *testing.T) {
	v, err := DefiniteIntegral(poly.MustParse("3x^2"), big.NewRat(0, 1), big.NewRat(2, 1))
	require.NoError(t, err)
	assert.Equal(t, "8", v.RatString())
	//
	v, err = DefiniteIntegral(poly.MustParse("x^3 - 3x^2 - 9x + 1"), big.NewRat(-1, 1), big.NewRat(1, 1))
	require.NoError(t, err)
	assert.Equal(t, "0", v.RatString())
	//
	_, err = DefiniteIntegral(poly.MustParse("xy"), big.NewRat(0, 1), big.NewRat(1, 1))
	assert.ErrorIs(t, err, poly.ErrUnboundLetter)
}

func Test_FromRoots_01(t *testing.T) {
	p := FromRoots("x", big.NewRat(1, 1), big.NewRat(-2, 1), big.NewRat(1, 2))
	assert.Equal(t, "x^3 + 1/2x^2 - 5/2x + 1", p.String())
	//
	for _, r := range []int64{1, -2} {
		v, err := p.Call(big.NewRat(r, 1))
		require.NoError(t, err)
		assert.Equal(t, 0, v.Sign())
	}
	//
	assert.Equal(t, "1", FromRoots("x").String())
}

func Test_Divisible_01(t *testing.T) {
	assert.True(t, Divisible(poly.MustParse("x^2 + 7x + 6"), poly.MustParse("x + 1")))
	assert.False(t, Divisible(poly.MustParse("x^2 + 7x + 6"), poly.MustParse("x - 1")))
	assert.False(t, Divisible(poly.MustParse("x + 1"), poly.MustParse("x^2 + 7x + 6")))
	assert.False(t, Divisible(poly.MustParse("x + 1"), poly.Zero()))
}

func Test_Interpolate_01(t *testing.T) {
	var (
		xs = []*big.Rat{big.NewRat(0, 1), big.NewRat(1, 1), big.NewRat(2, 1)}
		ys = []*big.Rat{big.NewRat(1, 1), big.NewRat(2, 1), big.NewRat(5, 1)}
	)
	//
	p, err := Interpolate(xs, ys)
	require.NoError(t, err)
	assert.Equal(t, "x^2 + 1", p.String())
}

func Test_Interpolate_02(t *testing.T) {
	p, err := Interpolate([]*big.Rat{big.NewRat(3, 1)}, []*big.Rat{big.NewRat(7, 2)})
	require.NoError(t, err)
	assert.Equal(t, "7/2", p.String())
	//
	_, err = Interpolate(nil, nil)
	assert.ErrorIs(t, err, ErrInterpolation)
	//
	_, err = Interpolate([]*big.Rat{big.NewRat(1, 1), big.NewRat(1, 1)}, []*big.Rat{big.NewRat(1, 1), big.NewRat(2, 1)})
	assert.ErrorIs(t, err, ErrInterpolation)
}

func checkPolyder(t *testing.T, input string, m int, expected string) {
	t.Helper()
	//
	p, err := Polyder(poly.MustParse(input), m)
	require.NoError(t, err)
	assert.Equal(t, expected, p.String(), "d^%d/dx^%d (%s)", m, m, input)
}

func checkPolyint(t *testing.T, input string, m int, constants []int64, expected string) {
	t.Helper()
	//
	var cs = make([]*big.Rat, len(constants))
	//
	for i, c := range constants {
		cs[i] = big.NewRat(c, 1)
	}
	//
	p, err := Polyint(poly.MustParse(input), m, cs...)
	require.NoError(t, err)
	assert.Equal(t, expected, p.String(), "integral^%d (%s)", m, input)
}
