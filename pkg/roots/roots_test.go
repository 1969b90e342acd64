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
	"math"
	"math/big"
	"testing"

	"github.com/consensys/go-poly/pkg/poly"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-6

func Test_Zero_01(t *testing.T) {
	r, err := Zero(poly.MustParse("2x + 4"))
	require.NoError(t, err)
	assert.Equal(t, "-2", r.RatString())
	//
	r, err = Zero(poly.MustParse("3y"))
	require.NoError(t, err)
	assert.Equal(t, "0", r.RatString())
	//
	r, err = Zero(poly.MustParse("2/3x - 1"))
	require.NoError(t, err)
	assert.Equal(t, "3/2", r.RatString())
}

func Test_Zero_02(t *testing.T) {
	_, err := Zero(poly.MustParse("x^2 - 1"))
	assert.ErrorIs(t, err, ErrUnsupported)
	_, err = Zero(poly.MustParse("5"))
	assert.ErrorIs(t, err, ErrUnsupported)
	_, err = Zero(poly.MustParse("x + y"))
	assert.ErrorIs(t, err, ErrUnsupported)
	assert.ErrorIs(t, err, ErrNotUnivariate)
}

func Test_Quadratic_01(t *testing.T) {
	checkQuadratic(t, "x^2 - 4", complex(2, 0), complex(-2, 0))
}

func Test_Quadratic_02(t *testing.T) {
	checkQuadratic(t, "2x^2 + 3x + 1", complex(-0.5, 0), complex(-1, 0))
}

func Test_Quadratic_03(t *testing.T) {
	checkQuadratic(t, "x^2 - 3x + 6", complex(1.5, math.Sqrt(15)/2), complex(1.5, -math.Sqrt(15)/2))
}

func Test_Quadratic_04(t *testing.T) {
	_, err := Quadratic(poly.MustParse("x^3"))
	assert.ErrorIs(t, err, ErrUnsupported)
}

func Test_Quadratic_05(t *testing.T) {
	_, err := Quadratic(poly.MustParse("x^2 + y"))
	assert.ErrorIs(t, err, ErrUnsupported)
	assert.ErrorIs(t, err, ErrNotUnivariate)
}

func Test_Ruffini_01(t *testing.T) {
	checkRuffini(t, "x^4 + 5x^3 + 5x^2 - 5x - 6", "-3", "-2", "-1", "1")
}

func Test_Ruffini_02(t *testing.T) {
	checkRuffini(t, "2x^2 - x", "0", "1/2")
}

func Test_Ruffini_03(t *testing.T) {
	checkRuffini(t, "x^3 - 3x + 2", "-2", "1", "1")
}

func Test_Ruffini_04(t *testing.T) {
	checkRuffini(t, "x^2 + 1")
}

func Test_Ruffini_05(t *testing.T) {
	checkRuffini(t, "1/2x^2 - 1/8", "-1/2", "1/2")
}

func Test_Ruffini_06(t *testing.T) {
	_, err := Ruffini(poly.MustParse("xy - 1"))
	assert.ErrorIs(t, err, ErrNotUnivariate)
}

func Test_Newton_01(t *testing.T) {
	r, err := Newton(poly.MustParse("x^2 - 2"), 1, DefaultConfig())
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2, real(r), tolerance)
	assert.InDelta(t, 0, imag(r), tolerance)
}

func Test_Newton_02(t *testing.T) {
	r, err := Newton(poly.MustParse("x^2 - 3x + 6"), complex(100, 1), DefaultConfig())
	require.NoError(t, err)
	assert.InDelta(t, 1.5, real(r), tolerance)
	assert.InDelta(t, math.Sqrt(15)/2, imag(r), tolerance)
}

func Test_Newton_03(t *testing.T) {
	_, err := Newton(poly.MustParse("5"), 1, DefaultConfig())
	assert.ErrorIs(t, err, ErrNoConvergence)
	_, err = Newton(poly.MustParse("x + y"), 1, DefaultConfig())
	assert.ErrorIs(t, err, ErrNotUnivariate)
}

func Test_Newton_04(t *testing.T) {
	// Real start never reaches the complex roots
	cfg := Config{Epsilon: 1e-12, MaxIterations: 50}
	_, err := Newton(poly.MustParse("x^2 + 1"), 0.5, cfg)
	assert.ErrorIs(t, err, ErrNoConvergence)
}

func Test_Halley_01(t *testing.T) {
	r, err := Halley(poly.MustParse("x^3 - 2x - 5"), 2, DefaultConfig())
	require.NoError(t, err)
	assert.InDelta(t, 2.0945514815423265, real(r), tolerance)
}

func Test_Halley_02(t *testing.T) {
	r, err := Halley(poly.MustParse("x^2 - 3x + 6"), complex(100, -1), DefaultConfig())
	require.NoError(t, err)
	assert.InDelta(t, 1.5, real(r), tolerance)
	assert.InDelta(t, -math.Sqrt(15)/2, imag(r), tolerance)
}

func Test_Bisection_01(t *testing.T) {
	r, err := Bisection(poly.MustParse("x^2 - 2"), 0, 2, DefaultConfig())
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2, r, tolerance)
	//
	r, err = Bisection(poly.MustParse("x - 1"), 1, 5, DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, 1.0, r)
}

func Test_Bisection_02(t *testing.T) {
	_, err := Bisection(poly.MustParse("x^2 + 1"), -1, 1, DefaultConfig())
	assert.ErrorIs(t, err, ErrNoConvergence)
}

func Test_DurandKerner_01(t *testing.T) {
	rs, err := DurandKerner(poly.MustParse("x^3 - 6x^2 + 11x - 6"), DefaultConfig())
	require.NoError(t, err)
	checkComplexRoots(t, rs, 1, 2, 3)
}

func Test_DurandKerner_02(t *testing.T) {
	rs, err := DurandKerner(poly.MustParse("2x^2 + 2"), DefaultConfig())
	require.NoError(t, err)
	checkComplexRoots(t, rs, complex(0, -1), complex(0, 1))
	//
	_, err = DurandKerner(poly.MustParse("3"), DefaultConfig())
	assert.ErrorIs(t, err, ErrUnsupported)
}

func Test_Eigen_01(t *testing.T) {
	rs, err := Eigen(poly.MustParse("x^3 - 6x^2 + 11x - 6"))
	require.NoError(t, err)
	checkComplexRoots(t, rs, 1, 2, 3)
}

func Test_Eigen_02(t *testing.T) {
	rs, err := Eigen(poly.MustParse("x^2 - 3x + 6"))
	require.NoError(t, err)
	checkComplexRoots(t, rs, complex(1.5, -math.Sqrt(15)/2), complex(1.5, math.Sqrt(15)/2))
}

func Test_Eigen_03(t *testing.T) {
	rs, err := Eigen(poly.MustParse("4x - 2"))
	require.NoError(t, err)
	checkComplexRoots(t, rs, 0.5)
	//
	_, err = Eigen(poly.MustParse("xy"))
	assert.ErrorIs(t, err, ErrNotUnivariate)
}

func Test_Companion_01(t *testing.T) {
	m := Companion(poly.MustParse("2x^2 - 6x + 4"), "x")
	//
	r, c := m.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 2, c)
	assert.Equal(t, 0.0, m.At(0, 0))
	assert.Equal(t, -2.0, m.At(0, 1))
	assert.Equal(t, 1.0, m.At(1, 0))
	assert.Equal(t, 3.0, m.At(1, 1))
}

func checkQuadratic(t *testing.T, input string, first, second complex128) {
	t.Helper()
	//
	rs, err := Quadratic(poly.MustParse(input))
	require.NoError(t, err)
	require.Len(t, rs, 2)
	assert.InDelta(t, real(first), real(rs[0]), tolerance)
	assert.InDelta(t, imag(first), imag(rs[0]), tolerance)
	assert.InDelta(t, real(second), real(rs[1]), tolerance)
	assert.InDelta(t, imag(second), imag(rs[1]), tolerance)
}

func checkRuffini(t *testing.T, input string, expected ...string) {
	t.Helper()
	//
	rs, err := Ruffini(poly.MustParse(input))
	require.NoError(t, err)
	require.Len(t, rs, len(expected), "roots of %s", input)
	//
	for i, r := range rs {
		e, _ := new(big.Rat).SetString(expected[i])
		assert.Equal(t, 0, r.Cmp(e), "root %d of %s: %s", i, input, r.RatString())
	}
}

// Check computed roots against expected (sorted) roots.
func checkComplexRoots(t *testing.T, actual []complex128, expected ...complex128) {
	t.Helper()
	//
	require.Len(t, actual, len(expected))
	//
	for i, e := range expected {
		assert.InDelta(t, real(e), real(actual[i]), tolerance, "root %d", i)
		assert.InDelta(t, imag(e), imag(actual[i]), tolerance, "root %d", i)
	}
}
