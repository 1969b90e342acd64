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
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Index_01(t *testing.T) {
	p := MustParse("x^2 + 2x + 1")
	//
	m, err := p.GetAt(1)
	require.NoError(t, err)
	assert.Equal(t, "2x", m.String())
	//
	_, err = p.GetAt(3)
	assert.ErrorIs(t, err, ErrIndex)
	_, err = p.GetAt(-1)
	assert.ErrorIs(t, err, ErrIndex)
	//
	ms, err := p.GetRange(0, 2)
	require.NoError(t, err)
	require.Len(t, ms, 2)
	assert.Equal(t, "x^2", ms[0].String())
	//
	_, err = p.GetRange(2, 1)
	assert.ErrorIs(t, err, ErrIndex)
}

func Test_Index_02(t *testing.T) {
	p := MustParse("x^2 + 2x + 1")
	//
	require.NoError(t, p.SetAt(0, IntMonomial(5, map[string]uint{"y": 3})))
	assert.Equal(t, "5y^3 + 2x + 1", p.String())
	assert.ErrorIs(t, p.SetAt(0, Monomial{}), ErrType)
	assert.ErrorIs(t, p.SetAt(7, Variable("z")), ErrIndex)
}

func Test_Index_03(t *testing.T) {
	p := MustParse("x^2 + 2x + 1")
	//
	require.NoError(t, p.RemoveAt(1))
	assert.Equal(t, "x^2 + 1", p.String())
	assert.ErrorIs(t, p.RemoveAt(2), ErrIndex)
	//
	p = MustParse("x^2 + 2x + 1")
	require.NoError(t, p.RemoveRange(0, 2))
	assert.Equal(t, "1", p.String())
}

func Test_Index_04(t *testing.T) {
	p := MustParse("x^2 + 2x + 1")
	//
	require.NoError(t, p.SetRange(0, 2, Variable("z")))
	assert.Equal(t, "z + 1", p.String())
	assert.ErrorIs(t, p.SetRange(0, 1, Monomial{}), ErrType)
}

func Test_Index_05(t *testing.T) {
	p := MustParse("x^2 + 2x + 1")
	//
	q, err := p.Append(Integer(2))
	require.NoError(t, err)
	assert.Same(t, p, q)
	assert.Equal(t, "x^2 + 2x + 3", p.String())
	//
	_, err = p.Update(Text("y - 1"))
	require.NoError(t, err)
	assert.Equal(t, "y - 1", p.String())
	//
	_, err = p.Update(Text("y -"))
	assert.ErrorIs(t, err, ErrParse)
	assert.Equal(t, "y - 1", p.String())
}

func Test_Index_06(t *testing.T) {
	// Letters must be a single alphabetic rune
	p := MustParse("x^2 + 2x + 1")
	//
	assert.ErrorIs(t, p.SetAt(0, IntMonomial(3, map[string]uint{"x1": 1})), ErrType)
	assert.ErrorIs(t, p.SetAt(1, IntMonomial(3, map[string]uint{"2": 1})), ErrType)
	assert.ErrorIs(t, p.SetAt(2, Variable("")), ErrType)
	assert.ErrorIs(t, p.SetRange(0, 1, Variable("y"), IntMonomial(1, map[string]uint{"2": 1})), ErrType)
	assert.ErrorIs(t, p.SetRange(0, 3, Variable("xy")), ErrType)
	assert.Equal(t, "x^2 + 2x + 1", p.String())
	//
	require.NoError(t, p.SetAt(2, Variable("é")))
	assert.Equal(t, "x^2 + 2x + é", p.String())
}

func Test_Operand_01(t *testing.T) {
	checkOperand(t, 3, SCALAR_OPERAND, "3")
	checkOperand(t, int64(-2), SCALAR_OPERAND, "-2")
	checkOperand(t, uint(7), SCALAR_OPERAND, "7")
	checkOperand(t, 1.5, SCALAR_OPERAND, "3/2")
	checkOperand(t, big.NewRat(2, 3), SCALAR_OPERAND, "2/3")
	checkOperand(t, big.NewInt(9), SCALAR_OPERAND, "9")
	checkOperand(t, "x - x + y", TEXT_OPERAND, "y")
	checkOperand(t, MustParse("x + 1"), POLY_OPERAND, "x + 1")
	checkOperand(t, Variable("x"), TERMS_OPERAND, "x")
	checkOperand(t, []Monomial{Variable("x"), Variable("x")}, TERMS_OPERAND, "2x")
	checkOperand(t, Integer(4), SCALAR_OPERAND, "4")
}

func Test_Operand_02(t *testing.T) {
	var nilPoly *Polynomial
	//
	for _, v := range []any{math.NaN(), math.Inf(1), struct{}{}, nilPoly, []int{1}, nil} {
		_, err := OperandOf(v)
		assert.ErrorIs(t, err, ErrType, "%v", v)
	}
	//
	assert.Equal(t, NO_OPERAND, Float(math.NaN()).Kind())
	//
	_, err := Operand{}.Polynomial()
	assert.ErrorIs(t, err, ErrType)
}

func Test_Operand_03(t *testing.T) {
	p := MustParse("y")
	//
	_, err := p.AddAny(Terms(IntMonomial(2, map[string]uint{"2": 1})))
	assert.ErrorIs(t, err, ErrType)
	_, err = p.AddAny(Terms(Variable("x"), IntMonomial(1, map[string]uint{"x1": 1})))
	assert.ErrorIs(t, err, ErrType)
	_, err = FromTerms(IntMonomial(1, map[string]uint{"x1": 1}))
	assert.ErrorIs(t, err, ErrType)
	_, err = FromTerms(IntMonomial(1, map[string]uint{"x": MAX_EXPONENT + 1}))
	assert.ErrorIs(t, err, ErrType)
	assert.Equal(t, "y", p.String())
}

func checkOperand(t *testing.T, value any, kind OperandKind, expected string) {
	t.Helper()
	//
	o, err := OperandOf(value)
	require.NoError(t, err, "%v", value)
	assert.Equal(t, kind, o.Kind(), "%v", value)
	//
	p, err := o.Polynomial()
	require.NoError(t, err, "%v", value)
	assert.Equal(t, expected, p.String(), "%v", value)
}
