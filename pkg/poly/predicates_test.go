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
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_IsLinear_01(t *testing.T) {
	assert.True(t, MustParse("x + y + 1").IsLinear())
	assert.True(t, MustParse("3").IsLinear())
	assert.True(t, Zero().IsLinear())
	assert.False(t, MustParse("xy + 1").IsLinear())
	assert.False(t, MustParse("x^2").IsLinear())
}

func Test_IsOrdered_01(t *testing.T) {
	assert.True(t, MustParse("x^3 + x^2 + x + 1").IsOrdered("x"))
	assert.True(t, MustParse("x^2 + x").IsOrdered("x"))
	assert.False(t, MustParse("x^3 + x").IsOrdered("x"))
	assert.False(t, MustParse("x^3 + x").IsOrdered("y"))
}

func Test_IsOrdered_02(t *testing.T) {
	p := NewRaw(Variable("x"), IntMonomial(1, map[string]uint{"x": 2}), IntMonomial(1, map[string]uint{"x": 3}))
	//
	assert.True(t, p.IsOrdered("x"))
	assert.True(t, p.IsOrderedAll())
}

func Test_IsComplete_01(t *testing.T) {
	assert.True(t, MustParse("x^2 + x + 1").IsComplete("x"))
	assert.True(t, MustParse("x + 5").IsComplete("x"))
	assert.False(t, MustParse("x^2 + 1").IsComplete("x"))
	assert.False(t, MustParse("x^2 + x + 1").IsComplete("y"))
	assert.True(t, MustParse("x^2 + x + y + 1").IsCompleteAll())
	assert.False(t, MustParse("x^2 + y + 1").IsCompleteAll())
}

func Test_MakeComplete_01(t *testing.T) {
	p := MustParse("x^3 + 1")
	//
	assert.True(t, p.MakeComplete("x"))
	assert.Equal(t, uint(4), p.Len())
	assert.Equal(t, []uint{3, 2, 1, 0}, p.RawPowers("x"))
	assert.True(t, p.IsComplete("x"))
	assert.Equal(t, "x^3 + 1", p.String())
	// Placeholders vanish on simplification
	assert.Equal(t, uint(2), p.Simplify().Len())
}

func Test_MakeComplete_02(t *testing.T) {
	p := MustParse("x^3 + x")
	//
	assert.True(t, p.MakeComplete("x"))
	assert.Equal(t, []uint{3, 2, 1, 0}, p.RawPowers("x"))
	assert.False(t, p.MakeComplete("x"))
	assert.False(t, MustParse("x^2 + x + 1").MakeComplete("x"))
	assert.False(t, MustParse("x^2 + x + 1").MakeComplete("y"))
}

func Test_IsSquareDiff_01(t *testing.T) {
	assert.True(t, MustParse("25x^4 - 9").IsSquareDiff())
	assert.True(t, MustParse("4x^2 - 1/9").IsSquareDiff())
	assert.True(t, MustParse("y^2 - x^2").IsSquareDiff())
	assert.False(t, MustParse("x^2 + 9").IsSquareDiff())
	assert.False(t, MustParse("x^3 - 1").IsSquareDiff())
	assert.False(t, MustParse("2x^2 - 1").IsSquareDiff())
	assert.False(t, MustParse("x^2 - 2x + 1").IsSquareDiff())
}
