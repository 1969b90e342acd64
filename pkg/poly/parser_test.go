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
	"errors"
	"testing"
)

func Test_Parse_01(t *testing.T) {
	checkParse(t, "2x^3 + 4xy", "2x^3 + 4xy")
}

func Test_Parse_02(t *testing.T) {
	checkParse(t, "", "0")
}

func Test_Parse_03(t *testing.T) {
	checkParse(t, "3x2y - x + 1/2", "3x^2y - x + 1/2")
}

func Test_Parse_04(t *testing.T) {
	checkParse(t, "2x3y 2 + 1", "2x^3y + 3")
}

func Test_Parse_05(t *testing.T) {
	checkParse(t, "-x", "-x")
}

func Test_Parse_06(t *testing.T) {
	checkParse(t, "x + x", "2x")
}

func Test_Parse_07(t *testing.T) {
	checkParse(t, "x - x", "0")
}

func Test_Parse_08(t *testing.T) {
	checkParse(t, "1.5x", "3/2x")
}

func Test_Parse_09(t *testing.T) {
	checkParse(t, ".5", "1/2")
}

func Test_Parse_10(t *testing.T) {
	checkParse(t, "y + x", "x + y")
}

func Test_Parse_11(t *testing.T) {
	checkParse(t, "b^2 + a^2 + 2ab", "a^2 + 2ab + b^2")
}

func Test_Parse_12(t *testing.T) {
	checkParse(t, "2x^9 x2", "2x^9 + x^2")
}

func Test_Parse_13(t *testing.T) {
	checkParse(t, "xx", "x^2")
}

func Test_Parse_14(t *testing.T) {
	checkParse(t, "  - 3 ", "-3")
}

func Test_Parse_15(t *testing.T) {
	checkParse(t, "3/2x^2 - 2x + 9/2", "3/2x^2 - 2x + 9/2")
}

func Test_Parse_16(t *testing.T) {
	checkParse(t, "2.x", "2x")
}

func Test_ParseMonomials_01(t *testing.T) {
	terms, err := ParseMonomials("x + x - 3")
	//
	if err != nil {
		t.Fatal(err)
	} else if len(terms) != 3 {
		t.Fatalf("expected 3 monomials, got %d", len(terms))
	} else if terms[2].String() != "-3" {
		t.Errorf("expected -3, got %s", terms[2])
	}
}

func Test_ParseError_01(t *testing.T) {
	checkParseError(t, "2x +", 3, 4)
}

func Test_ParseError_02(t *testing.T) {
	checkParseError(t, "x^", 1, 2)
}

func Test_ParseError_03(t *testing.T) {
	checkParseError(t, "3$x", 1, 2)
}

func Test_ParseError_04(t *testing.T) {
	checkParseError(t, "2^3", 1, 2)
}

func Test_ParseError_05(t *testing.T) {
	checkParseError(t, "3/0x", 0, 3)
}

func Test_ParseError_06(t *testing.T) {
	checkParseError(t, "x^2.5", 3, 4)
}

func Test_ParseError_07(t *testing.T) {
	checkParseError(t, "+", 0, 1)
}

func Test_ParseError_08(t *testing.T) {
	checkParseError(t, "x - - y", 4, 5)
}

func Test_ParseError_09(t *testing.T) {
	checkParseError(t, "3/x", 2, 3)
}

func Test_ParseError_10(t *testing.T) {
	checkParseError(t, "x^4294967296", 2, 12)
	checkParseError(t, "x^4294967295x", 12, 13)
	checkParseError(t, "2x^4294967294 + x^3x^4294967293", 21, 31)
	checkParse(t, "x^4294967295", "x^4294967295")
}

// Check that a given input parses and prints as expected, and that the printed
// form parses back to the same polynomial.
func checkParse(t *testing.T, input string, expected string) {
	t.Helper()
	//
	p, err := Parse(input)
	if err != nil {
		t.Fatalf("parsing %q: %s", input, err)
	} else if p.String() != expected {
		t.Fatalf("parsing %q: expected %q, got %q", input, expected, p.String())
	}
	// Round trip
	q, err := Parse(p.String())
	if err != nil {
		t.Fatalf("reparsing %q: %s", p.String(), err)
	} else if !q.Equal(p) {
		t.Errorf("reparsing %q gave %q", p.String(), q.String())
	}
}

// Check that parsing fails, and that the error highlights the expected span.
func checkParseError(t *testing.T, input string, start, end int) {
	t.Helper()
	//
	var perr *ParseError
	//
	_, err := Parse(input)
	//
	switch {
	case err == nil:
		t.Fatalf("parsing %q: expected error", input)
	case !errors.Is(err, ErrParse):
		t.Fatalf("parsing %q: expected parse error, got %s", input, err)
	case !errors.As(err, &perr):
		t.Fatalf("parsing %q: expected *ParseError, got %T", input, err)
	case perr.Span().Start() != start || perr.Span().End() != end:
		t.Errorf("parsing %q: expected span %d:%d, got %d:%d (%s)", input, start, end,
			perr.Span().Start(), perr.Span().End(), perr.Message())
	case perr.Text() != input:
		t.Errorf("parsing %q: error retains text %q", input, perr.Text())
	}
}
