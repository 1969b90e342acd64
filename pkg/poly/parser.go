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
	"strconv"
)

// Parse converts a string such as "3x^2 - 2xy + 1/2" into a polynomial in
// canonical form.  Terms are separated by a sign or by whitespace, and a
// coefficient (integer, decimal or fraction) must immediately precede its
// letters.  Exponents are written either with a caret (x^2) or directly after
// the letter (x2).  The empty string parses as zero.  On failure, a
// *ParseError is returned which identifies the offending characters.
func Parse(s string) (*Polynomial, error) {
	terms, err := ParseMonomials(s)
	if err != nil {
		return nil, err
	}
	//
	return New(terms...), nil
}

// MustParse is like Parse but panics if the string is malformed.  This is
// intended for constants and tests.
func MustParse(s string) *Polynomial {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	//
	return p
}

// ParseMonomials converts a string into its list of monomials, exactly as they
// were written (i.e. without simplifying).
func ParseMonomials(s string) ([]Monomial, error) {
	var (
		text   = []rune(s)
		lexer  = NewLexer(text, scanner)
		tokens = lexer.Collect()
	)
	// Check whether anything failed to lex
	if lexer.Remaining() != 0 {
		start := len(text) - int(lexer.Remaining())
		return nil, newParseError(text, NewSpan(start, start+1), "unknown character")
	}
	//
	p := &parser{text, tokens, 0}
	//
	return p.parseTerms()
}

type parser struct {
	// Text being parsed
	text []rune
	// Tokens being parsed
	tokens []Token
	// Position within the tokens
	index int
}

func (p *parser) parseTerms() ([]Monomial, error) {
	var terms []Monomial
	//
	p.skipWhiteSpace()
	//
	for p.lookahead().Kind != END_OF {
		term, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		//
		terms = append(terms, term)
		// Terms must be separated by whitespace or a sign
		spaced := p.skipWhiteSpace()
		//
		switch p.lookahead().Kind {
		case END_OF, PLUS, MINUS:
			continue
		case NUMBER, DOT, LETTER:
			if spaced {
				continue
			}
		}
		//
		return nil, p.syntaxError(p.lookahead(), "unexpected character")
	}
	//
	return terms, nil
}

func (p *parser) parseTerm() (Monomial, error) {
	var (
		start    = p.lookahead()
		negative = false
		coeff    = new(big.Rat).SetInt64(1)
		powers   = make(map[string]uint)
		explicit bool
	)
	// Optional sign
	switch start.Kind {
	case MINUS:
		negative = true
		fallthrough
	case PLUS:
		p.index++
		p.skipWhiteSpace()
	}
	// Optional coefficient
	if kind := p.lookahead().Kind; kind == NUMBER || kind == DOT {
		c, err := p.parseCoefficient()
		if err != nil {
			return Monomial{}, err
		}
		//
		coeff, explicit = c, true
	}
	// Zero or more letters
	for p.lookahead().Kind == LETTER {
		letter := p.string(p.lookahead())
		p.index++
		//
		exp, err := p.parseExponent()
		if err != nil {
			return Monomial{}, err
		} else if uint64(powers[letter])+uint64(exp) > MAX_EXPONENT {
			return Monomial{}, p.syntaxError(p.tokens[p.index-1], "exponent too large")
		}
		//
		powers[letter] += exp
	}
	//
	if !explicit && len(powers) == 0 {
		return Monomial{}, p.syntaxError(p.lookahead(), "expected term")
	} else if negative {
		coeff.Neg(coeff)
	}
	//
	return NewMonomial(coeff, powers), nil
}

// Parse a coefficient, which is either an integer (e.g. 3), a decimal (e.g.
// 3.25, 3. or .25) or a fraction (e.g. 3/4).
func (p *parser) parseCoefficient() (*big.Rat, error) {
	var (
		first = p.lookahead()
		last  = first
		text  string
	)
	//
	if first.Kind == NUMBER {
		text = p.string(first)
		p.index++
		//
		switch p.lookahead().Kind {
		case DOT:
			last = p.lookahead()
			p.index++
			// Fractional part is optional here
			if p.lookahead().Kind == NUMBER {
				last = p.lookahead()
				text += "." + p.string(last)
				p.index++
			}
		case SLASH:
			p.index++
			//
			if p.lookahead().Kind != NUMBER {
				return nil, p.syntaxError(p.lookahead(), "expected denominator")
			}
			//
			last = p.lookahead()
			text += "/" + p.string(last)
			p.index++
		}
	} else {
		// Leading dot
		p.index++
		//
		if p.lookahead().Kind != NUMBER {
			return nil, p.syntaxError(first, "expected digits")
		}
		//
		last = p.lookahead()
		text = "0." + p.string(last)
		p.index++
	}
	//
	span := NewSpan(first.Span.Start(), last.Span.End())
	//
	r, ok := new(big.Rat).SetString(text)
	if !ok {
		return nil, newParseError(p.text, span, "zero denominator")
	}
	//
	return r, nil
}

// Parse the (optional) exponent which follows a letter, defaulting to one.
func (p *parser) parseExponent() (uint, error) {
	var next = p.lookahead()
	//
	switch next.Kind {
	case CARET:
		p.index++
		next = p.lookahead()
		//
		if next.Kind != NUMBER {
			return 0, p.syntaxError(next, "expected exponent")
		}
	case NUMBER:
		// Exponent written directly after letter.
	default:
		return 1, nil
	}
	//
	p.index++
	//
	exp, err := strconv.ParseUint(p.string(next), 10, 32)
	if err != nil {
		return 0, p.syntaxError(next, "exponent too large")
	}
	//
	return uint(exp), nil
}

// Skip over any whitespace, reporting whether any was found.
func (p *parser) skipWhiteSpace() bool {
	var skipped bool
	//
	for p.lookahead().Kind == WSPACE {
		p.index++
		skipped = true
	}
	//
	return skipped
}

// Get the next token without consuming it.  The lexer always terminates the
// token stream with END_OF, hence this never runs off the end.
func (p *parser) lookahead() Token {
	if p.index < len(p.tokens) {
		return p.tokens[p.index]
	}
	//
	return p.tokens[len(p.tokens)-1]
}

func (p *parser) string(token Token) string {
	return string(p.text[token.Span.Start():token.Span.End()])
}

func (p *parser) syntaxError(token Token, msg string) *ParseError {
	span := token.Span
	// Ensure end-of-input errors still highlight something.
	if span.Length() == 0 && span.Start() > 0 {
		span = NewSpan(span.Start()-1, span.Start())
	}
	//
	return newParseError(p.text, span, msg)
}
