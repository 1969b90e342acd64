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
	"slices"
	"unicode"
)

// END_OF signals "end of file"
const END_OF uint = 0

// WSPACE signals whitespace
const WSPACE uint = 1

// NUMBER signals a sequence of decimal digits
const NUMBER uint = 2

// LETTER signals a single letter
const LETTER uint = 3

// CARET signals "^"
const CARET uint = 4

// PLUS signals "+"
const PLUS uint = 5

// MINUS signals "-"
const MINUS uint = 6

// DOT signals "."
const DOT uint = 7

// SLASH signals "/"
const SLASH uint = 8

// Rules for tokenising polynomials.
var scanner Scanner = Or(
	Many(WSPACE, ' ', '\t', '\n', '\r'),
	ManyWith(NUMBER, '0', '9'),
	Unicode(LETTER, unicode.IsLetter),
	One(CARET, '^'),
	One(PLUS, '+'),
	One(MINUS, '-'),
	One(DOT, '.'),
	One(SLASH, '/'),
	Eof(END_OF))

// Span represents a contiguous slice of the original string.  Instead of
// representing this as a string slice, however, it is useful to retain the
// physical indices.
type Span struct {
	// The first character of this span in the original string.
	start int
	// One past the final character of this span in the original string.
	end int
}

// NewSpan constructs a new span whilst checking the internal invariants are
// maintained.
func NewSpan(start int, end int) Span {
	if start > end {
		panic("invalid span")
	}

	return Span{start, end}
}

// Start returns the starting index of this span in the original string.
func (p Span) Start() int {
	return p.start
}

// End returns one past the last index of this span in the original string.
func (p Span) End() int {
	return p.end
}

// Length returns the number of characters covered by this span.
func (p Span) Length() int {
	return p.end - p.start
}

// Token associates a kind with a given range of characters in the string
// being scanned.
type Token struct {
	Kind uint
	Span Span
}

// Lexer tokenises a polynomial string using a given scanner.
type Lexer struct {
	items   []rune
	index   int
	scanner Scanner
	buffer  []Token
}

// NewLexer constructs a new lexer with a given scanner.
func NewLexer(input []rune, scanner Scanner) *Lexer {
	return &Lexer{input, 0, scanner, nil}
}

// Remaining determines how many characters from the original sequence were
// left.  This is non-zero after Collect only if some character could not be
// scanned.
func (p *Lexer) Remaining() uint {
	return uint(max(0, len(p.items)-p.index))
}

// HasNext checks whether or not there are any items remaining to visit.
func (p *Lexer) HasNext() bool {
	p.scan()
	return len(p.buffer) > 0
}

// Next returns the next token and advances the lexer.
func (p *Lexer) Next() Token {
	next := p.buffer[0]
	p.buffer = p.buffer[1:]
	//
	if p.index == len(p.items) {
		// EOF condition
		p.index++
	} else {
		p.index = next.Span.End()
	}
	//
	return next
}

// Collect parses all remaining tokens in one go.
func (p *Lexer) Collect() []Token {
	var tokens []Token
	// Keep scanning
	for p.HasNext() {
		tokens = append(tokens, p.Next())
	}
	//
	return tokens
}

func (p *Lexer) scan() {
	if len(p.buffer) == 0 && p.index <= len(p.items) {
		// Look for item
		if n, ok := p.scanner.Scan(p.items[p.index:]); ok {
			// Shift span into correct position
			n.Span = NewSpan(n.Span.Start()+p.index, n.Span.End()+p.index)
			// Insert into buffer
			p.buffer = append(p.buffer, n)
		}
	}
}

// Scanner looks at a given sequence of runes, starting from the beginning, and
// attempts to consume one or more of them.  If successful, it returns a Token
// spanning the characters consumed.
type Scanner interface {
	Scan([]rune) (Token, bool)
}

// Eof matches the end of the input.
func Eof(tag uint) Scanner {
	return &eofScanner{tag}
}

// One matches a single given rune.
func One(tag uint, item rune) Scanner {
	return &unitScanner{item, tag}
}

// Many matches one or more runes from a given set.
func Many(tag uint, items ...rune) Scanner {
	return &manyScanner{tag, items}
}

// ManyWith matches one or more runes within a given range.
func ManyWith(tag uint, first rune, last rune) Scanner {
	return &manyWithinScanner{tag, first, last}
}

// Unicode matches exactly one rune satisfying a given predicate.
func Unicode(tag uint, predicate func(rune) bool) Scanner {
	return &unicodeScanner{tag, predicate}
}

// Or matches whatever the first successful scanner matches.
func Or(scanners ...Scanner) Scanner {
	return &orScanner{scanners}
}

type eofScanner struct {
	tag uint
}

func (p *eofScanner) Scan(items []rune) (Token, bool) {
	return Token{p.tag, NewSpan(0, 0)}, len(items) == 0
}

type unitScanner struct {
	item rune
	tag  uint
}

func (p *unitScanner) Scan(items []rune) (Token, bool) {
	return Token{p.tag, NewSpan(0, 1)}, len(items) > 0 && items[0] == p.item
}

type manyScanner struct {
	tag   uint
	items []rune
}

func (p *manyScanner) Scan(items []rune) (Token, bool) {
	i := 0
	//
	for i < len(items) && slices.Contains(p.items, items[i]) {
		i++
	}
	//
	return Token{p.tag, NewSpan(0, i)}, i != 0
}

type manyWithinScanner struct {
	tag   uint
	first rune
	last  rune
}

func (p *manyWithinScanner) Scan(items []rune) (Token, bool) {
	i := 0
	//
	for i < len(items) && p.first <= items[i] && items[i] <= p.last {
		i++
	}
	//
	return Token{p.tag, NewSpan(0, i)}, i != 0
}

type unicodeScanner struct {
	tag       uint
	predicate func(rune) bool
}

func (p *unicodeScanner) Scan(items []rune) (Token, bool) {
	return Token{p.tag, NewSpan(0, 1)}, len(items) > 0 && p.predicate(items[0])
}

type orScanner struct {
	scanners []Scanner
}

func (p *orScanner) Scan(items []rune) (Token, bool) {
	for _, scanner := range p.scanners {
		if res, ok := scanner.Scan(items); ok {
			return res, true
		}
	}
	// Failed
	return Token{}, false
}
