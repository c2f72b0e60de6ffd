// Copyright 2024 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2024 Institute of the Czech National Corpus,
//                Faculty of Arts, Charles University
//   This file is part of SYLTRIE.
//
//  SYLTRIE is free software: you can redistribute it and/or modify
//  it under the terms of the GNU General Public License as published by
//  the Free Software Foundation, either version 3 of the License, or
//  (at your option) any later version.
//
//  SYLTRIE is distributed in the hope that it will be useful,
//  but WITHOUT ANY WARRANTY; without even the implied warranty of
//  MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
//  GNU General Public License for more details.
//
//  You should have received a copy of the GNU General Public License
//  along with SYLTRIE.  If not, see <https://www.gnu.org/licenses/>.

// Package tokenizer turns raw text into the normalized token stream
// the tree assembler consumes. Whitespace and hyphens are token
// boundaries (hyphenated compounds become separate tokens), so the
// syllabifier never has to deal with them. Punctuation-only chunks
// stay in the stream as word-less tokens - downstream skip accounting
// needs to see them.
package tokenizer

import (
	"strings"
	"unicode"
)

const DefaultContextSize = 3

// Token is one chunk of the input text. Word is the lowercased
// wordform, empty for punctuation-only chunks. Prev and Next hold the
// normalized neighbor wordforms (punctuation excluded): Prev in text
// order with the nearest one last, Next with the nearest one first.
type Token struct {
	Word     string   `json:"word"`
	Raw      string   `json:"raw"`
	Position int      `json:"position"`
	Prev     []string `json:"prev,omitempty"`
	Next     []string `json:"next,omitempty"`
}

// IsWord tells whether the token carries an analyzable wordform.
func (t Token) IsWord() bool {
	return t.Word != ""
}

// Tokenizer splits text into tokens and attaches bounded context to
// each of them.
type Tokenizer struct {
	contextSize int
}

// NewTokenizer creates a tokenizer attaching up to contextSize
// neighbor words on each side of every token; a non-positive value
// falls back to DefaultContextSize.
func NewTokenizer(contextSize int) *Tokenizer {
	if contextSize <= 0 {
		contextSize = DefaultContextSize
	}
	return &Tokenizer{contextSize: contextSize}
}

// Tokenize produces the ordered token stream of text.
func (tk *Tokenizer) Tokenize(text string) []Token {
	ans := make([]Token, 0, len(text)/5)
	var curr strings.Builder
	currIsWord := false

	flush := func() {
		if curr.Len() == 0 {
			return
		}
		tok := Token{Raw: curr.String(), Position: len(ans)}
		if currIsWord {
			tok.Word = strings.ToLower(tok.Raw)
		}
		ans = append(ans, tok)
		curr.Reset()
	}

	for _, c := range text {
		switch {
		case unicode.IsSpace(c) || c == '-' || c == '‐' || c == '‑':
			flush()
		case unicode.IsLetter(c) || unicode.IsDigit(c):
			if curr.Len() > 0 && !currIsWord {
				flush()
			}
			currIsWord = true
			curr.WriteRune(c)
		default:
			if curr.Len() > 0 && currIsWord {
				flush()
			}
			currIsWord = false
			curr.WriteRune(c)
		}
	}
	flush()

	tk.attachContext(ans)
	return ans
}

// attachContext fills Prev/Next of every token with the surrounding
// wordforms. Word positions are collected first so punctuation tokens
// never pollute a context window.
func (tk *Tokenizer) attachContext(tokens []Token) {
	wordPos := make([]int, 0, len(tokens))
	for i, tok := range tokens {
		if tok.IsWord() {
			wordPos = append(wordPos, i)
		}
	}
	for wi, ti := range wordPos {
		tok := &tokens[ti]
		lft := wi - tk.contextSize
		if lft < 0 {
			lft = 0
		}
		for _, pi := range wordPos[lft:wi] {
			tok.Prev = append(tok.Prev, tokens[pi].Word)
		}
		rgt := wi + 1 + tk.contextSize
		if rgt > len(wordPos) {
			rgt = len(wordPos)
		}
		for _, ni := range wordPos[wi+1 : rgt] {
			tok.Next = append(tok.Next, tokens[ni].Word)
		}
	}
}

// Words is a convenience filter returning just the wordforms of a
// token stream.
func Words(tokens []Token) []string {
	ans := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if tok.IsWord() {
			ans = append(ans, tok.Word)
		}
	}
	return ans
}
