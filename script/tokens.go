// This file is part of Turtle.
//
// Turtle is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Turtle is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Turtle.  If not, see <https://www.gnu.org/licenses/>.

package script

import (
	"math"
	"strconv"
	"unicode"

	"github.com/turtlecomp/turtle/pos"
)

// TokenKind distinguishes between the types of Token.
type TokenKind int

// List of valid TokenKind values.
const (
	Word TokenKind = iota
	Number
)

func (k TokenKind) String() string {
	switch k {
	case Word:
		return "word"
	case Number:
		return "number"
	}
	return "unknown"
}

// Token is a single white space separated item in a line.
type Token struct {
	Kind  TokenKind
	Text  string
	Value float64
}

func (tk Token) String() string {
	return tk.Text
}

// Tokenise splits a line into tokens. Columns are counted in runes starting
// from one. Only finite values are classified as a Number.
func Tokenise(line string, lineNum int) []pos.Pos[Token] {
	var toks []pos.Pos[Token]

	var start int
	var startCol int
	inToken := false
	col := 0

	flush := func(end int) {
		text := line[start:end]
		tk := Token{Kind: Word, Text: text}
		// nan and inf are accepted by ParseFloat but are not numbers to a
		// turtle
		if v, err := strconv.ParseFloat(text, 64); err == nil && !math.IsNaN(v) && !math.IsInf(v, 0) {
			tk.Kind = Number
			tk.Value = v
		}
		toks = append(toks, pos.New(tk, pos.FilePos{Line: lineNum, Column: startCol}))
	}

	for i, r := range line {
		col++
		if unicode.IsSpace(r) {
			if inToken {
				flush(i)
				inToken = false
			}
			continue
		}
		if !inToken {
			start = i
			startCol = col
			inToken = true
		}
	}
	if inToken {
		flush(len(line))
	}

	return toks
}
