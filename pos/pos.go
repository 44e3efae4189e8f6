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

// Package pos attaches source file positions to values. It is used by the
// script package to report where in a script an error was found.
package pos

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/turtlecomp/turtle/curated"
)

// FilePos is a line and column in a file. Both values count from one. The zero
// value means that the position is unknown.
type FilePos struct {
	Line   int
	Column int
}

// IsEmpty returns true if the position is unknown.
func (p FilePos) IsEmpty() bool {
	return p.Line == 0 && p.Column == 0
}

func (p FilePos) String() string {
	return fmt.Sprintf("line %d, column %d", p.Line, p.Column)
}

// Sentinal error patterns returned by ParseFilePos().
const (
	NoDelimiter = "file position: no delimiter"
	BadNumber   = "file position: %v"
)

// ParseFilePos parses strings of the form "12:4". Any single character other
// than an ASCII digit can be used as the delimiter. Neither number can be
// negative.
func ParseFilePos(s string) (FilePos, error) {
	i := strings.IndexFunc(s, func(r rune) bool {
		return r < '0' || r > '9'
	})
	if i < 0 {
		return FilePos{}, curated.Errorf(NoDelimiter)
	}

	line, err := parseCount(s[:i])
	if err != nil {
		return FilePos{}, err
	}

	// skip the delimiter, which may be more than one byte long
	_, w := utf8.DecodeRuneInString(s[i:])
	column, err := parseCount(s[i+w:])
	if err != nil {
		return FilePos{}, err
	}

	return FilePos{Line: line, Column: column}, nil
}

// parseCount accepts only unsigned decimal values that fit in an int
func parseCount(s string) (int, error) {
	v, err := strconv.ParseUint(s, 10, strconv.IntSize-1)
	if err != nil {
		return 0, curated.Errorf(BadNumber, err)
	}
	return int(v), nil
}

// Pos is a value with a FilePos attached.
type Pos[T any] struct {
	pos   FilePos
	value T
}

// New creates a new Pos wrapper.
func New[T any](value T, pos FilePos) Pos[T] {
	return Pos[T]{pos: pos, value: value}
}

// Position returns the attached FilePos.
func (p Pos[T]) Position() FilePos {
	return p.pos
}

// Value returns the wrapped value.
func (p Pos[T]) Value() T {
	return p.value
}

// Ptr gives mutable access to the wrapped value.
func (p *Pos[T]) Ptr() *T {
	return &p.value
}

func (p Pos[T]) String() string {
	return fmt.Sprintf("%v (%s)", p.value, p.pos)
}

// Map transforms the wrapped value and keeps the position.
func Map[T, U any](p Pos[T], f func(T) U) Pos[U] {
	return Pos[U]{pos: p.pos, value: f(p.value)}
}
