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
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/turtlecomp/turtle/curated"
	"github.com/turtlecomp/turtle/pos"
)

// ScriptError is the pattern for all errors found in a script. The first
// value is the position of the error.
const ScriptError = "script: %v: %v"

// Op is the command part of a statement.
type Op string

// List of valid Op values.
const (
	OpWalk     Op = "walk"
	OpJump     Op = "jump"
	OpMoveTo   Op = "moveto"
	OpGoto     Op = "goto"
	OpDir      Op = "dir"
	OpTurn     Op = "turn"
	OpColor    Op = "color"
	OpMark     Op = "mark"
	OpBack     Op = "back"
	OpJumpBack Op = "jumpback"
	OpClear    Op = "clear"
	OpPrint    Op = "print"
	OpMax      Op = "max"
	OpDelay    Op = "delay"
)

// number of arguments required by each Op. print is special and takes the
// rest of the line
var arity = map[Op]int{
	OpWalk:     1,
	OpJump:     1,
	OpMoveTo:   2,
	OpGoto:     2,
	OpDir:      1,
	OpTurn:     1,
	OpColor:    3,
	OpMark:     0,
	OpBack:     0,
	OpJumpBack: 0,
	OpClear:    0,
	OpPrint:    -1,
	OpMax:      2,
	OpDelay:    1,
}

// MaxDelay is the largest delay, in milliseconds, accepted by the delay
// statement.
const MaxDelay = 60000

// Statement is a single parsed line of a script.
type Statement struct {
	Op   Op
	Args []float64

	// print statements only
	Text string
}

func (st Statement) String() string {
	if st.Op == OpPrint {
		return fmt.Sprintf("%s %s", st.Op, st.Text)
	}
	s := strings.Builder{}
	s.WriteString(string(st.Op))
	for _, a := range st.Args {
		s.WriteString(fmt.Sprintf(" %g", a))
	}
	return s.String()
}

// Parse reads a script. Parsing stops at the first error.
func Parse(r io.Reader) ([]pos.Pos[Statement], error) {
	var stmts []pos.Pos[Statement]

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		st, ok, err := ParseLine(scanner.Text(), lineNum)
		if err != nil {
			return nil, err
		}
		if ok {
			stmts = append(stmts, st)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf(ScriptError, pos.FilePos{Line: lineNum + 1}, err)
	}

	return stmts, nil
}

// ParseLine parses a single line. The boolean return value is false if the
// line is blank or is a comment.
func ParseLine(line string, lineNum int) (pos.Pos[Statement], bool, error) {
	toks := Tokenise(line, lineNum)
	if len(toks) == 0 || strings.HasPrefix(toks[0].Value().Text, "#") {
		return pos.Pos[Statement]{}, false, nil
	}

	cmd := toks[0]
	op := Op(strings.ToLower(cmd.Value().Text))
	n, ok := arity[op]
	if !ok {
		return pos.Pos[Statement]{}, false, curated.Errorf(ScriptError, cmd.Position(),
			fmt.Sprintf("unknown command (%s)", cmd.Value().Text))
	}

	st := Statement{Op: op}

	if n < 0 {
		st.Text = restOfLine(line, cmd.Position().Column, len(cmd.Value().Text))
		return pos.Map(cmd, func(Token) Statement { return st }), true, nil
	}

	args := toks[1:]
	if len(args) != n {
		p := cmd.Position()
		if len(args) > n {
			p = args[n].Position()
		}
		return pos.Pos[Statement]{}, false, curated.Errorf(ScriptError, p,
			fmt.Sprintf("%s expects %d argument(s), found %d", op, n, len(args)))
	}

	for _, a := range args {
		if a.Value().Kind != Number {
			return pos.Pos[Statement]{}, false, curated.Errorf(ScriptError, a.Position(),
				fmt.Sprintf("not a number (%s)", a.Value().Text))
		}
		st.Args = append(st.Args, a.Value().Value)
	}

	if op == OpDelay && (st.Args[0] < 0 || st.Args[0] > MaxDelay) {
		return pos.Pos[Statement]{}, false, curated.Errorf(ScriptError, args[0].Position(),
			fmt.Sprintf("delay out of range (%s)", args[0].Value().Text))
	}

	return pos.Map(cmd, func(Token) Statement { return st }), true, nil
}

// restOfLine returns the text following the command, with leading white
// space removed. column counts runes from one
func restOfLine(line string, column int, cmdLen int) string {
	col := 0
	for i := range line {
		col++
		if col == column {
			return strings.TrimLeftFunc(line[i+cmdLen:], unicode.IsSpace)
		}
	}
	return ""
}
