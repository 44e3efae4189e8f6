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
	"context"
	"strings"
	"time"

	"github.com/turtlecomp/turtle/curated"
	"github.com/turtlecomp/turtle/logger"
	"github.com/turtlecomp/turtle/pos"
	"github.com/turtlecomp/turtle/turtle"
)

// Run the statements. Running stops at the first error or when the context
// is done.
func Run(ctx context.Context, t *turtle.Turtle, stmts []pos.Pos[Statement]) error {
	for _, st := range stmts {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := execute(t, st.Value()); err != nil {
			return curated.Errorf(ScriptError, st.Position(), err)
		}
	}
	logger.Logf(logger.Allow, "script", "%d statements run", len(stmts))
	return nil
}

// Exec parses and runs a single line. A blank line or a comment does
// nothing.
func Exec(t *turtle.Turtle, line string) error {
	st, ok, err := ParseLine(line, 1)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	if err := execute(t, st.Value()); err != nil {
		return curated.Errorf(ScriptError, st.Position(), err)
	}
	return nil
}

// RunString is a convenience function that parses and runs a script held in
// a string.
func RunString(ctx context.Context, t *turtle.Turtle, script string) error {
	stmts, err := Parse(strings.NewReader(script))
	if err != nil {
		return err
	}
	return Run(ctx, t, stmts)
}

func execute(t *turtle.Turtle, st Statement) error {
	switch st.Op {
	case OpWalk:
		return t.Walk(st.Args[0], true)
	case OpJump:
		return t.Walk(st.Args[0], false)
	case OpMoveTo:
		return t.WalkPos(st.Args[0], st.Args[1], true)
	case OpGoto:
		return t.WalkPos(st.Args[0], st.Args[1], false)
	case OpDir:
		t.SetDir(st.Args[0])
	case OpTurn:
		t.Turn(st.Args[0])
	case OpColor:
		t.SetColor(st.Args[0], st.Args[1], st.Args[2])
	case OpMark:
		t.SetMark()
	case OpBack:
		return t.LoadMark(true)
	case OpJumpBack:
		return t.LoadMark(false)
	case OpClear:
		return t.Clear()
	case OpPrint:
		return t.Print(st.Text)
	case OpMax:
		return t.SetMax(st.Args[0], st.Args[1])
	case OpDelay:
		t.SetDelay(time.Duration(st.Args[0] * float64(time.Millisecond)))
	}
	return nil
}
