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

package plainterm_test

import (
	"io"
	"strings"
	"testing"

	"github.com/turtlecomp/turtle/debugger/terminal"
	"github.com/turtlecomp/turtle/debugger/terminal/plainterm"
	"github.com/turtlecomp/turtle/test"
)

func TestPlainTerminal(t *testing.T) {
	out := &test.CompareWriter{}
	pt := plainterm.NewPlainTerminal(strings.NewReader("walk 10\r\nturn 90"), out)
	test.DemandSuccess(t, pt.Initialise())
	defer pt.CleanUp()

	test.ExpectFailure(t, pt.IsRealTerminal())

	s, err := pt.TermRead(terminal.Prompt{})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "walk 10")

	s, err = pt.TermRead(terminal.Prompt{})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "turn 90")

	_, err = pt.TermRead(terminal.Prompt{})
	test.ExpectEquality(t, err, io.EOF)

	// the prompt is not printed because the input is not a real terminal
	test.ExpectEquality(t, out.String(), "")
}

func TestPlainTerminalOutput(t *testing.T) {
	out := &test.CompareWriter{}
	pt := plainterm.NewPlainTerminal(strings.NewReader(""), out)
	test.DemandSuccess(t, pt.Initialise())

	pt.TermPrintLine(terminal.StyleEcho, "echo")
	pt.TermPrintLine(terminal.StyleFeedback, "feedback")
	pt.TermPrintLine(terminal.StyleError, "error")
	pt.TermPrintLine(terminal.StyleNotification, "click")
	test.ExpectSuccess(t, out.Compare("feedback\n* error\n! click\n"))

	out.Clear()
	pt.Silence(true)
	pt.TermPrintLine(terminal.StyleFeedback, "feedback")
	pt.TermPrintLine(terminal.StyleError, "error")
	test.ExpectSuccess(t, out.Compare("* error\n"))
}
