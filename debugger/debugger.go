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

package debugger

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/turtlecomp/turtle/curated"
	"github.com/turtlecomp/turtle/debugger/terminal"
	"github.com/turtlecomp/turtle/logger"
	"github.com/turtlecomp/turtle/pos"
	"github.com/turtlecomp/turtle/script"
	"github.com/turtlecomp/turtle/turtle"
	"github.com/turtlecomp/turtle/window"
)

// maximum number of events remembered for the EVENTS command
const eventHistory = 20

// number of log entries shown by the LOG command when no number is given
const defaultLogTail = 10

// how often the window is polled while waiting for input
const pollInterval = 50 * time.Millisecond

// the result of a single call to TermRead()
type readResult struct {
	input string
	err   error
}

// Debugger is the interactive session.
type Debugger struct {
	term terminal.Terminal
	trt  *turtle.Turtle

	// most recent events, oldest first
	events []window.Event

	// the relay has been closed by the backend
	disconnected bool

	quit bool
}

// NewDebugger is the preferred method of initialisation for the Debugger
// type. The turtle should already have been initialised.
func NewDebugger(term terminal.Terminal, trt *turtle.Turtle) *Debugger {
	return &Debugger{
		term: term,
		trt:  trt,
	}
}

// Start the debugging session. It returns when the user quits, when the input
// is exhausted, when the window is closed or when the context is done.
//
// Input is read on a separate goroutine so that the window can be polled, and
// a window close noticed, while the user is typing.
//
// If the backend goes away without a window close event then the session ends
// with a Disconnected error.
func (dbg *Debugger) Start(ctx context.Context) error {
	err := dbg.term.Initialise()
	if err != nil {
		return err
	}
	defer dbg.term.CleanUp()

	dbg.term.TermPrintLine(terminal.StyleFeedback, "type HELP for a list of commands")

	// the reader goroutine only ever touches the terminal's input. the prompt
	// is prepared on this goroutine because it reads the turtle's state
	prompts := make(chan terminal.Prompt)
	defer close(prompts)

	// buffered so that the reader goroutine can finish a read that completes
	// after the session has ended
	results := make(chan readResult, 1)

	go func() {
		for p := range prompts {
			s, err := dbg.term.TermRead(p)
			results <- readResult{input: s, err: err}
		}
	}()

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	reading := false

	for !dbg.quit {
		if err := ctx.Err(); err != nil {
			return err
		}

		if !reading {
			prompts <- dbg.prompt()
			reading = true
		}

		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-ticker.C:
			if err := dbg.poll(); err != nil {
				return err
			}

		case r := <-results:
			reading = false

			if r.err != nil {
				if errors.Is(r.err, io.EOF) {
					return nil
				}
				return r.err
			}

			dbg.term.TermPrintLine(terminal.StyleEcho, r.input)

			if err := dbg.command(ctx, r.input); err != nil {
				if curated.Has(err, window.Disconnected) {
					return err
				}
				dbg.term.TermPrintLine(terminal.StyleError, err.Error())
			}

			if err := dbg.poll(); err != nil {
				return err
			}
		}
	}

	return nil
}

func (dbg *Debugger) prompt() terminal.Prompt {
	return terminal.Prompt{
		Content:      fmt.Sprintf("%v @ %g", dbg.trt.Position(), dbg.trt.Direction()),
		Disconnected: dbg.disconnected,
	}
}

// poll collects events from the window. clicks are reported to the terminal
func (dbg *Debugger) poll() error {
	err := dbg.trt.Poll(func(ev window.Event) {
		dbg.events = append(dbg.events, ev)
		if len(dbg.events) > eventHistory {
			dbg.events = dbg.events[len(dbg.events)-eventHistory:]
		}

		switch ev := ev.(type) {
		case window.EventMouseClicked:
			dbg.term.TermPrintLine(terminal.StyleNotification, ev.String())
		case window.EventWindowClose:
			dbg.term.TermPrintLine(terminal.StyleNotification, "window closed")
			dbg.quit = true
		}
	})

	if err != nil {
		if curated.Is(err, window.Disconnected) {
			dbg.disconnected = true
			if dbg.quit {
				return nil
			}
		}
		return err
	}

	return nil
}

func (dbg *Debugger) command(ctx context.Context, input string) error {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return nil
	}

	switch fields[0] {
	case "QUIT":
		dbg.quit = true

	case "HELP":
		dbg.term.TermPrintLine(terminal.StyleHelp, help)

	case "EVENTS":
		if len(dbg.events) == 0 {
			dbg.term.TermPrintLine(terminal.StyleFeedback, "no events")
		}
		for _, ev := range dbg.events {
			dbg.term.TermPrintLine(terminal.StyleFeedback, describeEvent(ev))
		}

	case "LOG":
		n := defaultLogTail
		if len(fields) > 1 {
			var err error
			n, err = strconv.Atoi(fields[1])
			if err != nil {
				return curated.Errorf(CommandError, "LOG", err)
			}
		}
		w := &terminal.LineWriter{Output: dbg.term, Style: terminal.StyleFeedback}
		logger.Tail(w, n)
		w.Flush()

	case "RUN":
		var from pos.FilePos
		switch len(fields) {
		case 2:
		case 3:
			var err error
			from, err = pos.ParseFilePos(fields[2])
			if err != nil {
				return curated.Errorf(CommandError, "RUN", err)
			}
		default:
			return curated.Errorf(CommandError, "RUN", "expects a filename")
		}
		return dbg.run(ctx, fields[1], from)

	default:
		return script.Exec(dbg.trt, input)
	}

	return nil
}

// CommandError is the pattern for errors in the debugger's own commands.
const CommandError = "debugger: %s: %v"

// run the script file starting with the first statement at or after the
// from position. an empty position runs the entire script
func (dbg *Debugger) run(ctx context.Context, filename string, from pos.FilePos) error {
	f, err := os.Open(filename)
	if err != nil {
		return curated.Errorf(CommandError, "RUN", err)
	}
	defer f.Close()

	stmts, err := script.Parse(f)
	if err != nil {
		return err
	}

	for len(stmts) > 0 && before(stmts[0].Position(), from) {
		stmts = stmts[1:]
	}
	if len(stmts) == 0 {
		dbg.term.TermPrintLine(terminal.StyleFeedback, fmt.Sprintf("nothing to run from %s", from))
		return nil
	}

	return script.Run(ctx, dbg.trt, stmts)
}

func before(p pos.FilePos, q pos.FilePos) bool {
	return p.Line < q.Line || (p.Line == q.Line && p.Column < q.Column)
}

func describeEvent(ev window.Event) string {
	switch ev := ev.(type) {
	case window.EventMouseClicked:
		return ev.String()
	case window.EventKeyboard:
		if ev.Down {
			return fmt.Sprintf("key %s down", ev.Key)
		}
		return fmt.Sprintf("key %s up", ev.Key)
	case window.EventWindowClose:
		return "window close"
	}
	return fmt.Sprintf("%v", ev)
}

const help = `QUIT            end the session
EVENTS          list the most recent events received from the window
LOG [n]         show the most recent log entries
RUN file [l:c]  run a script file, optionally from the statement at line l
                and column c
HELP            list the debugger commands

any other input is run as a script statement. for example:
walk 10, turn 90, color 100 0 0, clear, print hello`
