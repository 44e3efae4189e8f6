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

//go:build linux || darwin || freebsd || netbsd || openbsd

// Package easyterm implements the Terminal interface for the debugger on
// posix systems. It is a wrapper for "github.com/pkg/term/termios".
//
// The terminal's attributes are saved when the terminal is initialised and
// restored on clean up. While reading input the terminal is put into
// canonical mode, whatever mode it was in before. Output is coloured
// according to its style.
package easyterm

import (
	"bufio"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"

	"github.com/pkg/term/termios"
	"github.com/turtlecomp/turtle/curated"
	"github.com/turtlecomp/turtle/debugger/terminal"
	"github.com/turtlecomp/turtle/logger"
	"golang.org/x/sys/unix"
)

// TerminalError is the pattern used for errors from the termios library.
const TerminalError = "easyterm: %v"

// TermGeometry contains the dimensions of a terminal in characters.
type TermGeometry struct {
	Rows uint16
	Cols uint16
}

// EasyTerminal is an implementation of the terminal.Terminal interface.
type EasyTerminal struct {
	input  *os.File
	output *os.File
	reader *bufio.Reader

	// attributes at time of Initialise()
	savedAttr unix.Termios

	// attributes used while reading input
	canAttr unix.Termios

	silenced bool

	// sig/ack channels to control signal handler
	terminateHandlerSig chan bool
	terminateHandlerAck chan bool

	// geometry is updated by the signal handler
	mu       sync.Mutex
	geometry TermGeometry
}

// NewEasyTerminal creates an EasyTerminal. Nil arguments default to stdin
// and stdout.
func NewEasyTerminal(input, output *os.File) *EasyTerminal {
	if input == nil {
		input = os.Stdin
	}
	if output == nil {
		output = os.Stdout
	}
	return &EasyTerminal{input: input, output: output}
}

// Initialise implements the terminal.Terminal interface.
func (et *EasyTerminal) Initialise() error {
	err := termios.Tcgetattr(et.input.Fd(), &et.savedAttr)
	if err != nil {
		return curated.Errorf(TerminalError, err)
	}

	// canonical mode with echo. this is the mode a terminal is normally in
	// but the previous program may have left it in some other state
	et.canAttr = et.savedAttr
	et.canAttr.Lflag |= unix.ICANON | unix.ECHO | unix.ECHOE | unix.ISIG

	et.reader = bufio.NewReader(et.input)

	_ = et.updateGeometry()

	// set up sig/ack channels for signal handler
	et.terminateHandlerSig = make(chan bool)
	et.terminateHandlerAck = make(chan bool)

	go func() {
		sigwinch := make(chan os.Signal, 1)
		signal.Notify(sigwinch, syscall.SIGWINCH)
		defer func() {
			signal.Stop(sigwinch)
			et.terminateHandlerAck <- true
		}()

		for {
			select {
			case <-sigwinch:
				if err := et.updateGeometry(); err != nil {
					logger.Log(logger.Allow, "easyterm", err)
				}
			case <-et.terminateHandlerSig:
				return
			}
		}
	}()

	return nil
}

// CleanUp implements the terminal.Terminal interface.
func (et *EasyTerminal) CleanUp() {
	if et.terminateHandlerSig == nil {
		return
	}
	et.terminateHandlerSig <- true
	<-et.terminateHandlerAck
	et.terminateHandlerSig = nil

	_ = termios.Tcflush(et.input.Fd(), termios.TCIFLUSH)
	if err := termios.Tcsetattr(et.input.Fd(), termios.TCIFLUSH, &et.savedAttr); err != nil {
		logger.Log(logger.Allow, "easyterm", curated.Errorf(TerminalError, err))
	}
}

// Geometry returns the current dimensions of the output terminal. The
// dimensions are kept up to date while the terminal is initialised. Output
// from TermPrintLine() is wrapped to the number of columns.
func (et *EasyTerminal) Geometry() TermGeometry {
	et.mu.Lock()
	defer et.mu.Unlock()
	return et.geometry
}

func (et *EasyTerminal) updateGeometry() error {
	ws, err := unix.IoctlGetWinsize(int(et.output.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return curated.Errorf(TerminalError, err)
	}

	et.mu.Lock()
	defer et.mu.Unlock()
	et.geometry = TermGeometry{Rows: ws.Row, Cols: ws.Col}
	return nil
}

// Silence implements the terminal.Terminal interface.
func (et *EasyTerminal) Silence(silenced bool) {
	et.silenced = silenced
}

// IsRealTerminal implements the terminal.Input interface.
func (et *EasyTerminal) IsRealTerminal() bool {
	return true
}

// TermRead implements the terminal.Input interface.
func (et *EasyTerminal) TermRead(prompt terminal.Prompt) (string, error) {
	if err := termios.Tcsetattr(et.input.Fd(), termios.TCIFLUSH, &et.canAttr); err != nil {
		return "", curated.Errorf(TerminalError, err)
	}

	et.print(fmt.Sprintf("%s%s%s", ansiPrompt, prompt.String(), ansiNormal))

	s, err := et.reader.ReadString('\n')
	if err != nil && len(s) == 0 {
		return "", err
	}

	return strings.TrimRight(s, "\r\n"), nil
}

// TermPrintLine implements the terminal.Output interface.
func (et *EasyTerminal) TermPrintLine(style terminal.Style, s string) {
	if et.silenced && style != terminal.StyleError {
		return
	}

	// the terminal echoes input itself
	if style == terminal.StyleEcho {
		return
	}

	// long lines are wrapped by us rather than by the terminal so that every
	// line is styled
	for _, l := range wrap(s, width(style, int(et.Geometry().Cols))) {
		et.print(styled(style, l))
		et.print("\n")
	}
}

func (et *EasyTerminal) print(s string) {
	_, _ = et.output.WriteString(s)
	_ = et.output.Sync()
}
