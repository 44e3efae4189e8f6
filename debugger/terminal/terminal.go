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

package terminal

// Style is used to indicate the type of output being printed. Terminal
// implementations are free to present the styles however they see fit.
type Style int

// List of valid Style values.
const (
	// echo of user input
	StyleEcho Style = iota

	// the result of a command
	StyleFeedback

	// help text
	StyleHelp

	// asynchronous notification, such as a mouse click
	StyleNotification

	// errors are printed even when the terminal is silenced
	StyleError
)

// Input defines the operations required by an interface that allows input.
type Input interface {
	// TermRead returns the next line of input without the line terminator.
	// It returns io.EOF when there is no more input.
	TermRead(prompt Prompt) (string, error)

	// IsRealTerminal returns true if the terminal is connected to a real
	// terminal device.
	IsRealTerminal() bool
}

// Output defines the operations required by an interface that allows output.
type Output interface {
	TermPrintLine(Style, string)
}

// Terminal defines the operations required by the debugger's command line
// interface.
type Terminal interface {
	Input
	Output

	// Initialise the terminal. not all terminal implementations will need to
	// do anything.
	Initialise() error

	// Restore the terminal to it's original state, if possible. not all
	// terminal implementations will need to do anything.
	CleanUp()

	// Silence all output except error messages.
	Silence(silenced bool)
}
