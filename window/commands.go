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

package window

import "fmt"

// Color is passed from producer to backend without modification. Backends
// that understand image/color.Color values will use them.
type Color interface{}

// Command is a message sent from the producer to the backend. The commands
// must be applied in the order they are received.
type Command interface {
	fmt.Stringer
	command()
}

// CmdDraw draws a line between two normalised coordinates.
type CmdDraw struct {
	From Coord
	To   Coord
	Col  Color
}

func (CmdDraw) command() {}

func (c CmdDraw) String() string {
	return fmt.Sprintf("draw %v -> %v", c.From, c.To)
}

// CmdClear clears the drawable area.
type CmdClear struct{}

func (CmdClear) command() {}

func (CmdClear) String() string {
	return "clear"
}

// CmdPrint outputs text.
type CmdPrint struct {
	Text string
}

func (CmdPrint) command() {}

func (c CmdPrint) String() string {
	return fmt.Sprintf("print %q", c.Text)
}
