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

// Event is a message sent from the backend to the producer. Most events are
// passed through the relay untouched. Events that implement Positional have
// their coordinate converted from normalised to logical space.
type Event interface{}

// Positional is implemented by events that carry a coordinate.
type Positional interface {
	Position() Coord

	// WithPosition returns a copy of the event with the coordinate replaced.
	WithPosition(Coord) Event
}

// MouseButton identifies the mouse button in a click event.
type MouseButton int

// List of valid MouseButton values.
const (
	MouseButtonNone MouseButton = iota
	MouseButtonLeft
	MouseButtonMiddle
	MouseButtonRight
)

func (b MouseButton) String() string {
	switch b {
	case MouseButtonLeft:
		return "left"
	case MouseButtonMiddle:
		return "middle"
	case MouseButtonRight:
		return "right"
	}
	return "none"
}

// EventMouseClicked is sent when a mouse button is pressed over the drawable
// area.
type EventMouseClicked struct {
	Pos    Coord
	Button MouseButton
}

// Position implements the Positional interface.
func (ev EventMouseClicked) Position() Coord {
	return ev.Pos
}

// WithPosition implements the Positional interface.
func (ev EventMouseClicked) WithPosition(pos Coord) Event {
	ev.Pos = pos
	return ev
}

func (ev EventMouseClicked) String() string {
	return fmt.Sprintf("%s click at %v", ev.Button, ev.Pos)
}

// EventKeyboard is sent when a key is pressed or released.
type EventKeyboard struct {
	Key  string
	Down bool
}

// EventWindowClose is sent when the user has asked for the surface to close.
type EventWindowClose struct{}
