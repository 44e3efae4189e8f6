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

// Window defines the operations a producer can perform on a visual surface.
type Window interface {
	// Init performs any deferred initialisation. It should be called once
	// before normal use. Calling it again has no effect.
	Init()

	// MaxCoords returns the viewport maximum in logical units.
	MaxCoords() Coord

	// SetMaxX and SetMaxY set one axis of the viewport maximum. Both must
	// be non-zero before Draw() is called.
	SetMaxX(x float64)
	SetMaxY(y float64)

	// Draw a line between two logical coordinates.
	Draw(from, to Coord, col Color) error

	// Clear the surface.
	Clear() error

	// Print text.
	Print(text string) error

	// Events returns every event that has arrived since the previous call.
	// It never blocks.
	Events() ([]Event, error)
}
