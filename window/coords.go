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

// Coord is a point in either logical or normalised space.
type Coord struct {
	X float64
	Y float64
}

func (c Coord) String() string {
	return fmt.Sprintf("(%g, %g)", c.X, c.Y)
}

// Normalise converts a logical coordinate into normalised space by dividing
// each axis by the corresponding axis of max. A zero axis in max produces
// NaN or Inf for that axis.
func Normalise(c Coord, max Coord) Coord {
	return Coord{X: c.X / max.X, Y: c.Y / max.Y}
}

// Denormalise is the inverse of Normalise().
func Denormalise(c Coord, max Coord) Coord {
	return Coord{X: c.X * max.X, Y: c.Y * max.Y}
}
