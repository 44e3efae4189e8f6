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

// Package turtle implements turtle graphics on top of the window.Window
// interface.
//
// The turtle uses a centred coordinate system. The origin is in the middle of
// the window and the visible area extends from -MaxX to +MaxX horizontally and
// from -MaxY to +MaxY vertically. Y coordinates increase downwards, which
// means that walking with a direction of 90 degrees moves the turtle up the
// window.
//
// Lines that would extend outside the visible area are not drawn, but the
// turtle still moves.
package turtle
