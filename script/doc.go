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

// Package script reads and runs turtle scripts.
//
// A script is a sequence of lines. Each line holds a single statement made up
// of a command followed by its arguments, separated by white space. Blank
// lines and lines beginning with # are ignored. Commands are not case
// sensitive.
//
//	walk   d        move forward d units, drawing a line
//	jump   d        move forward d units without drawing
//	moveto x y      move to x, y, drawing a line
//	goto   x y      move to x, y without drawing
//	dir    a        face direction a (degrees, anticlockwise from the right)
//	turn   a        turn anticlockwise by a degrees
//	color  r g b    change drawing colour (each component a percentage)
//	mark            remember the current position and direction
//	back            return to the last mark, drawing a line
//	jumpback        return to the last mark without drawing
//	clear           clear the window
//	print  text     print the remainder of the line
//	max    x y      change the extent of the visible area
//	delay  ms       pause after every line drawn
//
// Errors found while parsing or running a script are reported with the line
// and column of the offending token.
package script
