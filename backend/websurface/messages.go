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

package websurface

import (
	"fmt"
	"image/color"

	"github.com/turtlecomp/turtle/window"
)

// message is the JSON form of a command sent to the browser and of a click
// sent from the browser.
type message struct {
	Op string `json:"op"`

	X1 float64 `json:"x1,omitempty"`
	Y1 float64 `json:"y1,omitempty"`
	X2 float64 `json:"x2,omitempty"`
	Y2 float64 `json:"y2,omitempty"`

	// CSS colour
	Color string `json:"color,omitempty"`

	Text string `json:"text,omitempty"`

	// click messages only
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Button string  `json:"button,omitempty"`
}

// list of valid values for the Op field
const (
	opDraw  = "draw"
	opClear = "clear"
	opPrint = "print"
	opClick = "click"
)

func cssColor(c color.RGBA) string {
	return fmt.Sprintf("rgba(%d,%d,%d,%.3f)", c.R, c.G, c.B, float64(c.A)/255)
}

func parseButton(s string) window.MouseButton {
	switch s {
	case "left":
		return window.MouseButtonLeft
	case "middle":
		return window.MouseButtonMiddle
	case "right":
		return window.MouseButtonRight
	}
	return window.MouseButtonNone
}
