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

// Package backend contains the parts shared by the rendering backends that
// sit on the far side of a window relay.
//
// A backend implements Surface and uses a Pump to apply the commands arriving
// from the relay. GUI backends that must be serviced from the main thread
// call Pump.Service() once per frame. Backends that can run on their own
// goroutine call Pump.Run().
package backend

import (
	"context"
	"image/color"
	"math"

	"github.com/turtlecomp/turtle/curated"
	"github.com/turtlecomp/turtle/logger"
	"github.com/turtlecomp/turtle/window"
)

// Surface is implemented by anything that can draw the window commands.
// Coordinates are normalised; each axis is a fraction of the drawable area.
type Surface interface {
	DrawLine(from, to window.Coord, col window.Color) error
	Clear() error
	Print(text string) error
}

// Apply a single command to a surface.
func Apply(s Surface, cmd window.Command) error {
	switch cmd := cmd.(type) {
	case window.CmdDraw:
		return s.DrawLine(cmd.From, cmd.To, cmd.Col)
	case window.CmdClear:
		return s.Clear()
	case window.CmdPrint:
		return s.Print(cmd.Text)
	}
	return curated.Errorf(UnknownCommand, cmd)
}

// UnknownCommand is returned by Apply() for commands it does not recognise.
const UnknownCommand = "backend: unknown command (%T)"

// Pump moves commands from the relay to a surface.
type Pump struct {
	Commands *window.CommandReceiver
	Surface  Surface
}

// Service applies every command that is waiting. It never blocks and returns
// the number of commands applied. Suitable for calling once per frame from a
// GUI loop.
//
// A Disconnected error means the producer has gone. Commands received before
// the disconnection will have been applied.
func (p *Pump) Service() (int, error) {
	var n int
	for {
		cmd, ok, err := p.Commands.TryRecv()
		if err != nil {
			return n, err
		}
		if !ok {
			return n, nil
		}
		if err := Apply(p.Surface, cmd); err != nil {
			return n, err
		}
		n++
	}
}

// Run applies commands as they arrive until the producer closes the relay,
// in which case it returns nil, or the context is done, in which case it
// returns the context's error.
func (p *Pump) Run(ctx context.Context) error {
	for {
		cmd, err := p.Commands.Recv(ctx)
		if err != nil {
			if curated.Is(err, window.Disconnected) {
				logger.Log(logger.Allow, "backend", err)
				return nil
			}
			return err
		}
		if err := Apply(p.Surface, cmd); err != nil {
			return err
		}
	}
}

// ToPixels converts a normalised coordinate to a pixel position in an area of
// the given size. Values that are not finite are returned as -1 so that they
// fall outside the area.
func ToPixels(c window.Coord, width, height int) (int, int) {
	return toPixel(c.X, width), toPixel(c.Y, height)
}

func toPixel(v float64, size int) int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return -1
	}
	return int(math.Round(v * float64(size)))
}

// Finite returns true if every axis of every coordinate is a finite number.
// Lines with a coordinate that is not finite can not be drawn.
func Finite(cs ...window.Coord) bool {
	for _, c := range cs {
		for _, v := range [...]float64{c.X, c.Y} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return false
			}
		}
	}
	return true
}

// FromPixels converts a pixel position into a normalised coordinate.
func FromPixels(x, y int, width, height int) window.Coord {
	return window.Coord{
		X: float64(x) / float64(width),
		Y: float64(y) / float64(height),
	}
}

// ColorOf returns col as an RGBA value if it is an image/color.Color.
// Otherwise def is returned.
func ColorOf(col window.Color, def color.RGBA) color.RGBA {
	if c, ok := col.(color.Color); ok && c != nil {
		return color.RGBAModel.Convert(c).(color.RGBA)
	}
	return def
}
