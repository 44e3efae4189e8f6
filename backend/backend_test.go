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

package backend_test

import (
	"context"
	"image/color"
	"math"
	"testing"
	"time"

	"github.com/turtlecomp/turtle/backend"
	"github.com/turtlecomp/turtle/curated"
	"github.com/turtlecomp/turtle/test"
	"github.com/turtlecomp/turtle/window"
)

// recording surface remembers everything it is asked to do.
type recording struct {
	ops []string
}

func (r *recording) DrawLine(from, to window.Coord, col window.Color) error {
	r.ops = append(r.ops, "draw "+from.String()+" "+to.String())
	return nil
}

func (r *recording) Clear() error {
	r.ops = append(r.ops, "clear")
	return nil
}

func (r *recording) Print(text string) error {
	r.ops = append(r.ops, "print "+text)
	return nil
}

func TestService(t *testing.T) {
	win, cmds, _ := window.Construct()
	win.SetMaxX(10)
	win.SetMaxY(20)

	rec := &recording{}
	pump := backend.Pump{Commands: cmds, Surface: rec}

	n, err := pump.Service()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 0)

	test.DemandSuccess(t, win.Clear())
	test.DemandSuccess(t, win.Draw(window.Coord{X: 5, Y: 5}, window.Coord{X: 10, Y: 20}, nil))
	test.DemandSuccess(t, win.Print("done"))

	n, err = pump.Service()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 3)
	test.DemandEquality(t, len(rec.ops), 3)
	test.ExpectEquality(t, rec.ops[0], "clear")
	test.ExpectEquality(t, rec.ops[1], "draw (0.5, 0.25) (1, 1)")
	test.ExpectEquality(t, rec.ops[2], "print done")

	win.Close()
	_, err = pump.Service()
	test.ExpectSuccess(t, curated.Is(err, window.Disconnected))
}

func TestRun(t *testing.T) {
	win, cmds, _ := window.Construct()
	rec := &recording{}
	pump := backend.Pump{Commands: cmds, Surface: rec}

	done := make(chan error)
	go func() {
		done <- pump.Run(context.Background())
	}()

	test.DemandSuccess(t, win.Print("a"))
	test.DemandSuccess(t, win.Print("b"))
	win.Close()

	// closing the relay ends Run() without an error
	test.ExpectSuccess(t, <-done)
	test.DemandEquality(t, len(rec.ops), 2)
	test.ExpectEquality(t, rec.ops[1], "print b")
}

func TestRunCancel(t *testing.T) {
	_, cmds, _ := window.Construct()
	pump := backend.Pump{Commands: cmds, Surface: &recording{}}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	test.ExpectEquality(t, pump.Run(ctx), context.DeadlineExceeded)
}

func TestPixels(t *testing.T) {
	x, y := backend.ToPixels(window.Coord{X: 0.5, Y: 0.25}, 640, 480)
	test.ExpectEquality(t, x, 320)
	test.ExpectEquality(t, y, 120)

	x, _ = backend.ToPixels(window.Coord{X: math.NaN()}, 640, 480)
	test.ExpectEquality(t, x, -1)

	c := backend.FromPixels(320, 120, 640, 480)
	test.ExpectEquality(t, c, window.Coord{X: 0.5, Y: 0.25})
}

func TestFinite(t *testing.T) {
	test.ExpectSuccess(t, backend.Finite())
	test.ExpectSuccess(t, backend.Finite(window.Coord{X: 0.5, Y: 1}, window.Coord{X: -3, Y: 7}))

	// one bad axis anywhere is enough
	test.ExpectFailure(t, backend.Finite(window.Coord{X: 0.5, Y: 0.5}, window.Coord{X: math.NaN()}))
	test.ExpectFailure(t, backend.Finite(window.Coord{Y: math.Inf(-1)}, window.Coord{}))
	test.ExpectFailure(t, backend.Finite(window.Coord{X: math.Inf(1)}))
}

func TestColorOf(t *testing.T) {
	def := color.RGBA{R: 1, G: 2, B: 3, A: 255}
	test.ExpectEquality(t, backend.ColorOf(nil, def), def)
	test.ExpectEquality(t, backend.ColorOf("red", def), def)
	test.ExpectEquality(t, backend.ColorOf(color.RGBA{R: 255, A: 255}, def), color.RGBA{R: 255, A: 255})
	test.ExpectEquality(t, backend.ColorOf(color.White, def), color.RGBA{R: 255, G: 255, B: 255, A: 255})
}
