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

package turtle_test

import (
	"image/color"
	"math"
	"testing"

	"github.com/turtlecomp/turtle/curated"
	"github.com/turtlecomp/turtle/test"
	"github.com/turtlecomp/turtle/turtle"
	"github.com/turtlecomp/turtle/window"
)

func newTurtle(t *testing.T) (*turtle.Turtle, *window.ChannelWindow, *window.CommandReceiver, *window.EventSender) {
	t.Helper()
	win, cmds, events := window.Construct()
	trt := turtle.NewTurtle(win)
	trt.SetDelay(0)
	trt.Init()
	return trt, win, cmds, events
}

func nextDraw(t *testing.T, cmds *window.CommandReceiver) window.CmdDraw {
	t.Helper()
	cmd, ok, err := cmds.TryRecv()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, ok)
	d, ok := cmd.(window.CmdDraw)
	test.DemandSuccess(t, ok)
	return d
}

func approxCoord(t *testing.T, got, expected window.Coord) {
	t.Helper()
	test.ExpectApproximate(t, got.X, expected.X, 0.000001)
	test.ExpectApproximate(t, got.Y, expected.Y, 0.000001)
}

func TestInit(t *testing.T) {
	trt, win, _, _ := newTurtle(t)
	test.ExpectEquality(t, win.MaxCoords(), window.Coord{X: 40, Y: 30})
	test.ExpectEquality(t, trt.Position(), window.Coord{})
	test.ExpectEquality(t, trt.Color(), turtle.DefaultColor)
}

func TestInitRunsWindowInitialiser(t *testing.T) {
	var n int
	win, _, _ := window.NewPair(0, func() { n++ })
	trt := turtle.NewTurtle(win)
	trt.Init()
	trt.Init()
	test.ExpectEquality(t, n, 1)
}

func TestWalk(t *testing.T) {
	trt, _, cmds, _ := newTurtle(t)

	// direction zero is to the right
	test.DemandSuccess(t, trt.Walk(10, true))
	d := nextDraw(t, cmds)
	approxCoord(t, d.From, window.Coord{X: 0.5, Y: 0.5})
	approxCoord(t, d.To, window.Coord{X: 0.75, Y: 0.5})
	test.ExpectEquality(t, d.Col.(color.RGBA), color.RGBA{R: 255, G: 255, B: 0, A: 255})

	// 90 degrees is up the window
	trt.SetDir(90)
	test.DemandSuccess(t, trt.Walk(7.5, true))
	d = nextDraw(t, cmds)
	approxCoord(t, d.From, window.Coord{X: 0.75, Y: 0.5})
	approxCoord(t, d.To, window.Coord{X: 0.75, Y: 0.25})
	approxCoord(t, trt.Position(), window.Coord{X: 10, Y: -7.5})
}

func TestJump(t *testing.T) {
	trt, _, cmds, _ := newTurtle(t)
	test.DemandSuccess(t, trt.Walk(5, false))
	_, ok, err := cmds.TryRecv()
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, ok)
	approxCoord(t, trt.Position(), window.Coord{X: 5, Y: 0})
}

func TestOutOfRange(t *testing.T) {
	trt, _, cmds, _ := newTurtle(t)

	// the right hand edge is outside the visible area
	test.DemandSuccess(t, trt.WalkPos(20, 0, true))
	_, ok, _ := cmds.TryRecv()
	test.ExpectFailure(t, ok)

	// but the turtle has still moved
	test.ExpectEquality(t, trt.Position(), window.Coord{X: 20, Y: 0})

	// the left hand edge is inside
	test.DemandSuccess(t, trt.WalkPos(-20, 0, false))
	test.DemandSuccess(t, trt.WalkPos(-20, -15, true))
	d := nextDraw(t, cmds)
	test.ExpectEquality(t, d.To, window.Coord{X: 0, Y: 0})
}

func TestDirection(t *testing.T) {
	trt, _, _, _ := newTurtle(t)
	trt.SetDir(-90)
	test.ExpectEquality(t, trt.Direction(), 270.0)
	trt.SetDir(720)
	test.ExpectEquality(t, trt.Direction(), 0.0)
	trt.Turn(45)
	trt.Turn(-90)
	test.ExpectEquality(t, trt.Direction(), 315.0)
}

func TestMarks(t *testing.T) {
	trt, _, cmds, _ := newTurtle(t)

	err := trt.LoadMark(false)
	test.ExpectSuccess(t, curated.Is(err, turtle.NoMark))

	trt.SetDir(30)
	trt.SetMark()
	test.ExpectEquality(t, trt.Marks(), 1)

	test.DemandSuccess(t, trt.WalkPos(5, 5, false))
	trt.SetDir(180)

	test.DemandSuccess(t, trt.LoadMark(true))
	test.ExpectEquality(t, trt.Marks(), 0)
	test.ExpectEquality(t, trt.Position(), window.Coord{})
	test.ExpectEquality(t, trt.Direction(), 30.0)

	d := nextDraw(t, cmds)
	approxCoord(t, d.From, window.Coord{X: 25.0 / 40, Y: 20.0 / 30})
	approxCoord(t, d.To, window.Coord{X: 0.5, Y: 0.5})
}

func TestSetMax(t *testing.T) {
	trt, win, cmds, _ := newTurtle(t)

	test.ExpectFailure(t, trt.SetMax(0, 10))
	test.ExpectFailure(t, trt.SetMax(10, math.NaN()))
	test.ExpectEquality(t, win.MaxCoords(), window.Coord{X: 40, Y: 30})

	test.DemandSuccess(t, trt.SetMax(100, 100))
	test.ExpectEquality(t, win.MaxCoords(), window.Coord{X: 200, Y: 200})
	test.ExpectEquality(t, trt.Max(), window.Coord{X: 100, Y: 100})

	test.DemandSuccess(t, trt.WalkPos(50, 50, true))
	d := nextDraw(t, cmds)
	approxCoord(t, d.To, window.Coord{X: 0.75, Y: 0.75})
}

func TestColor(t *testing.T) {
	test.ExpectEquality(t, turtle.RGB{R: -5, G: 50, B: 150}.RGBA(), color.RGBA{R: 0, G: 128, B: 255, A: 255})

	trt, _, cmds, _ := newTurtle(t)
	trt.SetColor(0, 0, 100)
	test.DemandSuccess(t, trt.Walk(1, true))
	d := nextDraw(t, cmds)
	test.ExpectEquality(t, d.Col.(color.RGBA), color.RGBA{B: 255, A: 255})
}

func TestDistAndRand(t *testing.T) {
	trt, _, _, _ := newTurtle(t)
	test.DemandSuccess(t, trt.WalkPos(3, -4, false))
	test.ExpectEquality(t, trt.Dist(), 5.0)

	trt.Seed(1)
	for i := 0; i < 100; i++ {
		v := trt.Rand(-2, 3)
		if v < -2 || v >= 3 {
			t.Fatalf("random value out of range: %v", v)
		}
	}
}

func TestClearAndPrint(t *testing.T) {
	trt, _, cmds, _ := newTurtle(t)
	test.DemandSuccess(t, trt.Clear())
	test.DemandSuccess(t, trt.Print("hello"))

	cmd, _, _ := cmds.TryRecv()
	test.ExpectEquality(t, cmd, window.Command(window.CmdClear{}))
	cmd, _, _ = cmds.TryRecv()
	test.ExpectEquality(t, cmd, window.Command(window.CmdPrint{Text: "hello"}))
}

func TestPoll(t *testing.T) {
	trt, _, _, events := newTurtle(t)

	test.DemandSuccess(t, events.Send(window.EventMouseClicked{Pos: window.Coord{X: 0.25, Y: 0.5}, Button: window.MouseButtonLeft}))
	test.DemandSuccess(t, events.Send(window.EventKeyboard{Key: "A", Down: true}))

	var got []window.Event
	test.DemandSuccess(t, trt.Poll(func(ev window.Event) {
		got = append(got, ev)
	}))

	test.DemandEquality(t, len(got), 2)
	test.ExpectEquality(t, got[0], window.Event(window.EventMouseClicked{Pos: window.Coord{X: -10, Y: 0}, Button: window.MouseButtonLeft}))
	test.ExpectEquality(t, got[1], window.Event(window.EventKeyboard{Key: "A", Down: true}))

	// events sent before the backend went away are still delivered
	test.DemandSuccess(t, events.Send(window.EventWindowClose{}))
	events.Drop()
	got = got[:0]
	err := trt.Poll(func(ev window.Event) {
		got = append(got, ev)
	})
	test.ExpectSuccess(t, curated.Is(err, window.Disconnected))
	test.ExpectEquality(t, len(got), 1)
}

func TestDisconnectedDraw(t *testing.T) {
	trt, _, cmds, _ := newTurtle(t)
	cmds.Drop()
	err := trt.Walk(1, true)
	test.ExpectSuccess(t, curated.Is(err, window.Disconnected))
}
