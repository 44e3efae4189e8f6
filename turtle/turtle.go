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

package turtle

import (
	"image/color"
	"math"
	"math/rand/v2"
	"time"

	"github.com/turtlecomp/turtle/curated"
	"github.com/turtlecomp/turtle/window"
)

// Default values for a new Turtle.
const (
	DefaultMaxX  = 20.0
	DefaultMaxY  = 15.0
	DefaultDelay = time.Millisecond
)

// Error patterns returned by the Turtle.
const (
	NoMark     = "turtle: no mark"
	InvalidMax = "turtle: invalid maximum (%v, %v)"
)

// RGB is a colour with each component specified as a percentage.
type RGB struct {
	R, G, B float64
}

// DefaultColor is the colour of a new Turtle.
var DefaultColor = RGB{R: 100, G: 100, B: 0}

// RGBA converts the percentages to an opaque color.RGBA. Components are
// clamped to the range 0 to 100.
func (c RGB) RGBA() color.RGBA {
	return color.RGBA{R: toComponent(c.R), G: toComponent(c.G), B: toComponent(c.B), A: 255}
}

func toComponent(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 100 {
		return 255
	}
	return uint8(math.Round(v / 100 * 255))
}

type mark struct {
	x, y float64
	dir  float64
}

// Turtle draws lines to a window.Window.
type Turtle struct {
	win window.Window

	x, y float64

	// direction in degrees. zero is to the right, 90 is up
	dir float64

	max   window.Coord
	col   RGB
	delay time.Duration

	marks []mark
	rnd   *rand.Rand
}

// NewTurtle is the preferred method of initialisation for the Turtle type.
func NewTurtle(win window.Window) *Turtle {
	return &Turtle{
		win:   win,
		max:   window.Coord{X: DefaultMaxX, Y: DefaultMaxY},
		col:   DefaultColor,
		delay: DefaultDelay,
		rnd:   rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)),
	}
}

// Init initialises the window and sets its maximum coordinates. It should be
// called before any drawing.
func (t *Turtle) Init() {
	t.win.Init()
	t.win.SetMaxX(2 * t.max.X)
	t.win.SetMaxY(2 * t.max.Y)
}

// SetMax changes the extent of the visible area. Both values must be
// positive.
func (t *Turtle) SetMax(x, y float64) error {
	if !(x > 0) || !(y > 0) || math.IsInf(x, 0) || math.IsInf(y, 0) {
		return curated.Errorf(InvalidMax, x, y)
	}
	t.max = window.Coord{X: x, Y: y}
	t.win.SetMaxX(2 * x)
	t.win.SetMaxY(2 * y)
	return nil
}

// Max returns the extent of the visible area.
func (t *Turtle) Max() window.Coord {
	return t.max
}

// Position returns the current position of the turtle.
func (t *Turtle) Position() window.Coord {
	return window.Coord{X: t.x, Y: t.y}
}

// Direction returns the current direction of the turtle in degrees.
func (t *Turtle) Direction() float64 {
	return t.dir
}

// Color returns the current drawing colour.
func (t *Turtle) Color() RGB {
	return t.col
}

// SetColor changes the drawing colour. Each component is a percentage.
func (t *Turtle) SetColor(r, g, b float64) {
	t.col = RGB{R: r, G: g, B: b}
}

// SetDelay changes the pause after every line that is drawn.
func (t *Turtle) SetDelay(d time.Duration) {
	if d < 0 {
		d = 0
	}
	t.delay = d
}

// Seed the random number generator used by Rand().
func (t *Turtle) Seed(seed uint64) {
	t.rnd = rand.New(rand.NewPCG(seed, 0))
}

// toWindow converts a turtle coordinate to a window coordinate
func (t *Turtle) toWindow(x, y float64) window.Coord {
	return window.Coord{X: x + t.max.X, Y: y + t.max.Y}
}

// fromWindow converts a window coordinate to a turtle coordinate
func (t *Turtle) fromWindow(c window.Coord) window.Coord {
	return window.Coord{X: c.X - t.max.X, Y: c.Y - t.max.Y}
}

// visible returns true if the window coordinate is inside the visible area
func (t *Turtle) visible(c window.Coord) bool {
	return c.X >= 0 && c.X < 2*t.max.X && c.Y >= 0 && c.Y < 2*t.max.Y
}

// WalkPos moves the turtle to the position, drawing a line from the current
// position if draw is true.
func (t *Turtle) WalkPos(x, y float64, draw bool) error {
	if draw {
		from := t.toWindow(t.x, t.y)
		to := t.toWindow(x, y)
		if t.visible(from) && t.visible(to) {
			if err := t.win.Draw(from, to, t.col.RGBA()); err != nil {
				return err
			}
			if t.delay > 0 {
				time.Sleep(t.delay)
			}
		}
	}
	t.x = x
	t.y = y
	return nil
}

// Walk moves the turtle the given distance in the current direction.
func (t *Turtle) Walk(dist float64, draw bool) error {
	rad := t.dir * math.Pi / 180.0
	return t.WalkPos(t.x+dist*math.Cos(rad), t.y-dist*math.Sin(rad), draw)
}

// SetDir changes the direction of the turtle. The direction is normalised to
// the range 0 to 360.
func (t *Turtle) SetDir(dir float64) {
	t.dir = math.Mod(math.Mod(dir, 360.0)+360.0, 360.0)
}

// Turn the turtle anticlockwise by the number of degrees.
func (t *Turtle) Turn(degrees float64) {
	t.SetDir(t.dir + degrees)
}

// SetMark pushes the current position and direction onto the mark stack.
func (t *Turtle) SetMark() {
	t.marks = append(t.marks, mark{x: t.x, y: t.y, dir: t.dir})
}

// LoadMark pops the most recent mark and moves the turtle back to it, drawing
// a line if draw is true. The direction at the time of the mark is restored.
func (t *Turtle) LoadMark(draw bool) error {
	if len(t.marks) == 0 {
		return curated.Errorf(NoMark)
	}
	m := t.marks[len(t.marks)-1]
	t.marks = t.marks[:len(t.marks)-1]
	t.dir = m.dir
	return t.WalkPos(m.x, m.y, draw)
}

// Marks returns the number of marks on the stack.
func (t *Turtle) Marks() int {
	return len(t.marks)
}

// Dist returns the distance of the turtle from the origin.
func (t *Turtle) Dist() float64 {
	return math.Hypot(t.x, t.y)
}

// Rand returns a random number in the half-open range lo to hi.
func (t *Turtle) Rand(lo, hi float64) float64 {
	return lo + t.rnd.Float64()*(hi-lo)
}

// Clear the window.
func (t *Turtle) Clear() error {
	return t.win.Clear()
}

// Print text to the window.
func (t *Turtle) Print(text string) error {
	return t.win.Print(text)
}

// Poll collects the events waiting in the window and passes each to the
// handler. The coordinate of a positional event is converted to the turtle's
// coordinate system.
//
// Any events received before a disconnection are passed to the handler
// before the error is returned.
func (t *Turtle) Poll(handler func(window.Event)) error {
	evs, err := t.win.Events()
	for _, ev := range evs {
		if p, ok := ev.(window.Positional); ok {
			ev = p.WithPosition(t.fromWindow(p.Position()))
		}
		if handler != nil {
			handler(ev)
		}
	}
	return err
}
