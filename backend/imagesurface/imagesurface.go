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

// Package imagesurface is a window relay backend that draws into an in-memory
// image. It needs no display and is suitable for batch rendering and for
// testing.
//
// Lines are rasterised with anti-aliasing. Printed text is drawn with a
// fixed-size bitmap font, one line below the other starting from the top-left
// corner of the image.
package imagesurface

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"
	"sync"

	"github.com/turtlecomp/turtle/backend"
	"github.com/turtlecomp/turtle/curated"
	"github.com/turtlecomp/turtle/logger"
	"github.com/turtlecomp/turtle/window"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// SaveError is returned by Save() when the image can not be written.
const SaveError = "image surface: save: %v"

// Background is the colour of a cleared surface.
var Background = color.RGBA{A: 255}

// Foreground is the colour used for lines and text drawn without a colour.
var Foreground = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// Surface implements the backend.Surface interface using an image.RGBA.
//
// The Surface can be drawn to by a backend.Pump on one goroutine while
// Image() or Save() is called from another.
type Surface struct {
	crit sync.Mutex
	img  *image.RGBA
	ras  *vector.Rasterizer
	face font.Face

	// number of lines of text printed since the last clear
	textLines int
}

// NewSurface creates a Surface of the given size. The surface is cleared to
// the Background colour.
func NewSurface(width, height int) *Surface {
	srf := &Surface{
		img:  image.NewRGBA(image.Rect(0, 0, width, height)),
		ras:  vector.NewRasterizer(width, height),
		face: basicfont.Face7x13,
	}
	srf.Clear()
	return srf
}

// DrawLine implements the backend.Surface interface.
func (srf *Surface) DrawLine(from, to window.Coord, col window.Color) error {
	srf.crit.Lock()
	defer srf.crit.Unlock()

	b := srf.img.Bounds()
	w := float64(b.Dx())
	h := float64(b.Dy())

	x1, y1 := from.X*w, from.Y*h
	x2, y2 := to.X*w, to.Y*h

	for _, v := range []float64{x1, y1, x2, y2} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			logger.Logf(logger.Allow, "image surface", "line %v to %v can not be drawn", from, to)
			return nil
		}
	}

	// the line is drawn as a quad one pixel wide. px and py is the offset
	// perpendicular to the line
	var px, py float64
	dx := x2 - x1
	dy := y2 - y1
	l := math.Hypot(dx, dy)
	if l == 0 {
		// a line with no length is drawn as a single pixel sized square
		px, py = 0, 0.5
		x1 -= 0.5
		x2 += 0.5
	} else {
		px = -dy / l * 0.5
		py = dx / l * 0.5
	}

	srf.ras.Reset(b.Dx(), b.Dy())
	srf.ras.MoveTo(float32(x1+px), float32(y1+py))
	srf.ras.LineTo(float32(x2+px), float32(y2+py))
	srf.ras.LineTo(float32(x2-px), float32(y2-py))
	srf.ras.LineTo(float32(x1-px), float32(y1-py))
	srf.ras.ClosePath()

	src := image.NewUniform(backend.ColorOf(col, Foreground))
	srf.ras.Draw(srf.img, b, src, image.Point{})

	return nil
}

// Clear implements the backend.Surface interface.
func (srf *Surface) Clear() error {
	srf.crit.Lock()
	defer srf.crit.Unlock()

	draw.Draw(srf.img, srf.img.Bounds(), image.NewUniform(Background), image.Point{}, draw.Src)
	srf.textLines = 0
	return nil
}

// Print implements the backend.Surface interface.
func (srf *Surface) Print(text string) error {
	srf.crit.Lock()
	defer srf.crit.Unlock()

	srf.textLines++
	height := srf.face.Metrics().Height

	d := font.Drawer{
		Dst:  srf.img,
		Src:  image.NewUniform(Foreground),
		Face: srf.face,
		Dot:  fixed.Point26_6{X: fixed.I(2), Y: height * fixed.Int26_6(srf.textLines)},
	}
	d.DrawString(text)

	return nil
}

// Image returns a copy of the surface's current state.
func (srf *Surface) Image() *image.RGBA {
	srf.crit.Lock()
	defer srf.crit.Unlock()

	img := image.NewRGBA(srf.img.Bounds())
	copy(img.Pix, srf.img.Pix)
	return img
}

// Save the surface to a PNG file.
func (srf *Surface) Save(path string) (rerr error) {
	img := srf.Image()

	f, err := os.Create(path)
	if err != nil {
		return curated.Errorf(SaveError, err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf(SaveError, err)
		}
	}()

	err = png.Encode(f, img)
	if err != nil {
		return curated.Errorf(SaveError, err)
	}

	logger.Logf(logger.Allow, "image surface", "saved to %s", path)

	return nil
}
