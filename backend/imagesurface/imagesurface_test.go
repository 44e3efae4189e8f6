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

package imagesurface_test

import (
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/turtlecomp/turtle/backend"
	"github.com/turtlecomp/turtle/backend/imagesurface"
	"github.com/turtlecomp/turtle/test"
	"github.com/turtlecomp/turtle/window"
)

func TestClear(t *testing.T) {
	srf := imagesurface.NewSurface(20, 10)
	img := srf.Image()
	test.ExpectEquality(t, img.Bounds().Dx(), 20)
	test.ExpectEquality(t, img.Bounds().Dy(), 10)
	test.ExpectEquality(t, img.RGBAAt(5, 5), imagesurface.Background)
}

func TestDrawLine(t *testing.T) {
	srf := imagesurface.NewSurface(100, 100)
	red := color.RGBA{R: 255, A: 255}

	// horizontal line across the middle of the surface
	err := srf.DrawLine(window.Coord{X: 0.1, Y: 0.505}, window.Coord{X: 0.9, Y: 0.505}, red)
	test.ExpectSuccess(t, err)

	img := srf.Image()
	test.ExpectEquality(t, img.RGBAAt(50, 50), red)
	test.ExpectEquality(t, img.RGBAAt(50, 20), imagesurface.Background)
	test.ExpectEquality(t, img.RGBAAt(5, 50), imagesurface.Background)

	// clearing removes the line
	test.ExpectSuccess(t, srf.Clear())
	img = srf.Image()
	test.ExpectEquality(t, img.RGBAAt(50, 50), imagesurface.Background)
}

func TestDrawDefaultColour(t *testing.T) {
	srf := imagesurface.NewSurface(100, 100)
	err := srf.DrawLine(window.Coord{X: 0.505, Y: 0.1}, window.Coord{X: 0.505, Y: 0.9}, nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, srf.Image().RGBAAt(50, 50), imagesurface.Foreground)
}

func TestDrawUndrawable(t *testing.T) {
	srf := imagesurface.NewSurface(10, 10)

	// coordinates normalised with a zero maximum are not drawn but nor are
	// they an error
	err := srf.DrawLine(window.Coord{X: math.Inf(1), Y: 0}, window.Coord{X: 0.5, Y: 0.5}, nil)
	test.ExpectSuccess(t, err)

	img := srf.Image()
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if img.RGBAAt(x, y) != imagesurface.Background {
				t.Fatalf("unexpected pixel at %d, %d", x, y)
			}
		}
	}
}

func TestPrint(t *testing.T) {
	srf := imagesurface.NewSurface(100, 40)
	test.ExpectSuccess(t, srf.Print("HELLO"))

	// some pixels of the first text line should now be the foreground colour
	img := srf.Image()
	var found bool
	for y := 0; y < 13 && !found; y++ {
		for x := 0; x < 40 && !found; x++ {
			found = img.RGBAAt(x, y) == imagesurface.Foreground
		}
	}
	test.ExpectSuccess(t, found)
}

func TestPumpAndSave(t *testing.T) {
	win, cmds, _ := window.Construct()
	win.SetMaxX(10)
	win.SetMaxY(10)

	srf := imagesurface.NewSurface(50, 50)
	pump := backend.Pump{Commands: cmds, Surface: srf}

	green := color.RGBA{G: 255, A: 255}
	test.DemandSuccess(t, win.Draw(window.Coord{X: 0, Y: 5.1}, window.Coord{X: 10, Y: 5.1}, green))
	n, err := pump.Service()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, n, 1)

	pth := filepath.Join(t.TempDir(), "out.png")
	test.DemandSuccess(t, srf.Save(pth))

	f, err := os.Open(pth)
	test.DemandSuccess(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, color.RGBAModel.Convert(img.At(25, 25)).(color.RGBA), green)
}

func TestSaveFailure(t *testing.T) {
	srf := imagesurface.NewSurface(5, 5)
	err := srf.Save(filepath.Join(t.TempDir(), "missing", "out.png"))
	test.ExpectFailure(t, err)
}
