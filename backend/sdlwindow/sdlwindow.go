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

package sdlwindow

import (
	"fmt"
	"image/color"
	"io"

	"github.com/turtlecomp/turtle/assert"
	"github.com/turtlecomp/turtle/backend"
	"github.com/turtlecomp/turtle/curated"
	"github.com/turtlecomp/turtle/logger"
	"github.com/turtlecomp/turtle/window"
	"github.com/veandco/go-sdl2/sdl"
)

// SDLError is the pattern used for all errors originating in the SDL library.
const SDLError = "sdl: %v"

// Background is the colour of a cleared window.
var Background = color.RGBA{A: 255}

// Foreground is the colour used for lines drawn without a colour.
var Foreground = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// Window is an SDL implementation of the backend.Surface interface.
type Window struct {
	title  string
	output io.Writer

	pump   backend.Pump
	events *window.EventSender

	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// size of texture. the window may be resized but the texture stays the
	// same size
	width  int32
	height int32

	// the producer has closed the relay. the window remains open until the
	// user closes it
	disconnected bool

	// the user has asked for the window to close
	quit bool
}

// NewWindow creates an SDL window of the given size. It must be called from
// the main thread.
//
// Text printed through the relay is written to output, which can be nil.
func NewWindow(title string, width, height int, cmds *window.CommandReceiver, events *window.EventSender, output io.Writer) (*Window, error) {
	assert.MainThread()

	if output == nil {
		output = io.Discard
	}

	win := &Window{
		title:  title,
		output: output,
		events: events,
		width:  int32(width),
		height: int32(height),
	}
	win.pump = backend.Pump{Commands: cmds, Surface: win}

	var err error

	err = sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, curated.Errorf(SDLError, err)
	}

	win.window, err = sdl.CreateWindow(title,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		win.width, win.height,
		uint32(sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE))
	if err != nil {
		return nil, curated.Errorf(SDLError, err)
	}

	win.renderer, err = sdl.CreateRenderer(win.window, -1,
		uint32(sdl.RENDERER_ACCELERATED|sdl.RENDERER_TARGETTEXTURE))
	if err != nil {
		return nil, curated.Errorf(SDLError, err)
	}

	// lines are drawn to the texture and not directly to the renderer. the
	// texture is copied to the renderer every frame
	win.texture, err = win.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_TARGET),
		win.width, win.height)
	if err != nil {
		return nil, curated.Errorf(SDLError, err)
	}

	err = win.Clear()
	if err != nil {
		return nil, err
	}

	logger.Logf(logger.Allow, "sdl", "window created (%dx%d)", width, height)

	return win, nil
}

// Destroy the SDL window. Any errors are written to output, which can be nil.
func (win *Window) Destroy(output io.Writer) {
	assert.MainThread()

	if output == nil {
		output = io.Discard
	}

	win.events.Drop()
	win.pump.Commands.Drop()

	if err := win.texture.Destroy(); err != nil {
		fmt.Fprintln(output, curated.Errorf(SDLError, err))
	}
	if err := win.renderer.Destroy(); err != nil {
		fmt.Fprintln(output, curated.Errorf(SDLError, err))
	}
	if err := win.window.Destroy(); err != nil {
		fmt.Fprintln(output, curated.Errorf(SDLError, err))
	}
	sdl.Quit()
}

// Disconnected returns true once the producer has closed the relay.
func (win *Window) Disconnected() bool {
	return win.disconnected
}

// QuitRequested returns true once the user has asked for the window to be
// closed.
func (win *Window) QuitRequested() bool {
	return win.quit
}

// DrawLine implements the backend.Surface interface.
func (win *Window) DrawLine(from, to window.Coord, col window.Color) error {
	if !backend.Finite(from, to) {
		logger.Logf(logger.Allow, "sdl", "line %v to %v can not be drawn", from, to)
		return nil
	}

	c := backend.ColorOf(col, Foreground)

	x1, y1 := backend.ToPixels(from, int(win.width), int(win.height))
	x2, y2 := backend.ToPixels(to, int(win.width), int(win.height))

	if err := win.renderer.SetRenderTarget(win.texture); err != nil {
		return curated.Errorf(SDLError, err)
	}
	defer win.renderer.SetRenderTarget(nil)

	if err := win.renderer.SetDrawColor(c.R, c.G, c.B, c.A); err != nil {
		return curated.Errorf(SDLError, err)
	}
	if err := win.renderer.DrawLine(int32(x1), int32(y1), int32(x2), int32(y2)); err != nil {
		return curated.Errorf(SDLError, err)
	}

	return nil
}

// Clear implements the backend.Surface interface.
func (win *Window) Clear() error {
	if err := win.renderer.SetRenderTarget(win.texture); err != nil {
		return curated.Errorf(SDLError, err)
	}
	defer win.renderer.SetRenderTarget(nil)

	c := Background
	if err := win.renderer.SetDrawColor(c.R, c.G, c.B, c.A); err != nil {
		return curated.Errorf(SDLError, err)
	}
	if err := win.renderer.Clear(); err != nil {
		return curated.Errorf(SDLError, err)
	}

	return nil
}

// Print implements the backend.Surface interface.
func (win *Window) Print(text string) error {
	fmt.Fprintln(win.output, text)
	win.window.SetTitle(fmt.Sprintf("%s - %s", win.title, text))
	return nil
}
