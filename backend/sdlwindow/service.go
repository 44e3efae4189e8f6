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
	"github.com/turtlecomp/turtle/assert"
	"github.com/turtlecomp/turtle/backend"
	"github.com/turtlecomp/turtle/curated"
	"github.com/turtlecomp/turtle/logger"
	"github.com/turtlecomp/turtle/window"
	"github.com/veandco/go-sdl2/sdl"
)

// Service should be called regularly from the main thread. It handles any
// pending SDL events, applies commands waiting in the relay and presents the
// window.
//
// The producer closing the relay is not an error. The window continues to be
// presented until the user closes it.
func (win *Window) Service() error {
	assert.MainThread()

	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		win.serviceEvent(ev)
	}

	if !win.disconnected {
		_, err := win.pump.Service()
		if err != nil {
			if !curated.Is(err, window.Disconnected) {
				return err
			}
			logger.Log(logger.Allow, "sdl", err)
			win.disconnected = true
		}
	}

	if err := win.renderer.Copy(win.texture, nil, nil); err != nil {
		return curated.Errorf(SDLError, err)
	}
	win.renderer.Present()

	return nil
}

func (win *Window) serviceEvent(ev sdl.Event) {
	switch ev := ev.(type) {
	case *sdl.QuitEvent:
		win.quit = true
		win.send(window.EventWindowClose{})

	case *sdl.WindowEvent:
		if ev.Event == sdl.WINDOWEVENT_CLOSE {
			win.quit = true
			win.send(window.EventWindowClose{})
		}

	case *sdl.KeyboardEvent:
		if ev.Repeat != 0 {
			return
		}
		switch ev.Type {
		case sdl.KEYDOWN:
			win.send(window.EventKeyboard{Key: sdl.GetKeyName(ev.Keysym.Sym), Down: true})
		case sdl.KEYUP:
			win.send(window.EventKeyboard{Key: sdl.GetKeyName(ev.Keysym.Sym), Down: false})
		}

	case *sdl.MouseButtonEvent:
		if ev.Type != sdl.MOUSEBUTTONDOWN {
			return
		}

		var button window.MouseButton
		switch ev.Button {
		case sdl.BUTTON_LEFT:
			button = window.MouseButtonLeft
		case sdl.BUTTON_MIDDLE:
			button = window.MouseButtonMiddle
		case sdl.BUTTON_RIGHT:
			button = window.MouseButtonRight
		default:
			return
		}

		// the texture is stretched to fill the window so normalise using
		// the size of the window
		w, h := win.window.GetSize()
		win.send(window.EventMouseClicked{
			Pos:    backend.FromPixels(int(ev.X), int(ev.Y), int(w), int(h)),
			Button: button,
		})
	}
}

// the producer may have gone. events that can not be delivered are logged
// and forgotten
func (win *Window) send(ev window.Event) {
	if win.disconnected {
		return
	}
	if err := win.events.Send(ev); err != nil {
		logger.Log(logger.Allow, "sdl", err)
	}
}
