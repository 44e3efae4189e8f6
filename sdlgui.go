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

package main

import (
	"io"
	"os"
	"sync"

	"github.com/turtlecomp/turtle/backend/sdlwindow"
	"github.com/turtlecomp/turtle/config"
	"github.com/turtlecomp/turtle/limiter"
	"github.com/turtlecomp/turtle/logger"
	"github.com/turtlecomp/turtle/window"
)

// sdlGui adapts sdlwindow.Window to the GuiCreator interface. The window is
// serviced no more often than the window.fps preference allows.
type sdlGui struct {
	win  *sdlwindow.Window
	lmtr *limiter.FpsLimiter

	// closed when the user closes the window or when the window fails
	quit     chan struct{}
	quitOnce sync.Once
}

func newSdlGui(title string, p *config.Preferences, cmds *window.CommandReceiver, events *window.EventSender) (*sdlGui, error) {
	lmtr, err := limiter.NewFPSLimiter(p.WindowFPS.Get().(int))
	if err != nil {
		return nil, err
	}

	win, err := sdlwindow.NewWindow(title, p.WindowWidth.Get().(int), p.WindowHeight.Get().(int),
		cmds, events, os.Stdout)
	if err != nil {
		lmtr.Stop()
		return nil, err
	}

	return &sdlGui{
		win:  win,
		lmtr: lmtr,
		quit: make(chan struct{}),
	}, nil
}

// Service implements the GuiCreator interface.
func (g *sdlGui) Service() {
	if err := g.win.Service(); err != nil {
		logger.Log(logger.Allow, "sdl", err)
		g.close()
	}
	if g.win.QuitRequested() {
		g.close()
	}
	g.lmtr.Wait()
}

// Destroy implements the GuiCreator interface.
func (g *sdlGui) Destroy(output io.Writer) {
	g.lmtr.Stop()
	g.win.Destroy(output)
	g.close()
}

func (g *sdlGui) close() {
	g.quitOnce.Do(func() {
		close(g.quit)
	})
}
