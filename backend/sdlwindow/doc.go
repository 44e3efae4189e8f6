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

// Package sdlwindow is a window relay backend that draws into an SDL window.
//
// SDL must only be used from the main thread. The Window type therefore does
// not start any goroutines of its own. Instead, Service() must be called
// regularly from the main thread. It polls the SDL event queue, applies any
// commands waiting in the relay and presents the result.
//
// Lines are drawn to a target texture so that they accumulate from frame to
// frame. The texture is stretched to fill the window and so mouse clicks are
// normalised by the current window size, not by the texture size.
//
// Text sent by Print() is written to an io.Writer and also shown in the
// window's title bar.
package sdlwindow
