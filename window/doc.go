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

// Package window relays drawing commands from a producer to a rendering
// backend and input events from the backend back to the producer.
//
// The producer sees the Window interface. ChannelWindow implements it by
// turning every call into a message on an outbound channel and by draining an
// inbound channel for events. The backend only sees the CommandReceiver and
// EventSender halves and the message vocabulary: CmdDraw, CmdClear, CmdPrint
// in one direction and EventMouseClicked, EventKeyboard, EventWindowClose (or
// any other value) in the other.
//
// Coordinates on the channels are normalised. Each axis is in the range 0 to
// 1 and is interpreted by the backend as a fraction of its drawable area. The
// producer works in logical coordinates bounded by the viewport maximum
// (SetMaxX() and SetMaxY()). ChannelWindow is the only place where the two
// spaces meet: Draw() divides by the maximum and Events() multiplies by it.
// The maximum used is always the one current at the time of the call.
//
// A correctly wired relay is created with Construct() or NewPair():
//
//	win, cmds, evts := window.Construct()
//
//	go backend(cmds, evts)
//
//	win.Init()
//	win.SetMaxX(200)
//	win.SetMaxY(100)
//	err := win.Draw(window.Coord{}, window.Coord{X: 200, Y: 100}, color.White)
//
// Dropping either half of a channel is the only way to tear the relay down.
// Operations on the surviving side then fail with an error matching the
// Disconnected pattern.
package window
