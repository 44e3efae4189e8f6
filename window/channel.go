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

package window

import (
	"github.com/turtlecomp/turtle/curated"
	"github.com/turtlecomp/turtle/logger"
)

// DefaultCapacity is the number of commands (and events) that can be buffered
// before a send blocks.
const DefaultCapacity = 4096

// ChannelWindow implements the Window interface by sending commands to, and
// receiving events from, a backend running on another goroutine.
//
// The viewport maximum and the deferred initialiser belong to the
// ChannelWindow alone. A ChannelWindow must only be used from one goroutine.
type ChannelWindow struct {
	max  Coord
	init func()

	commands *link[Command]
	events   *link[Event]
}

// NewPair creates a ChannelWindow and the two halves that the backend uses to
// communicate with it. This is the only supported way of creating a
// ChannelWindow.
//
// The init function is run by the first call to ChannelWindow.Init(). It can
// be nil. A capacity of zero or less selects DefaultCapacity.
func NewPair(capacity int, init func()) (*ChannelWindow, *CommandReceiver, *EventSender) {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if init == nil {
		init = func() {}
	}

	win := &ChannelWindow{
		init:     init,
		commands: newLink[Command](capacity),
		events:   newLink[Event](capacity),
	}

	return win, &CommandReceiver{link: win.commands}, &EventSender{link: win.events}
}

// Construct is a convenience function that calls NewPair() with the default
// capacity and no deferred initialisation.
func Construct() (*ChannelWindow, *CommandReceiver, *EventSender) {
	return NewPair(DefaultCapacity, nil)
}

// Init implements the Window interface.
func (win *ChannelWindow) Init() {
	// the initialiser is replaced before it is called so that it can never be
	// re-entered or run a second time
	f := win.init
	win.init = func() {}
	f()
}

// MaxCoords implements the Window interface.
func (win *ChannelWindow) MaxCoords() Coord {
	return win.max
}

// SetMaxX implements the Window interface.
func (win *ChannelWindow) SetMaxX(x float64) {
	win.max.X = x
}

// SetMaxY implements the Window interface.
func (win *ChannelWindow) SetMaxY(y float64) {
	win.max.Y = y
}

func (win *ChannelWindow) send(cmd Command) error {
	if win.commands.closed.Load() {
		return curated.Errorf(Disconnected, reasonRelayClosed)
	}
	if !win.commands.send(cmd) {
		logger.Logf(logger.Allow, "relay", "%v not sent: %s", cmd, reasonReceiverDropped)
		return curated.Errorf(Disconnected, reasonReceiverDropped)
	}
	return nil
}

// Draw implements the Window interface.
func (win *ChannelWindow) Draw(from, to Coord, col Color) error {
	return win.send(CmdDraw{
		From: Normalise(from, win.max),
		To:   Normalise(to, win.max),
		Col:  col,
	})
}

// Clear implements the Window interface.
func (win *ChannelWindow) Clear() error {
	return win.send(CmdClear{})
}

// Print implements the Window interface.
func (win *ChannelWindow) Print(text string) error {
	return win.send(CmdPrint{Text: text})
}

// Events implements the Window interface.
//
// If the backend has dropped its EventSender then the events that were
// buffered before the drop are returned along with the disconnection error.
func (win *ChannelWindow) Events() ([]Event, error) {
	if win.events.isDropped() {
		return nil, curated.Errorf(Disconnected, reasonRelayClosed)
	}

	var evs []Event
	for {
		ev, ok, open := win.events.tryRecv()
		if !open {
			return evs, curated.Errorf(Disconnected, reasonSenderDropped)
		}
		if !ok {
			return evs, nil
		}

		if p, ok := ev.(Positional); ok {
			ev = p.WithPosition(Denormalise(p.Position(), win.max))
		}
		evs = append(evs, ev)
	}
}

// Close drops the ChannelWindow's halves of both channels. Commands already
// sent can still be received by the backend.
func (win *ChannelWindow) Close() {
	win.commands.close()
	win.events.drop()
}
