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
	"context"

	"github.com/turtlecomp/turtle/curated"
)

// CommandReceiver is the backend's end of the command channel.
type CommandReceiver struct {
	link *link[Command]
}

// Recv waits for the next command. It returns a Disconnected error once the
// ChannelWindow has been closed and every command sent before the close has
// been received. Cancelling the context returns the context's error.
func (rx *CommandReceiver) Recv(ctx context.Context) (Command, error) {
	if rx.link.isDropped() {
		return nil, curated.Errorf(Disconnected, reasonReceiverDropped)
	}

	cmd, open, err := rx.link.recv(ctx)
	if err != nil {
		return nil, err
	}
	if !open {
		return nil, curated.Errorf(Disconnected, reasonRelayClosed)
	}
	return cmd, nil
}

// TryRecv returns the next command if there is one waiting. It never blocks.
func (rx *CommandReceiver) TryRecv() (Command, bool, error) {
	if rx.link.isDropped() {
		return nil, false, curated.Errorf(Disconnected, reasonReceiverDropped)
	}

	cmd, ok, open := rx.link.tryRecv()
	if !open {
		return nil, false, curated.Errorf(Disconnected, reasonRelayClosed)
	}
	return cmd, ok, nil
}

// Drop tells the ChannelWindow that no more commands will be received.
// Subsequent Draw(), Clear() and Print() calls will fail. It is safe to call
// Drop() more than once.
func (rx *CommandReceiver) Drop() {
	rx.link.drop()
}

// EventSender is the backend's end of the event channel. Send() and Drop()
// must be called from the same goroutine.
type EventSender struct {
	link *link[Event]
}

// Send an event to the ChannelWindow. Events with a coordinate must be
// normalised.
func (tx *EventSender) Send(ev Event) error {
	if tx.link.closed.Load() {
		return curated.Errorf(Disconnected, reasonSenderDropped)
	}
	if !tx.link.send(ev) {
		return curated.Errorf(Disconnected, reasonRelayClosed)
	}
	return nil
}

// Drop tells the ChannelWindow that no more events will be sent. Events
// already sent can still be collected with Events(). It is safe to call Drop()
// more than once.
func (tx *EventSender) Drop() {
	tx.link.close()
}
