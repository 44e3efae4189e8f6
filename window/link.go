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
	"sync"
	"sync/atomic"
)

// link is a one-directional channel with a way for the receiving side to
// signal that it has gone. Go channels can only be closed by the sender so
// the receiver closes the dropped channel instead.
type link[T any] struct {
	ch chan T

	// closed by the receiving side
	dropped  chan struct{}
	dropOnce sync.Once

	// set and acted on by the sending side
	closed    atomic.Bool
	closeOnce sync.Once
}

func newLink[T any](capacity int) *link[T] {
	return &link[T]{
		ch:      make(chan T, capacity),
		dropped: make(chan struct{}),
	}
}

// send places v in the channel buffer. It blocks only if the buffer is full
// and fails if the receiver drops while waiting. Returns false if the
// receiver has gone.
func (l *link[T]) send(v T) bool {
	select {
	case <-l.dropped:
		return false
	default:
	}

	select {
	case l.ch <- v:
		return true
	case <-l.dropped:
		return false
	}
}

// close is called by the sending side.
func (l *link[T]) close() {
	l.closeOnce.Do(func() {
		l.closed.Store(true)
		close(l.ch)
	})
}

// drop is called by the receiving side.
func (l *link[T]) drop() {
	l.dropOnce.Do(func() {
		close(l.dropped)
	})
}

func (l *link[T]) isDropped() bool {
	select {
	case <-l.dropped:
		return true
	default:
		return false
	}
}

// tryRecv never blocks. The second return value is false if there is nothing
// waiting and the third is false if the sender has closed the channel and
// the buffer is empty.
func (l *link[T]) tryRecv() (T, bool, bool) {
	select {
	case v, ok := <-l.ch:
		if !ok {
			var z T
			return z, false, false
		}
		return v, true, true
	default:
		var z T
		return z, false, true
	}
}

// recv blocks until there is a value, the sender closes the channel or the
// context is done.
func (l *link[T]) recv(ctx context.Context) (T, bool, error) {
	select {
	case v, ok := <-l.ch:
		return v, ok, nil
	case <-ctx.Done():
		var z T
		return z, true, ctx.Err()
	}
}
