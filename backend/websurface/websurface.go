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

// Package websurface is a window relay backend that draws into any number of
// web browsers.
//
// The Server serves a single page containing a canvas. The page opens a
// websocket back to the Server over which it receives the drawing commands as
// JSON messages. Mouse clicks on the canvas are sent back over the same
// websocket and forwarded to the relay.
//
// Every command since the last clear is remembered so that browsers that
// connect late see the complete picture.
package websurface

import (
	"context"
	_ "embed"
	"errors"
	"image/color"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/turtlecomp/turtle/backend"
	"github.com/turtlecomp/turtle/curated"
	"github.com/turtlecomp/turtle/logger"
	"github.com/turtlecomp/turtle/window"
)

//go:embed page.html
var page []byte

// ServerError is the pattern for errors returned by the web server.
const ServerError = "web surface: %v"

// Foreground is the colour used for lines drawn without a colour.
var Foreground = color.RGBA{R: 255, G: 255, B: 255, A: 255}

const (
	// time allowed to write a message to a browser
	writeWait = 10 * time.Second

	// number of messages that can be queued for a browser before it is
	// considered too slow and disconnected
	clientQueue = 256

	// maximum size of a message from a browser
	maxMessageSize = 512
)

type client struct {
	conn *websocket.Conn
	send chan message
}

// Server implements the backend.Surface interface and http.Handler.
type Server struct {
	mux *http.ServeMux

	pump   backend.Pump
	events *window.EventSender

	// clicks from every browser are funnelled through this channel so that
	// the EventSender is only used by the Run() goroutine
	clicks chan window.Event

	crit    sync.Mutex
	clients map[*client]bool
	history []message
}

// NewServer creates a new Server for the relay. The Server does nothing until
// Run() is called.
func NewServer(cmds *window.CommandReceiver, events *window.EventSender) *Server {
	srv := &Server{
		mux:     http.NewServeMux(),
		events:  events,
		clicks:  make(chan window.Event, clientQueue),
		clients: make(map[*client]bool),
	}
	srv.pump = backend.Pump{Commands: cmds, Surface: srv}

	srv.mux.HandleFunc("/", srv.handlePage)
	srv.mux.HandleFunc("/ws", srv.handleWebSocket)

	return srv
}

// ServeHTTP implements the http.Handler interface.
func (srv *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	srv.mux.ServeHTTP(w, r)
}

// Run applies commands from the relay and forwards clicks from browsers to
// the relay. It returns when the context is done. The producer closing the
// relay is not an error, the Server continues to serve the final picture.
//
// Run does not start an HTTP server. See ListenAndServe().
func (srv *Server) Run(ctx context.Context) error {
	pumpErr := make(chan error, 1)
	go func() {
		pumpErr <- srv.pump.Run(ctx)
	}()

	defer srv.events.Drop()

	disconnected := false

	for {
		select {
		case <-ctx.Done():
			srv.closeClients()
			return nil

		case err := <-pumpErr:
			if err != nil && !errors.Is(err, ctx.Err()) {
				srv.closeClients()
				return curated.Errorf(ServerError, err)
			}
			disconnected = true

		case ev := <-srv.clicks:
			if disconnected {
				continue
			}
			if err := srv.events.Send(ev); err != nil {
				logger.Log(logger.Allow, "web surface", err)
			}
		}
	}
}

// ListenAndServe starts an HTTP server on the address and calls Run(). The
// HTTP server is shut down when the context is done.
func (srv *Server) ListenAndServe(ctx context.Context, address string) error {
	l, err := net.Listen("tcp", address)
	if err != nil {
		return curated.Errorf(ServerError, err)
	}

	hs := &http.Server{
		Handler:           srv,
		ReadHeaderTimeout: writeWait,
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- hs.Serve(l)
	}()

	logger.Logf(logger.Allow, "web surface", "serving on http://%s", l.Addr())

	runErr := srv.Run(ctx)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), writeWait)
	defer cancel()
	_ = hs.Shutdown(shutdownCtx)

	if err := <-serveErr; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return curated.Errorf(ServerError, err)
	}

	return runErr
}

func (srv *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(page)
}

func (srv *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns:  []string{"localhost:*", "127.0.0.1:*"},
		CompressionMode: websocket.CompressionDisabled,
	})
	if err != nil {
		logger.Log(logger.Allow, "web surface", err)
		return
	}
	conn.SetReadLimit(maxMessageSize)

	cl := &client{
		conn: conn,
		send: make(chan message, clientQueue),
	}

	// the history is taken and the client registered while the lock is held
	// so that no command is missed or seen twice
	srv.crit.Lock()
	history := make([]message, len(srv.history))
	copy(history, srv.history)
	srv.clients[cl] = true
	n := len(srv.clients)
	srv.crit.Unlock()

	logger.Logf(logger.Allow, "web surface", "client connected (%d total)", n)

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	go srv.writePump(ctx, cl, history)
	srv.readPump(ctx, cl)

	srv.unregister(cl)
}

func (srv *Server) unregister(cl *client) {
	srv.crit.Lock()
	defer srv.crit.Unlock()
	if srv.clients[cl] {
		delete(srv.clients, cl)
		close(cl.send)
		logger.Logf(logger.Allow, "web surface", "client disconnected (%d total)", len(srv.clients))
	}
}

func (srv *Server) closeClients() {
	srv.crit.Lock()
	defer srv.crit.Unlock()
	for cl := range srv.clients {
		delete(srv.clients, cl)
		close(cl.send)
	}
}

// readPump receives clicks from the browser
func (srv *Server) readPump(ctx context.Context, cl *client) {
	for {
		var msg message
		err := wsjson.Read(ctx, cl.conn, &msg)
		if err != nil {
			if websocket.CloseStatus(err) != websocket.StatusNormalClosure &&
				websocket.CloseStatus(err) != websocket.StatusGoingAway &&
				ctx.Err() == nil {
				logger.Log(logger.Allow, "web surface", err)
			}
			return
		}

		if msg.Op != opClick {
			logger.Logf(logger.Allow, "web surface", "unexpected message from client: %s", msg.Op)
			continue
		}

		ev := window.EventMouseClicked{
			Pos:    window.Coord{X: msg.X, Y: msg.Y},
			Button: parseButton(msg.Button),
		}

		select {
		case srv.clicks <- ev:
		case <-ctx.Done():
			return
		}
	}
}

// writePump sends the history and then every new command to the browser
func (srv *Server) writePump(ctx context.Context, cl *client, history []message) {
	defer cl.conn.Close(websocket.StatusNormalClosure, "")

	write := func(msg message) bool {
		wctx, cancel := context.WithTimeout(ctx, writeWait)
		defer cancel()
		if err := wsjson.Write(wctx, cl.conn, msg); err != nil {
			if ctx.Err() == nil {
				logger.Log(logger.Allow, "web surface", err)
			}
			return false
		}
		return true
	}

	for _, msg := range history {
		if !write(msg) {
			return
		}
	}

	for msg := range cl.send {
		if !write(msg) {
			return
		}
	}
}

func (srv *Server) broadcast(msg message) {
	srv.crit.Lock()
	defer srv.crit.Unlock()

	if msg.Op == opClear {
		srv.history = srv.history[:0]
	}
	srv.history = append(srv.history, msg)

	for cl := range srv.clients {
		select {
		case cl.send <- msg:
		default:
			// too slow. closing the send channel ends the write pump, which
			// closes the connection
			delete(srv.clients, cl)
			close(cl.send)
			logger.Log(logger.Allow, "web surface", "client too slow, disconnected")
		}
	}
}

// DrawLine implements the backend.Surface interface.
func (srv *Server) DrawLine(from, to window.Coord, col window.Color) error {
	if !backend.Finite(from, to) {
		logger.Logf(logger.Allow, "web surface", "line %v to %v can not be drawn", from, to)
		return nil
	}

	srv.broadcast(message{
		Op:    opDraw,
		X1:    from.X,
		Y1:    from.Y,
		X2:    to.X,
		Y2:    to.Y,
		Color: cssColor(backend.ColorOf(col, Foreground)),
	})
	return nil
}

// Clear implements the backend.Surface interface.
func (srv *Server) Clear() error {
	srv.broadcast(message{Op: opClear})
	return nil
}

// Print implements the backend.Surface interface.
func (srv *Server) Print(text string) error {
	srv.broadcast(message{Op: opPrint, Text: text})
	return nil
}

// Clients returns the number of connected browsers.
func (srv *Server) Clients() int {
	srv.crit.Lock()
	defer srv.crit.Unlock()
	return len(srv.clients)
}
