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
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/bradleyjkemp/memviz"
	"github.com/turtlecomp/turtle/backend"
	"github.com/turtlecomp/turtle/backend/imagesurface"
	"github.com/turtlecomp/turtle/backend/websurface"
	"github.com/turtlecomp/turtle/config"
	"github.com/turtlecomp/turtle/curated"
	"github.com/turtlecomp/turtle/debugger"
	"github.com/turtlecomp/turtle/debugger/terminal"
	"github.com/turtlecomp/turtle/debugger/terminal/plainterm"
	"github.com/turtlecomp/turtle/logger"
	"github.com/turtlecomp/turtle/modalflag"
	"github.com/turtlecomp/turtle/pos"
	"github.com/turtlecomp/turtle/prefs"
	"github.com/turtlecomp/turtle/script"
	"github.com/turtlecomp/turtle/statsview"
	"github.com/turtlecomp/turtle/turtle"
	"github.com/turtlecomp/turtle/version"
	"github.com/turtlecomp/turtle/window"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// reset interrupt signal handling. used when an alternative handler is
	// more appropriate.
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args interface{}
}

// GuiCreator facilitates the creation, servicing and destruction of GUIs
// that need to be run in the main thread.
//
// Note that there is no Create() function because we need the freedom to
// create the GUI how we want. Instead the creator is a channel which accepts
// a function that returns an instance of GuiCreator.
type GuiCreator interface {
	// cleanup resources used by the gui
	Destroy(io.Writer)

	// Service() should not pause or loop longer than necessary. It MUST ONLY
	// be called as part of a larger loop from the main thread.
	Service()
}

// communication between the main() function and the launch() function. this is
// required because many gui solutions (notably SDL) require window event
// handling (including creation) to occur on the main thread.
type mainSync struct {
	state   chan stateRequest
	creator chan func() (GuiCreator, error)

	// the result of creator will be returned on either of these two channels.
	creation      chan GuiCreator
	creationError chan error
}

// #mainthread
func main() {
	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (GuiCreator, error)),
		creation:      make(chan GuiCreator),
		creationError: make(chan error),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// #ctrlc default handler. can be turned off with reqNoIntSig request
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	// launch program as a go routine. further communication is through the
	// mainSync instance
	go launch(sync)

	// loop until done is true. every iteration of the loop we listen for:
	//
	//  1. interrupt signals
	//  2. new gui creation functions
	//  3. state requests
	//  4. anything in the Service() function of the most recently created GUI
	//
	// the loop only blocks when there is no gui to service. receiving from
	// a nil channel blocks forever
	ready := make(chan struct{})
	close(ready)

	done := false
	var gui GuiCreator
	for !done {
		var service chan struct{}
		if gui != nil {
			service = ready
		}

		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case creator := <-sync.creator:
			var err error

			// destroy existing gui
			if gui != nil {
				gui.Destroy(os.Stderr)
			}

			var g GuiCreator
			g, err = creator()
			if err != nil {
				gui = nil
				sync.creationError <- err
			} else {
				gui = g
				sync.creation <- gui
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if gui != nil {
					gui.Destroy(os.Stderr)
				}

				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}

			case reqNoIntSig:
				signal.Reset(os.Interrupt)
				if state.args != nil {
					panic(fmt.Sprintf("%s does not accept any arguments", reqNoIntSig))
				}
			}

		case <-service:
			gui.Service()
		}
	}

	fmt.Print("\r")
	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate gui creation and to quit.
func launch(sync *mainSync) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "DEBUG", "IMAGE", "WEB", "VERSION")
	md.AdditionalHelp(version.String())

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, sync)

	case "DEBUG":
		err = debug(md, sync)

	case "IMAGE":
		err = render(md)

	case "WEB":
		err = web(md, sync)

	case "VERSION":
		fmt.Println(version.String())
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// flags shared by every mode
type common struct {
	log    *bool
	prefs  *string
	memviz *string
	stats  *bool
}

func addCommonFlags(md *modalflag.Modes) common {
	return common{
		log:    md.AddBool("log", false, "echo debugging log to stdout"),
		prefs:  md.AddString("prefs", "", "preferences to override, eg. \"window.width::800; turtle.delay::0\""),
		memviz: md.AddString("memviz", "", "write a graphviz diagram of the turtle to the file on exit"),
		stats:  md.AddBool("stats", false, fmt.Sprintf("run stats server (%s)", statsAvailability())),
	}
}

func statsAvailability() string {
	if statsview.Available() {
		return statsview.Address
	}
	return "not available in this build"
}

// apply the common flags and load preferences. the returned function should
// be deferred
func (c common) apply() (*config.Preferences, func(), error) {
	if *c.log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	if *c.stats {
		if statsview.Available() {
			statsview.Launch(os.Stdout)
		} else {
			fmt.Println("! stats server not available in this build")
		}
	}

	prefs.PushCommandLineStack(*c.prefs)
	done := func() {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			fmt.Printf("! unused preferences: %s\n", unused)
		}
	}

	p, err := config.NewPreferences()
	if err != nil {
		done()
		return nil, nil, err
	}
	if err := p.Load(); err != nil {
		done()
		return nil, nil, err
	}
	logger.Logf(logger.Allow, "prefs", "%v", p)

	return p, done, nil
}

// write a diagram of the turtle's state if the memviz flag has been given
func (c common) dumpMemviz(trt *turtle.Turtle) error {
	if *c.memviz == "" {
		return nil
	}

	f, err := os.Create(*c.memviz)
	if err != nil {
		return err
	}
	defer f.Close()

	memviz.Map(f, trt)
	logger.Logf(logger.Allow, "memviz", "written to %s", *c.memviz)

	return nil
}

// create a turtle for the window using the preferences
func newTurtle(win window.Window, p *config.Preferences) (*turtle.Turtle, error) {
	trt := turtle.NewTurtle(win)
	trt.SetDelay(p.Delay())
	trt.Init()
	err := trt.SetMax(p.TurtleMaxX.Get().(float64), p.TurtleMaxY.Get().(float64))
	if err != nil {
		return nil, err
	}
	return trt, nil
}

func parseScriptFile(filename string) ([]pos.Pos[script.Statement], error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return script.Parse(f)
}

const notInitialised = "sdl: window not initialised"

// newSDLWindow creates a relay whose deferred initialisation creates the SDL
// window on the main thread. any error from the creation is returned by the
// check function after Init() has been called on the relay
func newSDLWindow(sync *mainSync, p *config.Preferences, title string) (*window.ChannelWindow, func() (*sdlGui, error)) {
	var gui *sdlGui
	var guiErr error

	var cmds *window.CommandReceiver
	var events *window.EventSender
	var win *window.ChannelWindow

	win, cmds, events = window.NewPair(p.RelayCapacity.Get().(int), func() {
		sync.creator <- func() (GuiCreator, error) {
			return newSdlGui(title, p, cmds, events)
		}

		select {
		case g := <-sync.creation:
			gui = g.(*sdlGui)
		case guiErr = <-sync.creationError:
		}
	})

	return win, func() (*sdlGui, error) {
		if gui == nil && guiErr == nil {
			return nil, curated.Errorf(notInitialised)
		}
		return gui, guiErr
	}
}

func run(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()
	md.AdditionalHelp("run a turtle script in an SDL window")
	c := addCommonFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("a single script file is required for %s mode", md)
	}

	stmts, err := parseScriptFile(md.GetArg(0))
	if err != nil {
		return err
	}

	prf, done, err := c.apply()
	if err != nil {
		return err
	}
	defer done()

	win, check := newSDLWindow(sync, prf, version.ApplicationName)
	defer win.Close()

	trt, err := newTurtle(win, prf)
	if err != nil {
		return err
	}
	gui, err := check()
	if err != nil {
		return err
	}

	// stop the script if the window is closed
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		select {
		case <-gui.quit:
			cancel()
		case <-ctx.Done():
		}
	}()

	err = script.Run(ctx, trt, stmts)
	if err != nil && ctx.Err() == nil {
		return err
	}

	// keep the window open until the user closes it. events are drained so
	// that the SDL window never blocks on a full relay
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()
	for ctx.Err() == nil {
		select {
		case <-ctx.Done():
		case <-ticker.C:
			err := trt.Poll(func(ev window.Event) {
				if click, ok := ev.(window.EventMouseClicked); ok {
					logger.Log(logger.Allow, "turtle", click)
				}
			})
			if err != nil {
				cancel()
			}
		}
	}

	return c.dumpMemviz(trt)
}

func debug(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()
	md.AdditionalHelp("interactive turtle session with an SDL window")
	c := addCommonFlags(md)
	termType := md.AddString("term", "COLOR", "terminal type to use in debug mode: COLOR, PLAIN")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	prf, done, err := c.apply()
	if err != nil {
		return err
	}
	defer done()

	var term terminal.Terminal
	switch strings.ToUpper(*termType) {
	case "COLOR":
		term = newColorTerminal()
	case "PLAIN":
		term = plainterm.NewPlainTerminal(nil, nil)
	default:
		return fmt.Errorf("unknown terminal type (%s)", *termType)
	}

	win, check := newSDLWindow(sync, prf, fmt.Sprintf("%s debugger", version.ApplicationName))
	defer win.Close()

	trt, err := newTurtle(win, prf)
	if err != nil {
		return err
	}
	if _, err := check(); err != nil {
		return err
	}

	dbg := debugger.NewDebugger(term, trt)
	if err := dbg.Start(context.Background()); err != nil {
		return err
	}

	return c.dumpMemviz(trt)
}

func render(md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("run a turtle script and save the result as a PNG file")
	c := addCommonFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 2 {
		return fmt.Errorf("a script file and an output file are required for %s mode", md)
	}

	stmts, err := parseScriptFile(md.GetArg(0))
	if err != nil {
		return err
	}

	prf, done, err := c.apply()
	if err != nil {
		return err
	}
	defer done()

	srf := imagesurface.NewSurface(prf.ImageWidth.Get().(int), prf.ImageHeight.Get().(int))

	win, cmds, _ := window.NewPair(prf.RelayCapacity.Get().(int), nil)
	pump := backend.Pump{Commands: cmds, Surface: srf}

	pumpErr := make(chan error, 1)
	go func() {
		pumpErr <- pump.Run(context.Background())
	}()

	trt, err := newTurtle(win, prf)
	if err != nil {
		win.Close()
		return err
	}

	// no need to pause between lines when nobody is watching
	trt.SetDelay(0)

	err = script.Run(context.Background(), trt, stmts)

	// closing the relay ends the pump once every command has been applied
	win.Close()
	if perr := <-pumpErr; perr != nil {
		return perr
	}
	if err != nil {
		return err
	}

	if err := srf.Save(md.GetArg(1)); err != nil {
		return err
	}

	return c.dumpMemviz(trt)
}

func web(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()
	md.AdditionalHelp("run a turtle script and serve the result to web browsers")
	c := addCommonFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("a single script file is required for %s mode", md)
	}

	stmts, err := parseScriptFile(md.GetArg(0))
	if err != nil {
		return err
	}

	prf, done, err := c.apply()
	if err != nil {
		return err
	}
	defer done()

	// ctrl-c stops the server gracefully
	sync.state <- stateRequest{req: reqNoIntSig}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	win, cmds, events := window.NewPair(prf.RelayCapacity.Get().(int), nil)
	srv := websurface.NewServer(cmds, events)

	address := prf.WebAddress.Get().(string)
	srvErr := make(chan error, 1)
	go func() {
		srvErr <- srv.ListenAndServe(ctx, address)
	}()
	fmt.Printf("serving on http://%s (ctrl-c to stop)\n", address)

	trt, err := newTurtle(win, prf)
	if err != nil {
		win.Close()
		return err
	}

	err = script.Run(ctx, trt, stmts)
	win.Close()
	if err != nil && ctx.Err() == nil {
		stop()
		<-srvErr
		return err
	}

	// the server continues until interrupted
	if err := <-srvErr; err != nil {
		return err
	}

	return c.dumpMemviz(trt)
}
