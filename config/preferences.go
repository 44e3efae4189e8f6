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

// Package config holds the preferences for the turtle program. Preferences
// are stored on disk in the resource directory and can be overridden on the
// command line with the -prefs flag.
package config

import (
	"fmt"
	"time"

	"github.com/turtlecomp/turtle/curated"
	"github.com/turtlecomp/turtle/paths"
	"github.com/turtlecomp/turtle/prefs"
)

// DefaultPrefsFile is the name of the preferences file in the resource
// directory.
const DefaultPrefsFile = "preferences"

// InvalidValue is returned when a preference is set to a value that is out of
// range.
const InvalidValue = "config: invalid value for %s (%v)"

// Preferences for the turtle program.
type Preferences struct {
	dsk *prefs.Disk

	// number of commands and events buffered by the relay
	RelayCapacity prefs.Int

	// size and refresh rate of the SDL window
	WindowWidth  prefs.Int
	WindowHeight prefs.Int
	WindowFPS    prefs.Int

	// extent of the turtle's visible area
	TurtleMaxX prefs.Float
	TurtleMaxY prefs.Float

	// pause after each line is drawn in milliseconds
	TurtleDelay prefs.Int

	// size of the image created in IMAGE mode
	ImageWidth  prefs.Int
	ImageHeight prefs.Int

	// listen address in WEB mode
	WebAddress prefs.String
}

const (
	relayCapacity = 4096
	windowWidth   = 640
	windowHeight  = 480
	windowFPS     = 60
	turtleMaxX    = 20.0
	turtleMaxY    = 15.0
	turtleDelay   = 1
	imageWidth    = 640
	imageHeight   = 480
	webAddress    = "localhost:12601"
)

// NewPreferences is the preferred method of initialisation for the
// Preferences type. The preferences file in the resource directory is used.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath("", DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return NewPreferencesFromFile(pth)
}

// NewPreferencesFromFile is like NewPreferences but with an explicit file.
// Values are not loaded from the file until Load() is called.
func NewPreferencesFromFile(pth string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	p.RelayCapacity.SetHookPre(atLeast("relay.capacity", 1))
	p.WindowWidth.SetHookPre(atLeast("window.width", 1))
	p.WindowHeight.SetHookPre(atLeast("window.height", 1))
	p.WindowFPS.SetHookPre(atLeast("window.fps", 1))
	p.TurtleMaxX.SetHookPre(positive("turtle.maxx"))
	p.TurtleMaxY.SetHookPre(positive("turtle.maxy"))
	p.TurtleDelay.SetHookPre(atLeast("turtle.delay", 0))
	p.ImageWidth.SetHookPre(atLeast("image.width", 1))
	p.ImageHeight.SetHookPre(atLeast("image.height", 1))

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	for _, e := range []struct {
		key string
		p   prefs.Pref
	}{
		{"relay.capacity", &p.RelayCapacity},
		{"window.width", &p.WindowWidth},
		{"window.height", &p.WindowHeight},
		{"window.fps", &p.WindowFPS},
		{"turtle.maxx", &p.TurtleMaxX},
		{"turtle.maxy", &p.TurtleMaxY},
		{"turtle.delay", &p.TurtleDelay},
		{"image.width", &p.ImageWidth},
		{"image.height", &p.ImageHeight},
		{"web.address", &p.WebAddress},
	} {
		if err := p.dsk.Add(e.key, e.p); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	p.RelayCapacity.Set(relayCapacity)
	p.WindowWidth.Set(windowWidth)
	p.WindowHeight.Set(windowHeight)
	p.WindowFPS.Set(windowFPS)
	p.TurtleMaxX.Set(turtleMaxX)
	p.TurtleMaxY.Set(turtleMaxY)
	p.TurtleDelay.Set(turtleDelay)
	p.ImageWidth.Set(imageWidth)
	p.ImageHeight.Set(imageHeight)
	p.WebAddress.Set(webAddress)
}

// Load preferences from disk. The file is created if it does not exist.
func (p *Preferences) Load() error {
	return p.dsk.Load(true)
}

// Save preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// Delay returns the TurtleDelay preference as a time.Duration.
func (p *Preferences) Delay() time.Duration {
	return time.Duration(p.TurtleDelay.Get().(int)) * time.Millisecond
}

func (p *Preferences) String() string {
	return fmt.Sprintf("relay %d, window %dx%d@%d, turtle %vx%v, image %dx%d, web %s",
		p.RelayCapacity.Get(), p.WindowWidth.Get(), p.WindowHeight.Get(), p.WindowFPS.Get(),
		p.TurtleMaxX.Get(), p.TurtleMaxY.Get(), p.ImageWidth.Get(), p.ImageHeight.Get(),
		p.WebAddress.Get())
}

func atLeast(key string, min int) func(prefs.Value) error {
	return func(v prefs.Value) error {
		if v.(int) < min {
			return curated.Errorf(InvalidValue, key, v)
		}
		return nil
	}
}

func positive(key string) func(prefs.Value) error {
	return func(v prefs.Value) error {
		if !(v.(float64) > 0) {
			return curated.Errorf(InvalidValue, key, v)
		}
		return nil
	}
}
