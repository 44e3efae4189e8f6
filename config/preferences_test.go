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

package config_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/turtlecomp/turtle/config"
	"github.com/turtlecomp/turtle/curated"
	"github.com/turtlecomp/turtle/prefs"
	"github.com/turtlecomp/turtle/test"
)

func TestDefaults(t *testing.T) {
	p, err := config.NewPreferencesFromFile(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, p.RelayCapacity.Get().(int), 4096)
	test.ExpectEquality(t, p.TurtleMaxX.Get().(float64), 20.0)
	test.ExpectEquality(t, p.TurtleMaxY.Get().(float64), 15.0)
	test.ExpectEquality(t, p.Delay(), time.Millisecond)
	test.ExpectEquality(t, p.WebAddress.Get().(string), "localhost:12601")
}

func TestSaveAndLoad(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "preferences")

	p, err := config.NewPreferencesFromFile(pth)
	test.DemandSuccess(t, err)

	// loading a missing file creates it
	test.DemandSuccess(t, p.Load())

	test.DemandSuccess(t, p.WindowWidth.Set(800))
	test.DemandSuccess(t, p.TurtleDelay.Set(0))
	test.DemandSuccess(t, p.Save())

	q, err := config.NewPreferencesFromFile(pth)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, q.Load())
	test.ExpectEquality(t, q.WindowWidth.Get().(int), 800)
	test.ExpectEquality(t, q.Delay(), time.Duration(0))
}

func TestInvalidValues(t *testing.T) {
	p, err := config.NewPreferencesFromFile(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)

	err = p.RelayCapacity.Set(0)
	test.ExpectSuccess(t, curated.Is(err, config.InvalidValue))
	test.ExpectEquality(t, p.RelayCapacity.Get().(int), 4096)

	test.ExpectFailure(t, p.TurtleMaxX.Set(-1.0))
	test.ExpectFailure(t, p.TurtleDelay.Set(-1))
	test.ExpectSuccess(t, p.TurtleMaxX.Set("12.5"))
	test.ExpectEquality(t, p.TurtleMaxX.Get().(float64), 12.5)
}

func TestCommandLine(t *testing.T) {
	prefs.PushCommandLineStack("relay.capacity::16; image.width::100")
	defer prefs.PopCommandLineStack()

	p, err := config.NewPreferencesFromFile(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, p.Load())
	test.ExpectEquality(t, p.RelayCapacity.Get().(int), 16)
	test.ExpectEquality(t, p.ImageWidth.Get().(int), 100)
}
