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

package prefs_test

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/turtlecomp/turtle/curated"
	"github.com/turtlecomp/turtle/prefs"
	"github.com/turtlecomp/turtle/test"
)

func tmpPrefFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "preferences")
}

func cmpTmpFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	if err != nil {
		t.Errorf("error reading tmp file: %v", err)
		return
	}

	expected = fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, expected)
	test.ExpectEquality(t, string(data), expected)
}

func TestBool(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v, w, x prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, dsk.Add("testB", &w))
	test.ExpectSuccess(t, dsk.Add("testC", &x))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, x.Set("TRUE"))
	test.ExpectFailure(t, x.Set(10))

	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "test :: true\ntestB :: false\ntestC :: true\n")
}

func TestNumbers(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var capacity prefs.Int
	var maxx prefs.Float
	test.ExpectSuccess(t, dsk.Add("relay.capacity", &capacity))
	test.ExpectSuccess(t, dsk.Add("turtle.maxx", &maxx))

	test.ExpectSuccess(t, capacity.Set("4096"))
	test.ExpectSuccess(t, maxx.Set(20))
	test.ExpectFailure(t, capacity.Set("---"))
	test.ExpectFailure(t, capacity.Set(1.0))
	test.ExpectFailure(t, maxx.Set("twenty"))

	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "relay.capacity :: 4096\nturtle.maxx :: 20\n")

	// reload in to fresh values
	test.ExpectSuccess(t, maxx.Set(1.5))
	test.ExpectEquality(t, maxx.String(), "1.5")
	test.DemandSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, maxx.Get().(float64), 20.0)
	test.ExpectEquality(t, capacity.Get().(int), 4096)
}

func TestPreserveUnknownKeys(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var v prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, v.Set(true))
	test.DemandSuccess(t, dsk.Save())

	// a second disk using the same file must not clobber the first
	dsk, err = prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var s prefs.String
	test.ExpectSuccess(t, dsk.Add("foo", &s))
	test.ExpectSuccess(t, s.Set("bar"))
	test.DemandSuccess(t, dsk.Save())

	cmpTmpFile(t, fn, "foo :: bar\ntest :: true\n")
}

func TestLoadSaveOnFail(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var s prefs.String
	test.ExpectSuccess(t, dsk.Add("web.address", &s))
	test.ExpectSuccess(t, s.Set("localhost:12700"))

	test.DemandSuccess(t, dsk.Load(true))
	cmpTmpFile(t, fn, "web.address :: localhost:12700\n")
}

func TestInvalidFile(t *testing.T) {
	fn := tmpPrefFile(t)
	test.DemandSuccess(t, os.WriteFile(fn, []byte("not prefs\n"), 0o600))

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	err = dsk.Load(false)
	test.ExpectSuccess(t, curated.Is(err, prefs.DiskError))
}

func TestKeys(t *testing.T) {
	dsk, err := prefs.NewDisk(tmpPrefFile(t))
	test.DemandSuccess(t, err)

	var a, b prefs.Int
	test.ExpectSuccess(t, dsk.Add("a", &a))
	test.ExpectSuccess(t, curated.Is(dsk.Add("a", &b), prefs.DuplicateKey))
	test.ExpectSuccess(t, curated.Is(dsk.Add("a::b", &b), prefs.InvalidKey))
	test.ExpectSuccess(t, curated.Is(dsk.Add("", &b), prefs.InvalidKey))
}

func TestHooks(t *testing.T) {
	var v prefs.Int

	var post int
	v.SetHookPre(func(value prefs.Value) error {
		if value.(int) <= 0 {
			return errors.New("must be positive")
		}
		return nil
	})
	v.SetHookPost(func(value prefs.Value) error {
		post = value.(int)
		return nil
	})

	test.ExpectSuccess(t, v.Set(10))
	test.ExpectEquality(t, post, 10)
	test.ExpectFailure(t, v.Set(-1))
	test.ExpectEquality(t, v.Get().(int), 10)
	test.ExpectEquality(t, post, 10)
}

func TestCommandLine(t *testing.T) {
	prefs.PushCommandLineStack("window.width::640; turtle.maxx :: 40; unused::1")
	defer prefs.PopCommandLineStack()

	dsk, err := prefs.NewDisk(tmpPrefFile(t))
	test.DemandSuccess(t, err)

	var width prefs.Int
	var maxx prefs.Float
	test.ExpectSuccess(t, dsk.Add("window.width", &width))
	test.ExpectSuccess(t, dsk.Add("turtle.maxx", &maxx))
	test.ExpectEquality(t, width.Get().(int), 640)
	test.ExpectEquality(t, maxx.Get().(float64), 40.0)

	ok, _ := prefs.GetCommandLinePref("window.width")
	test.ExpectFailure(t, ok)

	test.ExpectEquality(t, prefs.PopCommandLineStack(), "unused::1")
	prefs.PushCommandLineStack("")
}

func TestCommandLineOverridesDisk(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var width prefs.Int
	test.DemandSuccess(t, dsk.Add("window.width", &width))
	test.DemandSuccess(t, width.Set(320))
	test.DemandSuccess(t, dsk.Save())

	prefs.PushCommandLineStack("window.width::800")
	defer prefs.PopCommandLineStack()

	dsk, err = prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var override prefs.Int
	test.DemandSuccess(t, dsk.Add("window.width", &override))
	test.DemandSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, override.Get().(int), 800)
}
