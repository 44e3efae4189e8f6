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
	"image/png"
	"io"
	"os"
	"testing"

	"github.com/turtlecomp/turtle/curated"
	"github.com/turtlecomp/turtle/modalflag"
	"github.com/turtlecomp/turtle/script"
	"github.com/turtlecomp/turtle/test"
)

// prepare a working directory with a local resource directory so that the
// user's preferences are not touched
func workingDir(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	test.DemandSuccess(t, os.Mkdir(".turtle", 0o700))
}

func parseModes(t *testing.T, args ...string) *modalflag.Modes {
	t.Helper()
	md := &modalflag.Modes{Output: io.Discard}
	md.NewArgs(args)
	md.AddSubModes("RUN", "DEBUG", "IMAGE", "WEB")
	p, err := md.Parse()
	test.DemandSuccess(t, err)
	test.DemandEquality(t, p, modalflag.ParseContinue)
	return md
}

func TestRenderMode(t *testing.T) {
	workingDir(t)

	src := "color 0 100 0\ngoto -10 0\nmoveto 10 0\nprint done\n"
	test.DemandSuccess(t, os.WriteFile("line.turtle", []byte(src), 0o600))

	md := parseModes(t, "IMAGE", "-prefs", "image.width::64; image.height::48", "line.turtle", "out.png")
	test.DemandEquality(t, md.Mode(), "IMAGE")
	test.DemandSuccess(t, render(md))

	f, err := os.Open("out.png")
	test.DemandSuccess(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.Bounds().Dx(), 64)
	test.ExpectEquality(t, img.Bounds().Dy(), 48)

	// the preferences file has been created but the command line values
	// were not saved
	_, err = os.Stat(".turtle/preferences")
	test.ExpectSuccess(t, err)
}

func TestRenderModeScriptError(t *testing.T) {
	workingDir(t)

	test.DemandSuccess(t, os.WriteFile("bad.turtle", []byte("back\n"), 0o600))

	md := parseModes(t, "IMAGE", "bad.turtle", "out.png")
	err := render(md)
	test.ExpectSuccess(t, curated.Is(err, script.ScriptError))

	_, err = os.Stat("out.png")
	test.ExpectFailure(t, err)
}

func TestRenderModeArguments(t *testing.T) {
	workingDir(t)
	md := parseModes(t, "IMAGE", "only-one-argument")
	test.ExpectFailure(t, render(md))
}
