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

// Package modalflag wraps the flag package of the standard library to handle
// program modes, each with its own set of flags.
//
// Arguments are given to NewArgs() and parsed one layer at a time with
// Parse(). Sub-modes for the next layer are registered with AddSubModes(); the
// first sub-mode is the default. Sub-mode names are case insensitive and are
// reported in upper case by Mode():
//
//	md := &modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "DEBUG", "IMAGE", "WEB")
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		scale := md.AddFloat64("scale", 1.0, "window scaling")
//		...
//	}
//
// The second call to Parse() processes the flags for the selected mode.
// Arguments that are neither flags nor a sub-mode are available through
// RemainingArgs() and GetArg().
package modalflag
