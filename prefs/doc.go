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

// Package prefs stores typed preference values on disk.
//
// Preference values are one of Bool, Int, Float or String. Each is
// registered with a Disk under a key:
//
//	dsk, _ := prefs.NewDisk(paths.ResourcePath("", "preferences"))
//
//	var capacity prefs.Int
//	_ = dsk.Add("relay.capacity", &capacity)
//	_ = dsk.Load(true)
//
// The file format is one "key :: value" pair per line, preceded by a warning
// line. Keys in the file that have not been added to the Disk are preserved
// when the file is saved.
//
// Values can be overridden for the lifetime of a Disk from the command line
// with PushCommandLineStack(). The overrides are applied when the key is
// added with Disk.Add().
package prefs
