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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and are created with the
// Errorf() function, which takes a formatting pattern and placeholder values
// in the same way as fmt.Errorf().
//
// The pattern is what identifies a curated error. Packages that need sentinel
// errors define the pattern as a constant and callers test for it with Is()
// or Has():
//
//	const Disconnected = "relay: disconnected: %s"
//
//	err := curated.Errorf(Disconnected, "command receiver dropped")
//
//	if curated.Is(err, Disconnected) {
//		// peer has gone
//	}
//
// Is() only checks the outermost error. Has() checks the whole chain, so an
// error wrapped with another curated pattern can still be found:
//
//	f := curated.Errorf("debugger: %v", err)
//	curated.Is(f, Disconnected)  // false
//	curated.Has(f, Disconnected) // true
//
// The Error() implementation normalises the message chain by removing
// duplicate adjacent parts. Parts are separated by the sub-string ": ". This
// means a function does not need to worry about whether its caller has
// already prefixed the same context:
//
//	script: script: unknown statement
//
// is printed as:
//
//	script: unknown statement
//
// Curated errors also implement Unwrap() so that an error value passed as a
// placeholder can be found with the errors.Is() and errors.As() functions of
// the standard library.
package curated
