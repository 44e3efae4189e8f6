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

// Package test bundles functions that remove common boilerplate from tests
// written with the standard go test harness.
//
// The Expect functions report a failure with t.Errorf() and allow the test to
// continue. The Demand functions report with t.Fatalf() and should be used
// when the remainder of the test depends on the value being correct, for
// example the length of a slice that is about to be indexed.
//
// ExpectSuccess() and ExpectFailure() interpret the value according to its
// type. A bool is successful if it is true and an error is successful if it is
// nil. An untyped nil is considered a success because that is how an error
// value of nil arrives when it is passed as an interface.
//
// The CompareWriter type implements io.Writer and should be used to capture
// output for comparison with an expected string.
package test
