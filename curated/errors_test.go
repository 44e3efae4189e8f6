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

package curated_test

import (
	"errors"
	"io"
	"testing"

	"github.com/turtlecomp/turtle/curated"
	"github.com/turtlecomp/turtle/test"
)

const testPattern = "relay: %s"
const testPatternB = "session: %v"

func TestDuplicateParts(t *testing.T) {
	e := curated.Errorf("script: %v", curated.Errorf("script: unknown statement"))
	test.ExpectEquality(t, e.Error(), "script: unknown statement")

	// non-adjacent duplicates are left alone
	f := curated.Errorf("a: b: %v", "a")
	test.ExpectEquality(t, f.Error(), "a: b: a")
}

func TestIs(t *testing.T) {
	e := curated.Errorf(testPattern, "dropped")
	test.ExpectSuccess(t, curated.Is(e, testPattern))
	test.ExpectFailure(t, curated.Is(e, testPatternB))
	test.ExpectSuccess(t, curated.IsAny(e))

	f := curated.Errorf(testPatternB, e)
	test.ExpectFailure(t, curated.Is(f, testPattern))
	test.ExpectSuccess(t, curated.Has(f, testPattern))
	test.ExpectSuccess(t, curated.Has(f, testPatternB))

	test.ExpectFailure(t, curated.IsAny(nil))
	test.ExpectFailure(t, curated.Has(io.EOF, testPattern))
}

func TestUnwrap(t *testing.T) {
	e := curated.Errorf("reading script: %v", io.EOF)
	test.ExpectSuccess(t, errors.Is(e, io.EOF))
	test.ExpectEquality(t, e.Error(), "reading script: EOF")
}
