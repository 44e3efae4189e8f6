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

package version

import (
	"runtime/debug"
	"strings"
	"testing"

	"github.com/turtlecomp/turtle/test"
)

func TestFromBuildInfo(t *testing.T) {
	v, r := fromBuildInfo("", nil)
	test.ExpectEquality(t, v, "local")
	test.ExpectEquality(t, r, "")

	settings := []debug.BuildSetting{
		{Key: "vcs", Value: "git"},
		{Key: "vcs.revision", Value: "0123456789abcdef"},
		{Key: "vcs.modified", Value: "true"},
	}
	v, r = fromBuildInfo("", settings)
	test.ExpectEquality(t, v, "unreleased")
	test.ExpectEquality(t, r, "0123456+dirty")

	v, _ = fromBuildInfo("v1.2.3", settings)
	test.ExpectEquality(t, v, "v1.2.3")
}

func TestString(t *testing.T) {
	test.ExpectSuccess(t, strings.HasPrefix(String(), ApplicationName+" "))
}
