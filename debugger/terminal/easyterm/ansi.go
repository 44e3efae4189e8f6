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

//go:build linux || darwin || freebsd || netbsd || openbsd

package easyterm

import (
	"strings"

	"github.com/turtlecomp/turtle/debugger/terminal"
)

const (
	ansiNormal       = "\033[0m"
	ansiPrompt       = "\033[1m"
	ansiHelp         = "\033[36m"
	ansiNotification = "\033[33m"
	ansiError        = "\033[31m"
)

const errorPrefix = "* "

func styled(style terminal.Style, s string) string {
	switch style {
	case terminal.StyleHelp:
		return ansiHelp + s + ansiNormal
	case terminal.StyleNotification:
		return ansiNotification + s + ansiNormal
	case terminal.StyleError:
		return ansiError + errorPrefix + s + ansiNormal
	}
	return s
}

// width returns the number of columns available for the text of a line in
// the given style. zero means there is no limit
func width(style terminal.Style, cols int) int {
	if cols <= 0 {
		return 0
	}
	if style == terminal.StyleError {
		cols -= len(errorPrefix)
	}
	return max(cols, 1)
}

// wrap splits s into lines no longer than cols runes. lines already in s are
// kept. a cols value of zero or less means that no wrapping takes place
func wrap(s string, cols int) []string {
	var lines []string
	for _, l := range strings.Split(s, "\n") {
		if cols <= 0 {
			lines = append(lines, l)
			continue
		}
		r := []rune(l)
		for len(r) > cols {
			lines = append(lines, string(r[:cols]))
			r = r[cols:]
		}
		lines = append(lines, string(r))
	}
	return lines
}
