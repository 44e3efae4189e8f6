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

// Package debugger is an interactive front end for the turtle. Each line
// typed at the terminal is either one of the debugger's own commands or a
// turtle script statement, which is executed immediately.
//
// The debugger's own commands are written in upper case to distinguish them
// from script statements:
//
//	QUIT            end the session
//	EVENTS          list the most recent events received from the window
//	LOG [n]         show the most recent log entries
//	RUN file        run a script file
//	HELP            list the debugger commands
//
// After every command the window's events are collected. Mouse clicks are
// reported in turtle coordinates. Closing the window ends the session.
package debugger
