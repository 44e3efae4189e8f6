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

package terminal

import (
	"strings"
)

// LineWriter is an io.Writer that prints each complete line to a Terminal
// Output with the specified Style. Use it to send the output of functions
// that write to an io.Writer, such as logger.Tail(), to the terminal.
type LineWriter struct {
	Output Output
	Style  Style
	buf    strings.Builder
}

// Write implements the io.Writer interface.
func (w *LineWriter) Write(p []byte) (int, error) {
	w.buf.Write(p)
	s := w.buf.String()
	w.buf.Reset()

	for {
		i := strings.IndexByte(s, '\n')
		if i < 0 {
			break
		}
		w.Output.TermPrintLine(w.Style, s[:i])
		s = s[i+1:]
	}
	w.buf.WriteString(s)

	return len(p), nil
}

// Flush prints any incomplete line.
func (w *LineWriter) Flush() {
	if w.buf.Len() > 0 {
		w.Output.TermPrintLine(w.Style, w.buf.String())
		w.buf.Reset()
	}
}
