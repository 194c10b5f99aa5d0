// This file is part of Joylog.
//
// Joylog is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Joylog is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Joylog.  If not, see <https://www.gnu.org/licenses/>.

package terminal

import (
	"io"

	"github.com/jetsetilly/joylog/eventlog"
	"github.com/jetsetilly/joylog/terminal/ansi"
)

// Echo returns a function that prints log entries to the io.Writer. Colour
// should be false if the io.Writer is not a terminal.
func Echo(output io.Writer, colour bool) func(eventlog.LogEvent) {
	return func(e eventlog.LogEvent) {
		if colour {
			io.WriteString(output, ansi.DevicePen(int(e.Device)))
			io.WriteString(output, e.String())
			io.WriteString(output, ansi.NormalPen)
		} else {
			io.WriteString(output, e.String())
		}
		io.WriteString(output, "\n")
	}
}
