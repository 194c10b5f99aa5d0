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

// Package follow prints the rows of a log file as they are written. It is used
// to watch a logging session from a second terminal:
//
//	joylog tail logs/log3.csv
//
// Rows are printed with the time of the event (without the date), the device
// ID and the message. Lines that cannot be parsed as a log row are printed
// unchanged.
package follow
