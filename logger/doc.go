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

// Package logger is the program's diagnostic log. It is separate from the log
// of joystick events (see the eventlog package) and records information
// about the running program itself: initialisation of the input subsystem,
// problems opening or writing the CSV file, device bookkeeping and so on.
//
// Entries are tagged. The tag is normally the name of the package making the
// log entry:
//
//	logger.Log(logger.Allow, "csvlog", "cannot open file")
//
// Consecutive entries with the same tag and detail are collapsed into a single
// entry with a repeat count.
//
// The detail argument can be a string, an error, a fmt.Stringer or any other
// type that can be formatted with the %v verb.
//
// The central log has a maximum number of entries. Older entries are
// discarded once that limit has been reached.
package logger
