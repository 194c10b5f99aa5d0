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

// Package session runs a joystick logging session. A session moves through the
// following states:
//
//	Uninitialised -> Running -> Terminated
//
// If the input platform cannot be created the session moves from
// Uninitialised to Failed and never runs.
//
// When the session starts, a new log file is chosen with
// paths.NextLogFilename() and the CSV header is written to it. A log file that
// cannot be opened is not fatal. The session will continue and events will
// be recorded in the eventlog.Buffer only.
//
// The Run() function polls the platform for events and passes them to a
// dispatcher.Dispatcher until the dispatcher indicates that the session
// should stop. Open devices, the log file and the platform are then released.
//
// Events from sources other than the platform (a terminal key reader or an
// interrupt handler for example) can be added with SetExtraEvents(). These
// events are handled between calls to the platform's Poll() function, on the
// same goroutine as the platform's own events.
package session
