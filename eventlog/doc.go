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

// Package eventlog keeps the in-memory record of joystick events. Entries are
// only ever appended. There is no limit on the number of entries because a
// logging session is expected to be short.
//
// Each entry records the elapsed time in milliseconds since the input
// subsystem started. The source of the elapsed time is supplied as a Clock
// when the Buffer is created.
//
// The buffer is not safe for concurrent use. It is intended to be owned by
// the goroutine running the event loop.
package eventlog
