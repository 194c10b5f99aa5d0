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

// Package terminal connects the logger to the controlling terminal. Because
// the SDL input platform does not open a window there is no other source of
// keyboard input.
//
// The Keys type puts the terminal into cbreak mode so that individual key
// presses can be read without waiting for the return key. Pressing Q sends a
// userinput.EventQuit on the event channel. Ctrl-C still generates an
// interrupt signal in cbreak mode.
//
// The Echo() function returns a function suitable for the
// eventlog.Buffer.SetEcho() function. Entries are printed one per line, with
// each device given its own colour.
package terminal
