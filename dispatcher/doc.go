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

// Package dispatcher turns userinput events into log entries.
//
// Every recorded message is appended to an eventlog.Buffer and, if one has
// been supplied, written as a row to a csvlog.Writer.
//
// Device connection events open and close devices. The Dispatcher owns the
// open devices and closes them when they are removed or when Close() is
// called.
//
// Axis events are rate limited. Only one axis event is recorded in any
// cooldown period. The cooldown is shared by every axis on every device, so a
// busy axis on one joystick can hide the movement of an axis on another. Axis
// events that are not recorded are simply dropped from the log.
//
// Button events are never rate limited.
//
// Errors from the platform (for example, failing to open a device) are
// recorded as part of the message and do not stop the dispatcher.
package dispatcher
