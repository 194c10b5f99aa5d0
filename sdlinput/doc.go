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

// Package sdlinput is the SDL implementation of the session.Platform
// interface. Only the joystick subsystem is initialised. There is no window
// and so no keyboard or mouse events.
//
// SDL reports the addition of a joystick with the device index of the
// joystick and not the instance ID. All other events use the instance ID. The
// Platform type hides this difference by converting the device index to the
// instance ID when the device is added and by remembering the device index
// for when the device is opened.
//
// SDL must be serviced from the main thread. The NewPlatform() function locks
// the calling goroutine to the current OS thread and all other functions
// should be called from the same goroutine.
package sdlinput
