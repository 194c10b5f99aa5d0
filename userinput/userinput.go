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

package userinput

import "fmt"

// DeviceID identifies one connected joystick for the duration of its
// connection. The zero value is used for events that are not associated with
// a device.
type DeviceID int32

// NoDevice is the DeviceID used for messages that refer to no device.
const NoDevice DeviceID = 0

// Event represents all the different type of events that can occur in the
// input subsystem.
type Event interface{}

// EventQuit is sent when the program should end.
type EventQuit struct{}

// EventDeviceAdded is sent when a joystick has been connected.
type EventDeviceAdded struct {
	ID DeviceID
}

// EventDeviceRemoved is sent when a joystick has been disconnected.
type EventDeviceRemoved struct {
	ID DeviceID
}

// EventAxis is sent when an axis on a joystick changes. The value is the raw
// value reported by the platform.
type EventAxis struct {
	ID    DeviceID
	Axis  int
	Value int
}

// EventButton is sent when a joystick button is pressed or released.
type EventButton struct {
	ID     DeviceID
	Button int
	Down   bool
}

// ButtonLabel returns the label used for the button state in log messages.
func (ev EventButton) ButtonLabel() string {
	if ev.Down {
		return "PRESSED"
	}
	return "RELEASED"
}

// Device is an open joystick. Closing a device releases the platform
// resources associated with it.
type Device interface {
	Name() string
	Close()
}

func (ev EventDeviceAdded) String() string {
	return fmt.Sprintf("device added (%d)", ev.ID)
}

func (ev EventDeviceRemoved) String() string {
	return fmt.Sprintf("device removed (%d)", ev.ID)
}
