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

package dispatcher

import (
	"fmt"
	"time"

	"github.com/jetsetilly/joylog/eventlog"
	"github.com/jetsetilly/joylog/logger"
	"github.com/jetsetilly/joylog/userinput"
)

// DefaultCooldown is the minimum period between recorded axis events.
const DefaultCooldown = 40 * time.Millisecond

// Result of the Dispatch() function.
type Result int

// List of valid Result values.
const (
	Continue Result = iota
	Stop
)

func (r Result) String() string {
	switch r {
	case Continue:
		return "continue"
	case Stop:
		return "stop"
	}
	return "unknown result"
}

// Opener is implemented by the input platform. The error returned by Open()
// should describe why the device could not be opened.
type Opener interface {
	Open(id userinput.DeviceID) (userinput.Device, error)
}

// RowWriter is implemented by csvlog.Writer.
type RowWriter interface {
	WriteRow(when time.Time, id userinput.DeviceID, message string) error
}

// Dispatcher classifies events and records them.
type Dispatcher struct {
	opener Opener
	clock  eventlog.Clock
	log    *eventlog.Buffer

	// csv is nil if no log file is being written
	csv RowWriter

	// wall-clock time for CSV rows
	now func() time.Time

	devices map[userinput.DeviceID]userinput.Device

	// cooldown in milliseconds and the earliest ticks value at which the next
	// axis event will be recorded
	cooldown uint64
	nextAxis uint64
}

// NewDispatcher is the preferred method of initialisation for the Dispatcher
// type. The clock should be the same clock used by the eventlog.Buffer. The
// RowWriter can be nil.
func NewDispatcher(opener Opener, clock eventlog.Clock, log *eventlog.Buffer, csv RowWriter) *Dispatcher {
	return &Dispatcher{
		opener:   opener,
		clock:    clock,
		log:      log,
		csv:      csv,
		now:      time.Now,
		devices:  make(map[userinput.DeviceID]userinput.Device),
		cooldown: uint64(DefaultCooldown.Milliseconds()),
	}
}

// SetCooldown changes the period between recorded axis events. Periods of
// less than a millisecond disable rate limiting.
func (d *Dispatcher) SetCooldown(cooldown time.Duration) {
	if cooldown < 0 {
		cooldown = 0
	}
	d.cooldown = uint64(cooldown.Milliseconds())
}

// SetRowWriter changes the destination of CSV rows. A nil value means rows
// will only be recorded in the eventlog.Buffer.
func (d *Dispatcher) SetRowWriter(csv RowWriter) {
	d.csv = csv
}

// Record a message. The message is formatted with fmt.Sprintf().
func (d *Dispatcher) Record(id userinput.DeviceID, format string, args ...any) {
	e := d.log.Append(id, fmt.Sprintf(format, args...))

	if d.csv != nil {
		if err := d.csv.WriteRow(d.now(), e.Device, e.Message); err != nil {
			logger.Log(logger.Allow, "dispatcher", err)
		}
	}
}

// Dispatch a single event. Events that are not recognised are ignored.
func (d *Dispatcher) Dispatch(ev userinput.Event) Result {
	switch ev := ev.(type) {
	case userinput.EventQuit:
		return Stop

	case userinput.EventDeviceAdded:
		d.deviceAdded(ev)

	case userinput.EventDeviceRemoved:
		d.deviceRemoved(ev)

	case userinput.EventAxis:
		now := d.clock.Ticks()
		if now >= d.nextAxis {
			d.nextAxis = now + d.cooldown
			d.Record(ev.ID, "Joystick #%d axis %d -> %d", ev.ID, ev.Axis, ev.Value)
		}

	case userinput.EventButton:
		d.Record(ev.ID, "Joystick #%d button %d -> %s", ev.ID, ev.Button, ev.ButtonLabel())
	}

	return Continue
}

func (d *Dispatcher) deviceAdded(ev userinput.EventDeviceAdded) {
	// the platform should not report a device that is already open but if it
	// does then the old device is released before opening it again
	if dev, ok := d.devices[ev.ID]; ok {
		logger.Logf(logger.Allow, "dispatcher", "device %d added while already open", ev.ID)
		dev.Close()
		delete(d.devices, ev.ID)
	}

	dev, err := d.opener.Open(ev.ID)
	if err != nil {
		d.Record(ev.ID, "Joystick #%d added, but not opened: %v", ev.ID, err)
		return
	}

	d.devices[ev.ID] = dev
	d.Record(ev.ID, "Joystick #%d ('%s') added", ev.ID, dev.Name())
}

func (d *Dispatcher) deviceRemoved(ev userinput.EventDeviceRemoved) {
	if dev, ok := d.devices[ev.ID]; ok {
		dev.Close()
		delete(d.devices, ev.ID)
	}
	d.Record(ev.ID, "Joystick #%d removed", ev.ID)
}

// IsOpen returns true if the device is currently open.
func (d *Dispatcher) IsOpen(id userinput.DeviceID) bool {
	_, ok := d.devices[id]
	return ok
}

// NumOpen returns the number of open devices.
func (d *Dispatcher) NumOpen() int {
	return len(d.devices)
}

// Close every open device.
func (d *Dispatcher) Close() {
	for id, dev := range d.devices {
		dev.Close()
		delete(d.devices, id)
	}
}
