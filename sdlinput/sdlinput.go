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

package sdlinput

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/jetsetilly/joylog/logger"
	"github.com/jetsetilly/joylog/userinput"
	"github.com/veandco/go-sdl2/sdl"
)

// the amount of time in milliseconds Poll() waits for a new event
const pollTimeout = 50

// Platform implements the session.Platform interface.
type Platform struct {
	// device index of joysticks that have been added but not yet removed,
	// indexed by instance ID
	index map[userinput.DeviceID]int

	// converts a device index to an instance ID
	instanceID func(index int) userinput.DeviceID

	// the SDL millisecond counter. it is 32 bits and wraps after about 49.7
	// days
	ticks func() uint32

	// the most recent value of ticks() and the number of times it has
	// wrapped
	lastTicks uint32
	wraps     uint64
}

// NewPlatform initialises the SDL joystick subsystem.
func NewPlatform() (*Platform, error) {
	// the SDL package calls LockOSThread() but we call it here too. it can't
	// hurt and we never unlock it in any case
	runtime.LockOSThread()

	// without a window joystick events will not be delivered unless this hint
	// is set
	sdl.SetHint(sdl.HINT_JOYSTICK_ALLOW_BACKGROUND_EVENTS, "1")

	err := sdl.Init(sdl.INIT_JOYSTICK)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}

	var v sdl.Version
	sdl.GetVersion(&v)
	logger.Logf(logger.Allow, "sdl", "version %d.%d.%d", v.Major, v.Minor, v.Patch)

	n := sdl.NumJoysticks()
	if n == 0 {
		logger.Log(logger.Allow, "sdl", "no joysticks found")
	} else {
		logger.Logf(logger.Allow, "sdl", "%d joysticks found", n)
	}

	return newPlatform(func(index int) userinput.DeviceID {
		return userinput.DeviceID(sdl.JoystickGetDeviceInstanceID(index))
	}), nil
}

func newPlatform(instanceID func(index int) userinput.DeviceID) *Platform {
	return &Platform{
		index:      make(map[userinput.DeviceID]int),
		instanceID: instanceID,
		ticks:      sdl.GetTicks,
	}
}

// Poll implements the session.Platform interface. It waits for a short
// period for a new SDL event. A nil value is returned if no event arrives or
// if the event is not a joystick or quit event.
func (plt *Platform) Poll() userinput.Event {
	return plt.translate(sdl.WaitEventTimeout(pollTimeout))
}

func (plt *Platform) translate(ev sdl.Event) userinput.Event {
	switch ev := ev.(type) {
	case *sdl.QuitEvent:
		return userinput.EventQuit{}

	case *sdl.JoyDeviceAddedEvent:
		// Which is the device index for this event type
		index := int(ev.Which)
		id := plt.instanceID(index)
		plt.index[id] = index
		return userinput.EventDeviceAdded{ID: id}

	case *sdl.JoyDeviceRemovedEvent:
		id := userinput.DeviceID(ev.Which)
		delete(plt.index, id)
		return userinput.EventDeviceRemoved{ID: id}

	case *sdl.JoyAxisEvent:
		return userinput.EventAxis{
			ID:    userinput.DeviceID(ev.Which),
			Axis:  int(ev.Axis),
			Value: int(ev.Value),
		}

	case *sdl.JoyButtonEvent:
		return userinput.EventButton{
			ID:     userinput.DeviceID(ev.Which),
			Button: int(ev.Button),
			Down:   ev.State == 1,
		}
	}

	return nil
}

// joystick implements the userinput.Device interface.
type joystick struct {
	joy *sdl.Joystick
}

func (j joystick) Name() string {
	return j.joy.Name()
}

func (j joystick) Close() {
	j.joy.Close()
}

// Open implements the session.Platform interface.
func (plt *Platform) Open(id userinput.DeviceID) (userinput.Device, error) {
	index, ok := plt.index[id]
	if !ok {
		return nil, fmt.Errorf("no joystick with instance ID %d", id)
	}

	sdl.ClearError()
	joy := sdl.JoystickOpen(index)
	if joy == nil {
		err := sdl.GetError()
		if err == nil {
			err = errors.New("unknown error")
		}
		return nil, err
	}

	return joystick{joy: joy}, nil
}

// Ticks implements the session.Platform interface. The 32 bit SDL counter is
// extended to 64 bits. A wrap is only detected if Ticks() is called at least
// once in every 49.7 day period.
func (plt *Platform) Ticks() uint64 {
	t := plt.ticks()
	if t < plt.lastTicks {
		plt.wraps++
	}
	plt.lastTicks = t
	return plt.wraps<<32 | uint64(t)
}

// Destroy implements the session.Platform interface.
func (plt *Platform) Destroy() {
	sdl.Quit()
}
