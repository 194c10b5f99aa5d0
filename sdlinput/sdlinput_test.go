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
	"testing"

	"github.com/jetsetilly/joylog/test"
	"github.com/jetsetilly/joylog/userinput"
	"github.com/veandco/go-sdl2/sdl"
)

func TestTranslate(t *testing.T) {
	// instance IDs are device index plus 100 to make sure that the two
	// numbers are not confused
	plt := newPlatform(func(index int) userinput.DeviceID {
		return userinput.DeviceID(index + 100)
	})

	test.ExpectEquality(t, plt.translate(&sdl.QuitEvent{}), userinput.Event(userinput.EventQuit{}))

	ev := plt.translate(&sdl.JoyDeviceAddedEvent{Which: 2})
	test.ExpectEquality(t, ev, userinput.Event(userinput.EventDeviceAdded{ID: 102}))
	test.ExpectEquality(t, plt.index[102], 2)

	ev = plt.translate(&sdl.JoyAxisEvent{Which: 102, Axis: 3, Value: -32768})
	test.ExpectEquality(t, ev, userinput.Event(userinput.EventAxis{ID: 102, Axis: 3, Value: -32768}))

	ev = plt.translate(&sdl.JoyButtonEvent{Which: 102, Button: 7, State: 1})
	test.ExpectEquality(t, ev, userinput.Event(userinput.EventButton{ID: 102, Button: 7, Down: true}))

	ev = plt.translate(&sdl.JoyButtonEvent{Which: 102, Button: 7, State: 0})
	test.ExpectEquality(t, ev, userinput.Event(userinput.EventButton{ID: 102, Button: 7, Down: false}))

	ev = plt.translate(&sdl.JoyDeviceRemovedEvent{Which: 102})
	test.ExpectEquality(t, ev, userinput.Event(userinput.EventDeviceRemoved{ID: 102}))
	_, ok := plt.index[102]
	test.ExpectFailure(t, ok)

	// events that are not handled
	test.ExpectEquality(t, plt.translate(&sdl.JoyHatEvent{Which: 102}), nil)
	test.ExpectEquality(t, plt.translate(nil), nil)
}

func TestOpenUnknown(t *testing.T) {
	plt := newPlatform(func(index int) userinput.DeviceID {
		return userinput.DeviceID(index)
	})
	_, err := plt.Open(5)
	test.ExpectFailure(t, err)
}

func TestTicksWrap(t *testing.T) {
	plt := newPlatform(func(index int) userinput.DeviceID {
		return userinput.DeviceID(index)
	})

	var now uint32
	plt.ticks = func() uint32 {
		return now
	}

	now = 0xfffffff0
	test.ExpectEquality(t, plt.Ticks(), uint64(0xfffffff0))

	now = 0x10
	test.ExpectEquality(t, plt.Ticks(), uint64(0x100000010))

	// no wrap if the counter has not changed
	test.ExpectEquality(t, plt.Ticks(), uint64(0x100000010))

	now = 0xffffff00
	test.ExpectEquality(t, plt.Ticks(), uint64(0x1ffffff00))
	now = 0x5
	test.ExpectEquality(t, plt.Ticks(), uint64(0x200000005))
}
