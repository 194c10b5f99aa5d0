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

package terminal

import (
	"testing"

	"github.com/jetsetilly/joylog/eventlog"
	"github.com/jetsetilly/joylog/terminal/ansi"
	"github.com/jetsetilly/joylog/test"
	"github.com/jetsetilly/joylog/userinput"
)

func TestKeyEvent(t *testing.T) {
	test.ExpectEquality(t, keyEvent('q'), userinput.Event(userinput.EventQuit{}))
	test.ExpectEquality(t, keyEvent('Q'), userinput.Event(userinput.EventQuit{}))
	test.ExpectEquality(t, keyEvent('x'), nil)
	test.ExpectEquality(t, keyEvent('\n'), nil)
}

func TestEcho(t *testing.T) {
	tw := &test.CompareWriter{}

	echo := Echo(tw, false)
	echo(eventlog.LogEvent{Device: 3, Message: "Joystick #3 removed", Ticks: 2500})
	test.ExpectEquality(t, tw.String(), "[     2.500] Joystick #3 removed\n")

	tw.Clear()
	echo = Echo(tw, true)
	echo(eventlog.LogEvent{Device: 3, Message: "Joystick #3 removed", Ticks: 2500})
	test.ExpectEquality(t, tw.String(), ansi.DevicePen(3)+"[     2.500] Joystick #3 removed"+ansi.NormalPen+"\n")
}
