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

package eventlog_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/joylog/eventlog"
	"github.com/jetsetilly/joylog/test"
)

type clock struct {
	ticks uint64
}

func (c *clock) Ticks() uint64 {
	return c.ticks
}

func TestAppend(t *testing.T) {
	clk := &clock{}
	b := eventlog.NewBuffer(clk)
	test.ExpectEquality(t, b.Len(), 0)

	e := b.Append(0, "Please plug in a joystick.")
	test.ExpectEquality(t, e.Ticks, 0)
	test.ExpectEquality(t, e.Device, 0)

	clk.ticks = 1500
	b.Append(3, "Joystick #3 ('Pad') added")

	clk.ticks = 1520
	b.Append(3, "Joystick #3 button 0 -> PRESSED")

	test.DemandEquality(t, b.Len(), 3)

	ents := b.Entries()
	test.ExpectEquality(t, ents[0].Message, "Please plug in a joystick.")
	test.ExpectEquality(t, ents[1].Message, "Joystick #3 ('Pad') added")
	test.ExpectEquality(t, ents[1].Ticks, 1500)
	test.ExpectEquality(t, ents[2].Device, 3)
	test.ExpectEquality(t, ents[2].Ticks, 1520)

	// modifying the copy does not affect the buffer
	ents[0].Message = "changed"
	b.Borrow(func(e []eventlog.LogEvent) {
		test.ExpectEquality(t, e[0].Message, "Please plug in a joystick.")
	})
}

func TestWriteAndTail(t *testing.T) {
	clk := &clock{}
	b := eventlog.NewBuffer(clk)

	w := &strings.Builder{}
	b.Write(w)
	test.ExpectEquality(t, w.String(), "")

	b.Append(0, "first")
	clk.ticks = 12345
	b.Append(1, "second")

	w.Reset()
	b.Write(w)
	test.ExpectEquality(t, w.String(), "[     0.000] first\n[    12.345] second\n")

	w.Reset()
	b.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "[    12.345] second\n")

	w.Reset()
	b.Tail(w, 100)
	test.ExpectEquality(t, w.String(), "[     0.000] first\n[    12.345] second\n")

	w.Reset()
	b.Tail(w, -1)
	test.ExpectEquality(t, w.String(), "")
}

func TestEcho(t *testing.T) {
	b := eventlog.NewBuffer(&clock{})

	var echoed []string
	b.SetEcho(func(e eventlog.LogEvent) {
		echoed = append(echoed, e.Message)
	})
	b.Append(0, "one")
	b.Append(0, "two")

	b.SetEcho(nil)
	b.Append(0, "three")

	test.DemandEquality(t, len(echoed), 2)
	test.ExpectEquality(t, echoed[0], "one")
	test.ExpectEquality(t, echoed[1], "two")
	test.ExpectEquality(t, b.Len(), 3)
}

func TestVisualise(t *testing.T) {
	b := eventlog.NewBuffer(&clock{})
	b.Append(2, "Joystick #2 removed")

	w := &strings.Builder{}
	b.Visualise(w)
	test.ExpectSuccess(t, strings.Contains(w.String(), "digraph"))
}
