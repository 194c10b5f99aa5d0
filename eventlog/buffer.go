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

package eventlog

import (
	"fmt"
	"io"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/joylog/userinput"
)

// Clock returns the number of milliseconds since the input subsystem was
// started. Values never decrease.
type Clock interface {
	Ticks() uint64
}

// LogEvent is a single entry in the Buffer.
type LogEvent struct {
	Device  userinput.DeviceID
	Message string
	Ticks   uint64
}

func (e LogEvent) String() string {
	return fmt.Sprintf("[%6d.%03d] %s", e.Ticks/1000, e.Ticks%1000, e.Message)
}

// Buffer is an append-only list of LogEvent.
type Buffer struct {
	clock   Clock
	entries []LogEvent

	// called with every new entry if not nil
	echo func(LogEvent)
}

// NewBuffer is the preferred method of initialisation for the Buffer type.
func NewBuffer(clock Clock) *Buffer {
	return &Buffer{
		clock:   clock,
		entries: make([]LogEvent, 0, 64),
	}
}

// Append a new message. The entry is timestamped with the current value of
// the Clock and is returned.
func (b *Buffer) Append(id userinput.DeviceID, message string) LogEvent {
	e := LogEvent{
		Device:  id,
		Message: message,
		Ticks:   b.clock.Ticks(),
	}
	b.entries = append(b.entries, e)

	if b.echo != nil {
		b.echo(e)
	}

	return e
}

// SetEcho sets the function to be called for every new entry. A nil value
// turns echoing off.
func (b *Buffer) SetEcho(echo func(LogEvent)) {
	b.echo = echo
}

// Len returns the number of entries.
func (b *Buffer) Len() int {
	return len(b.entries)
}

// Entries returns a copy of every entry in insertion order.
func (b *Buffer) Entries() []LogEvent {
	c := make([]LogEvent, len(b.entries))
	copy(c, b.entries)
	return c
}

// Borrow gives the function access to the entries without copying. The
// function must not retain or modify the slice.
func (b *Buffer) Borrow(f func([]LogEvent)) {
	f(b.entries)
}

// Write every entry to the io.Writer, one per line.
func (b *Buffer) Write(output io.Writer) {
	b.Tail(output, len(b.entries))
}

// Tail writes the last N entries to the io.Writer.
func (b *Buffer) Tail(output io.Writer, number int) {
	if number > len(b.entries) {
		number = len(b.entries)
	}
	if number < 0 {
		number = 0
	}
	for _, e := range b.entries[len(b.entries)-number:] {
		io.WriteString(output, e.String())
		io.WriteString(output, "\n")
	}
}

// Visualise writes a graphviz description of the buffer's entries to the
// io.Writer.
func (b *Buffer) Visualise(output io.Writer) {
	memviz.Map(output, &b.entries)
}
