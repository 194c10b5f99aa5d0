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
	"errors"
	"fmt"
	"io"

	"github.com/jetsetilly/joylog/logger"
	"github.com/jetsetilly/joylog/userinput"
	"github.com/pkg/term"
)

// DefaultDevice is the controlling terminal.
const DefaultDevice = "/dev/tty"

// Keys reads key presses from a terminal device.
type Keys struct {
	t      *term.Term
	events chan<- userinput.Event
}

// OpenKeys opens the terminal device and starts reading key presses. Key
// presses that have a meaning are sent to the events channel. The channel
// should be buffered.
func OpenKeys(device string, events chan<- userinput.Event) (*Keys, error) {
	t, err := term.Open(device, term.CBreakMode)
	if err != nil {
		return nil, fmt.Errorf("terminal: %w", err)
	}

	k := &Keys{
		t:      t,
		events: events,
	}

	go k.read()

	return k, nil
}

func (k *Keys) read() {
	b := make([]byte, 1)
	for {
		n, err := k.t.Read(b)
		if err != nil {
			if !errors.Is(err, io.EOF) {
				logger.Log(logger.Allow, "terminal", err)
			}
			return
		}
		if n == 0 {
			continue
		}

		if ev := keyEvent(b[0]); ev != nil {
			select {
			case k.events <- ev:
			default:
				logger.Log(logger.Allow, "terminal", "dropped key event")
			}
		}
	}
}

// keyEvent returns the event for the key or nil if the key has no meaning.
func keyEvent(key byte) userinput.Event {
	switch key {
	case 'q', 'Q':
		return userinput.EventQuit{}
	}
	return nil
}

// Close restores the terminal to the mode it was in before OpenKeys() was
// called.
func (k *Keys) Close() error {
	if err := k.t.Restore(); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := k.t.Close(); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	return nil
}
