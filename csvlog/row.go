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

package csvlog

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jetsetilly/joylog/userinput"
)

// Sentinel errors returned by ParseRow().
var (
	ErrHeader    = errors.New("header row")
	ErrMalformed = errors.New("malformed row")
)

// Row is a single parsed line from a log file.
type Row struct {
	Timestamp time.Time
	Device    userinput.DeviceID
	Message   string
}

// ParseRow parses a line from a log file. The line should not include the
// trailing newline. Timestamps are interpreted in local time.
//
// The header line returns ErrHeader.
func ParseRow(line string) (Row, error) {
	line = strings.TrimRight(line, "\r\n")

	if line == Header {
		return Row{}, ErrHeader
	}

	f := strings.SplitN(line, ",", 3)
	if len(f) != 3 {
		return Row{}, fmt.Errorf("%w: expected three fields: %q", ErrMalformed, line)
	}

	ts, err := time.ParseInLocation(TimestampLayout, f[0], time.Local)
	if err != nil {
		return Row{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	id, err := strconv.ParseInt(f[1], 10, 32)
	if err != nil {
		return Row{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	return Row{
		Timestamp: ts,
		Device:    userinput.DeviceID(id),
		Message:   f[2],
	}, nil
}

func (r Row) String() string {
	return fmt.Sprintf("%s,%d,%s", r.Timestamp.Format(TimestampLayout), r.Device, r.Message)
}
