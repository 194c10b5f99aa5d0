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
	"bufio"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jetsetilly/joylog/userinput"
)

// Header is the first line of every log file.
const Header = "Timestamp,JoystickID,EventType"

// TimestampLayout is the time.Format() layout of the timestamp field.
const TimestampLayout = "2006-01-02 15:04:05.000"

// Writer serialises events as CSV rows.
type Writer struct {
	out    *bufio.Writer
	closer io.Closer
	rows   int
}

// NewWriter creates a Writer for any io.Writer. The Close() function of the
// new Writer will not close the io.Writer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		out: bufio.NewWriter(w),
	}
}

// Create a new log file. An existing file of the same name will be truncated.
// The header is not written. Use WriteHeader() for that.
func Create(filename string) (*Writer, error) {
	f, err := os.Create(filename)
	if err != nil {
		return nil, fmt.Errorf("csvlog: %w", err)
	}
	w := NewWriter(f)
	w.closer = f
	return w, nil
}

// WriteHeader writes the column names. It should be called once, before any
// call to WriteRow().
func (w *Writer) WriteHeader() error {
	if _, err := w.out.WriteString(Header + "\n"); err != nil {
		return fmt.Errorf("csvlog: %w", err)
	}
	if err := w.out.Flush(); err != nil {
		return fmt.Errorf("csvlog: %w", err)
	}
	return nil
}

// WriteRow writes a single event. The message is written as-is.
func (w *Writer) WriteRow(when time.Time, id userinput.DeviceID, message string) error {
	_, err := fmt.Fprintf(w.out, "%s,%d,%s\n", when.Format(TimestampLayout), id, message)
	if err != nil {
		return fmt.Errorf("csvlog: %w", err)
	}
	if err := w.out.Flush(); err != nil {
		return fmt.Errorf("csvlog: %w", err)
	}
	w.rows++
	return nil
}

// Rows returns the number of rows successfully written, not counting the
// header.
func (w *Writer) Rows() int {
	return w.rows
}

// Close flushes any remaining output and closes the file if the Writer was
// created with Create().
func (w *Writer) Close() error {
	err := w.out.Flush()
	if w.closer != nil {
		if cerr := w.closer.Close(); err == nil {
			err = cerr
		}
		w.closer = nil
	}
	if err != nil {
		return fmt.Errorf("csvlog: %w", err)
	}
	return nil
}
