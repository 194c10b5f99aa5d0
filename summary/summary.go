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

package summary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/jetsetilly/joylog/csvlog"
	"github.com/jetsetilly/joylog/logger"
	"github.com/jetsetilly/joylog/userinput"
)

// Category of a logged event.
type Category int

// List of valid Category values.
const (
	Other Category = iota
	Connection
	Axis
	Button
	numCategories
)

func (c Category) String() string {
	switch c {
	case Connection:
		return "connection"
	case Axis:
		return "axis"
	case Button:
		return "button"
	}
	return "other"
}

// Categorise returns the category of the message. Connection messages are
// checked first because a device name may contain any text.
func Categorise(message string) Category {
	if !strings.HasPrefix(message, "Joystick #") {
		return Other
	}

	switch {
	case strings.HasSuffix(message, "') added"):
		return Connection
	case strings.Contains(message, " added, but not opened: "):
		return Connection
	case strings.HasSuffix(message, " removed"):
		return Connection
	case strings.Contains(message, " axis "):
		return Axis
	case strings.Contains(message, " button "):
		return Button
	}
	return Other
}

// MaxGap is the longest period between two rows that will be counted in the
// same Span. Clock changes during a session, for example a clock being set
// by NTP, will start a new Span.
const MaxGap = time.Minute

// Span is a period of the session in which no two consecutive rows are
// more than MaxGap apart.
type Span struct {
	// timestamp of the first row in the span
	Start time.Time

	// number of rows in each second of the span, starting with Start
	PerSecond []int
}

// Summary of a log file.
type Summary struct {
	// number of rows successfully parsed
	Rows int

	// number of lines that could not be parsed
	Skipped int

	// earliest and latest timestamp
	First time.Time
	Last  time.Time

	// number of rows for each device
	Devices map[userinput.DeviceID]int

	// number of rows in each category
	Categories [numCategories]int

	// the session divided into spans, in time order
	Spans []Span
}

// Summarise reads a log file and returns a Summary of the contents.
func Summarise(r io.Reader) (Summary, error) {
	s := Summary{
		Devices: make(map[userinput.DeviceID]int),
	}

	var rows []csvlog.Row

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if scanner.Text() == "" {
			continue
		}

		row, err := csvlog.ParseRow(scanner.Text())
		if err != nil {
			if !errors.Is(err, csvlog.ErrHeader) {
				logger.Log(logger.Allow, "summary", err)
				s.Skipped++
			}
			continue
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return Summary{}, fmt.Errorf("summary: %w", err)
	}

	if len(rows) == 0 {
		return s, nil
	}

	s.Rows = len(rows)
	s.First = rows[0].Timestamp
	s.Last = rows[0].Timestamp

	for _, row := range rows {
		if row.Timestamp.Before(s.First) {
			s.First = row.Timestamp
		}
		if row.Timestamp.After(s.Last) {
			s.Last = row.Timestamp
		}
		s.Devices[row.Device]++
		s.Categories[Categorise(row.Message)]++
	}

	slices.SortStableFunc(rows, func(a, b csvlog.Row) int {
		return a.Timestamp.Compare(b.Timestamp)
	})

	var span *Span
	var prev time.Time
	for _, row := range rows {
		if span == nil || row.Timestamp.Sub(prev) > MaxGap {
			s.Spans = append(s.Spans, Span{Start: row.Timestamp})
			span = &s.Spans[len(s.Spans)-1]
		}
		prev = row.Timestamp

		// a span grows by no more than MaxGap for each row
		sec := int(row.Timestamp.Sub(span.Start) / time.Second)
		for len(span.PerSecond) <= sec {
			span.PerSecond = append(span.PerSecond, 0)
		}
		span.PerSecond[sec]++
	}

	return s, nil
}

// Duration of the logging session.
func (s Summary) Duration() time.Duration {
	return s.Last.Sub(s.First)
}

// Peak returns the highest number of events in a single second and the start
// of the second in which it first occurred.
func (s Summary) Peak() (int, time.Time) {
	var peak int
	var when time.Time
	for _, sp := range s.Spans {
		for i, n := range sp.PerSecond {
			if n > peak {
				peak = n
				when = sp.Start.Add(time.Duration(i) * time.Second)
			}
		}
	}
	return peak, when
}

// Write the summary to the io.Writer.
func (s Summary) Write(output io.Writer) {
	fmt.Fprintf(output, "rows: %d\n", s.Rows)
	if s.Skipped > 0 {
		fmt.Fprintf(output, "skipped: %d\n", s.Skipped)
	}
	if s.Rows == 0 {
		return
	}

	fmt.Fprintf(output, "duration: %s\n", s.Duration())

	peak, when := s.Peak()
	fmt.Fprintf(output, "peak: %d events at %s\n", peak, when.Format(csvlog.TimestampLayout))

	for c := Category(0); c < numCategories; c++ {
		fmt.Fprintf(output, "%s: %d\n", c, s.Categories[c])
	}

	ids := make([]userinput.DeviceID, 0, len(s.Devices))
	for id := range s.Devices {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		fmt.Fprintf(output, "device %d: %d\n", id, s.Devices[id])
	}

	for _, sp := range s.Spans {
		fmt.Fprintf(output, "events per second from %s:\n", sp.Start.Format(csvlog.TimestampLayout))
		for i, n := range sp.PerSecond {
			fmt.Fprintf(output, "%6d %s\n", i, strings.Repeat("*", n))
		}
	}
}
