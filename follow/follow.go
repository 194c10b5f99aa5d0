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

package follow

import (
	"errors"
	"fmt"
	"io"

	"github.com/jetsetilly/joylog/csvlog"
	"github.com/jetsetilly/joylog/logger"
	"github.com/jetsetilly/joylog/terminal/ansi"
	"github.com/nxadm/tail"
)

// Options for the Follow() function.
type Options struct {
	// continue waiting for new rows when the end of the file is reached
	Follow bool

	// use the stat() system call rather than file notification to detect
	// changes to the file
	Poll bool

	// colour output with ANSI pens
	Colour bool
}

// Follow prints the rows of the log file to the io.Writer. If Options.Follow
// is false then Follow() returns when the end of the file is reached.
// Otherwise it will return when the done channel is closed.
func Follow(filename string, output io.Writer, done <-chan struct{}, opts Options) error {
	t, err := tail.TailFile(filename, tail.Config{
		Follow:    opts.Follow,
		MustExist: true,
		Poll:      opts.Poll,
		Logger:    tail.DiscardingLogger,
	})
	if err != nil {
		return fmt.Errorf("follow: %w", err)
	}
	defer t.Cleanup()

	for {
		select {
		case <-done:
			if err := t.Stop(); err != nil {
				return fmt.Errorf("follow: %w", err)
			}
			return nil

		case line, ok := <-t.Lines:
			if !ok {
				return nil
			}
			if line.Err != nil {
				logger.Log(logger.Allow, "follow", line.Err)
				continue
			}
			printLine(output, line.Text, opts.Colour)
		}
	}
}

func printLine(output io.Writer, text string, colour bool) {
	r, err := csvlog.ParseRow(text)
	if err != nil {
		if errors.Is(err, csvlog.ErrHeader) {
			return
		}
		if colour {
			fmt.Fprintf(output, "%s%s%s\n", ansi.DimPen, text, ansi.NormalPen)
		} else {
			fmt.Fprintln(output, text)
		}
		return
	}

	s := fmt.Sprintf("%s %4d  %s", r.Timestamp.Format("15:04:05.000"), r.Device, r.Message)
	if colour {
		fmt.Fprintf(output, "%s%s%s\n", ansi.DevicePen(int(r.Device)), s, ansi.NormalPen)
	} else {
		fmt.Fprintln(output, s)
	}
}
