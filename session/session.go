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

package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/jetsetilly/joylog/assert"
	"github.com/jetsetilly/joylog/csvlog"
	"github.com/jetsetilly/joylog/dispatcher"
	"github.com/jetsetilly/joylog/eventlog"
	"github.com/jetsetilly/joylog/logger"
	"github.com/jetsetilly/joylog/paths"
	"github.com/jetsetilly/joylog/userinput"
)

// Platform is the input subsystem. The sdlinput package provides the
// implementation used by the program.
type Platform interface {
	// Poll returns the next event or nil if there is no event pending. The
	// function may block for a short period while waiting for an event.
	Poll() userinput.Event

	// Open the device. The returned error should describe why the device
	// could not be opened.
	Open(id userinput.DeviceID) (userinput.Device, error)

	// Ticks returns the number of milliseconds since the platform was
	// created.
	Ticks() uint64

	// Destroy releases the platform. It is called once, at the end of the
	// session.
	Destroy()
}

// State of the session.
type State int

// List of valid State values.
const (
	StateUninitialised State = iota
	StateRunning
	StateTerminated
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateUninitialised:
		return "uninitialised"
	case StateRunning:
		return "running"
	case StateTerminated:
		return "terminated"
	case StateFailed:
		return "failed"
	}
	return "unknown state"
}

// Sentinel errors.
var (
	ErrInit       = errors.New("input subsystem initialisation failed")
	ErrNotRunning = errors.New("session is not running")
	ErrStarted    = errors.New("session has already been started")
	ErrNotOwner   = errors.New("session must be run by the goroutine that started it")
)

// StartupMessage is the first entry in every session.
const StartupMessage = "Please plug in a joystick."

// Options for a new session.
type Options struct {
	// directory in which the log file is created. the directory must exist
	Dir string

	// base name of the log file. the file extension is always csv
	Base string

	// the cooldown period for axis events
	Cooldown time.Duration

	// called for every new entry in the eventlog.Buffer. can be nil
	Echo func(eventlog.LogEvent)
}

// DefaultOptions returns the options used by the program when no command
// line flags are specified.
func DefaultOptions() Options {
	return Options{
		Dir:      "logs",
		Base:     "log",
		Cooldown: dispatcher.DefaultCooldown,
	}
}

// Session is a single run of the logger.
type Session struct {
	opts  Options
	state State

	platform Platform
	buffer   *eventlog.Buffer
	disp     *dispatcher.Dispatcher

	// csv is nil if the log file could not be opened
	csv      *csvlog.Writer
	filename string

	extra <-chan userinput.Event

	// the goroutine that called Start()
	owner assert.Owner
}

// NewSession is the preferred method of initialisation for the Session type.
func NewSession(opts Options) *Session {
	return &Session{
		opts:  opts,
		state: StateUninitialised,
	}
}

// State returns the current state of the session.
func (s *Session) State() State {
	return s.state
}

// Buffer returns the in-memory event log. It is nil until the session has
// been started successfully.
func (s *Session) Buffer() *eventlog.Buffer {
	return s.buffer
}

// Filename returns the name of the log file being written. It is empty if no
// log file could be opened.
func (s *Session) Filename() string {
	return s.filename
}

// SetExtraEvents adds a source of events other than the platform.
func (s *Session) SetExtraEvents(extra <-chan userinput.Event) {
	s.extra = extra
}

// Start the session with the platform returned by the create function. An
// error from the create function moves the session to StateFailed and the
// returned error will wrap ErrInit.
func (s *Session) Start(create func() (Platform, error)) error {
	if s.state != StateUninitialised {
		return ErrStarted
	}

	plt, err := create()
	if err != nil {
		s.state = StateFailed
		logger.Log(logger.Allow, "session", err)
		return fmt.Errorf("%w: %w", ErrInit, err)
	}

	s.owner = assert.NewOwner()
	s.platform = plt
	s.buffer = eventlog.NewBuffer(plt)
	s.buffer.SetEcho(s.opts.Echo)
	s.disp = dispatcher.NewDispatcher(plt, plt, s.buffer, nil)
	s.disp.SetCooldown(s.opts.Cooldown)

	fn := paths.NextLogFilename(s.opts.Dir, s.opts.Base, "csv")
	if err := s.openLog(fn); err != nil {
		logger.Logf(logger.Allow, "session", "failed to open log file: %v", err)
		s.disp.Record(userinput.NoDevice, "Failed to open log file %s", fn)
	} else {
		logger.Logf(logger.Allow, "session", "logging to %s", fn)
	}

	s.disp.Record(userinput.NoDevice, StartupMessage)
	s.state = StateRunning

	return nil
}

func (s *Session) openLog(fn string) error {
	w, err := csvlog.Create(fn)
	if err != nil {
		return err
	}

	if err := w.WriteHeader(); err != nil {
		_ = w.Close()
		return err
	}

	s.csv = w
	s.filename = fn
	s.disp.SetRowWriter(w)

	return nil
}

// Run the session until the dispatcher signals that it should stop. Run must
// be called from the same goroutine that called Start().
func (s *Session) Run() error {
	if s.state != StateRunning {
		return ErrNotRunning
	}
	if !s.owner.IsOwner() {
		return ErrNotOwner
	}

	for s.state == StateRunning {
		var ev userinput.Event

		select {
		case ev = <-s.extra:
		default:
			ev = s.platform.Poll()
		}

		if ev == nil {
			continue
		}

		if s.disp.Dispatch(ev) == dispatcher.Stop {
			s.end()
		}
	}

	return nil
}

// end the session and release all resources.
func (s *Session) end() {
	s.disp.Close()

	if s.csv != nil {
		logger.Logf(logger.Allow, "session", "%d rows written to %s", s.csv.Rows(), s.filename)
		if err := s.csv.Close(); err != nil {
			logger.Log(logger.Allow, "session", err)
		}
		s.csv = nil
		s.disp.SetRowWriter(nil)
	}

	s.platform.Destroy()
	s.state = StateTerminated
}
