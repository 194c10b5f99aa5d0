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

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/jetsetilly/joylog/follow"
	"github.com/jetsetilly/joylog/logger"
	"github.com/jetsetilly/joylog/modalflag"
	"github.com/jetsetilly/joylog/paths"
	"github.com/jetsetilly/joylog/sdlinput"
	"github.com/jetsetilly/joylog/session"
	"github.com/jetsetilly/joylog/statsview"
	"github.com/jetsetilly/joylog/summary"
	"github.com/jetsetilly/joylog/terminal"
	"github.com/jetsetilly/joylog/userinput"
	"github.com/jetsetilly/joylog/version"
)

// exit values returned by launch()
const (
	exitOK        = 0
	exitInit      = 1
	exitArguments = 10
	exitMode      = 20
)

// the log files are always csv files
const logExt = "csv"

// #mainthread
func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

// launch parses the arguments and runs the selected mode. the return value
// is the exit status of the program.
//
// the LOG mode must run on the main thread because of SDL.
func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("LOG", "TAIL", "SUMMARY", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitArguments
	}

	switch md.Mode() {
	case "LOG":
		err = logMode(md, output)

	case "TAIL":
		err = tailMode(md, output)

	case "SUMMARY":
		err = summaryMode(md, output)

	case "VERSION":
		err = versionMode(md, output)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		if errors.Is(err, session.ErrInit) {
			return exitInit
		}
		return exitMode
	}

	return exitOK
}

func logMode(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	opts := session.DefaultOptions()

	dir := md.AddString("dir", opts.Dir, "directory in which to create the log file")
	cooldown := md.AddDuration("cooldown", opts.Cooldown, "minimum period between logged axis events")
	echo := md.AddBool("echo", true, "print events to the terminal as they are logged")
	colour := md.AddBool("colour", true, "use colour when echoing events")
	quitKey := md.AddBool("quitkey", true, "quit when the q key is pressed")
	stats := md.AddBool("statsview", false, "run stats server")
	memvizFile := md.AddString("memviz", "", "write graphviz dot file of the event log on exit")
	log := md.AddBool("log", false, "echo debugging log to stderr")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	// set debugging log echo
	if *log {
		logger.SetEcho(os.Stderr)
	} else {
		logger.SetEcho(nil)
	}

	if *stats {
		statsview.Launch(output, statsview.DefaultAddress)
	}

	opts.Dir = *dir
	opts.Cooldown = *cooldown
	if *echo {
		opts.Echo = terminal.Echo(output, *colour)
	}

	sess := session.NewSession(opts)

	err = sess.Start(func() (session.Platform, error) {
		// returning a nil *sdlinput.Platform as a session.Platform would
		// produce a non-nil interface
		plt, err := sdlinput.NewPlatform()
		if err != nil {
			return nil, err
		}
		return plt, nil
	})
	if err != nil {
		return err
	}

	extra := make(chan userinput.Event, 4)
	sess.SetExtraEvents(extra)

	// #ctrlc ends the session in the same way as a quit event from SDL
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case <-intChan:
			select {
			case extra <- userinput.EventQuit{}:
			case <-done:
			}
		case <-done:
		}
	}()

	if *quitKey {
		keys, err := terminal.OpenKeys(terminal.DefaultDevice, extra)
		if err != nil {
			logger.Log(logger.Allow, "joylog", err)
		} else {
			defer keys.Close()
		}
	}

	err = sess.Run()
	if err != nil {
		return err
	}

	if *memvizFile != "" {
		f, err := os.Create(*memvizFile)
		if err != nil {
			return err
		}
		sess.Buffer().Visualise(f)
		if err := f.Close(); err != nil {
			return err
		}
	}

	if sess.Filename() != "" {
		fmt.Fprintf(output, "! events logged to %s\n", sess.Filename())
	}

	return nil
}

func tailMode(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	dir := md.AddString("dir", session.DefaultOptions().Dir, "directory to search for the latest log file")
	follows := md.AddBool("follow", true, "wait for new events to be logged")
	poll := md.AddBool("poll", false, "poll the file for changes rather than use file notifications")
	colour := md.AddBool("colour", true, "use colour when printing events")

	md.AdditionalHelp("the latest log file is used if no file is specified")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	var filename string

	switch len(md.RemainingArgs()) {
	case 0:
		filename = paths.LatestLogFilename(*dir, session.DefaultOptions().Base, logExt)
		if filename == "" {
			return fmt.Errorf("no log file found in %s", *dir)
		}
	case 1:
		filename = md.GetArg(0)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	done := make(chan struct{})

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	go func() {
		<-intChan
		close(done)
	}()

	return follow.Follow(filename, output, done, follow.Options{
		Follow: *follows,
		Poll:   *poll,
		Colour: *colour,
	})
}

func summaryMode(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	dir := md.AddString("dir", session.DefaultOptions().Dir, "directory to search for the latest log file")

	md.AdditionalHelp("the latest log file is used if no file is specified")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	filenames := md.RemainingArgs()
	if len(filenames) == 0 {
		fn := paths.LatestLogFilename(*dir, session.DefaultOptions().Base, logExt)
		if fn == "" {
			return fmt.Errorf("no log file found in %s", *dir)
		}
		filenames = []string{fn}
	}

	for i, fn := range filenames {
		if i > 0 {
			fmt.Fprintln(output)
		}

		f, err := os.Open(fn)
		if err != nil {
			return err
		}

		s, err := summary.Summarise(f)
		_ = f.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", fn, err)
		}

		fmt.Fprintf(output, "== %s\n", fn)
		s.Write(output)
	}

	return nil
}

func versionMode(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	v, r, _ := version.Version()
	fmt.Fprintf(output, "%s %s\n", version.ApplicationName, v)
	if *revision {
		fmt.Fprintln(output, r)
	}

	return nil
}
