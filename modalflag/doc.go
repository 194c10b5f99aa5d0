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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes and
// allows different flags for each mode.
//
// Arguments are given to the Modes type with NewArgs() and then parsed with
// Parse(), which takes no arguments:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("LOG", "TAIL", "SUMMARY")
//	_, _ = md.Parse()
//
// The first sub-mode is the default. The mode selected by the user is
// returned by the Mode() function. Flags for that mode are added after a call
// to NewMode() and before the next call to Parse():
//
//	switch md.Mode() {
//	case "LOG":
//		md.NewMode()
//		dir := md.AddString("dir", "logs", "directory for log files")
//		_, _ = md.Parse()
//	}
//
// Because flags are parsed separately for every mode, a flag only applies to
// the mode it was added for. If a flag is not recognised and sub-modes have
// been specified then the default sub-mode is selected and the flag is parsed
// again as part of that mode. For example, these are equivalent:
//
//	joylog log -echo
//	joylog -echo
//
// Non-flag arguments that remain after parsing are returned by
// RemainingArgs() and GetArg().
//
// A help flag (-help or -h) is handled automatically and prints the flags and
// sub-modes for the current mode.
package modalflag
