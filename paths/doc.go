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

// Package paths contains functions to help with the naming of files written
// by the program.
//
// NextLogFilename() finds the first unused name in a numbered sequence of log
// files. The search is done by checking for the existence of each candidate.
// No attempt is made to create the file atomically, so two instances of the
// program started at the same time may select the same name.
package paths
