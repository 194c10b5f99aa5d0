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

// Package csvlog writes joystick events to a CSV file. The file has a single
// header row followed by one row per event:
//
//	Timestamp,JoystickID,EventType
//	2024-03-01 14:02:11.083,0,Please plug in a joystick.
//	2024-03-01 14:02:12.410,3,Joystick #3 ('Xbox Controller') added
//
// The timestamp is local wall-clock time to millisecond precision.
//
// The EventType field is free text and is written without quoting or
// escaping. A message containing a comma will appear to have more than three
// fields to a strict CSV reader. ParseRow() handles this by splitting only on
// the first two commas of a line.
//
// Every row is flushed to the underlying file before WriteRow() returns. If
// the program ends abruptly the file will contain every row written so far,
// although the final row might be incomplete.
package csvlog
