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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The ExpectEquality(), ExpectSuccess() and ExpectFailure() functions report
// an error through the testing.T instance and allow the test to continue. The
// Demand*() variants of the same functions stop the test immediately.
//
// The "success" and "failure" functions understand the bool and error types.
// A bool value of true is a success and an error value of nil is a success.
//
// The CompareWriter type is an implementation of io.Writer that can be used
// to collect output and to compare it against an expected string.
package test
