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

package ansi_test

import (
	"testing"

	"github.com/jetsetilly/joylog/terminal/ansi"
	"github.com/jetsetilly/joylog/test"
)

func TestPenBuild(t *testing.T) {
	p, err := ansi.PenBuild("red", false)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p, "\033[31m")

	p, err = ansi.PenBuild("Red", true)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p, "\033[91m")

	p, err = ansi.PenBuild("", false)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p, "\033[39m")

	_, err = ansi.PenBuild("purple", false)
	test.ExpectFailure(t, err)
}

func TestDevicePen(t *testing.T) {
	normal, _ := ansi.PenBuild("normal", true)
	test.ExpectEquality(t, ansi.DevicePen(0), normal)
	test.ExpectInequality(t, ansi.DevicePen(1), normal)
	test.ExpectInequality(t, ansi.DevicePen(1), ansi.DevicePen(2))

	// pens cycle but never return to the normal pen
	for id := 1; id < 100; id++ {
		test.ExpectInequality(t, ansi.DevicePen(id), normal)
	}
	test.ExpectEquality(t, ansi.DevicePen(1), ansi.DevicePen(7))
}
