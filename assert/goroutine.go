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

// Package assert contains checks that are useful when a resource must only be
// used from a single goroutine. The input subsystem is an example of such a
// resource because SDL must be serviced from the thread that initialised it.
package assert

import (
	"bytes"
	"runtime"
	"strconv"
)

// GoroutineID returns an identifier for the current goroutine. The result is
// different between goroutines and consistent for a given goroutine. It
// should only be used for checking ownership and never for control flow
// between goroutines.
func GoroutineID() uint64 {
	b := make([]byte, 64)
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	b = b[:bytes.IndexByte(b, ' ')]
	n, _ := strconv.ParseUint(string(b), 10, 64)
	return n
}

// Owner records the goroutine that created it.
type Owner struct {
	id uint64
}

// NewOwner returns an Owner for the current goroutine.
func NewOwner() Owner {
	return Owner{id: GoroutineID()}
}

// IsOwner returns true if the current goroutine is the owner.
func (o Owner) IsOwner() bool {
	return o.id != 0 && o.id == GoroutineID()
}
