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

package paths

import (
	"fmt"
	"os"
	"path"
)

// NextLogFilename returns the first filename in the sequence:
//
//	dir/base.ext, dir/base1.ext, dir/base2.ext, ...
//
// that does not already exist. The directory is not created if it does not
// exist. In that case the first filename in the sequence is returned and the
// failure will happen when the caller tries to open it.
//
// The ext argument should not include the leading dot.
func NextLogFilename(dir string, base string, ext string) string {
	for n := 0; ; n++ {
		pth := sequenceName(dir, base, ext, n)
		if _, err := os.Stat(pth); err != nil {
			return pth
		}
	}
}

// LatestLogFilename returns the last filename in the NextLogFilename()
// sequence that exists. The empty string is returned if no file exists.
func LatestLogFilename(dir string, base string, ext string) string {
	var latest string
	for n := 0; ; n++ {
		pth := sequenceName(dir, base, ext, n)
		if _, err := os.Stat(pth); err != nil {
			return latest
		}
		latest = pth
	}
}

func sequenceName(dir string, base string, ext string, n int) string {
	if n == 0 {
		return path.Join(dir, fmt.Sprintf("%s.%s", base, ext))
	}
	return path.Join(dir, fmt.Sprintf("%s%d.%s", base, n, ext))
}
