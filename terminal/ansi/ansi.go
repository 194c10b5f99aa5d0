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

// Package ansi contains the CSI sequences used to colour terminal output.
package ansi

import (
	"fmt"
	"strings"
)

const (
	colBlack   = 0
	colRed     = 1
	colGreen   = 2
	colYellow  = 3
	colBlue    = 4
	colMagenta = 5
	colCyan    = 6
	colWhite   = 7
	colDefault = 9
)

const (
	targetPen       = 3
	targetBrightPen = 9
)

const attrDim = 2

// NormalPen is the CSI sequence for regular text.
const NormalPen = "\033[0m"

// DimPen is the CSI sequence for faint text.
var DimPen = fmt.Sprintf("\033[%dm", attrDim)

// PenBuild creates the CSI sequence for the named pen colour. Bright pens use
// the high intensity colour range.
func PenBuild(pen string, bright bool) (string, error) {
	penType := targetPen
	if bright {
		penType = targetBrightPen
	}

	var col int
	switch strings.ToUpper(pen) {
	case "BLACK":
		col = colBlack
	case "RED":
		col = colRed
	case "GREEN":
		col = colGreen
	case "YELLOW":
		col = colYellow
	case "BLUE":
		col = colBlue
	case "MAGENTA":
		col = colMagenta
	case "CYAN":
		col = colCyan
	case "WHITE":
		col = colWhite
	case "NORMAL", "":
		col = colDefault
	default:
		return "", fmt.Errorf("unknown ANSI pen (%s)", pen)
	}

	return fmt.Sprintf("\033[%d%dm", penType, col), nil
}

// the colours used by DevicePen() in order
var devicePens []string

func init() {
	for _, c := range []string{"normal", "green", "yellow", "cyan", "magenta", "blue", "red"} {
		p, err := PenBuild(c, true)
		if err != nil {
			panic(err)
		}
		devicePens = append(devicePens, p)
	}
}

// DevicePen returns a pen for the device ID. The same ID always returns the
// same pen. ID zero (messages not related to a device) is the normal pen.
func DevicePen(id int) string {
	if id < 0 {
		id = -id
	}
	if id == 0 {
		return devicePens[0]
	}
	return devicePens[1+(id-1)%(len(devicePens)-1)]
}
