// This file is part of RV32Bench.
//
// RV32Bench is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// RV32Bench is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with RV32Bench.  If not, see <https://www.gnu.org/licenses/>.

// Package logger is the central log for the harness. Log entries carry a tag
// identifying the originating package and a detail string. Repeated entries
// are folded into a single line.
//
// The log is kept in memory until written with Write() or Tail(). SetEcho()
// additionally forwards new entries to an io.Writer as they arrive, which
// the command line program uses to keep the user informed during a run.
package logger

import (
	"io"
)

// only allowing one central log for the entire application. there's no need
// for more than one.
var central *logger

// maximum number of entries in the central logger.
const maxCentral = 256

func init() {
	central = newLogger(maxCentral)
}

// Log adds an entry to the central logger.
func Log(tag, detail string) {
	central.log(tag, detail)
}

// Logf adds a formatted entry to the central logger.
func Logf(tag, detail string, args ...interface{}) {
	central.logf(tag, detail, args...)
}

// Clear all entries from the central logger.
func Clear() {
	central.clear()
}

// Write contents of the central logger to the io.Writer.
func Write(output io.Writer) {
	central.write(output)
}

// Tail writes the last N entries of the central logger to the io.Writer.
func Tail(output io.Writer, number int) {
	central.tail(output, number)
}

// SetEcho forwards every future entry to the io.Writer as it arrives. A nil
// argument turns echoing off.
func SetEcho(output io.Writer) {
	central.echo = output
}
