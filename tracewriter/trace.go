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

// Package tracewriter records the retired instruction trace: one nine-digit
// lowercase hexadecimal line per trace word, wide enough for the core's
// 36-bit trace bus. The fixed width keeps the file grep- and diff-friendly
// for downstream analysis.
package tracewriter

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/rv32bench/rv32bench/curated"
)

// Error patterns returned by the tracewriter package. Compare with
// curated.Is().
const (
	NotCreated = "trace: %v"
	WriteError = "trace: %v"
)

// Trace records retired instruction trace words. Implements the
// sim.TraceSink interface.
type Trace struct {
	w *bufio.Writer

	// closer is nil when writing to a caller-owned io.Writer
	closer io.Closer

	ended bool
}

// New is the preferred method of initialisation for the Trace type when the
// destination is a caller-owned writer.
func New(w io.Writer) *Trace {
	return &Trace{
		w: bufio.NewWriter(w),
	}
}

// Create opens the named file and prepares a trace recording into it. The
// file is closed by End().
func Create(filename string) (*Trace, error) {
	f, err := os.Create(filename)
	if err != nil {
		return nil, curated.Errorf(NotCreated, err)
	}

	t := New(f)
	t.closer = f
	return t, nil
}

// Record implements the sim.TraceSink interface.
func (t *Trace) Record(data uint64) {
	if t.ended {
		return
	}
	fmt.Fprintf(t.w, "%09x\n", data)
}

// End implements the sim.TraceSink interface. The recording is flushed and
// the underlying file, if any, closed. Calling End() more than once is
// allowed; only the first call does anything.
func (t *Trace) End() (rerr error) {
	if t.ended {
		return nil
	}
	t.ended = true

	if err := t.w.Flush(); err != nil {
		rerr = curated.Errorf(WriteError, err)
	}

	if t.closer != nil {
		if err := t.closer.Close(); err != nil && rerr == nil {
			rerr = curated.Errorf(WriteError, err)
		}
	}

	return rerr
}
