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

// Package vcdwriter records pin snapshots in Value Change Dump format, the
// format every waveform viewer understands. The first recorded snapshot is
// dumped in full; subsequent snapshots write only the signals that changed.
package vcdwriter

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/rv32bench/rv32bench/curated"
	"github.com/rv32bench/rv32bench/sim"
)

// Error patterns returned by the vcdwriter package. Compare with
// curated.Is().
const (
	NotCreated = "vcd: %v"
	WriteError = "vcd: %v"
)

// single character signal identifiers
const (
	idClock      = "c"
	idResetn     = "r"
	idTrap       = "t"
	idTraceValid = "v"
	idTraceData  = "d"
)

// VCD records pin snapshots as a Value Change Dump. Implements the
// sim.WaveformSink interface.
type VCD struct {
	w *bufio.Writer

	// closer is nil when writing to a caller-owned io.Writer
	closer io.Closer

	last    sim.Snapshot
	started bool
	ended   bool
}

// New is the preferred method of initialisation for the VCD type when the
// destination is a caller-owned writer. The VCD header is written
// immediately.
func New(w io.Writer) *VCD {
	vcd := &VCD{
		w: bufio.NewWriter(w),
	}
	vcd.header()
	return vcd
}

// Create opens the named file and prepares a VCD recording into it. The
// file is closed by End().
func Create(filename string) (*VCD, error) {
	f, err := os.Create(filename)
	if err != nil {
		return nil, curated.Errorf(NotCreated, err)
	}

	vcd := New(f)
	vcd.closer = f
	return vcd, nil
}

func (vcd *VCD) header() {
	fmt.Fprintf(vcd.w, "$date\n\t%s\n$end\n", time.Now().Format(time.ANSIC))
	fmt.Fprintf(vcd.w, "$version\n\tRV32Bench\n$end\n")
	fmt.Fprintf(vcd.w, "$timescale\n\t1ns\n$end\n")
	fmt.Fprintf(vcd.w, "$scope module testbench $end\n")
	fmt.Fprintf(vcd.w, "$var wire 1 %s clk $end\n", idClock)
	fmt.Fprintf(vcd.w, "$var wire 1 %s resetn $end\n", idResetn)
	fmt.Fprintf(vcd.w, "$var wire 1 %s trap $end\n", idTrap)
	fmt.Fprintf(vcd.w, "$var wire 1 %s trace_valid $end\n", idTraceValid)
	fmt.Fprintf(vcd.w, "$var wire 36 %s trace_data [35:0] $end\n", idTraceData)
	fmt.Fprintf(vcd.w, "$upscope $end\n")
	fmt.Fprintf(vcd.w, "$enddefinitions $end\n")
}

func scalar(level bool) string {
	if level {
		return "1"
	}
	return "0"
}

// Record implements the sim.WaveformSink interface.
func (vcd *VCD) Record(s sim.Snapshot) {
	if vcd.ended {
		return
	}

	fmt.Fprintf(vcd.w, "#%d\n", s.Time)

	if !vcd.started {
		// full snapshot at the first timestamp
		fmt.Fprintf(vcd.w, "$dumpvars\n")
		fmt.Fprintf(vcd.w, "%s%s\n", scalar(s.Clock), idClock)
		fmt.Fprintf(vcd.w, "%s%s\n", scalar(s.Resetn), idResetn)
		fmt.Fprintf(vcd.w, "%s%s\n", scalar(s.Trap), idTrap)
		fmt.Fprintf(vcd.w, "%s%s\n", scalar(s.TraceValid), idTraceValid)
		fmt.Fprintf(vcd.w, "b%s %s\n", strconv.FormatUint(s.TraceData, 2), idTraceData)
		fmt.Fprintf(vcd.w, "$end\n")

		vcd.started = true
		vcd.last = s
		return
	}

	if s.Clock != vcd.last.Clock {
		fmt.Fprintf(vcd.w, "%s%s\n", scalar(s.Clock), idClock)
	}
	if s.Resetn != vcd.last.Resetn {
		fmt.Fprintf(vcd.w, "%s%s\n", scalar(s.Resetn), idResetn)
	}
	if s.Trap != vcd.last.Trap {
		fmt.Fprintf(vcd.w, "%s%s\n", scalar(s.Trap), idTrap)
	}
	if s.TraceValid != vcd.last.TraceValid {
		fmt.Fprintf(vcd.w, "%s%s\n", scalar(s.TraceValid), idTraceValid)
	}
	if s.TraceData != vcd.last.TraceData {
		fmt.Fprintf(vcd.w, "b%s %s\n", strconv.FormatUint(s.TraceData, 2), idTraceData)
	}

	vcd.last = s
}

// End implements the sim.WaveformSink interface. The recording is flushed
// and the underlying file, if any, closed. Calling End() more than once is
// allowed; only the first call does anything.
func (vcd *VCD) End() (rerr error) {
	if vcd.ended {
		return nil
	}
	vcd.ended = true

	if err := vcd.w.Flush(); err != nil {
		rerr = curated.Errorf(WriteError, err)
	}

	if vcd.closer != nil {
		if err := vcd.closer.Close(); err != nil && rerr == nil {
			rerr = curated.Errorf(WriteError, err)
		}
	}

	return rerr
}
