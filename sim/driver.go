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

package sim

import (
	"fmt"
	"io"

	"github.com/rv32bench/rv32bench/curated"
	"github.com/rv32bench/rv32bench/rvcore"
)

// Error patterns returned by the sim package. Compare with curated.Is().
const (
	BadBudget = "sim: cycle budget must be positive (%d)"
	SinkError = "sim: %v"
)

// TimeQuantum is the amount logical time advances on every half clock
// cycle.
const TimeQuantum = 5

// WarmUpTime is the threshold below which the reset input is held asserted.
// The clock toggles during warm-up so the core model's reset logic can
// settle.
const WarmUpTime = 200

// DefaultProgressEvery is how many retired cycles pass between progress
// meter updates.
const DefaultProgressEvery = 10000

// State records the driver's progress through a run.
type State int

// List of valid State values. A run moves strictly forward: PreReset to
// Running to Terminated.
const (
	PreReset State = iota
	Running
	Terminated
)

// Reason distinguishes the two ways a run can end. The core model raising
// its completion signal is Finished; exhausting the cycle budget is
// TimedOut. Exactly one applies.
type Reason int

// List of valid Reason values.
const (
	Finished Reason = iota
	TimedOut
)

func (r Reason) String() string {
	if r == TimedOut {
		return "TIMEOUT"
	}
	return "FINISHED"
}

// Result summarises a completed run.
type Result struct {
	// number of retired cycles. when Reason is TimedOut this equals the
	// cycle budget exactly
	Cycles int

	// logical time at termination
	Time int64

	Reason Reason
}

// Snapshot is the state of the observable pins at a point in logical time.
// Pin names follow testbench convention: Resetn is the reset level as seen
// at the pin, high when reset is released.
type Snapshot struct {
	Time       int64
	Clock      bool
	Resetn     bool
	Trap       bool
	TraceValid bool
	TraceData  uint64
}

// WaveformSink records a Snapshot at every half cycle of the run.
type WaveformSink interface {
	Record(Snapshot)
	End() error
}

// TraceSink records the trace word of every retired instruction.
type TraceSink interface {
	Record(data uint64)
	End() error
}

// Driver sequences reset, clock edges, cycle counting and sink capture for
// one run of a core model. A Driver is single use: create, attach sinks,
// Run() once.
type Driver struct {
	core   rvcore.Core
	budget int

	wave  WaveformSink
	trace TraceSink

	// verbose diagnostics. events from the core model and the progress
	// meter are written here. nil means diagnostics are not consumed
	diag io.Writer

	// emit the progress meter. carriage-return overwrite, never newline, so
	// an active diagnostic stream isn't corrupted
	progress      bool
	progressEvery int

	state  State
	cycles int
	time   int64
}

// NewDriver is the preferred method of initialisation for the Driver type.
// The budget is the maximum number of retired cycles before the run is
// declared timed out. It must be positive.
func NewDriver(core rvcore.Core, budget int) (*Driver, error) {
	if budget <= 0 {
		return nil, curated.Errorf(BadBudget, budget)
	}

	return &Driver{
		core:          core,
		budget:        budget,
		progressEvery: DefaultProgressEvery,
		state:         PreReset,
	}, nil
}

// AttachWaveform attaches the waveform sink. Must be called before Run().
func (drv *Driver) AttachWaveform(wave WaveformSink) {
	drv.wave = wave
}

// AttachTrace attaches the instruction trace sink. Must be called before
// Run().
func (drv *Driver) AttachTrace(trace TraceSink) {
	drv.trace = trace
}

// AttachDiagnostics consumes the core model's diagnostic events, rendering
// them to output as they occur. The progress argument additionally enables
// the progress meter on the same writer. Must be called before Run().
func (drv *Driver) AttachDiagnostics(output io.Writer, progress bool) {
	drv.diag = output
	drv.progress = progress

	if es, ok := drv.core.(rvcore.EventSource); ok {
		es.AttachEvents(func(ev rvcore.Event) {
			fmt.Fprintf(output, "%s\n", ev)
		})
	}
}

// State returns the driver's current place in the PreReset/Running/
// Terminated sequence.
func (drv *Driver) State() State {
	return drv.state
}

// Run drives the core model until it raises its completion signal or the
// cycle budget is exhausted. Attached sinks are ended exactly once before
// Run returns, whatever the outcome.
//
// When the completion signal and the cycle budget coincide the run counts
// as Finished; the two reasons never both apply.
func (drv *Driver) Run() (Result, error) {
	var clk bool
	var reason Reason

	for {
		if drv.core.Finished() {
			reason = Finished
			break
		}
		if drv.cycles >= drv.budget {
			reason = TimedOut
			break
		}

		// reset follows logical time alone. released at the warm-up
		// threshold and never asserted again
		reset := drv.time < WarmUpTime
		drv.core.SetReset(reset)
		if !reset && drv.state == PreReset {
			drv.state = Running
		}

		clk = !clk
		drv.core.SetClock(clk)
		drv.core.Eval()

		// sink order is fixed: waveform first, every half cycle
		if drv.wave != nil {
			drv.wave.Record(Snapshot{
				Time:       drv.time,
				Clock:      clk,
				Resetn:     !reset,
				Trap:       drv.core.Finished(),
				TraceValid: drv.core.TraceValid(),
				TraceData:  drv.core.TraceData(),
			})
		}

		// rising edge with reset released: trace capture and cycle retire
		if clk && !reset {
			if drv.trace != nil && drv.core.TraceValid() {
				drv.trace.Record(drv.core.TraceData())
			}

			drv.cycles++

			if drv.progress && drv.cycles%drv.progressEvery == 0 {
				fmt.Fprintf(drv.diag, "\rcycle: %d", drv.cycles)
			}
		}

		drv.time += TimeQuantum
	}

	drv.state = Terminated

	return Result{
		Cycles: drv.cycles,
		Time:   drv.time,
		Reason: reason,
	}, drv.endSinks()
}

// every attached sink is ended exactly once. the first error wins but
// ending continues regardless.
func (drv *Driver) endSinks() error {
	var rerr error

	if drv.wave != nil {
		if err := drv.wave.End(); err != nil && rerr == nil {
			rerr = curated.Errorf(SinkError, err)
		}
		drv.wave = nil
	}

	if drv.trace != nil {
		if err := drv.trace.End(); err != nil && rerr == nil {
			rerr = curated.Errorf(SinkError, err)
		}
		drv.trace = nil
	}

	return rerr
}
