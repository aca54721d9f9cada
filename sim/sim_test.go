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

package sim_test

import (
	"testing"

	"github.com/rv32bench/rv32bench/curated"
	"github.com/rv32bench/rv32bench/rvcore"
	"github.com/rv32bench/rv32bench/sim"
	"github.com/rv32bench/rv32bench/test"
)

// script is a core model with pin behaviour described by the test rather
// than by a program image. edge numbering starts at 1 for the first rising
// edge seen with reset released.
type script struct {
	// retire edge at which the completion signal raises. zero means never
	finishAt int

	traceValid func(edge int) bool
	traceData  func(edge int) uint64

	mem     []byte
	clk     bool
	prevClk bool
	reset   bool

	edge     int
	finished bool
	tv       bool
	td       uint64

	// every level ever set on the reset pin, in call order
	resetLog []bool

	events func(rvcore.Event)
}

func newScript() *script {
	return &script{mem: make([]byte, rvcore.MemSize)}
}

func (s *script) Memory() []byte { return s.mem }

func (s *script) SetClock(level bool) { s.clk = level }

func (s *script) SetReset(asserted bool) {
	s.reset = asserted
	s.resetLog = append(s.resetLog, asserted)
}

func (s *script) Eval() {
	defer func() { s.prevClk = s.clk }()

	if s.reset {
		s.edge = 0
		s.finished = false
		s.tv = false
		return
	}

	if s.clk && !s.prevClk {
		s.edge++
		s.tv = s.traceValid != nil && s.traceValid(s.edge)
		if s.tv && s.traceData != nil {
			s.td = s.traceData(s.edge)
		}
		if s.finishAt > 0 && s.edge >= s.finishAt {
			s.finished = true
			if s.events != nil {
				s.events(rvcore.TrapEntry{PC: uint32(s.edge * 4)})
			}
		}
	} else if !s.clk && s.prevClk {
		s.tv = false
	}
}

func (s *script) Finished() bool    { return s.finished }
func (s *script) TraceValid() bool  { return s.tv }
func (s *script) TraceData() uint64 { return s.td }

func (s *script) AttachEvents(events func(rvcore.Event)) { s.events = events }

type waveCollect struct {
	snaps []sim.Snapshot
	ends  int
}

func (w *waveCollect) Record(s sim.Snapshot) { w.snaps = append(w.snaps, s) }
func (w *waveCollect) End() error            { w.ends++; return nil }

type traceCollect struct {
	data []uint64
	ends int
}

func (t *traceCollect) Record(data uint64) { t.data = append(t.data, data) }
func (t *traceCollect) End() error         { t.ends++; return nil }

func TestBadBudget(t *testing.T) {
	_, err := sim.NewDriver(newScript(), 0)
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, sim.BadBudget), true)

	_, err = sim.NewDriver(newScript(), -100)
	test.ExpectedFailure(t, err)
}

// a core that never finishes must terminate at exactly the cycle budget.
func TestTimeout(t *testing.T) {
	drv, err := sim.NewDriver(newScript(), 100)
	test.ExpectedSuccess(t, err)
	test.Equate(t, drv.State() == sim.PreReset, true)

	res, err := drv.Run()
	test.ExpectedSuccess(t, err)
	test.Equate(t, drv.State() == sim.Terminated, true)

	test.Equate(t, res.Reason == sim.TimedOut, true)
	test.Equate(t, res.Cycles, 100)
	test.Equate(t, res.Reason.String(), "TIMEOUT")

	// elapsed logical time: warm-up plus two half cycles per retired cycle
	test.Equate(t, res.Time, int64(sim.WarmUpTime+100*2*sim.TimeQuantum))
}

// completion before the budget terminates at the completion cycle.
func TestCompletion(t *testing.T) {
	core := newScript()
	core.finishAt = 42

	drv, err := sim.NewDriver(core, 1000)
	test.ExpectedSuccess(t, err)

	res, err := drv.Run()
	test.ExpectedSuccess(t, err)
	test.Equate(t, res.Reason == sim.Finished, true)
	test.Equate(t, res.Cycles, 42)
	test.Equate(t, res.Reason.String(), "FINISHED")
}

// completion and budget coinciding counts as a finish, not a timeout.
func TestCompletionAtBudgetBoundary(t *testing.T) {
	core := newScript()
	core.finishAt = 50

	drv, err := sim.NewDriver(core, 50)
	test.ExpectedSuccess(t, err)

	res, err := drv.Run()
	test.ExpectedSuccess(t, err)
	test.Equate(t, res.Reason == sim.Finished, true)
	test.Equate(t, res.Cycles, 50)
}

// reset is asserted for all logical time below the warm-up threshold,
// released at and above it, and never asserted again after first release.
func TestResetDiscipline(t *testing.T) {
	core := newScript()
	wave := &waveCollect{}

	drv, err := sim.NewDriver(core, 20)
	test.ExpectedSuccess(t, err)
	drv.AttachWaveform(wave)

	_, err = drv.Run()
	test.ExpectedSuccess(t, err)

	for _, s := range wave.snaps {
		test.Equate(t, s.Resetn, s.Time >= sim.WarmUpTime)
	}

	released := false
	for _, r := range core.resetLog {
		if !r {
			released = true
		} else if released {
			t.Fatal("reset asserted again after first release")
		}
	}
	test.Equate(t, released, true)
}

// trace-valid on 5 of 10 rising edges produces exactly 5 trace records,
// each matching the trace-data pin at that edge.
func TestTraceCapture(t *testing.T) {
	core := newScript()
	core.traceValid = func(edge int) bool { return edge <= 5 }
	core.traceData = func(edge int) uint64 { return uint64(0x123450 + edge) }

	trace := &traceCollect{}
	wave := &waveCollect{}

	drv, err := sim.NewDriver(core, 10)
	test.ExpectedSuccess(t, err)
	drv.AttachTrace(trace)
	drv.AttachWaveform(wave)

	res, err := drv.Run()
	test.ExpectedSuccess(t, err)
	test.Equate(t, res.Cycles, 10)

	test.Equate(t, len(trace.data), 5)
	for i, d := range trace.data {
		test.Equate(t, d, uint64(0x123450+i+1))
	}

	// every sink ended exactly once
	test.Equate(t, trace.ends, 1)
	test.Equate(t, wave.ends, 1)
}

// enabling sinks must not change the cycle count, elapsed time or outcome.
func TestObservabilityNeutral(t *testing.T) {
	run := func(attach bool) sim.Result {
		core := newScript()
		core.finishAt = 33
		core.traceValid = func(edge int) bool { return edge%2 == 0 }
		core.traceData = func(edge int) uint64 { return uint64(edge) }

		drv, err := sim.NewDriver(core, 500)
		test.ExpectedSuccess(t, err)
		if attach {
			drv.AttachWaveform(&waveCollect{})
			drv.AttachTrace(&traceCollect{})
			drv.AttachDiagnostics(&test.Writer{}, false)
		}

		res, err := drv.Run()
		test.ExpectedSuccess(t, err)
		return res
	}

	bare := run(false)
	observed := run(true)

	test.Equate(t, bare.Cycles, observed.Cycles)
	test.Equate(t, bare.Time, observed.Time)
	test.Equate(t, bare.Reason == observed.Reason, true)
}

// diagnostic events from the core model are rendered to the attached
// writer. the progress meter uses carriage-return overwrite.
func TestDiagnostics(t *testing.T) {
	core := newScript()
	core.finishAt = 25000

	tw := &test.Writer{}

	drv, err := sim.NewDriver(core, 30000)
	test.ExpectedSuccess(t, err)
	drv.AttachDiagnostics(tw, true)

	res, err := drv.Run()
	test.ExpectedSuccess(t, err)
	test.Equate(t, res.Reason == sim.Finished, true)

	test.Equate(t, tw.Contains("trap entry"), true)
	test.Equate(t, tw.Contains("\rcycle: 10000"), true)
	test.Equate(t, tw.Contains("\rcycle: 20000"), true)
	test.Equate(t, tw.Contains("\ncycle"), false)
}
