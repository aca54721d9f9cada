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

package rvcore

// MemSize is the amount of simulated memory attached to the core model.
const MemSize = 128 * 1024

// Core is the pin-level view of a clocked core model. The harness sets the
// input pins, calls Eval() once per half clock cycle and samples the output
// pins afterwards.
//
// Eval() must be non-blocking and non-reentrant. The slice returned by
// Memory() is the simulated memory itself, not a copy; the image loader
// writes to it once before the clock first toggles and no other writer
// exists after that.
type Core interface {
	// Memory returns the simulated memory. len() of the returned slice is
	// MemSize.
	Memory() []byte

	// input pins
	SetClock(level bool)
	SetReset(asserted bool)

	// evaluate one step of the model with the current pin levels
	Eval()

	// output pins. Finished is the completion signal, raised by the model
	// itself and distinct from the harness's cycle budget. TraceData is the
	// 36-bit trace word sampled when TraceValid is high.
	Finished() bool
	TraceValid() bool
	TraceData() uint64
}

// EventSource is implemented by core models that can describe their internal
// activity. AttachEvents registers the function that receives every
// subsequent event. Attaching a nil function detaches the previous one.
type EventSource interface {
	AttachEvents(func(Event))
}
