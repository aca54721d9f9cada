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

// Package sim drives a clocked core model through reset and execution.
//
// The Driver owns logical time. Every iteration of the run loop toggles the
// clock, evaluates the core model and advances time by a fixed quantum.
// Reset is held asserted while logical time is below the warm-up threshold
// and is never reasserted after release. A retired cycle is one full clock
// period observed with reset released.
//
// Observability is through sinks attached before the run: a waveform sink
// receives a pin snapshot every half cycle; a trace sink receives the trace
// word on every rising edge where the core asserts trace-valid. Attaching
// sinks never changes the simulated timing. Every attached sink is ended
// exactly once, however the run terminates.
package sim
