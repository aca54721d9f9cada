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

// Package rvcore defines the interface between the simulation harness and a
// clocked RV32 core model. The harness knows nothing about how the model
// executes instructions; it only drives the clock and reset pins, asks the
// model to evaluate, and observes the output pins.
//
// A model that can report what is happening inside itself additionally
// implements the EventSource interface, emitting the Event variants defined
// in this package. The harness attaches a consumer only when the user has
// asked for verbose diagnostics, so a model is free to generate events
// unconditionally.
package rvcore
