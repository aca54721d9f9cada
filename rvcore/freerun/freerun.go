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

// Package freerun is a stand-in core model. It is pin-accurate but
// semantics-free: on every rising clock edge out of reset it drives the
// trace pins with the word at an internal fetch pointer and advances the
// pointer by one word. It performs no decode, has no ALU and no register
// file. The one encoding it recognises is EBREAK, on which it raises the
// completion signal and reports a trap entry event.
//
// The package exists so that the shipped binary can exercise the full
// harness (loader, driver, every sink) without a hardware model attached.
// Substitute a real model by implementing the rvcore.Core interface.
package freerun

import (
	"encoding/binary"

	"github.com/rv32bench/rv32bench/rvcore"
)

// the EBREAK encoding is the conventional "finish" marker for bare-metal
// test programs
const ebreak = 0x00100073

// Core is a free-running stand-in core model. Implements the rvcore.Core
// and rvcore.EventSource interfaces.
type Core struct {
	mem []byte

	// input pin levels as most recently set by the harness
	clk   bool
	reset bool

	// clock level at the end of the previous Eval(). rising edges are the
	// transitions between prevClk and clk
	prevClk bool

	// fetch pointer. advances one word per rising edge
	fetch uint32

	// output pins
	finished   bool
	traceValid bool
	traceData  uint64

	events func(rvcore.Event)
}

// New is the preferred method of initialisation for the freerun Core.
func New() *Core {
	return &Core{
		mem: make([]byte, rvcore.MemSize),
	}
}

// Memory implements the rvcore.Core interface.
func (c *Core) Memory() []byte {
	return c.mem
}

// SetClock implements the rvcore.Core interface.
func (c *Core) SetClock(level bool) {
	c.clk = level
}

// SetReset implements the rvcore.Core interface.
func (c *Core) SetReset(asserted bool) {
	c.reset = asserted
}

// Eval implements the rvcore.Core interface.
func (c *Core) Eval() {
	defer func() {
		c.prevClk = c.clk
	}()

	if c.reset {
		// held in reset. fetch restarts from the reset vector and the
		// output pins are quiet
		c.fetch = 0
		c.finished = false
		c.traceValid = false
		return
	}

	if c.finished {
		return
	}

	if c.clk && !c.prevClk {
		// rising edge. fetch the next word and present it on the trace pins
		addr := c.fetch % rvcore.MemSize
		word := binary.LittleEndian.Uint32(c.mem[addr : addr+4])

		c.traceValid = true
		c.traceData = uint64(word)

		if word == ebreak {
			c.finished = true
			if c.events != nil {
				c.events(rvcore.TrapEntry{PC: c.fetch, Insn: word})
			}
			return
		}

		c.fetch += 4
	} else if !c.clk && c.prevClk {
		// falling edge. trace is only presented for the high phase
		c.traceValid = false
	}
}

// Finished implements the rvcore.Core interface.
func (c *Core) Finished() bool {
	return c.finished
}

// TraceValid implements the rvcore.Core interface.
func (c *Core) TraceValid() bool {
	return c.traceValid
}

// TraceData implements the rvcore.Core interface.
func (c *Core) TraceData() uint64 {
	return c.traceData
}

// AttachEvents implements the rvcore.EventSource interface.
func (c *Core) AttachEvents(events func(rvcore.Event)) {
	c.events = events
}
