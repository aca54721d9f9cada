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

import "fmt"

// Event is a diagnostic report from the core model. It is a closed set of
// variants: RegWrite, MemWrite, Exception and TrapEntry. The harness renders
// events with String() and never inspects them beyond that; filtering and
// analysis of the rendered text is the job of external tools.
type Event interface {
	fmt.Stringer

	// sealing method. the set of event variants is fixed
	event()
}

// RegWrite reports a write to the register file.
type RegWrite struct {
	Reg   int
	Value uint32
	PC    uint32
	Insn  uint32
}

func (e RegWrite) event() {}

func (e RegWrite) String() string {
	return fmt.Sprintf("reg x%-2d <= 0x%08x [pc=0x%08x insn=0x%08x]", e.Reg, e.Value, e.PC, e.Insn)
}

// MemWrite reports a write to simulated memory. Size is the access width in
// bytes.
type MemWrite struct {
	Addr uint32
	Data uint32
	Size int
	PC   uint32
	Insn uint32
}

func (e MemWrite) event() {}

func (e MemWrite) String() string {
	return fmt.Sprintf("mem[0x%08x] <= 0x%08x (%d bytes) [pc=0x%08x insn=0x%08x]", e.Addr, e.Data, e.Size, e.PC, e.Insn)
}

// ExceptionKind is the closed category of exceptions a core model reports.
type ExceptionKind int

// List of valid ExceptionKind values.
const (
	MisalignedAccess ExceptionKind = iota
	IllegalInstruction
)

func (k ExceptionKind) String() string {
	switch k {
	case MisalignedAccess:
		return "misaligned access"
	case IllegalInstruction:
		return "illegal instruction"
	}
	return "unknown exception"
}

// Exception reports an exception raised inside the core model. Addr is the
// faulting address and is only meaningful for MisalignedAccess.
type Exception struct {
	Kind ExceptionKind
	Addr uint32
	PC   uint32
	Insn uint32
}

func (e Exception) event() {}

func (e Exception) String() string {
	if e.Kind == MisalignedAccess {
		return fmt.Sprintf("exception: %s at 0x%08x [pc=0x%08x insn=0x%08x]", e.Kind, e.Addr, e.PC, e.Insn)
	}
	return fmt.Sprintf("exception: %s [pc=0x%08x insn=0x%08x]", e.Kind, e.PC, e.Insn)
}

// TrapEntry reports the core model entering its trap state.
type TrapEntry struct {
	PC   uint32
	Insn uint32
}

func (e TrapEntry) event() {}

func (e TrapEntry) String() string {
	return fmt.Sprintf("trap entry [pc=0x%08x insn=0x%08x]", e.PC, e.Insn)
}
