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

// Package elfimage loads an ELF32 program image into simulated memory.
//
// Load() places every PT_LOAD segment at its physical address (or virtual
// address when the physical address is zero), bounds-checked against the
// supplied memory. The memory is zeroed in its entirety before any segment
// is copied so bytes not covered by a segment are deterministic.
//
// The ELF header is parsed directly rather than through the debug/elf
// package. The loader must classify bad images precisely (BadMagic against
// UnsupportedClass against Truncated) and must accept only the 32-bit
// class; debug/elf smooths over exactly the distinctions we need to
// preserve.
package elfimage

import (
	"encoding/binary"
	"io"
	"os"

	"github.com/rv32bench/rv32bench/curated"
	"github.com/rv32bench/rv32bench/logger"
)

// Error patterns returned by Load(). Compare with curated.Is().
const (
	NotFound         = "elf: cannot open image: %v"
	BadMagic         = "elf: %s: not an ELF image"
	UnsupportedClass = "elf: %s: unsupported class: only 32-bit images are accepted"
	Truncated        = "elf: %s: image is truncated or corrupt"
	OutOfBounds      = "elf: segment %d exceeds memory bounds (0x%08x + 0x%08x > 0x%08x)"
)

// ELF32 constants. only the values the loader inspects
const (
	elfClass32 = 1
	machRISCV  = 243
	ptLoad     = 1

	headerSize     = 52
	progEntrySize  = 32
	identClassOffs = 4
)

// Load reads the ELF32 image at path and copies its loadable segments into
// mem. The entire memory is zero-filled first. Returns the image's declared
// entry address; the harness reports it but never acts on it, reset vector
// behaviour belongs to the core model.
//
// A segment that does not fit in mem fails the whole load with the
// OutOfBounds pattern. Segments before the offending one will already have
// been copied but the offending segment itself is never partially written.
func Load(path string, mem []byte) (uint32, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, curated.Errorf(NotFound, err)
	}
	defer f.Close()

	img, err := io.ReadAll(f)
	if err != nil {
		return 0, curated.Errorf(NotFound, err)
	}

	if len(img) < identClassOffs+1 || img[0] != 0x7f || img[1] != 'E' || img[2] != 'L' || img[3] != 'F' {
		return 0, curated.Errorf(BadMagic, path)
	}

	if img[identClassOffs] != elfClass32 {
		return 0, curated.Errorf(UnsupportedClass, path)
	}

	if len(img) < headerSize {
		return 0, curated.Errorf(Truncated, path)
	}

	machine := binary.LittleEndian.Uint16(img[18:])
	entry := binary.LittleEndian.Uint32(img[24:])
	phoff := binary.LittleEndian.Uint32(img[28:])
	phentsize := binary.LittleEndian.Uint16(img[42:])
	phnum := binary.LittleEndian.Uint16(img[44:])

	// a foreign machine type is tolerated. useful when feeding the harness
	// deliberately wrong images
	if machine != machRISCV {
		logger.Logf("elf", "%s is not a RISC-V image (machine type %d)", path, machine)
	}

	logger.Logf("elf", "loading %s", path)
	logger.Logf("elf", "entry point: 0x%08x", entry)

	// deterministic state for every byte not covered by a segment
	for i := range mem {
		mem[i] = 0
	}

	for i := 0; i < int(phnum); i++ {
		offs := uint64(phoff) + uint64(i)*uint64(phentsize)
		if offs+progEntrySize > uint64(len(img)) {
			return 0, curated.Errorf(Truncated, path)
		}

		ph := img[offs:]
		ptype := binary.LittleEndian.Uint32(ph[0:])
		if ptype != ptLoad {
			continue
		}

		segOffs := binary.LittleEndian.Uint32(ph[4:])
		vaddr := binary.LittleEndian.Uint32(ph[8:])
		paddr := binary.LittleEndian.Uint32(ph[12:])
		filesz := binary.LittleEndian.Uint32(ph[16:])
		memsz := binary.LittleEndian.Uint32(ph[20:])

		// prefer the physical address when the image provides one
		loadAddr := paddr
		if loadAddr == 0 {
			loadAddr = vaddr
		}

		// bounds check in 64 bits before anything is copied. loadAddr+memsz
		// can overflow uint32
		if uint64(loadAddr)+uint64(memsz) > uint64(len(mem)) {
			return 0, curated.Errorf(OutOfBounds, i, loadAddr, memsz, len(mem))
		}

		if filesz > memsz || uint64(segOffs)+uint64(filesz) > uint64(len(img)) {
			return 0, curated.Errorf(Truncated, path)
		}

		logger.Logf("elf", "segment %d: addr=0x%08x size=0x%08x (file=0x%08x)", i, loadAddr, memsz, filesz)

		copy(mem[loadAddr:loadAddr+filesz], img[segOffs:segOffs+filesz])

		// the gap between on-disk and in-memory size is zeroed storage.
		// already zero unless an earlier segment overlapped it
		for j := loadAddr + filesz; j < loadAddr+memsz; j++ {
			mem[j] = 0
		}
	}

	return entry, nil
}
