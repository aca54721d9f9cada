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

package main

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rv32bench/rv32bench/test"
)

// a minimal ELF32 image with a single loadable RISC-V segment at address
// zero.
func buildTestImage(t *testing.T, words []uint32) string {
	t.Helper()

	const headerSize = 52
	const phentsize = 32

	img := make([]byte, headerSize+phentsize)
	img[0] = 0x7f
	img[1] = 'E'
	img[2] = 'L'
	img[3] = 'F'
	img[4] = 1 // ELFCLASS32
	img[5] = 1 // little-endian
	binary.LittleEndian.PutUint16(img[18:], 243) // EM_RISCV
	binary.LittleEndian.PutUint32(img[28:], headerSize)
	binary.LittleEndian.PutUint16(img[42:], phentsize)
	binary.LittleEndian.PutUint16(img[44:], 1)

	ph := img[headerSize:]
	binary.LittleEndian.PutUint32(ph[0:], 1) // PT_LOAD
	binary.LittleEndian.PutUint32(ph[4:], headerSize+phentsize)
	binary.LittleEndian.PutUint32(ph[16:], uint32(len(words)*4))
	binary.LittleEndian.PutUint32(ph[20:], uint32(len(words)*4))

	for _, w := range words {
		img = binary.LittleEndian.AppendUint32(img, w)
	}

	path := filepath.Join(t.TempDir(), "program.elf")
	if err := os.WriteFile(path, img, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// run launch() from a scratch working directory so output artifacts don't
// collide between tests.
func launchIn(t *testing.T, args ...string) (int, string) {
	t.Helper()

	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}

	dir := t.TempDir()
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatal(err)
		}
	}()

	return launch(args), dir
}

func TestLaunchFinished(t *testing.T) {
	words := []uint32{0x00000013, 0x00100093, 0x00100073}
	image := buildTestImage(t, words)

	code, dir := launchIn(t, "+trace", "--timeout=1000", image)
	test.Equate(t, code, 0)

	d, err := os.ReadFile(filepath.Join(dir, "testbench.trace"))
	test.ExpectedSuccess(t, err)

	lines := strings.Split(strings.TrimRight(string(d), "\n"), "\n")
	test.Equate(t, len(lines), len(words))
	for i, w := range words {
		test.Equate(t, lines[i], fmt.Sprintf("%09x", w))
	}
}

func TestLaunchVCD(t *testing.T) {
	image := buildTestImage(t, []uint32{0x00100073})

	code, dir := launchIn(t, "+vcd", "--timeout=1000", image)
	test.Equate(t, code, 0)

	d, err := os.ReadFile(filepath.Join(dir, "testbench.vcd"))
	test.ExpectedSuccess(t, err)
	test.Equate(t, strings.Contains(string(d), "$enddefinitions $end"), true)
	test.Equate(t, strings.Contains(string(d), "$dumpvars"), true)
}

func TestLaunchTimeout(t *testing.T) {
	// no EBREAK anywhere. the core model free-runs until the budget
	image := buildTestImage(t, []uint32{0x00000013, 0x00000013})

	code, dir := launchIn(t, "--timeout=50", image)
	test.Equate(t, code, 2)

	// no sinks requested, no files created
	_, err := os.Stat(filepath.Join(dir, "testbench.vcd"))
	test.Equate(t, os.IsNotExist(err), true)
	_, err = os.Stat(filepath.Join(dir, "testbench.trace"))
	test.Equate(t, os.IsNotExist(err), true)
}

func TestLaunchUsageError(t *testing.T) {
	code, _ := launchIn(t)
	test.Equate(t, code, 1)

	image := buildTestImage(t, []uint32{0x00100073})
	code, _ = launchIn(t, "--no-such-option", image)
	test.Equate(t, code, 1)
}

func TestLaunchLoadError(t *testing.T) {
	code, dir := launchIn(t, "+vcd", "+trace", filepath.Join(t.TempDir(), "missing.elf"))
	test.Equate(t, code, 1)

	// load failed, so no sink files may have been created
	_, err := os.Stat(filepath.Join(dir, "testbench.vcd"))
	test.Equate(t, os.IsNotExist(err), true)
	_, err = os.Stat(filepath.Join(dir, "testbench.trace"))
	test.Equate(t, os.IsNotExist(err), true)
}

func TestLaunchHelp(t *testing.T) {
	code, _ := launchIn(t, "--help")
	test.Equate(t, code, 0)
}
