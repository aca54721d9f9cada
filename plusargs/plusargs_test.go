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

package plusargs_test

import (
	"testing"

	"github.com/rv32bench/rv32bench/curated"
	"github.com/rv32bench/rv32bench/plusargs"
	"github.com/rv32bench/rv32bench/test"
)

func parse(t *testing.T, args ...string) (*plusargs.Options, plusargs.Result, error) {
	t.Helper()
	return plusargs.Parse("rv32bench", args, &test.Writer{}, plusargs.DefaultTimeout)
}

func TestDefaults(t *testing.T) {
	opt, res, err := parse(t, "firmware.elf")
	test.ExpectedSuccess(t, err)
	test.Equate(t, res == plusargs.ParseContinue, true)
	test.Equate(t, opt.Image, "firmware.elf")
	test.Equate(t, opt.VCD, false)
	test.Equate(t, opt.Trace, false)
	test.Equate(t, opt.Verbose, false)
	test.Equate(t, opt.Timeout, plusargs.DefaultTimeout)
}

func TestPlusargs(t *testing.T) {
	// order independence: plusargs before and after the image path
	opt, _, err := parse(t, "+vcd", "firmware.elf", "+trace", "+verbose")
	test.ExpectedSuccess(t, err)
	test.Equate(t, opt.Image, "firmware.elf")
	test.Equate(t, opt.VCD, true)
	test.Equate(t, opt.Trace, true)
	test.Equate(t, opt.Verbose, true)
}

func TestUnknownPlusargTolerated(t *testing.T) {
	opt, _, err := parse(t, "+fullsignals", "firmware.elf")
	test.ExpectedSuccess(t, err)
	test.Equate(t, opt.Image, "firmware.elf")
}

func TestTimeout(t *testing.T) {
	opt, _, err := parse(t, "--timeout=5000", "firmware.elf")
	test.ExpectedSuccess(t, err)
	test.Equate(t, opt.Timeout, 5000)

	_, _, err = parse(t, "--timeout=0", "firmware.elf")
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, plusargs.BadTimeout), true)

	_, _, err = parse(t, "--timeout=-5", "firmware.elf")
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, plusargs.BadTimeout), true)
}

func TestHelp(t *testing.T) {
	tw := &test.Writer{}
	_, res, err := plusargs.Parse("rv32bench", []string{"--help"}, tw, plusargs.DefaultTimeout)
	test.ExpectedSuccess(t, err)
	test.Equate(t, res == plusargs.ParseHelp, true)
	test.Equate(t, tw.Contains("Usage: rv32bench"), true)
	test.Equate(t, tw.Contains("+vcd"), true)
	test.Equate(t, tw.Contains("--timeout"), true)

	tw.Clear()
	_, res, err = plusargs.Parse("rv32bench", []string{"-h"}, tw, plusargs.DefaultTimeout)
	test.ExpectedSuccess(t, err)
	test.Equate(t, res == plusargs.ParseHelp, true)
}

func TestUsageErrors(t *testing.T) {
	// no image
	_, _, err := parse(t)
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, plusargs.NoImage), true)

	// more than one image
	_, _, err = parse(t, "one.elf", "two.elf")
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, plusargs.TooManyImages), true)

	// unknown dash option
	_, _, err = parse(t, "--fullsignals", "firmware.elf")
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, plusargs.UsageError), true)

	// unknown profile type
	_, _, err = parse(t, "--profile=gpu", "firmware.elf")
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, plusargs.BadProfile), true)
}
