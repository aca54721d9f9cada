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
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/rv32bench/rv32bench/elfimage"
	"github.com/rv32bench/rv32bench/logger"
	"github.com/rv32bench/rv32bench/performance"
	"github.com/rv32bench/rv32bench/plusargs"
	"github.com/rv32bench/rv32bench/prefs"
	"github.com/rv32bench/rv32bench/rvcore/freerun"
	"github.com/rv32bench/rv32bench/sim"
	"github.com/rv32bench/rv32bench/statsview"
	"github.com/rv32bench/rv32bench/tracewriter"
	"github.com/rv32bench/rv32bench/vcdwriter"
	"github.com/rv32bench/rv32bench/version"
)

// output artifacts are written to fixed, conventional names in the working
// directory
const (
	vcdFilename   = "testbench.vcd"
	traceFilename = "testbench.trace"
)

func main() {
	os.Exit(launch(os.Args[1:]))
}

// launch returns the process exit code: 0 for a run that finished, 1 for a
// usage or load error, 2 for a run that hit the cycle budget.
func launch(args []string) int {
	fmt.Printf("%s %s\n\n", version.ApplicationName, version.Version())

	pf, err := prefs.Load(prefs.Filename)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	defTimeout := pf.Timeout
	if defTimeout <= 0 {
		defTimeout = plusargs.DefaultTimeout
	}

	opt, res, err := plusargs.Parse("rv32bench", args, os.Stderr, defTimeout)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if res == plusargs.ParseHelp {
		return 0
	}

	// preferences can enable sinks by default. plusargs only ever add
	opt.VCD = opt.VCD || pf.VCD
	opt.Trace = opt.Trace || pf.Trace
	opt.Verbose = opt.Verbose || pf.Verbose

	// keep the user informed as the log fills
	logger.SetEcho(os.Stdout)

	if opt.Stats {
		statsview.Launch(os.Stdout)
	}

	core := freerun.New()

	// the entry address is reported by the loader's own logging. the core
	// model's reset vector is its own business
	if _, err := elfimage.Load(opt.Image, core.Memory()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	drv, err := sim.NewDriver(core, opt.Timeout)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	// sinks are created only once the image is known to be good, so a load
	// failure leaves no partial output files behind
	var wave *vcdwriter.VCD
	var trc *tracewriter.Trace

	// release any sink created so far and report the error. calling End()
	// on a sink the driver has already ended is harmless
	fail := func(err error) int {
		fmt.Fprintln(os.Stderr, err)
		if wave != nil {
			_ = wave.End()
		}
		if trc != nil {
			_ = trc.End()
		}
		return 1
	}

	if opt.VCD {
		wave, err = vcdwriter.Create(vcdFilename)
		if err != nil {
			return fail(err)
		}
		drv.AttachWaveform(wave)
		logger.Logf("rv32bench", "vcd waveform -> %s", vcdFilename)
	}

	if opt.Trace {
		trc, err = tracewriter.Create(traceFilename)
		if err != nil {
			return fail(err)
		}
		drv.AttachTrace(trc)
		logger.Logf("rv32bench", "instruction trace -> %s", traceFilename)
	}

	if opt.Verbose {
		// the progress meter only makes sense on a terminal
		drv.AttachDiagnostics(os.Stdout, term.IsTerminal(int(os.Stdout.Fd())))
	}

	profile, err := performance.ParseProfile(opt.Profile)
	if err != nil {
		return fail(err)
	}

	logger.Logf("rv32bench", "starting simulation (timeout: %d cycles)", opt.Timeout)

	var result sim.Result
	err = performance.RunProfiled(profile, func() error {
		var rerr error
		result, rerr = drv.Run()
		return rerr
	})
	if err != nil {
		// sinks have already been ended by the driver
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	fmt.Printf("\n---------------------------------------------------\n")
	fmt.Printf("Simulation finished:\n")
	fmt.Printf("  Cycles: %d\n", result.Cycles)
	fmt.Printf("  Time: %d ns\n", result.Time)
	fmt.Printf("  Status: %s\n", result.Reason)

	if result.Reason == sim.TimedOut {
		return 2
	}

	return 0
}
