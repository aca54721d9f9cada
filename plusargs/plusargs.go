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

// Package plusargs is the command line surface of the harness. The sink
// selectors keep the Verilog-testbench plusarg spelling (+vcd, +trace,
// +verbose) while ordinary options are dash-prefixed. Dash options are
// handled by the pflag package; plusargs and the single positional image
// path are handled here, since no flag library understands the plusarg
// convention.
//
// Unknown dash options are usage errors. Unknown plusargs are tolerated,
// matching simulator runtimes which pass unrecognised plusargs through to
// the simulated design.
package plusargs

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"

	"github.com/rv32bench/rv32bench/curated"
	"github.com/rv32bench/rv32bench/logger"
)

// Error patterns returned by Parse(). Compare with curated.Is().
const (
	UsageError    = "args: %v"
	NoImage       = "args: no image file specified"
	TooManyImages = "args: multiple image files specified"
	BadTimeout    = "args: timeout must be a positive number of cycles (%d)"
	BadProfile    = "args: unknown profile type (%s)"
)

// DefaultTimeout is the cycle budget used when neither the command line nor
// the preferences file provides one.
const DefaultTimeout = 1000000

// Result of a Parse() that did not error. ParseHelp means usage has been
// printed and nothing should run.
type Result int

// List of valid Result values.
const (
	ParseContinue Result = iota
	ParseHelp
)

// Options is the fully parsed command line.
type Options struct {
	// path to the program image. always set when Parse() returns
	// ParseContinue with no error
	Image string

	// sink selection
	VCD     bool
	Trace   bool
	Verbose bool

	// cycle budget
	Timeout int

	// developer options
	Stats   bool
	Profile string
}

// Parse the command line. Help requests print the usage text to output and
// return ParseHelp. Usage errors print the usage text to output and return
// a curated error; nothing is printed on a clean parse.
func Parse(progName string, args []string, output io.Writer, defaultTimeout int) (*Options, Result, error) {
	opt := &Options{}

	fs := pflag.NewFlagSet(progName, pflag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() { usage(output, progName, fs) }

	var help bool
	fs.BoolVarP(&help, "help", "h", false, "show this help message")
	fs.IntVar(&opt.Timeout, "timeout", defaultTimeout, "simulation timeout in cycles")
	fs.BoolVar(&opt.Stats, "stats", false, "serve live runtime statistics over HTTP")
	fs.StringVar(&opt.Profile, "profile", "", "profile the run (cpu|mem|all)")

	if err := fs.Parse(args); err != nil {
		return nil, ParseContinue, curated.Errorf(UsageError, err)
	}

	if help {
		fs.Usage()
		return nil, ParseHelp, nil
	}

	if opt.Timeout <= 0 {
		fs.Usage()
		return nil, ParseContinue, curated.Errorf(BadTimeout, opt.Timeout)
	}

	switch opt.Profile {
	case "", "cpu", "mem", "all":
	default:
		fs.Usage()
		return nil, ParseContinue, curated.Errorf(BadProfile, opt.Profile)
	}

	for _, a := range fs.Args() {
		if strings.HasPrefix(a, "+") {
			switch a {
			case "+vcd":
				opt.VCD = true
			case "+trace":
				opt.Trace = true
			case "+verbose":
				opt.Verbose = true
			default:
				logger.Logf("args", "ignoring unrecognised plusarg %s", a)
			}
			continue
		}

		if opt.Image != "" {
			fs.Usage()
			return nil, ParseContinue, curated.Errorf(TooManyImages)
		}
		opt.Image = a
	}

	if opt.Image == "" {
		fs.Usage()
		return nil, ParseContinue, curated.Errorf(NoImage)
	}

	return opt, ParseContinue, nil
}

func usage(output io.Writer, progName string, fs *pflag.FlagSet) {
	fmt.Fprintf(output, "Usage: %s [options] <image.elf>\n\n", progName)
	fmt.Fprintf(output, "Plusargs:\n")
	fmt.Fprintf(output, "  +vcd      record VCD waveform (testbench.vcd)\n")
	fmt.Fprintf(output, "  +trace    record instruction trace (testbench.trace)\n")
	fmt.Fprintf(output, "  +verbose  diagnostic events and progress on stdout\n\n")
	fmt.Fprintf(output, "Options:\n%s", fs.FlagUsages())
}
