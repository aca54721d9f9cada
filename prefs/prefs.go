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

// Package prefs reads the optional preferences file from the working
// directory, the same directory the output artifacts are written to. The
// file supplies run defaults; anything given on the command line wins. A
// missing file is not an error, a malformed one is.
package prefs

import (
	"os"

	"gopkg.in/yaml.v2"

	"github.com/rv32bench/rv32bench/curated"
	"github.com/rv32bench/rv32bench/logger"
)

// Filename of the preferences file, relative to the working directory.
const Filename = "rv32bench.yaml"

// Error patterns returned by Load(). Compare with curated.Is().
const (
	BadPrefs = "prefs: %s: %v"
)

// Prefs are run defaults. Zero values mean "not specified".
type Prefs struct {
	// default cycle budget. zero falls back to the built-in default
	Timeout int `yaml:"timeout"`

	// sinks enabled by default, as if the matching plusarg was given
	VCD     bool `yaml:"vcd"`
	Trace   bool `yaml:"trace"`
	Verbose bool `yaml:"verbose"`
}

// Load the named preferences file. A file that doesn't exist returns zero
// value Prefs and no error.
func Load(filename string) (*Prefs, error) {
	p := &Prefs{}

	d, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return p, nil
		}
		return nil, curated.Errorf(BadPrefs, filename, err)
	}

	// strict unmarshalling so a misspelt key is noticed rather than
	// silently dropped
	if err := yaml.UnmarshalStrict(d, p); err != nil {
		return nil, curated.Errorf(BadPrefs, filename, err)
	}

	logger.Logf("prefs", "loaded %s", filename)

	return p, nil
}
