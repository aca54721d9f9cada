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

// Package performance profiles a simulation run with the standard pprof
// machinery. Profiles are written to fixed names in the working directory,
// next to the other output artifacts.
package performance

import (
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/rv32bench/rv32bench/curated"
	"github.com/rv32bench/rv32bench/logger"
)

// Error patterns returned by the performance package. Compare with
// curated.Is().
const (
	BadProfile   = "performance: unknown profile type (%s)"
	ProfileError = "performance: %v"
)

// output filenames
const (
	cpuProfileFile = "cpu.profile"
	memProfileFile = "mem.profile"
)

// Profile selects what RunProfiled() measures.
type Profile int

// List of valid Profile values.
const (
	ProfileNone Profile = iota
	ProfileCPU
	ProfileMem
	ProfileAll
)

// ParseProfile converts the command line spelling of a profile type.
func ParseProfile(s string) (Profile, error) {
	switch s {
	case "":
		return ProfileNone, nil
	case "cpu":
		return ProfileCPU, nil
	case "mem":
		return ProfileMem, nil
	case "all":
		return ProfileAll, nil
	}
	return ProfileNone, curated.Errorf(BadProfile, s)
}

// RunProfiled calls the run function with the requested profiling around
// it. With ProfileNone the call is a straight passthrough.
func RunProfiled(profile Profile, run func() error) error {
	if profile == ProfileCPU || profile == ProfileAll {
		f, err := os.Create(cpuProfileFile)
		if err != nil {
			return curated.Errorf(ProfileError, err)
		}
		defer f.Close()

		if err := pprof.StartCPUProfile(f); err != nil {
			return curated.Errorf(ProfileError, err)
		}
		defer pprof.StopCPUProfile()

		logger.Logf("performance", "cpu profile -> %s", cpuProfileFile)
	}

	if err := run(); err != nil {
		return err
	}

	if profile == ProfileMem || profile == ProfileAll {
		f, err := os.Create(memProfileFile)
		if err != nil {
			return curated.Errorf(ProfileError, err)
		}
		defer f.Close()

		runtime.GC()
		if err := pprof.WriteHeapProfile(f); err != nil {
			return curated.Errorf(ProfileError, err)
		}

		logger.Logf("performance", "memory profile -> %s", memProfileFile)
	}

	return nil
}
