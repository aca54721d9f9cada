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

// Package version records the name and version of the application.
package version

import (
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "RV32Bench"

// number is set through the linker by the release build. empty means the
// project was built directly with the go tool
var number string

// Version returns the version string. "unreleased" means the build came
// from a source checkout rather than a release; "local" means no vcs
// information was available at all.
func Version() string {
	if number != "" {
		return number
	}

	if info, ok := debug.ReadBuildInfo(); ok {
		for _, v := range info.Settings {
			if v.Key == "vcs" {
				return "unreleased"
			}
		}
	}

	return "local"
}
