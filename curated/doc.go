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

// Package curated is a helper package for the plain Go language error type.
//
// Errors are created with the Errorf() function. Like the Errorf() function
// in the fmt package it takes a formatting pattern and placeholder values,
// but unlike fmt the pattern is kept alongside the stored values. Packages
// export their patterns as constants and callers use the Is() and Has()
// functions to classify an error by pattern, without string comparison of
// the rendered message.
//
//	if curated.Is(err, elfimage.OutOfBounds) {
//		...
//	}
//
// When curated errors are nested through Errorf() the rendered message
// de-duplicates adjacent identical parts, keeping messages readable however
// deep the chain.
package curated
