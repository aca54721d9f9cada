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

package curated

import (
	"fmt"
	"strings"
)

// curated is an implementation of the go language error interface. the
// pattern string is stored unformatted so that it can be compared in the
// Is() and Has() functions.
type curated struct {
	pattern string
	values  []interface{}
}

// Errorf creates a new curated error. The first argument is named "pattern"
// rather than "format" because the same string is later used for
// identification by Is() and Has().
func Errorf(pattern string, values ...interface{}) error {
	// formatting is deferred until Error() is called. only the arguments are
	// stored at this point
	return curated{
		pattern: pattern,
		values:  values,
	}
}

// Error returns the normalised error message. Normalisation being the
// removal of duplicate adjacent message parts in the error chain.
//
// Implements the go language error interface.
func (er curated) Error() string {
	s := fmt.Errorf(er.pattern, er.values...).Error()

	// de-duplicate adjacent error message parts
	p := strings.SplitN(s, ": ", 3)
	if len(p) > 1 && p[0] == p[1] {
		return strings.Join(p[1:], ": ")
	}

	return strings.Join(p, ": ")
}

// IsAny checks if the error is a curated error.
func IsAny(err error) bool {
	if err == nil {
		return false
	}

	_, ok := err.(curated)
	return ok
}

// Is checks if the error is a curated error with the specified pattern.
func Is(err error, pattern string) bool {
	if err == nil {
		return false
	}

	if er, ok := err.(curated); ok {
		return er.pattern == pattern
	}

	return false
}

// Has checks if the specified pattern occurs anywhere in the error chain.
func Has(err error, pattern string) bool {
	if !IsAny(err) {
		return false
	}

	if Is(err, pattern) {
		return true
	}

	for _, v := range err.(curated).values {
		if e, ok := v.(curated); ok {
			if Has(e, pattern) {
				return true
			}
		}
	}

	return false
}
