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

package test

import (
	"testing"
)

// Equate is used to test equality between one value and another. Generally,
// both values must be of the same type but if a is of type uint32 or int64,
// b can also be an int. The reason for this is that a literal number value
// is of type int. It is very convenient to write something like this,
// without having to cast the expected number value:
//
//	var c int64
//	c = driver.Cycles()
//	test.Equate(t, c, 100)
//
// This is by no means a comprehensive comparison function but it covers the
// types that appear in this project's tests.
func Equate(t *testing.T, value, expectedValue interface{}) {
	t.Helper()

	switch v := value.(type) {
	default:
		t.Fatalf("unhandled type for Equate() function (%T))", v)

	case nil:
		if expectedValue != nil {
			t.Errorf("equation of type %T failed (%v - wanted nil)", v, v)
		}

	case int:
		switch ev := expectedValue.(type) {
		case int:
			if v != ev {
				t.Errorf("equation of type %T failed (%d - wanted %d)", v, v, ev)
			}
		default:
			t.Fatalf("values for Equate() are not the same type (%T and %T)", v, expectedValue)
		}

	case int64:
		switch ev := expectedValue.(type) {
		case int:
			if v != int64(ev) {
				t.Errorf("equation of type %T failed (%d - wanted %d)", v, v, ev)
			}
		case int64:
			if v != ev {
				t.Errorf("equation of type %T failed (%d - wanted %d)", v, v, ev)
			}
		default:
			t.Fatalf("values for Equate() are not compatible (%T and %T)", v, ev)
		}

	case uint32:
		switch ev := expectedValue.(type) {
		case int:
			if v != uint32(ev) {
				t.Errorf("equation of type %T failed (%#08x - wanted %#08x)", v, v, ev)
			}
		case uint32:
			if v != ev {
				t.Errorf("equation of type %T failed (%#08x - wanted %#08x)", v, v, ev)
			}
		default:
			t.Fatalf("values for Equate() are not compatible (%T and %T)", v, ev)
		}

	case uint64:
		switch ev := expectedValue.(type) {
		case int:
			if v != uint64(ev) {
				t.Errorf("equation of type %T failed (%#x - wanted %#x)", v, v, ev)
			}
		case uint64:
			if v != ev {
				t.Errorf("equation of type %T failed (%#x - wanted %#x)", v, v, ev)
			}
		default:
			t.Fatalf("values for Equate() are not compatible (%T and %T)", v, ev)
		}

	case string:
		switch ev := expectedValue.(type) {
		case string:
			if v != ev {
				t.Errorf("equation of type %T failed (%s - wanted %s)", v, v, ev)
			}
		default:
			t.Fatalf("values for Equate() are not the same type (%T and %T)", v, expectedValue)
		}

	case bool:
		switch ev := expectedValue.(type) {
		case bool:
			if v != ev {
				t.Errorf("equation of type %T failed (%v - wanted %v)", v, v, ev)
			}
		default:
			t.Fatalf("values for Equate() are not the same type (%T and %T)", v, expectedValue)
		}
	}
}
