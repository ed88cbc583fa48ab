// SPDX-License-Identifier: MIT

package table

import (
	"encoding/json"
	"math"
	"strconv"
)

// Distance is a non-negative total weight or Infinity.
// The zero value is Infinity. A sum that would exceed math.MaxInt64
// saturates to Infinity.
type Distance struct {
	v      int64
	finite bool
}

// Infinity is the "no finite distance discovered yet" sentinel.
var Infinity = Distance{}

// Finite returns a known distance of v.
func Finite(v int64) Distance { return Distance{v: v, finite: true} }

// IsInf reports whether d is the sentinel.
func (d Distance) IsInf() bool { return !d.finite }

// Value returns the finite value and true, or 0 and false for Infinity.
func (d Distance) Value() (int64, bool) { return d.v, d.finite }

// Add returns d + w. Infinity absorbs, and an overflowing sum is Infinity.
func (d Distance) Add(w int64) Distance {
	if !d.finite {
		return Infinity
	}

	return sum(d.v, w)
}

// Plus returns d + o. Infinity on either side absorbs, and an overflowing
// sum is Infinity.
func (d Distance) Plus(o Distance) Distance {
	if !d.finite || !o.finite {
		return Infinity
	}

	return sum(d.v, o.v)
}

// sum adds two weights, saturating to Infinity past math.MaxInt64.
func sum(a, b int64) Distance {
	if b > 0 && a > math.MaxInt64-b {
		return Infinity
	}

	return Finite(a + b)
}

// Less reports d < o with Infinity as positive infinity:
// finite < Infinity, and Infinity is never less than anything.
func (d Distance) Less(o Distance) bool {
	switch {
	case !d.finite:
		return false
	case !o.finite:
		return true
	default:
		return d.v < o.v
	}
}

// String renders "Infinity" or the decimal value.
func (d Distance) String() string {
	if !d.finite {
		return "Infinity"
	}

	return strconv.FormatInt(d.v, 10)
}

// MarshalJSON encodes Infinity as null and finite values as numbers.
func (d Distance) MarshalJSON() ([]byte, error) {
	if !d.finite {
		return []byte("null"), nil
	}

	return []byte(strconv.FormatInt(d.v, 10)), nil
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (d *Distance) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*d = Infinity
		return nil
	}

	var v int64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*d = Finite(v)

	return nil
}
