package pricebook

import (
	"fmt"
	"math"
)

// Change is the relative change of a price between two observations.
//
// A change from a zero price is undefined, it prints as "0%".
type Change struct {
	ratio   float64
	defined bool
}

// NewChange returns the change from 'from' to 'to'.
func NewChange(from, to float64) Change {
	if from == 0 {
		return Change{}
	}
	return Change{ratio: (to - from) / from, defined: true}
}

// Ratio returns the change as a ratio, 0.1 for +10%.
func (c Change) Ratio() float64 { return c.ratio }

// Percent returns the change in percent.
func (c Change) Percent() float64 { return c.ratio * 100 }

// Defined reports whether the start price was not zero.
func (c Change) Defined() bool { return c.defined }

// Exceeds reports whether the magnitude of the change reaches threshold.
func (c Change) Exceeds(threshold float64) bool {
	return c.defined && math.Abs(c.ratio) >= threshold
}

// String returns the signed percentage with one decimal, "+14.3%".
func (c Change) String() string {
	switch {
	case !c.defined:
		return "0%"
	case c.ratio == 0:
		return "0.0%"
	}
	return fmt.Sprintf("%+.1f%%", c.Percent())
}
