package device

import "fmt"

// Bounded holds an integer constrained to the inclusive range [min, max].
// Writes outside the range are dropped and the previous value is kept.
type Bounded struct {
	min   int
	max   int
	value int
}

// NewBounded returns a Bounded starting at initial. It panics if the range is
// empty or initial lies outside it.
func NewBounded(lo, hi, initial int) *Bounded {
	if lo > hi {
		panic(fmt.Sprintf("device: bounded range [%d,%d] is empty", lo, hi))
	}
	if initial < lo || initial > hi {
		panic(fmt.Sprintf("device: initial value %d outside [%d,%d]", initial, lo, hi))
	}
	return &Bounded{min: lo, max: hi, value: initial}
}

// Read returns the current value.
func (b *Bounded) Read() int {
	return b.value
}

// Write adopts v when it lies within range. Out-of-range values are ignored.
func (b *Bounded) Write(v int) {
	if v < b.min || v > b.max {
		return
	}
	b.value = v
}

// Min returns the lower bound.
func (b *Bounded) Min() int { return b.min }

// Max returns the upper bound.
func (b *Bounded) Max() int { return b.max }

// force stores v without checking the range.
func (b *Bounded) force(v int) {
	b.value = v
}
