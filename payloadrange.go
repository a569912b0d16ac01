package launchdb

import(
	"fmt"
	"math"
)

// PayloadRange is an inclusive [Lo,Hi] interval of payload masses, in kg. A range whose Lo
// is above its Hi matches nothing.
type PayloadRange struct {
	Lo, Hi float64
}

func (r PayloadRange)Contains(kg float64) bool { return kg >= r.Lo && kg <= r.Hi }
func (r PayloadRange)IsEmpty() bool            { return r.Lo > r.Hi }
func (r PayloadRange)Width() float64           { return r.Hi - r.Lo }

func (r PayloadRange)String() string { return fmt.Sprintf("[%.0f,%.0f]kg", r.Lo, r.Hi) }

// Union is the smallest range covering both.
func (r PayloadRange)Union(o PayloadRange) PayloadRange {
	return PayloadRange{math.Min(r.Lo, o.Lo), math.Max(r.Hi, o.Hi)}
}

// ClampTo trims r to lie within outer. If they don't overlap, the result is empty.
func (r PayloadRange)ClampTo(outer PayloadRange) PayloadRange {
	return PayloadRange{math.Max(r.Lo, outer.Lo), math.Min(r.Hi, outer.Hi)}
}
