// Package level maps press counts to output levels.
package level

import "math/bits"

// Percent maps a press count to an output level in [0,100].
//
// Counts at or above full saturate at 100; below it the level is
// floor(count*100/full), computed in 64 bits so the product cannot wrap.
// A zero full therefore always yields 100.
func Percent(count, full uint32) uint32 {
	if count >= full {
		return 100
	}
	return uint32(uint64(count) * 100 / uint64(full))
}

// Duties holds one duty value (0..100) per LED channel, in fill order.
type Duties [3]uint32

// Split spreads one percentage over three channels. Channel 0 reaches 100
// before channel 1 rises, and channel 1 before channel 2.
func Split(pct uint32) Duties {
	scaled := satMul(pct, 3)
	return Duties{
		min(scaled, 100),
		min(satSub(scaled, 100), 100),
		min(satSub(scaled, 200), 100),
	}
}

func satMul(a, b uint32) uint32 {
	hi, lo := bits.Mul32(a, b)
	if hi != 0 {
		return ^uint32(0)
	}
	return lo
}

func satSub(a, b uint32) uint32 {
	if a < b {
		return 0
	}
	return a - b
}
