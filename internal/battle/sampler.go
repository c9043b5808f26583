package battle

import (
	"math"
	"math/rand"
)

// PowerSampler draws bounded, bell-shaped multipliers used to size an
// opponent's power relative to the player's.
type PowerSampler struct {
	rng *rand.Rand
}

func NewPowerSampler(rng *rand.Rand) *PowerSampler {
	return &PowerSampler{rng: rng}
}

// Sample draws a standard normal variate via the Box–Muller transform
// and returns center + z*stdDev clamped to [min, max]. Callers must
// ensure min < center < max and stdDev > 0; degenerate inputs are a
// programmer error and are not validated at runtime.
func (s *PowerSampler) Sample(center, min, max, stdDev float64) float64 {
	// 1-Float64() keeps u1 in (0, 1] so the log stays finite.
	u1 := 1.0 - s.rng.Float64()
	u2 := s.rng.Float64()
	z := math.Sqrt(-2.0*math.Log(u1)) * math.Cos(2.0*math.Pi*u2)
	v := center + z*stdDev
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
