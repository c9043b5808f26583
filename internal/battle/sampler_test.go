package battle

import (
	"math"
	"math/rand"
	"testing"
)

func TestSampleStaysInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	s := NewPowerSampler(rng)
	cases := []struct {
		center, min, max, stdDev float64
	}{
		{0.85, 0.5, 1.2, 0.15},
		{1.0, 0.1, 2.0, 0.5},
		{10, 5, 11, 3},
	}
	for _, c := range cases {
		for i := 0; i < 10000; i++ {
			v := s.Sample(c.center, c.min, c.max, c.stdDev)
			if v < c.min || v > c.max {
				t.Fatalf("sample %v outside [%v, %v] (center %v stddev %v)", v, c.min, c.max, c.center, c.stdDev)
			}
		}
	}
}

func TestSampleMeanNearCenter(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	s := NewPowerSampler(rng)
	sum := 0.0
	const draws = 5000
	for i := 0; i < draws; i++ {
		sum += s.Sample(0.85, 0.5, 1.2, 0.15)
	}
	mean := sum / draws
	if math.Abs(mean-0.85) > 0.02 {
		t.Fatalf("empirical mean %v too far from 0.85", mean)
	}
}
