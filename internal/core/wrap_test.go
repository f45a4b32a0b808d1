package core

import (
	"math/rand"
	"testing"
)

func TestWrap(t *testing.T) {
	const w, h = 640.0, 480.0

	tests := []struct {
		name     string
		p        Vec2
		r        float64
		expected Vec2
	}{
		{"inside untouched", V(320, 240), 14, V(320, 240)},
		{"within margin right untouched", V(650, 240), 14, V(650, 240)},
		{"exactly at right margin untouched", V(654, 240), 14, V(654, 240)},
		{"past right edge", V(654.5, 240), 14, V(-14, 240)},
		{"past left edge", V(-15, 240), 14, V(654, 240)},
		{"past bottom edge", V(320, 495), 14, V(320, -14)},
		{"past top edge", V(320, -15), 14, V(320, 494)},
		{"corner wraps both axes", V(700, 500), 10, V(-10, -10)},
		{"zero radius", V(641, -1), 0, V(0, 480)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Wrap(tc.p, tc.r, w, h)
			if got != tc.expected {
				t.Errorf("Wrap(%v, %v) = %v, expected %v", tc.p, tc.r, got, tc.expected)
			}
		})
	}
}

func TestWrapIdempotent(t *testing.T) {
	const w, h = 640.0, 480.0
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 1000; i++ {
		r := rng.Float64() * 100
		p := V(rng.Float64()*(w+2*r)-r, rng.Float64()*(h+2*r)-r)

		once := Wrap(p, r, w, h)
		if once != p {
			t.Fatalf("Wrap moved in-bounds point %v (r=%v) to %v", p, r, once)
		}
		if twice := Wrap(once, r, w, h); twice != once {
			t.Fatalf("Wrap not idempotent: %v -> %v", once, twice)
		}
	}
}

func TestWrapRightEdgeProperty(t *testing.T) {
	const w, h = 640.0, 480.0
	rng := rand.New(rand.NewSource(2))

	for i := 0; i < 1000; i++ {
		r := rng.Float64() * 100
		p := V(w+r+0.001+rng.Float64()*200, rng.Float64()*h)
		if got := Wrap(p, r, w, h); got.X != -r {
			t.Fatalf("Wrap(%v, %v).X = %v, expected %v", p, r, got.X, -r)
		}
	}
}
