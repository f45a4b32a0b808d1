package core

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

const eps = 1e-9

func TestVecArithmetic(t *testing.T) {
	a := V(3, 4)
	b := V(1, -2)

	assert.Equal(t, V(4, 2), a.Add(b))
	assert.Equal(t, V(6, 8), a.Scale(2))
	assert.Equal(t, V(-3, -4), a.Neg())
	assert.InDelta(t, 5.0, a.Len(), eps)
}

func TestVecNormalize(t *testing.T) {
	n := V(3, 4).Normalize()
	assert.InDelta(t, 0.6, n.X, eps)
	assert.InDelta(t, 0.8, n.Y, eps)
	assert.InDelta(t, 1.0, n.Len(), eps)

	// Zero vector stays zero instead of producing NaN
	z := Vec2{}.Normalize()
	assert.True(t, z.IsZero(), "Normalize(0) = %v, expected zero vector", z)
	assert.False(t, math.IsNaN(z.X) || math.IsNaN(z.Y))
}

func TestVecRotate(t *testing.T) {
	tests := []struct {
		name     string
		v        Vec2
		theta    float64
		expected Vec2
	}{
		{"identity", V(1, 0), 0, V(1, 0)},
		{"quarter turn", V(1, 0), math.Pi / 2, V(0, 1)},
		{"negative quarter turn", V(1, 0), -math.Pi / 2, V(0, -1)},
		{"half turn", V(2, 3), math.Pi, V(-2, -3)},
		{"full turn", V(2, 3), 2 * math.Pi, V(2, 3)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.v.Rotate(tc.theta)
			assert.InDelta(t, tc.expected.X, got.X, eps)
			assert.InDelta(t, tc.expected.Y, got.Y, eps)
		})
	}
}

func TestForward(t *testing.T) {
	tests := []struct {
		name     string
		heading  float64
		expected Vec2
	}{
		{"heading 0 points up", 0, V(0, -1)},
		{"quarter turn points right", math.Pi / 2, V(1, 0)},
		{"half turn points down", math.Pi, V(0, 1)},
		{"negative quarter turn points left", -math.Pi / 2, V(-1, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Forward(tc.heading)
			assert.InDelta(t, tc.expected.X, got.X, eps)
			assert.InDelta(t, tc.expected.Y, got.Y, eps)
			assert.InDelta(t, 1.0, got.Len(), eps)
		})
	}
}

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "touching horizontal edges count",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: true,
		},
		{
			name:     "touching vertical edges count",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 10, 10, 10),
			expected: true,
		},
		{
			name:     "touching corners count",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 10, 5, 5),
			expected: true,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "gap just past edge",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10.001, 0, 10, 10),
			expected: false,
		},
		{
			name:     "overlap on x only",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 20, 10, 10),
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := tc.b.Intersects(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestRectIntersectsSymmetricRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		a := RectAround(V(rng.Float64()*640, rng.Float64()*480), 1+rng.Float64()*100)
		b := RectAround(V(rng.Float64()*640, rng.Float64()*480), 1+rng.Float64()*100)
		if a.Intersects(b) != b.Intersects(a) {
			t.Fatalf("asymmetric intersection for %+v and %+v", a, b)
		}
	}
}

func TestRectAround(t *testing.T) {
	r := RectAround(V(100, 50), 14)

	assert.Equal(t, NewRect(86, 36, 28, 28), r)
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		p        Vec2
		expected bool
	}{
		{"inside", V(15, 15), true},
		{"top-left corner", V(10, 10), true},
		{"bottom-right corner", V(30, 25), true},
		{"outside left", V(5, 15), false},
		{"outside right", V(35, 15), false},
		{"outside top", V(15, 5), false},
		{"outside bottom", V(15, 30), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.p)
			if result != tc.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tc.p, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %v, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %v, expected 25", r.Bottom())
	}
}

func TestMinMaxAbs(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min should return the smaller value")
	}
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max should return the larger value")
	}
	if Abs(-5) != 5 || Abs(5) != 5 || Abs(0) != 0 {
		t.Error("Abs should return the magnitude")
	}
}
