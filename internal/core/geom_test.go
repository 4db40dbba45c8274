package core

import (
	"math"
	"testing"
)

func TestVec2Arithmetic(t *testing.T) {
	a := V(3, 4)
	b := V(1, -2)

	if got := a.Add(b); got != V(4, 2) {
		t.Errorf("Add() = %v, expected (4, 2)", got)
	}
	if got := a.Sub(b); got != V(2, 6) {
		t.Errorf("Sub() = %v, expected (2, 6)", got)
	}
	if got := a.Scale(0.5); got != V(1.5, 2) {
		t.Errorf("Scale() = %v, expected (1.5, 2)", got)
	}
	if got := a.Len(); got != 5 {
		t.Errorf("Len() = %f, expected 5", got)
	}
	if got := V(0, 0).Dist(a); got != 5 {
		t.Errorf("Dist() = %f, expected 5", got)
	}
}

func TestVec2Normalize(t *testing.T) {
	tests := []struct {
		name string
		in   Vec2
		want Vec2
	}{
		{"axis x", V(10, 0), V(1, 0)},
		{"axis -y", V(0, -3), V(0, -1)},
		{"3-4-5", V(3, 4), V(0.6, 0.8)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.in.Normalize()
			if math.Abs(got.X-tc.want.X) > 1e-12 || math.Abs(got.Y-tc.want.Y) > 1e-12 {
				t.Errorf("Normalize(%v) = %v, expected %v", tc.in, got, tc.want)
			}
			if math.Abs(got.Len()-1) > 1e-12 {
				t.Errorf("Normalize(%v) has length %f", tc.in, got.Len())
			}
		})
	}
}

func TestVec2NormalizeZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Normalize of zero vector should panic")
		}
	}()
	V(0, 0).Normalize()
}

func TestBoxOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{"overlapping", NewBox(V(0, 0), 8, 8), NewBox(V(4, 4), 16, 16), true},
		{"touching right edge", NewBox(V(0, 0), 8, 8), NewBox(V(8, 0), 16, 16), false},
		{"touching bottom edge", NewBox(V(0, 0), 8, 8), NewBox(V(0, 8), 16, 16), false},
		{"sub-unit overlap", NewBox(V(0, 0), 8, 8), NewBox(V(7.9, 7.9), 16, 16), true},
		{"apart", NewBox(V(0, 0), 8, 8), NewBox(V(40, 40), 16, 16), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Overlaps(tc.a); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestSignBit(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{1.5, 1},
		{-0.25, -1},
		{0, 1},
		{math.Copysign(0, -1), -1},
	}

	for _, tc := range tests {
		if got := SignBit(tc.in); got != tc.want {
			t.Errorf("SignBit(%v) = %d, expected %d", tc.in, got, tc.want)
		}
	}
}

func TestRectContains(t *testing.T) {
	panel := NewRect(12, 5, 16, 5)

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"corner", 12, 5, true},
		{"interior", 20, 7, true},
		{"last column", 27, 9, true},
		{"right edge is exclusive", 28, 7, false},
		{"bottom edge is exclusive", 20, 10, false},
		{"left of panel", 11, 7, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := panel.Contains(tc.x, tc.y); got != tc.want {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.want)
			}
		})
	}
}

func TestClampBounds(t *testing.T) {
	if got := Clamp(30, 0, 15); got != 15 {
		t.Errorf("Clamp(30, 0, 15) = %d, expected 15", got)
	}
	if got := Clamp(-2, 0, 15); got != 0 {
		t.Errorf("Clamp(-2, 0, 15) = %d, expected 0", got)
	}
	if got := Clamp(7, 0, 15); got != 7 {
		t.Errorf("Clamp(7, 0, 15) = %d, expected 7", got)
	}
}
