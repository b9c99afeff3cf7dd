// pkg/physics/vector_test.go
package physics

import (
	"math"
	"testing"
)

func TestVector3_Add(t *testing.T) {
	tests := []struct {
		name     string
		v1       Vector3
		v2       Vector3
		expected Vector3
	}{
		{
			name:     "positive_vectors",
			v1:       Vector3{X: 3, Y: 4, Z: 1},
			v2:       Vector3{X: 1, Y: 2, Z: 2},
			expected: Vector3{X: 4, Y: 6, Z: 3},
		},
		{
			name:     "negative_vectors",
			v1:       Vector3{X: -3, Y: -4, Z: -5},
			v2:       Vector3{X: -1, Y: -2, Z: -3},
			expected: Vector3{X: -4, Y: -6, Z: -8},
		},
		{
			name:     "zero_vector",
			v1:       Vector3{},
			v2:       Vector3{X: 5, Y: -3, Z: 2},
			expected: Vector3{X: 5, Y: -3, Z: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.v1.Add(tt.v2)
			if result != tt.expected {
				t.Errorf("Add() = %v, expected %v", result, tt.expected)
			}
		})
	}
}

func TestVector3_Sub(t *testing.T) {
	v1 := Vector3{X: 5, Y: 7, Z: 9}
	v2 := Vector3{X: 1, Y: 2, Z: 3}
	expected := Vector3{X: 4, Y: 5, Z: 6}
	if result := v1.Sub(v2); result != expected {
		t.Errorf("Sub() = %v, expected %v", result, expected)
	}
}

func TestVector3_Scale(t *testing.T) {
	tests := []struct {
		name     string
		v        Vector3
		factor   float64
		expected Vector3
	}{
		{
			name:     "double",
			v:        Vector3{X: 1, Y: -2, Z: 3},
			factor:   2,
			expected: Vector3{X: 2, Y: -4, Z: 6},
		},
		{
			name:     "zero_factor",
			v:        Vector3{X: 1, Y: 2, Z: 3},
			factor:   0,
			expected: Vector3{},
		},
		{
			name:     "negative_factor",
			v:        Vector3{X: 1, Y: 2, Z: 3},
			factor:   -1,
			expected: Vector3{X: -1, Y: -2, Z: -3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := tt.v.Scale(tt.factor); result != tt.expected {
				t.Errorf("Scale() = %v, expected %v", result, tt.expected)
			}
		})
	}
}

func TestVector3_Length(t *testing.T) {
	v := Vector3{X: 2, Y: 3, Z: 6}
	if got := v.Length(); math.Abs(got-7) > 1e-12 {
		t.Errorf("Length() = %v, expected 7", got)
	}
	if got := v.LengthSquared(); math.Abs(got-49) > 1e-12 {
		t.Errorf("LengthSquared() = %v, expected 49", got)
	}
}

func TestVector3_Normalize(t *testing.T) {
	tests := []struct {
		name string
		v    Vector3
	}{
		{name: "unit_result", v: Vector3{X: 3, Y: 4, Z: 12}},
		{name: "already_unit", v: Vector3{X: 0, Y: 1, Z: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := tt.v.Normalize()
			if math.Abs(n.Length()-1) > 1e-12 {
				t.Errorf("Normalize() length = %v, expected 1", n.Length())
			}
		})
	}
}

func TestVector3_Normalize_ZeroGuard(t *testing.T) {
	tests := []struct {
		name string
		v    Vector3
	}{
		{name: "exact_zero", v: Vector3{}},
		{name: "below_epsilon", v: Vector3{X: 1e-12, Y: -1e-12, Z: 1e-13}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := tt.v.Normalize()
			if n != (Vector3{}) {
				t.Errorf("Normalize() = %v, expected zero vector", n)
			}
			if !tt.v.IsZero() {
				t.Errorf("IsZero() = false, expected true for %v", tt.v)
			}
		})
	}
}

func TestVector3_Cross(t *testing.T) {
	tests := []struct {
		name     string
		v1       Vector3
		v2       Vector3
		expected Vector3
	}{
		{
			name:     "x_cross_y",
			v1:       Vector3{X: 1},
			v2:       Vector3{Y: 1},
			expected: Vector3{Z: 1},
		},
		{
			name:     "y_cross_z",
			v1:       Vector3{Y: 1},
			v2:       Vector3{Z: 1},
			expected: Vector3{X: 1},
		},
		{
			name:     "parallel_vectors",
			v1:       Vector3{X: 2, Y: 4, Z: 6},
			v2:       Vector3{X: 1, Y: 2, Z: 3},
			expected: Vector3{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := tt.v1.Cross(tt.v2); result != tt.expected {
				t.Errorf("Cross() = %v, expected %v", result, tt.expected)
			}
		})
	}
}

func TestVector3_Dot(t *testing.T) {
	v1 := Vector3{X: 1, Y: 2, Z: 3}
	v2 := Vector3{X: 4, Y: -5, Z: 6}
	if got := v1.Dot(v2); math.Abs(got-12) > 1e-12 {
		t.Errorf("Dot() = %v, expected 12", got)
	}
}

func TestVector3_Horizontal(t *testing.T) {
	v := Vector3{X: 3, Y: 100, Z: 4}
	if got := v.Horizontal(); math.Abs(got-5) > 1e-12 {
		t.Errorf("Horizontal() = %v, expected 5", got)
	}
}

func TestForwardAxis(t *testing.T) {
	tests := []struct {
		name     string
		yaw      float64
		pitch    float64
		expected Vector3
	}{
		{name: "level_east", yaw: 0, pitch: 0, expected: Vector3{X: 1}},
		{name: "level_quarter_turn", yaw: math.Pi / 2, pitch: 0, expected: Vector3{Z: 1}},
		{name: "straight_up", yaw: 0, pitch: math.Pi / 2, expected: Vector3{Y: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ForwardAxis(tt.yaw, tt.pitch)
			if got.Distance(tt.expected) > 1e-9 {
				t.Errorf("ForwardAxis() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestUpAxis(t *testing.T) {
	t.Run("wings_level", func(t *testing.T) {
		up := UpAxis(0, 0, 0)
		if up.Distance(Vector3{Y: 1}) > 1e-9 {
			t.Errorf("UpAxis() = %v, expected world up", up)
		}
	})

	t.Run("ninety_degree_bank", func(t *testing.T) {
		up := UpAxis(0, 0, math.Pi/2)
		// Facing +X, a full right bank points the canopy along +Z.
		if up.Distance(Vector3{Z: 1}) > 1e-9 {
			t.Errorf("UpAxis() = %v, expected %v", up, Vector3{Z: 1})
		}
	})

	t.Run("vertical_nose_fallback", func(t *testing.T) {
		up := UpAxis(0, math.Pi/2, 0)
		if up.IsZero() {
			t.Error("UpAxis() returned zero vector for vertical nose")
		}
		if math.Abs(up.Length()-1) > 1e-9 {
			t.Errorf("UpAxis() length = %v, expected 1", up.Length())
		}
	})

	t.Run("always_unit_length", func(t *testing.T) {
		for yaw := 0.0; yaw < 6.3; yaw += 0.7 {
			for pitch := -1.5; pitch < 1.6; pitch += 0.5 {
				up := UpAxis(yaw, pitch, 0.3)
				if math.Abs(up.Length()-1) > 1e-9 {
					t.Fatalf("UpAxis(%v, %v, 0.3) length = %v", yaw, pitch, up.Length())
				}
			}
		}
	})
}
