// pkg/physics/vector.go
package physics

import "math"

// epsilon is the magnitude below which a vector is treated as zero.
// Normalizing or dividing by anything smaller would amplify float noise
// into garbage directions.
const epsilon = 1e-9

// Vector3 represents a 3D vector with x, y and z components.
// In aircraft state, Y is the vertical (altitude) axis.
type Vector3 struct {
	X float64
	Y float64
	Z float64
}

// Add returns the sum of two vectors
func (v Vector3) Add(other Vector3) Vector3 {
	return Vector3{
		X: v.X + other.X,
		Y: v.Y + other.Y,
		Z: v.Z + other.Z,
	}
}

// Sub returns the difference between two vectors
func (v Vector3) Sub(other Vector3) Vector3 {
	return Vector3{
		X: v.X - other.X,
		Y: v.Y - other.Y,
		Z: v.Z - other.Z,
	}
}

// Scale multiplies the vector by a scalar value
func (v Vector3) Scale(factor float64) Vector3 {
	return Vector3{
		X: v.X * factor,
		Y: v.Y * factor,
		Z: v.Z * factor,
	}
}

// Length returns the magnitude of the vector
func (v Vector3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// LengthSquared returns magnitude squared (optimization for comparisons)
func (v Vector3) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Normalize returns a unit vector in the same direction.
// A near-zero vector normalizes to the zero vector rather than dividing
// by zero; callers that need a direction must check IsZero first.
func (v Vector3) Normalize() Vector3 {
	length := v.Length()
	if length < epsilon {
		return Vector3{}
	}
	return Vector3{
		X: v.X / length,
		Y: v.Y / length,
		Z: v.Z / length,
	}
}

// IsZero reports whether the vector's magnitude is below the guard
// threshold used by Normalize.
func (v Vector3) IsZero() bool {
	return v.LengthSquared() < epsilon*epsilon
}

// Dot returns the dot product of two vectors
func (v Vector3) Dot(other Vector3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors
func (v Vector3) Cross(other Vector3) Vector3 {
	return Vector3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Distance returns the distance between two vectors
func (v Vector3) Distance(other Vector3) float64 {
	return v.Sub(other).Length()
}

// Horizontal returns the magnitude of the horizontal (XZ plane) component.
func (v Vector3) Horizontal() float64 {
	return math.Sqrt(v.X*v.X + v.Z*v.Z)
}

// ForwardAxis returns the unit vector pointing along the aircraft's nose
// for the given yaw and pitch (radians). Yaw rotates about the vertical
// axis from +X toward +Z; pitch raises the nose out of the XZ plane.
func ForwardAxis(yaw, pitch float64) Vector3 {
	cp := math.Cos(pitch)
	return Vector3{
		X: cp * math.Cos(yaw),
		Y: math.Sin(pitch),
		Z: cp * math.Sin(yaw),
	}
}

// UpAxis returns the unit vector pointing out of the aircraft's canopy for
// the given yaw, pitch and roll (radians). Rolling banks the axis toward
// the right wing.
func UpAxis(yaw, pitch, roll float64) Vector3 {
	forward := ForwardAxis(yaw, pitch)
	right := forward.Cross(Vector3{Y: 1})
	if right.IsZero() {
		// Nose pointing straight up or down: any horizontal axis works.
		right = Vector3{X: -math.Sin(yaw), Z: math.Cos(yaw)}
	}
	right = right.Normalize()
	up := right.Cross(forward)
	return up.Scale(math.Cos(roll)).Add(right.Scale(math.Sin(roll)))
}
