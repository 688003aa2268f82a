package quaternion

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

var (
	// ErrZeroAxis indicates a rotation axis of zero length.
	ErrZeroAxis = errors.New("quaternion: rotation axis has zero length")
	// ErrNaNInf indicates a non-finite angle or axis component.
	ErrNaNInf = errors.New("quaternion: NaN or Inf in angle or axis")
)

// Quaternion is a rotation quaternion. The zero value is not a rotation;
// use New or Identity.
type Quaternion struct {
	q quat.Number
}

// Identity returns the rotation by zero angle.
func Identity() Quaternion {
	return Quaternion{q: quat.Number{Real: 1}}
}

// New returns the quaternion rotating by angle about axis. If degree is
// true, angle is in degrees, otherwise radians. The axis need not be unit
// length.
func New(angle float64, axis r3.Vec, degree bool) (Quaternion, error) {
	if math.IsNaN(angle) || math.IsInf(angle, 0) || !finite(axis) {
		return Quaternion{}, ErrNaNInf
	}
	n := r3.Norm(axis)
	if n == 0 {
		return Quaternion{}, ErrZeroAxis
	}
	if degree {
		angle *= math.Pi / 180
	}
	s, c := math.Sincos(angle / 2)
	u := r3.Scale(s/n, axis)

	return Quaternion{q: quat.Number{Real: c, Imag: u.X, Jmag: u.Y, Kmag: u.Z}}, nil
}

// FromNumber wraps a raw gonum quaternion.
func FromNumber(q quat.Number) Quaternion {
	return Quaternion{q: q}
}

// Number returns the underlying gonum quaternion.
func (q Quaternion) Number() quat.Number {
	return q.q
}

// Norm returns |q|.
func (q Quaternion) Norm() float64 {
	return quat.Abs(q.q)
}

// Normalize returns q/|q|. A zero quaternion is returned unchanged.
func (q Quaternion) Normalize() Quaternion {
	n := q.Norm()
	if n == 0 {
		return q
	}

	return Quaternion{q: quat.Scale(1/n, q.q)}
}

// Mul returns the Hamilton product q·p (apply p first, then q).
func (q Quaternion) Mul(p Quaternion) Quaternion {
	return Quaternion{q: quat.Mul(q.q, p.q)}
}

// Conj returns the conjugate quaternion, the inverse rotation for unit q.
func (q Quaternion) Conj() Quaternion {
	return Quaternion{q: quat.Conj(q.q)}
}

// Angle returns the rotation angle in radians, in [0, 2π].
func (q Quaternion) Angle() float64 {
	u := q.Normalize().q

	return 2 * math.Acos(math.Max(-1, math.Min(1, u.Real)))
}

// Rotate returns q·v·q*. q is expected to be a unit quaternion.
func (q Quaternion) Rotate(v r3.Vec) r3.Vec {
	p := quat.Number{Imag: v.X, Jmag: v.Y, Kmag: v.Z}
	r := quat.Mul(quat.Mul(q.q, p), quat.Conj(q.q))

	return r3.Vec{X: r.Imag, Y: r.Jmag, Z: r.Kmag}
}

// RotateAll rotates every vector in vs, returning a new slice.
func (q Quaternion) RotateAll(vs []r3.Vec) []r3.Vec {
	out := make([]r3.Vec, len(vs))
	for i, v := range vs {
		out[i] = q.Rotate(v)
	}

	return out
}

func finite(v r3.Vec) bool {
	for _, x := range [3]float64{v.X, v.Y, v.Z} {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}

	return true
}
