// Package quaternion provides the unit-quaternion rotation primitive used to
// rotate lattice vectors and atomic coordinates.
//
// What:
//
//   - New builds the quaternion for a rotation of angle about axis
//     (degrees or radians).
//   - Rotate / RotateAll apply q·v·q* to vectors.
//
// The arithmetic is delegated to gonum.org/v1/gonum/num/quat; this package
// only fixes the convention (angle/axis construction, explicit
// renormalization before use).
//
// Errors:
//
//   - ErrZeroAxis: the rotation axis has zero length.
//   - ErrNaNInf: the angle or axis is not finite.
package quaternion
