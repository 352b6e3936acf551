// SPDX-License-Identifier: MIT

// Package matrix provides a small row-major dense matrix of float64 used for
// rotation matrices and linear maps over vectors.
//
// Purpose:
//   - Give quaternions a matrix form (quat.RotationMatrix / FromRotationMatrix).
//   - Apply linear maps to vector components without going through quaternions.
//
// Contract:
//   - Storage is a flat buffer with the index formula i*cols + j.
//   - At/Set return ErrOutOfRange instead of panicking.
//   - Every operation returns a new matrix; inputs are never mutated.
//
// Complexity quicksheet:
//   - NewDense: O(r*c); At/Set: O(1); Mul: O(r*k*c); Transpose/MatVec: O(r*c).
package matrix
