package core

import "errors"

// ErrNotInvertible is returned when a transform with a zero determinant is
// supplied where an inverse is required
var ErrNotInvertible = errors.New("matrix is not invertible")
