package gridgraph

import "errors"

// ErrOutOfBounds names a point outside a RectangularGrid's box. No function
// in this package returns it: Index and Coordinate do not check bounds.
var ErrOutOfBounds = errors.New("gridgraph: point out of bounds")
