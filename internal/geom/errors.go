package geom

import "errors"

// ErrEdgeIndex indicates an edge refers to a vertex the solid does not have.
var ErrEdgeIndex = errors.New("geom: edge index out of range")
