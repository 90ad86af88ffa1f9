package mesh

import "errors"

// Errors returned by EditTriMesh operations.
var (
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrEmptyMesh       = errors.New("mesh has no triangles")
	ErrInvalidMesh     = errors.New("mesh failed validity check")
)
