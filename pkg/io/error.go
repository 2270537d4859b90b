package io

import "fmt"

// InsufficientBufferError tells the caller that a plane of a bitmap is not big
// enough to hold the rows it is expected to hold, either because its slice is
// too short or because its stride is narrower than a row.
type InsufficientBufferError struct {
	// Plane is the index of the offending plane.
	Plane int
	// RequiredSize is the minimal length of the plane slice.
	RequiredSize int
}

func (e *InsufficientBufferError) Error() string {
	return fmt.Sprintf("plane %d: provided buffer doesn't meet the size requirement of length, %d", e.Plane, e.RequiredSize)
}
