package mesh

import "fmt"

// ValidationError reports a malformed pipeline parameter.
type ValidationError struct {
	Param  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Param, e.Reason)
}

// DegenerateInputError reports a point set too small for an operation to
// be defined over it.
type DegenerateInputError struct {
	Op   string
	Need int
	Have int
}

func (e *DegenerateInputError) Error() string {
	return fmt.Sprintf("%s requires at least %d points, have %d", e.Op, e.Need, e.Have)
}

// GeometryError reports invalid or empty polygon/polyline geometry.
type GeometryError struct {
	Reason string
	Err    error
}

func (e *GeometryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Reason, e.Err)
	}
	return e.Reason
}

func (e *GeometryError) Unwrap() error { return e.Err }

// TriangulationError wraps a failure of the triangulation engine. It is
// terminal for the pipeline; there is no partial mesh output.
type TriangulationError struct {
	Err error
}

func (e *TriangulationError) Error() string {
	return fmt.Sprintf("triangulation failed: %v", e.Err)
}

func (e *TriangulationError) Unwrap() error { return e.Err }
