// File: errors.go
// Role: sentinel errors for size-validated generators: package-level
// sentinels, errors.Is branching, %w wrapping for context.
package generators

import "errors"

// ErrTooFewVertices indicates n is below the minimum a constructor accepts.
var ErrTooFewVertices = errors.New("generators: parameter too small")

// ErrTooManyVertices indicates n exceeds the maximum a constructor accepts.
var ErrTooManyVertices = errors.New("generators: parameter too large")
