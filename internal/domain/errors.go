package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across layers.
var (
	ErrNotFound = errors.New("not found")

	// ErrRecipeNotFound is returned when an operation names a recipe that
	// is not in the catalog. It matches ErrNotFound under errors.Is.
	ErrRecipeNotFound = fmt.Errorf("recipe %w", ErrNotFound)
)
