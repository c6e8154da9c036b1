package anim

import "github.com/pkg/errors"

var (
	// ErrInvalidCellSize indicates a non-positive cell pixel size.
	ErrInvalidCellSize = errors.New("anim: cell size must be positive")

	// ErrInvalidSpeed indicates a frame threshold below one.
	ErrInvalidSpeed = errors.New("anim: speed must be at least 1")

	// ErrSurfaceMismatch indicates a surface whose pixel size differs from
	// grid size times cell size.
	ErrSurfaceMismatch = errors.New("anim: surface size does not match grid")
)
