package canvas

import "errors"

var (
	// ErrInvalidHandle is returned for an unknown or deleted image or font handle.
	ErrInvalidHandle = errors.New("canvas: invalid handle")

	// ErrSingularTransform is returned when inverting a transform whose
	// determinant is zero.
	ErrSingularTransform = errors.New("canvas: singular transform")

	// ErrNoFrame is returned by drawing operations issued outside
	// BeginFrame/EndFrame.
	ErrNoFrame = errors.New("canvas: no frame in progress")

	// ErrClosed is returned when a closed Context is used.
	ErrClosed = errors.New("canvas: context closed")
)
