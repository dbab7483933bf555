package game

import "errors"

// The closed set of rejections ExecutePly can return. All are recoverable:
// a rejected ply leaves the source state untouched and produces no new one.
var (
	ErrIllegalPlacement   = errors.New("illegal placement")
	ErrInsufficientPieces = errors.New("insufficient pieces")
	ErrIllegalSlide       = errors.New("illegal slide")
	ErrOutOfBounds        = errors.New("out of bounds")
)
