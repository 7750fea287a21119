package game

import "errors"

var (
	ErrBadLayout         = errors.New("game: invalid board layout")
	ErrNotStarted        = errors.New("game: no dice have been thrown yet")
	ErrIllegalAction     = errors.New("game: illegal action")
	ErrUnresolvedSpinoff = errors.New("game: spinoff must be resolved to a publication or patent")
)
