package controller

import "errors"

var (
	ErrWrongPhase     = errors.New("shot can only be executed while charging")
	ErrDegenerateShot = errors.New("shot impulse is too small to move the ball")
)
