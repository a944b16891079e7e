package workflow

import "errors"

var (
	ErrForbidden         = errors.New("caller is not allowed to perform this action")
	ErrInvalidTransition = errors.New("request state does not allow this transition")
)
