package service

import "errors"

var (
	ErrNotAuthenticated  = errors.New("sign in to continue")
	ErrForbidden         = errors.New("your role cannot perform this action")
	ErrToggleInFlight    = errors.New("a status change for this store is already in progress")
	ErrSnapshotMismatch  = errors.New("store id does not match the request path")
	ErrInvalidPreference = errors.New("unsupported language or theme")
)
