package storage

import "errors"

var (
	ErrNotFound       = errors.New("record not found")
	ErrDuplicateSlug  = errors.New("slug already exists")
	ErrDuplicateEmail = errors.New("email already subscribed")
	ErrSessionExpired = errors.New("session expired or missing")
)
