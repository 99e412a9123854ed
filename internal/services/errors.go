package services

import "errors"

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrThemeNotFound   = errors.New("theme not found")
)
