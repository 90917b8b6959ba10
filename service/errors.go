package service

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrPostNotFound       = errors.New("post not found")
	ErrFollowNotFound     = errors.New("follow not found")
	ErrForbidden          = errors.New("not the owner")
	ErrEmptyContent       = errors.New("content is empty")
	ErrPasswordMismatch   = errors.New("passwords must match")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrUsernameRequired   = errors.New("username is required")
	ErrInvalidCredentials = errors.New("invalid username and/or password")
	ErrTokenRevoked       = errors.New("token revoked")
)
