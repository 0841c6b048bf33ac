package entity

import "errors"

var (
	ErrEmailTaken         = errors.New("user with this email already exists")
	ErrInvalidRole        = errors.New("unknown role")
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrUnauthorized       = errors.New("could not validate credentials")
	ErrNotFound           = errors.New("not found")
)
