package service

import "errors"

var (
	ErrGeneratingID    = errors.New("error generating user id")
	ErrHashingPassword = errors.New("error hashing password")
)
