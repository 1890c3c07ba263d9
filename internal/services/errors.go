package services

import "errors"

// Sentinel errors mapped by handlers onto the response envelope. Anything
// else surfacing from a service is logged and rendered as a generic
// internal error.
var (
	ErrNotFound         = errors.New("not found")
	ErrSubnameExists    = errors.New("subname already exists")
	ErrUsernameExists   = errors.New("username already exists")
	ErrEmailExists      = errors.New("email already exists")
	ErrWrongCredentials = errors.New("invalid username or password")
	ErrInfoExists       = errors.New("info already exists")
	ErrAssocExists      = errors.New("association already exists")
	ErrUnknownPageType  = errors.New("unknown page type")
	ErrMissingPayload   = errors.New("missing page payload")
)
