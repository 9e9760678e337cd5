package core

import "errors"

var (
	ErrEmailNotRegistered = errors.New("email address is not registered")
	ErrInvalidSession     = errors.New("invalid or expired session")
	ErrForbidden          = errors.New("manager role required")
	ErrClockOutNotAllowed = errors.New("clock-out is not allowed yet")
	ErrActionInProgress   = errors.New("a clock action is already in progress")
	ErrMalformedToken     = errors.New("malformed share token")
	ErrTokenNotFound      = errors.New("share token not found")
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrInvalidRecordType  = errors.New("record type must be in or out")
)
