package service

import "errors"

var (
	ErrInvalidToken       = errors.New("invalid invitation token")
	ErrAlreadySubmitted   = errors.New("you have already submitted an RSVP")
	ErrSubmitterRequired  = errors.New("submitter name is required")
	ErrGuestCountNegative = errors.New("guest count cannot be negative")
	ErrNameRequired       = errors.New("valid name(s) required")
	ErrInvalidPassword    = errors.New("invalid password")
)
