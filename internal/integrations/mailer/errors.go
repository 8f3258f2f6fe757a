package mailer

import "errors"

var (
	// ErrInvalidRecipient empty or malformed recipient address
	ErrInvalidRecipient = errors.New("mailer: invalid recipient")

	// ErrUnavailable SMTP server could not be reached
	ErrUnavailable = errors.New("mailer: smtp server unavailable")

	// ErrRejected SMTP server refused the message
	ErrRejected = errors.New("mailer: message rejected")
)
