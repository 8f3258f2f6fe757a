package smsgateway

import "errors"

var (
	// ErrInvalidRecipient empty phone number
	ErrInvalidRecipient = errors.New("smsgateway client: invalid recipient")

	// ErrInternal request could not be built
	ErrInternal = errors.New("smsgateway client: internal error")

	// ErrUnavailable gateway could not be reached
	ErrUnavailable = errors.New("smsgateway client: gateway unavailable")

	// ErrRejected gateway answered with a non-2xx status
	ErrRejected = errors.New("smsgateway client: message rejected")
)
