package identity

import (
	"errors"
	"fmt"

	"github.com/Vonakala/Appointment-App-Service-Request/internal/domain"
)

var (
	// ErrAccountNotFound no account registered with the email
	ErrAccountNotFound = fmt.Errorf("%w: identity: account not found", domain.ErrNotFound)

	// ErrEmailTaken an account with the email already exists
	ErrEmailTaken = fmt.Errorf("%w: identity: email already registered", domain.ErrDuplicate)

	// ErrInvalidCredentials email or password does not match
	ErrInvalidCredentials = errors.New("identity: invalid credentials")

	// ErrInvalidInput empty email or password
	ErrInvalidInput = errors.New("identity: email and password are required")

	// ErrHashPassword bcrypt failed
	ErrHashPassword = errors.New("identity: failed to hash password")

	// ErrInvalidToken token is malformed, badly signed or expired
	ErrInvalidToken = errors.New("identity: invalid token")

	// ErrExpiredToken token signature is valid but it has expired
	ErrExpiredToken = fmt.Errorf("%w: expired", ErrInvalidToken)
)
