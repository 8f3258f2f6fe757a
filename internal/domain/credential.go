package domain

import "time"

// Credential login secret of an identity gateway account
type Credential struct {
	AccountID    string
	Email        string // lower-cased
	PasswordHash string
	CreatedAt    time.Time
}
