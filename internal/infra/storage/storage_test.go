package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vonakala/Appointment-App-Service-Request/internal/config"
	"github.com/Vonakala/Appointment-App-Service-Request/internal/infra/storage/credential"
	"github.com/Vonakala/Appointment-App-Service-Request/internal/infra/storage/mongostore"
	"github.com/Vonakala/Appointment-App-Service-Request/internal/infra/storage/servicerequest"
	"github.com/Vonakala/Appointment-App-Service-Request/internal/infra/storage/user"
)

// Both backends must stay interchangeable.
var (
	_ UserRepository           = (*user.Repository)(nil)
	_ UserRepository           = (*mongostore.UserRepository)(nil)
	_ ServiceRequestRepository = (*servicerequest.Repository)(nil)
	_ ServiceRequestRepository = (*mongostore.ServiceRequestRepository)(nil)
	_ CredentialRepository     = (*credential.Repository)(nil)
	_ CredentialRepository     = (*mongostore.CredentialRepository)(nil)
)

func TestOpen_UnknownDriver(t *testing.T) {
	cfg := config.Default()
	cfg.Storage.Driver = "sqlite"

	repos, err := Open(context.Background(), cfg, Options{})
	require.Error(t, err)
	assert.Nil(t, repos)
	assert.Contains(t, err.Error(), "sqlite")
}

func TestRepositories_CloseWithoutPool(t *testing.T) {
	assert.NoError(t, (&Repositories{}).Close(context.Background()))
}
