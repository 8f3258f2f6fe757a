//go:build integration

package servicerequest_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vonakala/Appointment-App-Service-Request/internal/domain"
	"github.com/Vonakala/Appointment-App-Service-Request/internal/infra/storage/pgtest"
	"github.com/Vonakala/Appointment-App-Service-Request/internal/infra/storage/servicerequest"
	"github.com/Vonakala/Appointment-App-Service-Request/internal/infra/storage/user"
)

func seedUsers(t *testing.T, repo *user.Repository) (client, mechanic *domain.User) {
	t.Helper()
	ctx := context.Background()

	client = &domain.User{ID: "C1", Name: "Jane", Surname: "Doe", Gender: "female", Email: "jane@example.com", Phone: "+1", Role: domain.RoleClient}
	mechanic = &domain.User{ID: "M1", Name: "Bob", Surname: "Fixer", Email: "bob@example.com", Phone: "+2", Role: domain.RoleMechanic}

	require.NoError(t, repo.Create(ctx, client))
	require.NoError(t, repo.Create(ctx, mechanic))
	return client, mechanic
}

func newRequest(clientID, ref string, ts time.Time) *domain.ServiceRequest {
	return &domain.ServiceRequest{
		ReferenceNumber: ref,
		ClientID:        clientID,
		Name:            "Jane",
		Surname:         "Doe",
		Phone:           "+1",
		Email:           "jane@example.com",
		Address:         "1 Main St",
		Vehicle:         "Car",
		MakeModel:       "Toyota Corolla",
		Category:        "Service",
		ServiceDateTime: time.Date(2099, 1, 1, 10, 0, 0, 0, time.UTC),
		Description:     "Oil change",
		Status:          domain.StatusPending,
		Timestamp:       ts,
	}
}

func TestRepository_CreateGetAssign(t *testing.T) {
	db := pgtest.Open(t)
	ctx := context.Background()

	users := user.NewRepository(db)
	repo := servicerequest.NewRepository(db)
	client, mechanic := seedUsers(t, users)

	created, err := repo.Create(ctx, newRequest(client.ID, "REF-0000000001", time.Now().UTC().Truncate(time.Microsecond)))
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "REF-0000000001", got.ReferenceNumber)
	assert.Equal(t, domain.StatusPending, got.Status)
	assert.Nil(t, got.AssignedMechanic)
	assert.Equal(t, "2099-01-01 10:00", got.ServiceDateTimeString())

	require.NoError(t, repo.AssignMechanic(ctx, created.ID, mechanic.ID))

	assigned, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusAssigned, assigned.Status)
	require.NotNil(t, assigned.AssignedMechanic)
	assert.Equal(t, mechanic.ID, *assigned.AssignedMechanic)
	assert.True(t, assigned.IsConsistent())

	// other fields untouched by the field-level update
	assert.Empty(t, cmp.Diff(got, assigned, cmp.FilterPath(func(p cmp.Path) bool {
		name := p.Last().String()
		return name == ".Status" || name == ".AssignedMechanic" || name == ".Timestamp" || name == ".ServiceDateTime"
	}, cmp.Ignore())))

	err = repo.AssignMechanic(ctx, created.ID, mechanic.ID)
	assert.ErrorIs(t, err, servicerequest.ErrAlreadyAssigned)
	assert.ErrorIs(t, err, domain.ErrConflict)

	err = repo.AssignMechanic(ctx, "missing", mechanic.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, servicerequest.ErrServiceRequestNotFound)
}

func TestRepository_Lists(t *testing.T) {
	db := pgtest.Open(t)
	ctx := context.Background()

	users := user.NewRepository(db)
	repo := servicerequest.NewRepository(db)
	client, mechanic := seedUsers(t, users)

	other := &domain.User{ID: "C2", Name: "John", Surname: "Roe", Email: "john@example.com", Phone: "+3", Role: domain.RoleClient}
	require.NoError(t, users.Create(ctx, other))

	base := time.Now().UTC().Truncate(time.Microsecond)
	older, err := repo.Create(ctx, newRequest(client.ID, "REF-00000000A1", base.Add(-time.Hour)))
	require.NoError(t, err)
	newer, err := repo.Create(ctx, newRequest(client.ID, "REF-00000000A2", base))
	require.NoError(t, err)
	_, err = repo.Create(ctx, newRequest(other.ID, "REF-00000000B1", base))
	require.NoError(t, err)

	_, err = repo.Create(ctx, newRequest(client.ID, "REF-00000000A1", base))
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	mine, err := repo.ListByClientID(ctx, client.ID)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, newer.ID, mine[0].ID, "newest first")
	assert.Equal(t, older.ID, mine[1].ID)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	require.NoError(t, repo.AssignMechanic(ctx, older.ID, mechanic.ID))
	assigned, err := repo.ListByMechanicID(ctx, mechanic.ID)
	require.NoError(t, err)
	require.Len(t, assigned, 1)
	assert.Equal(t, older.ID, assigned[0].ID)

	mechanics, err := users.GetByRole(ctx, domain.RoleMechanic)
	require.NoError(t, err)
	require.Len(t, mechanics, 1)
	assert.Equal(t, mechanic.ID, mechanics[0].ID)

	everyone, err := users.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, everyone, 3)

	err = users.Create(ctx, &domain.User{ID: "C3", Name: "X", Surname: "Y", Email: "jane@example.com", Phone: "+4", Role: domain.RoleClient})
	assert.ErrorIs(t, err, user.ErrEmailTaken)

	_, err = users.GetByID(ctx, "nobody")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
