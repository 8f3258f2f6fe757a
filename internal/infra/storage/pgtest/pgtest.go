//go:build integration

// Package pgtest starts one throwaway Postgres container per test binary
// and applies the schema from migrations/.
package pgtest

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	testUser     = "test"
	testPassword = "testpass"
	testDB       = "service_requests"
	migration    = "migrations/001_init.up.sql"
)

var (
	containerOnce sync.Once
	container     testcontainers.Container
	containerErr  error
)

// Open returns a connection to a freshly truncated schema
func Open(t *testing.T) *sql.DB {
	t.Helper()

	containerOnce.Do(func() {
		container, containerErr = startContainer()
	})
	require.NoError(t, containerErr, "start postgres container")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, nat.Port("5432/tcp"))
	require.NoError(t, err)

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port.Port(), testUser, testPassword, testDB)

	db, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.PingContext(ctx))
	require.NoError(t, applyMigration(ctx, db))

	_, err = db.ExecContext(ctx, "TRUNCATE service_requests, credentials, users")
	require.NoError(t, err)

	return db
}

func startContainer() (testcontainers.Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	return testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:17",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     testUser,
				"POSTGRES_PASSWORD": testPassword,
				"POSTGRES_DB":       testDB,
			},
			Tmpfs: map[string]string{
				"/var/lib/postgresql/data": "rw,size=256m",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(90 * time.Second),
		},
		Started: true,
	})
}

// applyMigration is idempotent: the schema uses IF NOT EXISTS everywhere
func applyMigration(ctx context.Context, db *sql.DB) error {
	var (
		content []byte
		err     error
	)
	for _, candidate := range []string{
		migration,
		filepath.Join("..", migration),
		filepath.Join("..", "..", migration),
		filepath.Join("..", "..", "..", migration),
		filepath.Join("..", "..", "..", "..", migration),
	} {
		content, err = os.ReadFile(candidate)
		if err == nil {
			break
		}
	}
	if err != nil {
		return fmt.Errorf("read migration %s: %w", migration, err)
	}

	if _, err := db.ExecContext(ctx, string(content)); err != nil {
		return fmt.Errorf("apply migration: %w", err)
	}
	return nil
}
