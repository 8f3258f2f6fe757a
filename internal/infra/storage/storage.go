// Package storage opens the configured backend and builds its repositories.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/Vonakala/Appointment-App-Service-Request/internal/config"
	"github.com/Vonakala/Appointment-App-Service-Request/internal/infra/storage/credential"
	"github.com/Vonakala/Appointment-App-Service-Request/internal/infra/storage/mongostore"
	"github.com/Vonakala/Appointment-App-Service-Request/internal/infra/storage/servicerequest"
	"github.com/Vonakala/Appointment-App-Service-Request/internal/infra/storage/user"
	"github.com/Vonakala/Appointment-App-Service-Request/pkg/dbmetrics"
	"github.com/Vonakala/Appointment-App-Service-Request/pkg/metrics"
)

// Repositories every store of the application, backed by one driver
type Repositories struct {
	Users           UserRepository
	ServiceRequests ServiceRequestRepository
	Credentials     CredentialRepository

	close func(ctx context.Context) error
}

// Close releases the underlying connection pool
func (r *Repositories) Close(ctx context.Context) error {
	if r.close == nil {
		return nil
	}
	return r.close(ctx)
}

// Options optional instrumentation. A nil Metrics leaves queries unobserved.
type Options struct {
	Metrics *metrics.Metrics
	StopCh  <-chan struct{}
	Logger  Logger
}

// Open connects to cfg.Storage.Driver and returns its repositories
func Open(ctx context.Context, cfg *config.Config, opts Options) (*Repositories, error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverPostgres:
		return openPostgres(ctx, cfg.Database, opts)
	case config.StorageDriverMongo:
		return openMongo(ctx, cfg.Mongo, opts)
	default:
		return nil, fmt.Errorf("storage: unknown driver %q", cfg.Storage.Driver)
	}
}

func openPostgres(ctx context.Context, cfg config.DatabaseConfig, opts Options) (*Repositories, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("storage: open postgres: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Second)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("storage: ping postgres: %w", err)
	}
	if opts.Logger != nil {
		opts.Logger.Info("Connected to postgres (host=%s, port=%d, db=%s)", cfg.Host, cfg.Port, cfg.DBName)
	}

	var exec dbmetrics.DBExecutor = db
	if opts.Metrics != nil {
		exec = dbmetrics.WrapWithDefault(db, opts.Metrics, opts.StopCh)
		if opts.Logger != nil {
			opts.Logger.Info("Database metrics collection started")
		}
	}

	return &Repositories{
		Users:           user.NewRepository(exec),
		ServiceRequests: servicerequest.NewRepository(exec),
		Credentials:     credential.NewRepository(exec),
		close:           func(context.Context) error { return db.Close() },
	}, nil
}

func openMongo(ctx context.Context, cfg config.MongoConfig, opts Options) (*Repositories, error) {
	client, err := mongostore.Connect(ctx, cfg.URI, time.Duration(cfg.ConnectTimeout)*time.Second)
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}

	db := client.Database(cfg.Database)
	if err := mongostore.EnsureIndexes(ctx, db); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("storage: %w", err)
	}
	if opts.Logger != nil {
		opts.Logger.Info("Connected to mongo (db=%s)", cfg.Database)
	}

	return &Repositories{
		Users:           mongostore.NewUserRepository(db),
		ServiceRequests: mongostore.NewServiceRequestRepository(db),
		Credentials:     mongostore.NewCredentialRepository(db),
		close:           client.Disconnect,
	}, nil
}
