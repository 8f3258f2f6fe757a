package user

import "github.com/Vonakala/Appointment-App-Service-Request/pkg/dbmetrics"

// DBExecutor reused from dbmetrics, satisfied by both *sql.DB and *dbmetrics.DB
type DBExecutor = dbmetrics.DBExecutor
