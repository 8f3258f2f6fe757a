package notifications

import "context"

// EmailSender email transport
type EmailSender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// SMSSender SMS transport
type SMSSender interface {
	Send(ctx context.Context, to, body string) error
}

// Metrics notification outcome counters
type Metrics interface {
	ObserveNotification(channel string, delivered bool)
}

// Logger printf-style logger
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
