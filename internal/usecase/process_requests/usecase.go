package process_requests

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/Vonakala/Appointment-App-Service-Request/internal/domain"
)

// UseCase moves queued client requests from the inbox file to the confirmed log
type UseCase struct {
	inboxFile     string
	confirmedFile string
	timeProvider  TimeProvider
	logger        Logger

	// serializes read-append-truncate so a line is confirmed once
	mu sync.Mutex
}

// NewUseCase creates the use case for the given inbox and confirmed-log paths
func NewUseCase(inboxFile, confirmedFile string, logger Logger) *UseCase {
	return &UseCase{
		inboxFile:     inboxFile,
		confirmedFile: confirmedFile,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute confirms every queued request and empties the inbox
func (uc *UseCase) Execute(principal *domain.User) (*Response, error) {
	// 1. Only admins
	if !principal.HasRole(domain.RoleAdmin) {
		uc.logger.Warn("ProcessRequests: access denied for non-admin principal")
		return nil, ErrAccessDenied
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	// 2. Read non-blank lines
	lines, err := uc.readInbox()
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		uc.logger.Warn("ProcessRequests: inbox %s is empty", uc.inboxFile)
		return nil, ErrNothingToProcess
	}

	// 3. Append each line with its confirmation timestamp
	if err := uc.appendConfirmed(lines); err != nil {
		return nil, err
	}

	// 4. Clear the inbox
	if err := os.Truncate(uc.inboxFile, 0); err != nil {
		uc.logger.Error("ProcessRequests: failed to truncate %s: %v", uc.inboxFile, err)
		return nil, fmt.Errorf("%w: truncate inbox: %v", ErrInternal, err)
	}

	preview := lines
	if len(preview) > PreviewSize {
		preview = preview[:PreviewSize]
	}

	uc.logger.Info("ProcessRequests: admin=%s processed %d requests", principal.ID, len(lines))
	return &Response{
		Processed: len(lines),
		Preview:   preview,
		Remaining: len(lines) - len(preview),
	}, nil
}

func (uc *UseCase) readInbox() ([]string, error) {
	f, err := os.Open(uc.inboxFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			uc.logger.Warn("ProcessRequests: inbox %s not found", uc.inboxFile)
			return nil, ErrInboxNotFound
		}
		uc.logger.Error("ProcessRequests: failed to open %s: %v", uc.inboxFile, err)
		return nil, fmt.Errorf("%w: open inbox: %v", ErrInternal, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		uc.logger.Error("ProcessRequests: failed to read %s: %v", uc.inboxFile, err)
		return nil, fmt.Errorf("%w: read inbox: %v", ErrInternal, err)
	}
	return lines, nil
}

func (uc *UseCase) appendConfirmed(lines []string) error {
	f, err := os.OpenFile(uc.confirmedFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		uc.logger.Error("ProcessRequests: failed to open %s: %v", uc.confirmedFile, err)
		return fmt.Errorf("%w: open confirmed log: %v", ErrInternal, err)
	}

	w := bufio.NewWriter(f)
	for _, line := range lines {
		fmt.Fprintf(w, "%s - %s\n", uc.timeProvider.Now().Format(time.RFC3339), line)
	}
	if err := w.Flush(); err != nil {
		_ = f.Close()
		uc.logger.Error("ProcessRequests: failed to write %s: %v", uc.confirmedFile, err)
		return fmt.Errorf("%w: write confirmed log: %v", ErrInternal, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: close confirmed log: %v", ErrInternal, err)
	}
	return nil
}
