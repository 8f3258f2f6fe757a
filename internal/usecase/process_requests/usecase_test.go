package process_requests

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vonakala/Appointment-App-Service-Request/internal/domain"
	"github.com/Vonakala/Appointment-App-Service-Request/pkg/logger"
)

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

var admin = &domain.User{ID: "A1", Role: domain.RoleAdmin}

func newTestUseCase(t *testing.T) (*UseCase, string, string) {
	t.Helper()
	dir := t.TempDir()
	inbox := filepath.Join(dir, "client_requests.txt")
	confirmed := filepath.Join(dir, "confirmed_requests.txt")

	uc := NewUseCase(inbox, confirmed, logger.NewDiscard())
	uc.timeProvider = fixedTime{now: time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC)}
	return uc, inbox, confirmed
}

func TestExecute_ProcessesAndClearsInbox(t *testing.T) {
	uc, inbox, confirmed := newTestUseCase(t)

	var b strings.Builder
	for i := 1; i <= 7; i++ {
		fmt.Fprintf(&b, "  request %d  \n\n", i)
	}
	require.NoError(t, os.WriteFile(inbox, []byte(b.String()), 0o644))
	require.NoError(t, os.WriteFile(confirmed, []byte("older entry\n"), 0o644))

	resp, err := uc.Execute(admin)
	require.NoError(t, err)

	assert.Equal(t, 7, resp.Processed)
	assert.Equal(t, []string{"request 1", "request 2", "request 3", "request 4", "request 5"}, resp.Preview)
	assert.Equal(t, 2, resp.Remaining)

	left, err := os.ReadFile(inbox)
	require.NoError(t, err)
	assert.Empty(t, left)

	log, err := os.ReadFile(confirmed)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(log)), "\n")
	require.Len(t, lines, 8)
	assert.Equal(t, "older entry", lines[0])
	assert.Equal(t, "2025-03-04T05:06:07Z - request 1", lines[1])
	assert.Equal(t, "2025-03-04T05:06:07Z - request 7", lines[7])
}

func TestExecute_Errors(t *testing.T) {
	t.Run("non-admin", func(t *testing.T) {
		uc, _, _ := newTestUseCase(t)
		_, err := uc.Execute(&domain.User{ID: "C1", Role: domain.RoleClient})
		assert.ErrorIs(t, err, domain.ErrAuthorization)
	})

	t.Run("missing inbox", func(t *testing.T) {
		uc, _, _ := newTestUseCase(t)
		_, err := uc.Execute(admin)
		assert.ErrorIs(t, err, ErrInboxNotFound)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("blank inbox", func(t *testing.T) {
		uc, inbox, confirmed := newTestUseCase(t)
		require.NoError(t, os.WriteFile(inbox, []byte("\n   \n"), 0o644))

		_, err := uc.Execute(admin)
		assert.ErrorIs(t, err, ErrNothingToProcess)
		assert.NoFileExists(t, confirmed)
	})
}
