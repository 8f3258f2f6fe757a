package dbmetrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperation(t *testing.T) {
	assert.Equal(t, "select", Operation("SELECT id FROM users WHERE id = $1"))
	assert.Equal(t, "insert", Operation("  INSERT INTO service_requests (id) VALUES ($1)"))
	assert.Equal(t, "update", Operation("\nUPDATE service_requests SET status = $1"))
	assert.Equal(t, "unknown", Operation(""))
}
