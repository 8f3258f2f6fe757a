package submit_booking

import (
	"crypto/rand"
	"encoding/hex"
	"strings"

	"github.com/Vonakala/Appointment-App-Service-Request/internal/domain"
)

// generateReference returns "REF-" followed by 10 uppercase hex characters
func generateReference() (string, error) {
	buf := make([]byte, domain.ReferenceRandomSize)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return domain.ReferencePrefix + strings.ToUpper(hex.EncodeToString(buf)), nil
}
