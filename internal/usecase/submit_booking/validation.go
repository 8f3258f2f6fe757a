package submit_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/Vonakala/Appointment-App-Service-Request/internal/domain"
)

// normalize trims every form field in place
func normalize(req *Request) {
	req.Address = strings.TrimSpace(req.Address)
	req.Vehicle = strings.TrimSpace(req.Vehicle)
	req.MakeModel = strings.TrimSpace(req.MakeModel)
	req.Category = strings.TrimSpace(req.Category)
	req.ServiceDate = strings.TrimSpace(req.ServiceDate)
	req.ServiceTime = strings.TrimSpace(req.ServiceTime)
	req.Description = strings.TrimSpace(req.Description)
}

// validateRequired checks that no form field is blank
func validateRequired(req *Request) error {
	fields := []struct {
		name  string
		value string
	}{
		{"address", req.Address},
		{"vehicle", req.Vehicle},
		{"make_model", req.MakeModel},
		{"category", req.Category},
		{"service_date", req.ServiceDate},
		{"service_time", req.ServiceTime},
		{"description", req.Description},
	}

	var missing []string
	for _, f := range fields {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingFields, strings.Join(missing, ", "))
	}
	return nil
}

// parseServiceDateTime combines date and time in loc
func parseServiceDateTime(date, clock string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(domain.DateTimeFormat, date+" "+clock, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrBadDateTime, err)
	}
	return t, nil
}

// validateNotPast rejects a slot strictly earlier than now
func validateNotPast(serviceAt, now time.Time) error {
	if serviceAt.Before(now) {
		return fmt.Errorf("%w: %s is before %s", ErrPastDateTime,
			serviceAt.Format(domain.DateTimeFormat), now.In(serviceAt.Location()).Format(domain.DateTimeFormat))
	}
	return nil
}
