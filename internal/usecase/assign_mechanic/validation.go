package assign_mechanic

import (
	"fmt"
	"strings"
)

func validateSelection(req *Request) error {
	req.BookingID = strings.TrimSpace(req.BookingID)
	req.MechanicID = strings.TrimSpace(req.MechanicID)

	if req.BookingID == "" || req.MechanicID == "" {
		return fmt.Errorf("%w: booking=%q mechanic=%q", ErrMissingSelection, req.BookingID, req.MechanicID)
	}
	return nil
}
