package assign_mechanic

// AssignMechanicRequest HTTP request model
type AssignMechanicRequest struct {
	BookingID  string `json:"booking_id"`
	MechanicID string `json:"mechanic_id"`
}
