package process_requests

// ProcessRequestsResponse HTTP response model
type ProcessRequestsResponse struct {
	Message   string   `json:"message"`
	Processed int      `json:"processed"`
	Preview   []string `json:"preview"`
	Remaining int      `json:"remaining"`
}
