package health

import (
	"net/http"

	"github.com/Vonakala/Appointment-App-Service-Request/internal/api/handlers"
)

// Response liveness payload
type Response struct {
	Status string `json:"status"`
}

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Handle GET /health
func (h *Handler) Handle(w http.ResponseWriter, _ *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, Response{Status: "ok"})
}
