package logout

import (
	"net/http"
	"time"

	"github.com/Vonakala/Appointment-App-Service-Request/internal/api/handlers"
)

const msgLoggedOut = "Logged out successfully!"

type Handler struct {
	cookieName string
	secure     bool
}

func NewHandler(cookieName string, secure bool) *Handler {
	return &Handler{
		cookieName: cookieName,
		secure:     secure,
	}
}

// Handle POST /logout. Tokens are stateless, so logging out drops the cookie.
func (h *Handler) Handle(w http.ResponseWriter, _ *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	})
	handlers.RespondMessage(w, http.StatusOK, msgLoggedOut)
}
