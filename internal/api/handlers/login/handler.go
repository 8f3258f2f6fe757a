package login

import (
	"errors"
	"net/http"

	"github.com/Vonakala/Appointment-App-Service-Request/internal/api/handlers"
	loginUC "github.com/Vonakala/Appointment-App-Service-Request/internal/usecase/login"
)

const (
	msgInvalidRequestBody = "Invalid request body."
	msgMissingFields      = "All fields are required."
	msgInvalidCredentials = "Login failed: invalid email or password."
	msgUserNotFound       = "User not found in database."
	msgUnknownRole        = "Unknown role."
	msgLoggedIn           = "Logged in successfully!"
)

type Handler struct {
	useCase LoginUseCase
	cookie  CookieConfig
	logger  Logger
}

func NewHandler(useCase LoginUseCase, cookie CookieConfig, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		cookie:  cookie,
		logger:  logger,
	}
}

// Handle POST /login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &loginUC.Request{Email: req.Email, Password: req.Password})
	if err != nil {
		switch {
		case errors.Is(err, loginUC.ErrMissingFields):
			handlers.RespondBadRequest(w, msgMissingFields)

		case errors.Is(err, loginUC.ErrInvalidCredentials):
			handlers.RespondUnauthorized(w, msgInvalidCredentials)

		case errors.Is(err, loginUC.ErrUserNotFound):
			h.logger.Warn("POST /login - Account without user record: email=%s", req.Email)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, loginUC.ErrUnknownRole):
			handlers.RespondForbidden(w, msgUnknownRole)

		default:
			h.logger.Error("POST /login - Failed to log in: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.Name,
		Value:    result.Token,
		Path:     "/",
		Expires:  result.ExpiresAt,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})

	h.logger.Info("POST /login - User logged in: user_id=%s, role=%s", result.User.ID, result.User.Role)
	handlers.RespondJSON(w, http.StatusOK, LoginResponse{
		Message:   msgLoggedIn,
		UserID:    result.User.ID,
		Role:      string(result.User.Role),
		Redirect:  result.DashboardPath,
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt,
	})
}
