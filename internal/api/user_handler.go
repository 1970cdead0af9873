package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/podcast-api/internal/platform/logger"
	"github.com/phrazzld/podcast-api/internal/service"
)

// UserHandler serves account registration, login and profile requests.
type UserHandler struct {
	accounts service.AccountService
	logger   *slog.Logger
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(accounts service.AccountService, logger *slog.Logger) *UserHandler {
	if accounts == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("account service cannot be nil for UserHandler")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &UserHandler{
		accounts: accounts,
		logger:   logger.With(slog.String("component", "user_handler")),
	}
}

// CreateAccount handles POST /api/users
func (h *UserHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var req CreateAccountRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	out := h.accounts.CreateAccount(r.Context(), req.toInput())
	respondWithOutput(w, r, http.StatusCreated, out, out)
}

// Login handles POST /api/users/login
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	out := h.accounts.Login(r.Context(), service.LoginInput{Email: req.Email, Password: req.Password})
	respondWithOutput(w, r, http.StatusOK, out.Output, out)
}

// Me handles GET /api/users/me and returns the authenticated user.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	out := service.UserOutput{Output: service.Output{OK: true}, User: user}
	respondWithOutput(w, r, http.StatusOK, out.Output, out)
}

// GetUser handles GET /api/users/{id}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	ids, ok := handlePathIDs(w, r, log, userIDParam)
	if !ok {
		return
	}

	out := h.accounts.FindByID(r.Context(), ids[0])
	respondWithOutput(w, r, http.StatusOK, out.Output, out)
}

// EditProfile handles PATCH /api/users/me
func (h *UserHandler) EditProfile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req EditProfileRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	log.Debug("editing profile", slog.Int64("user_id", user.ID))
	out := h.accounts.EditProfile(r.Context(), user.ID, req.toInput())
	respondWithOutput(w, r, http.StatusOK, out, out)
}
