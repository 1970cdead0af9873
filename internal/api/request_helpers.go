package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/podcast-api/internal/api/shared"
	"github.com/phrazzld/podcast-api/internal/domain"
	"github.com/phrazzld/podcast-api/internal/platform/logger"
	"github.com/phrazzld/podcast-api/internal/service"
)

// Path parameter names used by the router.
const (
	podcastIDParam = "id"
	episodeIDParam = "episodeId"
	userIDParam    = "id"
)

// getPathID extracts a positive integer identifier from the URL path.
func getPathID(r *http.Request, paramName string) (int64, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return 0, domain.NewValidationError(paramName, "is required", domain.ErrValidation)
	}

	id, err := strconv.ParseInt(pathParam, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError(paramName, "has invalid format", domain.ErrInvalidID)
	}
	return id, nil
}

// handlePathIDs extracts each named path parameter in order. It writes a
// 400 response and returns false on the first one that fails.
func handlePathIDs(w http.ResponseWriter, r *http.Request, log *slog.Logger, names ...string) ([]int64, bool) {
	if log == nil {
		log = logger.FromContextOrDefault(r.Context(), slog.Default())
	}

	ids := make([]int64, 0, len(names))
	for _, name := range names {
		id, err := getPathID(r, name)
		if err != nil {
			log.Warn("invalid path parameter",
				slog.String("param_name", name),
				slog.String("value", chi.URLParam(r, name)))
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid "+name)
			return nil, false
		}
		ids = append(ids, id)
	}
	return ids, true
}

// decodeAndValidate reads the JSON body into req and validates it. On
// failure it writes a 400 response and returns false.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, req interface{}) bool {
	if err := shared.DecodeJSON(r, req); err != nil {
		if errors.Is(err, shared.ErrEmptyBody) {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Request body is required")
			return false
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return false
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return false
	}
	return true
}

// respondWithOutput writes a service envelope. Successful envelopes are
// written with okStatus and body; failures are written with the status
// derived from their kind and only the caller-safe message.
func respondWithOutput(w http.ResponseWriter, r *http.Request, okStatus int, out service.Output, body interface{}) {
	if out.OK {
		shared.RespondWithJSON(w, r, okStatus, body)
		return
	}

	var opts []shared.ResponseOption
	if out.Kind == service.KindUnauthorized {
		opts = append(opts, shared.WithElevatedLogLevel())
	}
	shared.RespondWithErrorAndLog(w, r, StatusForKind(out.Kind), out.Error, nil, opts...)
}

// currentUser returns the user Authenticate placed in the context, writing
// a 401 when it is missing.
func currentUser(w http.ResponseWriter, r *http.Request) (*domain.User, bool) {
	user, ok := shared.UserFromContext(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return nil, false
	}
	return user, true
}
