package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/podcast-api/internal/platform/logger"
	"github.com/phrazzld/podcast-api/internal/service"
)

// CatalogHandler serves podcast and episode requests.
type CatalogHandler struct {
	catalog service.CatalogService
	logger  *slog.Logger
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(catalog service.CatalogService, logger *slog.Logger) *CatalogHandler {
	if catalog == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("catalog service cannot be nil for CatalogHandler")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &CatalogHandler{
		catalog: catalog,
		logger:  logger.With(slog.String("component", "catalog_handler")),
	}
}

// ListPodcasts handles GET /api/podcasts
func (h *CatalogHandler) ListPodcasts(w http.ResponseWriter, r *http.Request) {
	out := h.catalog.GetAllPodcasts(r.Context())
	respondWithOutput(w, r, http.StatusOK, out.Output, out)
}

// CreatePodcast handles POST /api/podcasts
func (h *CatalogHandler) CreatePodcast(w http.ResponseWriter, r *http.Request) {
	var req CreatePodcastRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	out := h.catalog.CreatePodcast(r.Context(), req.toInput())
	respondWithOutput(w, r, http.StatusCreated, out.Output, out)
}

// GetPodcast handles GET /api/podcasts/{id}
func (h *CatalogHandler) GetPodcast(w http.ResponseWriter, r *http.Request) {
	ids, ok := handlePathIDs(w, r, logger.FromContextOrDefault(r.Context(), h.logger), podcastIDParam)
	if !ok {
		return
	}

	out := h.catalog.GetPodcast(r.Context(), ids[0])
	respondWithOutput(w, r, http.StatusOK, out.Output, out)
}

// UpdatePodcast handles PATCH /api/podcasts/{id}
func (h *CatalogHandler) UpdatePodcast(w http.ResponseWriter, r *http.Request) {
	ids, ok := handlePathIDs(w, r, logger.FromContextOrDefault(r.Context(), h.logger), podcastIDParam)
	if !ok {
		return
	}

	var req UpdatePodcastRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	out := h.catalog.UpdatePodcast(r.Context(), ids[0], req.toInput())
	respondWithOutput(w, r, http.StatusOK, out, out)
}

// DeletePodcast handles DELETE /api/podcasts/{id}
func (h *CatalogHandler) DeletePodcast(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	ids, ok := handlePathIDs(w, r, log, podcastIDParam)
	if !ok {
		return
	}

	out := h.catalog.DeletePodcast(r.Context(), ids[0])
	if out.OK {
		log.Info("podcast deleted", slog.Int64("podcast_id", ids[0]))
	}
	respondWithOutput(w, r, http.StatusOK, out, out)
}
