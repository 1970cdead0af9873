package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/podcast-api/internal/platform/logger"
)

// ListEpisodes handles GET /api/podcasts/{id}/episodes
func (h *CatalogHandler) ListEpisodes(w http.ResponseWriter, r *http.Request) {
	ids, ok := handlePathIDs(w, r, logger.FromContextOrDefault(r.Context(), h.logger), podcastIDParam)
	if !ok {
		return
	}

	out := h.catalog.GetEpisodes(r.Context(), ids[0])
	respondWithOutput(w, r, http.StatusOK, out.Output, out)
}

// GetEpisode handles GET /api/podcasts/{id}/episodes/{episodeId}
func (h *CatalogHandler) GetEpisode(w http.ResponseWriter, r *http.Request) {
	ids, ok := handlePathIDs(w, r, logger.FromContextOrDefault(r.Context(), h.logger),
		podcastIDParam, episodeIDParam)
	if !ok {
		return
	}

	out := h.catalog.GetEpisode(r.Context(), ids[0], ids[1])
	respondWithOutput(w, r, http.StatusOK, out.Output, out)
}

// CreateEpisode handles POST /api/podcasts/{id}/episodes
func (h *CatalogHandler) CreateEpisode(w http.ResponseWriter, r *http.Request) {
	ids, ok := handlePathIDs(w, r, logger.FromContextOrDefault(r.Context(), h.logger), podcastIDParam)
	if !ok {
		return
	}

	var req CreateEpisodeRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	out := h.catalog.CreateEpisode(r.Context(), ids[0], req.toInput())
	respondWithOutput(w, r, http.StatusCreated, out.Output, out)
}

// UpdateEpisode handles PATCH /api/podcasts/{id}/episodes/{episodeId}
func (h *CatalogHandler) UpdateEpisode(w http.ResponseWriter, r *http.Request) {
	ids, ok := handlePathIDs(w, r, logger.FromContextOrDefault(r.Context(), h.logger),
		podcastIDParam, episodeIDParam)
	if !ok {
		return
	}

	var req UpdateEpisodeRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	out := h.catalog.UpdateEpisode(r.Context(), ids[0], ids[1], req.toInput())
	respondWithOutput(w, r, http.StatusOK, out, out)
}

// DeleteEpisode handles DELETE /api/podcasts/{id}/episodes/{episodeId}
func (h *CatalogHandler) DeleteEpisode(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	ids, ok := handlePathIDs(w, r, log, podcastIDParam, episodeIDParam)
	if !ok {
		return
	}

	out := h.catalog.DeleteEpisode(r.Context(), ids[0], ids[1])
	if out.OK {
		log.Info("episode deleted",
			slog.Int64("podcast_id", ids[0]),
			slog.Int64("episode_id", ids[1]))
	}
	respondWithOutput(w, r, http.StatusOK, out, out)
}
