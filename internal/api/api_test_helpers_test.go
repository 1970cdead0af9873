package api_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/podcast-api/internal/api"
	"github.com/phrazzld/podcast-api/internal/api/shared"
	"github.com/phrazzld/podcast-api/internal/domain"
	"github.com/phrazzld/podcast-api/internal/mocks"
	"github.com/phrazzld/podcast-api/internal/platform/logger"
	"github.com/stretchr/testify/require"
)

// testUser is placed in the request context in place of the auth middleware.
var testUser = &domain.User{ID: 42, Email: "host@example.com", Role: domain.RoleHost}

// newTestRouter mounts the handlers on the same paths the server uses,
// without authentication.
func newTestRouter(
	t *testing.T,
	accounts *mocks.MockAccountService,
	catalog *mocks.MockCatalogService,
	user *domain.User,
) http.Handler {
	t.Helper()
	log, _ := logger.NewTestLogger(t)

	users := api.NewUserHandler(accounts, log)
	podcasts := api.NewCatalogHandler(catalog, log)

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ctx := logger.WithLogger(req.Context(), log)
			if user != nil {
				ctx = shared.WithUser(ctx, user)
			}
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	})

	r.Post("/api/users", users.CreateAccount)
	r.Post("/api/users/login", users.Login)
	r.Get("/api/users/me", users.Me)
	r.Patch("/api/users/me", users.EditProfile)
	r.Get("/api/users/{id}", users.GetUser)

	r.Get("/api/podcasts", podcasts.ListPodcasts)
	r.Post("/api/podcasts", podcasts.CreatePodcast)
	r.Get("/api/podcasts/{id}", podcasts.GetPodcast)
	r.Patch("/api/podcasts/{id}", podcasts.UpdatePodcast)
	r.Delete("/api/podcasts/{id}", podcasts.DeletePodcast)
	r.Get("/api/podcasts/{id}/episodes", podcasts.ListEpisodes)
	r.Post("/api/podcasts/{id}/episodes", podcasts.CreateEpisode)
	r.Get("/api/podcasts/{id}/episodes/{episodeId}", podcasts.GetEpisode)
	r.Patch("/api/podcasts/{id}/episodes/{episodeId}", podcasts.UpdateEpisode)
	r.Delete("/api/podcasts/{id}/episodes/{episodeId}", podcasts.DeleteEpisode)

	return r
}

// do sends a request with an optional JSON body through h.
func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// decodeBody unmarshals the response body into a generic map.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body
}

func ptr[T any](v T) *T {
	return &v
}
