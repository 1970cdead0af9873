package mocks

import (
	"context"

	"github.com/phrazzld/podcast-api/internal/service"
)

// MockAccountService implements service.AccountService for testing.
// Unset function fields return a successful empty Output.
type MockAccountService struct {
	CreateAccountFn func(ctx context.Context, input service.CreateAccountInput) service.Output
	LoginFn         func(ctx context.Context, input service.LoginInput) service.TokenOutput
	FindByIDFn      func(ctx context.Context, id int64) service.UserOutput
	EditProfileFn   func(ctx context.Context, userID int64, input service.EditProfileInput) service.Output
}

var _ service.AccountService = (*MockAccountService)(nil)

func (m *MockAccountService) CreateAccount(ctx context.Context, input service.CreateAccountInput) service.Output {
	if m.CreateAccountFn != nil {
		return m.CreateAccountFn(ctx, input)
	}
	return service.Output{OK: true}
}

func (m *MockAccountService) Login(ctx context.Context, input service.LoginInput) service.TokenOutput {
	if m.LoginFn != nil {
		return m.LoginFn(ctx, input)
	}
	return service.TokenOutput{Output: service.Output{OK: true}}
}

func (m *MockAccountService) FindByID(ctx context.Context, id int64) service.UserOutput {
	if m.FindByIDFn != nil {
		return m.FindByIDFn(ctx, id)
	}
	return service.UserOutput{Output: service.Output{OK: true}}
}

func (m *MockAccountService) EditProfile(
	ctx context.Context,
	userID int64,
	input service.EditProfileInput,
) service.Output {
	if m.EditProfileFn != nil {
		return m.EditProfileFn(ctx, userID, input)
	}
	return service.Output{OK: true}
}

// MockCatalogService implements service.CatalogService for testing.
// Unset function fields return a successful empty Output.
type MockCatalogService struct {
	GetAllPodcastsFn func(ctx context.Context) service.PodcastsOutput
	CreatePodcastFn  func(ctx context.Context, input service.CreatePodcastInput) service.IDOutput
	GetPodcastFn     func(ctx context.Context, id int64) service.PodcastOutput
	DeletePodcastFn  func(ctx context.Context, id int64) service.Output
	UpdatePodcastFn  func(ctx context.Context, id int64, input service.UpdatePodcastInput) service.Output
	GetEpisodesFn    func(ctx context.Context, podcastID int64) service.EpisodesOutput
	GetEpisodeFn     func(ctx context.Context, podcastID, episodeID int64) service.EpisodeOutput
	CreateEpisodeFn  func(ctx context.Context, podcastID int64, input service.CreateEpisodeInput) service.IDOutput
	DeleteEpisodeFn  func(ctx context.Context, podcastID, episodeID int64) service.Output
	UpdateEpisodeFn  func(ctx context.Context, podcastID, episodeID int64, input service.UpdateEpisodeInput) service.Output
}

var _ service.CatalogService = (*MockCatalogService)(nil)

func (m *MockCatalogService) GetAllPodcasts(ctx context.Context) service.PodcastsOutput {
	if m.GetAllPodcastsFn != nil {
		return m.GetAllPodcastsFn(ctx)
	}
	return service.PodcastsOutput{Output: service.Output{OK: true}}
}

func (m *MockCatalogService) CreatePodcast(ctx context.Context, input service.CreatePodcastInput) service.IDOutput {
	if m.CreatePodcastFn != nil {
		return m.CreatePodcastFn(ctx, input)
	}
	return service.IDOutput{Output: service.Output{OK: true}}
}

func (m *MockCatalogService) GetPodcast(ctx context.Context, id int64) service.PodcastOutput {
	if m.GetPodcastFn != nil {
		return m.GetPodcastFn(ctx, id)
	}
	return service.PodcastOutput{Output: service.Output{OK: true}}
}

func (m *MockCatalogService) DeletePodcast(ctx context.Context, id int64) service.Output {
	if m.DeletePodcastFn != nil {
		return m.DeletePodcastFn(ctx, id)
	}
	return service.Output{OK: true}
}

func (m *MockCatalogService) UpdatePodcast(
	ctx context.Context,
	id int64,
	input service.UpdatePodcastInput,
) service.Output {
	if m.UpdatePodcastFn != nil {
		return m.UpdatePodcastFn(ctx, id, input)
	}
	return service.Output{OK: true}
}

func (m *MockCatalogService) GetEpisodes(ctx context.Context, podcastID int64) service.EpisodesOutput {
	if m.GetEpisodesFn != nil {
		return m.GetEpisodesFn(ctx, podcastID)
	}
	return service.EpisodesOutput{Output: service.Output{OK: true}}
}

func (m *MockCatalogService) GetEpisode(ctx context.Context, podcastID, episodeID int64) service.EpisodeOutput {
	if m.GetEpisodeFn != nil {
		return m.GetEpisodeFn(ctx, podcastID, episodeID)
	}
	return service.EpisodeOutput{Output: service.Output{OK: true}}
}

func (m *MockCatalogService) CreateEpisode(
	ctx context.Context,
	podcastID int64,
	input service.CreateEpisodeInput,
) service.IDOutput {
	if m.CreateEpisodeFn != nil {
		return m.CreateEpisodeFn(ctx, podcastID, input)
	}
	return service.IDOutput{Output: service.Output{OK: true}}
}

func (m *MockCatalogService) DeleteEpisode(ctx context.Context, podcastID, episodeID int64) service.Output {
	if m.DeleteEpisodeFn != nil {
		return m.DeleteEpisodeFn(ctx, podcastID, episodeID)
	}
	return service.Output{OK: true}
}

func (m *MockCatalogService) UpdateEpisode(
	ctx context.Context,
	podcastID, episodeID int64,
	input service.UpdateEpisodeInput,
) service.Output {
	if m.UpdateEpisodeFn != nil {
		return m.UpdateEpisodeFn(ctx, podcastID, episodeID, input)
	}
	return service.Output{OK: true}
}
