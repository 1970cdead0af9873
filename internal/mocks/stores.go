package mocks

import (
	"context"

	"github.com/phrazzld/podcast-api/internal/domain"
	"github.com/phrazzld/podcast-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// MockUserStore is a mock of store.UserStore for use with testify/mock
type MockUserStore struct {
	mock.Mock
}

var _ store.UserStore = (*MockUserStore)(nil)

// Create is a mock implementation of store.UserStore.Create
func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// GetByID is a mock implementation of store.UserStore.GetByID
func (m *MockUserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if user, ok := args.Get(0).(*domain.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

// GetByEmail is a mock implementation of store.UserStore.GetByEmail
func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if user, ok := args.Get(0).(*domain.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

// Update is a mock implementation of store.UserStore.Update
func (m *MockUserStore) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// MockPodcastStore is a mock of store.PodcastStore for use with testify/mock
type MockPodcastStore struct {
	mock.Mock
}

var _ store.PodcastStore = (*MockPodcastStore)(nil)

func (m *MockPodcastStore) List(ctx context.Context) ([]domain.Podcast, error) {
	args := m.Called(ctx)
	if podcasts, ok := args.Get(0).([]domain.Podcast); ok {
		return podcasts, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPodcastStore) Create(ctx context.Context, podcast *domain.Podcast) error {
	args := m.Called(ctx, podcast)
	return args.Error(0)
}

func (m *MockPodcastStore) GetByID(ctx context.Context, id int64) (*domain.Podcast, error) {
	args := m.Called(ctx, id)
	if podcast, ok := args.Get(0).(*domain.Podcast); ok {
		return podcast, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPodcastStore) Update(ctx context.Context, podcast *domain.Podcast) error {
	args := m.Called(ctx, podcast)
	return args.Error(0)
}

func (m *MockPodcastStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockEpisodeStore is a mock of store.EpisodeStore for use with testify/mock
type MockEpisodeStore struct {
	mock.Mock
}

var _ store.EpisodeStore = (*MockEpisodeStore)(nil)

func (m *MockEpisodeStore) Create(ctx context.Context, episode *domain.Episode) error {
	args := m.Called(ctx, episode)
	return args.Error(0)
}

func (m *MockEpisodeStore) Update(ctx context.Context, episode *domain.Episode) error {
	args := m.Called(ctx, episode)
	return args.Error(0)
}

func (m *MockEpisodeStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
