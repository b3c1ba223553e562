package service

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/ignatzorin/portfolio-backend/internal/models"
)

type mockArtifactRepo struct {
	mock.Mock
}

func (m *mockArtifactRepo) Create(ctx context.Context, artifact *models.PortfolioArtifact) (*models.PortfolioArtifact, error) {
	args := m.Called(ctx, artifact)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PortfolioArtifact), args.Error(1)
}

func (m *mockArtifactRepo) List(ctx context.Context) ([]models.PortfolioArtifact, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PortfolioArtifact), args.Error(1)
}

func (m *mockArtifactRepo) ListFeatured(ctx context.Context) ([]models.PortfolioArtifact, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PortfolioArtifact), args.Error(1)
}

func (m *mockArtifactRepo) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockArtifactRepo) Update(ctx context.Context, input models.UpdatePortfolioArtifactInput) (*models.PortfolioArtifact, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PortfolioArtifact), args.Error(1)
}

type mockCuratorRepo struct {
	mock.Mock
}

func (m *mockCuratorRepo) Create(ctx context.Context, interaction *models.AiCuratorInteraction) error {
	args := m.Called(ctx, interaction)
	if args.Error(0) == nil {
		interaction.ID = 1
	}
	return args.Error(0)
}

func (m *mockCuratorRepo) ListBySession(ctx context.Context, sessionID string) ([]models.AiCuratorInteraction, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.AiCuratorInteraction), args.Error(1)
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) PublishInteraction(interaction models.AiCuratorInteraction) {
	m.Called(interaction)
}

type mockProgressRepo struct {
	mock.Mock
}

func (m *mockProgressRepo) Create(ctx context.Context, tracker *models.ProgressTracker) (*models.ProgressTracker, error) {
	args := m.Called(ctx, tracker)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ProgressTracker), args.Error(1)
}

func (m *mockProgressRepo) List(ctx context.Context) ([]models.ProgressTracker, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ProgressTracker), args.Error(1)
}

func (m *mockProgressRepo) Update(ctx context.Context, input models.UpdateProgressTrackerInput) (*models.ProgressTracker, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ProgressTracker), args.Error(1)
}

type mockChangeLogRepo struct {
	mock.Mock
}

func (m *mockChangeLogRepo) Create(ctx context.Context, log *models.DailyChangeLog) (*models.DailyChangeLog, error) {
	args := m.Called(ctx, log)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DailyChangeLog), args.Error(1)
}

func (m *mockChangeLogRepo) List(ctx context.Context, limit int) ([]models.DailyChangeLog, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.DailyChangeLog), args.Error(1)
}

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	if args.Error(0) == nil {
		user.ID = 1
	}
	return args.Error(0)
}

func (m *mockUserRepo) GetFirst(ctx context.Context) (*models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type mockSpaceRepo struct {
	mock.Mock
}

func (m *mockSpaceRepo) Create(ctx context.Context, space *models.CollaborativeSpace) error {
	args := m.Called(ctx, space)
	return args.Error(0)
}

func (m *mockSpaceRepo) List(ctx context.Context) ([]models.CollaborativeSpace, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CollaborativeSpace), args.Error(1)
}

type mockThemeRepo struct {
	mock.Mock
}

func (m *mockThemeRepo) Create(ctx context.Context, theme *models.DesignSystemTheme) (*models.DesignSystemTheme, error) {
	args := m.Called(ctx, theme)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DesignSystemTheme), args.Error(1)
}

func (m *mockThemeRepo) GetActive(ctx context.Context) (*models.DesignSystemTheme, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DesignSystemTheme), args.Error(1)
}

func (m *mockThemeRepo) Activate(ctx context.Context, id int64) (*models.DesignSystemTheme, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DesignSystemTheme), args.Error(1)
}

type mockMediaStore struct {
	mock.Mock
	saved []byte
}

func (m *mockMediaStore) Save(ctx context.Context, artifactID int64, slot, ext string, r io.Reader) (string, int64, error) {
	data, _ := io.ReadAll(r)
	m.saved = data
	args := m.Called(ctx, artifactID, slot, ext)
	return args.String(0), int64(len(data)), args.Error(1)
}

func (m *mockMediaStore) Delete(ctx context.Context, relativePath string) error {
	args := m.Called(ctx, relativePath)
	return args.Error(0)
}
