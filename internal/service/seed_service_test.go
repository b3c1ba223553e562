package service

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/portfolio-backend/internal/models"
	"github.com/ignatzorin/portfolio-backend/internal/repository"
)

const seedYAML = `
profile:
  name: Corey
  title: Data Engineer
  bio: Builds things.
spaces:
  - name: Review room
    space_type: feedback_space
    max_participants: 4
    is_active: true
themes:
  - name: midnight
    is_active: true
    colors: {primary: "#1e3a8a", text: "#f8fafc"}
    typography:
      font_family_primary: Inter
      font_sizes: {base: 16}
    spacing: {md: 16}
    animations: {transition_duration: 0.3, easing_function: ease-out}
artifacts:
  - title: Gallery
    description: 3D gallery
    category: visualization
    tags: [three, go]
    position: [1.5, 0, -2]
    rotation: [0, 90, 0]
    is_featured: true
progress_trackers:
  - project_name: Gallery
    current_phase: build
    completion_percentage: 60
    milestones:
      - name: scene
        completed: true
        due_date: 2025-03-01T12:00:00Z
change_logs:
  - date: 2025-03-02
    changes:
      - {type: feature, description: curator, impact: high}
`

func TestParseSeed(t *testing.T) {
	fixture, err := ParseSeed([]byte(seedYAML))
	require.NoError(t, err)

	assert.Equal(t, "Corey", fixture.Profile.Name)
	require.Len(t, fixture.Artifacts, 1)

	in := fixture.Artifacts[0].input()
	assert.Equal(t, 1.5, *in.PositionX)
	assert.Equal(t, -2.0, *in.PositionZ)
	assert.Equal(t, 90.0, *in.RotationY)
	assert.Equal(t, 1.0, *in.Scale)
	assert.True(t, *in.IsFeatured)

	require.NotNil(t, fixture.Trackers[0].Milestones[0].DueDate)
	assert.True(t, fixture.Trackers[0].Milestones[0].DueDate.Equal(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)))
	assert.Equal(t, 2025, fixture.ChangeLogs[0].Date.Year())
	assert.Equal(t, 16.0, fixture.Themes[0].Typography.FontSizes["base"])
}

func TestParseSeed_Invalid(t *testing.T) {
	cases := map[string]string{
		"bad yaml":       "profile: [",
		"no profile":     "spaces: []",
		"bad space type": "profile: {name: x}\nspaces: [{name: a, space_type: lobby, max_participants: 2}]",
		"two active":     "profile: {name: x}\nthemes: [{name: a, is_active: true}, {name: b, is_active: true}]",
		"bad category":   "profile: {name: x}\nartifacts: [{title: a, category: games}]",
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseSeed([]byte(data))
			assert.Error(t, err)
		})
	}
}

func TestLoadSeedFile_Bundled(t *testing.T) {
	if _, err := os.Stat("../../seed/portfolio.yaml"); err != nil {
		t.Skip("seed file not found")
	}
	fixture, err := LoadSeedFile("../../seed/portfolio.yaml")
	require.NoError(t, err)
	assert.NotEmpty(t, fixture.Artifacts)
}

func newSeedServiceWithMocks() (*SeedService, *mockUserRepo, *mockSpaceRepo, *mockThemeRepo, *mockArtifactRepo, *mockProgressRepo, *mockChangeLogRepo) {
	users := new(mockUserRepo)
	spaces := new(mockSpaceRepo)
	themes := new(mockThemeRepo)
	artifacts := new(mockArtifactRepo)
	progress := new(mockProgressRepo)
	changeLogs := new(mockChangeLogRepo)

	svc := NewSeedService(users, spaces, themes,
		NewArtifactService(artifacts), NewProgressService(progress), NewChangeLogService(changeLogs))
	return svc, users, spaces, themes, artifacts, progress, changeLogs
}

func TestSeedService_Seed(t *testing.T) {
	svc, users, spaces, themes, artifacts, progress, changeLogs := newSeedServiceWithMocks()

	fixture, err := ParseSeed([]byte(seedYAML))
	require.NoError(t, err)

	users.On("GetFirst", mock.Anything).Return(nil, repository.ErrUserNotFound)
	users.On("Create", mock.Anything, mock.MatchedBy(func(u *models.User) bool { return u.Name == "Corey" })).Return(nil)
	spaces.On("Create", mock.Anything, mock.Anything).Return(nil)
	themes.On("Create", mock.Anything, mock.MatchedBy(func(th *models.DesignSystemTheme) bool { return th.IsActive })).
		Return(&models.DesignSystemTheme{ID: 1}, nil)
	artifacts.On("Create", mock.Anything, mock.Anything).Return(&models.PortfolioArtifact{ID: 1}, nil)
	progress.On("Create", mock.Anything, mock.Anything).Return(&models.ProgressTracker{ID: 1}, nil)
	changeLogs.On("Create", mock.Anything, mock.Anything).Return(&models.DailyChangeLog{ID: 1}, nil)

	result, err := svc.Seed(context.Background(), fixture)
	require.NoError(t, err)

	assert.Equal(t, &SeedResult{
		ProfileCreated:    true,
		SpacesCreated:     1,
		ThemesCreated:     1,
		ArtifactsCreated:  1,
		TrackersCreated:   1,
		ChangeLogsCreated: 1,
	}, result)
}

func TestSeedService_SkipsWhenProfileExists(t *testing.T) {
	svc, users, spaces, _, _, _, _ := newSeedServiceWithMocks()

	users.On("GetFirst", mock.Anything).Return(&models.User{ID: 1}, nil)

	result, err := svc.Seed(context.Background(), &SeedFixture{Profile: SeedProfile{Name: "x"}})
	require.NoError(t, err)
	assert.True(t, result.Skipped)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	spaces.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
