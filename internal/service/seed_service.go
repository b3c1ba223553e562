package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ignatzorin/portfolio-backend/internal/logger"
	"github.com/ignatzorin/portfolio-backend/internal/models"
	"github.com/ignatzorin/portfolio-backend/internal/repository"
	"github.com/ignatzorin/portfolio-backend/internal/validation"
)

// SeedFixture содержимое YAML файла с начальными данными галереи.
type SeedFixture struct {
	Profile    SeedProfile     `yaml:"profile"`
	Spaces     []SeedSpace     `yaml:"spaces"`
	Themes     []SeedTheme     `yaml:"themes"`
	Artifacts  []SeedArtifact  `yaml:"artifacts"`
	Trackers   []SeedTracker   `yaml:"progress_trackers"`
	ChangeLogs []SeedChangeLog `yaml:"change_logs"`
}

// SeedProfile владелец галереи.
type SeedProfile struct {
	Name      string  `yaml:"name"`
	Title     string  `yaml:"title"`
	Bio       *string `yaml:"bio"`
	AvatarURL *string `yaml:"avatar_url"`
}

// SeedSpace пространство для совместной работы.
type SeedSpace struct {
	Name            string  `yaml:"name"`
	Description     *string `yaml:"description"`
	SpaceType       string  `yaml:"space_type"`
	MaxParticipants int     `yaml:"max_participants"`
	IsActive        bool    `yaml:"is_active"`
}

// SeedTheme тема оформления.
type SeedTheme struct {
	Name       string                 `yaml:"name"`
	Colors     models.ThemeColors     `yaml:"colors"`
	Typography models.ThemeTypography `yaml:"typography"`
	Spacing    map[string]float64     `yaml:"spacing"`
	Animations models.ThemeAnimations `yaml:"animations"`
	IsActive   bool                   `yaml:"is_active"`
}

// SeedArtifact работа портфолио; position и rotation задаются тройками x, y, z.
type SeedArtifact struct {
	Title        string     `yaml:"title"`
	Description  string     `yaml:"description"`
	Category     string     `yaml:"category"`
	Tags         []string   `yaml:"tags"`
	ThumbnailURL *string    `yaml:"thumbnail_url"`
	ModelURL     *string    `yaml:"model_url"`
	DemoURL      *string    `yaml:"demo_url"`
	GithubURL    *string    `yaml:"github_url"`
	Position     [3]float64 `yaml:"position"`
	Rotation     [3]float64 `yaml:"rotation"`
	Scale        float64    `yaml:"scale"`
	IsFeatured   bool       `yaml:"is_featured"`
}

// SeedMilestone этап трекера; due_date допускает дату без времени.
type SeedMilestone struct {
	Name      string     `yaml:"name"`
	Completed bool       `yaml:"completed"`
	DueDate   *time.Time `yaml:"due_date"`
}

// SeedTracker трекер прогресса проекта.
type SeedTracker struct {
	ProjectName          string          `yaml:"project_name"`
	CurrentPhase         string          `yaml:"current_phase"`
	CompletionPercentage int             `yaml:"completion_percentage"`
	Milestones           []SeedMilestone `yaml:"milestones"`
}

// SeedChange одно изменение в журнале.
type SeedChange struct {
	Type        string `yaml:"type"`
	Description string `yaml:"description"`
	Impact      string `yaml:"impact"`
}

// SeedChangeLog журнал изменений за день.
type SeedChangeLog struct {
	Date    time.Time    `yaml:"date"`
	Changes []SeedChange `yaml:"changes"`
}

// SeedResult итог наполнения базы.
type SeedResult struct {
	Skipped           bool `json:"skipped"`
	ProfileCreated    bool `json:"profile_created"`
	SpacesCreated     int  `json:"spaces_created"`
	ThemesCreated     int  `json:"themes_created"`
	ArtifactsCreated  int  `json:"artifacts_created"`
	TrackersCreated   int  `json:"trackers_created"`
	ChangeLogsCreated int  `json:"change_logs_created"`
}

// ParseSeed разбирает YAML и проверяет значения перечислений.
func ParseSeed(data []byte) (*SeedFixture, error) {
	var fixture SeedFixture
	if err := yaml.Unmarshal(data, &fixture); err != nil {
		return nil, fmt.Errorf("seed service: parse yaml: %w", err)
	}
	if err := fixture.validate(); err != nil {
		return nil, fmt.Errorf("seed service: %w", err)
	}
	return &fixture, nil
}

// LoadSeedFile читает и разбирает файл с начальными данными.
func LoadSeedFile(path string) (*SeedFixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("seed service: read %s: %w", path, err)
	}
	return ParseSeed(data)
}

func (f *SeedFixture) validate() error {
	if err := validation.ValidateNonEmpty("profile.name", f.Profile.Name); err != nil {
		return err
	}
	for i, s := range f.Spaces {
		if err := validation.ValidateEnum(fmt.Sprintf("spaces[%d].space_type", i), s.SpaceType, models.ValidSpaceTypes); err != nil {
			return err
		}
		if s.MaxParticipants <= 0 {
			return fmt.Errorf("spaces[%d].max_participants должен быть положительным", i)
		}
	}
	active := 0
	for _, t := range f.Themes {
		if t.IsActive {
			active++
		}
	}
	if active > 1 {
		return fmt.Errorf("активной может быть только одна тема, найдено %d", active)
	}
	for _, a := range f.Artifacts {
		if err := validation.ValidateCreateArtifact(a.input()); err != nil {
			return fmt.Errorf("artifact %q: %w", a.Title, err)
		}
	}
	for _, t := range f.Trackers {
		if err := validation.ValidateCreateProgress(t.input()); err != nil {
			return fmt.Errorf("tracker %q: %w", t.ProjectName, err)
		}
	}
	for _, l := range f.ChangeLogs {
		if err := validation.ValidateCreateChangeLog(l.input()); err != nil {
			return fmt.Errorf("change log %s: %w", l.Date.Format("2006-01-02"), err)
		}
	}
	return nil
}

func (a SeedArtifact) input() models.CreatePortfolioArtifactInput {
	tags := a.Tags
	if tags == nil {
		tags = []string{}
	}
	scale := a.Scale
	if scale == 0 {
		scale = 1
	}
	featured := a.IsFeatured
	return models.CreatePortfolioArtifactInput{
		Title:        a.Title,
		Description:  a.Description,
		Category:     a.Category,
		Tags:         tags,
		ThumbnailURL: a.ThumbnailURL,
		ModelURL:     a.ModelURL,
		DemoURL:      a.DemoURL,
		GithubURL:    a.GithubURL,
		PositionX:    &a.Position[0],
		PositionY:    &a.Position[1],
		PositionZ:    &a.Position[2],
		RotationX:    &a.Rotation[0],
		RotationY:    &a.Rotation[1],
		RotationZ:    &a.Rotation[2],
		Scale:        &scale,
		IsFeatured:   &featured,
	}
}

func (t SeedTracker) input() models.CreateProgressTrackerInput {
	milestones := make([]models.Milestone, 0, len(t.Milestones))
	for _, m := range t.Milestones {
		milestones = append(milestones, models.Milestone{Name: m.Name, Completed: m.Completed, DueDate: m.DueDate})
	}
	completion := t.CompletionPercentage
	return models.CreateProgressTrackerInput{
		ProjectName:          t.ProjectName,
		CurrentPhase:         t.CurrentPhase,
		CompletionPercentage: &completion,
		Milestones:           milestones,
	}
}

func (l SeedChangeLog) input() models.CreateDailyChangeLogInput {
	changes := make([]models.ChangeEntry, 0, len(l.Changes))
	for _, c := range l.Changes {
		changes = append(changes, models.ChangeEntry{Type: c.Type, Description: c.Description, Impact: c.Impact})
	}
	date := l.Date
	return models.CreateDailyChangeLogInput{Date: &date, Changes: changes}
}

// SeedService наполняет пустую базу данными из YAML.
type SeedService struct {
	users      UserRepository
	spaces     SpaceRepository
	themes     ThemeRepository
	artifacts  *ArtifactService
	progress   *ProgressService
	changeLogs *ChangeLogService
	cache      *CacheService
}

// NewSeedService создаёт сервис наполнения.
func NewSeedService(
	users UserRepository,
	spaces SpaceRepository,
	themes ThemeRepository,
	artifacts *ArtifactService,
	progress *ProgressService,
	changeLogs *ChangeLogService,
) *SeedService {
	return &SeedService{
		users:      users,
		spaces:     spaces,
		themes:     themes,
		artifacts:  artifacts,
		progress:   progress,
		changeLogs: changeLogs,
	}
}

// WithCache сбрасывает кэш профиля и темы после наполнения.
func (s *SeedService) WithCache(cache *CacheService) *SeedService {
	s.cache = cache
	return s
}

func (s *SeedService) invalidateReads() {
	if s.cache == nil {
		return
	}
	s.cache.InvalidateByPrefix(cachePrefixProfile)
	s.cache.InvalidateByPrefix(cachePrefixTheme)
}

// Seed записывает данные, если профиль ещё не создан. Повторный запуск ничего не меняет.
func (s *SeedService) Seed(ctx context.Context, fixture *SeedFixture) (*SeedResult, error) {
	existing, err := s.users.GetFirst(ctx)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return nil, fmt.Errorf("seed service: check profile: %w", err)
	}
	if existing != nil {
		logger.Entry().WithField("user_id", existing.ID).Info("seed: профиль уже существует, пропускаем")
		return &SeedResult{Skipped: true}, nil
	}

	result := &SeedResult{}
	defer s.invalidateReads()

	profile := &models.User{
		Name:      fixture.Profile.Name,
		Title:     fixture.Profile.Title,
		Bio:       fixture.Profile.Bio,
		AvatarURL: fixture.Profile.AvatarURL,
	}
	if err := s.users.Create(ctx, profile); err != nil {
		return result, fmt.Errorf("seed service: create profile: %w", err)
	}
	result.ProfileCreated = true

	for _, sp := range fixture.Spaces {
		if err := s.spaces.Create(ctx, &models.CollaborativeSpace{
			Name:            sp.Name,
			Description:     sp.Description,
			SpaceType:       sp.SpaceType,
			MaxParticipants: sp.MaxParticipants,
			IsActive:        sp.IsActive,
		}); err != nil {
			return result, fmt.Errorf("seed service: create space %q: %w", sp.Name, err)
		}
		result.SpacesCreated++
	}

	for _, th := range fixture.Themes {
		if _, err := s.themes.Create(ctx, &models.DesignSystemTheme{
			Name:       th.Name,
			Colors:     th.Colors,
			Typography: th.Typography,
			Spacing:    th.Spacing,
			Animations: th.Animations,
			IsActive:   th.IsActive,
		}); err != nil {
			return result, fmt.Errorf("seed service: create theme %q: %w", th.Name, err)
		}
		result.ThemesCreated++
	}

	for _, a := range fixture.Artifacts {
		if _, err := s.artifacts.CreateArtifact(ctx, a.input()); err != nil {
			return result, fmt.Errorf("seed service: create artifact %q: %w", a.Title, err)
		}
		result.ArtifactsCreated++
	}

	for _, t := range fixture.Trackers {
		if _, err := s.progress.CreateTracker(ctx, t.input()); err != nil {
			return result, fmt.Errorf("seed service: create tracker %q: %w", t.ProjectName, err)
		}
		result.TrackersCreated++
	}

	for _, l := range fixture.ChangeLogs {
		if _, err := s.changeLogs.CreateLog(ctx, l.input()); err != nil {
			return result, fmt.Errorf("seed service: create change log: %w", err)
		}
		result.ChangeLogsCreated++
	}

	logger.Entry().WithFields(map[string]interface{}{
		"spaces":      result.SpacesCreated,
		"themes":      result.ThemesCreated,
		"artifacts":   result.ArtifactsCreated,
		"trackers":    result.TrackersCreated,
		"change_logs": result.ChangeLogsCreated,
	}).Info("seed: база заполнена")

	return result, nil
}
