package service

import (
	"context"
	"errors"
	"time"

	"github.com/ignatzorin/portfolio-backend/internal/models"
	"github.com/ignatzorin/portfolio-backend/internal/pkg/apperror"
	"github.com/ignatzorin/portfolio-backend/internal/repository"
	"github.com/ignatzorin/portfolio-backend/internal/validation"
)

// ThemeRepository хранилище тем оформления.
type ThemeRepository interface {
	Create(ctx context.Context, theme *models.DesignSystemTheme) (*models.DesignSystemTheme, error)
	GetActive(ctx context.Context) (*models.DesignSystemTheme, error)
	Activate(ctx context.Context, id int64) (*models.DesignSystemTheme, error)
}

// ThemeService отдаёт и переключает активную тему.
type ThemeService struct {
	repo     ThemeRepository
	cache    *CacheService
	cacheTTL time.Duration
}

// NewThemeService создаёт сервис тем.
func NewThemeService(repo ThemeRepository) *ThemeService {
	return &ThemeService{repo: repo}
}

// WithCache включает кэш активной темы.
func (s *ThemeService) WithCache(cache *CacheService, ttl time.Duration) *ThemeService {
	s.cache = cache
	s.cacheTTL = ttl
	return s
}

// GetActiveTheme возвращает активную тему или nil.
func (s *ThemeService) GetActiveTheme(ctx context.Context) (*models.DesignSystemTheme, error) {
	return readThrough(s.cache, cacheKeyActiveTheme, s.cacheTTL, func() (*models.DesignSystemTheme, error) {
		return s.loadActive(ctx)
	})
}

func (s *ThemeService) loadActive(ctx context.Context) (*models.DesignSystemTheme, error) {
	theme, err := s.repo.GetActive(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrThemeNotFound) {
			return nil, nil
		}
		return nil, storeError(err, "theme.get_active", "не удалось получить тему")
	}
	return theme, nil
}

// ActivateTheme делает тему активной. Если темы нет, возвращает nil без ошибки.
func (s *ThemeService) ActivateTheme(ctx context.Context, id int64) (*models.DesignSystemTheme, error) {
	if err := validation.ValidateID("id", id); err != nil {
		return nil, apperror.Validation(err)
	}

	s.invalidateActive()
	theme, err := s.repo.Activate(ctx, id)
	s.invalidateActive()
	if err != nil {
		if errors.Is(err, repository.ErrThemeNotFound) {
			return nil, nil
		}
		if errors.Is(err, repository.ErrThemeConflict) {
			return nil, apperror.Wrap(err, apperror.ErrCodeConflict, "тема уже активируется другим запросом, повторите попытку")
		}
		return nil, storeError(err, "theme.activate", "не удалось активировать тему")
	}
	return theme, nil
}

func (s *ThemeService) invalidateActive() {
	if s.cache != nil {
		s.cache.Delete(cacheKeyActiveTheme)
	}
}
