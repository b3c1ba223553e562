package service

import (
	"context"
	"errors"
	"time"

	"github.com/ignatzorin/portfolio-backend/internal/models"
	"github.com/ignatzorin/portfolio-backend/internal/repository"
)

// UserRepository хранилище профиля владельца.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetFirst(ctx context.Context) (*models.User, error)
}

// SpaceRepository справочник совместных пространств.
type SpaceRepository interface {
	Create(ctx context.Context, space *models.CollaborativeSpace) error
	List(ctx context.Context) ([]models.CollaborativeSpace, error)
}

// ProfileService отдаёт данные только для чтения: профиль и пространства.
type ProfileService struct {
	users    UserRepository
	spaces   SpaceRepository
	cache    *CacheService
	cacheTTL time.Duration
}

// NewProfileService создаёт сервис профиля.
func NewProfileService(users UserRepository, spaces SpaceRepository) *ProfileService {
	return &ProfileService{users: users, spaces: spaces}
}

// WithCache включает кэш профиля.
func (s *ProfileService) WithCache(cache *CacheService, ttl time.Duration) *ProfileService {
	s.cache = cache
	s.cacheTTL = ttl
	return s
}

// GetProfile возвращает профиль владельца или nil, если он ещё не создан.
func (s *ProfileService) GetProfile(ctx context.Context) (*models.User, error) {
	return readThrough(s.cache, cacheKeyProfile, s.cacheTTL, func() (*models.User, error) {
		return s.loadProfile(ctx)
	})
}

func (s *ProfileService) loadProfile(ctx context.Context) (*models.User, error) {
	user, err := s.users.GetFirst(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, nil
		}
		return nil, storeError(err, "profile.get", "не удалось получить профиль")
	}
	return user, nil
}

// ListSpaces возвращает все совместные пространства.
func (s *ProfileService) ListSpaces(ctx context.Context) ([]models.CollaborativeSpace, error) {
	items, err := s.spaces.List(ctx)
	if err != nil {
		return nil, storeError(err, "space.list", "не удалось получить пространства")
	}
	return items, nil
}
