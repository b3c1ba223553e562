package service

import (
	"context"
	"errors"

	"github.com/ignatzorin/portfolio-backend/internal/models"
	"github.com/ignatzorin/portfolio-backend/internal/pkg/apperror"
	"github.com/ignatzorin/portfolio-backend/internal/repository"
	"github.com/ignatzorin/portfolio-backend/internal/validation"
)

// ProgressRepository хранилище трекеров прогресса.
type ProgressRepository interface {
	Create(ctx context.Context, tracker *models.ProgressTracker) (*models.ProgressTracker, error)
	List(ctx context.Context) ([]models.ProgressTracker, error)
	Update(ctx context.Context, input models.UpdateProgressTrackerInput) (*models.ProgressTracker, error)
}

// ProgressService управляет трекерами прогресса.
type ProgressService struct {
	repo ProgressRepository
}

// NewProgressService создаёт сервис трекеров.
func NewProgressService(repo ProgressRepository) *ProgressService {
	return &ProgressService{repo: repo}
}

// CreateTracker проверяет вход и сохраняет трекер.
func (s *ProgressService) CreateTracker(ctx context.Context, in models.CreateProgressTrackerInput) (*models.ProgressTracker, error) {
	if err := validation.ValidateCreateProgress(in); err != nil {
		return nil, apperror.Validation(err)
	}

	created, err := s.repo.Create(ctx, &models.ProgressTracker{
		ProjectName:          in.ProjectName,
		CurrentPhase:         in.CurrentPhase,
		CompletionPercentage: *in.CompletionPercentage,
		Milestones:           in.Milestones,
	})
	if err != nil {
		return nil, storeError(err, "progress.create", "не удалось сохранить трекер")
	}
	return created, nil
}

// ListTrackers возвращает все трекеры.
func (s *ProgressService) ListTrackers(ctx context.Context) ([]models.ProgressTracker, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, storeError(err, "progress.list", "не удалось получить трекеры")
	}
	return items, nil
}

// UpdateTracker применяет частичное обновление. Если трекера нет, возвращает nil без ошибки.
func (s *ProgressService) UpdateTracker(ctx context.Context, in models.UpdateProgressTrackerInput) (*models.ProgressTracker, error) {
	if err := validation.ValidateUpdateProgress(in); err != nil {
		return nil, apperror.Validation(err)
	}

	updated, err := s.repo.Update(ctx, in)
	if err != nil {
		if errors.Is(err, repository.ErrProgressTrackerNotFound) {
			return nil, nil
		}
		return nil, storeError(err, "progress.update", "не удалось обновить трекер")
	}
	return updated, nil
}
