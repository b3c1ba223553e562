package service

import (
	"context"
	"errors"

	"github.com/ignatzorin/portfolio-backend/internal/models"
	"github.com/ignatzorin/portfolio-backend/internal/pkg/apperror"
	"github.com/ignatzorin/portfolio-backend/internal/repository"
	"github.com/ignatzorin/portfolio-backend/internal/validation"
)

// ArtifactRepository описывает взаимодействие сервиса с хранилищем работ.
type ArtifactRepository interface {
	Create(ctx context.Context, artifact *models.PortfolioArtifact) (*models.PortfolioArtifact, error)
	List(ctx context.Context) ([]models.PortfolioArtifact, error)
	ListFeatured(ctx context.Context) ([]models.PortfolioArtifact, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Update(ctx context.Context, input models.UpdatePortfolioArtifactInput) (*models.PortfolioArtifact, error)
}

// ArtifactService содержит бизнес-логику работ портфолио.
type ArtifactService struct {
	repo ArtifactRepository
}

// NewArtifactService создаёт новый сервис работ.
func NewArtifactService(repo ArtifactRepository) *ArtifactService {
	return &ArtifactService{repo: repo}
}

// CreateArtifact проверяет вход и сохраняет работу.
func (s *ArtifactService) CreateArtifact(ctx context.Context, in models.CreatePortfolioArtifactInput) (*models.PortfolioArtifact, error) {
	if err := validation.ValidateCreateArtifact(in); err != nil {
		return nil, apperror.Validation(err)
	}

	artifact := &models.PortfolioArtifact{
		Title:        in.Title,
		Description:  in.Description,
		Category:     in.Category,
		Tags:         in.Tags,
		ThumbnailURL: in.ThumbnailURL,
		ModelURL:     in.ModelURL,
		DemoURL:      in.DemoURL,
		GithubURL:    in.GithubURL,
		PositionX:    *in.PositionX,
		PositionY:    *in.PositionY,
		PositionZ:    *in.PositionZ,
		RotationX:    *in.RotationX,
		RotationY:    *in.RotationY,
		RotationZ:    *in.RotationZ,
		Scale:        *in.Scale,
		IsFeatured:   *in.IsFeatured,
	}

	created, err := s.repo.Create(ctx, artifact)
	if err != nil {
		return nil, storeError(err, "artifact.create", "не удалось сохранить работу")
	}
	return created, nil
}

// ListArtifacts возвращает все работы.
func (s *ArtifactService) ListArtifacts(ctx context.Context) ([]models.PortfolioArtifact, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, storeError(err, "artifact.list", "не удалось получить работы")
	}
	return items, nil
}

// ListFeatured возвращает избранные работы.
func (s *ArtifactService) ListFeatured(ctx context.Context) ([]models.PortfolioArtifact, error) {
	items, err := s.repo.ListFeatured(ctx)
	if err != nil {
		return nil, storeError(err, "artifact.list_featured", "не удалось получить избранные работы")
	}
	return items, nil
}

// UpdateArtifact применяет частичное обновление.
// Если работы нет, возвращает nil без ошибки.
func (s *ArtifactService) UpdateArtifact(ctx context.Context, in models.UpdatePortfolioArtifactInput) (*models.PortfolioArtifact, error) {
	if err := validation.ValidateUpdateArtifact(in); err != nil {
		return nil, apperror.Validation(err)
	}

	updated, err := s.repo.Update(ctx, in)
	if err != nil {
		if errors.Is(err, repository.ErrArtifactNotFound) {
			return nil, nil
		}
		return nil, storeError(err, "artifact.update", "не удалось обновить работу")
	}
	return updated, nil
}

// ArtifactExists сообщает, есть ли работа с таким id.
func (s *ArtifactService) ArtifactExists(ctx context.Context, id int64) (bool, error) {
	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return false, storeError(err, "artifact.exists", "не удалось проверить работу")
	}
	return exists, nil
}
