package service

import (
	"context"

	"github.com/ignatzorin/portfolio-backend/internal/curator"
	"github.com/ignatzorin/portfolio-backend/internal/logger"
	"github.com/ignatzorin/portfolio-backend/internal/models"
	"github.com/ignatzorin/portfolio-backend/internal/pkg/apperror"
	"github.com/ignatzorin/portfolio-backend/internal/validation"
)

// CuratorRepository хранилище реплик куратора.
type CuratorRepository interface {
	Create(ctx context.Context, interaction *models.AiCuratorInteraction) error
	ListBySession(ctx context.Context, sessionID string) ([]models.AiCuratorInteraction, error)
}

// InteractionPublisher рассылает новые реплики подписчикам сессии.
type InteractionPublisher interface {
	PublishInteraction(interaction models.AiCuratorInteraction)
}

// CuratorService подбирает ответ куратора и ведёт журнал реплик.
type CuratorService struct {
	repo      CuratorRepository
	publisher InteractionPublisher
}

// NewCuratorService создаёт сервис. publisher может быть nil.
func NewCuratorService(repo CuratorRepository, publisher InteractionPublisher) *CuratorService {
	return &CuratorService{repo: repo, publisher: publisher}
}

// CreateInteraction выбирает ответ, сохраняет реплику и публикует её в сессию.
func (s *CuratorService) CreateInteraction(ctx context.Context, in models.CreateAiCuratorInteractionInput) (*models.AiCuratorInteraction, error) {
	if err := validation.ValidateCreateInteraction(in); err != nil {
		return nil, apperror.Validation(err)
	}

	response, topic := curator.Select(in.UserInput, in.InteractionType, in.ContextArtifactID)

	interaction := &models.AiCuratorInteraction{
		SessionID:         in.SessionID,
		UserInput:         in.UserInput,
		CuratorResponse:   response,
		InteractionType:   in.InteractionType,
		ContextArtifactID: in.ContextArtifactID,
	}

	if err := s.repo.Create(ctx, interaction); err != nil {
		return nil, storeError(err, "curator.create", "не удалось сохранить реплику куратора")
	}

	logger.Entry().WithFields(map[string]interface{}{
		"session_id": interaction.SessionID,
		"channel":    interaction.InteractionType,
		"topic":      topic,
	}).Debug("curator: ответ выбран")

	if s.publisher != nil {
		s.publisher.PublishInteraction(*interaction)
	}

	return interaction, nil
}

// ListInteractions возвращает реплики сессии, новые первыми.
func (s *CuratorService) ListInteractions(ctx context.Context, sessionID string) ([]models.AiCuratorInteraction, error) {
	if err := validation.ValidateSessionID(sessionID); err != nil {
		return nil, apperror.Validation(err)
	}

	items, err := s.repo.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, storeError(err, "curator.list", "не удалось получить реплики куратора")
	}
	return items, nil
}
