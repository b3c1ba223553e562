package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/ignatzorin/portfolio-backend/internal/models"
	"github.com/ignatzorin/portfolio-backend/internal/repository/common"
)

const interactionColumns = `id, session_id, user_input, curator_response, interaction_type, context_artifact_id, created_at`

// CuratorRepository хранит журнал реплик куратора. Записи только добавляются.
type CuratorRepository struct {
	db *sqlx.DB
}

// NewCuratorRepository создаёт экземпляр репозитория.
func NewCuratorRepository(db *sqlx.DB) *CuratorRepository {
	return &CuratorRepository{db: db}
}

// Create сохраняет реплику вместе с ответом.
func (r *CuratorRepository) Create(ctx context.Context, interaction *models.AiCuratorInteraction) error {
	query := `
		INSERT INTO ai_curator_interactions (session_id, user_input, curator_response, interaction_type, context_artifact_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	if err := r.db.QueryRowxContext(
		ctx, query,
		interaction.SessionID,
		interaction.UserInput,
		interaction.CuratorResponse,
		interaction.InteractionType,
		interaction.ContextArtifactID,
	).Scan(&interaction.ID, &interaction.CreatedAt); err != nil {
		return fmt.Errorf("curator repository: create %w", err)
	}

	return nil
}

// ListBySession возвращает реплики сессии, новые первыми.
func (r *CuratorRepository) ListBySession(ctx context.Context, sessionID string) ([]models.AiCuratorInteraction, error) {
	items, err := common.SelectAll[models.AiCuratorInteraction](ctx, r.db, `
		SELECT `+interactionColumns+`
		FROM ai_curator_interactions
		WHERE session_id = $1
		ORDER BY created_at DESC, id DESC
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("curator repository: list by session %w", err)
	}
	return items, nil
}
