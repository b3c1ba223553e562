package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/ignatzorin/portfolio-backend/internal/models"
	"github.com/ignatzorin/portfolio-backend/internal/repository/common"
)

// SpaceRepository отвечает за справочник collaborative_spaces.
type SpaceRepository struct {
	db *sqlx.DB
}

// NewSpaceRepository создаёт экземпляр репозитория.
func NewSpaceRepository(db *sqlx.DB) *SpaceRepository {
	return &SpaceRepository{db: db}
}

// Create добавляет пространство. Используется только при наполнении базы.
func (r *SpaceRepository) Create(ctx context.Context, space *models.CollaborativeSpace) error {
	query := `
		INSERT INTO collaborative_spaces (name, description, space_type, max_participants, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	if err := r.db.QueryRowxContext(
		ctx, query,
		space.Name, space.Description, space.SpaceType, space.MaxParticipants, space.IsActive,
	).Scan(&space.ID, &space.CreatedAt, &space.UpdatedAt); err != nil {
		return fmt.Errorf("space repository: create %w", err)
	}

	return nil
}

// List возвращает все пространства.
func (r *SpaceRepository) List(ctx context.Context) ([]models.CollaborativeSpace, error) {
	items, err := common.SelectAll[models.CollaborativeSpace](ctx, r.db, `
		SELECT id, name, description, space_type, max_participants, is_active, created_at, updated_at
		FROM collaborative_spaces
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("space repository: list %w", err)
	}
	return items, nil
}
