package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/ignatzorin/portfolio-backend/internal/models"
	"github.com/ignatzorin/portfolio-backend/internal/repository/common"
)

// ErrProgressTrackerNotFound возвращается, когда трекер не найден.
var ErrProgressTrackerNotFound = errors.New("progress tracker not found")

const progressColumns = `id, project_name, current_phase, completion_percentage, milestones, created_at, updated_at`

type progressRow struct {
	ID                   int64                            `db:"id"`
	ProjectName          string                           `db:"project_name"`
	CurrentPhase         string                           `db:"current_phase"`
	CompletionPercentage int                              `db:"completion_percentage"`
	Milestones           common.JSONB[[]models.Milestone] `db:"milestones"`
	CreatedAt            time.Time                        `db:"created_at"`
	UpdatedAt            time.Time                        `db:"updated_at"`
}

func (r progressRow) toModel() models.ProgressTracker {
	milestones := r.Milestones.V
	if milestones == nil {
		milestones = []models.Milestone{}
	}
	return models.ProgressTracker{
		ID:                   r.ID,
		ProjectName:          r.ProjectName,
		CurrentPhase:         r.CurrentPhase,
		CompletionPercentage: r.CompletionPercentage,
		Milestones:           milestones,
		CreatedAt:            r.CreatedAt,
		UpdatedAt:            r.UpdatedAt,
	}
}

func milestonesOrEmpty(m []models.Milestone) []models.Milestone {
	if m == nil {
		return []models.Milestone{}
	}
	return m
}

// ProgressRepository отвечает за таблицу progress_trackers.
type ProgressRepository struct {
	db *sqlx.DB
}

// NewProgressRepository создаёт экземпляр репозитория.
func NewProgressRepository(db *sqlx.DB) *ProgressRepository {
	return &ProgressRepository{db: db}
}

// Create сохраняет трекер.
func (r *ProgressRepository) Create(ctx context.Context, tracker *models.ProgressTracker) (*models.ProgressTracker, error) {
	query := `
		INSERT INTO progress_trackers (project_name, current_phase, completion_percentage, milestones)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + progressColumns

	var row progressRow
	if err := r.db.GetContext(ctx, &row, query,
		tracker.ProjectName,
		tracker.CurrentPhase,
		tracker.CompletionPercentage,
		common.NewJSONB(milestonesOrEmpty(tracker.Milestones)),
	); err != nil {
		return nil, fmt.Errorf("progress repository: create %w", err)
	}

	created := row.toModel()
	return &created, nil
}

// List возвращает все трекеры.
func (r *ProgressRepository) List(ctx context.Context) ([]models.ProgressTracker, error) {
	rows, err := common.SelectAll[progressRow](ctx, r.db,
		`SELECT `+progressColumns+` FROM progress_trackers ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("progress repository: list %w", err)
	}

	items := make([]models.ProgressTracker, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toModel())
	}
	return items, nil
}

// Update меняет переданные поля. Этапы заменяются целиком.
func (r *ProgressRepository) Update(ctx context.Context, input models.UpdateProgressTrackerInput) (*models.ProgressTracker, error) {
	var b common.UpdateBuilder

	if v, ok := input.ProjectName.Get(); ok {
		b.Set("project_name", v)
	}
	if v, ok := input.CurrentPhase.Get(); ok {
		b.Set("current_phase", v)
	}
	if v, ok := input.CompletionPercentage.Get(); ok {
		b.Set("completion_percentage", v)
	}
	if v, ok := input.Milestones.Get(); ok {
		b.Set("milestones", common.NewJSONB(milestonesOrEmpty(v)))
	}

	query, args := b.Build("progress_trackers", input.ID, progressColumns)

	row, err := common.GetOne[progressRow](ctx, r.db, ErrProgressTrackerNotFound, query, args...)
	if err != nil {
		if errors.Is(err, ErrProgressTrackerNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("progress repository: update %w", err)
	}

	updated := row.toModel()
	return &updated, nil
}
