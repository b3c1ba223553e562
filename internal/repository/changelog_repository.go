package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/ignatzorin/portfolio-backend/internal/models"
	"github.com/ignatzorin/portfolio-backend/internal/repository/common"
)

const changeLogColumns = `id, date, changes, created_at`

type changeLogRow struct {
	ID        int64                              `db:"id"`
	Date      time.Time                          `db:"date"`
	Changes   common.JSONB[[]models.ChangeEntry] `db:"changes"`
	CreatedAt time.Time                          `db:"created_at"`
}

func (r changeLogRow) toModel() models.DailyChangeLog {
	changes := r.Changes.V
	if changes == nil {
		changes = []models.ChangeEntry{}
	}
	return models.DailyChangeLog{
		ID:        r.ID,
		Date:      r.Date,
		Changes:   changes,
		CreatedAt: r.CreatedAt,
	}
}

// ChangeLogRepository отвечает за таблицу daily_change_logs. Записи только добавляются.
type ChangeLogRepository struct {
	db *sqlx.DB
}

// NewChangeLogRepository создаёт экземпляр репозитория.
func NewChangeLogRepository(db *sqlx.DB) *ChangeLogRepository {
	return &ChangeLogRepository{db: db}
}

// Create сохраняет журнал за день.
func (r *ChangeLogRepository) Create(ctx context.Context, log *models.DailyChangeLog) (*models.DailyChangeLog, error) {
	changes := log.Changes
	if changes == nil {
		changes = []models.ChangeEntry{}
	}

	var row changeLogRow
	if err := r.db.GetContext(ctx, &row, `
		INSERT INTO daily_change_logs (date, changes)
		VALUES ($1, $2)
		RETURNING `+changeLogColumns,
		log.Date, common.NewJSONB(changes),
	); err != nil {
		return nil, fmt.Errorf("changelog repository: create %w", err)
	}

	created := row.toModel()
	return &created, nil
}

// List возвращает журналы от новых к старым. limit <= 0 означает без ограничения.
func (r *ChangeLogRepository) List(ctx context.Context, limit int) ([]models.DailyChangeLog, error) {
	query := `SELECT ` + changeLogColumns + ` FROM daily_change_logs ORDER BY date DESC, id DESC`
	args := []interface{}{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}

	rows, err := common.SelectAll[changeLogRow](ctx, r.db, query, args...)
	if err != nil {
		return nil, fmt.Errorf("changelog repository: list %w", err)
	}

	items := make([]models.DailyChangeLog, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toModel())
	}
	return items, nil
}
