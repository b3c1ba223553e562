package service

import (
	"context"

	"github.com/ignatzorin/portfolio-backend/internal/models"
	"github.com/ignatzorin/portfolio-backend/internal/pkg/apperror"
	"github.com/ignatzorin/portfolio-backend/internal/validation"
)

// ChangeLogRepository хранилище журналов изменений.
type ChangeLogRepository interface {
	Create(ctx context.Context, log *models.DailyChangeLog) (*models.DailyChangeLog, error)
	List(ctx context.Context, limit int) ([]models.DailyChangeLog, error)
}

// ChangeLogService ведёт дневной журнал изменений.
type ChangeLogService struct {
	repo ChangeLogRepository
}

// NewChangeLogService создаёт сервис журнала.
func NewChangeLogService(repo ChangeLogRepository) *ChangeLogService {
	return &ChangeLogService{repo: repo}
}

// CreateLog сохраняет журнал за день.
func (s *ChangeLogService) CreateLog(ctx context.Context, in models.CreateDailyChangeLogInput) (*models.DailyChangeLog, error) {
	if err := validation.ValidateCreateChangeLog(in); err != nil {
		return nil, apperror.Validation(err)
	}

	created, err := s.repo.Create(ctx, &models.DailyChangeLog{
		Date:    in.Date.UTC(),
		Changes: in.Changes,
	})
	if err != nil {
		return nil, storeError(err, "changelog.create", "не удалось сохранить журнал изменений")
	}
	return created, nil
}

// ListLogs возвращает журналы от новых к старым. nil limit означает все записи.
func (s *ChangeLogService) ListLogs(ctx context.Context, limit *int) ([]models.DailyChangeLog, error) {
	if err := validation.ValidateChangeLogLimit(limit); err != nil {
		return nil, apperror.Validation(err)
	}

	n := 0
	if limit != nil {
		n = *limit
	}

	items, err := s.repo.List(ctx, n)
	if err != nil {
		return nil, storeError(err, "changelog.list", "не удалось получить журнал изменений")
	}
	return items, nil
}
