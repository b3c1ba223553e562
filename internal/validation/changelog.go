package validation

import (
	"errors"

	"github.com/ignatzorin/portfolio-backend/internal/models"
)

// ValidateCreateChangeLog проверяет журнал за день.
func ValidateCreateChangeLog(in models.CreateDailyChangeLogInput) error {
	if in.Date == nil || in.Date.IsZero() {
		return errors.New("date обязателен")
	}
	if in.Changes == nil {
		return errors.New("changes обязателен")
	}
	return ValidateChanges(in.Changes)
}
