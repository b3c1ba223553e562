package service

import (
	"github.com/ignatzorin/portfolio-backend/internal/logger"
	"github.com/ignatzorin/portfolio-backend/internal/pkg/apperror"
)

// storeError логирует сбой хранилища и оборачивает его без раскрытия деталей клиенту.
func storeError(err error, op, message string) error {
	logger.Entry().WithError(err).WithField("op", op).Error("ошибка хранилища")
	return apperror.Database(err, message)
}
