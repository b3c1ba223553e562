package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ignatzorin/portfolio-backend/internal/dto"
	"github.com/ignatzorin/portfolio-backend/internal/logger"
	"github.com/ignatzorin/portfolio-backend/internal/pkg/apperror"
)

const internalMessage = "внутренняя ошибка сервера"

// ErrorHandler обрабатывает ошибки централизованно.
// Внутренние ошибки маскируются, ошибки приложения отдаются в общем конверте.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() || len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last()
		status, body := errorResponse(err.Err)

		fields := logrus.Fields{
			"error":      err.Error(),
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"status":     status,
			"request_id": c.GetString(ContextRequestIDKey),
		}
		if status >= http.StatusInternalServerError {
			logger.Entry().WithFields(fields).Error("Request error")
		} else {
			logger.Entry().WithFields(fields).Warn("Request rejected")
		}

		c.JSON(status, dto.Envelope{Success: false, Error: body})
	}
}

func errorResponse(err error) (int, *dto.ErrorBody) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		message := appErr.Message
		if apperror.IsInternal(appErr) {
			message = internalMessage
		}
		return appErr.HTTPStatus, &dto.ErrorBody{Code: string(appErr.Code), Message: message}
	}

	return http.StatusInternalServerError, &dto.ErrorBody{
		Code:    string(apperror.ErrCodeInternal),
		Message: internalMessage,
	}
}
