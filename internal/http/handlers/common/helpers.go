package common

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/portfolio-backend/internal/dto"
	"github.com/ignatzorin/portfolio-backend/internal/pkg/apperror"
)

// BindJSON разбирает тело запроса. Ошибка разбора становится BAD_REQUEST.
func BindJSON(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		return apperror.Wrap(err, apperror.ErrCodeBadRequest, "некорректное тело запроса: "+err.Error())
	}
	return nil
}

// BindQuery разбирает параметры строки запроса.
func BindQuery(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindQuery(req); err != nil {
		return apperror.Wrap(err, apperror.ErrCodeBadRequest, "некорректные параметры запроса: "+err.Error())
	}
	return nil
}

// RespondData отправляет успешный ответ. nil в data означает «не найдено».
func RespondData(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, dto.Envelope{Success: true, Data: data})
}

// RespondResult отправляет результат операции, возвращающей указатель.
// Типизированный nil превращается в JSON null.
func RespondResult[T any](c *gin.Context, result *T, err error) {
	if err != nil {
		RespondError(c, err)
		return
	}
	if result == nil {
		RespondData(c, nil)
		return
	}
	RespondData(c, result)
}

// RespondList отправляет список или ошибку.
func RespondList[T any](c *gin.Context, items []T, err error) {
	if err != nil {
		RespondError(c, err)
		return
	}
	if items == nil {
		items = []T{}
	}
	RespondData(c, items)
}

// RespondError передаёт ошибку в ErrorHandler.
func RespondError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
