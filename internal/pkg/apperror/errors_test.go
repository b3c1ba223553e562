package apperror

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap_UnwrapsCause(t *testing.T) {
	err := Database(sql.ErrConnDone, "не удалось сохранить работу")

	assert.True(t, errors.Is(err, sql.ErrConnDone))
	assert.Equal(t, http.StatusInternalServerError, err.HTTPStatus)
	assert.Contains(t, err.Error(), "DATABASE_ERROR")
}

func TestValidation_StatusAndPredicates(t *testing.T) {
	err := Validation(errors.New("категория невалидна"))

	assert.Equal(t, http.StatusBadRequest, err.HTTPStatus)
	assert.Equal(t, "категория невалидна", err.Message)
	assert.True(t, IsValidation(err))
	assert.False(t, IsNotFound(err))
	assert.False(t, IsInternal(err))
}

func TestIsInternal(t *testing.T) {
	assert.True(t, IsInternal(errors.New("plain")))
	assert.True(t, IsInternal(fmt.Errorf("wrapped: %w", Database(errors.New("x"), "y"))))
	assert.False(t, IsInternal(New(ErrCodeNotFound, "нет")))
	assert.False(t, IsInternal(New(ErrCodeTooLarge, "большой")))
}
