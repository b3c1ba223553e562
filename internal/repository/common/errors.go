package common

import (
	"errors"

	"github.com/lib/pq"
)

// uniqueViolation код ошибки PostgreSQL unique_violation.
const uniqueViolation pq.ErrorCode = "23505"

// IsUniqueViolation сообщает, что запрос нарушил уникальный индекс.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
