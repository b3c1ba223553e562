package common

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// JSONB хранит структурированный документ в JSONB колонке.
type JSONB[T any] struct {
	V T
}

// NewJSONB оборачивает значение для записи.
func NewJSONB[T any](v T) JSONB[T] {
	return JSONB[T]{V: v}
}

// Scan реализует sql.Scanner.
func (j *JSONB[T]) Scan(src interface{}) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		var zero T
		j.V = zero
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("jsonb: unsupported source type %T", src)
	}
	if err := json.Unmarshal(raw, &j.V); err != nil {
		return fmt.Errorf("jsonb: decode: %w", err)
	}
	return nil
}

// Value реализует driver.Valuer.
func (j JSONB[T]) Value() (driver.Value, error) {
	raw, err := json.Marshal(j.V)
	if err != nil {
		return nil, fmt.Errorf("jsonb: encode: %w", err)
	}
	return string(raw), nil
}
