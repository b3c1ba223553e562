package common

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Querier общий интерфейс для *sqlx.DB и *sqlx.Tx.
type Querier interface {
	sqlx.ExtContext
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

// GetOne выполняет запрос на одну строку; отсутствие строки превращается в notFoundErr.
func GetOne[T any](ctx context.Context, q Querier, notFoundErr error, query string, args ...interface{}) (*T, error) {
	var entity T
	if err := q.GetContext(ctx, &entity, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFoundErr
		}
		return nil, err
	}
	return &entity, nil
}

// SelectAll выполняет запрос на список. Пустой результат возвращается пустым срезом, не nil.
func SelectAll[T any](ctx context.Context, q Querier, query string, args ...interface{}) ([]T, error) {
	items := make([]T, 0)
	if err := q.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateBuilder собирает SET часть UPDATE только из переданных полей.
type UpdateBuilder struct {
	sets []string
	args []interface{}
}

// Set добавляет колонку в обновление.
func (b *UpdateBuilder) Set(column string, value interface{}) {
	b.args = append(b.args, value)
	b.sets = append(b.sets, fmt.Sprintf("%s = $%d", column, len(b.args)))
}

// Build возвращает запрос UPDATE ... WHERE id = $N RETURNING returning.
// updated_at обновляется всегда, даже если других полей нет.
func (b *UpdateBuilder) Build(table string, id int64, returning string) (string, []interface{}) {
	sets := append(append([]string{}, b.sets...), "updated_at = NOW()")
	args := append(append([]interface{}{}, b.args...), id)

	query := fmt.Sprintf("UPDATE %s SET ", table)
	for i, s := range sets {
		if i > 0 {
			query += ", "
		}
		query += s
	}
	query += fmt.Sprintf(" WHERE id = $%d RETURNING %s", len(args), returning)
	return query, args
}

// WithTransaction выполняет функцию внутри транзакции с правильной обработкой ошибок
func WithTransaction(ctx context.Context, db *sqlx.DB, fn func(*sqlx.Tx) error) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err = fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("tx error: %w, rollback error: %v", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}
