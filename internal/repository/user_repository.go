package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/ignatzorin/portfolio-backend/internal/models"
	"github.com/ignatzorin/portfolio-backend/internal/repository/common"
)

// ErrUserNotFound возвращается, когда профиль ещё не создан.
var ErrUserNotFound = errors.New("user not found")

const userColumns = `id, name, title, bio, avatar_url, created_at, updated_at`

// UserRepository отвечает за работу с таблицей users.
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository создаёт экземпляр репозитория.
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create создаёт профиль владельца.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (name, title, bio, avatar_url)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	if err := r.db.QueryRowxContext(
		ctx, query,
		user.Name, user.Title, user.Bio, user.AvatarURL,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt); err != nil {
		return fmt.Errorf("user repository: create %w", err)
	}

	return nil
}

// GetFirst возвращает первую запись профиля.
func (r *UserRepository) GetFirst(ctx context.Context) (*models.User, error) {
	user, err := common.GetOne[models.User](ctx, r.db, ErrUserNotFound,
		`SELECT `+userColumns+` FROM users ORDER BY id ASC LIMIT 1`)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("user repository: get first %w", err)
	}
	return user, nil
}
