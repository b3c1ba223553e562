package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/ignatzorin/portfolio-backend/internal/models"
	"github.com/ignatzorin/portfolio-backend/internal/repository/common"
)

// ErrThemeNotFound возвращается, когда тема не найдена или активной темы нет.
var ErrThemeNotFound = errors.New("design theme not found")

// ErrThemeConflict возвращается, когда параллельная активация заняла индекс активной темы.
var ErrThemeConflict = errors.New("design theme activation conflict")

const themeColumns = `id, name, colors, typography, spacing, animations, is_active, created_at, updated_at`

type themeRow struct {
	ID         int64                                `db:"id"`
	Name       string                               `db:"name"`
	Colors     common.JSONB[models.ThemeColors]     `db:"colors"`
	Typography common.JSONB[models.ThemeTypography] `db:"typography"`
	Spacing    common.JSONB[map[string]float64]     `db:"spacing"`
	Animations common.JSONB[models.ThemeAnimations] `db:"animations"`
	IsActive   bool                                 `db:"is_active"`
	CreatedAt  time.Time                            `db:"created_at"`
	UpdatedAt  time.Time                            `db:"updated_at"`
}

func (r themeRow) toModel() models.DesignSystemTheme {
	return models.DesignSystemTheme{
		ID:         r.ID,
		Name:       r.Name,
		Colors:     r.Colors.V,
		Typography: r.Typography.V,
		Spacing:    r.Spacing.V,
		Animations: r.Animations.V,
		IsActive:   r.IsActive,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

// ThemeRepository отвечает за таблицу design_system_themes.
type ThemeRepository struct {
	db *sqlx.DB
}

// NewThemeRepository создаёт экземпляр репозитория.
func NewThemeRepository(db *sqlx.DB) *ThemeRepository {
	return &ThemeRepository{db: db}
}

// Create сохраняет тему. Активная тема создаётся в транзакции вместе со снятием флага с прежней.
func (r *ThemeRepository) Create(ctx context.Context, theme *models.DesignSystemTheme) (*models.DesignSystemTheme, error) {
	var row themeRow
	err := common.WithTransaction(ctx, r.db, func(tx *sqlx.Tx) error {
		if theme.IsActive {
			if err := deactivateThemes(ctx, tx, 0); err != nil {
				return err
			}
		}
		return tx.GetContext(ctx, &row, `
			INSERT INTO design_system_themes (name, colors, typography, spacing, animations, is_active)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING `+themeColumns,
			theme.Name,
			common.NewJSONB(theme.Colors),
			common.NewJSONB(theme.Typography),
			common.NewJSONB(theme.Spacing),
			common.NewJSONB(theme.Animations),
			theme.IsActive,
		)
	})
	if err != nil {
		if common.IsUniqueViolation(err) {
			return nil, ErrThemeConflict
		}
		return nil, fmt.Errorf("theme repository: create %w", err)
	}

	created := row.toModel()
	return &created, nil
}

// GetActive возвращает активную тему. При нескольких активных берётся последняя обновлённая.
func (r *ThemeRepository) GetActive(ctx context.Context) (*models.DesignSystemTheme, error) {
	row, err := common.GetOne[themeRow](ctx, r.db, ErrThemeNotFound, `
		SELECT `+themeColumns+`
		FROM design_system_themes
		WHERE is_active
		ORDER BY updated_at DESC, id DESC
		LIMIT 1
	`)
	if err != nil {
		if errors.Is(err, ErrThemeNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("theme repository: get active %w", err)
	}

	theme := row.toModel()
	return &theme, nil
}

// Activate делает тему активной и снимает флаг с остальных в одной транзакции.
func (r *ThemeRepository) Activate(ctx context.Context, id int64) (*models.DesignSystemTheme, error) {
	var row themeRow
	err := common.WithTransaction(ctx, r.db, func(tx *sqlx.Tx) error {
		if err := deactivateThemes(ctx, tx, id); err != nil {
			return err
		}
		found, err := common.GetOne[themeRow](ctx, tx, ErrThemeNotFound, `
			UPDATE design_system_themes
			SET is_active = TRUE, updated_at = NOW()
			WHERE id = $1
			RETURNING `+themeColumns, id)
		if err != nil {
			return err
		}
		row = *found
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrThemeNotFound) {
			return nil, ErrThemeNotFound
		}
		if common.IsUniqueViolation(err) {
			return nil, ErrThemeConflict
		}
		return nil, fmt.Errorf("theme repository: activate %w", err)
	}

	theme := row.toModel()
	return &theme, nil
}

// deactivateThemes снимает флаг со всех активных тем, кроме keepID.
func deactivateThemes(ctx context.Context, tx *sqlx.Tx, keepID int64) error {
	if _, err := tx.ExecContext(ctx, `
		UPDATE design_system_themes
		SET is_active = FALSE, updated_at = NOW()
		WHERE is_active AND id <> $1
	`, keepID); err != nil {
		return fmt.Errorf("deactivate themes: %w", err)
	}
	return nil
}
