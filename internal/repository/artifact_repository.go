package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/ignatzorin/portfolio-backend/internal/models"
	"github.com/ignatzorin/portfolio-backend/internal/pkg/optional"
	"github.com/ignatzorin/portfolio-backend/internal/repository/common"
)

// ErrArtifactNotFound возвращается, когда работа не найдена.
var ErrArtifactNotFound = errors.New("portfolio artifact not found")

const artifactColumns = `
	id, title, description, category, tags, thumbnail_url, model_url, demo_url, github_url,
	position_x, position_y, position_z, rotation_x, rotation_y, rotation_z, scale,
	is_featured, created_at, updated_at`

// artifactRow строка таблицы portfolio_artifacts в формате хранилища.
type artifactRow struct {
	ID           int64                  `db:"id"`
	Title        string                 `db:"title"`
	Description  string                 `db:"description"`
	Category     string                 `db:"category"`
	Tags         common.JSONB[[]string] `db:"tags"`
	ThumbnailURL sql.NullString         `db:"thumbnail_url"`
	ModelURL     sql.NullString         `db:"model_url"`
	DemoURL      sql.NullString         `db:"demo_url"`
	GithubURL    sql.NullString         `db:"github_url"`
	PositionX    common.Decimal         `db:"position_x"`
	PositionY    common.Decimal         `db:"position_y"`
	PositionZ    common.Decimal         `db:"position_z"`
	RotationX    common.Decimal         `db:"rotation_x"`
	RotationY    common.Decimal         `db:"rotation_y"`
	RotationZ    common.Decimal         `db:"rotation_z"`
	Scale        common.Decimal         `db:"scale"`
	IsFeatured   bool                   `db:"is_featured"`
	CreatedAt    time.Time              `db:"created_at"`
	UpdatedAt    time.Time              `db:"updated_at"`
}

func (r artifactRow) toModel() models.PortfolioArtifact {
	tags := r.Tags.V
	if tags == nil {
		tags = []string{}
	}
	return models.PortfolioArtifact{
		ID:           r.ID,
		Title:        r.Title,
		Description:  r.Description,
		Category:     r.Category,
		Tags:         tags,
		ThumbnailURL: nullStringPtr(r.ThumbnailURL),
		ModelURL:     nullStringPtr(r.ModelURL),
		DemoURL:      nullStringPtr(r.DemoURL),
		GithubURL:    nullStringPtr(r.GithubURL),
		PositionX:    r.PositionX.Float64(),
		PositionY:    r.PositionY.Float64(),
		PositionZ:    r.PositionZ.Float64(),
		RotationX:    r.RotationX.Float64(),
		RotationY:    r.RotationY.Float64(),
		RotationZ:    r.RotationZ.Float64(),
		Scale:        r.Scale.Float64(),
		IsFeatured:   r.IsFeatured,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func nullStringPtr(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

func rowsToArtifacts(rows []artifactRow) []models.PortfolioArtifact {
	items := make([]models.PortfolioArtifact, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toModel())
	}
	return items
}

func tagsOrEmpty(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}

// ArtifactRepository отвечает за работу с таблицей portfolio_artifacts.
type ArtifactRepository struct {
	db *sqlx.DB
}

// NewArtifactRepository создаёт экземпляр репозитория.
func NewArtifactRepository(db *sqlx.DB) *ArtifactRepository {
	return &ArtifactRepository{db: db}
}

// Create сохраняет работу и возвращает её вместе с id и временными метками.
func (r *ArtifactRepository) Create(ctx context.Context, artifact *models.PortfolioArtifact) (*models.PortfolioArtifact, error) {
	query := `
		INSERT INTO portfolio_artifacts (
			title, description, category, tags, thumbnail_url, model_url, demo_url, github_url,
			position_x, position_y, position_z, rotation_x, rotation_y, rotation_z, scale, is_featured
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING ` + artifactColumns

	var row artifactRow
	if err := r.db.GetContext(ctx, &row, query,
		artifact.Title,
		artifact.Description,
		artifact.Category,
		common.NewJSONB(tagsOrEmpty(artifact.Tags)),
		artifact.ThumbnailURL,
		artifact.ModelURL,
		artifact.DemoURL,
		artifact.GithubURL,
		common.Decimal(artifact.PositionX),
		common.Decimal(artifact.PositionY),
		common.Decimal(artifact.PositionZ),
		common.Decimal(artifact.RotationX),
		common.Decimal(artifact.RotationY),
		common.Decimal(artifact.RotationZ),
		common.Decimal(artifact.Scale),
		artifact.IsFeatured,
	); err != nil {
		return nil, fmt.Errorf("artifact repository: create %w", err)
	}

	created := row.toModel()
	return &created, nil
}

// List возвращает все работы.
func (r *ArtifactRepository) List(ctx context.Context) ([]models.PortfolioArtifact, error) {
	rows, err := common.SelectAll[artifactRow](ctx, r.db,
		`SELECT `+artifactColumns+` FROM portfolio_artifacts ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("artifact repository: list %w", err)
	}
	return rowsToArtifacts(rows), nil
}

// ListFeatured возвращает только избранные работы.
func (r *ArtifactRepository) ListFeatured(ctx context.Context) ([]models.PortfolioArtifact, error) {
	rows, err := common.SelectAll[artifactRow](ctx, r.db,
		`SELECT `+artifactColumns+` FROM portfolio_artifacts WHERE is_featured ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("artifact repository: list featured %w", err)
	}
	return rowsToArtifacts(rows), nil
}

// Exists проверяет наличие работы.
func (r *ArtifactRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	if err := r.db.GetContext(ctx, &exists,
		`SELECT EXISTS(SELECT 1 FROM portfolio_artifacts WHERE id = $1)`, id); err != nil {
		return false, fmt.Errorf("artifact repository: exists %w", err)
	}
	return exists, nil
}

// Update меняет только переданные поля. updated_at обновляется всегда.
func (r *ArtifactRepository) Update(ctx context.Context, input models.UpdatePortfolioArtifactInput) (*models.PortfolioArtifact, error) {
	var b common.UpdateBuilder

	if v, ok := input.Title.Get(); ok {
		b.Set("title", v)
	}
	if v, ok := input.Description.Get(); ok {
		b.Set("description", v)
	}
	if v, ok := input.Category.Get(); ok {
		b.Set("category", v)
	}
	if v, ok := input.Tags.Get(); ok {
		b.Set("tags", common.NewJSONB(tagsOrEmpty(v)))
	}
	if v, ok := input.ThumbnailURL.Get(); ok {
		b.Set("thumbnail_url", v)
	}
	if v, ok := input.ModelURL.Get(); ok {
		b.Set("model_url", v)
	}
	if v, ok := input.DemoURL.Get(); ok {
		b.Set("demo_url", v)
	}
	if v, ok := input.GithubURL.Get(); ok {
		b.Set("github_url", v)
	}
	geometry := []struct {
		column string
		field  optional.Field[float64]
	}{
		{"position_x", input.PositionX},
		{"position_y", input.PositionY},
		{"position_z", input.PositionZ},
		{"rotation_x", input.RotationX},
		{"rotation_y", input.RotationY},
		{"rotation_z", input.RotationZ},
		{"scale", input.Scale},
	}
	for _, g := range geometry {
		if v, ok := g.field.Get(); ok {
			b.Set(g.column, common.Decimal(v))
		}
	}
	if v, ok := input.IsFeatured.Get(); ok {
		b.Set("is_featured", v)
	}

	query, args := b.Build("portfolio_artifacts", input.ID, artifactColumns)

	row, err := common.GetOne[artifactRow](ctx, r.db, ErrArtifactNotFound, query, args...)
	if err != nil {
		if errors.Is(err, ErrArtifactNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("artifact repository: update %w", err)
	}

	updated := row.toModel()
	return &updated, nil
}
