package models

import (
	"time"

	"github.com/ignatzorin/portfolio-backend/internal/pkg/optional"
)

// PortfolioArtifact описывает работу, размещённую в 3D галерее.
type PortfolioArtifact struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	Tags         []string  `json:"tags"`
	ThumbnailURL *string   `json:"thumbnail_url"`
	ModelURL     *string   `json:"model_url"`
	DemoURL      *string   `json:"demo_url"`
	GithubURL    *string   `json:"github_url"`
	PositionX    float64   `json:"position_x"`
	PositionY    float64   `json:"position_y"`
	PositionZ    float64   `json:"position_z"`
	RotationX    float64   `json:"rotation_x"`
	RotationY    float64   `json:"rotation_y"`
	RotationZ    float64   `json:"rotation_z"`
	Scale        float64   `json:"scale"`
	IsFeatured   bool      `json:"is_featured"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CreatePortfolioArtifactInput входные данные для создания работы.
// Числа и флаг передаются указателями, чтобы отличить ноль от отсутствия поля.
type CreatePortfolioArtifactInput struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Category     string   `json:"category"`
	Tags         []string `json:"tags"`
	ThumbnailURL *string  `json:"thumbnail_url"`
	ModelURL     *string  `json:"model_url"`
	DemoURL      *string  `json:"demo_url"`
	GithubURL    *string  `json:"github_url"`
	PositionX    *float64 `json:"position_x"`
	PositionY    *float64 `json:"position_y"`
	PositionZ    *float64 `json:"position_z"`
	RotationX    *float64 `json:"rotation_x"`
	RotationY    *float64 `json:"rotation_y"`
	RotationZ    *float64 `json:"rotation_z"`
	Scale        *float64 `json:"scale"`
	IsFeatured   *bool    `json:"is_featured"`
}

// UpdatePortfolioArtifactInput частичное обновление работы.
type UpdatePortfolioArtifactInput struct {
	ID           int64                    `json:"id"`
	Title        optional.Field[string]   `json:"title"`
	Description  optional.Field[string]   `json:"description"`
	Category     optional.Field[string]   `json:"category"`
	Tags         optional.Field[[]string] `json:"tags"`
	ThumbnailURL optional.Field[*string]  `json:"thumbnail_url"`
	ModelURL     optional.Field[*string]  `json:"model_url"`
	DemoURL      optional.Field[*string]  `json:"demo_url"`
	GithubURL    optional.Field[*string]  `json:"github_url"`
	PositionX    optional.Field[float64]  `json:"position_x"`
	PositionY    optional.Field[float64]  `json:"position_y"`
	PositionZ    optional.Field[float64]  `json:"position_z"`
	RotationX    optional.Field[float64]  `json:"rotation_x"`
	RotationY    optional.Field[float64]  `json:"rotation_y"`
	RotationZ    optional.Field[float64]  `json:"rotation_z"`
	Scale        optional.Field[float64]  `json:"scale"`
	IsFeatured   optional.Field[bool]     `json:"is_featured"`
}
