package models

import (
	"time"

	"github.com/ignatzorin/portfolio-backend/internal/pkg/optional"
)

// Milestone этап проекта внутри трекера.
type Milestone struct {
	Name      string     `json:"name"`
	Completed bool       `json:"completed"`
	DueDate   *time.Time `json:"due_date"`
}

// ProgressTracker отслеживает ход работы над проектом.
type ProgressTracker struct {
	ID                   int64       `json:"id"`
	ProjectName          string      `json:"project_name"`
	CurrentPhase         string      `json:"current_phase"`
	CompletionPercentage int         `json:"completion_percentage"`
	Milestones           []Milestone `json:"milestones"`
	CreatedAt            time.Time   `json:"created_at"`
	UpdatedAt            time.Time   `json:"updated_at"`
}

// CreateProgressTrackerInput входные данные для создания трекера.
type CreateProgressTrackerInput struct {
	ProjectName          string      `json:"project_name"`
	CurrentPhase         string      `json:"current_phase"`
	CompletionPercentage *int        `json:"completion_percentage"`
	Milestones           []Milestone `json:"milestones"`
}

// UpdateProgressTrackerInput частичное обновление трекера.
// Этапы при передаче заменяются целиком.
type UpdateProgressTrackerInput struct {
	ID                   int64                       `json:"id"`
	ProjectName          optional.Field[string]      `json:"project_name"`
	CurrentPhase         optional.Field[string]      `json:"current_phase"`
	CompletionPercentage optional.Field[int]         `json:"completion_percentage"`
	Milestones           optional.Field[[]Milestone] `json:"milestones"`
}
