package models

import "time"

// CollaborativeSpace справочник пространств для встреч и обратной связи.
type CollaborativeSpace struct {
	ID              int64     `db:"id" json:"id"`
	Name            string    `db:"name" json:"name"`
	Description     *string   `db:"description" json:"description"`
	SpaceType       string    `db:"space_type" json:"space_type"`
	MaxParticipants int       `db:"max_participants" json:"max_participants"`
	IsActive        bool      `db:"is_active" json:"is_active"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}
