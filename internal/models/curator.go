package models

import "time"

// AiCuratorInteraction одна реплика посетителя и ответ куратора.
type AiCuratorInteraction struct {
	ID                int64     `db:"id" json:"id"`
	SessionID         string    `db:"session_id" json:"session_id"`
	UserInput         string    `db:"user_input" json:"user_input"`
	CuratorResponse   string    `db:"curator_response" json:"curator_response"`
	InteractionType   string    `db:"interaction_type" json:"interaction_type"`
	ContextArtifactID *int64    `db:"context_artifact_id" json:"context_artifact_id"`
	CreatedAt         time.Time `db:"created_at" json:"created_at"`
}

// CreateAiCuratorInteractionInput входные данные реплики посетителя.
type CreateAiCuratorInteractionInput struct {
	SessionID         string `json:"session_id"`
	UserInput         string `json:"user_input"`
	InteractionType   string `json:"interaction_type"`
	ContextArtifactID *int64 `json:"context_artifact_id"`
}
