package validation

import (
	"github.com/ignatzorin/portfolio-backend/internal/models"
)

// ValidateSessionID проверяет идентификатор сессии куратора.
func ValidateSessionID(sessionID string) error {
	if err := ValidateNonEmpty("session_id", sessionID); err != nil {
		return err
	}
	return ValidateLength("session_id", sessionID, 0, MaxSessionIDLength)
}

// ValidateCreateInteraction проверяет реплику посетителя.
func ValidateCreateInteraction(in models.CreateAiCuratorInteractionInput) error {
	if err := ValidateSessionID(in.SessionID); err != nil {
		return err
	}
	if err := ValidateLength("user_input", in.UserInput, 0, MaxUserInputLength); err != nil {
		return err
	}
	if err := ValidateEnum("interaction_type", in.InteractionType, models.ValidInteractionTypes); err != nil {
		return err
	}
	if in.ContextArtifactID != nil {
		return ValidateID("context_artifact_id", *in.ContextArtifactID)
	}
	return nil
}
