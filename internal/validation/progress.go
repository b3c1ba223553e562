package validation

import (
	"errors"

	"github.com/ignatzorin/portfolio-backend/internal/models"
)

// ValidateCreateProgress проверяет новый трекер.
func ValidateCreateProgress(in models.CreateProgressTrackerInput) error {
	if err := ValidateNonEmpty("project_name", in.ProjectName); err != nil {
		return err
	}
	if err := ValidateLength("project_name", in.ProjectName, 0, MaxProjectNameLength); err != nil {
		return err
	}
	if err := ValidateLength("current_phase", in.CurrentPhase, 0, MaxPhaseLength); err != nil {
		return err
	}
	if in.CompletionPercentage == nil {
		return errors.New("completion_percentage обязателен")
	}
	if err := ValidateCompletion(*in.CompletionPercentage); err != nil {
		return err
	}
	if in.Milestones == nil {
		return errors.New("milestones обязателен")
	}
	return ValidateMilestones(in.Milestones)
}

// ValidateUpdateProgress проверяет частичное обновление трекера.
func ValidateUpdateProgress(in models.UpdateProgressTrackerInput) error {
	if err := ValidateID("id", in.ID); err != nil {
		return err
	}

	if err := rejectNull("project_name", in.ProjectName.Set && in.ProjectName.Null); err != nil {
		return err
	}
	if v, ok := in.ProjectName.Get(); ok {
		if err := ValidateNonEmpty("project_name", v); err != nil {
			return err
		}
		if err := ValidateLength("project_name", v, 0, MaxProjectNameLength); err != nil {
			return err
		}
	}

	if err := rejectNull("current_phase", in.CurrentPhase.Set && in.CurrentPhase.Null); err != nil {
		return err
	}
	if v, ok := in.CurrentPhase.Get(); ok {
		if err := ValidateLength("current_phase", v, 0, MaxPhaseLength); err != nil {
			return err
		}
	}

	if err := rejectNull("completion_percentage", in.CompletionPercentage.Set && in.CompletionPercentage.Null); err != nil {
		return err
	}
	if v, ok := in.CompletionPercentage.Get(); ok {
		if err := ValidateCompletion(v); err != nil {
			return err
		}
	}

	if err := rejectNull("milestones", in.Milestones.Set && in.Milestones.Null); err != nil {
		return err
	}
	if v, ok := in.Milestones.Get(); ok {
		return ValidateMilestones(v)
	}
	return nil
}
