package validation

import (
	"errors"
	"fmt"

	"github.com/ignatzorin/portfolio-backend/internal/models"
	"github.com/ignatzorin/portfolio-backend/internal/pkg/optional"
)

// ValidateCreateArtifact проверяет входные данные новой работы.
func ValidateCreateArtifact(in models.CreatePortfolioArtifactInput) error {
	if err := ValidateNonEmpty("title", in.Title); err != nil {
		return err
	}
	if err := ValidateLength("title", in.Title, 0, MaxArtifactTitleLength); err != nil {
		return err
	}
	if err := ValidateLength("description", in.Description, 0, MaxArtifactDescriptionLength); err != nil {
		return err
	}
	if err := ValidateEnum("category", in.Category, models.ValidArtifactCategories); err != nil {
		return err
	}
	if in.Tags == nil {
		return errors.New("tags обязателен")
	}
	if err := ValidateTags(in.Tags); err != nil {
		return err
	}
	if err := validateArtifactURLs(in.ThumbnailURL, in.ModelURL, in.DemoURL, in.GithubURL); err != nil {
		return err
	}

	geometry := []struct {
		name  string
		value *float64
	}{
		{"position_x", in.PositionX},
		{"position_y", in.PositionY},
		{"position_z", in.PositionZ},
		{"rotation_x", in.RotationX},
		{"rotation_y", in.RotationY},
		{"rotation_z", in.RotationZ},
		{"scale", in.Scale},
	}
	for _, g := range geometry {
		if g.value == nil {
			return fmt.Errorf("%s обязателен", g.name)
		}
		if err := ValidateDecimalRange(g.name, *g.value); err != nil {
			return err
		}
	}

	if in.IsFeatured == nil {
		return errors.New("is_featured обязателен")
	}
	return nil
}

// ValidateUpdateArtifact проверяет частичное обновление работы.
// Поля без null допускают только значение, nullable ссылки допускают null.
func ValidateUpdateArtifact(in models.UpdatePortfolioArtifactInput) error {
	if err := ValidateID("id", in.ID); err != nil {
		return err
	}

	if err := rejectNull("title", in.Title.Set && in.Title.Null); err != nil {
		return err
	}
	if v, ok := in.Title.Get(); ok {
		if err := ValidateNonEmpty("title", v); err != nil {
			return err
		}
		if err := ValidateLength("title", v, 0, MaxArtifactTitleLength); err != nil {
			return err
		}
	}

	if err := rejectNull("description", in.Description.Set && in.Description.Null); err != nil {
		return err
	}
	if v, ok := in.Description.Get(); ok {
		if err := ValidateLength("description", v, 0, MaxArtifactDescriptionLength); err != nil {
			return err
		}
	}

	if err := rejectNull("category", in.Category.Set && in.Category.Null); err != nil {
		return err
	}
	if v, ok := in.Category.Get(); ok {
		if err := ValidateEnum("category", v, models.ValidArtifactCategories); err != nil {
			return err
		}
	}

	if err := rejectNull("tags", in.Tags.Set && in.Tags.Null); err != nil {
		return err
	}
	if v, ok := in.Tags.Get(); ok {
		if err := ValidateTags(v); err != nil {
			return err
		}
	}

	if err := validateArtifactURLs(in.ThumbnailURL.Value, in.ModelURL.Value, in.DemoURL.Value, in.GithubURL.Value); err != nil {
		return err
	}

	geometry := []struct {
		name  string
		field optional.Field[float64]
	}{
		{"position_x", in.PositionX},
		{"position_y", in.PositionY},
		{"position_z", in.PositionZ},
		{"rotation_x", in.RotationX},
		{"rotation_y", in.RotationY},
		{"rotation_z", in.RotationZ},
		{"scale", in.Scale},
	}
	for _, g := range geometry {
		if err := rejectNull(g.name, g.field.Set && g.field.Null); err != nil {
			return err
		}
		if v, ok := g.field.Get(); ok {
			if err := ValidateDecimalRange(g.name, v); err != nil {
				return err
			}
		}
	}

	return rejectNull("is_featured", in.IsFeatured.Set && in.IsFeatured.Null)
}

func validateArtifactURLs(thumbnail, model, demo, github *string) error {
	for _, u := range []struct {
		name  string
		value *string
	}{
		{"thumbnail_url", thumbnail},
		{"model_url", model},
		{"demo_url", demo},
		{"github_url", github},
	} {
		if err := ValidateURL(u.name, u.value); err != nil {
			return err
		}
	}
	return nil
}

func rejectNull(fieldName string, isNull bool) error {
	if isNull {
		return fmt.Errorf("%s не может быть null", fieldName)
	}
	return nil
}
