package validation

import (
	"errors"
	"fmt"
	"math"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/ignatzorin/portfolio-backend/internal/models"
)

// Константы валидации
const (
	MaxArtifactTitleLength       = 200
	MaxArtifactDescriptionLength = 5000
	MaxTagLength                 = 50
	MaxTagsCount                 = 30
	MaxURLLength                 = 2048
	MaxSessionIDLength           = 128
	MaxUserInputLength           = 2000
	MaxProjectNameLength         = 200
	MaxPhaseLength               = 100
	MaxMilestonesCount           = 100
	MaxMilestoneNameLength       = 200
	MaxChangesCount              = 200
	MaxChangeDescriptionLength   = 1000
)

// MaxGeometryValue ограничивает координаты колонками NUMERIC(10,3).
const MaxGeometryValue = 1e7

// ValidateLength проверяет длину строки.
func ValidateLength(fieldName, value string, min, max int) error {
	length := utf8.RuneCountInString(value)
	if min > 0 && length < min {
		return fmt.Errorf("%s должен быть не менее %d символов", fieldName, min)
	}
	if max > 0 && length > max {
		return fmt.Errorf("%s должен быть не более %d символов", fieldName, max)
	}
	return nil
}

// ValidateNonEmpty проверяет, что строка не пустая.
func ValidateNonEmpty(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s не может быть пустым", fieldName)
	}
	return nil
}

// ValidateEnum проверяет принадлежность значения перечислению.
func ValidateEnum(fieldName, value string, allowed map[string]struct{}) error {
	if _, ok := allowed[value]; !ok {
		return fmt.Errorf("%s: недопустимое значение %q", fieldName, value)
	}
	return nil
}

// ValidateID проверяет идентификатор записи.
func ValidateID(fieldName string, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%s должен быть положительным числом", fieldName)
	}
	return nil
}

// ValidateCompletion проверяет процент выполнения.
func ValidateCompletion(value int) error {
	if value < models.MinCompletionPercentage || value > models.MaxCompletionPercentage {
		return fmt.Errorf("completion_percentage должен быть в диапазоне от %d до %d",
			models.MinCompletionPercentage, models.MaxCompletionPercentage)
	}
	return nil
}

// ValidateFinite отклоняет NaN и бесконечности.
func ValidateFinite(fieldName string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("%s должен быть конечным числом", fieldName)
	}
	return nil
}

// ValidateDecimalRange проверяет, что значение после округления до трёх знаков помещается в NUMERIC(10,3).
func ValidateDecimalRange(fieldName string, value float64) error {
	if err := ValidateFinite(fieldName, value); err != nil {
		return err
	}
	if math.Abs(math.Round(value*1000)/1000) >= MaxGeometryValue {
		return fmt.Errorf("%s должен быть по модулю меньше %.0f", fieldName, MaxGeometryValue)
	}
	return nil
}

// ValidateURL проверяет ссылку: абсолютный http(s) адрес или путь от корня.
func ValidateURL(fieldName string, link *string) error {
	if link == nil || *link == "" {
		return nil
	}

	linkStr := strings.TrimSpace(*link)
	if err := ValidateLength(fieldName, linkStr, 0, MaxURLLength); err != nil {
		return err
	}

	if strings.HasPrefix(linkStr, "/") && !strings.HasPrefix(linkStr, "//") {
		return nil
	}

	parsedURL, err := url.Parse(linkStr)
	if err != nil {
		return fmt.Errorf("%s: некорректный формат URL", fieldName)
	}
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("%s: ссылка должна начинаться с http:// или https://", fieldName)
	}
	if parsedURL.Host == "" {
		return fmt.Errorf("%s: ссылка должна содержать доменное имя", fieldName)
	}
	return nil
}

// ValidateTags проверяет список тегов. Порядок сохраняется, дубликаты допускаются.
func ValidateTags(tags []string) error {
	if len(tags) > MaxTagsCount {
		return fmt.Errorf("количество тегов не может превышать %d", MaxTagsCount)
	}
	for _, tag := range tags {
		if err := ValidateNonEmpty("тег", tag); err != nil {
			return err
		}
		if utf8.RuneCountInString(tag) > MaxTagLength {
			return fmt.Errorf("тег не может быть длиннее %d символов", MaxTagLength)
		}
	}
	return nil
}

// ValidateMilestones проверяет этапы трекера.
func ValidateMilestones(milestones []models.Milestone) error {
	if len(milestones) > MaxMilestonesCount {
		return fmt.Errorf("количество этапов не может превышать %d", MaxMilestonesCount)
	}
	for i, m := range milestones {
		if err := ValidateNonEmpty(fmt.Sprintf("milestones[%d].name", i), m.Name); err != nil {
			return err
		}
		if err := ValidateLength(fmt.Sprintf("milestones[%d].name", i), m.Name, 0, MaxMilestoneNameLength); err != nil {
			return err
		}
	}
	return nil
}

// ValidateChanges проверяет записи журнала изменений.
func ValidateChanges(changes []models.ChangeEntry) error {
	if len(changes) > MaxChangesCount {
		return fmt.Errorf("количество изменений не может превышать %d", MaxChangesCount)
	}
	for i, c := range changes {
		if err := ValidateEnum(fmt.Sprintf("changes[%d].type", i), c.Type, models.ValidChangeTypes); err != nil {
			return err
		}
		if err := ValidateEnum(fmt.Sprintf("changes[%d].impact", i), c.Impact, models.ValidImpactLevels); err != nil {
			return err
		}
		if err := ValidateLength(fmt.Sprintf("changes[%d].description", i), c.Description, 0, MaxChangeDescriptionLength); err != nil {
			return err
		}
	}
	return nil
}

// ValidateChangeLogLimit проверяет limit для списка журналов. nil означает без ограничения.
func ValidateChangeLogLimit(limit *int) error {
	if limit == nil {
		return nil
	}
	if *limit <= 0 {
		return errors.New("limit должен быть положительным числом")
	}
	return nil
}
