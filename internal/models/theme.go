package models

import "time"

// ThemeColors палитра темы.
type ThemeColors struct {
	Primary       string `json:"primary" yaml:"primary"`
	Secondary     string `json:"secondary" yaml:"secondary"`
	Accent        string `json:"accent" yaml:"accent"`
	Background    string `json:"background" yaml:"background"`
	Surface       string `json:"surface" yaml:"surface"`
	Text          string `json:"text" yaml:"text"`
	TextSecondary string `json:"text_secondary" yaml:"text_secondary"`
}

// ThemeTypography шрифты и размеры.
type ThemeTypography struct {
	FontFamilyPrimary   string             `json:"font_family_primary" yaml:"font_family_primary"`
	FontFamilySecondary string             `json:"font_family_secondary" yaml:"font_family_secondary"`
	FontSizes           map[string]float64 `json:"font_sizes" yaml:"font_sizes"`
}

// ThemeAnimations параметры анимаций.
type ThemeAnimations struct {
	TransitionDuration float64 `json:"transition_duration" yaml:"transition_duration"`
	EasingFunction     string  `json:"easing_function" yaml:"easing_function"`
}

// DesignSystemTheme набор настроек оформления.
type DesignSystemTheme struct {
	ID         int64              `json:"id"`
	Name       string             `json:"name"`
	Colors     ThemeColors        `json:"colors"`
	Typography ThemeTypography    `json:"typography"`
	Spacing    map[string]float64 `json:"spacing"`
	Animations ThemeAnimations    `json:"animations"`
	IsActive   bool               `json:"is_active"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
}
