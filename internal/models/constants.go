package models

// Категории работ портфолио
const (
	CategoryAIProject       = "ai_project"
	CategoryDataEngineering = "data_engineering"
	CategoryVisualization   = "visualization"
	CategoryResearch        = "research"
	CategoryCollaboration   = "collaboration"
)

// Каналы взаимодействия с куратором
const (
	InteractionVoice   = "voice"
	InteractionText    = "text"
	InteractionGesture = "gesture"
)

// Типы совместных пространств
const (
	SpaceMeetingRoom      = "meeting_room"
	SpaceFeedbackSpace    = "feedback_space"
	SpacePresentationArea = "presentation_area"
)

// Типы изменений в дневном журнале
const (
	ChangeFeature     = "feature"
	ChangeBugfix      = "bugfix"
	ChangeImprovement = "improvement"
	ChangeContent     = "content"
)

// Уровни влияния изменения
const (
	ImpactLow    = "low"
	ImpactMedium = "medium"
	ImpactHigh   = "high"
)

// ValidArtifactCategories список валидных категорий работ
var ValidArtifactCategories = map[string]struct{}{
	CategoryAIProject:       {},
	CategoryDataEngineering: {},
	CategoryVisualization:   {},
	CategoryResearch:        {},
	CategoryCollaboration:   {},
}

// ValidInteractionTypes список валидных каналов взаимодействия
var ValidInteractionTypes = map[string]struct{}{
	InteractionVoice:   {},
	InteractionText:    {},
	InteractionGesture: {},
}

// ValidSpaceTypes список валидных типов пространств
var ValidSpaceTypes = map[string]struct{}{
	SpaceMeetingRoom:      {},
	SpaceFeedbackSpace:    {},
	SpacePresentationArea: {},
}

// ValidChangeTypes список валидных типов изменений
var ValidChangeTypes = map[string]struct{}{
	ChangeFeature:     {},
	ChangeBugfix:      {},
	ChangeImprovement: {},
	ChangeContent:     {},
}

// ValidImpactLevels список валидных уровней влияния
var ValidImpactLevels = map[string]struct{}{
	ImpactLow:    {},
	ImpactMedium: {},
	ImpactHigh:   {},
}

// Границы процента выполнения трекера
const (
	MinCompletionPercentage = 0
	MaxCompletionPercentage = 100
)
