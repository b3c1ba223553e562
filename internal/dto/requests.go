package dto

// InteractionsQuery параметры getAiCuratorInteractions.
type InteractionsQuery struct {
	SessionID string `form:"session_id"`
}

// ChangeLogsQuery параметры getDailyChangeLogs.
type ChangeLogsQuery struct {
	Limit *int `form:"limit"`
}

// ActivateThemeRequest тело activateDesignTheme.
type ActivateThemeRequest struct {
	ID int64 `json:"id"`
}

// UploadMediaForm поля формы uploadArtifactMedia, кроме файла.
type UploadMediaForm struct {
	ArtifactID int64  `form:"artifact_id"`
	Slot       string `form:"slot"`
}
