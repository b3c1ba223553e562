package models

// MediaUpload результат загрузки файла работы.
type MediaUpload struct {
	ArtifactID int64              `json:"artifact_id"`
	Slot       string             `json:"slot"`
	URL        string             `json:"url"`
	Size       int64              `json:"size"`
	MIME       string             `json:"mime"`
	Artifact   *PortfolioArtifact `json:"artifact"`
}
