package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/portfolio-backend/internal/dto"
	"github.com/ignatzorin/portfolio-backend/internal/http/handlers/common"
	"github.com/ignatzorin/portfolio-backend/internal/pkg/apperror"
	"github.com/ignatzorin/portfolio-backend/internal/service"
)

// multipartOverhead запас на заголовки multipart сверх размера файла.
const multipartOverhead = 1 << 20

// MediaHandler принимает загрузку превью и 3D моделей.
type MediaHandler struct {
	service  *service.MediaService
	maxBytes int64
}

// NewMediaHandler создаёт хэндлер. maxBytes предел размера файла.
func NewMediaHandler(service *service.MediaService, maxBytes int64) *MediaHandler {
	return &MediaHandler{service: service, maxBytes: maxBytes}
}

// Upload обрабатывает POST /api/rpc/uploadArtifactMedia (multipart: artifact_id, slot, file).
func (h *MediaHandler) Upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes+multipartOverhead)

	var form dto.UploadMediaForm
	if err := c.ShouldBind(&form); err != nil {
		common.RespondError(c, bodyError(err, "некорректные поля формы"))
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		common.RespondError(c, bodyError(err, "поле file обязательно"))
		return
	}
	if file.Size > h.maxBytes {
		common.RespondError(c, apperror.New(apperror.ErrCodeTooLarge, "файл превышает допустимый размер"))
		return
	}

	src, err := file.Open()
	if err != nil {
		common.RespondError(c, apperror.Wrap(err, apperror.ErrCodeBadRequest, "не удалось открыть файл"))
		return
	}
	defer src.Close()

	upload, err := h.service.UploadArtifactMedia(c.Request.Context(), form.ArtifactID, form.Slot, src)
	common.RespondResult(c, upload, err)
}

func bodyError(err error, message string) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return apperror.Wrap(err, apperror.ErrCodeTooLarge, "запрос превышает допустимый размер")
	}
	return apperror.Wrap(err, apperror.ErrCodeBadRequest, message)
}
