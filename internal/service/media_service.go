package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/ignatzorin/portfolio-backend/internal/logger"
	"github.com/ignatzorin/portfolio-backend/internal/models"
	"github.com/ignatzorin/portfolio-backend/internal/pkg/apperror"
	"github.com/ignatzorin/portfolio-backend/internal/pkg/optional"
	"github.com/ignatzorin/portfolio-backend/internal/storage"
)

// MediaStore файловое хранилище медиа.
type MediaStore interface {
	Save(ctx context.Context, artifactID int64, slot, ext string, r io.Reader) (string, int64, error)
	Delete(ctx context.Context, relativePath string) error
}

// sniffLen сколько байт читается для определения типа файла.
const sniffLen = 512

// MediaService загружает превью и 3D модели работ.
type MediaService struct {
	artifacts *ArtifactService
	store     MediaStore
	publicURL string
}

// NewMediaService создаёт сервис. publicURL префикс, под которым раздаются файлы, например /media.
func NewMediaService(artifacts *ArtifactService, store MediaStore, publicURL string) *MediaService {
	return &MediaService{artifacts: artifacts, store: store, publicURL: publicURL}
}

// UploadArtifactMedia сохраняет файл и записывает ссылку в работу.
// Если работы нет, возвращает nil без ошибки.
func (s *MediaService) UploadArtifactMedia(ctx context.Context, artifactID int64, slot string, r io.Reader) (*models.MediaUpload, error) {
	if artifactID <= 0 {
		return nil, apperror.New(apperror.ErrCodeValidation, "artifact_id должен быть положительным числом")
	}
	if !storage.ValidSlot(slot) {
		return nil, apperror.New(apperror.ErrCodeValidation, fmt.Sprintf("неизвестный слот %q", slot))
	}

	exists, err := s.artifacts.ArtifactExists(ctx, artifactID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, nil
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, apperror.Wrap(err, apperror.ErrCodeBadRequest, "не удалось прочитать файл")
	}
	head = head[:n]
	if n == 0 {
		return nil, apperror.New(apperror.ErrCodeValidation, "файл не может быть пустым")
	}

	kind, err := storage.Detect(slot, head)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeValidation, err.Error())
	}

	relative, size, err := s.store.Save(ctx, artifactID, slot, kind.Extension, io.MultiReader(bytes.NewReader(head), r))
	if err != nil {
		if errors.Is(err, storage.ErrTooLarge) {
			return nil, apperror.Wrap(err, apperror.ErrCodeTooLarge, "файл превышает допустимый размер")
		}
		logger.Entry().WithError(err).WithField("artifact_id", artifactID).Error("media: не удалось сохранить файл")
		return nil, apperror.Wrap(err, apperror.ErrCodeInternal, "не удалось сохранить файл")
	}

	link := s.publicURL + "/" + relative
	update := models.UpdatePortfolioArtifactInput{ID: artifactID}
	if slot == storage.SlotModel {
		update.ModelURL = optional.Of(&link)
	} else {
		update.ThumbnailURL = optional.Of(&link)
	}

	artifact, err := s.artifacts.UpdateArtifact(ctx, update)
	if err != nil || artifact == nil {
		if delErr := s.store.Delete(ctx, relative); delErr != nil {
			logger.Entry().WithError(delErr).WithField("path", relative).Warn("media: не удалось удалить файл")
		}
		return nil, err
	}

	logger.Entry().WithFields(map[string]interface{}{
		"artifact_id": artifactID,
		"slot":        slot,
		"mime":        kind.MIME,
		"size":        size,
	}).Info("media: файл загружен")

	return &models.MediaUpload{
		ArtifactID: artifactID,
		Slot:       slot,
		URL:        link,
		Size:       size,
		MIME:       kind.MIME,
		Artifact:   artifact,
	}, nil
}
