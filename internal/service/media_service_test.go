package service

import (
	"bytes"
	"context"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/portfolio-backend/internal/models"
	"github.com/ignatzorin/portfolio-backend/internal/pkg/apperror"
	"github.com/ignatzorin/portfolio-backend/internal/storage"
)

func glbFile(size int) []byte {
	buf := make([]byte, size)
	copy(buf, "glTF")
	binary.LittleEndian.PutUint32(buf[4:], 2)
	binary.LittleEndian.PutUint32(buf[8:], uint32(size))
	return buf
}

func TestMediaService_UploadModel(t *testing.T) {
	repo := new(mockArtifactRepo)
	store := new(mockMediaStore)
	svc := NewMediaService(NewArtifactService(repo), store, "/media")

	data := glbFile(2048)
	repo.On("Exists", mock.Anything, int64(3)).Return(true, nil)
	store.On("Save", mock.Anything, int64(3), storage.SlotModel, "glb").Return("3/model_1.glb", nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(in models.UpdatePortfolioArtifactInput) bool {
		return in.ID == 3 && in.ModelURL.Set && *in.ModelURL.Value == "/media/3/model_1.glb" && !in.ThumbnailURL.Set
	})).Return(&models.PortfolioArtifact{ID: 3}, nil)

	upload, err := svc.UploadArtifactMedia(context.Background(), 3, storage.SlotModel, bytes.NewReader(data))

	require.NoError(t, err)
	assert.Equal(t, "/media/3/model_1.glb", upload.URL)
	assert.Equal(t, int64(len(data)), upload.Size)
	assert.Equal(t, "model/gltf-binary", upload.MIME)
	assert.Equal(t, int64(3), upload.Artifact.ID)
	assert.Equal(t, data, store.saved)
}

func TestMediaService_UnknownArtifact(t *testing.T) {
	repo := new(mockArtifactRepo)
	store := new(mockMediaStore)
	svc := NewMediaService(NewArtifactService(repo), store, "/media")

	repo.On("Exists", mock.Anything, int64(8)).Return(false, nil)

	upload, err := svc.UploadArtifactMedia(context.Background(), 8, storage.SlotThumbnail, bytes.NewReader([]byte("x")))

	assert.NoError(t, err)
	assert.Nil(t, upload)
	store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestMediaService_WrongTypeForSlot(t *testing.T) {
	repo := new(mockArtifactRepo)
	store := new(mockMediaStore)
	svc := NewMediaService(NewArtifactService(repo), store, "/media")

	repo.On("Exists", mock.Anything, int64(3)).Return(true, nil)

	_, err := svc.UploadArtifactMedia(context.Background(), 3, storage.SlotThumbnail, bytes.NewReader(glbFile(64)))

	assert.True(t, apperror.IsValidation(err))
}

func TestMediaService_BadSlot(t *testing.T) {
	svc := NewMediaService(NewArtifactService(new(mockArtifactRepo)), new(mockMediaStore), "/media")

	_, err := svc.UploadArtifactMedia(context.Background(), 3, "audio", bytes.NewReader([]byte("x")))
	assert.True(t, apperror.IsValidation(err))
}

func TestMediaService_TooLarge(t *testing.T) {
	repo := new(mockArtifactRepo)
	store := new(mockMediaStore)
	svc := NewMediaService(NewArtifactService(repo), store, "/media")

	repo.On("Exists", mock.Anything, int64(3)).Return(true, nil)
	store.On("Save", mock.Anything, int64(3), storage.SlotModel, "glb").Return("", storage.ErrTooLarge)

	_, err := svc.UploadArtifactMedia(context.Background(), 3, storage.SlotModel, bytes.NewReader(glbFile(64)))

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.ErrCodeTooLarge, appErr.Code)
}
