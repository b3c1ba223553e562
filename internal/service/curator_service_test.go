package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/portfolio-backend/internal/curator"
	"github.com/ignatzorin/portfolio-backend/internal/models"
	"github.com/ignatzorin/portfolio-backend/internal/pkg/apperror"
)

func TestCuratorService_CreateInteraction_StoresSelectedResponse(t *testing.T) {
	repo := new(mockCuratorRepo)
	pub := new(mockPublisher)
	svc := NewCuratorService(repo, pub)

	in := models.CreateAiCuratorInteractionInput{
		SessionID:       "test-session-123",
		UserInput:       "Hello, can you show me AI projects?",
		InteractionType: models.InteractionVoice,
	}
	want := curator.SelectResponse(in.UserInput, in.InteractionType, nil)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(i *models.AiCuratorInteraction) bool {
		return i.CuratorResponse == want && i.UserInput == in.UserInput && i.ContextArtifactID == nil
	})).Return(nil)
	pub.On("PublishInteraction", mock.MatchedBy(func(i models.AiCuratorInteraction) bool {
		return i.ID == 1 && i.SessionID == "test-session-123"
	})).Return()

	got, err := svc.CreateInteraction(context.Background(), in)

	require.NoError(t, err)
	assert.Equal(t, want, got.CuratorResponse)
	assert.Equal(t, int64(1), got.ID)
	repo.AssertExpectations(t)
	pub.AssertExpectations(t)
}

func TestCuratorService_CreateInteraction_NilPublisher(t *testing.T) {
	repo := new(mockCuratorRepo)
	svc := NewCuratorService(repo, nil)

	ctxID := int64(42)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	got, err := svc.CreateInteraction(context.Background(), models.CreateAiCuratorInteractionInput{
		SessionID:         "s",
		UserInput:         "user pointed at artifact",
		InteractionType:   models.InteractionGesture,
		ContextArtifactID: &ctxID,
	})

	require.NoError(t, err)
	assert.Equal(t, curator.SelectResponse("", models.InteractionGesture, &ctxID), got.CuratorResponse)
	assert.Equal(t, &ctxID, got.ContextArtifactID)
}

func TestCuratorService_CreateInteraction_StoreFailureNotPublished(t *testing.T) {
	repo := new(mockCuratorRepo)
	pub := new(mockPublisher)
	svc := NewCuratorService(repo, pub)

	repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("db down"))

	_, err := svc.CreateInteraction(context.Background(), models.CreateAiCuratorInteractionInput{
		SessionID: "s", UserInput: "hi", InteractionType: models.InteractionText,
	})

	assert.True(t, apperror.IsInternal(err))
	pub.AssertNotCalled(t, "PublishInteraction", mock.Anything)
}

func TestCuratorService_CreateInteraction_InvalidChannel(t *testing.T) {
	repo := new(mockCuratorRepo)
	svc := NewCuratorService(repo, nil)

	_, err := svc.CreateInteraction(context.Background(), models.CreateAiCuratorInteractionInput{
		SessionID: "s", UserInput: "hi", InteractionType: "smoke",
	})

	assert.True(t, apperror.IsValidation(err))
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCuratorService_ListInteractions(t *testing.T) {
	repo := new(mockCuratorRepo)
	svc := NewCuratorService(repo, nil)

	repo.On("ListBySession", mock.Anything, "s-1").Return([]models.AiCuratorInteraction{{ID: 2}, {ID: 1}}, nil)

	items, err := svc.ListInteractions(context.Background(), "s-1")
	require.NoError(t, err)
	assert.Len(t, items, 2)

	_, err = svc.ListInteractions(context.Background(), " ")
	assert.True(t, apperror.IsValidation(err))
}
