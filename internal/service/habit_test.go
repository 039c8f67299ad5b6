package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/JonnyWalker81/habitpulse/backend/internal/models"
	"github.com/JonnyWalker81/habitpulse/backend/internal/prompts"
	"github.com/JonnyWalker81/habitpulse/backend/internal/repository/mocks"
)

func newHabitService(t *testing.T, variant models.PromptVariant) (HabitService, *mocks.MockHabitAnchorRepository) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockHabitAnchorRepository(ctrl)
	return NewHabitService(repo, prompts.FixedAssigner(variant), testZones(t), testClock()), repo
}

func TestHabitService_CreateAnchor(t *testing.T) {
	svc, repo := newHabitService(t, models.PromptVariantB)
	ny := newYork(t)

	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a *models.HabitAnchor) (*models.HabitAnchor, error) {
			assert.Equal(t, models.PromptVariantB, a.PromptVariant)
			assert.True(t, a.IsActive)
			assert.Equal(t, "finish breakfast", a.AnchorAction)
			a.ID = "a1"
			return a, nil
		})

	detail, err := svc.CreateAnchor(context.Background(), testUser, &models.CreateHabitAnchorRequest{
		AnchorAction: " finish breakfast ",
		TinyBehavior: "floss one tooth",
		Celebration:  "smile",
	})
	require.NoError(t, err)

	assert.Equal(t, "a1", detail.ID)
	assert.Equal(t, "When you finish breakfast, try this: floss one tooth. Then smile!", detail.Prompt)
	require.NotNil(t, detail.NextPrompt)
	assert.Equal(t, prompts.ReasonFromAnchor, detail.NextPrompt.Reason)
	// 07:30 has passed at 11:00, so the prompt fires tomorrow
	assert.True(t, detail.NextPrompt.NextFireAt.Equal(time.Date(2025, 3, 13, 7, 30, 0, 0, ny)))
}

func TestHabitService_CreateAnchorRejectsBlank(t *testing.T) {
	svc, _ := newHabitService(t, models.PromptVariantA)

	_, err := svc.CreateAnchor(context.Background(), testUser, &models.CreateHabitAnchorRequest{
		AnchorAction: "   ",
		TinyBehavior: "stretch",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestHabitService_ToggleAnchor(t *testing.T) {
	svc, repo := newHabitService(t, models.PromptVariantA)

	repo.EXPECT().GetByID(gomock.Any(), "a1").Return(&models.HabitAnchor{
		ID: "a1", UserID: testUser, AnchorAction: "get home", TinyBehavior: "stretch", IsActive: true,
	}, nil)
	repo.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a *models.HabitAnchor) (*models.HabitAnchor, error) {
			return a, nil
		})

	detail, err := svc.ToggleAnchor(context.Background(), testUser, "a1")
	require.NoError(t, err)
	assert.False(t, detail.IsActive)
	assert.Nil(t, detail.NextPrompt)
}

func TestHabitService_UpdateAnchor(t *testing.T) {
	svc, repo := newHabitService(t, models.PromptVariantA)

	repo.EXPECT().GetByID(gomock.Any(), "a1").Return(&models.HabitAnchor{
		ID: "a1", UserID: testUser, AnchorAction: "get home", TinyBehavior: "stretch", IsActive: true,
	}, nil)
	repo.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a *models.HabitAnchor) (*models.HabitAnchor, error) {
			return a, nil
		})

	detail, err := svc.UpdateAnchor(context.Background(), testUser, "a1", &models.UpdateHabitAnchorRequest{
		AnchorAction: strPtr("eat lunch"),
	})
	require.NoError(t, err)
	assert.Equal(t, "eat lunch", detail.AnchorAction)
	require.NotNil(t, detail.NextPrompt)
	// noon is still ahead at 11:00
	assert.Equal(t, 12, detail.NextPrompt.NextFireAt.Hour())
	assert.Equal(t, 12, detail.NextPrompt.NextFireAt.Day())
}

func TestHabitService_OwnershipChecks(t *testing.T) {
	svc, repo := newHabitService(t, models.PromptVariantA)
	other := &models.HabitAnchor{ID: "a1", UserID: "other"}
	repo.EXPECT().GetByID(gomock.Any(), "a1").Return(other, nil).Times(4)

	_, err := svc.GetAnchor(context.Background(), testUser, "a1")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.ToggleAnchor(context.Background(), testUser, "a1")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.UpdateAnchor(context.Background(), testUser, "a1", &models.UpdateHabitAnchorRequest{IsActive: boolPtr(false)})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, svc.DeleteAnchor(context.Background(), testUser, "a1"), ErrNotFound)
}

func TestHabitService_ListAnchors(t *testing.T) {
	svc, repo := newHabitService(t, models.PromptVariantA)
	repo.EXPECT().ListByUser(gomock.Any(), testUser).Return([]models.HabitAnchor{
		{ID: "a2", UserID: testUser, AnchorAction: "boil the kettle", TinyBehavior: "breathe", IsActive: true},
		{ID: "a1", UserID: testUser, AnchorAction: "sit down", TinyBehavior: "stretch"},
	}, nil)

	details, err := svc.ListAnchors(context.Background(), testUser)
	require.NoError(t, err)
	require.Len(t, details, 2)
	require.NotNil(t, details[0].NextPrompt)
	assert.Equal(t, 5*time.Minute, details[0].NextPrompt.NextFireAt.Sub(testNow))
	assert.Nil(t, details[1].NextPrompt)
}
