package services

import (
	"testing"

	"github.com/catalys/platform/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOnboardingLoadWizardFresh(t *testing.T) {
	db := newTestDB(t)
	svc := NewOnboardingService(db)

	wizard, err := svc.LoadWizard(uuid.New())
	require.NoError(t, err)
	assert.Equal(t, 1, wizard.CurrentStep)
	assert.Equal(t, DefaultFormValues(), wizard.Values)
}

func TestOnboardingDraftRoundTrip(t *testing.T) {
	db := newTestDB(t)
	svc := NewOnboardingService(db)
	userID := uuid.New()

	wizard := NewWizard()
	wizard.Values = validFormValues()
	wizard.Values.CoFounders = []CoFounderInput{
		{Name: "Ada", Email: "ada@example.com", Role: "CTO", EquityPercentage: 30},
	}
	wizard.CurrentStep = 3
	require.NoError(t, svc.SaveWizard(userID, wizard))

	restored, err := svc.LoadWizard(userID)
	require.NoError(t, err)
	assert.Equal(t, 3, restored.CurrentStep)
	assert.Equal(t, wizard.Values, restored.Values)
}

func TestOnboardingSaveOverwritesDraft(t *testing.T) {
	db := newTestDB(t)
	svc := NewOnboardingService(db)
	userID := uuid.New()

	first := NewWizard()
	first.Values.CompanyName = "First Draft"
	require.NoError(t, svc.SaveWizard(userID, first))

	second := NewWizard()
	second.Values.CompanyName = "Second Draft"
	second.CurrentStep = 2
	require.NoError(t, svc.SaveWizard(userID, second))

	var count int64
	db.Model(&models.OnboardingDraft{}).Where("user_id = ?", userID).Count(&count)
	assert.Equal(t, int64(1), count, "one draft per user")

	restored, err := svc.LoadWizard(userID)
	require.NoError(t, err)
	assert.Equal(t, "Second Draft", restored.Values.CompanyName)
	assert.Equal(t, 2, restored.CurrentStep)
}

func TestOnboardingLoadClampsStep(t *testing.T) {
	db := newTestDB(t)
	svc := NewOnboardingService(db)
	userID := uuid.New()

	draft := models.OnboardingDraft{UserID: userID, CurrentStep: 99}
	require.NoError(t, db.Create(&draft).Error)

	wizard, err := svc.LoadWizard(userID)
	require.NoError(t, err)
	assert.Equal(t, TotalSteps, wizard.CurrentStep)
}

func TestOnboardingNextPersistsOutcome(t *testing.T) {
	db := newTestDB(t)
	svc := NewOnboardingService(db)
	userID := uuid.New()

	// Empty draft: step 1 validation fails, step stays put.
	wizard, err := svc.Next(userID)
	require.NoError(t, err)
	assert.Equal(t, 1, wizard.CurrentStep)
	assert.NotEmpty(t, wizard.Errors)

	_, err = svc.UpdateValues(userID, validFormValues())
	require.NoError(t, err)

	wizard, err = svc.Next(userID)
	require.NoError(t, err)
	assert.Equal(t, 2, wizard.CurrentStep)

	restored, err := svc.LoadWizard(userID)
	require.NoError(t, err)
	assert.Equal(t, 2, restored.CurrentStep)
}

func TestOnboardingClearDraft(t *testing.T) {
	db := newTestDB(t)
	svc := NewOnboardingService(db)
	userID := uuid.New()

	require.NoError(t, svc.SaveWizard(userID, NewWizard()))
	require.NoError(t, svc.ClearDraft(userID))

	var count int64
	db.Model(&models.OnboardingDraft{}).Where("user_id = ?", userID).Count(&count)
	assert.Equal(t, int64(0), count)
}
