package services

import (
	"testing"

	"github.com/catalys/platform/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileCreate(t *testing.T) {
	db := newTestDB(t)
	svc := NewProfileService(db)
	userID := uuid.New()

	profile, err := svc.Create(userID, models.UserTypeFounder)
	require.NoError(t, err)
	assert.Equal(t, userID, profile.UserID)
	assert.Equal(t, models.UserTypeFounder, profile.UserType)
	assert.False(t, profile.OnboardingCompleted)
}

func TestProfileCreateDuplicate(t *testing.T) {
	db := newTestDB(t)
	svc := NewProfileService(db)
	userID := uuid.New()

	_, err := svc.Create(userID, models.UserTypeFounder)
	require.NoError(t, err)

	_, err = svc.Create(userID, models.UserTypeInvestor)
	assert.ErrorIs(t, err, ErrProfileExists)
}

func TestProfileGetByUserIDMissing(t *testing.T) {
	db := newTestDB(t)
	svc := NewProfileService(db)

	profile, err := svc.GetByUserID(uuid.New())
	require.NoError(t, err)
	assert.Nil(t, profile)
}

func TestProfileUpdate(t *testing.T) {
	db := newTestDB(t)
	svc := NewProfileService(db)
	userID := uuid.New()

	_, err := svc.Create(userID, models.UserTypeFounder)
	require.NoError(t, err)

	updated, err := svc.Update(userID, models.UserTypeInvestor)
	require.NoError(t, err)
	assert.Equal(t, models.UserTypeInvestor, updated.UserType)
}

func TestProfileUpdateMissing(t *testing.T) {
	db := newTestDB(t)
	svc := NewProfileService(db)

	_, err := svc.Update(uuid.New(), models.UserTypeInvestor)
	assert.ErrorIs(t, err, ErrProfileNotFound)
}
