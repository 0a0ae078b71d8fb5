package services

import (
	"testing"
	"time"

	"github.com/catalys/platform/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validStartupInput(name string) CreateStartupInput {
	return CreateStartupInput{
		OrganizationID:   uuid.New(),
		CreatedBy:        uuid.New(),
		Name:             name,
		ShortDescription: "AI copilots for vets",
		Description:      "We build diagnostic copilots for veterinary clinics",
		Category:         "Healthcare",
		AppliedBefore:    models.AppliedFirstTime,
		TeamSize:         2,
	}
}

func TestStartupCreateDerivesSlug(t *testing.T) {
	db := newTestDB(t)
	svc := NewStartupService(db)

	startup, err := svc.Create(validStartupInput("Acme! Inc."))
	require.NoError(t, err)
	assert.Equal(t, "acme-inc", startup.Slug)
	assert.NotEqual(t, uuid.Nil, startup.ID)
	assert.Equal(t, models.StageIdea, startup.Stage)
}

func TestStartupCreateRejectsDuplicateName(t *testing.T) {
	db := newTestDB(t)
	svc := NewStartupService(db)

	_, err := svc.Create(validStartupInput("Acme Inc"))
	require.NoError(t, err)

	// Different casing and punctuation, same slug.
	_, err = svc.Create(validStartupInput("acme, inc!"))
	assert.ErrorIs(t, err, ErrDuplicateSlug)

	var count int64
	db.Model(&models.Startup{}).Count(&count)
	assert.Equal(t, int64(1), count, "duplicate must not leave a second record")
}

func TestStartupCreateCompletesOnboarding(t *testing.T) {
	db := newTestDB(t)
	svc := NewStartupService(db)

	user := models.User{Email: "founder@example.com", PasswordHash: "x", Name: "Founder"}
	require.NoError(t, db.Create(&user).Error)
	profile := models.UserProfile{UserID: user.ID, UserType: models.UserTypeFounder}
	require.NoError(t, db.Create(&profile).Error)

	input := validStartupInput("Flowgrid")
	input.CreatedBy = user.ID
	_, err := svc.Create(input)
	require.NoError(t, err)

	var got models.UserProfile
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&got).Error)
	assert.True(t, got.OnboardingCompleted)
}

func TestStartupCreateWithoutProfile(t *testing.T) {
	db := newTestDB(t)
	svc := NewStartupService(db)

	// No profile row for the creator; create still succeeds.
	_, err := svc.Create(validStartupInput("Orbital"))
	assert.NoError(t, err)
}

func TestStartupGetByOrganizationID(t *testing.T) {
	db := newTestDB(t)
	svc := NewStartupService(db)

	input := validStartupInput("Lighthouse")
	created, err := svc.Create(input)
	require.NoError(t, err)

	got, err := svc.GetByOrganizationID(input.OrganizationID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, created.ID, got.ID)

	missing, err := svc.GetByOrganizationID(uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestStartupGetByOrganizationIDsDropsMisses(t *testing.T) {
	db := newTestDB(t)
	svc := NewStartupService(db)

	first := validStartupInput("Alpha Labs")
	second := validStartupInput("Beta Works")
	_, err := svc.Create(first)
	require.NoError(t, err)
	_, err = svc.Create(second)
	require.NoError(t, err)

	startups, err := svc.GetByOrganizationIDs([]uuid.UUID{
		first.OrganizationID,
		uuid.New(), // no startup
		second.OrganizationID,
	})
	require.NoError(t, err)
	assert.Len(t, startups, 2)
}

func TestStartupUpdatePartial(t *testing.T) {
	db := newTestDB(t)
	svc := NewStartupService(db)

	created, err := svc.Create(validStartupInput("Gradient"))
	require.NoError(t, err)

	before := time.Now().Add(-time.Millisecond)
	newName := "Gradient AI"
	newStage := models.StageMVP
	err = svc.Update(created.ID, UpdateStartupInput{
		Name:  &newName,
		Stage: &newStage,
	})
	require.NoError(t, err)

	got, err := svc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Gradient AI", got.Name)
	assert.Equal(t, models.StageMVP, got.Stage)
	// Untouched fields keep their values; the slug in particular does not
	// follow a rename.
	assert.Equal(t, created.Slug, got.Slug)
	assert.Equal(t, created.ShortDescription, got.ShortDescription)
	assert.True(t, got.UpdatedAt.After(before))
}

func TestStartupUpdateEmptyInputStampsUpdatedAt(t *testing.T) {
	db := newTestDB(t)
	svc := NewStartupService(db)

	created, err := svc.Create(validStartupInput("Nimbus"))
	require.NoError(t, err)

	before := time.Now().Add(-time.Millisecond)
	require.NoError(t, svc.Update(created.ID, UpdateStartupInput{}))

	got, err := svc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Name, got.Name)
	assert.True(t, got.UpdatedAt.After(before))
}
