package services

import (
	"testing"
	"time"

	"github.com/catalys/platform/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoFounderCreateBatch(t *testing.T) {
	db := newTestDB(t)
	svc := NewCoFounderService(db)

	startupID := uuid.New()
	orgID := uuid.New()
	invitedBy := uuid.New()

	invitations, err := svc.CreateBatch(startupID, orgID, []CoFounderInput{
		{Name: "Ada", Email: "ada@example.com", Role: "CTO", EquityPercentage: 30},
		{Name: "Grace", Email: "grace@example.com", Role: "COO", EquityPercentage: 20},
		{Email: "linus@example.com", Role: "Engineer", EquityPercentage: 5},
	}, invitedBy)
	require.NoError(t, err)
	require.Len(t, invitations, 3)

	seen := map[uuid.UUID]bool{}
	for _, inv := range invitations {
		assert.Equal(t, models.InvitationPending, inv.InvitationStatus)
		assert.Equal(t, startupID, inv.StartupID)
		assert.Equal(t, orgID, inv.OrganizationID)
		assert.Equal(t, invitedBy, inv.InvitedBy)
		assert.False(t, inv.InvitedAt.IsZero())
		assert.False(t, seen[inv.ID], "invitation ids must be distinct")
		seen[inv.ID] = true
	}

	stored, err := svc.GetByStartupID(startupID)
	require.NoError(t, err)
	assert.Len(t, stored, 3)
}

func TestCoFounderCreateBatchEmpty(t *testing.T) {
	db := newTestDB(t)
	svc := NewCoFounderService(db)

	invitations, err := svc.CreateBatch(uuid.New(), uuid.New(), nil, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, invitations)
}

func TestCoFounderAcceptInvitation(t *testing.T) {
	db := newTestDB(t)
	svc := NewCoFounderService(db)

	invitations, err := svc.CreateBatch(uuid.New(), uuid.New(), []CoFounderInput{
		{Email: "ada@example.com", Role: "CTO", EquityPercentage: 30},
	}, uuid.New())
	require.NoError(t, err)

	accepter := uuid.New()
	require.NoError(t, svc.AcceptInvitation(invitations[0].ID, accepter))

	got, err := svc.GetByID(invitations[0].ID)
	require.NoError(t, err)
	assert.Equal(t, models.InvitationAccepted, got.InvitationStatus)
	require.NotNil(t, got.UserID)
	assert.Equal(t, accepter, *got.UserID)
	require.NotNil(t, got.RespondedAt)
}

func TestCoFounderDeclineOverwritesAccept(t *testing.T) {
	db := newTestDB(t)
	svc := NewCoFounderService(db)

	invitations, err := svc.CreateBatch(uuid.New(), uuid.New(), []CoFounderInput{
		{Email: "grace@example.com", Role: "COO", EquityPercentage: 20},
	}, uuid.New())
	require.NoError(t, err)
	id := invitations[0].ID

	require.NoError(t, svc.AcceptInvitation(id, uuid.New()))
	afterAccept, err := svc.GetByID(id)
	require.NoError(t, err)
	firstResponse := *afterAccept.RespondedAt

	time.Sleep(2 * time.Millisecond)
	require.NoError(t, svc.DeclineInvitation(id))

	got, err := svc.GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, models.InvitationDeclined, got.InvitationStatus)
	require.NotNil(t, got.RespondedAt)
	assert.True(t, got.RespondedAt.After(firstResponse), "decline re-stamps responded_at")
}

func TestCoFounderGetByOrganizationID(t *testing.T) {
	db := newTestDB(t)
	svc := NewCoFounderService(db)

	orgID := uuid.New()
	_, err := svc.CreateBatch(uuid.New(), orgID, []CoFounderInput{
		{Email: "one@example.com", Role: "CTO", EquityPercentage: 10},
		{Email: "two@example.com", Role: "CPO", EquityPercentage: 10},
	}, uuid.New())
	require.NoError(t, err)
	_, err = svc.CreateBatch(uuid.New(), uuid.New(), []CoFounderInput{
		{Email: "other@example.com", Role: "CEO", EquityPercentage: 50},
	}, uuid.New())
	require.NoError(t, err)

	invitations, err := svc.GetByOrganizationID(orgID)
	require.NoError(t, err)
	assert.Len(t, invitations, 2)
}
