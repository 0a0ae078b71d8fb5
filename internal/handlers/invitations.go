package handlers

import (
	"net/http"

	"github.com/catalys/platform/internal/middleware"
	"github.com/catalys/platform/internal/models"
	"github.com/catalys/platform/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type InvitationHandler struct {
	coFounderService    *services.CoFounderService
	organizationService *services.OrganizationService
}

func NewInvitationHandler(coFounderService *services.CoFounderService, organizationService *services.OrganizationService) *InvitationHandler {
	return &InvitationHandler{
		coFounderService:    coFounderService,
		organizationService: organizationService,
	}
}

// GetInvitation returns invitation details for the accept-invite page
func (h *InvitationHandler) GetInvitation(c *gin.Context) {
	invitationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid invitation ID"})
		return
	}

	invitation, err := h.coFounderService.GetByID(invitationID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Invitation not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"invitation": invitation})
}

// AcceptInvitation accepts a co-founder invitation: the invitation is marked
// accepted and the caller joins the startup's organization
func (h *InvitationHandler) AcceptInvitation(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	invitationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid invitation ID"})
		return
	}

	invitation, err := h.coFounderService.GetByID(invitationID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Invitation not found"})
		return
	}

	if err := h.coFounderService.AcceptInvitation(invitationID, userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to accept invitation"})
		return
	}

	if err := h.organizationService.AddMember(invitation.OrganizationID, userID, models.MemberRoleMember); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to join organization"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeclineInvitation declines a co-founder invitation
func (h *InvitationHandler) DeclineInvitation(c *gin.Context) {
	invitationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid invitation ID"})
		return
	}

	if err := h.coFounderService.DeclineInvitation(invitationID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decline invitation"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetOrganizationCoFounders lists invitations for an organization
func (h *InvitationHandler) GetOrganizationCoFounders(c *gin.Context) {
	organizationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization ID"})
		return
	}

	invitations, err := h.coFounderService.GetByOrganizationID(organizationID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch invitations"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"co_founders": invitations,
		"total":       len(invitations),
	})
}
