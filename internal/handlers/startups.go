package handlers

import (
	"net/http"

	"github.com/catalys/platform/internal/middleware"
	"github.com/catalys/platform/internal/models"
	"github.com/catalys/platform/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type StartupHandler struct {
	startupService   *services.StartupService
	coFounderService *services.CoFounderService
	documentService  *services.DocumentService
	authService      *services.AuthService
}

func NewStartupHandler(startupService *services.StartupService, coFounderService *services.CoFounderService, documentService *services.DocumentService, authService *services.AuthService) *StartupHandler {
	return &StartupHandler{
		startupService:   startupService,
		coFounderService: coFounderService,
		documentService:  documentService,
		authService:      authService,
	}
}

// GetBySlug returns a startup's public card by its slug
func (h *StartupHandler) GetBySlug(c *gin.Context) {
	startup, err := h.startupService.GetBySlug(c.Param("slug"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch startup"})
		return
	}
	if startup == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Startup not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"startup": startup.ToSummary()})
}

// GetByOrganization returns the startup owned by an organization
func (h *StartupHandler) GetByOrganization(c *gin.Context) {
	organizationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization ID"})
		return
	}

	startup, err := h.startupService.GetByOrganizationID(organizationID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch startup"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"startup": startup})
}

// GetByOrganizationsRequest represents the workspace-selector bulk lookup
type GetByOrganizationsRequest struct {
	OrganizationIDs []uuid.UUID `json:"organization_ids" binding:"required"`
}

// GetByOrganizations returns the startups for a set of organizations,
// dropping organizations that have none
func (h *StartupHandler) GetByOrganizations(c *gin.Context) {
	var req GetByOrganizationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	startups, err := h.startupService.GetByOrganizationIDs(req.OrganizationIDs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch startups"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"startups": startups,
		"total":    len(startups),
	})
}

// UpdateStartupRequest represents the patchable startup fields
type UpdateStartupRequest struct {
	Name             *string              `json:"name,omitempty"`
	ShortDescription *string              `json:"short_description,omitempty"`
	Description      *string              `json:"description,omitempty"`
	Website          *string              `json:"website,omitempty"`
	Industry         *string              `json:"industry,omitempty"`
	Stage            *models.StartupStage `json:"stage,omitempty" binding:"omitempty,oneof=IDEA MVP LAUNCHED GROWTH SCALING"`
	FoundedDate      *string              `json:"founded_date,omitempty"`
	Location         *string              `json:"location,omitempty"`
	WhyThisIdea      *string              `json:"why_this_idea,omitempty"`
	TargetMarket     *string              `json:"target_market,omitempty"`
	Traction         *string              `json:"traction,omitempty"`
	FundingStage     *models.FundingStage `json:"funding_stage,omitempty" binding:"omitempty,oneof=PRE_SEED SEED SERIES_A SERIES_B SERIES_C_PLUS BOOTSTRAPPED"`
	TeamSize         *int                 `json:"team_size,omitempty" binding:"omitempty,min=1"`
}

// Update applies a partial update to a startup
func (h *StartupHandler) Update(c *gin.Context) {
	startupID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid startup ID"})
		return
	}

	var req UpdateStartupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := services.UpdateStartupInput{
		Name:             req.Name,
		ShortDescription: req.ShortDescription,
		Description:      req.Description,
		Website:          req.Website,
		Industry:         req.Industry,
		Stage:            req.Stage,
		FoundedDate:      req.FoundedDate,
		Location:         req.Location,
		WhyThisIdea:      req.WhyThisIdea,
		TargetMarket:     req.TargetMarket,
		Traction:         req.Traction,
		FundingStage:     req.FundingStage,
		TeamSize:         req.TeamSize,
	}

	if err := h.startupService.Update(startupID, input); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update startup"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetCoFounders lists a startup's co-founder invitations
func (h *StartupHandler) GetCoFounders(c *gin.Context) {
	startupID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid startup ID"})
		return
	}

	invitations, err := h.coFounderService.GetByStartupID(startupID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch co-founders"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"co_founders": invitations,
		"total":       len(invitations),
	})
}

// DownloadApplication generates and serves the startup's application PDF
func (h *StartupHandler) DownloadApplication(c *gin.Context) {
	startup, err := h.startupService.GetBySlug(c.Param("slug"))
	if err != nil || startup == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Startup not found"})
		return
	}

	userID, _ := middleware.GetUserID(c)
	if startup.CreatedBy != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the founder can download the application"})
		return
	}

	founder, err := h.authService.GetUserByID(startup.CreatedBy)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load founder"})
		return
	}

	coFounders, err := h.coFounderService.GetByStartupID(startup.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load co-founders"})
		return
	}

	filePath, err := h.documentService.GenerateApplicationPDF(startup, founder, coFounders)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate PDF"})
		return
	}

	c.FileAttachment(filePath, startup.Slug+"-application.pdf")
}
