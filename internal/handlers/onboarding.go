package handlers

import (
	"errors"
	"net/http"

	"github.com/catalys/platform/internal/middleware"
	"github.com/catalys/platform/internal/services"
	"github.com/gin-gonic/gin"
)

type OnboardingHandler struct {
	onboardingService *services.OnboardingService
	submissionService *services.SubmissionService
}

func NewOnboardingHandler(onboardingService *services.OnboardingService, submissionService *services.SubmissionService) *OnboardingHandler {
	return &OnboardingHandler{
		onboardingService: onboardingService,
		submissionService: submissionService,
	}
}

// GetDraft returns the caller's wizard state, steps, and live preview
func (h *OnboardingHandler) GetDraft(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	wizard, err := h.onboardingService.LoadWizard(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load draft"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"wizard":  wizard,
		"steps":   services.WizardSteps,
		"preview": wizard.Preview(),
	})
}

// SaveDraft replaces the draft's form values and re-derives the preview
func (h *OnboardingHandler) SaveDraft(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var values services.FormValues
	if err := c.ShouldBindJSON(&values); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	wizard, err := h.onboardingService.UpdateValues(userID, values)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save draft"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"wizard":  wizard,
		"preview": wizard.Preview(),
	})
}

// NextStep validates the current step and advances on success
func (h *OnboardingHandler) NextStep(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	wizard, err := h.onboardingService.Next(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to advance"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"wizard":  wizard,
		"preview": wizard.Preview(),
	})
}

// PrevStep moves back one step without validation
func (h *OnboardingHandler) PrevStep(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	wizard, err := h.onboardingService.Prev(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to step back"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"wizard": wizard})
}

// GetPreview returns the live preview card for the current draft
func (h *OnboardingHandler) GetPreview(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	wizard, err := h.onboardingService.LoadWizard(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load draft"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"preview": wizard.Preview()})
}

// Submit runs the final onboarding sequence and reports where to redirect
func (h *OnboardingHandler) Submit(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var values services.FormValues
	if err := c.ShouldBindJSON(&values); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.submissionService.Submit(userID, values)
	if err != nil {
		var validationErr *services.ValidationError
		switch {
		case errors.As(err, &validationErr):
			c.JSON(http.StatusBadRequest, gin.H{
				"error":  "Please fix the highlighted fields",
				"fields": validationErr.Fields,
			})
		case errors.Is(err, services.ErrNotAuthenticated):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "You must be logged in to create a startup"})
		case errors.Is(err, services.ErrDuplicateSlug):
			c.JSON(http.StatusConflict, gin.H{"error": "A startup with this name already exists"})
		case errors.Is(err, services.ErrOrganizationCreation):
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to create organization"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to complete onboarding. Please try again."})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"result": result})
}
