package services

import (
	"encoding/json"
	"errors"

	"github.com/catalys/platform/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OnboardingService persists each founder's wizard state so the draft
// survives reloads.
type OnboardingService struct {
	db *gorm.DB
}

func NewOnboardingService(db *gorm.DB) *OnboardingService {
	return &OnboardingService{db: db}
}

// LoadWizard restores the user's wizard, or returns a fresh one when no
// draft exists yet.
func (s *OnboardingService) LoadWizard(userID uuid.UUID) (*Wizard, error) {
	var draft models.OnboardingDraft
	if err := s.db.Where("user_id = ?", userID).First(&draft).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NewWizard(), nil
		}
		return nil, err
	}

	values := DefaultFormValues()
	if draft.Values != "" {
		if err := json.Unmarshal([]byte(draft.Values), &values); err != nil {
			return nil, err
		}
	}

	step := draft.CurrentStep
	if step < 1 {
		step = 1
	}
	if step > TotalSteps {
		step = TotalSteps
	}

	return &Wizard{CurrentStep: step, Values: values}, nil
}

// SaveWizard upserts the user's draft.
func (s *OnboardingService) SaveWizard(userID uuid.UUID, wizard *Wizard) error {
	raw, err := json.Marshal(wizard.Values)
	if err != nil {
		return err
	}

	var draft models.OnboardingDraft
	if err := s.db.Where("user_id = ?", userID).First(&draft).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		draft = models.OnboardingDraft{UserID: userID}
	}

	draft.CurrentStep = wizard.CurrentStep
	draft.Values = string(raw)
	return s.db.Save(&draft).Error
}

// UpdateValues replaces the draft's form values without moving the step.
func (s *OnboardingService) UpdateValues(userID uuid.UUID, values FormValues) (*Wizard, error) {
	wizard, err := s.LoadWizard(userID)
	if err != nil {
		return nil, err
	}

	wizard.Values = values
	if err := s.SaveWizard(userID, wizard); err != nil {
		return nil, err
	}
	return wizard, nil
}

// Next validates the current step and advances on success, persisting
// either outcome's state.
func (s *OnboardingService) Next(userID uuid.UUID) (*Wizard, error) {
	wizard, err := s.LoadWizard(userID)
	if err != nil {
		return nil, err
	}

	wizard.NextStep()
	if err := s.SaveWizard(userID, wizard); err != nil {
		return nil, err
	}
	return wizard, nil
}

// Prev steps back without validation.
func (s *OnboardingService) Prev(userID uuid.UUID) (*Wizard, error) {
	wizard, err := s.LoadWizard(userID)
	if err != nil {
		return nil, err
	}

	wizard.PrevStep()
	if err := s.SaveWizard(userID, wizard); err != nil {
		return nil, err
	}
	return wizard, nil
}

// ClearDraft removes the user's draft after a successful submission.
func (s *OnboardingService) ClearDraft(userID uuid.UUID) error {
	return s.db.Where("user_id = ?", userID).Delete(&models.OnboardingDraft{}).Error
}
