package services

import "net/url"

// TotalSteps is the number of wizard steps: Startup, Idea, Progress,
// Equity & Team.
const TotalSteps = 4

type WizardStep struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

var WizardSteps = []WizardStep{
	{ID: 1, Title: "Startup", Description: "Startup information"},
	{ID: 2, Title: "Idea", Description: "Vision & strategy"},
	{ID: 3, Title: "Progress", Description: "Development & traction"},
	{ID: 4, Title: "Equity & Team", Description: "Legal, funding & co-founders"},
}

// Wizard is the onboarding form state machine: the current step, the draft
// values, and the field errors from the last failed step validation.
type Wizard struct {
	CurrentStep int               `json:"current_step"`
	Values      FormValues        `json:"values"`
	Errors      map[string]string `json:"errors,omitempty"`
}

func NewWizard() *Wizard {
	return &Wizard{
		CurrentStep: 1,
		Values:      DefaultFormValues(),
	}
}

// NextStep validates only the current step's fields and advances when they
// all pass. On failure the step stays put and Errors carries the inline
// messages.
func (w *Wizard) NextStep() bool {
	errs := ValidateStep(w.CurrentStep, w.Values)
	if len(errs) > 0 {
		w.Errors = errs
		return false
	}

	w.Errors = nil
	if w.CurrentStep < TotalSteps {
		w.CurrentStep++
	}
	return true
}

// PrevStep moves back one step without validating, never below the first.
func (w *Wizard) PrevStep() {
	w.Errors = nil
	if w.CurrentStep > 1 {
		w.CurrentStep--
	}
}

// OnLastStep reports whether submit is the next action.
func (w *Wizard) OnLastStep() bool {
	return w.CurrentStep == TotalSteps
}

// AddCoFounder appends a blank co-founder entry to the team list.
func (w *Wizard) AddCoFounder() {
	w.Values.CoFounders = append(w.Values.CoFounders, CoFounderInput{})
}

// RemoveCoFounder deletes the entry at index; out-of-range indexes are
// ignored.
func (w *Wizard) RemoveCoFounder(index int) {
	if index < 0 || index >= len(w.Values.CoFounders) {
		return
	}
	w.Values.CoFounders = append(w.Values.CoFounders[:index], w.Values.CoFounders[index+1:]...)
}

// Preview is the live draft card: a display projection of the current form
// values with placeholders for anything still empty.
type Preview struct {
	Name             string   `json:"name"`
	ShortDescription string   `json:"short_description"`
	Category         string   `json:"category,omitempty"`
	WebsiteHost      string   `json:"website_host,omitempty"`
	Badges           []string `json:"badges,omitempty"`
	WhatMaking       string   `json:"what_making,omitempty"`
	TechStack        string   `json:"tech_stack,omitempty"`
	WhyThisIdea      string   `json:"why_this_idea,omitempty"`
	Monetization     string   `json:"monetization,omitempty"`
	Competitors      string   `json:"competitors,omitempty"`
	Progress         string   `json:"progress,omitempty"`
	Empty            bool     `json:"empty"`
}

// Preview derives the draft card for the current values. Pure and cheap;
// recomputed on every change.
func (w *Wizard) Preview() Preview {
	v := w.Values

	p := Preview{
		Name:             v.CompanyName,
		ShortDescription: v.ShortDescription,
		Category:         v.Category,
		WhatMaking:       v.WhatMaking,
		TechStack:        v.TechStack,
		WhyThisIdea:      v.WhyThisIdea,
		Monetization:     v.Monetization,
		Competitors:      v.Competitors,
		Progress:         v.HowFarAlong,
		Empty:            v.CompanyName == "" && v.ShortDescription == "",
	}

	if p.Name == "" {
		p.Name = "Your Startup"
	}
	if p.ShortDescription == "" {
		p.ShortDescription = "A short description of what you're building"
	}

	if v.CompanyURL != "" {
		p.WebsiteHost = hostOf(v.CompanyURL)
	}

	if v.PeopleUsing == "yes" {
		p.Badges = append(p.Badges, "People using product")
	}
	if v.HasRevenue == "yes" {
		p.Badges = append(p.Badges, "Has revenue")
	}
	if v.CurrentlyFundraising == "yes" {
		p.Badges = append(p.Badges, "Currently fundraising")
	}

	return p
}

func hostOf(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return raw
	}
	return u.Host
}
