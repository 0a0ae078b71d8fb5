package services

import (
	"fmt"
	"net/mail"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/catalys/platform/internal/models"
)

// FormValues is the full field set collected across the four wizard steps.
// Yes/no answers stay strings until submission so an unanswered select is
// distinguishable from an explicit "no".
type FormValues struct {
	// Step 1: Startup
	CompanyName         string `json:"company_name"`
	ShortDescription    string `json:"short_description"`
	WhatMaking          string `json:"what_making"`
	FutureLocation      string `json:"future_location"`
	LocationExplanation string `json:"location_explanation"`

	// Step 2: Idea
	WhyThisIdea  string `json:"why_this_idea"`
	CustomerNeed string `json:"customer_need"`
	Competitors  string `json:"competitors"`
	Monetization string `json:"monetization"`
	Category     string `json:"category"`

	// Step 3: Progress
	CompanyURL               string `json:"company_url,omitempty"`
	DemoVideo                string `json:"demo_video,omitempty"`
	HowFarAlong              string `json:"how_far_along"`
	WorkingTime              string `json:"working_time"`
	TechStack                string `json:"tech_stack"`
	PeopleUsing              string `json:"people_using"`
	VersionTimeline          string `json:"version_timeline,omitempty"`
	HasRevenue               string `json:"has_revenue"`
	AppliedBefore            string `json:"applied_before"`
	PreviousApplicationNotes string `json:"previous_application_notes,omitempty"`
	IncubatorInfo            string `json:"incubator_info,omitempty"`

	// Step 4: Equity & Team
	HasLegalEntity       string           `json:"has_legal_entity"`
	LegalEntities        string           `json:"legal_entities,omitempty"`
	EquityBreakdown      string           `json:"equity_breakdown,omitempty"`
	InvestmentTaken      string           `json:"investment_taken"`
	CurrentlyFundraising string           `json:"currently_fundraising"`
	CoFounders           []CoFounderInput `json:"co_founders,omitempty"`
}

// DefaultFormValues mirrors the wizard's initial state: empty text fields,
// "no" selects, first-time applicant.
func DefaultFormValues() FormValues {
	return FormValues{
		PeopleUsing:          "no",
		HasRevenue:           "no",
		AppliedBefore:        string(models.AppliedFirstTime),
		HasLegalEntity:       "no",
		InvestmentTaken:      "no",
		CurrentlyFundraising: "no",
	}
}

// Categories available on the idea step.
var Categories = []string{
	"B2B",
	"Education",
	"Fintech",
	"Healthcare",
	"Consumer",
	"Enterprise",
	"Developer Tools",
	"Climate",
	"Biotech",
	"Hardware",
	"Government",
	"Industrials",
	"Real Estate and Construction",
	"Other",
}

// StepFields lists which form fields each step owns. NextStep validates only
// the current step's subset.
var StepFields = map[int][]string{
	1: {"company_name", "short_description", "what_making", "future_location", "location_explanation"},
	2: {"why_this_idea", "customer_need", "competitors", "monetization", "category"},
	3: {"company_url", "demo_video", "how_far_along", "working_time", "tech_stack", "people_using", "version_timeline", "has_revenue", "applied_before", "previous_application_notes"},
	4: {"has_legal_entity", "investment_taken", "currently_fundraising", "co_founders"},
}

// ValidateStep checks only the given step's fields and returns per-field
// error messages. Conditional fields are skipped while hidden: the version
// timeline only applies when nobody is using the product yet, and previous
// application notes only apply to repeat applicants.
func ValidateStep(step int, values FormValues) map[string]string {
	errs := map[string]string{}

	for _, field := range StepFields[step] {
		if msg := validateField(field, values); msg != "" {
			errs[field] = msg
		}
	}

	if step == 4 {
		for i, coFounder := range values.CoFounders {
			for field, msg := range validateCoFounder(coFounder) {
				errs[fmt.Sprintf("co_founders.%d.%s", i, field)] = msg
			}
		}
	}

	return errs
}

// ValidateAll runs every step's validation, as the final submit does.
func ValidateAll(values FormValues) map[string]string {
	errs := map[string]string{}
	for step := 1; step <= TotalSteps; step++ {
		for field, msg := range ValidateStep(step, values) {
			errs[field] = msg
		}
	}
	return errs
}

func validateField(field string, v FormValues) string {
	switch field {
	case "company_name":
		return requireMin(v.CompanyName, 2, "Startup name is required")
	case "short_description":
		if strings.TrimSpace(v.ShortDescription) == "" {
			return "Description is required"
		}
		if utf8.RuneCountInString(v.ShortDescription) > 50 {
			return "Must be 50 characters or less"
		}
	case "what_making":
		return requireMin(v.WhatMaking, 20, "Please describe what you're making")
	case "future_location":
		return requireMin(v.FutureLocation, 2, "Please enter where startup would be based")
	case "location_explanation":
		return requireMin(v.LocationExplanation, 10, "Please explain your location decision")
	case "why_this_idea":
		return requireMin(v.WhyThisIdea, 20, "Please explain why you picked this idea")
	case "customer_need":
		return requireMin(v.CustomerNeed, 20, "Please explain how you know people need this")
	case "competitors":
		return requireMin(v.Competitors, 10, "Please list your competitors")
	case "monetization":
		return requireMin(v.Monetization, 20, "Please explain how you'll make money")
	case "category":
		if v.Category == "" {
			return "Please select a category"
		}
	case "company_url":
		return optionalURL(v.CompanyURL)
	case "demo_video":
		return optionalURL(v.DemoVideo)
	case "how_far_along":
		return requireMin(v.HowFarAlong, 20, "Please describe your progress")
	case "working_time":
		return requireMin(v.WorkingTime, 10, "Please describe working time")
	case "tech_stack":
		return requireMin(v.TechStack, 10, "Please list your tech stack")
	case "people_using":
		return requireYesNo(v.PeopleUsing)
	case "version_timeline":
		// Shown only while nobody is using the product
		if v.PeopleUsing == "no" && strings.TrimSpace(v.VersionTimeline) == "" {
			return "Please estimate when a version will be ready"
		}
	case "has_revenue":
		return requireYesNo(v.HasRevenue)
	case "applied_before":
		switch models.AppliedBefore(v.AppliedBefore) {
		case models.AppliedFirstTime, models.AppliedSameIdea, models.AppliedDifferentIdea:
		default:
			return "Please select an option"
		}
	case "previous_application_notes":
		// Shown only for repeat applicants
		if v.AppliedBefore != string(models.AppliedFirstTime) && strings.TrimSpace(v.PreviousApplicationNotes) == "" {
			return "Please describe your previous application"
		}
	case "has_legal_entity":
		return requireYesNo(v.HasLegalEntity)
	case "investment_taken":
		return requireYesNo(v.InvestmentTaken)
	case "currently_fundraising":
		return requireYesNo(v.CurrentlyFundraising)
	}
	return ""
}

func validateCoFounder(c CoFounderInput) map[string]string {
	errs := map[string]string{}

	if _, err := mail.ParseAddress(c.Email); err != nil {
		errs["email"] = "Please enter a valid email"
	}
	if len(strings.TrimSpace(c.Role)) < 2 {
		errs["role"] = "Role is required"
	}
	if c.EquityPercentage < 0 {
		errs["equity_percentage"] = "Equity must be at least 0%"
	}
	if c.EquityPercentage > 100 {
		errs["equity_percentage"] = "Equity cannot exceed 100%"
	}
	if c.Name != "" && len(strings.TrimSpace(c.Name)) < 2 {
		errs["name"] = "Name must be at least 2 characters"
	}

	return errs
}

func requireMin(value string, min int, msg string) string {
	if len(strings.TrimSpace(value)) < min {
		return msg
	}
	return ""
}

func requireYesNo(value string) string {
	if value != "yes" && value != "no" {
		return "Please select an option"
	}
	return ""
}

func optionalURL(value string) string {
	if value == "" {
		return ""
	}
	u, err := url.Parse(value)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "Please enter a valid URL"
	}
	return ""
}
