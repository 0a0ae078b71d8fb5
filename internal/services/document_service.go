package services

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/catalys/platform/internal/config"
	"github.com/catalys/platform/internal/models"
	"github.com/jung-kurt/gofpdf"
)

type DocumentService struct {
	config *config.Config
}

func NewDocumentService(cfg *config.Config) *DocumentService {
	return &DocumentService{config: cfg}
}

// GenerateApplicationPDF renders a startup's submitted application as a PDF
// and returns the saved file path.
func (s *DocumentService) GenerateApplicationPDF(startup *models.Startup, founder *models.User, coFounders []models.CoFounderInvitation) (string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	// Header
	pdf.SetFont("Arial", "B", 20)
	pdf.CellFormat(190, 12, "STARTUP APPLICATION", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(190, 8, startup.Name, "", 1, "C", false, 0, "")
	pdf.Ln(8)

	// Company
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(190, 8, "COMPANY")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 10)

	pdf.Cell(60, 6, "Name:")
	pdf.Cell(130, 6, startup.Name)
	pdf.Ln(6)

	pdf.Cell(60, 6, "Tagline:")
	pdf.Cell(130, 6, startup.ShortDescription)
	pdf.Ln(6)

	pdf.Cell(60, 6, "Category:")
	pdf.Cell(130, 6, startup.Category)
	pdf.Ln(6)

	if startup.Website != "" {
		pdf.Cell(60, 6, "Website:")
		pdf.Cell(130, 6, startup.Website)
		pdf.Ln(6)
	}

	pdf.Cell(60, 6, "Future location:")
	pdf.Cell(130, 6, startup.FutureLocation)
	pdf.Ln(6)

	pdf.Cell(60, 6, "Founder:")
	pdf.Cell(130, 6, fmt.Sprintf("%s (%s)", founder.Name, founder.Email))
	pdf.Ln(10)

	// Narrative sections
	sections := []struct {
		title string
		body  string
	}{
		{"WHAT WE'RE MAKING", startup.Description},
		{"WHY THIS IDEA", startup.WhyThisIdea},
		{"CUSTOMER NEED", startup.CustomerNeed},
		{"COMPETITORS", startup.Competitors},
		{"BUSINESS MODEL", startup.Monetization},
		{"PROGRESS", startup.HowFarAlong},
		{"WORKING TIME", startup.WorkingTime},
		{"TECH STACK", startup.TechStack},
	}

	for _, section := range sections {
		if section.body == "" {
			continue
		}
		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(190, 8, section.title)
		pdf.Ln(8)
		pdf.SetFont("Arial", "", 10)
		pdf.MultiCell(190, 5, section.body, "", "", false)
		pdf.Ln(4)
	}

	// Status
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(190, 8, "STATUS")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 10)

	pdf.Cell(60, 6, "People using product:")
	pdf.Cell(130, 6, yesNo(startup.PeopleUsing))
	pdf.Ln(6)
	pdf.Cell(60, 6, "Has revenue:")
	pdf.Cell(130, 6, yesNo(startup.HasRevenue))
	pdf.Ln(6)
	pdf.Cell(60, 6, "Legal entity:")
	pdf.Cell(130, 6, yesNo(startup.HasLegalEntity))
	pdf.Ln(6)
	pdf.Cell(60, 6, "Investment taken:")
	pdf.Cell(130, 6, yesNo(startup.InvestmentTaken))
	pdf.Ln(6)
	pdf.Cell(60, 6, "Currently fundraising:")
	pdf.Cell(130, 6, yesNo(startup.CurrentlyFundraising))
	pdf.Ln(10)

	// Team
	if len(coFounders) > 0 {
		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(190, 8, "CO-FOUNDERS")
		pdf.Ln(8)
		pdf.SetFont("Arial", "", 10)

		for _, coFounder := range coFounders {
			name := coFounder.Name
			if name == "" {
				name = coFounder.Email
			}
			pdf.Cell(190, 6, fmt.Sprintf("%s - %s (%.1f%% equity, %s)",
				name, coFounder.Role, coFounder.EquityPercentage, coFounder.InvitationStatus))
			pdf.Ln(6)
		}
		pdf.Ln(4)
	}

	// Footer
	pdf.SetFont("Arial", "I", 8)
	pdf.MultiCell(190, 4, fmt.Sprintf("Generated via the %s platform on %s.",
		s.config.AppName, time.Now().Format("January 2, 2006")), "", "", false)

	// Save PDF
	docsDir := filepath.Join(s.config.UploadDir, "documents", "applications")
	if err := os.MkdirAll(docsDir, 0755); err != nil {
		return "", err
	}

	filename := fmt.Sprintf("application_%s_%s.pdf", startup.Slug, time.Now().Format("20060102"))
	filePath := filepath.Join(docsDir, filename)

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", err
	}

	return filePath, nil
}

func yesNo(value bool) string {
	if value {
		return "Yes"
	}
	return "No"
}
