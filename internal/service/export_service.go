package service

import (
	"fmt"
	"strings"

	"github.com/smartcourse/advisor-api/internal/models"
	appErrors "github.com/smartcourse/advisor-api/pkg/errors"
	"github.com/smartcourse/advisor-api/pkg/export"
)

const (
	// FormatCSV and FormatPDF are the supported export formats.
	FormatCSV = "csv"
	FormatPDF = "pdf"
)

// ExportService renders degree audits and recommendation lists into
// downloadable documents.
type ExportService struct {
	csv *export.CSVExporter
	pdf *export.PDFExporter
}

// NewExportService constructs an ExportService.
func NewExportService() *ExportService {
	return &ExportService{
		csv: export.NewCSVExporter(),
		pdf: export.NewPDFExporter(),
	}
}

// ProgressReport renders a graduation progress summary. It returns the
// payload and its content type.
func (s *ExportService) ProgressReport(progress models.GraduationProgress, format string) ([]byte, string, error) {
	dataset := export.Dataset{
		Headers: []string{"Category", "Completed", "Required", "Status"},
	}
	for _, category := range progress.Categories {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"Category":  category.Category,
			"Completed": fmt.Sprintf("%d", category.CompletedCredits),
			"Required":  fmt.Sprintf("%d", category.RequiredCredits),
			"Status":    string(category.Status),
		})
	}
	dataset.Rows = append(dataset.Rows, map[string]string{
		"Category":  "Total",
		"Completed": fmt.Sprintf("%d", progress.CompletedCredits),
		"Required":  fmt.Sprintf("%d", progress.RequiredCredits),
		"Status":    fmt.Sprintf("%.0f%%", progress.Percentage),
	})

	title := fmt.Sprintf("Graduation Progress - %s", progress.UniversityName)
	return s.render(dataset, title, format)
}

// RecommendationReport renders a recommendation list.
func (s *ExportService) RecommendationReport(items []models.CourseWithReason, format string) ([]byte, string, error) {
	dataset := export.Dataset{
		Headers: []string{"Code", "Name", "Credits", "Category", "Reason"},
	}
	for _, item := range items {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"Code":     item.Code,
			"Name":     item.Name,
			"Credits":  fmt.Sprintf("%d", item.Credits),
			"Category": item.Category,
			"Reason":   item.Reason,
		})
	}
	return s.render(dataset, "Course Recommendations", format)
}

func (s *ExportService) render(dataset export.Dataset, title, format string) ([]byte, string, error) {
	switch strings.ToLower(format) {
	case FormatCSV:
		payload, err := s.csv.Render(dataset)
		if err != nil {
			return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "csv export failed")
		}
		return payload, "text/csv", nil
	case FormatPDF:
		payload, err := s.pdf.Render(dataset, title)
		if err != nil {
			return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "pdf export failed")
		}
		return payload, "application/pdf", nil
	default:
		return nil, "", appErrors.Clone(appErrors.ErrValidation, "format must be csv or pdf")
	}
}
