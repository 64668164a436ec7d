package handlers

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/lyonikaaisyah/Revisi-Aplikasi-Survey/internal/service"
)

// ReportsHandler exposes statistics and report export, both admin only.
type ReportsHandler struct {
	reports *service.ReportService
}

// NewReportsHandler constructs handler.
func NewReportsHandler(reportService *service.ReportService) *ReportsHandler {
	return &ReportsHandler{reports: reportService}
}

// Stats handles GET /stats.
func (h *ReportsHandler) Stats(c *fiber.Ctx) error {
	summary, err := h.reports.Statistics(c.UserContext(), currentSession(c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": summary})
}

// Export handles GET /reports/export. The PDF is rendered to a temporary
// file and streamed back as a download.
func (h *ReportsHandler) Export(c *fiber.Ctx) error {
	name := fmt.Sprintf("survey_report_%s.pdf", time.Now().Format("20060102_150405"))
	path := filepath.Join(os.TempDir(), name)
	defer os.Remove(path)

	result, err := h.reports.Export(c.UserContext(), currentSession(c), path)
	if err != nil {
		return err
	}

	// The temp file is removed when the handler returns, so the document
	// is read into memory before responding.
	payload, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", name))
	c.Set("X-Report-Pages", fmt.Sprintf("%d", result.PageCount))
	c.Set("X-Report-Records", fmt.Sprintf("%d", result.Total))
	return c.Send(payload)
}
