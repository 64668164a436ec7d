package report

import (
	"fmt"

	"github.com/go-pdf/fpdf"
)

// PDFRenderer draws the composed block sequence onto an A4 document with
// fpdf. It makes no data decisions; truncation and fallbacks happen in the
// composer.
type PDFRenderer struct{}

// NewPDFRenderer returns the production renderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Render writes the document to path, reporting the first drawing error.
func (r *PDFRenderer) Render(path string, blocks []Block) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(true, 15)
	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont("Helvetica", "", 7)
		pdf.SetTextColor(144, 164, 174)
		pdf.CellFormat(0, 6, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	for _, block := range blocks {
		switch b := block.(type) {
		case TitleBlock:
			r.title(pdf, b)
		case RecordBlock:
			r.record(pdf, b)
		case StatsBlock:
			r.statistics(pdf, b)
		case TrendBlock:
			r.trend(pdf, b)
		case RecommendationsBlock:
			r.recommendations(pdf, b)
		case PageBreakBlock:
			pdf.AddPage()
		}
	}

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("draw report: %w", err)
	}
	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write report to %s: %w", path, err)
	}
	return nil
}

func (r *PDFRenderer) title(pdf *fpdf.Fpdf, b TitleBlock) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(26, 35, 126)
	pdf.CellFormat(0, 10, b.Text, "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(55, 71, 79)
	meta := fmt.Sprintf("Date: %s  |  By: %s  |  Respondents: %d", b.GeneratedOn, b.GeneratedBy, b.Total)
	pdf.CellFormat(0, 6, meta, "", 1, "L", false, 0, "")
	pdf.Ln(4)
}

func (r *PDFRenderer) record(pdf *fpdf.Fpdf, b RecordBlock) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetTextColor(55, 71, 79)
	pdf.CellFormat(0, 6, fmt.Sprintf("RESPONDENT #%d", b.Index), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.MultiCell(0, 5, fmt.Sprintf("Date: %s\nName: %s\nLocation: %s", b.Date, b.Name, b.Location), "", "L", false)
	pdf.MultiCell(0, 5, fmt.Sprintf(
		"Quality: %s (%d/%d)\nTimeliness: %s (%d/%d)\nService: %s (%d/%d)\nOverall: %s (%d/%d)",
		b.Quality.Label, b.Quality.Value, b.Quality.Max,
		b.Timeliness.Label, b.Timeliness.Value, b.Timeliness.Max,
		b.Service.Label, b.Service.Value, b.Service.Max,
		b.Overall.Label, b.Overall.Value, b.Overall.Max,
	), "", "L", false)

	pdf.SetFont("Helvetica", "I", 9)
	pdf.SetTextColor(84, 110, 122)
	pdf.MultiCell(0, 5, fmt.Sprintf("\"%s\"", b.Comments), "", "L", false)
	pdf.SetTextColor(55, 71, 79)
	pdf.Ln(3)
}

func (r *PDFRenderer) statistics(pdf *fpdf.Fpdf, b StatsBlock) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(26, 35, 126)
	pdf.CellFormat(0, 8, "STATISTICAL ANALYSIS", "", 1, "C", false, 0, "")
	pdf.Ln(3)

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(55, 71, 79)
	pdf.MultiCell(0, 5, fmt.Sprintf(
		"Total respondents: %d\nPeriod: %s - %s\n\nAverage ratings:\nQuality: %.2f/5 (%.1f%%)\nTimeliness: %.2f/5 (%.1f%%)\nService: %.2f/5 (%.1f%%)\nOverall: %.2f/10 (%.1f%%)",
		b.Total, b.PeriodFrom, b.PeriodTo,
		b.Averages.Quality, b.Averages.Quality/5*100,
		b.Averages.Timeliness, b.Averages.Timeliness/5*100,
		b.Averages.Service, b.Averages.Service/5*100,
		b.Averages.Overall, b.Averages.Overall/10*100,
	), "", "L", false)
	pdf.Ln(4)
}

func (r *PDFRenderer) trend(pdf *fpdf.Fpdf, b TrendBlock) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, 6, "RECENT TREND", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.MultiCell(0, 5, fmt.Sprintf(
		"Last 3 surveys: %.2f/10\nAll data: %.2f/10\nTrend: %s",
		b.Recent, b.Baseline, b.Direction), "", "L", false)
	pdf.Ln(4)
}

func (r *PDFRenderer) recommendations(pdf *fpdf.Fpdf, b RecommendationsBlock) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, 6, "RECOMMENDATIONS", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	for i, item := range b.Items {
		pdf.MultiCell(0, 5, fmt.Sprintf("%d. %s", i+1, item), "", "L", false)
	}
}
