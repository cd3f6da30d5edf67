package monitoring

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
)

// WritePDF renders dashboard rows as a one-page-per-40-rows report.
func WritePDF(w io.Writer, evaluationName string, rows []Row) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Evaluation Monitoring Report")
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Evaluation: %s", evaluationName))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 10)
	writeHeader(pdf)
	pdf.SetFont("Helvetica", "", 10)
	for i, row := range rows {
		if i > 0 && i%40 == 0 {
			pdf.AddPage()
			pdf.SetFont("Helvetica", "B", 10)
			writeHeader(pdf)
			pdf.SetFont("Helvetica", "", 10)
		}
		pdf.CellFormat(45, 7, row.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(35, 7, row.Team, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 7, fmt.Sprintf("%d/%d", row.SubmittedCount, row.AssignmentCount), "1", 0, "C", false, 0, "")
		pdf.CellFormat(25, 7, row.Severity, "1", 0, "C", false, 0, "")
		pdf.CellFormat(25, 7, formatScore(row.FinalScore), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}
	return pdf.Output(w)
}

func writeHeader(pdf *gofpdf.Fpdf) {
	pdf.CellFormat(45, 7, "Name", "1", 0, "L", false, 0, "")
	pdf.CellFormat(35, 7, "Team", "1", 0, "L", false, 0, "")
	pdf.CellFormat(30, 7, "Submitted", "1", 0, "C", false, 0, "")
	pdf.CellFormat(25, 7, "Severity", "1", 0, "C", false, 0, "")
	pdf.CellFormat(25, 7, "Final", "1", 0, "R", false, 0, "")
	pdf.Ln(-1)
}

func formatScore(score *float64) string {
	if score == nil {
		return "-"
	}
	return fmt.Sprintf("%.1f", *score)
}
