// Package gofpdf renders search reports as PDF documents using
// github.com/jung-kurt/gofpdf.
package gofpdf

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/fwojciec/causelist"
)

// Ensure ReportWriter implements causelist.ReportWriter at compile time.
var _ causelist.ReportWriter = (*ReportWriter)(nil)

// ReportWriter renders reports as A4 PDF documents laid out after the
// court's printed daily list.
type ReportWriter struct{}

// NewReportWriter creates a new ReportWriter.
func NewReportWriter() *ReportWriter {
	return &ReportWriter{}
}

// WriteReport renders the report and writes the PDF to w.
func (rw *ReportWriter) WriteReport(w io.Writer, rep *causelist.Report) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	pdf.SetFont("Times", "B", 20)
	pdf.CellFormat(0, 10, "In The High Court at Calcutta", "", 1, "C", false, 0, "")
	pdf.SetFont("Times", "", 14)
	pdf.CellFormat(0, 8, rep.Side.Jurisdiction(), "", 1, "C", false, 0, "")
	pdf.Ln(2)
	pdf.SetFont("Times", "I", 12)
	pdf.CellFormat(0, 7, "Daily Supplementary List Of Cases For Hearing On "+rep.Date.Header(), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 11)
	if len(rep.Entries) == 0 {
		pdf.MultiCell(0, 6, fmt.Sprintf("No matches found for %q", rep.Advocate), "", "L", false)
		return pdf.Output(w)
	}
	pdf.MultiCell(0, 6, fmt.Sprintf("Found %d match(es) for %q", len(rep.Entries), rep.Advocate), "", "L", false)
	pdf.Ln(2)

	for _, entry := range rep.Entries {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 7, fmt.Sprintf("Page %d", entry.PageNumber), "", 1, "L", false, 0, "")
		pdf.SetFont("Courier", "", 9)
		for _, line := range entry.Lines {
			pdf.MultiCell(0, 4.5, line, "", "L", false)
		}
		pdf.Ln(3)
	}

	return pdf.Output(w)
}
