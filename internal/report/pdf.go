package report

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/akyairhashvil/lexodoro/internal/timer"
	"github.com/go-pdf/fpdf"
)

var ErrEmptyPath = errors.New("report path is empty")

// FileName is the default report name for a summary.
func FileName(s Summary) string {
	id := strings.SplitN(s.SessionID.String(), "-", 2)[0]
	return fmt.Sprintf("lexodoro_%s_%s.pdf", s.GeneratedAt.Format("2006-01-02"), id)
}

// WritePDF renders the summary to path, creating its directory.
func WritePDF(path string, s Summary) error {
	if strings.TrimSpace(path) == "" {
		return ErrEmptyPath
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create report dir: %w", err)
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Lexodoro session report", false)
	pdf.AddPage()
	pdf.SetFont("Courier", "B", 16)
	pdf.Cell(0, 10, "<Lexodoro/> session report")
	pdf.Ln(12)

	pdf.SetFont("Courier", "", 11)
	lines := []string{
		fmt.Sprintf("session    %s", s.SessionID),
		fmt.Sprintf("started    %s", s.StartedAt.Format("2006-01-02 15:04")),
		fmt.Sprintf("generated  %s", s.GeneratedAt.Format("2006-01-02 15:04")),
		fmt.Sprintf("cadence    %d min focus / %d min break", s.FocusDuration/60, s.BreakDuration/60),
		fmt.Sprintf("cycles     %d", s.CompletedCycles),
		fmt.Sprintf("focus_min  %d", s.FocusMinutes),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}
	pdf.Ln(6)

	pdf.SetFont("Courier", "B", 12)
	pdf.Cell(0, 8, "Intervals")
	pdf.Ln(9)
	pdf.SetFont("Courier", "", 10)
	if len(s.Records) == 0 {
		pdf.Cell(0, 6, "  no intervals finished yet")
		pdf.Ln(6)
	}
	widths := []float64{12, 28, 28, 30, 24}
	header := []string{"#", "ended", "mode", "outcome", "length"}
	for i, h := range header {
		pdf.CellFormat(widths[i], 6, h, "B", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)
	for i, r := range s.Records {
		row := []string{
			fmt.Sprintf("%d", i+1),
			r.EndedAt.Format("15:04:05"),
			modeLabel(r.Mode),
			string(r.Outcome),
			timer.FormatClock(r.Seconds),
		}
		for j, cell := range row {
			pdf.CellFormat(widths[j], 6, cell, "", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	return pdf.OutputFileAndClose(path)
}

func modeLabel(m timer.Mode) string {
	if m == timer.ModeBreak {
		return "BREAK"
	}
	return "COMPILE"
}
