// Package export renders candidate records as spreadsheets.
package export

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"interviewd/internal/model"
)

const (
	CandidatesSheet = "Candidates"
	AnswersSheet    = "Answers"
)

var (
	candidateHeader = []interface{}{"ID", "Name", "Email", "Phone", "Status", "Score", "Answers", "Summary", "Created At", "Updated At"}
	answerHeader    = []interface{}{"Candidate Email", "#", "Question", "Answer", "Score", "Feedback"}
)

// WriteCandidates writes an .xlsx workbook with one row per candidate and one
// row per recorded answer.
func WriteCandidates(w io.Writer, candidates []*model.Candidate) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", CandidatesSheet); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}
	if _, err := f.NewSheet(AnswersSheet); err != nil {
		return fmt.Errorf("failed to create answers sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	if err := writeCandidateSheet(f, candidates, headerStyle); err != nil {
		return fmt.Errorf("failed to write candidates sheet: %w", err)
	}
	if err := writeAnswerSheet(f, candidates, headerStyle); err != nil {
		return fmt.Errorf("failed to write answers sheet: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeCandidateSheet(f *excelize.File, candidates []*model.Candidate, headerStyle int) error {
	if err := writeHeader(f, CandidatesSheet, candidateHeader, headerStyle); err != nil {
		return err
	}
	f.SetColWidth(CandidatesSheet, "A", "A", 26)
	f.SetColWidth(CandidatesSheet, "B", "C", 28)
	f.SetColWidth(CandidatesSheet, "H", "H", 60)

	for i, c := range candidates {
		row := []interface{}{
			c.ID, c.Name, c.Email, c.Phone, string(c.Status), c.Score, len(c.Answers), c.Summary,
			formatTime(c.CreatedAt), formatTime(c.UpdatedAt),
		}
		if err := f.SetSheetRow(CandidatesSheet, fmt.Sprintf("A%d", i+2), &row); err != nil {
			return err
		}
	}
	return nil
}

func writeAnswerSheet(f *excelize.File, candidates []*model.Candidate, headerStyle int) error {
	if err := writeHeader(f, AnswersSheet, answerHeader, headerStyle); err != nil {
		return err
	}
	f.SetColWidth(AnswersSheet, "C", "D", 50)
	f.SetColWidth(AnswersSheet, "F", "F", 50)

	rowNum := 2
	for _, c := range candidates {
		for i, a := range c.Answers {
			row := []interface{}{c.Email, i + 1, a.Question, a.Answer, a.Score, a.Feedback}
			if err := f.SetSheetRow(AnswersSheet, fmt.Sprintf("A%d", rowNum), &row); err != nil {
				return err
			}
			rowNum++
		}
	}
	return nil
}

func writeHeader(f *excelize.File, sheet string, header []interface{}, style int) error {
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, "A1", last, style)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
