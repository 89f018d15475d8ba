package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/emilianohg/slotbook/internal/models"
)

var Header = []string{
	"Name",
	"Phone",
	"Interview Date",
	"Position",
	"Location",
	"Bilingual",
	"Experience",
	"Skills",
	"Transportation",
	"Has Tools",
	"OK with Payroll",
	"Felony Conviction",
	"OK with Weekends",
	"Rating",
}

// Filter narrows the export. The zero value exports everything.
type Filter struct {
	Date models.Date
}

// Rows projects the completed interviews of sessions into export columns.
func Rows(sessions []models.Session, filter Filter) [][]string {
	var rows [][]string
	for _, s := range sessions {
		if filter.Date != "" && s.Date != filter.Date {
			continue
		}
		for _, slot := range s.Slots {
			a := slot.Interviewee
			if !slot.IsBooked || a == nil || !a.InterviewCompleted || a.InterviewData == nil {
				continue
			}
			rows = append(rows, row(s, a))
		}
	}
	return rows
}

func row(s models.Session, a *models.Applicant) []string {
	d := a.InterviewData
	position := d.Position
	if position == "" {
		position = a.Position
	}
	rating := ""
	switch {
	case d.Rating != nil:
		rating = strconv.Itoa(*d.Rating)
	case a.Rating != nil:
		rating = strconv.Itoa(*a.Rating)
	}
	return []string{
		a.Name,
		a.Phone,
		string(s.Date),
		string(position),
		d.Location,
		string(d.Bilingual),
		strconv.FormatFloat(d.Experience, 'f', -1, 64),
		d.SkillList(";"),
		string(d.Transportation),
		string(d.HasTools),
		string(d.OKWithPayroll),
		string(d.FelonyConviction),
		string(d.OKWithWeekends),
		rating,
	}
}

// WriteCSV writes the header and one line per completed interview. It
// returns the number of interviews written.
func WriteCSV(w io.Writer, sessions []models.Session, filter Filter) (int, error) {
	rows := Rows(sessions, filter)

	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return 0, fmt.Errorf("write csv header: %w", err)
	}
	if err := cw.WriteAll(rows); err != nil {
		return 0, fmt.Errorf("write csv: %w", err)
	}
	return len(rows), nil
}

// Filename is the download name for an export made on date.
func Filename(date models.Date) string {
	return fmt.Sprintf("interviews_%s.csv", date)
}
