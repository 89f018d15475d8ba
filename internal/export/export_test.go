package export

import (
	"bytes"
	"encoding/csv"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emilianohg/slotbook/internal/models"
)

func sessions() []models.Session {
	rating := 4
	done := &models.Applicant{
		Name:               "Smith, Ann",
		Phone:              "555-0001",
		Position:           models.PositionPainter,
		InterviewCompleted: true,
		Rating:             &rating,
		InterviewData: &models.InterviewRecord{
			Location:         "Ventura",
			Bilingual:        models.Yes,
			Experience:       2.5,
			Skills:           models.Skills{Painting: true, Staining: true},
			Transportation:   models.TransportTruck,
			HasTools:         models.Yes,
			OKWithPayroll:    models.Yes,
			FelonyConviction: models.No,
			OKWithWeekends:   models.No,
			Rating:           &rating,
		},
	}
	pending := &models.Applicant{Name: "Bob", Phone: "2", Position: models.PositionHelper}
	return []models.Session{
		{ID: "1", Date: "2024-06-01", Slots: []models.Slot{
			{ID: "a", IsBooked: true, Interviewee: done},
			{ID: "b", IsBooked: true, Interviewee: pending},
			{ID: "c"},
		}},
		{ID: "2", Date: "2024-06-02", Slots: []models.Slot{
			{ID: "d", IsBooked: true, Interviewee: done},
		}},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	n, err := WriteCSV(&buf, sessions(), Filter{})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, Header, records[0])
	assert.Equal(t, []string{
		"Smith, Ann", "555-0001", "2024-06-01", "Painter", "Ventura", "Yes", "2.5",
		"painting;staining", "Truck", "Yes", "Yes", "No", "No", "4",
	}, records[1])
	assert.Equal(t, "2024-06-02", records[2][2])
}

func TestFilterByDate(t *testing.T) {
	rows := Rows(sessions(), Filter{Date: "2024-06-02"})
	require.Len(t, rows, 1)
	assert.Equal(t, "2024-06-02", rows[0][2])

	assert.Empty(t, Rows(sessions(), Filter{Date: "2030-01-01"}))
}

func TestEmptyExportHasHeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	n, err := WriteCSV(&buf, nil, Filter{})
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Equal(t, strings.Join(Header, ",")+"\n", buf.String())
}

type failingWriter struct{ err error }

func (f failingWriter) Write([]byte) (int, error) { return 0, f.err }

func TestWriteCSVWrapsWriterErrors(t *testing.T) {
	diskFull := errors.New("disk full")

	_, err := WriteCSV(failingWriter{diskFull}, sessions(), Filter{})
	require.Error(t, err)
	assert.ErrorIs(t, err, diskFull)
	assert.Contains(t, err.Error(), "write csv")

	_, err = WriteCSV(failingWriter{diskFull}, nil, Filter{})
	assert.ErrorIs(t, err, diskFull)
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "interviews_2024-06-01.csv", Filename("2024-06-01"))
}
