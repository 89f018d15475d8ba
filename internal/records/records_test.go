package records

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emilianohg/slotbook/internal/apperr"
	"github.com/emilianohg/slotbook/internal/models"
)

func TestDecodeOntoPrefilled(t *testing.T) {
	record := models.InterviewRecord{Name: "Alice", Position: models.PositionPainter, HasTools: models.No}
	doc := `
location: Ventura
start_rate: "$20"
experience: 3
has_tools: "Yes"
skills:
  painting: true
  spraying: true
rating: 5
`
	require.NoError(t, Decode(strings.NewReader(doc), &record))

	assert.Equal(t, "Alice", record.Name)
	assert.Equal(t, models.PositionPainter, record.Position)
	assert.Equal(t, "Ventura", record.Location)
	assert.Equal(t, "$20", record.StartRate)
	assert.Equal(t, 3.0, record.Experience)
	assert.Equal(t, models.Yes, record.HasTools)
	assert.Equal(t, "painting;spraying", record.SkillList(";"))
	require.NotNil(t, record.Rating)
	assert.Equal(t, 5, *record.Rating)
}

func TestDecodeRejects(t *testing.T) {
	var record models.InterviewRecord
	assert.ErrorIs(t, Decode(strings.NewReader("rating: 7\n"), &record), apperr.ErrInvalidRating)

	record = models.InterviewRecord{}
	assert.Error(t, Decode(strings.NewReader("ratng: 3\n"), &record), "unknown keys are rejected")
}

func TestDecodeEmptyKeepsRecord(t *testing.T) {
	record := models.InterviewRecord{Name: "Bob"}
	require.NoError(t, Decode(strings.NewReader(""), &record))
	assert.Equal(t, "Bob", record.Name)
}

func TestEncodeThenLoadFile(t *testing.T) {
	rating := 4
	in := models.InterviewRecord{Name: "Ann", Bilingual: models.Yes, Rating: &rating, Notes: "punctual"}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, &in))
	assert.Contains(t, buf.String(), "notes: punctual")

	path := filepath.Join(t.TempDir(), "record.yaml")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))

	var out models.InterviewRecord
	require.NoError(t, LoadFile(path, &out))
	assert.Equal(t, in, out)
}
