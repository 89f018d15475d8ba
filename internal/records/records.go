// Package records reads interview answers written by hand in YAML.
package records

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/emilianohg/slotbook/internal/models"
)

// Decode reads YAML from r onto record. Keys missing from the document keep
// the value record already had, so a prefilled record can be completed with
// only the answers that changed.
func Decode(r io.Reader, record *models.InterviewRecord) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(record); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse interview record: %w", err)
	}
	return record.Validate()
}

// LoadFile decodes the file at path onto record.
func LoadFile(path string, record *models.InterviewRecord) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return Decode(f, record)
}

// Encode writes record as YAML, the template a caller edits before LoadFile.
func Encode(w io.Writer, record *models.InterviewRecord) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(record); err != nil {
		return err
	}
	return enc.Close()
}
