package models

import "strings"

type YesNo string

const (
	Yes YesNo = "Yes"
	No  YesNo = "No"
)

type Transportation string

const (
	TransportTruck Transportation = "Truck"
	TransportCar   Transportation = "Car"
	TransportNone  Transportation = "None"
)

type Skills struct {
	Painting bool `json:"painting" yaml:"painting"`
	Staining bool `json:"staining" yaml:"staining"`
	Spraying bool `json:"spraying" yaml:"spraying"`
}

// Enabled returns the names of the skills that are set, in form order.
func (s Skills) Enabled() []string {
	var names []string
	if s.Painting {
		names = append(names, "painting")
	}
	if s.Staining {
		names = append(names, "staining")
	}
	if s.Spraying {
		names = append(names, "spraying")
	}
	return names
}

// InterviewRecord holds the answers collected during an interview.
type InterviewRecord struct {
	Date              string         `json:"date,omitempty" yaml:"date"`
	Name              string         `json:"name,omitempty" yaml:"name"`
	Phone             string         `json:"phone,omitempty" yaml:"phone"`
	Location          string         `json:"location,omitempty" yaml:"location"`
	Position          Position       `json:"position,omitempty" yaml:"position"`
	Bilingual         YesNo          `json:"bilingual,omitempty" yaml:"bilingual"`
	DesiredRate       string         `json:"desiredRate,omitempty" yaml:"desired_rate"`
	StartRate         string         `json:"startRate,omitempty" yaml:"start_rate"`
	Experience        float64        `json:"experience" yaml:"experience"`
	PreviousCompanies string         `json:"previousCompanies,omitempty" yaml:"previous_companies"`
	Skills            Skills         `json:"skills" yaml:"skills"`
	Transportation    Transportation `json:"transportation,omitempty" yaml:"transportation"`
	HasTools          YesNo          `json:"hasTools,omitempty" yaml:"has_tools"`
	OKWithPayroll     YesNo          `json:"okWithPayroll,omitempty" yaml:"ok_with_payroll"`
	FelonyConviction  YesNo          `json:"felonyConviction,omitempty" yaml:"felony_conviction"`
	OKWithWeekends    YesNo          `json:"okWithWeekends,omitempty" yaml:"ok_with_weekends"`
	Hobbies           string         `json:"hobbies,omitempty" yaml:"hobbies"`
	FiredBefore       YesNo          `json:"firedBefore,omitempty" yaml:"fired_before"`
	FiringReason      string         `json:"firingReason,omitempty" yaml:"firing_reason"`
	Rating            *int           `json:"rating,omitempty" yaml:"rating"`
	Notes             string         `json:"notes,omitempty" yaml:"notes"`
}

// Validate checks the enumerated answers and the rating. Empty answers are
// allowed; the form fills defaults.
func (r *InterviewRecord) Validate() error {
	if r.Rating != nil {
		if err := ValidateRating(*r.Rating); err != nil {
			return err
		}
	}
	if r.Position != "" {
		if _, err := ParsePosition(string(r.Position)); err != nil {
			return err
		}
	}
	if r.Experience < 0 {
		return invalid("experience", "cannot be negative")
	}
	switch r.Transportation {
	case "", TransportTruck, TransportCar, TransportNone:
	default:
		return invalid("transportation", "must be Truck, Car or None")
	}
	answers := map[string]YesNo{
		"bilingual":        r.Bilingual,
		"hasTools":         r.HasTools,
		"okWithPayroll":    r.OKWithPayroll,
		"felonyConviction": r.FelonyConviction,
		"okWithWeekends":   r.OKWithWeekends,
		"firedBefore":      r.FiredBefore,
	}
	for field, v := range answers {
		if v != "" && v != Yes && v != No {
			return invalid(field, "must be Yes or No")
		}
	}
	return nil
}

// SkillList joins the enabled skills with sep.
func (r *InterviewRecord) SkillList(sep string) string {
	return strings.Join(r.Skills.Enabled(), sep)
}

// Clone returns a deep copy of the record.
func (r *InterviewRecord) Clone() *InterviewRecord {
	if r == nil {
		return nil
	}
	c := *r
	if r.Rating != nil {
		v := *r.Rating
		c.Rating = &v
	}
	return &c
}
