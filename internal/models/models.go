package models

type Session struct {
	ID        string    `json:"id"`
	Date      Date      `json:"date"`
	StartTime TimeOfDay `json:"startTime"`
	EndTime   TimeOfDay `json:"endTime"`
	Slots     []Slot    `json:"slots"`
}

type Slot struct {
	ID          string     `json:"id"`
	Time        TimeOfDay  `json:"time"`
	IsBooked    bool       `json:"isBooked"`
	Interviewee *Applicant `json:"interviewee,omitempty"`
}

type Applicant struct {
	Name               string           `json:"name"`
	Phone              string           `json:"phone"`
	Position           Position         `json:"position"`
	Confirmed          bool             `json:"confirmed"`
	InterviewCompleted bool             `json:"interviewCompleted"`
	InterviewData      *InterviewRecord `json:"interviewData,omitempty"`
	Rating             *int             `json:"rating,omitempty"`
	StartRate          string           `json:"startRate,omitempty"`

	// Derived on every read, never persisted
	IsDuplicate bool `json:"-"`
}

// Intake is what an applicant supplies when booking a slot.
type Intake struct {
	Name     string
	Phone    string
	Position Position
}

type ShortlistEntry struct {
	Name          string
	Phone         string
	Position      Position
	StartRate     string
	Rating        int
	InterviewDate Date
	SessionID     string
}
