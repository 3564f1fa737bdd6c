// Package event holds the calendar event shapes shared by the classification pipeline
package event

// Type is the detected communication kind
type Type string

const (
	// TypeCall is a phone call log entry
	TypeCall Type = "call"
	// TypeSMS is a text message log entry
	TypeSMS Type = "sms"
	// TypeUnknown never leaves the pipeline
	TypeUnknown Type = "unknown"
)

// UnknownContact is shown when no contact name can be extracted
const UnknownContact = "Neznámý kontakt"

// Start is the provider start block; exactly one of DateTime or Date is usually set
type Start struct {
	// DateTime is RFC3339 with offset for timed events
	DateTime string `json:"dateTime,omitempty"`
	// Date is YYYY-MM-DD for all-day events
	Date string `json:"date,omitempty"`
}

// Raw is a calendar event as fetched from the provider
type Raw struct {
	ID          string `json:"id"`
	Summary     string `json:"summary"`
	Description string `json:"description"`
	Start       Start  `json:"start"`
}

// Timed reports whether the event carries an instant rather than a date
func (r Raw) Timed() bool { return r.Start.DateTime != "" }

// Normalized is the classified, display ready communication record
type Normalized struct {
	ID                  string `json:"id"                  example:"4k2j9f0c1b"`
	Date                string `json:"date"                example:"2024-05-01"`
	Time                string `json:"time"                example:"10:00"`
	Type                Type   `json:"type"                example:"call"`
	Contact             string `json:"contact"             example:"Jan Novák"`
	Phone               string `json:"phone"               example:"+420111222333"`
	PhoneE164           string `json:"phoneE164,omitempty" example:"+420111222333"`
	Duration            string `json:"duration"            example:"5 min"`
	Content             string `json:"content"             example:"délka: 5 min, telefon: +420111222333"`
	OriginalTitle       string `json:"originalTitle"       example:"Hovor - Jan Novák"`
	OriginalDescription string `json:"originalDescription" example:"délka: 5 min, telefon: +420111222333"`
}

// Known reports whether the record was classified as a call or sms
func (n Normalized) Known() bool { return n.Type == TypeCall || n.Type == TypeSMS }
