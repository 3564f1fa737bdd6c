package normalize

import (
	"testing"
	"time"
	_ "time/tzdata"

	"commlog/internal/core/event"
)

func prague(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Prague")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	return loc
}

func TestNormalize_CallEndToEnd(t *testing.T) {
	n := New(prague(t))
	got := n.Normalize(event.Raw{
		ID:          "ev1",
		Summary:     "Hovor - Jan Novák",
		Description: "délka: 5 min, telefon: +420111222333",
		Start:       event.Start{DateTime: "2024-05-01T10:00:00+02:00"},
	})

	want := event.Normalized{
		ID:                  "ev1",
		Date:                "2024-05-01",
		Time:                "10:00",
		Type:                event.TypeCall,
		Contact:             "Jan Novák",
		Phone:               "+420111222333",
		Duration:            "5 min",
		Content:             "délka: 5 min, telefon: +420111222333",
		OriginalTitle:       "Hovor - Jan Novák",
		OriginalDescription: "délka: 5 min, telefon: +420111222333",
	}
	if got != want {
		t.Fatalf("normalize mismatch\n got %+v\nwant %+v", got, want)
	}
}

func TestNormalize_Table(t *testing.T) {
	n := New(prague(t))

	tests := []struct {
		name     string
		in       event.Raw
		typ      event.Type
		contact  string
		phone    string
		duration string
		content  string
	}{
		{
			name:    "call beats sms",
			in:      event.Raw{Summary: "Call about SMS"},
			typ:     event.TypeCall,
			contact: "about SMS",
		},
		{
			name:    "sms strips phone line from content",
			in:      event.Raw{Summary: "SMS - Petr (mobil)", Description: "telefon: 777123456\nAhoj, zavolej mi."},
			typ:     event.TypeSMS,
			contact: "Petr",
			phone:   "777123456",
			content: "Ahoj, zavolej mi.",
		},
		{
			name:    "sms with only a phone line falls back to description",
			in:      event.Raw{Summary: "Zpráva: Eva", Description: "telefon: +420 123 456 789"},
			typ:     event.TypeSMS,
			contact: "Eva",
			phone:   "+420123456789",
			content: "telefon: +420 123 456 789",
		},
		{
			name:     "duration minut matches min first",
			in:       event.Raw{Summary: "Volání: Karel", Description: "Trvání: 12 minut"},
			typ:      event.TypeCall,
			contact:  "Karel",
			duration: "12 min",
			content:  "Trvání: 12 minut",
		},
		{
			name:     "duration seconds",
			in:       event.Raw{Summary: "Call", Description: "duration 45 s"},
			typ:      event.TypeCall,
			contact:  event.UnknownContact,
			duration: "45 s",
			content:  "duration 45 s",
		},
		{
			name:    "bare phone in title and description",
			in:      event.Raw{Summary: "Call from office", Description: "reach me on +420 602 123 456"},
			typ:     event.TypeCall,
			contact: "from office",
			phone:   "+420602123456",
			content: "reach me on +420 602 123 456",
		},
		{
			name:    "classification is case sensitive",
			in:      event.Raw{Summary: "hovor s Janem"},
			typ:     event.TypeUnknown,
			contact: event.UnknownContact,
		},
		{
			name:    "nbsp between label and number",
			in:      event.Raw{Summary: "Hovor\u00a0-\u00a0Jan", Description: "telefon:\u00a0+420\u00a0111\u00a0222\u00a0333"},
			typ:     event.TypeCall,
			contact: "Jan",
			phone:   "+420111222333",
			content: "telefon:\u00a0+420\u00a0111\u00a0222\u00a0333",
		},
		{
			name:     "nbsp before duration",
			in:       event.Raw{Summary: "Call", Description: "délka:\u00a05\u00a0min"},
			typ:      event.TypeCall,
			contact:  event.UnknownContact,
			duration: "5\u00a0min",
			content:  "délka:\u00a05\u00a0min",
		},
		{
			name:    "sms phone line with nbsp is stripped",
			in:      event.Raw{Summary: "SMS Eva", Description: "Ahoj\ntelefon:\u00a0+420 111 222 333"},
			typ:     event.TypeSMS,
			contact: "Eva",
			phone:   "+420111222333",
			content: "Ahoj",
		},
		{
			name:    "labeled phone wins over bare",
			in:      event.Raw{Summary: "Message 111 222 333 444", Description: "Phone: 602 (111) 222"},
			typ:     event.TypeSMS,
			contact: "111 222 333 444",
			phone:   "602111222",
			content: "Phone: 602 (111) 222",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := n.Normalize(tc.in)
			if got.Type != tc.typ {
				t.Fatalf("type got %q want %q", got.Type, tc.typ)
			}
			if got.Contact != tc.contact {
				t.Fatalf("contact got %q want %q", got.Contact, tc.contact)
			}
			if got.Phone != tc.phone {
				t.Fatalf("phone got %q want %q", got.Phone, tc.phone)
			}
			if got.Duration != tc.duration {
				t.Fatalf("duration got %q want %q", got.Duration, tc.duration)
			}
			if got.Content != tc.content {
				t.Fatalf("content got %q want %q", got.Content, tc.content)
			}
		})
	}
}

func TestNormalize_ZeroValueIsTotal(t *testing.T) {
	var n Normalizer
	got := n.Normalize(event.Raw{})
	if got.Type != event.TypeUnknown {
		t.Fatalf("type %q", got.Type)
	}
	if got.Contact != event.UnknownContact {
		t.Fatalf("contact %q", got.Contact)
	}
	if got.Time != "00:00" {
		t.Fatalf("time %q", got.Time)
	}
	if got.Phone != "" || got.PhoneE164 != "" || got.Duration != "" || got.Content != "" || got.Date != "" {
		t.Fatalf("expected empty fields, got %+v", got)
	}
}

func TestNormalize_DateAndTime(t *testing.T) {
	loc := prague(t)
	tests := []struct {
		name      string
		loc       *time.Location
		start     event.Start
		date, tod string
	}{
		{"all day", loc, event.Start{Date: "2024-05-02"}, "2024-05-02", "00:00"},
		{"timed utc rendered in prague", loc, event.Start{DateTime: "2024-01-10T08:30:00Z"}, "2024-01-10", "09:30"},
		{"nil location is utc", nil, event.Start{DateTime: "2024-05-01T10:00:00+02:00"}, "2024-05-01", "08:00"},
		{"unparseable keeps date prefix", loc, event.Start{DateTime: "2024-05-01Tgarbage"}, "2024-05-01", "00:00"},
		{"datetime wins over date", loc, event.Start{DateTime: "2024-05-01T23:15:00+02:00", Date: "1999-01-01"}, "2024-05-01", "23:15"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			n := New(tc.loc)
			got := n.Normalize(event.Raw{Summary: "Hovor", Start: tc.start})
			if got.Date != tc.date || got.Time != tc.tod {
				t.Fatalf("got %s %s want %s %s", got.Date, got.Time, tc.date, tc.tod)
			}
		})
	}
}

func TestNormalize_PhoneE164(t *testing.T) {
	n := New(time.UTC)

	got := n.Normalize(event.Raw{Summary: "SMS Petr", Description: "telefon: 777 123 456\nahoj"})
	if got.Phone != "777123456" {
		t.Fatalf("phone %q", got.Phone)
	}
	if got.PhoneE164 != "+420777123456" {
		t.Fatalf("phoneE164 %q", got.PhoneE164)
	}

	got = n.Normalize(event.Raw{Summary: "Hovor", Description: "telefon: +420111222333"})
	if got.PhoneE164 != "" {
		t.Fatalf("invalid number should not be enriched, got %q", got.PhoneE164)
	}
}

func TestNormalizeAll_DropsUnknown(t *testing.T) {
	n := New(time.UTC)
	in := []event.Raw{
		{ID: "a", Summary: "Hovor - A"},
		{ID: "b", Summary: "Meeting", Description: "telefon: 123"},
		{ID: "c", Summary: "SMS - C"},
	}
	got := n.NormalizeAll(in)
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "c" {
		t.Fatalf("unexpected %+v", got)
	}
	if out := n.NormalizeAll(nil); out == nil || len(out) != 0 {
		t.Fatalf("want empty non nil slice, got %#v", out)
	}
}

func TestClassify(t *testing.T) {
	cases := []struct {
		in   string
		want event.Type
	}{
		{"Hovor", event.TypeCall},
		{"Volání od mámy", event.TypeCall},
		{"Zpráva", event.TypeSMS},
		{"New Message", event.TypeSMS},
		{"SMS and Call", event.TypeCall},
		{"sms", event.TypeUnknown},
		{"", event.TypeUnknown},
	}
	for _, c := range cases {
		if got := Classify(c.in); got != c.want {
			t.Errorf("Classify(%q) = %q want %q", c.in, got, c.want)
		}
	}
}

func TestLower(t *testing.T) {
	cases := []struct{ in, want string }{
		{"", ""},
		{"VOLÁNÍ", "volání"},
		{"Zpráva SMS", "zpráva sms"},
		{"already low", "already low"},
		{"ŽLUŤOUČKÝ KŮŇ", "žluťoučký kůň"},
	}
	for _, c := range cases {
		if got := Lower(c.in); got != c.want {
			t.Errorf("Lower(%q) = %q want %q", c.in, got, c.want)
		}
	}
}

func TestStripPhone(t *testing.T) {
	tests := map[string]string{
		" +420 (602) 111-222\n":              "+420602111222",
		"+420\u00a0602\u2009111\ufeff222": "+420602111222",
	}
	for in, want := range tests {
		if got := stripPhone(in); got != want {
			t.Fatalf("stripPhone(%q) got %q want %q", in, got, want)
		}
	}
}
