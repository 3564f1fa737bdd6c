package daterange

import (
	"testing"
	"time"
	_ "time/tzdata"

	perr "commlog/internal/platform/errors"
)

var now = time.Date(2024, 5, 31, 22, 30, 0, 0, time.UTC)

func TestResolve(t *testing.T) {
	tests := []struct {
		name  string
		p     Params
		mode  Mode
		want  Range
		code  perr.ErrorCode
		field string
	}{
		{name: "single date", p: Params{Date: "2024-03-05"}, want: Range{"2024-03-05", "2024-03-05"}},
		{name: "date wins over range", p: Params{Date: "2024-03-05", StartDate: "2024-01-01", EndDate: "2024-02-01"}, want: Range{"2024-03-05", "2024-03-05"}},
		{name: "impossible date", p: Params{Date: "2024-13-40"}, code: perr.ErrorCodeInvalidDateFormat, field: "date"},
		{name: "not padded", p: Params{Date: "2024-3-5"}, code: perr.ErrorCodeInvalidDateFormat, field: "date"},
		{name: "feb 30", p: Params{Date: "2023-02-30"}, mode: ModeTrailing, code: perr.ErrorCodeInvalidDateFormat, field: "date"},
		{name: "strict range", p: Params{StartDate: "2024-05-01", EndDate: "2024-05-31"}, want: Range{"2024-05-01", "2024-05-31"}},
		{name: "strict missing end", p: Params{StartDate: "2024-05-01"}, code: perr.ErrorCodeMissingParameter},
		{name: "strict missing both", p: Params{}, code: perr.ErrorCodeMissingParameter},
		{name: "strict bad start", p: Params{StartDate: "yesterday", EndDate: "2024-05-31"}, code: perr.ErrorCodeInvalidDateFormat, field: "startDate"},
		{name: "strict bad end", p: Params{StartDate: "2024-05-01", EndDate: "2024-05-32"}, code: perr.ErrorCodeInvalidDateFormat, field: "endDate"},
		{name: "trailing defaults", p: Params{}, mode: ModeTrailing, want: Range{"2024-05-01", "2024-05-31"}},
		{name: "trailing only start", p: Params{StartDate: "2024-04-01"}, mode: ModeTrailing, want: Range{"2024-04-01", "2024-05-31"}},
		{name: "trailing only end", p: Params{EndDate: "2024-05-10"}, mode: ModeTrailing, want: Range{"2024-05-01", "2024-05-10"}},
		{name: "trailing bad start", p: Params{StartDate: "2024/04/01"}, mode: ModeTrailing, code: perr.ErrorCodeInvalidDateFormat, field: "startDate"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Resolve(tc.p, tc.mode, now)
			if tc.code != 0 {
				if err == nil {
					t.Fatalf("want error code %d, got range %+v", tc.code, got)
				}
				if c := perr.CodeOf(err); c != tc.code {
					t.Fatalf("code got %d want %d (%v)", c, tc.code, err)
				}
				if tc.field != "" {
					e, _ := perr.As(err)
					if e == nil || e.Field() != tc.field {
						t.Fatalf("field want %q, got %+v", tc.field, e)
					}
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error %v", err)
			}
			if got != tc.want {
				t.Fatalf("got %+v want %+v", got, tc.want)
			}
		})
	}
}

func TestResolve_Messages(t *testing.T) {
	_, err := Resolve(Params{Date: "nope"}, ModeStrict, now)
	if e, _ := perr.As(err); e == nil || e.Message() != perr.ErrInvalidDate.Error() {
		t.Fatalf("unexpected %v", err)
	}
	_, err = Resolve(Params{}, ModeStrict, now)
	if e, _ := perr.As(err); e == nil || e.Message() != "startDate and endDate (or date) are required parameters" {
		t.Fatalf("unexpected %v", err)
	}
}

func TestRange_Label(t *testing.T) {
	if got := (Range{"2024-05-01", "2024-05-01"}).Label(); got != "2024-05-01" {
		t.Fatalf("got %q", got)
	}
	if got := (Range{"2024-05-01", "2024-05-31"}).Label(); got != "2024-05-01 to 2024-05-31" {
		t.Fatalf("got %q", got)
	}
}

func TestRange_Instants(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Prague")
	if err != nil {
		t.Fatal(err)
	}
	r := Range{Start: "2024-05-01", End: "2024-05-02"}

	if got := r.TimeMin(loc).Format(time.RFC3339); got != "2024-05-01T00:00:00+02:00" {
		t.Fatalf("timeMin %s", got)
	}
	if got := r.TimeMax(loc).Format(time.RFC3339); got != "2024-05-02T23:59:59+02:00" {
		t.Fatalf("timeMax %s", got)
	}
	if got := r.TimeMax(nil).Format(time.RFC3339); got != "2024-05-02T23:59:59Z" {
		t.Fatalf("nil loc timeMax %s", got)
	}

	// the last day of summer time is 25 hours long
	dst := Range{Start: "2024-10-27", End: "2024-10-27"}
	if got := dst.TimeMax(loc).Format(time.RFC3339); got != "2024-10-27T23:59:59+01:00" {
		t.Fatalf("dst timeMax %s", got)
	}
}
