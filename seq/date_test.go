package seq

import (
	"errors"
	"testing"
	"time"

	gberrors "github.com/seqforge/gbio/errors"
)

func TestNewDate(t *testing.T) {
	tests := []struct {
		name    string
		y, m, d int
		ok      bool
	}{
		{"valid", 2024, 4, 1, true},
		{"leap day", 2024, 2, 29, true},
		{"non-leap feb 29", 2023, 2, 29, false},
		{"century non-leap", 1900, 2, 29, false},
		{"quadricentennial leap", 2000, 2, 29, true},
		{"day 32", 2024, 1, 32, false},
		{"day zero", 2024, 1, 0, false},
		{"month 13", 2024, 13, 1, false},
		{"month zero", 2024, 0, 1, false},
		{"april 31", 2024, 4, 31, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDate(tt.y, tt.m, tt.d)
			if tt.ok && err != nil {
				t.Errorf("NewDate(%d, %d, %d) = %v, want ok", tt.y, tt.m, tt.d, err)
			}
			if !tt.ok {
				if err == nil {
					t.Fatalf("NewDate(%d, %d, %d) should fail", tt.y, tt.m, tt.d)
				}
				var ge *gberrors.Error
				if !errors.As(err, &ge) || ge.Kind != gberrors.KindInvalidDate {
					t.Errorf("error kind = %v, want invalid_date", err)
				}
			}
		})
	}
}

func TestDateString(t *testing.T) {
	d, err := NewDate(2024, 4, 1)
	if err != nil {
		t.Fatal(err)
	}
	if got := d.String(); got != "01-APR-2024" {
		t.Errorf("String() = %q, want 01-APR-2024", got)
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("21-JUN-1999")
	if err != nil {
		t.Fatal(err)
	}
	if d.Year() != 1999 || d.Month() != 6 || d.Day() != 21 {
		t.Errorf("ParseDate = %v", d)
	}

	if _, err := ParseDate("32-JAN-2024"); err == nil {
		t.Error("day 32 should not parse")
	}
	if _, err := ParseDate("not-a-date"); err == nil {
		t.Error("garbage should not parse")
	}
	if _, err := ParseDate("01-ZZZ-2024"); err == nil {
		t.Error("unknown month should not parse")
	}
}

func TestDateTimeRoundTrip(t *testing.T) {
	d, _ := NewDate(1999, 6, 21)
	got := DateOf(d.Time())
	if got != d {
		t.Errorf("DateOf(Time()) = %v, want %v", got, d)
	}
	got = DateOf(time.Date(2024, time.April, 1, 15, 4, 5, 0, time.UTC))
	if got.Day() != 1 || got.Month() != 4 || got.Year() != 2024 {
		t.Errorf("DateOf = %v", got)
	}
}
