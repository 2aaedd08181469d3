package dates

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"date only", "2020-01-01", "2020-01-01T00:00:00"},
		{"iso datetime", "2020-12-31T23:59:58", "2020-12-31T23:59:58"},
		{"space datetime", "2020-12-31 08:15:00", "2020-12-31T08:15:00"},
		{"surrounding space", "  2021-03-04 ", "2021-03-04T00:00:00"},
		{"short month and day", "2020-6-5", "2020-06-05T00:00:00"},
		{"short datetime", "2020-6-5 7:8:9", "2020-06-05T07:08:09"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if Format(got) != tt.want {
				t.Errorf("expected %s, got %s", tt.want, Format(got))
			}
		})
	}
}

func TestParse_ZoneOffsetConvertedToLocal(t *testing.T) {
	got, err := Parse("2020-01-01T10:00:00+05:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := time.Date(2020, 1, 1, 10, 0, 0, 0, time.FixedZone("", 5*3600)).In(time.Local)
	if !got.Equal(want) {
		t.Errorf("expected instant %v, got %v", want, got)
	}
	if got.Location() != time.Local {
		t.Errorf("expected local location, got %v", got.Location())
	}
	if Format(got) != want.Format(Layout) {
		t.Errorf("expected %s, got %s", want.Format(Layout), Format(got))
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, input := range []string{"", "   ", "not-a-date"} {
		_, err := Parse(input)
		if !errors.Is(err, ErrInvalidDate) {
			t.Errorf("Parse(%q): expected ErrInvalidDate, got %v", input, err)
		}
	}
}

func TestFormat_TruncatesFraction(t *testing.T) {
	ts := time.Date(2022, 5, 6, 7, 8, 9, 987654321, time.Local)
	if got := Format(ts); got != "2022-05-06T07:08:09" {
		t.Errorf("unexpected format %s", got)
	}
}

func TestNewRange_Defaults(t *testing.T) {
	current := time.Date(2024, 2, 29, 13, 14, 15, 500, time.Local)
	r := NewRange(nil, nil, current)

	if Format(r.From) != "1970-01-01T00:00:00" {
		t.Errorf("expected epoch, got %s", Format(r.From))
	}
	if Format(r.To) != "2024-02-29T13:14:15" {
		t.Errorf("expected current time, got %s", Format(r.To))
	}
	if r.To.Nanosecond() != 0 {
		t.Errorf("expected truncated to seconds, got %d ns", r.To.Nanosecond())
	}
}

func TestNewRange_Explicit(t *testing.T) {
	from := time.Date(2020, 1, 1, 0, 0, 0, 0, time.Local)
	to := time.Date(2020, 12, 31, 0, 0, 0, 0, time.Local)
	r := NewRange(&from, &to, time.Now())

	if !r.From.Equal(from) || !r.To.Equal(to) {
		t.Errorf("explicit bounds should be kept, got %v - %v", r.From, r.To)
	}
}

func TestTimestamp_JSON(t *testing.T) {
	ts := Timestamp(time.Date(2020, 1, 1, 0, 0, 0, 0, time.Local))

	data, err := json.Marshal(struct {
		At Timestamp `json:"at"`
	}{ts})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"at":"2020-01-01T00:00:00"}` {
		t.Errorf("unexpected JSON %s", data)
	}
}

func TestFlag(t *testing.T) {
	var f Flag
	if f.Time() != nil || f.String() != "" {
		t.Fatal("unset flag should be empty")
	}
	if f.Type() != "datetime" {
		t.Errorf("unexpected type %s", f.Type())
	}

	if err := f.Set("2020-12-31"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.String() != "2020-12-31T00:00:00" {
		t.Errorf("unexpected value %s", f.String())
	}

	if err := f.Set("garbage"); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("expected ErrInvalidDate, got %v", err)
	}
	if f.String() != "2020-12-31T00:00:00" {
		t.Error("failed Set must keep previous value")
	}
}
