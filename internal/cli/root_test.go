package cli

import (
	"reflect"
	"testing"
	"time"
)

func TestParseWeekdays(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      []time.Weekday
		wantError bool
	}{
		{
			name:  "short names",
			input: "mon,wed,fri",
			want:  []time.Weekday{time.Monday, time.Wednesday, time.Friday},
		},
		{
			name:  "full names mixed case",
			input: "Sunday,SATURDAY",
			want:  []time.Weekday{time.Sunday, time.Saturday},
		},
		{
			name:  "numbers",
			input: "0,6",
			want:  []time.Weekday{time.Sunday, time.Saturday},
		},
		{
			name:  "spaces tolerated",
			input: " tue , thu ",
			want:  []time.Weekday{time.Tuesday, time.Thursday},
		},
		{
			name:      "invalid day",
			input:     "mon,someday",
			wantError: true,
		},
		{
			name:      "out of range number",
			input:     "7",
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseWeekdays(tt.input)
			if (err != nil) != tt.wantError {
				t.Fatalf("ParseWeekdays(%q) error = %v, wantError %v", tt.input, err, tt.wantError)
			}
			if err == nil && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseWeekdays(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatWeekdays(t *testing.T) {
	got := FormatWeekdays([]time.Weekday{time.Monday, time.Wednesday})
	if got != "Mon,Wed" {
		t.Errorf("FormatWeekdays() = %q, want %q", got, "Mon,Wed")
	}
}

func TestParseAmountCents(t *testing.T) {
	tests := []struct {
		input     string
		want      int64
		wantError bool
	}{
		{input: "12.50", want: 1250},
		{input: "0.05", want: 5},
		{input: "100", want: 10000},
		{input: "-3.99", want: -399},
		{input: ".75", want: 75},
		{input: "7.5", want: 750},
		{input: "1.234", wantError: true},
		{input: "abc", wantError: true},
		{input: "1.xy", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAmountCents(tt.input)
			if (err != nil) != tt.wantError {
				t.Fatalf("ParseAmountCents(%q) error = %v, wantError %v", tt.input, err, tt.wantError)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseAmountCents(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatAmountCents(t *testing.T) {
	tests := []struct {
		cents int64
		want  string
	}{
		{1250, "12.50"},
		{5, "0.05"},
		{-399, "-3.99"},
		{0, "0.00"},
	}
	for _, tt := range tests {
		if got := FormatAmountCents(tt.cents); got != tt.want {
			t.Errorf("FormatAmountCents(%d) = %q, want %q", tt.cents, got, tt.want)
		}
	}
}
