package utils

import (
	"testing"
)

func TestValidateTimeFormat(t *testing.T) {
	valid := []string{"00:00", "06:30", "23:59"}
	for _, v := range valid {
		if !ValidateTimeFormat(v) {
			t.Errorf("ValidateTimeFormat(%q) = false, want true", v)
		}
	}

	invalid := []string{"24:00", "6:3", "noon", "06:30:00", ""}
	for _, v := range invalid {
		if ValidateTimeFormat(v) {
			t.Errorf("ValidateTimeFormat(%q) = true, want false", v)
		}
	}
}

func TestValidateDateFormat(t *testing.T) {
	if !ValidateDateFormat("2026-03-10") {
		t.Error("ValidateDateFormat rejected a valid date")
	}
	for _, v := range []string{"2026-13-01", "03/10/2026", "2026-3-10", ""} {
		if ValidateDateFormat(v) {
			t.Errorf("ValidateDateFormat(%q) = true, want false", v)
		}
	}
}

func TestValidateTimezone(t *testing.T) {
	for _, tz := range []string{"", "Local", "UTC", "America/Sao_Paulo"} {
		if !ValidateTimezone(tz) {
			t.Errorf("ValidateTimezone(%q) = false, want true", tz)
		}
	}
	if ValidateTimezone("Mars/Olympus_Mons") {
		t.Error("ValidateTimezone accepted an unknown zone")
	}
}

func TestGetTodayInTimezone(t *testing.T) {
	today, err := GetTodayInTimezone("UTC")
	if err != nil {
		t.Fatalf("GetTodayInTimezone() error = %v", err)
	}
	if !ValidateDateFormat(today) {
		t.Errorf("GetTodayInTimezone() = %q, not a YYYY-MM-DD date", today)
	}

	if _, err := GetTodayInTimezone("Nowhere/Invalid"); err == nil {
		t.Error("GetTodayInTimezone() accepted an invalid timezone")
	}
}
