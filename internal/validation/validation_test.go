package validation

import (
	"testing"

	"github.com/abmoura/vida/internal/models"
)

func TestValidateFrequency(t *testing.T) {
	tests := []struct {
		name       string
		frequency  models.Frequency
		customDays int
		wantError  bool
	}{
		{"daily", models.FrequencyDaily, 0, false},
		{"weekly", models.FrequencyWeekly, 0, false},
		{"custom with days", models.FrequencyCustom, 2, false},
		{"custom without days", models.FrequencyCustom, 0, true},
		{"daily with days", models.FrequencyDaily, 3, true},
		{"unknown", models.Frequency("hourly"), 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFrequency(tt.frequency, tt.customDays)
			if (err != nil) != tt.wantError {
				t.Errorf("ValidateFrequency(%q, %d) error = %v, wantError %v",
					tt.frequency, tt.customDays, err, tt.wantError)
			}
		})
	}
}

func TestValidateCategory(t *testing.T) {
	for _, c := range models.Categories {
		if err := ValidateCategory(c); err != nil {
			t.Errorf("ValidateCategory(%q) error = %v", c, err)
		}
	}
	if err := ValidateCategory("sports"); err == nil {
		t.Error("unknown category accepted")
	}
}

func TestValidateProfile(t *testing.T) {
	tests := []struct {
		name      string
		profile   models.UserProfile
		wantError bool
	}{
		{
			name:    "empty profile",
			profile: models.UserProfile{},
		},
		{
			name: "full profile",
			profile: models.UserProfile{
				WakeTime:           "06:30",
				SleepTime:          "23:00",
				WorkStart:          "09:00",
				WorkEnd:            "18:00",
				ExercisePreference: models.ExerciseEvening,
				GoalTags:           []string{"saude", "financas"},
			},
		},
		{
			name:      "bad wake time",
			profile:   models.UserProfile{WakeTime: "6h30"},
			wantError: true,
		},
		{
			name:      "bad preference",
			profile:   models.UserProfile{ExercisePreference: "noon"},
			wantError: true,
		},
		{
			name:      "unknown goal tag",
			profile:   models.UserProfile{GoalTags: []string{"fame"}},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProfile(tt.profile)
			if (err != nil) != tt.wantError {
				t.Errorf("ValidateProfile() error = %v, wantError %v", err, tt.wantError)
			}
		})
	}
}

func TestValidateProgress(t *testing.T) {
	for _, p := range []int{0, 50, 100} {
		if err := ValidateProgress(p); err != nil {
			t.Errorf("ValidateProgress(%d) error = %v", p, err)
		}
	}
	for _, p := range []int{-1, 101} {
		if err := ValidateProgress(p); err == nil {
			t.Errorf("ValidateProgress(%d) accepted out-of-range value", p)
		}
	}
}
