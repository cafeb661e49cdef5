package config

import (
	"reflect"
	"testing"

	"groupmeet/models"
)

func TestPersonalPolicyDefaultsToCompiledTable(t *testing.T) {
	orig := AppConfig.PersonalPolicy
	defer func() { AppConfig.PersonalPolicy = orig }()

	AppConfig.PersonalPolicy = nil
	if !reflect.DeepEqual(PersonalPolicy(), models.DefaultPersonalPolicy()) {
		t.Error("empty config should yield the compiled default table")
	}
}

func TestPersonalPolicyFromConfigOverridesDefault(t *testing.T) {
	orig := AppConfig.PersonalPolicy
	defer func() { AppConfig.PersonalPolicy = orig }()

	AppConfig.PersonalPolicy = map[string][]models.MinuteRange{
		"T": {{Start: 0, End: 1440}},
		"X": {{Start: 0, End: 60}}, // unknown day code, dropped
	}

	policy := PersonalPolicy()
	if len(policy.Busy) != 1 {
		t.Fatalf("expected 1 day in policy, got %d", len(policy.Busy))
	}
	if !policy.IsBusy(models.DayTue, 600) {
		t.Error("configured Tuesday block missing")
	}
	// Days absent from the override are free, not defaulted.
	if policy.IsBusy(models.DayFri, 600) {
		t.Error("override must replace the default table, not merge with it")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	LoadConfig()

	if AppConfig.MaxRequestsPerMin != 100 {
		t.Errorf("MAX_REQUESTS_PER_MIN default = %d, want 100", AppConfig.MaxRequestsPerMin)
	}
	if AppConfig.HealthCheckInterval != 60 {
		t.Errorf("HEALTH_CHECK_INTERVAL default = %d, want 60", AppConfig.HealthCheckInterval)
	}
	if AppConfig.AvailabilityStrictness != "pointsample" {
		t.Errorf("AVAILABILITY_STRICTNESS default = %q, want \"pointsample\"", AppConfig.AvailabilityStrictness)
	}
}
