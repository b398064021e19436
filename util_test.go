package main

import (
	"testing"
	"time"
)

// TestFormatUptime checks human-readable duration output
func TestFormatUptime(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{45 * time.Second, "45 seconds"},
		{1 * time.Second, "1 second"},
		{2*time.Minute + 1*time.Second, "2 minutes, 1 second"},
		{3*time.Hour + 4*time.Minute + 5*time.Second, "3 hours, 4 minutes, 5 seconds"},
		{1*time.Hour + 1*time.Minute + 1*time.Second, "1 hour, 1 minute, 1 second"},
	}
	for _, tt := range tests {
		if got := formatUptime(tt.d); got != tt.want {
			t.Errorf("formatUptime(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

// TestFormatCountdown checks HH:MM:SS rendering
func TestFormatCountdown(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "00:00:00"},
		{-5 * time.Second, "00:00:00"},
		{61 * time.Second, "00:01:01"},
		{25*time.Hour + 30*time.Minute, "25:30:00"},
	}
	for _, tt := range tests {
		if got := formatCountdown(tt.d); got != tt.want {
			t.Errorf("formatCountdown(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

// TestPlural checks pluralization helper
func TestPlural(t *testing.T) {
	if plural(1) != "" {
		t.Error("plural(1) should be empty")
	}
	if plural(0) != "s" || plural(2) != "s" {
		t.Error("plural(n != 1) should be \"s\"")
	}
}

// TestGetEnvHelpers checks environment parsing with fallbacks
func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("TEST_STR", "hello")
	t.Setenv("TEST_DURATION", "90s")
	t.Setenv("TEST_INT", "7")
	t.Setenv("TEST_BAD_DURATION", "ninety")
	t.Setenv("TEST_BAD_INT", "seven")

	if got := getEnvStr("TEST_STR", "x"); got != "hello" {
		t.Errorf("getEnvStr = %q, want hello", got)
	}
	if got := getEnvStr("TEST_MISSING", "x"); got != "x" {
		t.Errorf("getEnvStr fallback = %q, want x", got)
	}
	if got := getEnvDuration("TEST_DURATION", time.Minute); got != 90*time.Second {
		t.Errorf("getEnvDuration = %v, want 90s", got)
	}
	if got := getEnvDuration("TEST_BAD_DURATION", time.Minute); got != time.Minute {
		t.Errorf("getEnvDuration fallback = %v, want 1m", got)
	}
	if got := getEnvInt("TEST_INT", 3); got != 7 {
		t.Errorf("getEnvInt = %d, want 7", got)
	}
	if got := getEnvInt("TEST_BAD_INT", 3); got != 3 {
		t.Errorf("getEnvInt fallback = %d, want 3", got)
	}
}

// TestValidSessionID checks session ID validation
func TestValidSessionID(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"", false},
		{"short", false},
		{"../../../etc/passwd", false},
		{"0f8fad5b-d9cb-469f-a165-70867728950e", true},
	}
	for _, tt := range tests {
		if got := validSessionID(tt.id); got != tt.want {
			t.Errorf("validSessionID(%q) = %v, want %v", tt.id, got, tt.want)
		}
	}
}
