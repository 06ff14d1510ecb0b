package services

import (
	"testing"
	"time"
)

func TestNormalizeCreatedAtDateString(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	got := NormalizeCreatedAt("2024-01-01", now)
	want := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestNormalizeCreatedAtRFC3339(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	got := NormalizeCreatedAt("2024-03-05T10:30:00Z", now)
	want := time.Date(2024, 3, 5, 10, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestNormalizeCreatedAtAbsent(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	if got := NormalizeCreatedAt(nil, now); !got.Equal(now) {
		t.Fatalf("expected now, got %v", got)
	}
}

func TestNormalizeCreatedAtEpochMillis(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	millis := float64(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).UnixMilli())

	got := NormalizeCreatedAt(millis, now)
	want := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestNormalizeCreatedAtUnparsable(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	if got := NormalizeCreatedAt("not a date", now); !got.Equal(now) {
		t.Fatalf("expected now, got %v", got)
	}
}
