package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"

	"tableflip.dev/chakai/pkg/tweet"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	c, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := tweet.DefaultConfig()
	if c.Hashtag != want.Hashtag || c.ReferenceMeeting != want.ReferenceMeeting {
		t.Fatalf("expected production defaults, got %+v", c)
	}
	if !c.ReferenceDate.Equal(want.ReferenceDate) {
		t.Fatalf("expected default reference date, got %v", c.ReferenceDate)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	t.Setenv("CHAKAI_HASHTAG", "#試験会")
	t.Setenv("CHAKAI_REFERENCE_MEETING", "300")
	t.Setenv("CHAKAI_REFERENCE_DATE", "2026-01-04")

	c, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Hashtag != "#試験会" {
		t.Fatalf("hashtag override not applied: %q", c.Hashtag)
	}
	if c.ReferenceMeeting != 300 {
		t.Fatalf("meeting override not applied: %d", c.ReferenceMeeting)
	}
	if !c.ReferenceDate.Equal(time.Date(2026, time.January, 4, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("date override not applied: %v", c.ReferenceDate)
	}
}

func TestLoadRejectsBadReferenceDate(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	t.Setenv("CHAKAI_REFERENCE_DATE", "next sunday")
	if _, err := Load(); err == nil {
		t.Fatalf("expected an error for an unparseable reference date")
	}
}
