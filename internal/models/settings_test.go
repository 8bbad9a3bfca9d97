package models

import "testing"

func TestDefaultSettingsLiterals(t *testing.T) {
	settings := DefaultSettings()

	if settings.SiteName != "Sensen Games" {
		t.Fatalf("default siteName = %q, want Sensen Games", settings.SiteName)
	}
	if settings.PrimaryColor != "#3B82F6" || settings.SecondaryColor != "#10B981" {
		t.Fatalf("unexpected default palette: %s / %s", settings.PrimaryColor, settings.SecondaryColor)
	}
	if settings.FontFamily != "sans-serif" {
		t.Fatalf("default fontFamily = %q", settings.FontFamily)
	}
	if len(settings.SocialLinks) != 5 {
		t.Fatalf("expected 5 default social links, got %d", len(settings.SocialLinks))
	}
	if settings.SocialLinks[0].Name != "Facebook" || settings.SocialLinks[4].Icon != "BlueskyIcon" {
		t.Fatalf("default social links out of order: %v", settings.SocialLinks)
	}
	if !settings.ID.IsZero() {
		t.Fatal("defaults must not carry a preassigned id")
	}
}
