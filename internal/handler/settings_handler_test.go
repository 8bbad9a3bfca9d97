package handler

import (
	"testing"

	"sensen/backend/internal/models"
)

func TestSettingsPatchKeepsKnownFieldsOnly(t *testing.T) {
	patch, err := settingsPatch(map[string]interface{}{
		"siteName":     "New Name",
		"primaryColor": "#000000",
		"notAField":    "should vanish",
		"_id":          "injected",
	})
	if err != nil {
		t.Fatalf("settingsPatch returned error: %v", err)
	}

	if patch["siteName"] != "New Name" {
		t.Fatalf("siteName missing from patch: %v", patch)
	}
	if patch["primaryColor"] != "#000000" {
		t.Fatalf("primaryColor missing from patch: %v", patch)
	}
	if _, ok := patch["notAField"]; ok {
		t.Fatal("unknown field leaked into the patch")
	}
	if _, ok := patch["_id"]; ok {
		t.Fatal("_id must never be settable through the patch")
	}
}

func TestSettingsPatchIsPartial(t *testing.T) {
	patch, err := settingsPatch(map[string]interface{}{"siteName": "Only This"})
	if err != nil {
		t.Fatalf("settingsPatch returned error: %v", err)
	}
	if len(patch) != 1 {
		t.Fatalf("a one-field payload must produce a one-field patch, got %v", patch)
	}
}

func TestSettingsPatchRejectsNonStringField(t *testing.T) {
	if _, err := settingsPatch(map[string]interface{}{"siteName": 42}); err == nil {
		t.Fatal("expected an error for a non-string text field")
	}
}

func TestSettingsPatchSocialLinks(t *testing.T) {
	patch, err := settingsPatch(map[string]interface{}{
		"socialLinks": []interface{}{
			map[string]interface{}{"name": "Steam", "url": "https://store.steampowered.com/x", "icon": "FaSteam"},
		},
	})
	if err != nil {
		t.Fatalf("settingsPatch returned error: %v", err)
	}

	links, ok := patch["socialLinks"].([]models.SocialLink)
	if !ok {
		t.Fatalf("socialLinks not parsed into typed links: %T", patch["socialLinks"])
	}
	if len(links) != 1 || links[0].Name != "Steam" {
		t.Fatalf("unexpected links: %v", links)
	}
}

func TestSettingsPatchRejectsIncompleteSocialLink(t *testing.T) {
	_, err := settingsPatch(map[string]interface{}{
		"socialLinks": []interface{}{
			map[string]interface{}{"name": "Steam", "url": "https://example.com"},
		},
	})
	if err == nil {
		t.Fatal("expected an error for a social link without an icon")
	}
}

func TestSettingsPatchRejectsNonArraySocialLinks(t *testing.T) {
	if _, err := settingsPatch(map[string]interface{}{"socialLinks": "nope"}); err == nil {
		t.Fatal("expected an error for non-array socialLinks")
	}
}
