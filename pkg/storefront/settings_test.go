package storefront

import (
	"context"
	"errors"
	"testing"

	"sensen/backend/internal/models"
)

func TestSettingsCellCurrentBeforeRefresh(t *testing.T) {
	cell := NewSettingsCell(func(ctx context.Context) (models.SiteSettings, error) {
		return models.DefaultSettings(), nil
	})

	if _, ok := cell.Current(); ok {
		t.Fatal("cell should report no value before the first refresh")
	}
}

func TestSettingsCellRefreshAndCurrent(t *testing.T) {
	fetched := models.DefaultSettings()
	fetched.SiteName = "Renamed"

	cell := NewSettingsCell(func(ctx context.Context) (models.SiteSettings, error) {
		return fetched, nil
	})

	if err := cell.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh returned error: %v", err)
	}

	current, ok := cell.Current()
	if !ok {
		t.Fatal("expected a cached value after Refresh")
	}
	if current.SiteName != "Renamed" {
		t.Fatalf("unexpected cached siteName: %q", current.SiteName)
	}
}

func TestSettingsCellKeepsValueOnFetchError(t *testing.T) {
	calls := 0
	cell := NewSettingsCell(func(ctx context.Context) (models.SiteSettings, error) {
		calls++
		if calls > 1 {
			return models.SiteSettings{}, errors.New("backend down")
		}
		return models.DefaultSettings(), nil
	})

	if err := cell.Refresh(context.Background()); err != nil {
		t.Fatalf("first Refresh returned error: %v", err)
	}
	if err := cell.Refresh(context.Background()); err == nil {
		t.Fatal("second Refresh should surface the fetch error")
	}

	current, ok := cell.Current()
	if !ok || current.SiteName != "Sensen Games" {
		t.Fatal("failed refresh must not clobber the cached value")
	}
}

func TestSettingsCellSubscriberReceivesRefresh(t *testing.T) {
	cell := NewSettingsCell(func(ctx context.Context) (models.SiteSettings, error) {
		return models.DefaultSettings(), nil
	})

	sub := cell.Subscribe()
	if err := cell.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh returned error: %v", err)
	}

	select {
	case settings := <-sub:
		if settings.SiteName != "Sensen Games" {
			t.Fatalf("unexpected settings delivered: %q", settings.SiteName)
		}
	default:
		t.Fatal("subscriber should have received the refreshed value")
	}
}

func TestSettingsCellSubscribeAfterRefreshDeliversImmediately(t *testing.T) {
	cell := NewSettingsCell(func(ctx context.Context) (models.SiteSettings, error) {
		return models.DefaultSettings(), nil
	})
	if err := cell.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh returned error: %v", err)
	}

	sub := cell.Subscribe()
	select {
	case settings := <-sub:
		if settings.SiteName != "Sensen Games" {
			t.Fatalf("unexpected settings delivered: %q", settings.SiteName)
		}
	default:
		t.Fatal("late subscriber should receive the cached value immediately")
	}
}

func TestSettingsCellUnsubscribeClosesChannel(t *testing.T) {
	cell := NewSettingsCell(func(ctx context.Context) (models.SiteSettings, error) {
		return models.DefaultSettings(), nil
	})

	sub := cell.Subscribe()
	cell.Unsubscribe(sub)

	if _, open := <-sub; open {
		t.Fatal("unsubscribed channel should be closed")
	}

	// Refresh after unsubscribe must not panic on the closed channel.
	if err := cell.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh returned error: %v", err)
	}
}
