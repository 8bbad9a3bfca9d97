package storefront

import (
	"context"
	"sync"

	"sensen/backend/internal/models"
)

// FetchSettings loads the current site settings document, typically by
// calling GET /api/settings.
type FetchSettings func(ctx context.Context) (models.SiteSettings, error)

// Subscriber receives a copy of the settings document after each successful
// refresh. Sends are non-blocking: a subscriber that is not draining its
// channel misses intermediate values, never blocks the cell.
type Subscriber chan models.SiteSettings

// SettingsCell is a shared cell for the rarely-changing settings singleton.
// Many readers consume the cached value; a refresh is triggered explicitly
// (after an admin write, or on demand) instead of by interval polling.
// Safe for concurrent use.
type SettingsCell struct {
	mu      sync.RWMutex
	fetch   FetchSettings
	current *models.SiteSettings
	subs    map[Subscriber]bool
}

// NewSettingsCell creates an empty cell around the given fetch function.
func NewSettingsCell(fetch FetchSettings) *SettingsCell {
	return &SettingsCell{
		fetch: fetch,
		subs:  make(map[Subscriber]bool),
	}
}

// Current returns the cached settings and whether a value has been loaded.
func (s *SettingsCell) Current() (models.SiteSettings, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return models.SiteSettings{}, false
	}
	return *s.current, true
}

// Refresh fetches the settings, replaces the cached value and fans the new
// value out to all subscribers. On fetch error the cached value is kept.
func (s *SettingsCell) Refresh(ctx context.Context) error {
	settings, err := s.fetch(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = &settings
	for sub := range s.subs {
		select {
		case sub <- settings:
		default:
			// Subscriber is behind; it will catch up on the next refresh
			// or read Current directly.
		}
	}
	return nil
}

// Subscribe registers a new subscriber. If a value is already cached it is
// delivered immediately.
func (s *SettingsCell) Subscribe() Subscriber {
	sub := make(Subscriber, 1)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.subs[sub] = true
	if s.current != nil {
		sub <- *s.current
	}
	return sub
}

// Unsubscribe removes a subscriber and closes its channel.
func (s *SettingsCell) Unsubscribe(sub Subscriber) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.subs[sub] {
		delete(s.subs, sub)
		close(sub)
	}
}
