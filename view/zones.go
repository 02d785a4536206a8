package view

import (
	"context"
	"fmt"
	"sync"

	"github.com/sliitsesc/event-navigation-dashboard/exhibition"
)

// ZonesView owns the zone management screen: the zone list, a loading
// flag, and a single inline error banner. Every failure degrades to the
// banner; nothing propagates out of the view.
type ZonesView struct {
	mu      sync.Mutex
	client  *exhibition.Client
	zones   []exhibition.Zone
	loading bool
	err     string
}

// ZonesSnapshot is what a renderer sees.
type ZonesSnapshot struct {
	Zones   []exhibition.Zone
	Loading bool
	Err     string
}

// NewZonesView creates the zones screen over the given client.
func NewZonesView(client *exhibition.Client) *ZonesView {
	return &ZonesView{client: client, loading: true}
}

// Load fetches all zones. Called on mount and after every successful
// mutation.
func (v *ZonesView) Load(ctx context.Context) {
	v.mu.Lock()
	v.loading = true
	v.mu.Unlock()

	zones, err := v.client.Zones.List(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()
	v.loading = false
	if err != nil {
		v.err = exhibition.FriendlyMessage(err)
		return
	}
	v.zones = zones
}

// ZoneDeletePrompt returns the confirmation wording for deleting a
// zone. The wording warns about stall cleanup when the zone has stalls.
func ZoneDeletePrompt(zone exhibition.Zone) string {
	if n := len(zone.Stalls); n > 0 {
		plural := "s"
		if n == 1 {
			plural = ""
		}
		return fmt.Sprintf(
			"Are you sure you want to delete %q?\n\nThis zone contains %d stall%s. You must delete all stalls first before deleting the zone.",
			zone.ZoneName, n, plural)
	}
	return fmt.Sprintf("Are you sure you want to delete %q?\n\nThis action cannot be undone.", zone.ZoneName)
}

// Delete removes a zone and reloads the list on success. A rejection
// because the zone still owns stalls shows the friendly copy in the
// banner; the server stays the source of truth for that rule.
func (v *ZonesView) Delete(ctx context.Context, zoneID int) {
	v.mu.Lock()
	v.err = ""
	v.mu.Unlock()

	if err := v.client.Zones.Delete(ctx, zoneID); err != nil {
		v.mu.Lock()
		v.err = exhibition.FriendlyMessage(err)
		v.mu.Unlock()
		return
	}
	v.Load(ctx)
}

// HandleFormSuccess reloads the list and clears the banner after a
// form's create or update went through.
func (v *ZonesView) HandleFormSuccess(ctx context.Context) {
	v.mu.Lock()
	v.err = ""
	v.mu.Unlock()
	v.Load(ctx)
}

// Snapshot returns the current screen state.
func (v *ZonesView) Snapshot() ZonesSnapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	zones := make([]exhibition.Zone, len(v.zones))
	copy(zones, v.zones)
	return ZonesSnapshot{Zones: zones, Loading: v.loading, Err: v.err}
}
