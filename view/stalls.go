package view

import (
	"context"
	"sync"

	"github.com/sliitsesc/event-navigation-dashboard/exhibition"
)

// StallsView owns the stall management screen: the zone selector, the
// selected zone's stalls, and the inline error banner.
//
// Stall fetches are tagged with a sequence number taken under the
// mutex; a response is applied only while its tag is still current, so
// switching zones in rapid succession always converges on the latest
// selection.
type StallsView struct {
	mu       sync.Mutex
	client   *exhibition.Client
	zones    []exhibition.Zone
	selected *exhibition.Zone
	stalls   []exhibition.Stall
	loading  bool
	err      string
	fetchSeq uint64
}

// StallsSnapshot is what a renderer sees.
type StallsSnapshot struct {
	Zones    []exhibition.Zone
	Selected *exhibition.Zone
	Stalls   []exhibition.Stall
	Loading  bool
	Err      string
}

// NewStallsView creates the stalls screen over the given client.
func NewStallsView(client *exhibition.Client) *StallsView {
	return &StallsView{client: client, loading: true}
}

// Load fetches the zones, auto-selects the first one, and loads its
// stalls.
func (v *StallsView) Load(ctx context.Context) {
	v.mu.Lock()
	v.loading = true
	v.mu.Unlock()

	zones, err := v.client.Zones.List(ctx)

	v.mu.Lock()
	if err != nil {
		v.loading = false
		v.err = exhibition.FriendlyMessage(err)
		v.mu.Unlock()
		return
	}
	v.zones = zones
	v.loading = false
	var first *exhibition.Zone
	if v.selected == nil && len(zones) > 0 {
		zone := zones[0]
		v.selected = &zone
		first = &zone
	}
	v.mu.Unlock()

	if first != nil {
		v.loadStalls(ctx, first.ID)
	}
}

// SelectZone switches the selected zone and re-fetches its stalls.
// An unknown id is ignored, matching a selector that only offers the
// listed zones.
func (v *StallsView) SelectZone(ctx context.Context, zoneID int) {
	v.mu.Lock()
	var found *exhibition.Zone
	for i := range v.zones {
		if v.zones[i].ID == zoneID {
			zone := v.zones[i]
			found = &zone
			break
		}
	}
	if found == nil {
		v.mu.Unlock()
		return
	}
	v.selected = found
	v.mu.Unlock()

	v.loadStalls(ctx, found.ID)
}

func (v *StallsView) loadStalls(ctx context.Context, zoneID int) {
	v.mu.Lock()
	v.err = ""
	v.fetchSeq++
	seq := v.fetchSeq
	v.mu.Unlock()

	stalls, err := v.client.Stalls.ListByZone(ctx, zoneID)

	v.mu.Lock()
	defer v.mu.Unlock()
	if seq != v.fetchSeq {
		// A newer selection superseded this fetch.
		return
	}
	if err != nil {
		if apiErr, ok := exhibition.AsAPIError(err); ok && apiErr.IsStallNotFound() {
			// The API cannot tell an empty zone from a missing one; the
			// zone came from the listing, so empty is the right read.
			v.stalls = nil
			return
		}
		v.err = "Failed to load stalls"
		return
	}
	v.stalls = stalls
}

// Delete removes a stall and re-fetches the selected zone's stalls.
func (v *StallsView) Delete(ctx context.Context, stallID int) {
	v.mu.Lock()
	v.err = ""
	selected := v.selected
	v.mu.Unlock()

	if err := v.client.Stalls.Delete(ctx, stallID); err != nil {
		v.mu.Lock()
		v.err = exhibition.FriendlyMessage(err)
		v.mu.Unlock()
		return
	}
	if selected != nil {
		v.loadStalls(ctx, selected.ID)
	}
}

// HandleFormSuccess re-fetches the selected zone's stalls after a
// form's create or update went through.
func (v *StallsView) HandleFormSuccess(ctx context.Context) {
	v.mu.Lock()
	selected := v.selected
	v.mu.Unlock()
	if selected != nil {
		v.loadStalls(ctx, selected.ID)
	}
}

// CanCreate reports whether the create action is available. Creation
// needs a selected zone to scope the new stall to.
func (v *StallsView) CanCreate() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.selected != nil
}

// Snapshot returns the current screen state.
func (v *StallsView) Snapshot() StallsSnapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	snap := StallsSnapshot{Loading: v.loading, Err: v.err}
	snap.Zones = make([]exhibition.Zone, len(v.zones))
	copy(snap.Zones, v.zones)
	snap.Stalls = make([]exhibition.Stall, len(v.stalls))
	copy(snap.Stalls, v.stalls)
	if v.selected != nil {
		zone := *v.selected
		snap.Selected = &zone
	}
	return snap
}
