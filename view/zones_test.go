package view

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sliitsesc/event-navigation-dashboard/exhibition"
)

func TestZonesView_Load(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/exhibition/zones", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, exhibition.StatusSuccessful,
			zoneJSON(1, "Hall A", 2), zoneJSON(2, "Hall B", 0))
	})

	v := NewZonesView(newViewClient(t, mux))
	assert.True(t, v.Snapshot().Loading)

	v.Load(context.Background())

	snap := v.Snapshot()
	assert.False(t, snap.Loading)
	assert.Empty(t, snap.Err)
	require.Len(t, snap.Zones, 2)
	assert.Equal(t, "Hall A", snap.Zones[0].ZoneName)
	assert.True(t, snap.Zones[0].HasStalls())
}

func TestZonesView_LoadError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/exhibition/zones", func(w http.ResponseWriter, r *http.Request) {
		writeFailure(w, http.StatusInternalServerError, "database exploded")
	})

	v := NewZonesView(newViewClient(t, mux))
	v.Load(context.Background())

	snap := v.Snapshot()
	assert.False(t, snap.Loading)
	assert.Equal(t, "database exploded", snap.Err)
	assert.Empty(t, snap.Zones)
}

func TestZonesView_DeleteReloads(t *testing.T) {
	deleted := false
	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/exhibition/zones", func(w http.ResponseWriter, r *http.Request) {
		if deleted {
			writeEnvelope(w, http.StatusOK, exhibition.StatusSuccessful, zoneJSON(2, "Hall B", 0))
			return
		}
		writeEnvelope(w, http.StatusOK, exhibition.StatusSuccessful,
			zoneJSON(1, "Hall A", 0), zoneJSON(2, "Hall B", 0))
	})
	mux.HandleFunc("DELETE /v1/admin/zone/1", func(w http.ResponseWriter, r *http.Request) {
		deleted = true
		writeEnvelope(w, http.StatusOK, exhibition.StatusSuccessful)
	})

	v := NewZonesView(newViewClient(t, mux))
	ctx := context.Background()
	v.Load(ctx)
	require.Len(t, v.Snapshot().Zones, 2)

	v.Delete(ctx, 1)

	snap := v.Snapshot()
	assert.Empty(t, snap.Err)
	require.Len(t, snap.Zones, 1)
	assert.Equal(t, "Hall B", snap.Zones[0].ZoneName)
}

func TestZonesView_DeleteZoneWithStallsShowsFriendlyCopy(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/exhibition/zones", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, exhibition.StatusSuccessful, zoneJSON(1, "Hall A", 3))
	})
	mux.HandleFunc("DELETE /v1/admin/zone/1", func(w http.ResponseWriter, r *http.Request) {
		writeFailure(w, http.StatusBadRequest, "Cannot delete zone that contains stalls")
	})

	v := NewZonesView(newViewClient(t, mux))
	ctx := context.Background()
	v.Load(ctx)

	v.Delete(ctx, 1)

	snap := v.Snapshot()
	assert.Equal(t,
		"Cannot delete this zone because it contains stalls. "+
			"Please delete all stalls in this zone first before trying to delete the zone.",
		snap.Err, "raw remote prose must not reach the banner")
	require.Len(t, snap.Zones, 1, "zone list stays intact after a rejected delete")
}

func TestZoneDeletePrompt(t *testing.T) {
	empty := exhibition.Zone{ZoneName: "Hall A"}
	assert.Equal(t,
		"Are you sure you want to delete \"Hall A\"?\n\nThis action cannot be undone.",
		ZoneDeletePrompt(empty))

	one := exhibition.Zone{ZoneName: "Hall A", Stalls: make([]exhibition.Stall, 1)}
	assert.Contains(t, ZoneDeletePrompt(one), "contains 1 stall.")

	three := exhibition.Zone{ZoneName: "Hall A", Stalls: make([]exhibition.Stall, 3)}
	assert.Contains(t, ZoneDeletePrompt(three), "contains 3 stalls.")
	assert.Contains(t, ZoneDeletePrompt(three), "You must delete all stalls first")
}

func TestZonesView_HandleFormSuccessClearsError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/exhibition/zones", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, exhibition.StatusSuccessful, zoneJSON(1, "Hall A", 0))
	})
	mux.HandleFunc("DELETE /v1/admin/zone/1", func(w http.ResponseWriter, r *http.Request) {
		writeFailure(w, http.StatusBadRequest, "Cannot delete zone that contains stalls")
	})

	v := NewZonesView(newViewClient(t, mux))
	ctx := context.Background()
	v.Load(ctx)
	v.Delete(ctx, 1)
	require.NotEmpty(t, v.Snapshot().Err)

	v.HandleFormSuccess(ctx)
	assert.Empty(t, v.Snapshot().Err)
}
