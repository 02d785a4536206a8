package view

import (
	"context"
	"sync"

	"github.com/sliitsesc/event-navigation-dashboard/exhibition"
)

// ZoneForm collects one zone's create or update payload. Edit mode is
// chosen by constructing the form from an existing zone.
type ZoneForm struct {
	mu         sync.Mutex
	client     *exhibition.Client
	zoneID     int // 0 in create mode
	Fields     exhibition.CreateZoneRequest
	submitting bool
	err        string
}

// NewZoneForm builds a form initialized from an existing zone (edit
// mode) or from defaults (create mode).
func NewZoneForm(client *exhibition.Client, existing *exhibition.Zone) *ZoneForm {
	f := &ZoneForm{client: client}
	if existing != nil {
		f.zoneID = existing.ID
		f.Fields = exhibition.CreateZoneRequest{
			ZoneName:    existing.ZoneName,
			Description: existing.Description,
			ImageURL:    existing.ImageURL,
			ColorCode:   existing.ColorCode,
		}
		return f
	}
	f.Fields.ColorCode = exhibition.DefaultColorCode
	return f
}

// Submit validates and sends the payload, creating or updating based on
// how the form was constructed. It reports success; on failure the
// error stays on the form for correction. A submit already in flight
// blocks re-entry.
func (f *ZoneForm) Submit(ctx context.Context, onSuccess func()) bool {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return false
	}
	f.submitting = true
	f.err = ""
	fields := f.Fields
	zoneID := f.zoneID
	f.mu.Unlock()

	var err error
	if zoneID != 0 {
		_, err = f.client.Zones.Update(ctx, zoneID, fields)
	} else {
		_, err = f.client.Zones.Create(ctx, fields)
	}

	f.mu.Lock()
	f.submitting = false
	if err != nil {
		f.err = exhibition.FriendlyMessage(err)
		f.mu.Unlock()
		return false
	}
	f.mu.Unlock()

	if onSuccess != nil {
		onSuccess()
	}
	return true
}

// Err returns the form's current error message.
func (f *ZoneForm) Err() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

// StallForm collects one stall's create or update payload, scoped to a
// zone in create mode.
type StallForm struct {
	mu         sync.Mutex
	client     *exhibition.Client
	stallID    int // 0 in create mode
	zoneID     int // owning zone for creation
	Fields     exhibition.CreateStallRequest
	submitting bool
	err        string
}

// NewStallForm builds a form initialized from an existing stall (edit
// mode) or from defaults (create mode) under the given zone.
func NewStallForm(client *exhibition.Client, zoneID int, existing *exhibition.Stall) *StallForm {
	f := &StallForm{client: client, zoneID: zoneID}
	if existing != nil {
		f.stallID = existing.ID
		f.Fields = exhibition.CreateStallRequest{
			Name:        existing.Name,
			Description: existing.Description,
			Organizer:   existing.Organizer,
			Category:    existing.Category,
			FloorNumber: existing.FloorNumber,
			Location:    existing.Location,
			Image:       existing.Image,
			QRCode:      existing.QRCode,
		}
		return f
	}
	f.Fields.Category = exhibition.CategoryOther
	f.Fields.FloorNumber = exhibition.DefaultFloorNumber
	return f
}

// Submit validates and sends the payload, creating or updating based on
// how the form was constructed. Same contract as ZoneForm.Submit.
func (f *StallForm) Submit(ctx context.Context, onSuccess func()) bool {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return false
	}
	f.submitting = true
	f.err = ""
	fields := f.Fields
	stallID := f.stallID
	zoneID := f.zoneID
	f.mu.Unlock()

	var err error
	if stallID != 0 {
		_, err = f.client.Stalls.Update(ctx, stallID, fields)
	} else {
		_, err = f.client.Stalls.Create(ctx, zoneID, fields)
	}

	f.mu.Lock()
	f.submitting = false
	if err != nil {
		f.err = exhibition.FriendlyMessage(err)
		f.mu.Unlock()
		return false
	}
	f.mu.Unlock()

	if onSuccess != nil {
		onSuccess()
	}
	return true
}

// Err returns the form's current error message.
func (f *StallForm) Err() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}
