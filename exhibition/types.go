// Package exhibition provides the Go client for the event-navigation
// admin API.
//
// The API manages the zones and stalls of an exhibition. All entity
// identifiers and timestamps are assigned by the remote service; the
// client never invents them.
package exhibition

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// User is an authenticated admin account. The tokens are opaque bearer
// credentials; the client does not inspect or refresh them.
type User struct {
	ID           int    `json:"id"`
	Email        string `json:"email"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// Zone is a spatial grouping within the exhibition that owns zero or
// more stalls.
type Zone struct {
	ID          int       `json:"id"`
	ZoneName    string    `json:"zoneName"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	ColorCode   string    `json:"colorCode"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	// Stalls is populated by the zone listing endpoint and is only a
	// presence indicator for delete warnings. Stall listing always goes
	// through StallsService.ListByZone.
	Stalls []Stall `json:"stalls,omitempty"`
}

// HasStalls reports whether the zone listing showed any stalls assigned
// to this zone.
func (z *Zone) HasStalls() bool {
	return len(z.Stalls) > 0
}

// Stall is a bookable unit belonging to exactly one zone.
type Stall struct {
	ID          int           `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Organizer   string        `json:"organizer"`
	Category    StallCategory `json:"category"`
	FloorNumber int           `json:"floorNumber"`
	Location    string        `json:"location"`
	Image       string        `json:"image,omitempty"`
	QRCode      string        `json:"qrCode,omitempty"`
	ZoneID      int           `json:"zoneId"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// StallCategory classifies a stall.
type StallCategory string

const (
	CategoryOther         StallCategory = "OTHER"
	CategoryArt           StallCategory = "ART"
	CategoryAutomotive    StallCategory = "AUTOMOTIVE"
	CategoryEntertainment StallCategory = "ENTERTAINMENT"
	CategoryHealth        StallCategory = "HEALTH"
	CategoryFood          StallCategory = "FOOD"
	CategorySports        StallCategory = "SPORTS"
	CategoryFashion       StallCategory = "FASHION"
	CategoryTechnology    StallCategory = "TECHNOLOGY"
	CategoryEducation     StallCategory = "EDUCATION"
	CategoryRetail        StallCategory = "RETAIL"
)

// StallCategories lists every valid category, in display order.
func StallCategories() []StallCategory {
	return []StallCategory{
		CategoryOther,
		CategoryArt,
		CategoryAutomotive,
		CategoryEntertainment,
		CategoryHealth,
		CategoryFood,
		CategorySports,
		CategoryFashion,
		CategoryTechnology,
		CategoryEducation,
		CategoryRetail,
	}
}

// Valid reports whether c is one of the fixed categories.
func (c StallCategory) Valid() bool {
	for _, known := range StallCategories() {
		if c == known {
			return true
		}
	}
	return false
}

// Default form values used when creating entities from scratch.
const (
	DefaultColorCode   = "#3B82F6"
	DefaultFloorNumber = 1
)

var colorCodeRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// CreateZoneRequest is the payload for creating or updating a zone.
type CreateZoneRequest struct {
	ZoneName    string `json:"zoneName"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
	ColorCode   string `json:"colorCode"`
}

// Validate checks the zone payload invariants before it is sent.
func (r CreateZoneRequest) Validate() error {
	if strings.TrimSpace(r.ZoneName) == "" {
		return errors.New("zone name is required")
	}
	if !colorCodeRe.MatchString(r.ColorCode) {
		return fmt.Errorf("color code %q must be in #RRGGBB form", r.ColorCode)
	}
	return nil
}

// CreateStallRequest is the payload for creating or updating a stall.
type CreateStallRequest struct {
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Organizer   string        `json:"organizer"`
	Category    StallCategory `json:"category"`
	FloorNumber int           `json:"floorNumber"`
	Location    string        `json:"location"`
	Image       string        `json:"image,omitempty"`
	QRCode      string        `json:"qrCode,omitempty"`
}

// Validate checks the stall payload invariants before it is sent.
func (r CreateStallRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("stall name is required")
	}
	if strings.TrimSpace(r.Organizer) == "" {
		return errors.New("organizer is required")
	}
	if strings.TrimSpace(r.Location) == "" {
		return errors.New("location is required")
	}
	if !r.Category.Valid() {
		return fmt.Errorf("unknown stall category %q", r.Category)
	}
	if r.FloorNumber < 1 {
		return fmt.Errorf("floor number must be at least 1, got %d", r.FloorNumber)
	}
	return nil
}
