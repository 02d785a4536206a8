package exhibition

import (
	"context"
	"fmt"
)

// StallsService handles stall management operations. Stalls are always
// addressed through their owning zone for listing and creation.
type StallsService struct {
	client *Client
}

// ListByZone returns every stall owned by the given zone.
//
// The remote service answers "Stall not found" both for an unknown zone
// id and for a known zone with zero stalls. The error is returned
// untouched; callers that just listed the zone may treat it as an empty
// list via (*Error).IsStallNotFound.
func (s *StallsService) ListByZone(ctx context.Context, zoneID int) ([]Stall, error) {
	var resp envelope[Stall]
	if err := s.client.get(ctx, fmt.Sprintf("/v1/exhibition/stalls/zone/%d", zoneID), &resp); err != nil {
		return nil, err
	}
	if err := resp.err(); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// Create creates a new stall under the given zone.
//
// Example:
//
//	stall, err := client.Stalls.Create(ctx, zone.ID, exhibition.CreateStallRequest{
//	    Name:        "Booth 1",
//	    Organizer:   "Acme",
//	    Category:    exhibition.CategoryTechnology,
//	    FloorNumber: 1,
//	    Location:    "A-1",
//	})
func (s *StallsService) Create(ctx context.Context, zoneID int, req CreateStallRequest) (*Stall, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var resp envelope[Stall]
	if err := s.client.post(ctx, fmt.Sprintf("/v1/admin/zone/%d/stall", zoneID), req, &resp); err != nil {
		return nil, err
	}
	if err := resp.err(); err != nil {
		return nil, err
	}
	if len(resp.Results) == 0 {
		return nil, &Error{Message: "create stall returned no stall"}
	}
	return &resp.Results[0], nil
}

// Update replaces a stall's fields.
func (s *StallsService) Update(ctx context.Context, id int, req CreateStallRequest) (*Stall, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var resp envelope[Stall]
	if err := s.client.patch(ctx, fmt.Sprintf("/v1/admin/stall/%d", id), req, &resp); err != nil {
		return nil, err
	}
	if err := resp.err(); err != nil {
		return nil, err
	}
	if len(resp.Results) == 0 {
		return nil, &Error{Message: "update stall returned no stall"}
	}
	return &resp.Results[0], nil
}

// Delete removes a stall.
func (s *StallsService) Delete(ctx context.Context, id int) error {
	var resp envelope[Stall]
	if err := s.client.delete(ctx, fmt.Sprintf("/v1/admin/stall/%d", id), &resp); err != nil {
		return err
	}
	return resp.err()
}
