package exhibition

import (
	"context"
	"fmt"
)

// ZonesService handles zone management operations.
type ZonesService struct {
	client *Client
}

// List returns every zone, each with its currently assigned stalls
// embedded as a presence indicator.
func (s *ZonesService) List(ctx context.Context) ([]Zone, error) {
	var resp envelope[Zone]
	if err := s.client.get(ctx, "/v1/exhibition/zones", &resp); err != nil {
		return nil, err
	}
	if err := resp.err(); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// Create creates a new zone.
//
// Example:
//
//	zone, err := client.Zones.Create(ctx, exhibition.CreateZoneRequest{
//	    ZoneName:  "Hall A",
//	    ColorCode: "#112233",
//	})
func (s *ZonesService) Create(ctx context.Context, req CreateZoneRequest) (*Zone, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var resp envelope[Zone]
	if err := s.client.post(ctx, "/v1/admin/zone", req, &resp); err != nil {
		return nil, err
	}
	if err := resp.err(); err != nil {
		return nil, err
	}
	if len(resp.Results) == 0 {
		return nil, &Error{Message: "create zone returned no zone"}
	}
	return &resp.Results[0], nil
}

// Update replaces a zone's fields. The id must have been issued by a
// previous Create or List.
func (s *ZonesService) Update(ctx context.Context, id int, req CreateZoneRequest) (*Zone, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var resp envelope[Zone]
	if err := s.client.patch(ctx, fmt.Sprintf("/v1/admin/zone/%d", id), req, &resp); err != nil {
		return nil, err
	}
	if err := resp.err(); err != nil {
		return nil, err
	}
	if len(resp.Results) == 0 {
		return nil, &Error{Message: "update zone returned no zone"}
	}
	return &resp.Results[0], nil
}

// Delete removes a zone. The remote service rejects the delete when the
// zone still owns stalls; that rejection satisfies
// (*Error).IsZoneHasStalls.
func (s *ZonesService) Delete(ctx context.Context, id int) error {
	var resp envelope[Zone]
	if err := s.client.delete(ctx, fmt.Sprintf("/v1/admin/zone/%d", id), &resp); err != nil {
		return err
	}
	return resp.err()
}
