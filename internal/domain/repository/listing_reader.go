package repository

import (
	"context"

	"github.com/facility-directory/internal/domain"
)

// ListingReader is the read-only slice of the gateway used by the listing
// path. Both the managed read API client and the relational gateway satisfy
// it, which is what makes the per-subset fallback-fill policy testable.
type ListingReader interface {
	ListLocations(ctx context.Context) ([]domain.Location, error)
	ListFacilities(ctx context.Context) ([]domain.Facility, error)
	ListFacilityTypes(ctx context.Context) ([]domain.FacilityType, error)
}
