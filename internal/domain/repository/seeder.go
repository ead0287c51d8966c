package repository

import (
	"context"

	"github.com/facility-directory/internal/domain"
)

// ReferenceSeeder is the write surface for reference data. Only the seeding
// tool uses it; the API never creates facility types or amenities.
type ReferenceSeeder interface {
	UpsertFacilityType(ctx context.Context, ft domain.FacilityType) (int64, error)
	UpsertAmenity(ctx context.Context, a domain.Amenity) (int64, error)
}
