package repository

import (
	"context"

	"github.com/facility-directory/internal/domain"
)

// FacilityRepository is the persistence gateway: one read/write contract over
// both the remote Postgres backend and the embedded SQLite backend. The
// concrete implementation is selected once at process start.
type FacilityRepository interface {
	ListLocations(ctx context.Context) ([]domain.Location, error)
	ListFacilities(ctx context.Context) ([]domain.Facility, error)
	ListFacilityTypes(ctx context.Context) ([]domain.FacilityType, error)
	ListAmenities(ctx context.Context) ([]domain.Amenity, error)
	GetFacilityByID(ctx context.Context, id int64) (*domain.FacilityDetail, error)
	GetLocationByAddress(ctx context.Context, address string) (*domain.Location, error)

	CreateLocation(ctx context.Context, loc domain.NewLocation) (int64, error)
	CreateFacility(ctx context.Context, f domain.NewFacility) (int64, error)
	AttachAmenities(ctx context.Context, facilityID int64, selections []domain.AmenitySelection) error

	// InTx runs fn against a repository view bound to a single transaction.
	// Any error from fn rolls the whole sequence back.
	InTx(ctx context.Context, fn func(FacilityRepository) error) error
}
