package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/facility-directory/internal/domain"
	"github.com/facility-directory/internal/domain/repository"
	"github.com/facility-directory/internal/pkg/errors"
	"github.com/facility-directory/internal/pkg/utils"
	"github.com/facility-directory/internal/usecase/dto"
)

// Category filter values accepted by the listing endpoint.
const (
	CategoryDiaperChangingStation = "Diaper Changing Station"
	CategoryLactationRoom         = "Lactation Room"
)

const listingCachePrefix = "listing:"

// ImageLister resolves the stored photos of a facility.
type ImageLister interface {
	List(ctx context.Context, facilityID int64) ([]domain.FacilityImageMeta, error)
}

// ListingUseCase serves the read side: facility listings, reference data and
// the facility detail view. Reads prefer the managed read API when one is
// configured and fall back to the relational gateway per data subset.
type ListingUseCase struct {
	reader    repository.ListingReader
	gateway   repository.FacilityRepository
	cacheRepo repository.CacheRepository
	images    ImageLister
	logger    *zap.Logger
	cacheTTL  time.Duration
}

func NewListingUseCase(
	reader repository.ListingReader,
	gateway repository.FacilityRepository,
	cacheRepo repository.CacheRepository,
	images ImageLister,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *ListingUseCase {
	return &ListingUseCase{
		reader:    reader,
		gateway:   gateway,
		cacheRepo: cacheRepo,
		images:    images,
		logger:    logger,
		cacheTTL:  cacheTTL,
	}
}

// ListFacilities returns facilities joined with their locations, filtered by
// category, sorted by distance from the reference point. Without explicit
// coordinates the city-centre default applies.
func (uc *ListingUseCase) ListFacilities(ctx context.Context, req dto.ListFacilitiesRequest) (*dto.ListFacilitiesResponse, error) {
	lat, lon := req.Lat, req.Lon
	if lat == 0 && lon == 0 {
		lat, lon = utils.DefaultLatitude, utils.DefaultLongitude
	}
	if !utils.ValidateCoordinates(lat, lon) {
		return nil, errors.ErrInvalidCoordinates
	}

	cacheKey := fmt.Sprintf("%sfacilities:%.4f:%.4f:%s:%d", listingCachePrefix, lat, lon, req.Category, req.Limit)
	if cached := uc.fromCache(ctx, cacheKey); cached != nil {
		var resp dto.ListFacilitiesResponse
		if err := json.Unmarshal(cached, &resp); err == nil {
			return &resp, nil
		}
	}

	locations, facilities, err := uc.fetchListing(ctx)
	if err != nil {
		return nil, err
	}

	locationByID := make(map[int64]domain.Location, len(locations))
	for _, loc := range locations {
		locationByID[loc.ID] = loc
	}

	items := make([]dto.FacilityListItem, 0, len(facilities))
	for _, f := range facilities {
		if !matchesCategory(f, req.Category) {
			continue
		}
		loc, ok := locationByID[f.LocationID]
		if !ok {
			uc.logger.Warn("Facility references unknown location",
				zap.Int64("facility_id", f.ID),
				zap.Int64("location_id", f.LocationID))
			continue
		}
		items = append(items, dto.FacilityListItem{
			Facility:   f,
			Location:   loc,
			DistanceKm: utils.HaversineDistance(lat, lon, loc.Latitude, loc.Longitude),
		})
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].DistanceKm < items[j].DistanceKm
	})
	if req.Limit > 0 && len(items) > req.Limit {
		items = items[:req.Limit]
	}

	resp := &dto.ListFacilitiesResponse{Facilities: items, Total: len(items)}
	uc.toCache(ctx, cacheKey, resp)
	return resp, nil
}

// ListFacilityTypes returns the reference list of facility types.
func (uc *ListingUseCase) ListFacilityTypes(ctx context.Context) (*dto.FacilityTypesResponse, error) {
	cacheKey := listingCachePrefix + "facility_types"
	if cached := uc.fromCache(ctx, cacheKey); cached != nil {
		var resp dto.FacilityTypesResponse
		if err := json.Unmarshal(cached, &resp); err == nil {
			return &resp, nil
		}
	}

	types, err := uc.readTypes(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(types, func(i, j int) bool {
		return types[i].DisplayOrder < types[j].DisplayOrder
	})

	resp := &dto.FacilityTypesResponse{FacilityTypes: types}
	uc.toCache(ctx, cacheKey, resp)
	return resp, nil
}

// ListAmenities returns the reference list of amenities. Amenities are not
// exposed by the read API, so this always goes through the gateway.
func (uc *ListingUseCase) ListAmenities(ctx context.Context) (*dto.AmenitiesResponse, error) {
	amenities, err := uc.gateway.ListAmenities(ctx)
	if err != nil {
		uc.logger.Error("Failed to list amenities", zap.Error(err))
		return nil, err
	}
	return &dto.AmenitiesResponse{Amenities: amenities}, nil
}

// GetFacility returns the detail view: facility, location, type, amenities
// and stored photos. Photo failures degrade to an empty list.
func (uc *ListingUseCase) GetFacility(ctx context.Context, id int64) (*dto.FacilityDetailResponse, error) {
	detail, err := uc.gateway.GetFacilityByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := &dto.FacilityDetailResponse{FacilityDetail: *detail}
	if uc.images != nil {
		metas, err := uc.images.List(ctx, id)
		if err != nil {
			uc.logger.Warn("Failed to list facility images", zap.Int64("facility_id", id), zap.Error(err))
		} else {
			resp.Images = metas
		}
	}
	return resp, nil
}

// InvalidateCache drops every cached listing; called after a successful
// submission.
func (uc *ListingUseCase) InvalidateCache(ctx context.Context) {
	if uc.cacheRepo == nil {
		return
	}
	if err := uc.cacheRepo.DeleteByPrefix(ctx, listingCachePrefix); err != nil {
		uc.logger.Warn("Failed to invalidate listing cache", zap.Error(err))
	}
}

// fetchListing pulls locations and facilities concurrently, applying the
// per-subset fallback: a subset read from the read API that errors or comes
// back empty is refilled from the gateway, independently of the other.
func (uc *ListingUseCase) fetchListing(ctx context.Context) ([]domain.Location, []domain.Facility, error) {
	var (
		wg         sync.WaitGroup
		locations  []domain.Location
		facilities []domain.Facility
		locErr     error
		facErr     error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		locations, locErr = uc.readLocations(ctx)
	}()
	go func() {
		defer wg.Done()
		facilities, facErr = uc.readFacilities(ctx)
	}()
	wg.Wait()

	if locErr != nil {
		return nil, nil, locErr
	}
	if facErr != nil {
		return nil, nil, facErr
	}
	return locations, facilities, nil
}

func (uc *ListingUseCase) readLocations(ctx context.Context) ([]domain.Location, error) {
	if uc.reader != nil {
		locations, err := uc.reader.ListLocations(ctx)
		if err == nil && len(locations) > 0 {
			return locations, nil
		}
		if err != nil {
			uc.logger.Warn("Read API failed for locations, falling back", zap.Error(err))
		}
	}
	locations, err := uc.gateway.ListLocations(ctx)
	if err != nil {
		uc.logger.Error("Failed to list locations", zap.Error(err))
		return nil, err
	}
	return locations, nil
}

func (uc *ListingUseCase) readFacilities(ctx context.Context) ([]domain.Facility, error) {
	if uc.reader != nil {
		facilities, err := uc.reader.ListFacilities(ctx)
		if err == nil && len(facilities) > 0 {
			return facilities, nil
		}
		if err != nil {
			uc.logger.Warn("Read API failed for facilities, falling back", zap.Error(err))
		}
	}
	facilities, err := uc.gateway.ListFacilities(ctx)
	if err != nil {
		uc.logger.Error("Failed to list facilities", zap.Error(err))
		return nil, err
	}
	return facilities, nil
}

func (uc *ListingUseCase) readTypes(ctx context.Context) ([]domain.FacilityType, error) {
	if uc.reader != nil {
		types, err := uc.reader.ListFacilityTypes(ctx)
		if err == nil && len(types) > 0 {
			return types, nil
		}
		if err != nil {
			uc.logger.Warn("Read API failed for facility types, falling back", zap.Error(err))
		}
	}
	types, err := uc.gateway.ListFacilityTypes(ctx)
	if err != nil {
		uc.logger.Error("Failed to list facility types", zap.Error(err))
		return nil, err
	}
	return types, nil
}

func (uc *ListingUseCase) fromCache(ctx context.Context, key string) []byte {
	if uc.cacheRepo == nil {
		return nil
	}
	data, err := uc.cacheRepo.Get(ctx, key)
	if err != nil {
		return nil
	}
	return data
}

func (uc *ListingUseCase) toCache(ctx context.Context, key string, value any) {
	if uc.cacheRepo == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := uc.cacheRepo.Set(ctx, key, data, uc.cacheTTL); err != nil {
		uc.logger.Debug("Failed to cache listing", zap.String("key", key), zap.Error(err))
	}
}

func matchesCategory(f domain.Facility, category string) bool {
	switch category {
	case "":
		return true
	case CategoryDiaperChangingStation:
		return f.HasDiaperChangingStation
	case CategoryLactationRoom:
		return f.HasLactationRoom
	default:
		return false
	}
}
