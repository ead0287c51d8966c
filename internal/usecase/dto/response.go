package dto

import "github.com/facility-directory/internal/domain"

// SubmitFacilityResponse - body returned by POST /api/submitFacility
type SubmitFacilityResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	FacilityID int64  `json:"facilityId,omitempty"`
}

// ListFacilitiesResponse - facility listing with joined locations
type ListFacilitiesResponse struct {
	Facilities []FacilityListItem `json:"facilities"`
	Total      int                `json:"total"`
}

// FacilityListItem - one listed facility with its location and the distance
// from the reference point
type FacilityListItem struct {
	domain.Facility
	Location   domain.Location `json:"location"`
	DistanceKm float64         `json:"distance_km"`
}

// FacilityDetailResponse - single facility with location, type, amenities
// and stored photos
type FacilityDetailResponse struct {
	domain.FacilityDetail
	Images []domain.FacilityImageMeta `json:"images"`
}

// FacilityTypesResponse - reference list of facility types
type FacilityTypesResponse struct {
	FacilityTypes []domain.FacilityType `json:"facility_types"`
}

// AmenitiesResponse - reference list of amenities
type AmenitiesResponse struct {
	Amenities []domain.Amenity `json:"amenities"`
}

// SearchAddressResponse - geocoder matches for an address query
type SearchAddressResponse struct {
	Results []domain.Address `json:"results"`
	Total   int              `json:"total"`
}
