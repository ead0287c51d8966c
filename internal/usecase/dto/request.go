package dto

import "github.com/facility-directory/internal/domain"

// SubmitFacilityRequest - body of POST /api/submitFacility
type SubmitFacilityRequest struct {
	FormData domain.SubmissionForm `json:"formData" validate:"required"`
	UserID   string                `json:"userId"`
}

// ListFacilitiesRequest - query parameters for the facility listing
type ListFacilitiesRequest struct {
	Lat      float64 `query:"lat" validate:"omitempty,min=-90,max=90"`
	Lon      float64 `query:"lon" validate:"omitempty,min=-180,max=180"`
	Category string  `query:"category" validate:"omitempty,oneof='Diaper Changing Station' 'Lactation Room'"`
	Limit    int     `query:"limit" validate:"omitempty,min=1,max=500"`
}

// SearchAddressRequest - query parameters for address search
type SearchAddressRequest struct {
	Query string `query:"q" validate:"required,min=2"`
	Limit int    `query:"limit" validate:"omitempty,min=1,max=50"`
}
