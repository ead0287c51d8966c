package domain

import "time"

// Facility is a point-of-interest record (diaper-changing station, lactation
// room and similar) tied to a Location.
type Facility struct {
	ID                       int64     `db:"id" json:"id"`
	LocationID               int64     `db:"location_id" json:"location_id"`
	FacilityTypeID           int64     `db:"facility_type_id" json:"facility_type_id"`
	Floor                    *string   `db:"floor" json:"floor,omitempty"`
	Description              *string   `db:"description" json:"description,omitempty"`
	CreatedAt                time.Time `db:"created_at" json:"created_at"`
	UpdatedAt                time.Time `db:"updated_at" json:"updated_at"`
	HasDiaperChangingStation bool      `db:"has_diaper_changing_station" json:"has_diaper_changing_station"`
	HasLactationRoom         bool      `db:"has_lactation_room" json:"has_lactation_room"`
	HowToAccess              *string   `db:"how_to_access" json:"how_to_access,omitempty"`
	CreatedBy                string    `db:"created_by" json:"created_by"`
	FemalesOnly              bool      `db:"females_only" json:"females_only"`
}

// NewFacility carries the fields of a facility insert.
type NewFacility struct {
	LocationID               int64
	FacilityTypeID           int64
	Floor                    *string
	Description              *string
	HasDiaperChangingStation bool
	HasLactationRoom         bool
	HowToAccess              *string
	CreatedBy                string
	FemalesOnly              bool
}

// FacilityType is reference data, never user-created.
type FacilityType struct {
	ID           int64   `db:"id" json:"id"`
	Name         string  `db:"name" json:"name"`
	Slug         *string `db:"slug" json:"slug,omitempty"`
	Description  *string `db:"description" json:"description,omitempty"`
	DisplayOrder int     `db:"display_order" json:"display_order"`
}

// FacilityDetail joins a facility with its location, type name and amenities
// for the detail view.
type FacilityDetail struct {
	Facility
	Location     Location          `json:"location"`
	FacilityType FacilityType      `json:"facility_type"`
	Amenities    []FacilityAmenity `json:"amenities"`
}
