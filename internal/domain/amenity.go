package domain

// Amenity is reference data describing equipment a facility may provide.
type Amenity struct {
	ID                   int64   `db:"id" json:"id"`
	Name                 string  `db:"name" json:"name"`
	Description          *string `db:"description" json:"description,omitempty"`
	IsMultipleApplicable bool    `db:"is_multiple_applicable" json:"is_multiple_applicable"`
}

// FacilityAmenity is one row of the facility/amenity join: at most one row
// per (facility, amenity) pair, quantity defaulting to 1.
type FacilityAmenity struct {
	FacilityID int64  `db:"facility_id" json:"facility_id"`
	AmenityID  int64  `db:"amenity_id" json:"amenity_id"`
	Quantity   int    `db:"quantity" json:"quantity"`
	Name       string `db:"name" json:"name,omitempty"`
}

// AmenitySelection is what a submission attaches to a new facility.
type AmenitySelection struct {
	AmenityID int64
	Quantity  int
}
