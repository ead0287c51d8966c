package domain

// SubmissionForm is the validated record a six-step submission produces.
// JSON tags match the wire form the web client posts; validation runs at the
// endpoint boundary instead of trusting the client-supplied shape.
type SubmissionForm struct {
	FacilityTypeID int64  `json:"facilityTypeId" validate:"required,gt=0"`
	Building       string `json:"building,omitempty"`
	Block          string `json:"block,omitempty"`
	Road           string `json:"road" validate:"required"`
	Address        string `json:"address" validate:"required"`
	PostalCode     string `json:"postalCode,omitempty"`

	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`

	Floor                    string `json:"floor,omitempty"`
	Description              string `json:"description,omitempty"`
	HasDiaperChangingStation bool   `json:"hasDiaperChangingStation"`
	HasLactationRoom         bool   `json:"hasLactationRoom"`
	HowToAccess              string `json:"howToAccess,omitempty"`
	FemalesOnly              bool   `json:"femalesOnly"`

	Amenities []int64 `json:"amenities,omitempty"`
	// AmenityQuantities is keyed by amenity id; absent or non-positive
	// entries fall back to quantity 1.
	AmenityQuantities map[int64]int `json:"amenityQuantities,omitempty" validate:"omitempty,dive,gte=0"`
}
