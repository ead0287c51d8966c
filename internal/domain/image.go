package domain

// ImageCategory tags where a facility photo was taken.
type ImageCategory string

const (
	ImageCategoryFacility     ImageCategory = "facility"
	ImageCategoryEntrance     ImageCategory = "entrance"
	ImageCategorySurroundings ImageCategory = "surroundings"
)

// FacilityImageMeta describes one stored photo. For the remote strategy URL
// is a public object-storage URL; for the local strategy it is an inline
// data URL. Per-facility lists keep append order only.
type FacilityImageMeta struct {
	URL      string        `json:"url"`
	Category ImageCategory `json:"category,omitempty"`
}
