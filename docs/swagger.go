// Package docs Facility Directory API.
//
// Service for finding and submitting nearby baby-care facilities:
// diaper changing stations, lactation rooms and related amenities.
//
// Main capabilities:
// - Facility listings sorted by distance from a reference point
// - Facility submission with location de-duplication by address
// - Address search via the national geocoder
// - Reference data: facility types and amenities
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
// swagger:meta
package docs
