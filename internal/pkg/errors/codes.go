package errors

import "net/http"

var (
	// ErrAuthRequired blocks a submission before any network call is made.
	ErrAuthRequired = New(
		"AUTH_REQUIRED",
		"You must be signed in to submit a facility",
		http.StatusUnauthorized,
	)

	// ErrValidation covers missing or malformed draft fields.
	ErrValidation = New(
		"VALIDATION_ERROR",
		"Missing or invalid submission fields",
		http.StatusBadRequest,
	)

	// ErrUnexpectedResponse marks a non-JSON or unparsable server reply.
	// The draft is preserved so the user can resubmit.
	ErrUnexpectedResponse = New(
		"UNEXPECTED_RESPONSE",
		"Server returned an unexpected response",
		http.StatusBadGateway,
	)

	// ErrStorageFailure is the generic message for backend insert/select
	// errors; the underlying detail goes to the log, not the client.
	ErrStorageFailure = New(
		"STORAGE_FAILURE",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrFacilityNotFound = New(
		"FACILITY_NOT_FOUND",
		"Facility not found",
		http.StatusNotFound,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrGeocoderUnavailable = New(
		"GEOCODER_UNAVAILABLE",
		"Address lookup service is unavailable",
		http.StatusBadGateway,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
