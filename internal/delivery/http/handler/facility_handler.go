package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/facility-directory/internal/pkg/errors"
	"github.com/facility-directory/internal/pkg/utils"
	"github.com/facility-directory/internal/pkg/validator"
	"github.com/facility-directory/internal/usecase"
	"github.com/facility-directory/internal/usecase/dto"
)

// FacilityHandler - handler for facility listings and reference data
type FacilityHandler struct {
	listingUC *usecase.ListingUseCase
	logger    *zap.Logger
}

// NewFacilityHandler - creates a new FacilityHandler
func NewFacilityHandler(listingUC *usecase.ListingUseCase, logger *zap.Logger) *FacilityHandler {
	return &FacilityHandler{
		listingUC: listingUC,
		logger:    logger,
	}
}

// ListFacilities godoc
// @Summary List facilities near a point
// @Description Returns facilities joined with their locations, sorted by distance from the given coordinates. Without coordinates the city-centre default is used.
// @Tags Facilities
// @Produce json
// @Param lat query number false "Reference latitude"
// @Param lon query number false "Reference longitude"
// @Param category query string false "Filter: Diaper Changing Station or Lactation Room"
// @Param limit query int false "Maximum number of results"
// @Success 200 {object} utils.SuccessResponse{data=dto.ListFacilitiesResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/facilities [get]
func (h *FacilityHandler) ListFacilities(c *fiber.Ctx) error {
	var req dto.ListFacilitiesRequest
	req.Lat = c.QueryFloat("lat")
	req.Lon = c.QueryFloat("lon")
	req.Category = c.Query("category")
	req.Limit = c.QueryInt("limit")

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrValidation.WithMessage(err.Error()))
	}

	result, err := h.listingUC.ListFacilities(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}

// GetFacility godoc
// @Summary Get one facility
// @Description Returns a facility with its location, type, amenities and stored photos.
// @Tags Facilities
// @Produce json
// @Param id path int true "Facility ID"
// @Success 200 {object} utils.SuccessResponse{data=dto.FacilityDetailResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/facilities/{id} [get]
func (h *FacilityHandler) GetFacility(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage("facility id must be a positive integer"))
	}

	result, err := h.listingUC.GetFacility(c.Context(), int64(id))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// ListFacilityTypes godoc
// @Summary List facility types
// @Tags Reference
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.FacilityTypesResponse}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/facility-types [get]
func (h *FacilityHandler) ListFacilityTypes(c *fiber.Ctx) error {
	result, err := h.listingUC.ListFacilityTypes(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, nil)
}

// ListAmenities godoc
// @Summary List amenities
// @Tags Reference
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.AmenitiesResponse}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/amenities [get]
func (h *FacilityHandler) ListAmenities(c *fiber.Ctx) error {
	result, err := h.listingUC.ListAmenities(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, nil)
}
