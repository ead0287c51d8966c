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

// AddressHandler - handler for geocoder address search
type AddressHandler struct {
	addressUC *usecase.AddressUseCase
	logger    *zap.Logger
}

// NewAddressHandler - creates a new AddressHandler
func NewAddressHandler(addressUC *usecase.AddressUseCase, logger *zap.Logger) *AddressHandler {
	return &AddressHandler{
		addressUC: addressUC,
		logger:    logger,
	}
}

// SearchAddress godoc
// @Summary Search addresses
// @Description Resolves a free-text query into candidate addresses with coordinates via the national geocoder.
// @Tags Search
// @Produce json
// @Param q query string true "Search query (minimum 2 characters)"
// @Param limit query int false "Maximum number of results" default(10)
// @Success 200 {object} utils.SuccessResponse{data=dto.SearchAddressResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/search/address [get]
func (h *AddressHandler) SearchAddress(c *fiber.Ctx) error {
	var req dto.SearchAddressRequest
	req.Query = c.Query("q")
	req.Limit = c.QueryInt("limit", 10)

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrValidation.WithMessage(err.Error()))
	}

	result, err := h.addressUC.Search(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}
