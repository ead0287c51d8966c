package handler

import (
	stderrors "errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/facility-directory/internal/pkg/errors"
	"github.com/facility-directory/internal/usecase"
	"github.com/facility-directory/internal/usecase/dto"
)

// SubmissionHandler - handler for the facility submission endpoint. The
// response body keeps the {success, message, facilityId} shape the web
// client consumes, on both the success and the failure path.
type SubmissionHandler struct {
	submissionUC *usecase.SubmissionUseCase
	logger       *zap.Logger
}

// NewSubmissionHandler - creates a new SubmissionHandler
func NewSubmissionHandler(submissionUC *usecase.SubmissionUseCase, logger *zap.Logger) *SubmissionHandler {
	return &SubmissionHandler{
		submissionUC: submissionUC,
		logger:       logger,
	}
}

// SubmitFacility godoc
// @Summary Submit a new facility
// @Description Persists a submitted facility form: the location is reused or created by address, then the facility and its amenities are written in one transaction.
// @Tags Facilities
// @Accept json
// @Produce json
// @Param request body dto.SubmitFacilityRequest true "Submission payload"
// @Success 200 {object} dto.SubmitFacilityResponse
// @Failure 400 {object} dto.SubmitFacilityResponse
// @Failure 401 {object} dto.SubmitFacilityResponse
// @Failure 500 {object} dto.SubmitFacilityResponse
// @Router /api/submitFacility [post]
func (h *SubmissionHandler) SubmitFacility(c *fiber.Ctx) error {
	var req dto.SubmitFacilityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.SubmitFacilityResponse{
			Success: false,
			Message: "invalid request body",
		})
	}

	facilityID, err := h.submissionUC.Submit(c.Context(), req.FormData, req.UserID)
	if err != nil {
		return c.Status(statusFor(err)).JSON(dto.SubmitFacilityResponse{
			Success: false,
			Message: messageFor(err),
		})
	}

	return c.JSON(dto.SubmitFacilityResponse{
		Success:    true,
		Message:    "Facility submitted successfully",
		FacilityID: facilityID,
	})
}

func statusFor(err error) int {
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return fiber.StatusInternalServerError
}

func messageFor(err error) string {
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		return appErr.Message
	}
	return "failed to submit facility"
}
