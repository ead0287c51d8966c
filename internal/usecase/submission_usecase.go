package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/facility-directory/internal/domain"
	"github.com/facility-directory/internal/domain/repository"
	"github.com/facility-directory/internal/pkg/errors"
	"github.com/facility-directory/internal/pkg/utils"
	"github.com/facility-directory/internal/pkg/validator"
)

// CacheInvalidator drops derived read caches after a write.
type CacheInvalidator interface {
	InvalidateCache(ctx context.Context)
}

// SubmissionUseCase handles the write side: turning a validated submission
// form into location, facility and amenity rows in one transaction.
type SubmissionUseCase struct {
	gateway     repository.FacilityRepository
	invalidator CacheInvalidator
	logger      *zap.Logger
}

func NewSubmissionUseCase(
	gateway repository.FacilityRepository,
	invalidator CacheInvalidator,
	logger *zap.Logger,
) *SubmissionUseCase {
	return &SubmissionUseCase{
		gateway:     gateway,
		invalidator: invalidator,
		logger:      logger,
	}
}

// Submit persists one facility submission. The address decides whether an
// existing location is reused or a new one is created; either way the
// location lookup, the inserts and the amenity rows commit or roll back
// together. Returns the new facility id.
func (uc *SubmissionUseCase) Submit(ctx context.Context, form domain.SubmissionForm, userID string) (int64, error) {
	if userID == "" {
		return 0, errors.ErrAuthRequired
	}
	if err := validator.Validate(form); err != nil {
		return 0, errors.ErrValidation.WithDetails(map[string]interface{}{"validation": err.Error()})
	}
	if !utils.ValidateCoordinates(form.Latitude, form.Longitude) {
		return 0, errors.ErrInvalidCoordinates
	}

	var facilityID int64
	err := uc.gateway.InTx(ctx, func(tx repository.FacilityRepository) error {
		locationID, err := uc.resolveLocation(ctx, tx, form)
		if err != nil {
			return err
		}

		facilityID, err = tx.CreateFacility(ctx, domain.NewFacility{
			LocationID:               locationID,
			FacilityTypeID:           form.FacilityTypeID,
			Floor:                    optional(form.Floor),
			Description:              optional(form.Description),
			HasDiaperChangingStation: form.HasDiaperChangingStation,
			HasLactationRoom:         form.HasLactationRoom,
			HowToAccess:              optional(form.HowToAccess),
			CreatedBy:                userID,
			FemalesOnly:              form.FemalesOnly,
		})
		if err != nil {
			return err
		}

		return tx.AttachAmenities(ctx, facilityID, amenitySelections(form))
	})
	if err != nil {
		uc.logger.Error("Facility submission failed",
			zap.String("user_id", userID),
			zap.String("address", form.Address),
			zap.Error(err))
		return 0, err
	}

	uc.logger.Info("Facility submitted",
		zap.Int64("facility_id", facilityID),
		zap.String("user_id", userID))

	if uc.invalidator != nil {
		uc.invalidator.InvalidateCache(ctx)
	}
	return facilityID, nil
}

// resolveLocation reuses the location with the same address when one exists,
// otherwise inserts a new one.
func (uc *SubmissionUseCase) resolveLocation(ctx context.Context, tx repository.FacilityRepository, form domain.SubmissionForm) (int64, error) {
	existing, err := tx.GetLocationByAddress(ctx, form.Address)
	if err != nil {
		return 0, err
	}
	if existing != nil {
		return existing.ID, nil
	}

	return tx.CreateLocation(ctx, domain.NewLocation{
		Building:   optional(form.Building),
		Block:      optional(form.Block),
		Road:       form.Road,
		Address:    form.Address,
		PostalCode: optional(form.PostalCode),
		Latitude:   form.Latitude,
		Longitude:  form.Longitude,
	})
}

// amenitySelections pairs each selected amenity with its quantity. A missing
// or non-positive quantity means 1.
func amenitySelections(form domain.SubmissionForm) []domain.AmenitySelection {
	selections := make([]domain.AmenitySelection, 0, len(form.Amenities))
	for _, id := range form.Amenities {
		qty := form.AmenityQuantities[id]
		if qty < 1 {
			qty = 1
		}
		selections = append(selections, domain.AmenitySelection{AmenityID: id, Quantity: qty})
	}
	return selections
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
