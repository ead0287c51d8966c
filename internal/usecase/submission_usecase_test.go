package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/facility-directory/internal/domain"
	"github.com/facility-directory/internal/pkg/errors"
	"github.com/facility-directory/internal/usecase"
)

func validForm() domain.SubmissionForm {
	return domain.SubmissionForm{
		FacilityTypeID: 2,
		Road:           "Orchard Road",
		Address:        "123 Orchard Road",
		Latitude:       1.3039,
		Longitude:      103.8318,
	}
}

func TestSubmissionUseCase_Submit(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("new address creates location and facility", func(t *testing.T) {
		repo := &MockFacilityRepository{}
		uc := usecase.NewSubmissionUseCase(repo, nil, logger)

		repo.On("InTx", ctx).Return(nil)
		repo.On("GetLocationByAddress", ctx, "123 Orchard Road").Return(nil, nil)
		repo.On("CreateLocation", ctx, mock.MatchedBy(func(loc domain.NewLocation) bool {
			return loc.Address == "123 Orchard Road" && loc.Road == "Orchard Road"
		})).Return(int64(10), nil)
		repo.On("CreateFacility", ctx, mock.MatchedBy(func(f domain.NewFacility) bool {
			return f.LocationID == 10 && f.FacilityTypeID == 2 && f.CreatedBy == "user-1"
		})).Return(int64(42), nil)
		repo.On("AttachAmenities", ctx, int64(42), []domain.AmenitySelection{}).Return(nil)

		facilityID, err := uc.Submit(ctx, validForm(), "user-1")

		assert.NoError(t, err)
		assert.Equal(t, int64(42), facilityID)
		repo.AssertExpectations(t)
	})

	t.Run("existing address reuses location", func(t *testing.T) {
		repo := &MockFacilityRepository{}
		uc := usecase.NewSubmissionUseCase(repo, nil, logger)

		repo.On("InTx", ctx).Return(nil)
		repo.On("GetLocationByAddress", ctx, "123 Orchard Road").
			Return(&domain.Location{ID: 7, Address: "123 Orchard Road"}, nil)
		repo.On("CreateFacility", ctx, mock.MatchedBy(func(f domain.NewFacility) bool {
			return f.LocationID == 7
		})).Return(int64(43), nil)
		repo.On("AttachAmenities", ctx, int64(43), []domain.AmenitySelection{}).Return(nil)

		facilityID, err := uc.Submit(ctx, validForm(), "user-1")

		assert.NoError(t, err)
		assert.Equal(t, int64(43), facilityID)
		repo.AssertNotCalled(t, "CreateLocation", mock.Anything, mock.Anything)
	})

	t.Run("amenity quantities default to one", func(t *testing.T) {
		repo := &MockFacilityRepository{}
		uc := usecase.NewSubmissionUseCase(repo, nil, logger)

		form := validForm()
		form.Amenities = []int64{5, 7}
		form.AmenityQuantities = map[int64]int{5: 2}

		repo.On("InTx", ctx).Return(nil)
		repo.On("GetLocationByAddress", ctx, form.Address).Return(&domain.Location{ID: 1}, nil)
		repo.On("CreateFacility", ctx, mock.Anything).Return(int64(50), nil)
		repo.On("AttachAmenities", ctx, int64(50), []domain.AmenitySelection{
			{AmenityID: 5, Quantity: 2},
			{AmenityID: 7, Quantity: 1},
		}).Return(nil)

		_, err := uc.Submit(ctx, form, "user-1")

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("missing user is rejected before any persistence", func(t *testing.T) {
		repo := &MockFacilityRepository{}
		uc := usecase.NewSubmissionUseCase(repo, nil, logger)

		_, err := uc.Submit(ctx, validForm(), "")

		assert.ErrorIs(t, err, errors.ErrAuthRequired)
		repo.AssertNotCalled(t, "InTx", mock.Anything)
	})

	t.Run("invalid form fails validation", func(t *testing.T) {
		repo := &MockFacilityRepository{}
		uc := usecase.NewSubmissionUseCase(repo, nil, logger)

		form := validForm()
		form.Address = ""

		_, err := uc.Submit(ctx, form, "user-1")

		assert.ErrorIs(t, err, errors.ErrValidation)
		repo.AssertNotCalled(t, "InTx", mock.Anything)
	})

	t.Run("out-of-range coordinates are rejected", func(t *testing.T) {
		repo := &MockFacilityRepository{}
		uc := usecase.NewSubmissionUseCase(repo, nil, logger)

		form := validForm()
		form.Latitude = 95

		_, err := uc.Submit(ctx, form, "user-1")

		assert.Error(t, err)
		repo.AssertNotCalled(t, "InTx", mock.Anything)
	})

	t.Run("facility insert failure aborts the transaction", func(t *testing.T) {
		repo := &MockFacilityRepository{}
		uc := usecase.NewSubmissionUseCase(repo, nil, logger)

		repo.On("InTx", ctx).Return(nil)
		repo.On("GetLocationByAddress", ctx, "123 Orchard Road").Return(&domain.Location{ID: 1}, nil)
		repo.On("CreateFacility", ctx, mock.Anything).Return(int64(0), errors.ErrStorageFailure)

		_, err := uc.Submit(ctx, validForm(), "user-1")

		assert.ErrorIs(t, err, errors.ErrStorageFailure)
		repo.AssertNotCalled(t, "AttachAmenities", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("cache invalidated after success", func(t *testing.T) {
		repo := &MockFacilityRepository{}
		invalidator := &stubInvalidator{}
		uc := usecase.NewSubmissionUseCase(repo, invalidator, logger)

		repo.On("InTx", ctx).Return(nil)
		repo.On("GetLocationByAddress", ctx, "123 Orchard Road").Return(&domain.Location{ID: 1}, nil)
		repo.On("CreateFacility", ctx, mock.Anything).Return(int64(60), nil)
		repo.On("AttachAmenities", ctx, int64(60), []domain.AmenitySelection{}).Return(nil)

		_, err := uc.Submit(ctx, validForm(), "user-1")

		assert.NoError(t, err)
		assert.Equal(t, 1, invalidator.calls)
	})
}

type stubInvalidator struct {
	calls int
}

func (s *stubInvalidator) InvalidateCache(context.Context) {
	s.calls++
}
