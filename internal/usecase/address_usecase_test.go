package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/facility-directory/internal/domain"
	"github.com/facility-directory/internal/usecase"
	"github.com/facility-directory/internal/usecase/dto"
)

func TestAddressUseCase_Search(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		geocoder := &MockGeocodeRepository{}
		geocoder.On("SearchAddress", ctx, "orchard", 10).Return([]domain.Address{
			{Road: "Orchard Road", Address: "123 Orchard Road", Latitude: 1.3039, Longitude: 103.8318},
		}, nil)

		uc := usecase.NewAddressUseCase(geocoder, logger)
		resp, err := uc.Search(ctx, dto.SearchAddressRequest{Query: "orchard"})

		require.NoError(t, err)
		assert.Equal(t, 1, resp.Total)
		assert.Equal(t, "Orchard Road", resp.Results[0].Road)
	})

	t.Run("blank query rejected without a geocoder call", func(t *testing.T) {
		geocoder := &MockGeocodeRepository{}
		uc := usecase.NewAddressUseCase(geocoder, logger)

		_, err := uc.Search(ctx, dto.SearchAddressRequest{Query: "   "})

		assert.Error(t, err)
		geocoder.AssertNotCalled(t, "SearchAddress", ctx, "", 10)
	})

	t.Run("geocoder failure propagates", func(t *testing.T) {
		geocoder := &MockGeocodeRepository{}
		geocoder.On("SearchAddress", ctx, "orchard", 10).Return(nil, assert.AnError)

		uc := usecase.NewAddressUseCase(geocoder, logger)
		_, err := uc.Search(ctx, dto.SearchAddressRequest{Query: "orchard"})

		assert.Error(t, err)
	})
}
