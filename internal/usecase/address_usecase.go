package usecase

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/facility-directory/internal/domain/repository"
	"github.com/facility-directory/internal/pkg/errors"
	"github.com/facility-directory/internal/usecase/dto"
)

// AddressUseCase wraps the geocoder for the address-search step of the
// submission flow.
type AddressUseCase struct {
	geocoder repository.GeocodeRepository
	logger   *zap.Logger
}

func NewAddressUseCase(geocoder repository.GeocodeRepository, logger *zap.Logger) *AddressUseCase {
	return &AddressUseCase{
		geocoder: geocoder,
		logger:   logger,
	}
}

// Search resolves an address query into candidate addresses.
func (uc *AddressUseCase) Search(ctx context.Context, req dto.SearchAddressRequest) (*dto.SearchAddressResponse, error) {
	query := strings.TrimSpace(req.Query)
	if query == "" {
		return nil, errors.ErrInvalidRequest.WithMessage("search query is required")
	}
	if req.Limit == 0 {
		req.Limit = 10
	}

	addresses, err := uc.geocoder.SearchAddress(ctx, query, req.Limit)
	if err != nil {
		uc.logger.Error("Address search failed", zap.String("query", query), zap.Error(err))
		return nil, err
	}

	return &dto.SearchAddressResponse{
		Results: addresses,
		Total:   len(addresses),
	}, nil
}
