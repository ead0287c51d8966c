package repository

import (
	"context"

	"github.com/facility-directory/internal/domain"
)

// GeocodeRepository looks up addresses by free-text query against the
// external geocoding service.
type GeocodeRepository interface {
	SearchAddress(ctx context.Context, query string, limit int) ([]domain.Address, error)
}
