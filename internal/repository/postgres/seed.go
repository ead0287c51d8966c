package postgres

import (
	"context"
	"database/sql"

	"go.uber.org/zap"

	"github.com/facility-directory/internal/domain"
	"github.com/facility-directory/internal/pkg/errors"
)

// UpsertFacilityType inserts the type or returns the id of the existing row
// with the same name.
func (r *facilityRepository) UpsertFacilityType(ctx context.Context, ft domain.FacilityType) (int64, error) {
	var id int64
	err := r.q.GetContext(ctx, &id, `SELECT id FROM facility_types WHERE name = $1`, ft.Name)
	if err == nil {
		return id, nil
	}
	if err != sql.ErrNoRows {
		r.logger.Error("Failed to look up facility type", zap.String("name", ft.Name), zap.Error(err))
		return 0, errors.ErrStorageFailure
	}

	err = r.q.QueryRowxContext(ctx, `
		INSERT INTO facility_types (name, slug, description, display_order)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, ft.Name, ft.Slug, ft.Description, ft.DisplayOrder).Scan(&id)
	if err != nil {
		r.logger.Error("Failed to insert facility type", zap.String("name", ft.Name), zap.Error(err))
		return 0, errors.ErrStorageFailure
	}
	return id, nil
}

// UpsertAmenity inserts the amenity or returns the id of the existing row
// with the same name.
func (r *facilityRepository) UpsertAmenity(ctx context.Context, a domain.Amenity) (int64, error) {
	var id int64
	err := r.q.GetContext(ctx, &id, `SELECT id FROM amenities WHERE name = $1`, a.Name)
	if err == nil {
		return id, nil
	}
	if err != sql.ErrNoRows {
		r.logger.Error("Failed to look up amenity", zap.String("name", a.Name), zap.Error(err))
		return 0, errors.ErrStorageFailure
	}

	err = r.q.QueryRowxContext(ctx, `
		INSERT INTO amenities (name, description, is_multiple_applicable)
		VALUES ($1, $2, $3)
		RETURNING id
	`, a.Name, a.Description, a.IsMultipleApplicable).Scan(&id)
	if err != nil {
		r.logger.Error("Failed to insert amenity", zap.String("name", a.Name), zap.Error(err))
		return 0, errors.ErrStorageFailure
	}
	return id, nil
}
