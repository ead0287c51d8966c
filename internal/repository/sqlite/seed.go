package sqlite

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
	err := r.q.GetContext(ctx, &id, `SELECT id FROM facility_types WHERE name = ?`, ft.Name)
	if err == nil {
		return id, nil
	}
	if err != sql.ErrNoRows {
		r.logger.Error("Failed to look up facility type", zap.String("name", ft.Name), zap.Error(err))
		return 0, errors.ErrStorageFailure
	}

	res, err := r.q.ExecContext(ctx, `
		INSERT INTO facility_types (name, slug, description, display_order)
		VALUES (?, ?, ?, ?)
	`, ft.Name, ft.Slug, ft.Description, ft.DisplayOrder)
	if err != nil {
		r.logger.Error("Failed to insert facility type", zap.String("name", ft.Name), zap.Error(err))
		return 0, errors.ErrStorageFailure
	}

	id, err = res.LastInsertId()
	if err != nil {
		r.logger.Error("Failed to read new facility type id", zap.Error(err))
		return 0, errors.ErrStorageFailure
	}
	return id, nil
}

// UpsertAmenity inserts the amenity or returns the id of the existing row
// with the same name.
func (r *facilityRepository) UpsertAmenity(ctx context.Context, a domain.Amenity) (int64, error) {
	var id int64
	err := r.q.GetContext(ctx, &id, `SELECT id FROM amenities WHERE name = ?`, a.Name)
	if err == nil {
		return id, nil
	}
	if err != sql.ErrNoRows {
		r.logger.Error("Failed to look up amenity", zap.String("name", a.Name), zap.Error(err))
		return 0, errors.ErrStorageFailure
	}

	res, err := r.q.ExecContext(ctx, `
		INSERT INTO amenities (name, description, is_multiple_applicable)
		VALUES (?, ?, ?)
	`, a.Name, a.Description, a.IsMultipleApplicable)
	if err != nil {
		r.logger.Error("Failed to insert amenity", zap.String("name", a.Name), zap.Error(err))
		return 0, errors.ErrStorageFailure
	}

	id, err = res.LastInsertId()
	if err != nil {
		r.logger.Error("Failed to read new amenity id", zap.Error(err))
		return 0, errors.ErrStorageFailure
	}
	return id, nil
}
