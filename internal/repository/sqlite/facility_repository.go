package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/facility-directory/internal/domain"
	"github.com/facility-directory/internal/domain/repository"
	"github.com/facility-directory/internal/pkg/errors"
)

type ext interface {
	sqlx.ExtContext
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

type facilityRepository struct {
	q      ext
	db     *sqlx.DB // nil inside a transaction view
	logger *zap.Logger
}

func NewFacilityRepository(db *DB) repository.FacilityRepository {
	return &facilityRepository{
		q:      db.DB,
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *facilityRepository) ListLocations(ctx context.Context) ([]domain.Location, error) {
	query := `
		SELECT id, building, block, road, address, postal_code, latitude, longitude
		FROM locations
		ORDER BY id
	`

	locations := []domain.Location{}
	if err := r.q.SelectContext(ctx, &locations, query); err != nil {
		r.logger.Error("Failed to list locations", zap.Error(err))
		return nil, errors.ErrStorageFailure
	}
	return locations, nil
}

func (r *facilityRepository) ListFacilities(ctx context.Context) ([]domain.Facility, error) {
	query := `
		SELECT id, location_id, facility_type_id, floor, description,
			created_at, updated_at, has_diaper_changing_station,
			has_lactation_room, how_to_access, created_by, females_only
		FROM facilities
		ORDER BY id
	`

	facilities := []domain.Facility{}
	if err := r.q.SelectContext(ctx, &facilities, query); err != nil {
		r.logger.Error("Failed to list facilities", zap.Error(err))
		return nil, errors.ErrStorageFailure
	}
	return facilities, nil
}

func (r *facilityRepository) ListFacilityTypes(ctx context.Context) ([]domain.FacilityType, error) {
	query := `
		SELECT id, name, slug, description, display_order
		FROM facility_types
		ORDER BY display_order, id
	`

	types := []domain.FacilityType{}
	if err := r.q.SelectContext(ctx, &types, query); err != nil {
		r.logger.Error("Failed to list facility types", zap.Error(err))
		return nil, errors.ErrStorageFailure
	}
	return types, nil
}

func (r *facilityRepository) ListAmenities(ctx context.Context) ([]domain.Amenity, error) {
	query := `
		SELECT id, name, description, is_multiple_applicable
		FROM amenities
		ORDER BY id
	`

	amenities := []domain.Amenity{}
	if err := r.q.SelectContext(ctx, &amenities, query); err != nil {
		r.logger.Error("Failed to list amenities", zap.Error(err))
		return nil, errors.ErrStorageFailure
	}
	return amenities, nil
}

func (r *facilityRepository) GetFacilityByID(ctx context.Context, id int64) (*domain.FacilityDetail, error) {
	query := `
		SELECT id, location_id, facility_type_id, floor, description,
			created_at, updated_at, has_diaper_changing_station,
			has_lactation_room, how_to_access, created_by, females_only
		FROM facilities
		WHERE id = ?
	`

	var detail domain.FacilityDetail
	err := r.q.GetContext(ctx, &detail.Facility, query, id)
	if err == sql.ErrNoRows {
		return nil, errors.ErrFacilityNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get facility", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrStorageFailure
	}

	locQuery := `
		SELECT id, building, block, road, address, postal_code, latitude, longitude
		FROM locations
		WHERE id = ?
	`
	if err := r.q.GetContext(ctx, &detail.Location, locQuery, detail.LocationID); err != nil {
		r.logger.Error("Failed to get facility location", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrStorageFailure
	}

	typeQuery := `
		SELECT id, name, slug, description, display_order
		FROM facility_types
		WHERE id = ?
	`
	if err := r.q.GetContext(ctx, &detail.FacilityType, typeQuery, detail.FacilityTypeID); err != nil {
		r.logger.Error("Failed to get facility type", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrStorageFailure
	}

	amenityQuery := `
		SELECT fa.facility_id, fa.amenity_id, fa.quantity, a.name
		FROM facility_amenities fa
		JOIN amenities a ON a.id = fa.amenity_id
		WHERE fa.facility_id = ?
		ORDER BY fa.amenity_id
	`
	detail.Amenities = []domain.FacilityAmenity{}
	if err := r.q.SelectContext(ctx, &detail.Amenities, amenityQuery, id); err != nil {
		r.logger.Error("Failed to get facility amenities", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrStorageFailure
	}

	return &detail, nil
}

func (r *facilityRepository) GetLocationByAddress(ctx context.Context, address string) (*domain.Location, error) {
	query := `
		SELECT id, building, block, road, address, postal_code, latitude, longitude
		FROM locations
		WHERE address = ?
		LIMIT 1
	`

	var loc domain.Location
	err := r.q.GetContext(ctx, &loc, query, address)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to look up location by address", zap.Error(err))
		return nil, errors.ErrStorageFailure
	}
	return &loc, nil
}

func (r *facilityRepository) CreateLocation(ctx context.Context, loc domain.NewLocation) (int64, error) {
	query := `
		INSERT INTO locations (building, block, road, address, postal_code, latitude, longitude)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	res, err := r.q.ExecContext(ctx, query,
		loc.Building, loc.Block, loc.Road, loc.Address,
		loc.PostalCode, loc.Latitude, loc.Longitude,
	)
	if err != nil {
		r.logger.Error("Failed to create location", zap.String("address", loc.Address), zap.Error(err))
		return 0, errors.ErrStorageFailure
	}

	id, err := res.LastInsertId()
	if err != nil {
		r.logger.Error("Failed to read new location id", zap.Error(err))
		return 0, errors.ErrStorageFailure
	}
	return id, nil
}

func (r *facilityRepository) CreateFacility(ctx context.Context, f domain.NewFacility) (int64, error) {
	query := `
		INSERT INTO facilities (
			location_id, facility_type_id, floor, description,
			created_at, updated_at, has_diaper_changing_station,
			has_lactation_room, how_to_access, created_by, females_only
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	now := time.Now().UTC()
	res, err := r.q.ExecContext(ctx, query,
		f.LocationID, f.FacilityTypeID, f.Floor, f.Description,
		now, now, f.HasDiaperChangingStation,
		f.HasLactationRoom, f.HowToAccess, f.CreatedBy, f.FemalesOnly,
	)
	if err != nil {
		r.logger.Error("Failed to create facility",
			zap.Int64("location_id", f.LocationID),
			zap.Error(err),
		)
		return 0, errors.ErrStorageFailure
	}

	id, err := res.LastInsertId()
	if err != nil {
		r.logger.Error("Failed to read new facility id", zap.Error(err))
		return 0, errors.ErrStorageFailure
	}
	return id, nil
}

func (r *facilityRepository) AttachAmenities(ctx context.Context, facilityID int64, selections []domain.AmenitySelection) error {
	if len(selections) == 0 {
		return nil
	}

	query := `
		INSERT INTO facility_amenities (facility_id, amenity_id, quantity)
		VALUES (?, ?, ?)
	`

	for _, sel := range selections {
		if _, err := r.q.ExecContext(ctx, query, facilityID, sel.AmenityID, sel.Quantity); err != nil {
			r.logger.Error("Failed to attach amenity",
				zap.Int64("facility_id", facilityID),
				zap.Int64("amenity_id", sel.AmenityID),
				zap.Error(err),
			)
			return errors.ErrStorageFailure
		}
	}
	return nil
}

func (r *facilityRepository) InTx(ctx context.Context, fn func(repository.FacilityRepository) error) error {
	if r.db == nil {
		// Already transaction-bound; nested calls join the same tx.
		return fn(r)
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.logger.Error("Failed to begin transaction", zap.Error(err))
		return errors.ErrStorageFailure
	}

	txRepo := &facilityRepository{q: tx, logger: r.logger}
	if err := fn(txRepo); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			r.logger.Error("Failed to roll back transaction", zap.Error(rbErr))
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("Failed to commit transaction", zap.Error(err))
		return errors.ErrStorageFailure
	}
	return nil
}
