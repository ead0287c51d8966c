package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/facility-directory/internal/config"
	"github.com/facility-directory/internal/domain"
	"github.com/facility-directory/internal/domain/repository"
	"github.com/facility-directory/internal/pkg/logger"
	"github.com/facility-directory/internal/repository/postgres"
	"github.com/facility-directory/internal/repository/sqlite"
)

type facilityTypeSeed struct {
	Name         string  `json:"name"`
	Slug         *string `json:"slug,omitempty"`
	Description  *string `json:"description,omitempty"`
	DisplayOrder int     `json:"displayOrder"`
}

type amenitySeed struct {
	Name                 string  `json:"name"`
	Description          *string `json:"description,omitempty"`
	IsMultipleApplicable bool    `json:"isMultipleApplicable"`
}

type locationSeed struct {
	Building   *string `json:"building,omitempty"`
	Block      *string `json:"block,omitempty"`
	Road       string  `json:"road"`
	Address    string  `json:"address"`
	PostalCode *string `json:"postalCode,omitempty"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
}

type facilityAmenitySeed struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type facilitySeed struct {
	FacilityType             string                `json:"facilityType"`
	Location                 locationSeed          `json:"location"`
	Floor                    *string               `json:"floor,omitempty"`
	Description              *string               `json:"description,omitempty"`
	HasDiaperChangingStation bool                  `json:"hasDiaperChangingStation"`
	HasLactationRoom         bool                  `json:"hasLactationRoom"`
	HowToAccess              *string               `json:"howToAccess,omitempty"`
	FemalesOnly              bool                  `json:"femalesOnly"`
	Amenities                []facilityAmenitySeed `json:"amenities,omitempty"`
}

func main() {
	dataDir := flag.String("data", "./data", "directory with seed JSON files")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	backend, err := cfg.ResolveBackend()
	if err != nil {
		log.Fatal("Failed to resolve persistence backend", zap.Error(err))
	}

	var gateway repository.FacilityRepository
	switch backend {
	case config.BackendPostgres:
		db, err := postgres.New(&cfg.Database, log)
		if err != nil {
			log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
		}
		defer db.Close()
		gateway = postgres.NewFacilityRepository(db)
	case config.BackendSQLite:
		db, err := sqlite.New(&cfg.SQLite, log)
		if err != nil {
			log.Fatal("Failed to open embedded database", zap.Error(err))
		}
		defer db.Close()
		gateway = sqlite.NewFacilityRepository(db)
	}

	log.Info("Seeding", zap.String("backend", string(backend)), zap.String("data_dir", *dataDir))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := seed(ctx, gateway, *dataDir, log); err != nil {
		log.Fatal("Seeding failed", zap.Error(err))
	}

	log.Info("Seeding complete")
}

func seed(ctx context.Context, gateway repository.FacilityRepository, dataDir string, log *zap.Logger) error {
	var types []facilityTypeSeed
	if err := loadJSON(filepath.Join(dataDir, "facility-types.json"), &types); err != nil {
		return err
	}
	var amenities []amenitySeed
	if err := loadJSON(filepath.Join(dataDir, "amenities.json"), &amenities); err != nil {
		return err
	}
	var facilities []facilitySeed
	if err := loadJSON(filepath.Join(dataDir, "facilities.json"), &facilities); err != nil {
		return err
	}

	return gateway.InTx(ctx, func(tx repository.FacilityRepository) error {
		seeder, ok := tx.(repository.ReferenceSeeder)
		if !ok {
			return fmt.Errorf("backend does not support reference seeding")
		}

		typeIDs := make(map[string]int64, len(types))
		for _, ft := range types {
			id, err := seeder.UpsertFacilityType(ctx, domain.FacilityType{
				Name:         ft.Name,
				Slug:         ft.Slug,
				Description:  ft.Description,
				DisplayOrder: ft.DisplayOrder,
			})
			if err != nil {
				return err
			}
			typeIDs[ft.Name] = id
		}
		log.Info("Facility types seeded", zap.Int("count", len(typeIDs)))

		amenityIDs := make(map[string]int64, len(amenities))
		for _, a := range amenities {
			id, err := seeder.UpsertAmenity(ctx, domain.Amenity{
				Name:                 a.Name,
				Description:          a.Description,
				IsMultipleApplicable: a.IsMultipleApplicable,
			})
			if err != nil {
				return err
			}
			amenityIDs[a.Name] = id
		}
		log.Info("Amenities seeded", zap.Int("count", len(amenityIDs)))

		var created int
		for _, f := range facilities {
			typeID, ok := typeIDs[f.FacilityType]
			if !ok {
				return fmt.Errorf("facility %q references unknown facility type %q", f.Location.Address, f.FacilityType)
			}

			locationID, err := resolveLocation(ctx, tx, f.Location)
			if err != nil {
				return err
			}

			facilityID, err := tx.CreateFacility(ctx, domain.NewFacility{
				LocationID:               locationID,
				FacilityTypeID:           typeID,
				Floor:                    f.Floor,
				Description:              f.Description,
				HasDiaperChangingStation: f.HasDiaperChangingStation,
				HasLactationRoom:         f.HasLactationRoom,
				HowToAccess:              f.HowToAccess,
				CreatedBy:                "seed",
				FemalesOnly:              f.FemalesOnly,
			})
			if err != nil {
				return err
			}

			selections := make([]domain.AmenitySelection, 0, len(f.Amenities))
			for _, fa := range f.Amenities {
				amenityID, ok := amenityIDs[fa.Name]
				if !ok {
					return fmt.Errorf("facility %q references unknown amenity %q", f.Location.Address, fa.Name)
				}
				qty := fa.Quantity
				if qty < 1 {
					qty = 1
				}
				selections = append(selections, domain.AmenitySelection{AmenityID: amenityID, Quantity: qty})
			}
			if err := tx.AttachAmenities(ctx, facilityID, selections); err != nil {
				return err
			}
			created++
		}
		log.Info("Facilities seeded", zap.Int("count", created))
		return nil
	})
}

func resolveLocation(ctx context.Context, tx repository.FacilityRepository, seed locationSeed) (int64, error) {
	existing, err := tx.GetLocationByAddress(ctx, seed.Address)
	if err != nil {
		return 0, err
	}
	if existing != nil {
		return existing.ID, nil
	}
	return tx.CreateLocation(ctx, domain.NewLocation{
		Building:   seed.Building,
		Block:      seed.Block,
		Road:       seed.Road,
		Address:    seed.Address,
		PostalCode: seed.PostalCode,
		Latitude:   seed.Latitude,
		Longitude:  seed.Longitude,
	})
}

func loadJSON(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read seed file: %w", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}
