package images

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/facility-directory/internal/domain"
)

// LocalStore keeps per-facility image metadata as JSON files under a data
// directory, one ordered list per facility. It is the development fallback
// when object storage is not configured.
type LocalStore struct {
	dir string
	mu  sync.Mutex
}

func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create image store dir: %w", err)
	}
	return &LocalStore{dir: dir}, nil
}

func (s *LocalStore) path(facilityID int64) string {
	return filepath.Join(s.dir, fmt.Sprintf("facility-images-%d.json", facilityID))
}

// Append adds one record to the facility's list, preserving append order.
func (s *LocalStore) Append(facilityID int64, meta domain.FacilityImageMeta) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.read(facilityID)
	if err != nil {
		return err
	}
	existing = append(existing, meta)

	data, err := json.Marshal(existing)
	if err != nil {
		return fmt.Errorf("failed to encode image list: %w", err)
	}
	if err := os.WriteFile(s.path(facilityID), data, 0o644); err != nil {
		return fmt.Errorf("failed to write image list: %w", err)
	}
	return nil
}

// List returns the facility's records; an unknown facility has an empty list.
func (s *LocalStore) List(facilityID int64) ([]domain.FacilityImageMeta, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read(facilityID)
}

func (s *LocalStore) read(facilityID int64) ([]domain.FacilityImageMeta, error) {
	data, err := os.ReadFile(s.path(facilityID))
	if os.IsNotExist(err) {
		return []domain.FacilityImageMeta{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read image list: %w", err)
	}

	var metas []domain.FacilityImageMeta
	if err := json.Unmarshal(data, &metas); err != nil {
		return nil, fmt.Errorf("failed to decode image list: %w", err)
	}
	return metas, nil
}
