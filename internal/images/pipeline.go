package images

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/facility-directory/internal/domain"
	"github.com/facility-directory/internal/infrastructure/s3store"
)

// Upload is one pending photo selected in the wizard.
type Upload struct {
	Data     []byte
	Category domain.ImageCategory
}

// Pipeline compresses facility photos and stores them with one of two
// strategies chosen at construction: object storage (public URLs) or the
// local per-facility metadata store (inline data URLs). Per-image failures
// are logged and skipped; a created facility simply ends up with fewer
// photos than intended.
type Pipeline struct {
	remote   *s3store.Store // nil selects the local strategy
	local    *LocalStore
	maxWidth int
	quality  int
	logger   *zap.Logger
}

func NewPipeline(remote *s3store.Store, local *LocalStore, logger *zap.Logger) *Pipeline {
	return &Pipeline{
		remote:   remote,
		local:    local,
		maxWidth: DefaultMaxWidth,
		quality:  DefaultQuality,
		logger:   logger,
	}
}

func (p *Pipeline) Upload(ctx context.Context, facilityID int64, uploads []Upload) ([]domain.FacilityImageMeta, error) {
	if len(uploads) == 0 {
		return []domain.FacilityImageMeta{}, nil
	}

	stored := make([]domain.FacilityImageMeta, 0, len(uploads))
	for i, up := range uploads {
		compressed, err := Compress(up.Data, p.maxWidth, p.quality)
		if err != nil {
			p.logger.Warn("Skipping image that failed to compress",
				zap.Int64("facility_id", facilityID),
				zap.Int("index", i),
				zap.Error(err),
			)
			continue
		}

		var meta domain.FacilityImageMeta
		if p.remote != nil {
			key := fmt.Sprintf("%d/%d-%s.jpg", facilityID, time.Now().UnixMilli(), uuid.NewString())
			url, err := p.remote.Put(ctx, key, compressed.Data, "image/jpeg")
			if err != nil {
				p.logger.Warn("Skipping image that failed to upload",
					zap.Int64("facility_id", facilityID),
					zap.Int("index", i),
					zap.Error(err),
				)
				continue
			}
			meta = domain.FacilityImageMeta{URL: url, Category: up.Category}
		} else {
			meta = domain.FacilityImageMeta{URL: compressed.DataURL, Category: up.Category}
			if err := p.local.Append(facilityID, meta); err != nil {
				p.logger.Warn("Skipping image that failed to persist locally",
					zap.Int64("facility_id", facilityID),
					zap.Int("index", i),
					zap.Error(err),
				)
				continue
			}
		}
		stored = append(stored, meta)
	}

	return stored, nil
}

func (p *Pipeline) List(ctx context.Context, facilityID int64) ([]domain.FacilityImageMeta, error) {
	if p.remote != nil {
		urls, err := p.remote.List(ctx, fmt.Sprintf("%d/", facilityID))
		if err != nil {
			return nil, err
		}
		metas := make([]domain.FacilityImageMeta, 0, len(urls))
		for _, u := range urls {
			// Categories are not recoverable from object keys.
			metas = append(metas, domain.FacilityImageMeta{URL: u})
		}
		return metas, nil
	}

	return p.local.List(facilityID)
}
